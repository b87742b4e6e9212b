package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/lramirez/acredita/internal/app/models/dto"
	"github.com/lramirez/acredita/internal/app/services"
	"github.com/lramirez/acredita/internal/middleware"
)

// UsuarioController handles login account administration endpoints
type UsuarioController struct {
	usuarioService services.UsuarioService
}

// NewUsuarioController creates a new UsuarioController
func NewUsuarioController(usuarioService services.UsuarioService) *UsuarioController {
	return &UsuarioController{usuarioService: usuarioService}
}

// GetAll lists accounts with role and search filters
// @Summary List accounts
// @Tags usuarios
// @Produce json
// @Param rol query string false "Filter by role key"
// @Param q query string false "Search by email or name"
// @Success 200 {array} dto.UsuarioResumen
// @Router /admin/usuarios [get]
func (c *UsuarioController) GetAll(ctx *gin.Context) {
	usuarios, err := c.usuarioService.GetAll(ctx, ctx.Query("rol"), ctx.Query("q"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	if usuarios == nil {
		usuarios = []*dto.UsuarioResumen{}
	}
	ctx.JSON(http.StatusOK, usuarios)
}

// Create provisions an account with a temporary password
// @Summary Create an account
// @Tags usuarios
// @Accept json
// @Produce json
// @Param request body dto.CreateUsuarioRequest true "Account"
// @Success 201 {object} dto.CreateUsuarioResponse
// @Failure 400 {object} dto.ErrorBody
// @Failure 409 {object} dto.ErrorBody
// @Router /admin/usuarios [post]
func (c *UsuarioController) Create(ctx *gin.Context) {
	var req dto.CreateUsuarioRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorBody{Error: "datos de usuario inválidos"})
		return
	}

	created, err := c.usuarioService.Create(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, created)
}

// Delete removes an account, detaching any linked student
// @Summary Delete an account
// @Tags usuarios
// @Produce json
// @Param id path int true "Account id"
// @Success 200 {object} dto.OKResponse
// @Failure 404 {object} dto.ErrorBody
// @Router /admin/usuarios/{id} [delete]
func (c *UsuarioController) Delete(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorBody{Error: "el id de usuario debe ser numérico"})
		return
	}

	if err := c.usuarioService.Delete(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.OKResponse{OK: true})
}
