package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/lramirez/acredita/internal/app/models/dto"
	"github.com/lramirez/acredita/internal/app/services"
	"github.com/lramirez/acredita/internal/middleware"
)

// AtributoController handles graduate attribute endpoints
type AtributoController struct {
	atributoService services.AtributoService
}

// NewAtributoController creates a new AtributoController
func NewAtributoController(atributoService services.AtributoService) *AtributoController {
	return &AtributoController{atributoService: atributoService}
}

// intParam parses a numeric path parameter
func intParam(ctx *gin.Context, name string) (int, bool) {
	value, err := strconv.Atoi(ctx.Param(name))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorBody{Error: "el parámetro " + name + " debe ser numérico"})
		return 0, false
	}
	return value, true
}

// GetAll lists attributes, optionally filtered by career
// @Summary List attributes
// @Tags atributos
// @Produce json
// @Param carrera query string false "Filter by career code"
// @Success 200 {array} models.Atributo
// @Router /atributos [get]
func (c *AtributoController) GetAll(ctx *gin.Context) {
	atributos, err := c.atributoService.GetAll(ctx, ctx.Query("carrera"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, atributos)
}

// GetByID retrieves one attribute
// @Summary Get an attribute
// @Tags atributos
// @Produce json
// @Param carrera path string true "Career code"
// @Param id path int true "Attribute id"
// @Success 200 {object} models.Atributo
// @Failure 404 {object} dto.ErrorBody
// @Router /atributos/{carrera}/{id} [get]
func (c *AtributoController) GetByID(ctx *gin.Context) {
	id, ok := intParam(ctx, "id")
	if !ok {
		return
	}
	atributo, err := c.atributoService.GetByID(ctx, ctx.Param("carrera"), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, atributo)
}

// Create adds a new attribute
// @Summary Create an attribute
// @Tags atributos
// @Accept json
// @Produce json
// @Param request body dto.CreateAtributoRequest true "Attribute"
// @Success 201 {object} models.Atributo
// @Failure 400 {object} dto.ErrorBody
// @Failure 409 {object} dto.ErrorBody
// @Router /atributos [post]
func (c *AtributoController) Create(ctx *gin.Context) {
	var req dto.CreateAtributoRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorBody{Error: "datos de atributo inválidos"})
		return
	}

	atributo, err := c.atributoService.Create(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, atributo)
}

// Update changes the attribute names
// @Summary Update an attribute
// @Tags atributos
// @Accept json
// @Produce json
// @Param carrera path string true "Career code"
// @Param id path int true "Attribute id"
// @Param request body dto.UpdateAtributoRequest true "New names"
// @Success 200 {object} models.Atributo
// @Failure 404 {object} dto.ErrorBody
// @Router /atributos/{carrera}/{id} [put]
func (c *AtributoController) Update(ctx *gin.Context) {
	id, ok := intParam(ctx, "id")
	if !ok {
		return
	}
	var req dto.UpdateAtributoRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorBody{Error: "datos de atributo inválidos"})
		return
	}

	atributo, err := c.atributoService.Update(ctx, ctx.Param("carrera"), id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, atributo)
}

// Delete removes an attribute and, when forced, its criteria, mappings
// and answers
// @Summary Delete an attribute
// @Tags atributos
// @Produce json
// @Param carrera path string true "Career code"
// @Param id path int true "Attribute id"
// @Param force query string false "Set to 1 to cascade over dependents"
// @Success 200 {object} dto.DeleteResponse
// @Failure 404 {object} dto.ErrorBody
// @Failure 409 {object} dto.ConflictResponse
// @Router /atributos/{carrera}/{id} [delete]
func (c *AtributoController) Delete(ctx *gin.Context) {
	id, ok := intParam(ctx, "id")
	if !ok {
		return
	}
	force := forceRequested(ctx)
	report, err := c.atributoService.Delete(ctx, ctx.Param("carrera"), id, force)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.DeleteResponse{OK: true, Deleted: report, Forced: force})
}
