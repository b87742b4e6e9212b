package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lramirez/acredita/internal/app/models/dto"
	"github.com/lramirez/acredita/internal/app/services"
	"github.com/lramirez/acredita/internal/middleware"
)

// CarreraController handles career endpoints
type CarreraController struct {
	carreraService services.CarreraService
}

// NewCarreraController creates a new CarreraController
func NewCarreraController(carreraService services.CarreraService) *CarreraController {
	return &CarreraController{carreraService: carreraService}
}

// forceRequested reads the force flag from the query string. Only the
// literal "1" counts.
func forceRequested(ctx *gin.Context) bool {
	return ctx.Query("force") == "1"
}

// GetAll lists all careers
// @Summary List careers
// @Tags carreras
// @Produce json
// @Success 200 {array} models.Carrera
// @Router /carreras [get]
func (c *CarreraController) GetAll(ctx *gin.Context) {
	carreras, err := c.carreraService.GetAll(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, carreras)
}

// GetResumen lists careers with coordinator and catalog totals
// @Summary Career administration listing
// @Tags carreras
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.CarreraResumen
// @Router /admin/carreras [get]
func (c *CarreraController) GetResumen(ctx *gin.Context) {
	resumen, err := c.carreraService.GetResumen(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	if resumen == nil {
		resumen = []dto.CarreraResumen{}
	}
	ctx.JSON(http.StatusOK, resumen)
}

// GetByID retrieves one career
// @Summary Get a career
// @Tags carreras
// @Produce json
// @Param id path string true "Career code"
// @Success 200 {object} models.Carrera
// @Failure 404 {object} dto.ErrorBody
// @Router /carreras/{id} [get]
func (c *CarreraController) GetByID(ctx *gin.Context) {
	carrera, err := c.carreraService.GetByID(ctx, ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, carrera)
}

// Create adds a new career
// @Summary Create a career
// @Tags carreras
// @Accept json
// @Produce json
// @Param request body dto.CreateCarreraRequest true "Career"
// @Success 201 {object} models.Carrera
// @Failure 400 {object} dto.ErrorBody
// @Failure 409 {object} dto.ErrorBody
// @Router /carreras [post]
func (c *CarreraController) Create(ctx *gin.Context) {
	var req dto.CreateCarreraRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorBody{Error: "datos de carrera inválidos"})
		return
	}

	carrera, err := c.carreraService.Create(ctx, req.ID, req.Nombre)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, carrera)
}

// Update renames a career
// @Summary Update a career
// @Tags carreras
// @Accept json
// @Produce json
// @Param id path string true "Career code"
// @Param request body dto.UpdateCarreraRequest true "New name"
// @Success 200 {object} models.Carrera
// @Failure 404 {object} dto.ErrorBody
// @Router /carreras/{id} [put]
func (c *CarreraController) Update(ctx *gin.Context) {
	var req dto.UpdateCarreraRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorBody{Error: "datos de carrera inválidos"})
		return
	}

	carrera, err := c.carreraService.Update(ctx, ctx.Param("id"), req.Nombre)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, carrera)
}

// Delete removes a career. Without force it answers 409 with the counts
// of everything that would go with it.
// @Summary Delete a career
// @Tags carreras
// @Produce json
// @Param id path string true "Career code"
// @Param force query string false "Set to 1 to cascade over dependents"
// @Success 200 {object} dto.DeleteResponse
// @Failure 404 {object} dto.ErrorBody
// @Failure 409 {object} dto.ConflictResponse
// @Router /carreras/{id} [delete]
func (c *CarreraController) Delete(ctx *gin.Context) {
	force := forceRequested(ctx)
	report, err := c.carreraService.Delete(ctx, ctx.Param("id"), force)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.DeleteResponse{OK: true, Deleted: report, Forced: force})
}
