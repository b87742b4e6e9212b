package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lramirez/acredita/internal/app/models/dto"
	"github.com/lramirez/acredita/internal/app/services"
	"github.com/lramirez/acredita/internal/middleware"
)

// CriterioController handles rubric criterion endpoints
type CriterioController struct {
	criterioService services.CriterioService
}

// NewCriterioController creates a new CriterioController
func NewCriterioController(criterioService services.CriterioService) *CriterioController {
	return &CriterioController{criterioService: criterioService}
}

// GetAll lists criteria for a career, optionally narrowed to one attribute
// @Summary List criteria
// @Tags criterios
// @Produce json
// @Param carrera query string false "Filter by career code"
// @Param atributo query int false "Filter by attribute id"
// @Success 200 {array} models.Criterio
// @Router /criterios [get]
func (c *CriterioController) GetAll(ctx *gin.Context) {
	atributoID := 0
	if raw := ctx.Query("atributo"); raw != "" {
		parsed, err := parseInt(raw)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorBody{Error: "el filtro atributo debe ser numérico"})
			return
		}
		atributoID = parsed
	}

	criterios, err := c.criterioService.GetAll(ctx, ctx.Query("carrera"), atributoID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, criterios)
}

// GetByID retrieves one criterion by its composite key
// @Summary Get a criterion
// @Tags criterios
// @Produce json
// @Param carrera path string true "Career code"
// @Param atributo path int true "Attribute id"
// @Param criterio path int true "Criterion id"
// @Success 200 {object} models.Criterio
// @Failure 404 {object} dto.ErrorBody
// @Router /criterios/{carrera}/{atributo}/{criterio} [get]
func (c *CriterioController) GetByID(ctx *gin.Context) {
	atributoID, ok := intParam(ctx, "atributo")
	if !ok {
		return
	}
	criterioID, ok := intParam(ctx, "criterio")
	if !ok {
		return
	}

	criterio, err := c.criterioService.GetByID(ctx, ctx.Param("carrera"), atributoID, criterioID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, criterio)
}

// Create adds a new criterion
// @Summary Create a criterion
// @Tags criterios
// @Accept json
// @Produce json
// @Param request body dto.CreateCriterioRequest true "Criterion"
// @Success 201 {object} models.Criterio
// @Failure 400 {object} dto.ErrorBody
// @Failure 409 {object} dto.ErrorBody
// @Router /criterios [post]
func (c *CriterioController) Create(ctx *gin.Context) {
	var req dto.CreateCriterioRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorBody{Error: "datos de criterio inválidos"})
		return
	}

	criterio, err := c.criterioService.Create(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, criterio)
}

// Update partially updates a criterion
// @Summary Update a criterion
// @Tags criterios
// @Accept json
// @Produce json
// @Param carrera path string true "Career code"
// @Param atributo path int true "Attribute id"
// @Param criterio path int true "Criterion id"
// @Param request body dto.UpdateCriterioRequest true "Fields to change"
// @Success 200 {object} models.Criterio
// @Failure 404 {object} dto.ErrorBody
// @Router /criterios/{carrera}/{atributo}/{criterio} [put]
func (c *CriterioController) Update(ctx *gin.Context) {
	atributoID, ok := intParam(ctx, "atributo")
	if !ok {
		return
	}
	criterioID, ok := intParam(ctx, "criterio")
	if !ok {
		return
	}
	var req dto.UpdateCriterioRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorBody{Error: "datos de criterio inválidos"})
		return
	}

	criterio, err := c.criterioService.Update(ctx, ctx.Param("carrera"), atributoID, criterioID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, criterio)
}

// Delete removes a criterion and, when forced, its answers
// @Summary Delete a criterion
// @Tags criterios
// @Produce json
// @Param carrera path string true "Career code"
// @Param atributo path int true "Attribute id"
// @Param criterio path int true "Criterion id"
// @Param force query string false "Set to 1 to cascade over answers"
// @Success 200 {object} dto.DeleteResponse
// @Failure 404 {object} dto.ErrorBody
// @Failure 409 {object} dto.ConflictResponse
// @Router /criterios/{carrera}/{atributo}/{criterio} [delete]
func (c *CriterioController) Delete(ctx *gin.Context) {
	atributoID, ok := intParam(ctx, "atributo")
	if !ok {
		return
	}
	criterioID, ok := intParam(ctx, "criterio")
	if !ok {
		return
	}

	force := forceRequested(ctx)
	report, err := c.criterioService.Delete(ctx, ctx.Param("carrera"), atributoID, criterioID, force)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.DeleteResponse{OK: true, Deleted: report, Forced: force})
}
