package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/lramirez/acredita/internal/app/models/dto"
	"github.com/lramirez/acredita/internal/app/services"
	"github.com/lramirez/acredita/internal/middleware"
)

// parseInt is a strict base-10 int parser for query values
func parseInt(raw string) (int, error) {
	return strconv.Atoi(raw)
}

// NivelController handles the subject-to-attribute contribution map
type NivelController struct {
	nivelService services.NivelService
}

// NewNivelController creates a new NivelController
func NewNivelController(nivelService services.NivelService) *NivelController {
	return &NivelController{nivelService: nivelService}
}

// GetAll lists mappings filtered by career and optionally subject
// @Summary List subject-attribute mappings
// @Tags niveles-materia
// @Produce json
// @Param carrera query string false "Filter by career code"
// @Param materia query string false "Filter by subject id"
// @Success 200 {array} models.MateriaAtributo
// @Router /niveles-materia [get]
func (c *NivelController) GetAll(ctx *gin.Context) {
	mapeos, err := c.nivelService.GetAll(ctx, ctx.Query("carrera"), ctx.Query("materia"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, mapeos)
}

// Create adds a mapping after checking the subject belongs to the career
// @Summary Create a subject-attribute mapping
// @Tags niveles-materia
// @Accept json
// @Produce json
// @Param request body dto.CreateMapeoRequest true "Mapping"
// @Success 201 {object} models.MateriaAtributo
// @Failure 400 {object} dto.ErrorBody
// @Failure 409 {object} dto.ErrorBody
// @Router /niveles-materia [post]
func (c *NivelController) Create(ctx *gin.Context) {
	var req dto.CreateMapeoRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorBody{Error: "datos de mapeo inválidos"})
		return
	}

	mapeo, err := c.nivelService.Create(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, mapeo)
}

// Update changes the contribution level of a mapping
// @Summary Update a mapping level
// @Tags niveles-materia
// @Accept json
// @Produce json
// @Param carrera path string true "Career code"
// @Param materia path string true "Subject id"
// @Param atributo path int true "Attribute id"
// @Param request body dto.UpdateMapeoRequest true "New level"
// @Success 200 {object} models.MateriaAtributo
// @Failure 404 {object} dto.ErrorBody
// @Router /niveles-materia/{carrera}/{materia}/{atributo} [put]
func (c *NivelController) Update(ctx *gin.Context) {
	atributoID, ok := intParam(ctx, "atributo")
	if !ok {
		return
	}
	var req dto.UpdateMapeoRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorBody{Error: "datos de mapeo inválidos"})
		return
	}

	mapeo, err := c.nivelService.Update(ctx, ctx.Param("carrera"), ctx.Param("materia"), atributoID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, mapeo)
}

// Delete removes a mapping and, when forced, the answers given through it
// @Summary Delete a mapping
// @Tags niveles-materia
// @Produce json
// @Param carrera path string true "Career code"
// @Param materia path string true "Subject id"
// @Param atributo path int true "Attribute id"
// @Param force query string false "Set to 1 to cascade over answers"
// @Success 200 {object} dto.DeleteResponse
// @Failure 404 {object} dto.ErrorBody
// @Failure 409 {object} dto.ConflictResponse
// @Router /niveles-materia/{carrera}/{materia}/{atributo} [delete]
func (c *NivelController) Delete(ctx *gin.Context) {
	atributoID, ok := intParam(ctx, "atributo")
	if !ok {
		return
	}

	force := forceRequested(ctx)
	report, err := c.nivelService.Delete(ctx, ctx.Param("carrera"), ctx.Param("materia"), atributoID, force)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.DeleteResponse{OK: true, Deleted: report, Forced: force})
}
