package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lramirez/acredita/internal/app/models/dto"
	"github.com/lramirez/acredita/internal/app/services"
	"github.com/lramirez/acredita/internal/middleware"
)

// MateriaController handles subject endpoints
type MateriaController struct {
	materiaService services.MateriaService
}

// NewMateriaController creates a new MateriaController
func NewMateriaController(materiaService services.MateriaService) *MateriaController {
	return &MateriaController{materiaService: materiaService}
}

// GetAll lists subjects, optionally filtered by career
// @Summary List subjects
// @Tags materias
// @Produce json
// @Param carrera query string false "Filter by career code"
// @Success 200 {array} models.Materia
// @Router /materias [get]
func (c *MateriaController) GetAll(ctx *gin.Context) {
	materias, err := c.materiaService.GetAll(ctx, ctx.Query("carrera"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, materias)
}

// GetByID retrieves one subject
// @Summary Get a subject
// @Tags materias
// @Produce json
// @Param id path string true "Subject id"
// @Success 200 {object} models.Materia
// @Failure 404 {object} dto.ErrorBody
// @Router /materias/{id} [get]
func (c *MateriaController) GetByID(ctx *gin.Context) {
	materia, err := c.materiaService.GetByID(ctx, ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, materia)
}

// Create adds a new subject
// @Summary Create a subject
// @Tags materias
// @Accept json
// @Produce json
// @Param request body dto.CreateMateriaRequest true "Subject"
// @Success 201 {object} models.Materia
// @Failure 400 {object} dto.ErrorBody
// @Failure 409 {object} dto.ErrorBody
// @Router /materias [post]
func (c *MateriaController) Create(ctx *gin.Context) {
	var req dto.CreateMateriaRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorBody{Error: "datos de materia inválidos"})
		return
	}

	materia, err := c.materiaService.Create(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, materia)
}

// Update partially updates a subject
// @Summary Update a subject
// @Tags materias
// @Accept json
// @Produce json
// @Param id path string true "Subject id"
// @Param request body dto.UpdateMateriaRequest true "Fields to change"
// @Success 200 {object} models.Materia
// @Failure 404 {object} dto.ErrorBody
// @Router /materias/{id} [put]
func (c *MateriaController) Update(ctx *gin.Context) {
	var req dto.UpdateMateriaRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorBody{Error: "datos de materia inválidos"})
		return
	}

	materia, err := c.materiaService.Update(ctx, ctx.Param("id"), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, materia)
}

// Delete removes a subject, cascading over answers and mappings when forced
// @Summary Delete a subject
// @Tags materias
// @Produce json
// @Param id path string true "Subject id"
// @Param force query string false "Set to 1 to cascade over dependents"
// @Success 200 {object} dto.DeleteResponse
// @Failure 404 {object} dto.ErrorBody
// @Failure 409 {object} dto.ConflictResponse
// @Router /materias/{id} [delete]
func (c *MateriaController) Delete(ctx *gin.Context) {
	force := forceRequested(ctx)
	report, err := c.materiaService.Delete(ctx, ctx.Param("id"), force)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.DeleteResponse{OK: true, Deleted: report, Forced: force})
}
