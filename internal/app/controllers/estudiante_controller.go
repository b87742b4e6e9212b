package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lramirez/acredita/internal/app/models/dto"
	"github.com/lramirez/acredita/internal/app/repositories"
	"github.com/lramirez/acredita/internal/app/services"
	"github.com/lramirez/acredita/internal/middleware"
)

// EstudianteController handles the student roster administration endpoints
type EstudianteController struct {
	estudianteService services.EstudianteService
}

// NewEstudianteController creates a new EstudianteController
func NewEstudianteController(estudianteService services.EstudianteService) *EstudianteController {
	return &EstudianteController{estudianteService: estudianteService}
}

// GetAll lists the roster with filters
// @Summary List students
// @Tags estudiantes
// @Produce json
// @Param carrera query string false "Keep only students with answers in this career"
// @Param q query string false "Search by control number or name"
// @Param activos query string false "Set to 1 to keep only students with answers"
// @Success 200 {array} dto.EstudianteResumen
// @Router /admin/estudiantes [get]
func (c *EstudianteController) GetAll(ctx *gin.Context) {
	filter := repositories.ListFilter{
		CarreraID:   ctx.Query("carrera"),
		Search:      ctx.Query("q"),
		SoloActivos: ctx.Query("activos") == "1" || ctx.Query("activos") == "true",
	}

	estudiantes, err := c.estudianteService.GetAll(ctx, filter)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	if estudiantes == nil {
		estudiantes = []*dto.EstudianteResumen{}
	}
	ctx.JSON(http.StatusOK, estudiantes)
}

// GetStats returns the aggregate roster card
// @Summary Student roster stats
// @Tags estudiantes
// @Produce json
// @Success 200 {object} dto.EstudiantesStats
// @Router /admin/estudiantes/stats [get]
func (c *EstudianteController) GetStats(ctx *gin.Context) {
	stats, err := c.estudianteService.GetStats(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, stats)
}

// GetByID retrieves a student with per-career activity
// @Summary Get a student
// @Tags estudiantes
// @Produce json
// @Param id path string true "Control number"
// @Success 200 {object} dto.EstudianteDetalle
// @Failure 404 {object} dto.ErrorBody
// @Router /admin/estudiantes/{id} [get]
func (c *EstudianteController) GetByID(ctx *gin.Context) {
	detalle, err := c.estudianteService.GetDetalle(ctx, ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, detalle)
}

// Create registers a student and provisions its account
// @Summary Create a student
// @Tags estudiantes
// @Accept json
// @Produce json
// @Param request body dto.CreateEstudianteRequest true "Student"
// @Success 201 {object} dto.CreateEstudianteResponse
// @Failure 400 {object} dto.ErrorBody
// @Failure 409 {object} dto.ErrorBody
// @Router /admin/estudiantes [post]
func (c *EstudianteController) Create(ctx *gin.Context) {
	var req dto.CreateEstudianteRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorBody{Error: "datos de estudiante inválidos"})
		return
	}

	created, err := c.estudianteService.Create(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, created)
}

// Import bulk creates or updates students
// @Summary Import students
// @Tags estudiantes
// @Accept json
// @Produce json
// @Param request body dto.ImportEstudiantesRequest true "Rows"
// @Success 200 {object} dto.ImportEstudiantesResponse
// @Failure 400 {object} dto.ErrorBody
// @Router /admin/estudiantes/import [post]
func (c *EstudianteController) Import(ctx *gin.Context) {
	var req dto.ImportEstudiantesRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorBody{Error: "datos de importación inválidos"})
		return
	}

	result, err := c.estudianteService.Import(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, result)
}

// Update renames a student
// @Summary Update a student
// @Tags estudiantes
// @Accept json
// @Produce json
// @Param id path string true "Control number"
// @Param request body dto.UpdateEstudianteRequest true "New name"
// @Success 200 {object} dto.OKResponse
// @Failure 404 {object} dto.ErrorBody
// @Router /admin/estudiantes/{id} [put]
func (c *EstudianteController) Update(ctx *gin.Context) {
	var req dto.UpdateEstudianteRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorBody{Error: "datos de estudiante inválidos"})
		return
	}

	if err := c.estudianteService.Update(ctx, ctx.Param("id"), req.Nombre); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.OKResponse{OK: true})
}

// Delete removes a student and, when forced, their answers
// @Summary Delete a student
// @Tags estudiantes
// @Produce json
// @Param id path string true "Control number"
// @Param force query string false "Set to 1 to cascade over answers"
// @Success 200 {object} dto.DeleteResponse
// @Failure 404 {object} dto.ErrorBody
// @Failure 409 {object} dto.ConflictResponse
// @Router /admin/estudiantes/{id} [delete]
func (c *EstudianteController) Delete(ctx *gin.Context) {
	force := forceRequested(ctx)
	report, err := c.estudianteService.Delete(ctx, ctx.Param("id"), force)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.DeleteResponse{OK: true, Deleted: report, Forced: force})
}
