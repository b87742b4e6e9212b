package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lramirez/acredita/internal/app/models/dto"
	"github.com/lramirez/acredita/internal/app/services"
	"github.com/lramirez/acredita/internal/middleware"
)

// AlumnoController handles the student-facing survey endpoints
type AlumnoController struct {
	alumnoService services.AlumnoService
}

// NewAlumnoController creates a new AlumnoController
func NewAlumnoController(alumnoService services.AlumnoService) *AlumnoController {
	return &AlumnoController{alumnoService: alumnoService}
}

// GetMaterias lists the student's registered subjects for the period
// @Summary List my subjects
// @Tags alumno
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.MateriasAlumnoResponse
// @Failure 403 {object} dto.ErrorBody
// @Router /alumno/materias [get]
func (c *AlumnoController) GetMaterias(ctx *gin.Context) {
	uid, email, _ := middleware.Principal(ctx)
	resp, err := c.alumnoService.MateriasDelPeriodo(ctx, uid, email)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// Registrar registers the student to evaluate a subject this period
// @Summary Register a subject
// @Tags alumno
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.RegistrarMateriaRequest true "Subject key"
// @Success 200 {object} dto.OKResponse
// @Failure 400 {object} dto.ErrorBody
// @Failure 404 {object} dto.ErrorBody
// @Router /alumno/materias/registrar [post]
func (c *AlumnoController) Registrar(ctx *gin.Context) {
	var req dto.RegistrarMateriaRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorBody{Error: "la clave es obligatoria"})
		return
	}

	uid, email, _ := middleware.Principal(ctx)
	resp, err := c.alumnoService.Registrar(ctx, uid, email, req.Clave)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// GetEncuesta returns the survey form for one subject
// @Summary Get a survey form
// @Tags alumno
// @Produce json
// @Security BearerAuth
// @Param materiaId path string true "Subject id"
// @Success 200 {object} dto.EncuestaResponse
// @Failure 404 {object} dto.ErrorBody
// @Router /alumno/encuesta/{materiaId} [get]
func (c *AlumnoController) GetEncuesta(ctx *gin.Context) {
	uid, email, _ := middleware.Principal(ctx)
	resp, err := c.alumnoService.GetEncuesta(ctx, uid, email, ctx.Param("materiaId"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// EnviarEncuesta stores the student's answer set for one subject
// @Summary Submit a survey
// @Tags alumno
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param materiaId path string true "Subject id"
// @Param request body dto.EnviarEncuestaRequest true "Answers"
// @Success 200 {object} dto.EnviarEncuestaResponse
// @Failure 400 {object} dto.ErrorBody
// @Failure 404 {object} dto.ErrorBody
// @Router /alumno/encuesta/{materiaId} [post]
func (c *AlumnoController) EnviarEncuesta(ctx *gin.Context) {
	var req dto.EnviarEncuestaRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorBody{Error: "datos de encuesta inválidos"})
		return
	}
	req.MateriaID = ctx.Param("materiaId")

	uid, email, _ := middleware.Principal(ctx)
	resp, err := c.alumnoService.EnviarEncuesta(ctx, uid, email, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}
