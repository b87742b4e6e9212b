package services

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/lramirez/acredita/internal/app/models"
	"github.com/lramirez/acredita/internal/app/models/dto"
	"github.com/lramirez/acredita/internal/app/repositories"
	"github.com/lramirez/acredita/internal/pkg/apperrors"
	"github.com/lramirez/acredita/internal/pkg/helpers"
	"github.com/lramirez/acredita/internal/pkg/logger"
	"github.com/lramirez/acredita/internal/pkg/validation"
)

// controlFromEmail extracts the control number from institutional student
// emails of the form 12345678@domain.
var controlFromEmail = regexp.MustCompile(`^(\d{8,9})@`)

// AlumnoService handles the student-facing survey flow
type AlumnoService interface {
	// EnsureStudentProfile resolves the student behind a session, creating
	// the roster row on first login. Safe to call on every request.
	EnsureStudentProfile(ctx context.Context, uid int64, email string) (string, error)
	MateriasDelPeriodo(ctx context.Context, uid int64, email string) (*dto.MateriasAlumnoResponse, error)
	Registrar(ctx context.Context, uid int64, email, clave string) (*dto.OKResponse, error)
	GetEncuesta(ctx context.Context, uid int64, email, materiaID string) (*dto.EncuestaResponse, error)
	EnviarEncuesta(ctx context.Context, uid int64, email string, req *dto.EnviarEncuestaRequest) (*dto.EnviarEncuestaResponse, error)
}

type alumnoService struct {
	encuestaRepo   *repositories.EncuestaRepository
	estudianteRepo *repositories.EstudianteRepository
	materiaRepo    *repositories.MateriaRepository
	periodoActual  string
}

// NewAlumnoService creates a new student survey service instance.
// periodoActual pins the open period; empty derives it from the date.
func NewAlumnoService(
	encuestaRepo *repositories.EncuestaRepository,
	estudianteRepo *repositories.EstudianteRepository,
	materiaRepo *repositories.MateriaRepository,
	periodoActual string,
) AlumnoService {
	return &alumnoService{
		encuestaRepo:   encuestaRepo,
		estudianteRepo: estudianteRepo,
		materiaRepo:    materiaRepo,
		periodoActual:  periodoActual,
	}
}

func (s *alumnoService) periodo() string {
	return helpers.CurrentPeriod(s.periodoActual, time.Now())
}

func (s *alumnoService) EnsureStudentProfile(ctx context.Context, uid int64, email string) (string, error) {
	match := controlFromEmail.FindStringSubmatch(strings.ToLower(strings.TrimSpace(email)))
	if match == nil {
		return "", apperrors.ErrPermissionDenied
	}
	control := match[1]

	_, err := s.estudianteRepo.GetByID(ctx, control)
	if err == nil {
		return control, nil
	}
	if !errors.Is(err, apperrors.ErrEstudianteNotFound) {
		return "", err
	}

	estudiante := &models.Estudiante{
		ID:        control,
		Nombre:    control,
		UsuarioID: &uid,
	}
	if err := s.estudianteRepo.CreateBare(ctx, estudiante); err != nil {
		// Lost a race with another request for the same student
		if errors.Is(err, apperrors.ErrEstudianteAlreadyExists) {
			return control, nil
		}
		return "", err
	}

	logger.Info().Str("estudiante", control).Msg("Student profile created on first login")
	return control, nil
}

func (s *alumnoService) MateriasDelPeriodo(ctx context.Context, uid int64, email string) (*dto.MateriasAlumnoResponse, error) {
	control, err := s.EnsureStudentProfile(ctx, uid, email)
	if err != nil {
		return nil, err
	}

	periodo := s.periodo()
	materias, err := s.encuestaRepo.GetMateriasDelPeriodo(ctx, control, periodo)
	if err != nil {
		return nil, err
	}

	resp := &dto.MateriasAlumnoResponse{
		Periodo:    periodo,
		Pendientes: []dto.MateriaAlumno{},
		Evaluadas:  []dto.MateriaAlumno{},
	}
	for _, materia := range materias {
		if materia.Evaluada {
			resp.Evaluadas = append(resp.Evaluadas, *materia)
		} else {
			resp.Pendientes = append(resp.Pendientes, *materia)
		}
	}
	return resp, nil
}

func (s *alumnoService) Registrar(ctx context.Context, uid int64, email, clave string) (*dto.OKResponse, error) {
	control, err := s.EnsureStudentProfile(ctx, uid, email)
	if err != nil {
		return nil, err
	}

	clave = strings.ToUpper(strings.TrimSpace(clave))
	if !validation.IsValidMateriaClave(clave) {
		return nil, apperrors.NewValidationError("clave inválida, se espera el formato AAA-9999")
	}

	if _, err := s.materiaRepo.GetByID(ctx, clave); err != nil {
		return nil, err
	}

	configurada, err := s.encuestaRepo.TieneEvaluacion(ctx, clave)
	if err != nil {
		return nil, err
	}
	if !configurada {
		return nil, apperrors.ErrMateriaNoEvaluacion
	}

	if err := s.encuestaRepo.Registrar(ctx, control, clave, s.periodo()); err != nil {
		return nil, err
	}
	return &dto.OKResponse{OK: true}, nil
}

func (s *alumnoService) GetEncuesta(ctx context.Context, uid int64, email, materiaID string) (*dto.EncuestaResponse, error) {
	control, err := s.EnsureStudentProfile(ctx, uid, email)
	if err != nil {
		return nil, err
	}
	return s.encuestaRepo.GetEncuesta(ctx, control, strings.TrimSpace(materiaID), s.periodo())
}

func (s *alumnoService) EnviarEncuesta(ctx context.Context, uid int64, email string, req *dto.EnviarEncuestaRequest) (*dto.EnviarEncuestaResponse, error) {
	control, err := s.EnsureStudentProfile(ctx, uid, email)
	if err != nil {
		return nil, err
	}

	materiaID := strings.TrimSpace(req.MateriaID)
	if len(req.Respuestas) == 0 {
		return nil, apperrors.NewValidationError("no hay respuestas que guardar")
	}

	materia, err := s.materiaRepo.GetByID(ctx, materiaID)
	if err != nil {
		return nil, err
	}

	combos, err := s.encuestaRepo.GetCombosValidos(ctx, materiaID)
	if err != nil {
		return nil, err
	}
	if len(combos) == 0 {
		return nil, apperrors.ErrMateriaNoEvaluacion
	}

	periodo := s.periodo()
	respuestas := make([]*models.Respuesta, 0, len(req.Respuestas))
	for _, r := range req.Respuestas {
		if !validation.IsValidLikert(r.Likert) {
			return nil, apperrors.NewValidationError("likert fuera de rango, se espera 1 a 4")
		}
		if !combos[[2]int{r.AtributoID, r.CriterioID}] {
			return nil, apperrors.NewValidationError(
				fmt.Sprintf("el criterio %d/%d no pertenece a la evaluación de %s", r.AtributoID, r.CriterioID, materiaID))
		}
		respuestas = append(respuestas, &models.Respuesta{
			CarreraID:    materia.CarreraID,
			MateriaID:    materiaID,
			Periodo:      periodo,
			EstudianteID: control,
			AtributoID:   r.AtributoID,
			CriterioID:   r.CriterioID,
			Likert:       r.Likert,
		})
	}

	if err := s.encuestaRepo.GuardarRespuestas(ctx, periodo, respuestas); err != nil {
		return nil, err
	}

	logger.Info().
		Str("estudiante", control).
		Str("materia", materiaID).
		Int("respuestas", len(respuestas)).
		Msg("Survey submitted")
	return &dto.EnviarEncuestaResponse{
		OK:        true,
		Periodo:   periodo,
		Guardadas: len(respuestas),
	}, nil
}
