package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/lramirez/acredita/internal/app/models"
	"github.com/lramirez/acredita/internal/app/models/dto"
	"github.com/lramirez/acredita/internal/app/repositories"
	"github.com/lramirez/acredita/internal/pkg/apperrors"
	"github.com/lramirez/acredita/internal/pkg/auth"
	"github.com/lramirez/acredita/internal/pkg/logger"
	"github.com/lramirez/acredita/internal/pkg/validation"
)

// EstudianteService handles student roster administration
type EstudianteService interface {
	GetAll(ctx context.Context, filter repositories.ListFilter) ([]*dto.EstudianteResumen, error)
	GetStats(ctx context.Context) (*dto.EstudiantesStats, error)
	GetDetalle(ctx context.Context, id string) (*dto.EstudianteDetalle, error)
	Create(ctx context.Context, req *dto.CreateEstudianteRequest) (*dto.CreateEstudianteResponse, error)
	Import(ctx context.Context, req *dto.ImportEstudiantesRequest) (*dto.ImportEstudiantesResponse, error)
	Update(ctx context.Context, id, nombre string) error
	Delete(ctx context.Context, id string, force bool) (repositories.DeleteReport, error)
}

type estudianteService struct {
	estudianteRepo *repositories.EstudianteRepository
	emailDomain    string
}

// NewEstudianteService creates a new student service instance. Accounts
// provisioned without an explicit email get control@emailDomain.
func NewEstudianteService(estudianteRepo *repositories.EstudianteRepository, emailDomain string) EstudianteService {
	return &estudianteService{
		estudianteRepo: estudianteRepo,
		emailDomain:    emailDomain,
	}
}

func (s *estudianteService) GetAll(ctx context.Context, filter repositories.ListFilter) ([]*dto.EstudianteResumen, error) {
	filter.CarreraID = validation.NormalizeCarreraID(filter.CarreraID)
	return s.estudianteRepo.GetAll(ctx, filter)
}

func (s *estudianteService) GetStats(ctx context.Context) (*dto.EstudiantesStats, error) {
	return s.estudianteRepo.GetStats(ctx)
}

func (s *estudianteService) GetDetalle(ctx context.Context, id string) (*dto.EstudianteDetalle, error) {
	return s.estudianteRepo.GetDetalle(ctx, strings.TrimSpace(id))
}

func (s *estudianteService) defaultEmail(control string) string {
	return fmt.Sprintf("%s@%s", control, s.emailDomain)
}

func (s *estudianteService) Create(ctx context.Context, req *dto.CreateEstudianteRequest) (*dto.CreateEstudianteResponse, error) {
	control := strings.TrimSpace(req.ID)
	if !validation.IsValidControlNumber(control) {
		return nil, apperrors.NewValidationError("número de control inválido, se esperan 8 o 9 dígitos")
	}
	nombre := strings.TrimSpace(req.Nombre)
	if nombre == "" {
		return nil, apperrors.NewValidationError("el nombre del estudiante es obligatorio")
	}

	email := s.defaultEmail(control)
	if req.Email != nil && strings.TrimSpace(*req.Email) != "" {
		email = strings.ToLower(strings.TrimSpace(*req.Email))
	}

	tempPassword, err := auth.GenerateTempPassword()
	if err != nil {
		return nil, err
	}
	hash, err := auth.HashPassword(tempPassword)
	if err != nil {
		return nil, err
	}

	estudiante := &models.Estudiante{ID: control, Nombre: nombre}
	if _, err := s.estudianteRepo.CreateWithUsuario(ctx, estudiante, email, hash); err != nil {
		return nil, err
	}

	logger.Info().Str("estudiante", control).Msg("Estudiante created with account")
	return &dto.CreateEstudianteResponse{
		OK:           true,
		ID:           control,
		Email:        email,
		TempPassword: tempPassword,
	}, nil
}

// Import bulk creates students, updating the name of the ones that already
// exist. Row failures are collected instead of aborting the batch.
func (s *estudianteService) Import(ctx context.Context, req *dto.ImportEstudiantesRequest) (*dto.ImportEstudiantesResponse, error) {
	resp := &dto.ImportEstudiantesResponse{
		OK:           true,
		Errores:      []dto.ImportError{},
		Credenciales: []dto.CreatedCredential{},
	}

	for _, row := range req.Estudiantes {
		control := strings.TrimSpace(row.ID)
		nombre := strings.TrimSpace(row.Nombre)
		if !validation.IsValidControlNumber(control) || nombre == "" {
			resp.Errores = append(resp.Errores, dto.ImportError{
				ID:    control,
				Error: "número de control o nombre inválido",
			})
			continue
		}

		if _, err := s.estudianteRepo.GetByID(ctx, control); err == nil {
			if err := s.estudianteRepo.UpdateNombre(ctx, control, nombre); err != nil {
				resp.Errores = append(resp.Errores, dto.ImportError{ID: control, Error: err.Error()})
				continue
			}
			resp.Actualizados++
			continue
		} else if !errors.Is(err, apperrors.ErrEstudianteNotFound) {
			resp.Errores = append(resp.Errores, dto.ImportError{ID: control, Error: err.Error()})
			continue
		}

		created, err := s.Create(ctx, &dto.CreateEstudianteRequest{
			ID:     control,
			Nombre: nombre,
			Email:  row.Email,
		})
		if err != nil {
			resp.Errores = append(resp.Errores, dto.ImportError{ID: control, Error: err.Error()})
			continue
		}
		resp.Creados++
		resp.Credenciales = append(resp.Credenciales, dto.CreatedCredential{
			ID:           created.ID,
			Email:        created.Email,
			TempPassword: created.TempPassword,
		})
	}

	return resp, nil
}

func (s *estudianteService) Update(ctx context.Context, id, nombre string) error {
	nombre = strings.TrimSpace(nombre)
	if nombre == "" {
		return apperrors.NewValidationError("el nombre del estudiante es obligatorio")
	}
	return s.estudianteRepo.UpdateNombre(ctx, strings.TrimSpace(id), nombre)
}

func (s *estudianteService) Delete(ctx context.Context, id string, force bool) (repositories.DeleteReport, error) {
	return s.estudianteRepo.Delete(ctx, strings.TrimSpace(id), force)
}
