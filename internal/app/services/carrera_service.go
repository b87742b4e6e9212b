package services

import (
	"context"
	"strings"

	"github.com/lramirez/acredita/internal/app/models"
	"github.com/lramirez/acredita/internal/app/models/dto"
	"github.com/lramirez/acredita/internal/app/repositories"
	"github.com/lramirez/acredita/internal/pkg/apperrors"
	"github.com/lramirez/acredita/internal/pkg/validation"
)

// CarreraService handles career operations
type CarreraService interface {
	GetAll(ctx context.Context) ([]*models.Carrera, error)
	GetResumen(ctx context.Context) ([]dto.CarreraResumen, error)
	GetByID(ctx context.Context, id string) (*models.Carrera, error)
	Create(ctx context.Context, id, nombre string) (*models.Carrera, error)
	Update(ctx context.Context, id, nombre string) (*models.Carrera, error)
	Delete(ctx context.Context, id string, force bool) (repositories.DeleteReport, error)
}

type carreraService struct {
	carreraRepo *repositories.CarreraRepository
}

// NewCarreraService creates a new career service instance
func NewCarreraService(carreraRepo *repositories.CarreraRepository) CarreraService {
	return &carreraService{carreraRepo: carreraRepo}
}

func (s *carreraService) GetAll(ctx context.Context) ([]*models.Carrera, error) {
	return s.carreraRepo.GetAll(ctx)
}

func (s *carreraService) GetResumen(ctx context.Context) ([]dto.CarreraResumen, error) {
	return s.carreraRepo.GetResumen(ctx)
}

func (s *carreraService) GetByID(ctx context.Context, id string) (*models.Carrera, error) {
	return s.carreraRepo.GetByID(ctx, validation.NormalizeCarreraID(id))
}

func (s *carreraService) Create(ctx context.Context, id, nombre string) (*models.Carrera, error) {
	id = validation.NormalizeCarreraID(id)
	if !validation.IsValidCarreraID(id) {
		return nil, apperrors.ErrCarreraInvalidID
	}
	nombre = strings.TrimSpace(nombre)
	if nombre == "" {
		return nil, apperrors.NewValidationError("el nombre de la carrera es obligatorio")
	}

	carrera := &models.Carrera{ID: id, Nombre: nombre}
	if err := s.carreraRepo.Create(ctx, carrera); err != nil {
		return nil, err
	}
	return carrera, nil
}

func (s *carreraService) Update(ctx context.Context, id, nombre string) (*models.Carrera, error) {
	id = validation.NormalizeCarreraID(id)
	if !validation.IsValidCarreraID(id) {
		return nil, apperrors.ErrCarreraInvalidID
	}
	nombre = strings.TrimSpace(nombre)
	if nombre == "" {
		return nil, apperrors.NewValidationError("el nombre de la carrera es obligatorio")
	}

	carrera := &models.Carrera{ID: id, Nombre: nombre}
	if err := s.carreraRepo.Update(ctx, carrera); err != nil {
		return nil, err
	}
	return carrera, nil
}

func (s *carreraService) Delete(ctx context.Context, id string, force bool) (repositories.DeleteReport, error) {
	return s.carreraRepo.Delete(ctx, validation.NormalizeCarreraID(id), force)
}
