package services

import (
	"context"
	"strings"
	"time"

	"github.com/lramirez/acredita/internal/app/models"
	"github.com/lramirez/acredita/internal/app/models/dto"
	"github.com/lramirez/acredita/internal/app/repositories"
	"github.com/lramirez/acredita/internal/pkg/apperrors"
	"github.com/lramirez/acredita/internal/pkg/validation"
)

// MateriaService handles subject operations
type MateriaService interface {
	GetAll(ctx context.Context, carreraID string) ([]*models.Materia, error)
	GetByID(ctx context.Context, id string) (*models.Materia, error)
	Create(ctx context.Context, req *dto.CreateMateriaRequest) (*models.Materia, error)
	Update(ctx context.Context, id string, req *dto.UpdateMateriaRequest) (*models.Materia, error)
	Delete(ctx context.Context, id string, force bool) (repositories.DeleteReport, error)
}

type materiaService struct {
	materiaRepo *repositories.MateriaRepository
}

// NewMateriaService creates a new subject service instance
func NewMateriaService(materiaRepo *repositories.MateriaRepository) MateriaService {
	return &materiaService{materiaRepo: materiaRepo}
}

func (s *materiaService) GetAll(ctx context.Context, carreraID string) ([]*models.Materia, error) {
	return s.materiaRepo.GetAll(ctx, validation.NormalizeCarreraID(carreraID))
}

func (s *materiaService) GetByID(ctx context.Context, id string) (*models.Materia, error) {
	return s.materiaRepo.GetByID(ctx, strings.TrimSpace(id))
}

func parseFecha(value *string) (*time.Time, error) {
	if value == nil || strings.TrimSpace(*value) == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", strings.TrimSpace(*value))
	if err != nil {
		return nil, apperrors.NewValidationError("fecha inválida, se espera YYYY-MM-DD")
	}
	return &t, nil
}

func (s *materiaService) Create(ctx context.Context, req *dto.CreateMateriaRequest) (*models.Materia, error) {
	id := strings.TrimSpace(req.ID)
	if !validation.IsValidMateriaID(id) {
		return nil, apperrors.NewValidationError("clave de materia inválida")
	}
	nombre := strings.TrimSpace(req.Nombre)
	if nombre == "" {
		return nil, apperrors.NewValidationError("el nombre de la materia es obligatorio")
	}
	carreraID := validation.NormalizeCarreraID(req.CarreraID)
	if !validation.IsValidCarreraID(carreraID) {
		return nil, apperrors.ErrCarreraInvalidID
	}

	fecini, err := parseFecha(req.FechaInicio)
	if err != nil {
		return nil, err
	}
	fecfin, err := parseFecha(req.FechaFin)
	if err != nil {
		return nil, err
	}

	materia := &models.Materia{
		ID:          id,
		Nombre:      nombre,
		CarreraID:   carreraID,
		FechaInicio: fecini,
		FechaFin:    fecfin,
	}
	if err := s.materiaRepo.Create(ctx, materia); err != nil {
		return nil, err
	}
	return materia, nil
}

func (s *materiaService) Update(ctx context.Context, id string, req *dto.UpdateMateriaRequest) (*models.Materia, error) {
	id = strings.TrimSpace(id)

	var carreraID *string
	if req.CarreraID != nil {
		normalized := validation.NormalizeCarreraID(*req.CarreraID)
		if !validation.IsValidCarreraID(normalized) {
			return nil, apperrors.ErrCarreraInvalidID
		}
		carreraID = &normalized
	}
	if _, err := parseFecha(req.FechaInicio); err != nil {
		return nil, err
	}
	if _, err := parseFecha(req.FechaFin); err != nil {
		return nil, err
	}

	if err := s.materiaRepo.Update(ctx, id, req.Nombre, carreraID, req.FechaInicio, req.FechaFin); err != nil {
		return nil, err
	}
	return s.materiaRepo.GetByID(ctx, id)
}

func (s *materiaService) Delete(ctx context.Context, id string, force bool) (repositories.DeleteReport, error) {
	return s.materiaRepo.Delete(ctx, strings.TrimSpace(id), force)
}
