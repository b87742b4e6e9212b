package services

import (
	"context"
	"errors"
	"strings"

	"github.com/lramirez/acredita/internal/app/models"
	"github.com/lramirez/acredita/internal/app/models/dto"
	"github.com/lramirez/acredita/internal/app/repositories"
	"github.com/lramirez/acredita/internal/pkg/apperrors"
	"github.com/lramirez/acredita/internal/pkg/validation"
)

// NivelService handles the subject-to-attribute contribution map
type NivelService interface {
	GetAll(ctx context.Context, carreraID, materiaID string) ([]*models.MateriaAtributo, error)
	Create(ctx context.Context, req *dto.CreateMapeoRequest) (*models.MateriaAtributo, error)
	Update(ctx context.Context, carreraID, materiaID string, atributoID int, req *dto.UpdateMapeoRequest) (*models.MateriaAtributo, error)
	Delete(ctx context.Context, carreraID, materiaID string, atributoID int, force bool) (repositories.DeleteReport, error)
}

type nivelService struct {
	mapeoRepo    *repositories.MateriaAtributoRepository
	atributoRepo *repositories.AtributoRepository
}

// NewNivelService creates a new contribution map service instance
func NewNivelService(mapeoRepo *repositories.MateriaAtributoRepository, atributoRepo *repositories.AtributoRepository) NivelService {
	return &nivelService{
		mapeoRepo:    mapeoRepo,
		atributoRepo: atributoRepo,
	}
}

func (s *nivelService) GetAll(ctx context.Context, carreraID, materiaID string) ([]*models.MateriaAtributo, error) {
	return s.mapeoRepo.GetAll(ctx, validation.NormalizeCarreraID(carreraID), strings.TrimSpace(materiaID))
}

func (s *nivelService) Create(ctx context.Context, req *dto.CreateMapeoRequest) (*models.MateriaAtributo, error) {
	carreraID := validation.NormalizeCarreraID(req.CarreraID)
	if !validation.IsValidCarreraID(carreraID) {
		return nil, apperrors.ErrCarreraInvalidID
	}
	materiaID := strings.TrimSpace(req.MateriaID)
	if !validation.IsValidMateriaID(materiaID) {
		return nil, apperrors.NewValidationError("clave de materia inválida")
	}
	nivel := models.Nivel(strings.ToUpper(strings.TrimSpace(req.Nivel)))
	if !nivel.Valid() {
		return nil, apperrors.NewValidationError("nivel inválido, se espera I, M o A")
	}

	exists, belongs, err := s.mapeoRepo.MateriaBelongsToCarrera(ctx, materiaID, carreraID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, apperrors.ErrMateriaMissing
	}
	if !belongs {
		return nil, apperrors.ErrMateriaWrongCarrera
	}

	if _, err := s.atributoRepo.GetByID(ctx, carreraID, req.AtributoID); err != nil {
		if errors.Is(err, apperrors.ErrAtributoNotFound) {
			return nil, apperrors.ErrAtributoMissing
		}
		return nil, err
	}

	mapeo := &models.MateriaAtributo{
		CarreraID:  carreraID,
		MateriaID:  materiaID,
		AtributoID: req.AtributoID,
		Nivel:      nivel,
	}
	if err := s.mapeoRepo.Create(ctx, mapeo); err != nil {
		return nil, err
	}
	return mapeo, nil
}

func (s *nivelService) Update(ctx context.Context, carreraID, materiaID string, atributoID int, req *dto.UpdateMapeoRequest) (*models.MateriaAtributo, error) {
	carreraID = validation.NormalizeCarreraID(carreraID)
	materiaID = strings.TrimSpace(materiaID)
	nivel := models.Nivel(strings.ToUpper(strings.TrimSpace(req.Nivel)))
	if !nivel.Valid() {
		return nil, apperrors.NewValidationError("nivel inválido, se espera I, M o A")
	}

	if err := s.mapeoRepo.Update(ctx, carreraID, materiaID, atributoID, nivel); err != nil {
		return nil, err
	}
	return &models.MateriaAtributo{
		CarreraID:  carreraID,
		MateriaID:  materiaID,
		AtributoID: atributoID,
		Nivel:      nivel,
	}, nil
}

func (s *nivelService) Delete(ctx context.Context, carreraID, materiaID string, atributoID int, force bool) (repositories.DeleteReport, error) {
	return s.mapeoRepo.Delete(ctx, validation.NormalizeCarreraID(carreraID), strings.TrimSpace(materiaID), atributoID, force)
}
