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

// AtributoService handles graduate attribute operations
type AtributoService interface {
	GetAll(ctx context.Context, carreraID string) ([]*models.Atributo, error)
	GetByID(ctx context.Context, carreraID string, id int) (*models.Atributo, error)
	Create(ctx context.Context, req *dto.CreateAtributoRequest) (*models.Atributo, error)
	Update(ctx context.Context, carreraID string, id int, req *dto.UpdateAtributoRequest) (*models.Atributo, error)
	Delete(ctx context.Context, carreraID string, id int, force bool) (repositories.DeleteReport, error)
}

type atributoService struct {
	atributoRepo *repositories.AtributoRepository
}

// NewAtributoService creates a new attribute service instance
func NewAtributoService(atributoRepo *repositories.AtributoRepository) AtributoService {
	return &atributoService{atributoRepo: atributoRepo}
}

func (s *atributoService) GetAll(ctx context.Context, carreraID string) ([]*models.Atributo, error) {
	return s.atributoRepo.GetAll(ctx, validation.NormalizeCarreraID(carreraID))
}

func (s *atributoService) GetByID(ctx context.Context, carreraID string, id int) (*models.Atributo, error) {
	return s.atributoRepo.GetByID(ctx, validation.NormalizeCarreraID(carreraID), id)
}

func (s *atributoService) Create(ctx context.Context, req *dto.CreateAtributoRequest) (*models.Atributo, error) {
	carreraID := validation.NormalizeCarreraID(req.CarreraID)
	if !validation.IsValidCarreraID(carreraID) {
		return nil, apperrors.ErrCarreraInvalidID
	}
	if !validation.IsValidAtributoID(req.ID) {
		return nil, apperrors.NewValidationError("id de atributo inválido, se espera 1-99")
	}
	nombre := strings.TrimSpace(req.Nombre)
	if nombre == "" {
		return nil, apperrors.NewValidationError("el nombre del atributo es obligatorio")
	}

	atributo := &models.Atributo{
		CarreraID: carreraID,
		ID:        req.ID,
		Nombre:    nombre,
		NomCorto:  req.NomCorto,
	}
	if err := s.atributoRepo.Create(ctx, atributo); err != nil {
		return nil, err
	}
	return atributo, nil
}

func (s *atributoService) Update(ctx context.Context, carreraID string, id int, req *dto.UpdateAtributoRequest) (*models.Atributo, error) {
	nombre := strings.TrimSpace(req.Nombre)
	if nombre == "" {
		return nil, apperrors.NewValidationError("el nombre del atributo es obligatorio")
	}

	atributo := &models.Atributo{
		CarreraID: validation.NormalizeCarreraID(carreraID),
		ID:        id,
		Nombre:    nombre,
		NomCorto:  req.NomCorto,
	}
	if err := s.atributoRepo.Update(ctx, atributo); err != nil {
		return nil, err
	}
	return atributo, nil
}

func (s *atributoService) Delete(ctx context.Context, carreraID string, id int, force bool) (repositories.DeleteReport, error) {
	return s.atributoRepo.Delete(ctx, validation.NormalizeCarreraID(carreraID), id, force)
}
