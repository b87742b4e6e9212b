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

// CriterioService handles rubric criterion operations
type CriterioService interface {
	GetAll(ctx context.Context, carreraID string, atributoID int) ([]*models.Criterio, error)
	GetByID(ctx context.Context, carreraID string, atributoID, id int) (*models.Criterio, error)
	Create(ctx context.Context, req *dto.CreateCriterioRequest) (*models.Criterio, error)
	Update(ctx context.Context, carreraID string, atributoID, id int, req *dto.UpdateCriterioRequest) (*models.Criterio, error)
	Delete(ctx context.Context, carreraID string, atributoID, id int, force bool) (repositories.DeleteReport, error)
}

type criterioService struct {
	criterioRepo *repositories.CriterioRepository
}

// NewCriterioService creates a new criterion service instance
func NewCriterioService(criterioRepo *repositories.CriterioRepository) CriterioService {
	return &criterioService{criterioRepo: criterioRepo}
}

func (s *criterioService) GetAll(ctx context.Context, carreraID string, atributoID int) ([]*models.Criterio, error) {
	return s.criterioRepo.GetAll(ctx, validation.NormalizeCarreraID(carreraID), atributoID)
}

func (s *criterioService) GetByID(ctx context.Context, carreraID string, atributoID, id int) (*models.Criterio, error) {
	return s.criterioRepo.GetByID(ctx, validation.NormalizeCarreraID(carreraID), atributoID, id)
}

func (s *criterioService) Create(ctx context.Context, req *dto.CreateCriterioRequest) (*models.Criterio, error) {
	carreraID := validation.NormalizeCarreraID(req.CarreraID)
	if !validation.IsValidCarreraID(carreraID) {
		return nil, apperrors.ErrCarreraInvalidID
	}
	if !validation.IsValidAtributoID(req.AtributoID) {
		return nil, apperrors.NewValidationError("id de atributo inválido, se espera 1-99")
	}
	if !validation.IsValidCriterioID(req.ID) {
		return nil, apperrors.NewValidationError("id de criterio inválido, se espera 1-99")
	}
	for _, campo := range []string{req.Descripcion, req.DesN1, req.DesN2, req.DesN3, req.DesN4} {
		if strings.TrimSpace(campo) == "" {
			return nil, apperrors.NewValidationError("la descripción y los cuatro niveles son obligatorios")
		}
	}

	criterio := &models.Criterio{
		CarreraID:   carreraID,
		AtributoID:  req.AtributoID,
		ID:          req.ID,
		Descripcion: strings.TrimSpace(req.Descripcion),
		DesN1:       strings.TrimSpace(req.DesN1),
		DesN2:       strings.TrimSpace(req.DesN2),
		DesN3:       strings.TrimSpace(req.DesN3),
		DesN4:       strings.TrimSpace(req.DesN4),
	}
	if err := s.criterioRepo.Create(ctx, criterio); err != nil {
		return nil, err
	}
	return criterio, nil
}

func (s *criterioService) Update(ctx context.Context, carreraID string, atributoID, id int, req *dto.UpdateCriterioRequest) (*models.Criterio, error) {
	carreraID = validation.NormalizeCarreraID(carreraID)
	err := s.criterioRepo.Update(ctx, carreraID, atributoID, id,
		req.Descripcion, req.DesN1, req.DesN2, req.DesN3, req.DesN4)
	if err != nil {
		return nil, err
	}
	return s.criterioRepo.GetByID(ctx, carreraID, atributoID, id)
}

func (s *criterioService) Delete(ctx context.Context, carreraID string, atributoID, id int, force bool) (repositories.DeleteReport, error) {
	return s.criterioRepo.Delete(ctx, validation.NormalizeCarreraID(carreraID), atributoID, id, force)
}
