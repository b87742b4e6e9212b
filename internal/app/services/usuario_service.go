package services

import (
	"context"
	"strings"

	"github.com/lramirez/acredita/internal/app/models"
	"github.com/lramirez/acredita/internal/app/models/dto"
	"github.com/lramirez/acredita/internal/app/repositories"
	"github.com/lramirez/acredita/internal/pkg/apperrors"
	"github.com/lramirez/acredita/internal/pkg/auth"
	"github.com/lramirez/acredita/internal/pkg/validation"
)

// UsuarioService handles login account administration
type UsuarioService interface {
	GetAll(ctx context.Context, rol, search string) ([]*dto.UsuarioResumen, error)
	Create(ctx context.Context, req *dto.CreateUsuarioRequest) (*dto.CreateUsuarioResponse, error)
	Delete(ctx context.Context, id int64) error
}

type usuarioService struct {
	usuarioRepo *repositories.UsuarioRepository
}

// NewUsuarioService creates a new account service instance
func NewUsuarioService(usuarioRepo *repositories.UsuarioRepository) UsuarioService {
	return &usuarioService{usuarioRepo: usuarioRepo}
}

func (s *usuarioService) GetAll(ctx context.Context, rol, search string) ([]*dto.UsuarioResumen, error) {
	return s.usuarioRepo.GetAll(ctx, strings.ToUpper(strings.TrimSpace(rol)), strings.TrimSpace(search))
}

func (s *usuarioService) Create(ctx context.Context, req *dto.CreateUsuarioRequest) (*dto.CreateUsuarioResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" || !strings.Contains(email, "@") {
		return nil, apperrors.NewValidationError("email inválido")
	}
	nombre := strings.TrimSpace(req.Nombre)
	if nombre == "" {
		return nil, apperrors.NewValidationError("el nombre es obligatorio")
	}

	rol := models.RolClave(strings.ToUpper(strings.TrimSpace(req.Rol)))
	switch rol {
	case models.RolAdmin, models.RolCoordinador, models.RolAlumno:
	default:
		return nil, apperrors.ErrRolInvalid
	}

	var carreraID *string
	if rol == models.RolCoordinador {
		if req.CarreraID == nil {
			return nil, apperrors.NewValidationError("un coordinador requiere carrera")
		}
		normalized := validation.NormalizeCarreraID(*req.CarreraID)
		if !validation.IsValidCarreraID(normalized) {
			return nil, apperrors.ErrCarreraInvalidID
		}
		carreraID = &normalized
	}

	tempPassword, err := auth.GenerateTempPassword()
	if err != nil {
		return nil, err
	}
	hash, err := auth.HashPassword(tempPassword)
	if err != nil {
		return nil, err
	}

	usuario := &models.Usuario{
		Email:        email,
		PasswordHash: hash,
		Nombre:       nombre,
		RolClave:     rol,
	}
	if err := s.usuarioRepo.Create(ctx, usuario, carreraID); err != nil {
		return nil, err
	}

	return &dto.CreateUsuarioResponse{
		OK:           true,
		ID:           usuario.ID,
		Email:        email,
		TempPassword: tempPassword,
	}, nil
}

func (s *usuarioService) Delete(ctx context.Context, id int64) error {
	return s.usuarioRepo.Delete(ctx, id)
}
