package services

import (
	"context"
	"strings"

	"github.com/lramirez/acredita/internal/app/models/dto"
	"github.com/lramirez/acredita/internal/app/repositories"
	"github.com/lramirez/acredita/internal/pkg/apperrors"
	"github.com/lramirez/acredita/internal/pkg/auth"
	"github.com/lramirez/acredita/internal/pkg/logger"
)

// AuthService handles login and session issuance
type AuthService interface {
	Login(ctx context.Context, email, password string) (*dto.LoginResponse, error)
}

type authService struct {
	usuarioRepo *repositories.UsuarioRepository
	jwtService  *auth.JWTService
}

// NewAuthService creates a new auth service instance
func NewAuthService(usuarioRepo *repositories.UsuarioRepository, jwtService *auth.JWTService) AuthService {
	return &authService{
		usuarioRepo: usuarioRepo,
		jwtService:  jwtService,
	}
}

func (s *authService) Login(ctx context.Context, email, password string) (*dto.LoginResponse, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	usuario, err := s.usuarioRepo.GetByEmail(ctx, email)
	if err != nil {
		// Same answer for unknown email and bad password
		return nil, apperrors.ErrInvalidCredentials
	}

	if !auth.CheckPassword(password, usuario.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}

	token, err := s.jwtService.GenerateToken(usuario.ID, usuario.Email, string(usuario.RolClave))
	if err != nil {
		return nil, err
	}

	logger.Info().Int64("usuario", usuario.ID).Str("rol", string(usuario.RolClave)).Msg("Login succeeded")
	return &dto.LoginResponse{
		OK:    true,
		Token: token,
		User: dto.Me{
			ID:    usuario.ID,
			Email: usuario.Email,
			Rol:   string(usuario.RolClave),
		},
	}, nil
}
