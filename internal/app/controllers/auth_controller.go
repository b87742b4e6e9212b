package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lramirez/acredita/internal/app/models/dto"
	"github.com/lramirez/acredita/internal/app/services"
	"github.com/lramirez/acredita/internal/middleware"
	"github.com/lramirez/acredita/internal/pkg/auth"
)

// AuthController handles login and session endpoints
type AuthController struct {
	authService services.AuthService
	jwtService  *auth.JWTService
}

// NewAuthController creates a new AuthController
func NewAuthController(authService services.AuthService, jwtService *auth.JWTService) *AuthController {
	return &AuthController{
		authService: authService,
		jwtService:  jwtService,
	}
}

// Login authenticates and issues a session token, also set as a cookie
// @Summary Log in
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Credentials"
// @Success 200 {object} dto.LoginResponse
// @Failure 401 {object} dto.ErrorBody
// @Router /auth/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorBody{Error: "email y password son obligatorios"})
		return
	}

	resp, err := c.authService.Login(ctx, req.Email, req.Password)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	maxAge := int(c.jwtService.SessionExpiry().Seconds())
	ctx.SetCookie(middleware.SessionCookieName, resp.Token, maxAge, "/", "", false, true)
	ctx.JSON(http.StatusOK, resp)
}

// Me returns the authenticated principal
// @Summary Current session
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.Me
// @Failure 401 {object} dto.ErrorBody
// @Router /auth/me [get]
func (c *AuthController) Me(ctx *gin.Context) {
	uid, email, rol := middleware.Principal(ctx)
	ctx.JSON(http.StatusOK, dto.Me{ID: uid, Email: email, Rol: rol})
}

// Logout clears the session cookie
// @Summary Log out
// @Tags auth
// @Produce json
// @Success 200 {object} dto.OKResponse
// @Router /auth/logout [post]
func (c *AuthController) Logout(ctx *gin.Context) {
	ctx.SetCookie(middleware.SessionCookieName, "", -1, "/", "", false, true)
	ctx.JSON(http.StatusOK, dto.OKResponse{OK: true})
}
