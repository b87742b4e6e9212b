package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lramirez/acredita/internal/app/models/dto"
	"github.com/lramirez/acredita/internal/pkg/auth"
)

// Context keys for the authenticated principal
const (
	ContextUserID = "uid"
	ContextEmail  = "email"
	ContextRol    = "rol"
)

// SessionCookieName is the cookie browser clients authenticate with
const SessionCookieName = "token"

// AuthMiddleware validates the session token from the Authorization header
// or the session cookie and stores the principal on the request context
func AuthMiddleware(jwtService *auth.JWTService) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		tokenString := ""
		if header := ctx.GetHeader("Authorization"); header != "" {
			extracted, err := auth.ExtractBearerToken(header)
			if err == nil {
				tokenString = extracted
			}
		}
		if tokenString == "" {
			if cookie, err := ctx.Cookie(SessionCookieName); err == nil {
				tokenString = cookie
			}
		}
		if tokenString == "" {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorBody{Error: "no autenticado"})
			return
		}

		claims, err := jwtService.ValidateToken(tokenString)
		if err != nil {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorBody{Error: "sesión inválida o expirada"})
			return
		}

		ctx.Set(ContextUserID, claims.UID)
		ctx.Set(ContextEmail, claims.Email)
		ctx.Set(ContextRol, claims.Rol)
		ctx.Next()
	}
}

// RoleRequired allows only principals whose role is in the given set
func RoleRequired(roles ...string) gin.HandlerFunc {
	allowed := make(map[string]bool, len(roles))
	for _, role := range roles {
		allowed[role] = true
	}

	return func(ctx *gin.Context) {
		rol := ctx.GetString(ContextRol)
		if !allowed[rol] {
			ctx.AbortWithStatusJSON(http.StatusForbidden, dto.ErrorBody{Error: "permiso denegado"})
			return
		}
		ctx.Next()
	}
}

// Principal reads the authenticated identity from the request context
func Principal(ctx *gin.Context) (int64, string, string) {
	uid, _ := ctx.Get(ContextUserID)
	id, _ := uid.(int64)
	return id, ctx.GetString(ContextEmail), ctx.GetString(ContextRol)
}
