package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lramirez/acredita/internal/app/models/dto"
	"github.com/lramirez/acredita/internal/pkg/apperrors"
	"github.com/lramirez/acredita/internal/pkg/auth"
	"github.com/lramirez/acredita/internal/pkg/logger"
)

// CodeDependenciesFound marks a 409 that carries dependency counts and can
// be retried with force=1.
const CodeDependenciesFound = "DEPENDENCIES_FOUND"

// notFoundSentinels map to 404
var notFoundSentinels = []error{
	apperrors.ErrResourceNotFound,
	apperrors.ErrCarreraNotFound,
	apperrors.ErrMateriaNotFound,
	apperrors.ErrAtributoNotFound,
	apperrors.ErrCriterioNotFound,
	apperrors.ErrMapeoNotFound,
	apperrors.ErrEstudianteNotFound,
	apperrors.ErrUsuarioNotFound,
}

// conflictSentinels map to 409
var conflictSentinels = []error{
	apperrors.ErrResourceAlreadyExists,
	apperrors.ErrCarreraAlreadyExists,
	apperrors.ErrMateriaAlreadyExists,
	apperrors.ErrAtributoAlreadyExists,
	apperrors.ErrCriterioAlreadyExists,
	apperrors.ErrMapeoAlreadyExists,
	apperrors.ErrEstudianteAlreadyExists,
	apperrors.ErrEmailAlreadyExists,
	apperrors.ErrMateriaWrongCarrera,
	apperrors.ErrCarreraMissing,
	apperrors.ErrMateriaMissing,
	apperrors.ErrAtributoMissing,
	apperrors.ErrConflict,
}

// badRequestSentinels map to 400
var badRequestSentinels = []error{
	apperrors.ErrValidationFailed,
	apperrors.ErrBadRequest,
	apperrors.ErrCarreraInvalidID,
	apperrors.ErrRolInvalid,
	apperrors.ErrMateriaNoEvaluacion,
}

// unauthorizedSentinels map to 401
var unauthorizedSentinels = []error{
	apperrors.ErrInvalidCredentials,
	apperrors.ErrTokenExpired,
	apperrors.ErrTokenInvalid,
	auth.ErrExpiredToken,
	auth.ErrInvalidToken,
	auth.ErrInvalidFormat,
}

func matchesAny(err error, sentinels []error) bool {
	for _, sentinel := range sentinels {
		if errors.Is(err, sentinel) {
			return true
		}
	}
	return false
}

// HandleAPIError translates service and repository errors into the wire
// error envelope. Dependency conflicts get the structured 409 body with
// the per-class counts so clients can offer the forced retry.
func HandleAPIError(ctx *gin.Context, err error) {
	var depErr *apperrors.DependencyError
	if errors.As(err, &depErr) {
		ctx.JSON(http.StatusConflict, dto.ConflictResponse{
			Error:  depErr.Error(),
			Code:   CodeDependenciesFound,
			Counts: depErr.Counts,
			Detail: depErr.Detail,
		})
		return
	}

	switch {
	case matchesAny(err, notFoundSentinels):
		ctx.JSON(http.StatusNotFound, dto.ErrorBody{Error: err.Error()})
	case matchesAny(err, badRequestSentinels):
		ctx.JSON(http.StatusBadRequest, dto.ErrorBody{Error: err.Error()})
	case matchesAny(err, conflictSentinels):
		ctx.JSON(http.StatusConflict, dto.ErrorBody{Error: err.Error()})
	case matchesAny(err, unauthorizedSentinels):
		ctx.JSON(http.StatusUnauthorized, dto.ErrorBody{Error: err.Error()})
	case errors.Is(err, apperrors.ErrPermissionDenied):
		ctx.JSON(http.StatusForbidden, dto.ErrorBody{Error: err.Error()})
	default:
		logger.Error().Err(err).Str("path", ctx.FullPath()).Msg("Unhandled API error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorBody{Error: "error interno del servidor"})
	}
}
