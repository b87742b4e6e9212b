package middleware

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lramirez/acredita/internal/pkg/apperrors"
)

func performWithError(err error) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	recorder := httptest.NewRecorder()
	router := gin.New()
	router.GET("/test", func(ctx *gin.Context) {
		HandleAPIError(ctx, err)
	})

	request := httptest.NewRequest(http.MethodGet, "/test", nil)
	router.ServeHTTP(recorder, request)
	return recorder
}

func TestHandleAPIErrorDependencyConflict(t *testing.T) {
	depErr := &apperrors.DependencyError{
		Entity: "carrera",
		Counts: map[string]int64{"materias": 12, "respuestas": 340},
	}

	recorder := performWithError(depErr)
	assert.Equal(t, http.StatusConflict, recorder.Code)

	var body struct {
		Error  string           `json:"error"`
		Code   string           `json:"code"`
		Counts map[string]int64 `json:"counts"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	assert.Equal(t, "carrera en uso", body.Error)
	assert.Equal(t, CodeDependenciesFound, body.Code)
	assert.Equal(t, int64(12), body.Counts["materias"])
	assert.Equal(t, int64(340), body.Counts["respuestas"])
}

func TestHandleAPIErrorWrappedDependencyConflict(t *testing.T) {
	depErr := &apperrors.DependencyError{
		Entity: "criterio",
		Counts: map[string]int64{"respuestas": 5},
	}

	recorder := performWithError(fmt.Errorf("deleting criterio: %w", depErr))
	assert.Equal(t, http.StatusConflict, recorder.Code)
	assert.Contains(t, recorder.Body.String(), CodeDependenciesFound)
}

func TestHandleAPIErrorStatusMapping(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"not found", apperrors.ErrCarreraNotFound, http.StatusNotFound},
		{"wrapped not found", fmt.Errorf("x: %w", apperrors.ErrMateriaNotFound), http.StatusNotFound},
		{"duplicate", apperrors.ErrMateriaAlreadyExists, http.StatusConflict},
		{"wrong career", apperrors.ErrMateriaWrongCarrera, http.StatusConflict},
		{"career reference missing", apperrors.ErrCarreraMissing, http.StatusConflict},
		{"subject reference missing", apperrors.ErrMateriaMissing, http.StatusConflict},
		{"attribute reference missing", apperrors.ErrAtributoMissing, http.StatusConflict},
		{"validation", apperrors.NewValidationError("clave inválida"), http.StatusBadRequest},
		{"invalid career id", apperrors.ErrCarreraInvalidID, http.StatusBadRequest},
		{"no survey configured", apperrors.ErrMateriaNoEvaluacion, http.StatusBadRequest},
		{"bad credentials", apperrors.ErrInvalidCredentials, http.StatusUnauthorized},
		{"forbidden", apperrors.ErrPermissionDenied, http.StatusForbidden},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := performWithError(tt.err)
			assert.Equal(t, tt.want, recorder.Code)

			var body map[string]any
			require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
			assert.NotEmpty(t, body["error"])
		})
	}
}

func TestHandleAPIErrorHidesInternalDetails(t *testing.T) {
	recorder := performWithError(errors.New("pq: cannot connect to 10.0.0.5"))
	assert.Equal(t, http.StatusInternalServerError, recorder.Code)
	assert.NotContains(t, recorder.Body.String(), "10.0.0.5")
}
