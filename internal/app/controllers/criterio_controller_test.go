package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lramirez/acredita/internal/app/models"
	"github.com/lramirez/acredita/internal/app/models/dto"
	"github.com/lramirez/acredita/internal/app/repositories"
	"github.com/lramirez/acredita/internal/pkg/apperrors"
)

// stubCriterioService scripts criterion behavior per test
type stubCriterioService struct {
	deleteFn func(carreraID string, atributoID, id int, force bool) (repositories.DeleteReport, error)
}

func (s *stubCriterioService) GetAll(ctx context.Context, carreraID string, atributoID int) ([]*models.Criterio, error) {
	return nil, nil
}

func (s *stubCriterioService) GetByID(ctx context.Context, carreraID string, atributoID, id int) (*models.Criterio, error) {
	return nil, apperrors.ErrCriterioNotFound
}

func (s *stubCriterioService) Create(ctx context.Context, req *dto.CreateCriterioRequest) (*models.Criterio, error) {
	return nil, nil
}

func (s *stubCriterioService) Update(ctx context.Context, carreraID string, atributoID, id int, req *dto.UpdateCriterioRequest) (*models.Criterio, error) {
	return nil, nil
}

func (s *stubCriterioService) Delete(ctx context.Context, carreraID string, atributoID, id int, force bool) (repositories.DeleteReport, error) {
	return s.deleteFn(carreraID, atributoID, id, force)
}

func newCriterioRouter(stub *stubCriterioService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	controller := NewCriterioController(stub)
	router.DELETE("/api/criterios/:carrera/:atributo/:criterio", controller.Delete)
	return router
}

func TestCriterioDeleteBlockedByAnswers(t *testing.T) {
	stub := &stubCriterioService{
		deleteFn: func(carreraID string, atributoID, id int, force bool) (repositories.DeleteReport, error) {
			require.Equal(t, "ISC", carreraID)
			require.Equal(t, 3, atributoID)
			require.Equal(t, 2, id)
			require.False(t, force)
			return nil, &apperrors.DependencyError{
				Entity: "criterio",
				Counts: map[string]int64{"respuestas": 5},
			}
		},
	}
	router := newCriterioRouter(stub)

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodDelete, "/api/criterios/ISC/3/2", nil)
	router.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusConflict, recorder.Code)

	var body struct {
		Counts map[string]int64 `json:"counts"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	assert.Equal(t, int64(5), body.Counts["respuestas"])
}

func TestCriterioDeleteForcedReportsAnswers(t *testing.T) {
	stub := &stubCriterioService{
		deleteFn: func(carreraID string, atributoID, id int, force bool) (repositories.DeleteReport, error) {
			require.True(t, force)
			return repositories.DeleteReport{"criterio": 1, "respuestas": 5}, nil
		},
	}
	router := newCriterioRouter(stub)

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodDelete, "/api/criterios/ISC/3/2?force=1", nil)
	router.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusOK, recorder.Code)

	var body struct {
		OK      bool             `json:"ok"`
		Deleted map[string]int64 `json:"deleted"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	assert.True(t, body.OK)
	assert.Equal(t, int64(1), body.Deleted["criterio"])
	assert.Equal(t, int64(5), body.Deleted["respuestas"])
}

func TestCriterioDeleteNonNumericPathParam(t *testing.T) {
	stub := &stubCriterioService{
		deleteFn: func(string, int, int, bool) (repositories.DeleteReport, error) {
			t.Fatal("service must not be called")
			return nil, nil
		},
	}
	router := newCriterioRouter(stub)

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodDelete, "/api/criterios/ISC/tres/2", nil)
	router.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}
