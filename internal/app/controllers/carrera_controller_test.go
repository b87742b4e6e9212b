package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lramirez/acredita/internal/app/models"
	"github.com/lramirez/acredita/internal/app/models/dto"
	"github.com/lramirez/acredita/internal/app/repositories"
	"github.com/lramirez/acredita/internal/middleware"
	"github.com/lramirez/acredita/internal/pkg/apperrors"
)

// stubCarreraService scripts service behavior per test
type stubCarreraService struct {
	carreras  []*models.Carrera
	deleteFn  func(id string, force bool) (repositories.DeleteReport, error)
	createErr error
}

func (s *stubCarreraService) GetAll(ctx context.Context) ([]*models.Carrera, error) {
	return s.carreras, nil
}

func (s *stubCarreraService) GetResumen(ctx context.Context) ([]dto.CarreraResumen, error) {
	return nil, nil
}

func (s *stubCarreraService) GetByID(ctx context.Context, id string) (*models.Carrera, error) {
	for _, carrera := range s.carreras {
		if carrera.ID == id {
			return carrera, nil
		}
	}
	return nil, apperrors.ErrCarreraNotFound
}

func (s *stubCarreraService) Create(ctx context.Context, id, nombre string) (*models.Carrera, error) {
	if s.createErr != nil {
		return nil, s.createErr
	}
	return &models.Carrera{ID: id, Nombre: nombre}, nil
}

func (s *stubCarreraService) Update(ctx context.Context, id, nombre string) (*models.Carrera, error) {
	return &models.Carrera{ID: id, Nombre: nombre}, nil
}

func (s *stubCarreraService) Delete(ctx context.Context, id string, force bool) (repositories.DeleteReport, error) {
	return s.deleteFn(id, force)
}

func newCarreraRouter(stub *stubCarreraService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	controller := NewCarreraController(stub)
	router.GET("/api/carreras", controller.GetAll)
	router.GET("/api/carreras/:id", controller.GetByID)
	router.POST("/api/carreras", controller.Create)
	router.DELETE("/api/carreras/:id", controller.Delete)
	return router
}

func TestCarreraDeleteBlockedByDependencies(t *testing.T) {
	stub := &stubCarreraService{
		deleteFn: func(id string, force bool) (repositories.DeleteReport, error) {
			require.Equal(t, "ISC", id)
			require.False(t, force)
			return nil, &apperrors.DependencyError{
				Entity: "carrera",
				Counts: map[string]int64{"materias": 12, "respuestas": 340, "coordinadores": 1},
			}
		},
	}
	router := newCarreraRouter(stub)

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodDelete, "/api/carreras/ISC", nil)
	router.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusConflict, recorder.Code)

	var body struct {
		Code   string           `json:"code"`
		Counts map[string]int64 `json:"counts"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	assert.Equal(t, middleware.CodeDependenciesFound, body.Code)
	assert.Equal(t, int64(12), body.Counts["materias"])
	assert.Equal(t, int64(340), body.Counts["respuestas"])
}

func TestCarreraDeleteForced(t *testing.T) {
	stub := &stubCarreraService{
		deleteFn: func(id string, force bool) (repositories.DeleteReport, error) {
			require.True(t, force)
			return repositories.DeleteReport{
				"respuestas": 340,
				"materias":   12,
				"carrera":    1,
			}, nil
		},
	}
	router := newCarreraRouter(stub)

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodDelete, "/api/carreras/ISC?force=1", nil)
	router.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusOK, recorder.Code)

	var body struct {
		OK      bool             `json:"ok"`
		Deleted map[string]int64 `json:"deleted"`
		Forced  bool             `json:"forced"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	assert.True(t, body.OK)
	assert.True(t, body.Forced)
	assert.Equal(t, int64(1), body.Deleted["carrera"])
	assert.Equal(t, int64(340), body.Deleted["respuestas"])
}

func TestCarreraDeleteCleanNoForce(t *testing.T) {
	stub := &stubCarreraService{
		deleteFn: func(id string, force bool) (repositories.DeleteReport, error) {
			require.False(t, force)
			return repositories.DeleteReport{"carrera": 1}, nil
		},
	}
	router := newCarreraRouter(stub)

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodDelete, "/api/carreras/IGE", nil)
	router.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.NotContains(t, recorder.Body.String(), `"forced":true`)
}

func TestCarreraDeleteForceAcceptsOnlyLiteralOne(t *testing.T) {
	stub := &stubCarreraService{
		deleteFn: func(id string, force bool) (repositories.DeleteReport, error) {
			require.False(t, force)
			return nil, &apperrors.DependencyError{
				Entity: "carrera",
				Counts: map[string]int64{"materias": 2},
			}
		},
	}
	router := newCarreraRouter(stub)

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodDelete, "/api/carreras/ISC?force=true", nil)
	router.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusConflict, recorder.Code)
}

func TestCarreraDeleteNotFound(t *testing.T) {
	stub := &stubCarreraService{
		deleteFn: func(id string, force bool) (repositories.DeleteReport, error) {
			return nil, apperrors.ErrCarreraNotFound
		},
	}
	router := newCarreraRouter(stub)

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodDelete, "/api/carreras/XX", nil)
	router.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusNotFound, recorder.Code)
}

func TestCarreraCreateInvalidID(t *testing.T) {
	stub := &stubCarreraService{createErr: apperrors.ErrCarreraInvalidID}
	router := newCarreraRouter(stub)

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodPost, "/api/carreras",
		strings.NewReader(`{"id_carrera":"TOOLONGID","nom_carrera":"X"}`))
	request.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestCarreraGetAll(t *testing.T) {
	stub := &stubCarreraService{
		carreras: []*models.Carrera{
			{ID: "ISC", Nombre: "Ingeniería en Sistemas Computacionales"},
		},
		deleteFn: func(string, bool) (repositories.DeleteReport, error) { return nil, nil },
	}
	router := newCarreraRouter(stub)

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet, "/api/carreras", nil)
	router.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"id_carrera":"ISC"`)
}
