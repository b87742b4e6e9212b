package controllers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/lramirez/acredita/internal/app/models"
	"github.com/lramirez/acredita/internal/app/models/dto"
	"github.com/lramirez/acredita/internal/app/repositories"
	"github.com/lramirez/acredita/internal/pkg/apperrors"
)

// stubNivelService scripts mapping behavior per test
type stubNivelService struct {
	createErr error
}

func (s *stubNivelService) GetAll(ctx context.Context, carreraID, materiaID string) ([]*models.MateriaAtributo, error) {
	return nil, nil
}

func (s *stubNivelService) Create(ctx context.Context, req *dto.CreateMapeoRequest) (*models.MateriaAtributo, error) {
	if s.createErr != nil {
		return nil, s.createErr
	}
	return &models.MateriaAtributo{
		CarreraID:  req.CarreraID,
		MateriaID:  req.MateriaID,
		AtributoID: req.AtributoID,
		Nivel:      models.Nivel(req.Nivel),
	}, nil
}

func (s *stubNivelService) Update(ctx context.Context, carreraID, materiaID string, atributoID int, req *dto.UpdateMapeoRequest) (*models.MateriaAtributo, error) {
	return nil, nil
}

func (s *stubNivelService) Delete(ctx context.Context, carreraID, materiaID string, atributoID int, force bool) (repositories.DeleteReport, error) {
	return nil, nil
}

func newNivelRouter(stub *stubNivelService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	controller := NewNivelController(stub)
	router.POST("/api/niveles-materia", controller.Create)
	return router
}

func postMapeo(router *gin.Engine) *httptest.ResponseRecorder {
	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodPost, "/api/niveles-materia",
		strings.NewReader(`{"id_carrera":"ISC","id_materia":"SCD-1015","id_atributo":3,"nivel":"M"}`))
	request.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(recorder, request)
	return recorder
}

func TestNivelCreateMissingSubjectConflicts(t *testing.T) {
	router := newNivelRouter(&stubNivelService{createErr: apperrors.ErrMateriaMissing})

	recorder := postMapeo(router)
	assert.Equal(t, http.StatusConflict, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "materia inexistente")
}

func TestNivelCreateMissingAttributeConflicts(t *testing.T) {
	router := newNivelRouter(&stubNivelService{createErr: apperrors.ErrAtributoMissing})

	recorder := postMapeo(router)
	assert.Equal(t, http.StatusConflict, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "atributo inexistente")
}

func TestNivelCreateOK(t *testing.T) {
	router := newNivelRouter(&stubNivelService{})

	recorder := postMapeo(router)
	assert.Equal(t, http.StatusCreated, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"nivel":"M"`)
}
