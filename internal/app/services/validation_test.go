package services

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lramirez/acredita/internal/app/models/dto"
	"github.com/lramirez/acredita/internal/pkg/apperrors"
)

// These tests exercise the validation paths that reject input before any
// repository call, so the services are built without a database.

func TestCarreraServiceRejectsBadIDs(t *testing.T) {
	service := NewCarreraService(nil)

	for _, id := range []string{"", "I", "TOOLONGID", "IS C"} {
		_, err := service.Create(context.Background(), id, "Alguna Carrera")
		assert.ErrorIs(t, err, apperrors.ErrCarreraInvalidID, id)
	}

	_, err := service.Create(context.Background(), "ISC", "   ")
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestCarreraServiceUpdateRejectsBadID(t *testing.T) {
	service := NewCarreraService(nil)

	_, err := service.Update(context.Background(), "TOOLONGID", "Otra Carrera")
	assert.ErrorIs(t, err, apperrors.ErrCarreraInvalidID)
}

func TestMateriaServiceRejectsLongID(t *testing.T) {
	service := NewMateriaService(nil)

	_, err := service.Create(context.Background(), &dto.CreateMateriaRequest{
		ID:        strings.Repeat("A", 13),
		Nombre:    "Sistemas Operativos",
		CarreraID: "ISC",
	})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestMateriaServiceRejectsBadDate(t *testing.T) {
	service := NewMateriaService(nil)

	fecha := "15/01/2026"
	_, err := service.Create(context.Background(), &dto.CreateMateriaRequest{
		ID:          "SCD-1015",
		Nombre:      "Sistemas Operativos",
		CarreraID:   "ISC",
		FechaInicio: &fecha,
	})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestAtributoServiceRejectsOutOfRangeID(t *testing.T) {
	service := NewAtributoService(nil)

	for _, id := range []int{0, -3, 100} {
		_, err := service.Create(context.Background(), &dto.CreateAtributoRequest{
			CarreraID: "ISC",
			ID:        id,
			Nombre:    "Comunicación efectiva",
		})
		assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
	}
}

func TestCriterioServiceRequiresAllLevelTexts(t *testing.T) {
	service := NewCriterioService(nil)

	_, err := service.Create(context.Background(), &dto.CreateCriterioRequest{
		CarreraID:   "ISC",
		AtributoID:  3,
		ID:          2,
		Descripcion: "Redacta informes",
		DesN1:       "No lo hace",
		DesN2:       "Lo intenta",
		DesN3:       "Lo hace",
		DesN4:       "   ",
	})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestNivelServiceRejectsBadNivel(t *testing.T) {
	service := NewNivelService(nil, nil)

	_, err := service.Create(context.Background(), &dto.CreateMapeoRequest{
		CarreraID:  "ISC",
		MateriaID:  "SCD-1015",
		AtributoID: 3,
		Nivel:      "X",
	})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

	_, err = service.Update(context.Background(), "ISC", "SCD-1015", 3, &dto.UpdateMapeoRequest{Nivel: "Z"})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestNivelServiceNormalizesNivelCase(t *testing.T) {
	service := NewNivelService(nil, nil)

	// Lowercase nivel is accepted and normalized before hitting storage
	// validation; a bad career id still wins first.
	_, err := service.Create(context.Background(), &dto.CreateMapeoRequest{
		CarreraID:  "x",
		MateriaID:  "SCD-1015",
		AtributoID: 3,
		Nivel:      "m",
	})
	assert.ErrorIs(t, err, apperrors.ErrCarreraInvalidID)
}

func TestEstudianteServiceRejectsBadControlNumber(t *testing.T) {
	service := NewEstudianteService(nil, "itcelaya.edu.mx")

	for _, control := range []string{"1234567", "1234567890", "19A30422"} {
		_, err := service.Create(context.Background(), &dto.CreateEstudianteRequest{
			ID:     control,
			Nombre: "Ana López",
		})
		assert.ErrorIs(t, err, apperrors.ErrValidationFailed, control)
	}
}

func TestUsuarioServiceRejectsBadRole(t *testing.T) {
	service := NewUsuarioService(nil)

	_, err := service.Create(context.Background(), &dto.CreateUsuarioRequest{
		Email:  "persona@example.com",
		Nombre: "Persona",
		Rol:    "SUPERROOT",
	})
	assert.ErrorIs(t, err, apperrors.ErrRolInvalid)
}

func TestUsuarioServiceCoordinatorNeedsCareer(t *testing.T) {
	service := NewUsuarioService(nil)

	_, err := service.Create(context.Background(), &dto.CreateUsuarioRequest{
		Email:  "coord@example.com",
		Nombre: "Coordinación",
		Rol:    "COORDINADOR",
	})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestAlumnoServiceRejectsForeignEmails(t *testing.T) {
	service := NewAlumnoService(nil, nil, nil, "")

	_, err := service.EnsureStudentProfile(context.Background(), 7, "profesor@itcelaya.edu.mx")
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)
}

func TestAlumnoServiceSubmissionRequiresStudentSession(t *testing.T) {
	service := NewAlumnoService(nil, nil, nil, "")

	// Profile resolution runs before anything else, so a non-student
	// session is refused without touching the answer set.
	_, err := service.EnviarEncuesta(context.Background(), 7, "profesor@itcelaya.edu.mx",
		&dto.EnviarEncuestaRequest{MateriaID: "SCD-1015"})
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)
}
