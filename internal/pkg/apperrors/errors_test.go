package apperrors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDependencyError(t *testing.T) {
	err := &DependencyError{
		Entity: "carrera",
		Counts: map[string]int64{
			"materias":   12,
			"respuestas": 340,
		},
	}

	assert.Equal(t, "carrera en uso", err.Error())
	assert.Equal(t, int64(352), err.Total())
	assert.True(t, errors.Is(err, ErrConflict))

	var depErr *DependencyError
	assert.True(t, errors.As(error(err), &depErr))
}

func TestCustomErrorUnwrap(t *testing.T) {
	err := NewValidationError("clave inválida")

	assert.Equal(t, "clave inválida", err.Error())
	assert.True(t, errors.Is(err, ErrValidationFailed))
	assert.False(t, errors.Is(err, ErrConflict))
}

func TestCustomErrorFallbackMessage(t *testing.T) {
	err := &CustomError{Err: ErrResourceNotFound}
	assert.Equal(t, "resource not found", err.Error())
}
