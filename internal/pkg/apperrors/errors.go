package apperrors

import (
	"errors"
	"fmt"
)

// Common errors
var (
	// Resource errors
	ErrResourceNotFound      = errors.New("resource not found")
	ErrResourceAlreadyExists = errors.New("resource already exists")
	ErrConflict              = errors.New("conflict")

	// Authentication errors
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("invalid token")

	// Authorization errors
	ErrPermissionDenied = errors.New("permission denied")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
	ErrBadRequest       = errors.New("bad request")
)

// Carrera errors
var (
	ErrCarreraNotFound      = errors.New("carrera no encontrada")
	ErrCarreraAlreadyExists = errors.New("ya existe una carrera con ese ID")
	ErrCarreraInvalidID     = errors.New("ID de carrera inválido")
)

// Materia errors
var (
	ErrMateriaNotFound      = errors.New("materia no encontrada")
	ErrMateriaAlreadyExists = errors.New("ya existe una materia con esa clave")
	ErrMateriaWrongCarrera  = errors.New("la materia no pertenece a esa carrera")
	ErrMateriaNoEvaluacion  = errors.New("la materia no tiene evaluación configurada")
)

// Atributo / criterio errors
var (
	ErrAtributoNotFound      = errors.New("atributo no encontrado")
	ErrAtributoAlreadyExists = errors.New("atributo duplicado en la carrera")
	ErrCriterioNotFound      = errors.New("criterio no encontrado")
	ErrCriterioAlreadyExists = errors.New("criterio duplicado para ese atributo")
)

// Missing-reference errors: a write names a parent row that does not
// exist. These are conflicts, not lookups of the resource itself.
var (
	ErrCarreraMissing  = errors.New("la carrera no existe")
	ErrMateriaMissing  = errors.New("materia inexistente")
	ErrAtributoMissing = errors.New("atributo inexistente en la carrera")
)

// Materia-atributo mapping errors
var (
	ErrMapeoNotFound      = errors.New("mapeo no encontrado")
	ErrMapeoAlreadyExists = errors.New("ya existe el mapeo materia-atributo")
)

// Estudiante / usuario errors
var (
	ErrEstudianteNotFound      = errors.New("estudiante no encontrado")
	ErrEstudianteAlreadyExists = errors.New("ya existe un estudiante con ese número de control")
	ErrUsuarioNotFound         = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists      = errors.New("el email ya existe")
	ErrRolInvalid              = errors.New("rol inválido")
)

// DependencyError blocks a delete that still has dependent rows. It carries
// the per-class counts the caller shows the user before re-issuing the
// delete with force set.
type DependencyError struct {
	Entity string
	Counts map[string]int64
	Detail string
}

// Error implements the error interface
func (e *DependencyError) Error() string {
	return fmt.Sprintf("%s en uso", e.Entity)
}

// Unwrap lets errors.Is match the generic conflict sentinel
func (e *DependencyError) Unwrap() error {
	return ErrConflict
}

// Total returns the sum of all dependency counts
func (e *DependencyError) Total() int64 {
	var total int64
	for _, n := range e.Counts {
		total += n
	}
	return total
}

// NewValidationError creates a validation error with a user-facing message
func NewValidationError(message string) error {
	return &CustomError{
		Err:     ErrValidationFailed,
		Message: message,
	}
}

// NewNotFoundError creates a not-found error with a user-facing message
func NewNotFoundError(message string) error {
	return &CustomError{
		Err:     ErrResourceNotFound,
		Message: message,
	}
}

// NewConflictError creates a conflict error with a user-facing message
func NewConflictError(message string) error {
	return &CustomError{
		Err:     ErrConflict,
		Message: message,
	}
}

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
}

// Error implements the error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap
func (e *CustomError) Unwrap() error {
	return e.Err
}
