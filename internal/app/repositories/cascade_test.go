package repositories

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lramirez/acredita/internal/pkg/apperrors"
)

func TestDependencyCountsTotal(t *testing.T) {
	counts := DependencyCounts{
		"materias":   3,
		"respuestas": 40,
		"atributos":  0,
	}
	assert.Equal(t, int64(43), counts.Total())
	assert.Equal(t, int64(0), DependencyCounts{}.Total())
}

// Every cascade plan must keep count columns and classes aligned, share
// one argument tuple across all statements, and end at the target table.
func TestCascadeSpecsAreWellFormed(t *testing.T) {
	specs := []CascadeSpec{
		(&CarreraRepository{}).cascadeSpec("ISC"),
		(&MateriaRepository{}).cascadeSpec("SCD-1015"),
		(&AtributoRepository{}).cascadeSpec("ISC", 3),
		(&CriterioRepository{}).cascadeSpec("ISC", 3, 2),
		(&MateriaAtributoRepository{}).cascadeSpec("ISC", "SCD-1015", 3),
		(&EstudianteRepository{}).cascadeSpec("19030422"),
	}

	for _, spec := range specs {
		t.Run(spec.Entity, func(t *testing.T) {
			require.NotEmpty(t, spec.CountClasses)
			require.NotEmpty(t, spec.TargetSQL)
			require.Error(t, spec.NotFound)

			// One scalar subquery per declared class
			assert.Equal(t, len(spec.CountClasses),
				strings.Count(spec.CountSQL, "SELECT COUNT(*)"),
				"count columns must match count classes")

			// The shared argument tuple covers every placeholder used
			maxPlaceholder := "$" + string(rune('0'+len(spec.Args)))
			assert.Contains(t, spec.CountSQL, "$1")
			assert.Contains(t, spec.TargetSQL, maxPlaceholder)
			for _, step := range spec.Steps {
				assert.NotEmpty(t, step.Class)
				assert.Contains(t, step.SQL, "$1")
			}
		})
	}
}

func TestCascadeTargetClassesAreSingular(t *testing.T) {
	assert.Equal(t, "carrera", (&CarreraRepository{}).cascadeSpec("ISC").Entity)
	assert.Equal(t, "materia", (&MateriaRepository{}).cascadeSpec("SCD-1015").Entity)
	assert.Equal(t, "atributo", (&AtributoRepository{}).cascadeSpec("ISC", 3).Entity)
	assert.Equal(t, "criterio", (&CriterioRepository{}).cascadeSpec("ISC", 3, 2).Entity)
	assert.Equal(t, "mapeo", (&MateriaAtributoRepository{}).cascadeSpec("ISC", "SCD-1015", 3).Entity)
	assert.Equal(t, "estudiante", (&EstudianteRepository{}).cascadeSpec("19030422").Entity)
}

func TestCarreraCascadeCoversAllDependents(t *testing.T) {
	spec := (&CarreraRepository{}).cascadeSpec("ISC")

	assert.ElementsMatch(t, []string{
		"materias", "atributos", "criterios", "materia_atributo",
		"respuestas", "alumno_materia", "coordinadores",
	}, spec.CountClasses)

	// Leaf tables go before the tables they reference
	order := map[string]int{}
	for i, step := range spec.Steps {
		if _, seen := order[step.Class]; !seen {
			order[step.Class] = i
		}
	}
	assert.Less(t, order["respuestas"], order["criterios"])
	assert.Less(t, order["criterios"], order["atributos"])
	assert.Less(t, order["materia_atributo"], order["materias"])
	assert.Less(t, order["alumno_materia"], order["materias"])
}

func TestMateriaCascadeGateIgnoresRegistrations(t *testing.T) {
	spec := (&MateriaRepository{}).cascadeSpec("SCD-1015")

	// Registrations are removed but never block the delete
	assert.ElementsMatch(t, []string{"respuestas", "mapa"}, spec.CountClasses)

	classes := make([]string, 0, len(spec.Steps))
	for _, step := range spec.Steps {
		classes = append(classes, step.Class)
	}
	assert.Contains(t, classes, "alumno_materia")
}

func TestEstudianteCascadeRemovesLinkedAccount(t *testing.T) {
	spec := (&EstudianteRepository{}).cascadeSpec("19030422")

	assert.Equal(t, []string{"respuestas"}, spec.CountClasses)
	assert.ErrorIs(t, spec.NotFound, apperrors.ErrEstudianteNotFound)

	var deletesUsuario bool
	for _, step := range spec.Steps {
		if step.Class == "usuarios" {
			deletesUsuario = true
			assert.Contains(t, step.SQL, "USING estudiantes")
		}
	}
	assert.True(t, deletesUsuario, "linked account must go with the student")
}
