package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeCarreraID(t *testing.T) {
	assert.Equal(t, "ISC", NormalizeCarreraID("  isc "))
	assert.Equal(t, "IGE", NormalizeCarreraID("ige"))
}

func TestIsValidCarreraID(t *testing.T) {
	valid := []string{"ISC", "IGE", "IM", "ABCDE", "II1"}
	for _, id := range valid {
		assert.True(t, IsValidCarreraID(id), id)
	}

	invalid := []string{"", "I", "ABCDEF", "isc", "IS-C", "IS C"}
	for _, id := range invalid {
		assert.False(t, IsValidCarreraID(id), id)
	}
}

func TestIsValidMateriaID(t *testing.T) {
	assert.True(t, IsValidMateriaID("SCD-1015"))
	assert.True(t, IsValidMateriaID(strings.Repeat("A", 12)))

	// One over the column limit
	assert.False(t, IsValidMateriaID(strings.Repeat("A", 13)))
	assert.False(t, IsValidMateriaID(""))
	assert.False(t, IsValidMateriaID("   "))
}

func TestIsValidMateriaClave(t *testing.T) {
	assert.True(t, IsValidMateriaClave("SCD-1015"))
	assert.True(t, IsValidMateriaClave("scd-1015"))

	assert.False(t, IsValidMateriaClave("SC-1015"))
	assert.False(t, IsValidMateriaClave("SCDA-1015"))
	assert.False(t, IsValidMateriaClave("SCD-101"))
	assert.False(t, IsValidMateriaClave("SCD1015"))
}

func TestIsValidControlNumber(t *testing.T) {
	assert.True(t, IsValidControlNumber("12345678"))
	assert.True(t, IsValidControlNumber("123456789"))

	assert.False(t, IsValidControlNumber("1234567"))
	assert.False(t, IsValidControlNumber("1234567890"))
	assert.False(t, IsValidControlNumber("1234567a"))
	assert.False(t, IsValidControlNumber(""))
}

func TestIsValidAtributoAndCriterioID(t *testing.T) {
	assert.True(t, IsValidAtributoID(1))
	assert.True(t, IsValidAtributoID(99))
	assert.False(t, IsValidAtributoID(0))
	assert.False(t, IsValidAtributoID(100))

	assert.True(t, IsValidCriterioID(7))
	assert.False(t, IsValidCriterioID(-1))
}

func TestIsValidNivel(t *testing.T) {
	for _, nivel := range []string{"I", "M", "A"} {
		assert.True(t, IsValidNivel(nivel))
	}
	for _, nivel := range []string{"", "i", "X", "IM"} {
		assert.False(t, IsValidNivel(nivel))
	}
}

func TestIsValidLikert(t *testing.T) {
	for v := 1; v <= 4; v++ {
		assert.True(t, IsValidLikert(v))
	}
	assert.False(t, IsValidLikert(0))
	assert.False(t, IsValidLikert(5))
}
