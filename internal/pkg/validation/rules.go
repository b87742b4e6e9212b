package validation

import (
	"regexp"
	"strings"
)

// Validation rule patterns
var (
	// CarreraIDPattern - career code, 2 to 5 uppercase alphanumerics (e.g. ISC)
	CarreraIDPattern = `^[A-Z0-9]{2,5}$`

	// ControlNumberPattern - student control number, 8 or 9 digits
	ControlNumberPattern = `^\d{8,9}$`

	// MateriaClavePattern - official subject key shape students type in (e.g. SCD-1015)
	MateriaClavePattern = `^[A-Z]{3}-\d{4}$`

	// MateriaIDMaxLength - subject ids are at most 12 characters
	MateriaIDMaxLength = 12
)

// CompiledPatterns caches compiled regex patterns
var CompiledPatterns = struct {
	CarreraID     *regexp.Regexp
	ControlNumber *regexp.Regexp
	MateriaClave  *regexp.Regexp
}{
	CarreraID:     regexp.MustCompile(CarreraIDPattern),
	ControlNumber: regexp.MustCompile(ControlNumberPattern),
	MateriaClave:  regexp.MustCompile(MateriaClavePattern),
}

// NormalizeCarreraID trims and uppercases a career id before validation
func NormalizeCarreraID(id string) string {
	return strings.ToUpper(strings.TrimSpace(id))
}

// IsValidCarreraID reports whether id is a well-formed career code.
// Callers should normalize first.
func IsValidCarreraID(id string) bool {
	return CompiledPatterns.CarreraID.MatchString(id)
}

// IsValidMateriaID reports whether id fits the subject id column
func IsValidMateriaID(id string) bool {
	id = strings.TrimSpace(id)
	return id != "" && len(id) <= MateriaIDMaxLength
}

// IsValidMateriaClave reports whether the key matches the AAA-9999 shape
func IsValidMateriaClave(clave string) bool {
	return CompiledPatterns.MateriaClave.MatchString(strings.ToUpper(clave))
}

// IsValidAtributoID reports whether an attribute id is in range (1-99)
func IsValidAtributoID(id int) bool {
	return id >= 1 && id <= 99
}

// IsValidCriterioID reports whether a criterion id is in range (1-99)
func IsValidCriterioID(id int) bool {
	return id >= 1 && id <= 99
}

// IsValidControlNumber reports whether s is a well-formed control number
func IsValidControlNumber(s string) bool {
	return CompiledPatterns.ControlNumber.MatchString(s)
}

// IsValidNivel reports whether s is a contribution level (I, M or A)
func IsValidNivel(s string) bool {
	return s == "I" || s == "M" || s == "A"
}

// IsValidLikert reports whether v is a Likert answer value (1..4)
func IsValidLikert(v int) bool {
	return v >= 1 && v <= 4
}
