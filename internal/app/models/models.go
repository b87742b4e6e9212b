package models

// RolClave identifies an account role
type RolClave string

const (
	RolAdmin       RolClave = "ADMIN"
	RolCoordinador RolClave = "COORDINADOR"
	RolAlumno      RolClave = "ALUMNO"
)

// Nivel is the contribution level of a subject toward a graduate attribute
type Nivel string

const (
	NivelIntroductorio Nivel = "I"
	NivelMedio         Nivel = "M"
	NivelAvanzado      Nivel = "A"
)

// Valid reports whether n is one of the three contribution levels
func (n Nivel) Valid() bool {
	switch n {
	case NivelIntroductorio, NivelMedio, NivelAvanzado:
		return true
	}
	return false
}
