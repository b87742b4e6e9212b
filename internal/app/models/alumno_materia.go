package models

import "time"

// AlumnoMateria records a student's registration to evaluate a subject in
// a period, independent of whether any answers exist yet.
type AlumnoMateria struct {
	EstudianteID string    `json:"id_estudiante"`
	MateriaID    string    `json:"id_materia"`
	Periodo      string    `json:"periodo"`
	CreadoEn     time.Time `json:"creado_en"`
}
