package models

import "time"

// Materia is a subject/course owned by a career.
type Materia struct {
	ID          string     `json:"id_materia"`
	Nombre      string     `json:"nom_materia"`
	CarreraID   string     `json:"id_carrera"`
	FechaInicio *time.Time `json:"mat_fecini"`
	FechaFin    *time.Time `json:"mat_fecfin"`
}
