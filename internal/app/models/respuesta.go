package models

// Respuesta is a single Likert answer. The composite key pins it to a
// student, subject, period, attribute and criterion; resubmission for the
// same key overwrites the value.
type Respuesta struct {
	CarreraID    string `json:"id_carrera"`
	MateriaID    string `json:"id_materia"`
	Periodo      string `json:"periodo"`
	EstudianteID string `json:"id_estudiante"`
	AtributoID   int    `json:"id_atributo"`
	CriterioID   int    `json:"id_criterio"`
	Likert       int    `json:"likert"`
}
