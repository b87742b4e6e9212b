package models

// MateriaAtributo maps a subject to a graduate attribute with a
// contribution level. One mapping per (subject, attribute) pair.
type MateriaAtributo struct {
	CarreraID  string `json:"id_carrera"`
	MateriaID  string `json:"id_materia"`
	AtributoID int    `json:"id_atributo"`
	Nivel      Nivel  `json:"nivel"`
}
