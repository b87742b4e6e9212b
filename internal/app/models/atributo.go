package models

// Atributo is a graduate outcome attribute, keyed by (career, attribute id).
// Attribute ids run 1-99 within a career.
type Atributo struct {
	CarreraID string  `json:"id_carrera"`
	ID        int     `json:"id_atributo"`
	Nombre    string  `json:"nom_atributo"`
	NomCorto  *string `json:"nomcorto"`
}
