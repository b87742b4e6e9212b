package models

// Carrera is an academic program. The id is a short uppercase code
// (e.g. "ISC") used as the foreign key everywhere else.
type Carrera struct {
	ID     string `json:"id_carrera"`
	Nombre string `json:"nom_carrera"`
}
