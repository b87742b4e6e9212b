package dto

// CreateCarreraRequest carries a new career. The id is normalized to
// uppercase before validation.
type CreateCarreraRequest struct {
	ID     string `json:"id_carrera" binding:"required"`
	Nombre string `json:"nom_carrera" binding:"required"`
}

// UpdateCarreraRequest renames an existing career.
type UpdateCarreraRequest struct {
	Nombre string `json:"nom_carrera" binding:"required"`
}

// CarreraResumen is one row of the administration listing: the career,
// its coordinator when assigned, and catalog totals.
type CarreraResumen struct {
	ID               string  `json:"id_carrera"`
	Nombre           string  `json:"nom_carrera"`
	Coordinador      *string `json:"coordinador"`
	CoordinadorEmail *string `json:"coordinador_email"`
	Materias         int64   `json:"materias"`
	Atributos        int64   `json:"atributos"`
}
