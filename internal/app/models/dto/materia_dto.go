package dto

// CreateMateriaRequest carries a new subject.
type CreateMateriaRequest struct {
	ID          string  `json:"id_materia" binding:"required"`
	Nombre      string  `json:"nom_materia" binding:"required"`
	CarreraID   string  `json:"id_carrera" binding:"required"`
	FechaInicio *string `json:"mat_fecini"`
	FechaFin    *string `json:"mat_fecfin"`
}

// UpdateMateriaRequest is a partial update; nil fields keep their
// current value.
type UpdateMateriaRequest struct {
	Nombre      *string `json:"nom_materia"`
	CarreraID   *string `json:"id_carrera"`
	FechaInicio *string `json:"mat_fecini"`
	FechaFin    *string `json:"mat_fecfin"`
}
