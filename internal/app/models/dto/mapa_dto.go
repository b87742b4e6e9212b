package dto

// CreateMapeoRequest maps a subject to an attribute at a contribution level.
type CreateMapeoRequest struct {
	CarreraID  string `json:"id_carrera" binding:"required"`
	MateriaID  string `json:"id_materia" binding:"required"`
	AtributoID int    `json:"id_atributo" binding:"required"`
	Nivel      string `json:"nivel" binding:"required"`
}

// UpdateMapeoRequest changes the contribution level of a mapping.
type UpdateMapeoRequest struct {
	Nivel string `json:"nivel" binding:"required"`
}
