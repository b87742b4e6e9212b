package dto

// CreateAtributoRequest carries a new graduate attribute.
type CreateAtributoRequest struct {
	CarreraID string  `json:"id_carrera" binding:"required"`
	ID        int     `json:"id_atributo" binding:"required"`
	Nombre    string  `json:"nom_atributo" binding:"required"`
	NomCorto  *string `json:"nomcorto"`
}

// UpdateAtributoRequest updates the attribute names.
type UpdateAtributoRequest struct {
	Nombre   string  `json:"nom_atributo" binding:"required"`
	NomCorto *string `json:"nomcorto"`
}
