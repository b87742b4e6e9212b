package dto

// CreateCriterioRequest carries a new rubric criterion with its four
// proficiency level descriptions.
type CreateCriterioRequest struct {
	CarreraID   string `json:"id_carrera" binding:"required"`
	AtributoID  int    `json:"id_atributo" binding:"required"`
	ID          int    `json:"id_criterio" binding:"required"`
	Descripcion string `json:"descripcion" binding:"required"`
	DesN1       string `json:"des_n1" binding:"required"`
	DesN2       string `json:"des_n2" binding:"required"`
	DesN3       string `json:"des_n3" binding:"required"`
	DesN4       string `json:"des_n4" binding:"required"`
}

// UpdateCriterioRequest is a partial update; nil fields keep their
// current value.
type UpdateCriterioRequest struct {
	Descripcion *string `json:"descripcion"`
	DesN1       *string `json:"des_n1"`
	DesN2       *string `json:"des_n2"`
	DesN3       *string `json:"des_n3"`
	DesN4       *string `json:"des_n4"`
}
