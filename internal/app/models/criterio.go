package models

// Criterio is a rubric criterion under an attribute, with four ordered
// proficiency level descriptions (N1 lowest to N4 highest).
type Criterio struct {
	CarreraID   string `json:"id_carrera"`
	AtributoID  int    `json:"id_atributo"`
	ID          int    `json:"id_criterio"`
	Descripcion string `json:"descripcion"`
	DesN1       string `json:"des_n1"`
	DesN2       string `json:"des_n2"`
	DesN3       string `json:"des_n3"`
	DesN4       string `json:"des_n4"`
}
