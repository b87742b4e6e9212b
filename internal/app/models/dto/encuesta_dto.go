package dto

// MateriaAlumno is one subject in the student's period view, flagged by
// whether this student already submitted answers for it.
type MateriaAlumno struct {
	ID        string `json:"id_materia"`
	Nombre    string `json:"nom_materia"`
	CarreraID string `json:"id_carrera"`
	Evaluada  bool   `json:"evaluada"`
}

// MateriasAlumnoResponse splits the student's registered subjects for the
// current period into pending and already evaluated.
type MateriasAlumnoResponse struct {
	Periodo    string          `json:"periodo"`
	Pendientes []MateriaAlumno `json:"pendientes"`
	Evaluadas  []MateriaAlumno `json:"evaluadas"`
}

// RegistrarMateriaRequest registers the student to evaluate a subject.
type RegistrarMateriaRequest struct {
	Clave string `json:"clave" binding:"required"`
}

// CriterioEncuesta is one rubric criterion inside the survey tree.
type CriterioEncuesta struct {
	ID          int    `json:"id_criterio"`
	Descripcion string `json:"descripcion"`
	DesN1       string `json:"des_n1"`
	DesN2       string `json:"des_n2"`
	DesN3       string `json:"des_n3"`
	DesN4       string `json:"des_n4"`
}

// AtributoEncuesta is one attribute with its criteria and the mapped
// contribution level for the surveyed subject.
type AtributoEncuesta struct {
	ID        int                `json:"id_atributo"`
	Nombre    string             `json:"nom_atributo"`
	NomCorto  *string            `json:"nomcorto"`
	Nivel     string             `json:"nivel"`
	Criterios []CriterioEncuesta `json:"criterios"`
}

// EncuestaResponse is the survey form for one subject: the attribute tree
// plus whether this student already answered it this period.
type EncuestaResponse struct {
	MateriaID    string             `json:"id_materia"`
	Nombre       string             `json:"nom_materia"`
	CarreraID    string             `json:"id_carrera"`
	Periodo      string             `json:"periodo"`
	YaRespondida bool               `json:"ya_respondida"`
	Atributos    []AtributoEncuesta `json:"atributos"`
}

// RespuestaEncuesta is one submitted answer.
type RespuestaEncuesta struct {
	AtributoID int `json:"id_atributo" binding:"required"`
	CriterioID int `json:"id_criterio" binding:"required"`
	Likert     int `json:"likert" binding:"required"`
}

// EnviarEncuestaRequest submits the full answer set for one subject.
// The subject id comes from the request path.
type EnviarEncuestaRequest struct {
	MateriaID  string              `json:"-"`
	Respuestas []RespuestaEncuesta `json:"respuestas" binding:"required"`
}

// EnviarEncuestaResponse acknowledges a survey submission.
type EnviarEncuestaResponse struct {
	OK        bool   `json:"ok"`
	Periodo   string `json:"periodo"`
	Guardadas int    `json:"guardadas"`
}
