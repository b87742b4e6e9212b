package models

// Estudiante is a student record, optionally linked 1:1 to a login account.
type Estudiante struct {
	ID        string `json:"id_estudiante"`
	Nombre    string `json:"nombre"`
	UsuarioID *int64 `json:"usuario_id,omitempty"`
}
