package dto

// CreateUsuarioRequest creates a login account. A coordinator role also
// needs the career the account will coordinate.
type CreateUsuarioRequest struct {
	Email     string  `json:"email" binding:"required"`
	Nombre    string  `json:"nombre" binding:"required"`
	Rol       string  `json:"rol" binding:"required"`
	CarreraID *string `json:"id_carrera"`
}

// UsuarioResumen is a list row for account administration.
type UsuarioResumen struct {
	ID        int64   `json:"id_usuario"`
	Email     string  `json:"email"`
	Nombre    string  `json:"nombre"`
	Rol       string  `json:"rol"`
	CarreraID *string `json:"id_carrera,omitempty"`
}

// CreateUsuarioResponse returns the new account with its one-time
// temporary password.
type CreateUsuarioResponse struct {
	OK           bool   `json:"ok"`
	ID           int64  `json:"id_usuario"`
	Email        string `json:"email"`
	TempPassword string `json:"temp_password"`
}
