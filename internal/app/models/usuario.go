package models

// Usuario is a login account. The role key comes joined from the roles table.
type Usuario struct {
	ID           int64    `json:"id_usuario"`
	Email        string   `json:"email"`
	PasswordHash string   `json:"-"`
	Nombre       string   `json:"nombre"`
	RolID        int      `json:"-"`
	RolClave     RolClave `json:"rol,omitempty"`
}
