package dto

// LoginRequest carries user credentials.
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse returns the signed session token and the authenticated
// identity. The token is also set as a cookie for browser clients.
type LoginResponse struct {
	OK    bool   `json:"ok"`
	Token string `json:"token"`
	User  Me     `json:"user"`
}

// Me is the authenticated principal as exposed to clients.
type Me struct {
	ID    int64  `json:"id_usuario"`
	Email string `json:"email"`
	Rol   string `json:"rol"`
}
