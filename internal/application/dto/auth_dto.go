package dto

// LoginRequest entrada para login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserSummary salida pública de un usuario (sin hash de contraseña).
type UserSummary struct {
	ID           string `json:"id"`
	Email        string `json:"email"`
	Nom          string `json:"nom"`
	Prenom       string `json:"prenom"`
	Role         string `json:"role"`
	EntrepriseID string `json:"entrepriseId"`
}

// LoginResponse salida con el token. RefreshToken repite el access token (no hay flujo de refresh).
type LoginResponse struct {
	AccessToken  string      `json:"accessToken"`
	RefreshToken string      `json:"refreshToken"`
	User         UserSummary `json:"user"`
}

// MeResponse salida de GET /auth/me.
type MeResponse struct {
	User UserSummary `json:"user"`
}
