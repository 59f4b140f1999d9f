package dto

// ─── Request DTOs ────────────────────────────────────────────────────────────

type LoginRequest struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Pass     string `json:"pass"     validate:"required,min=3,max=100"`
}

type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Pass     string `json:"pass"     validate:"required,min=3,max=100"`
}

// EditUserRequest treats every field as optional (partial update).
type EditUserRequest struct {
	Username *string `json:"username" validate:"omitempty,min=3,max=50"`
	Pass     *string `json:"pass"     validate:"omitempty,min=3,max=100"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type UsuarioResponse struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
}

type LoginData struct {
	Token     string          `json:"token"`
	TokenType string          `json:"token_type"`
	ExpiresIn int             `json:"expires_in"` // seconds
	User      UsuarioResponse `json:"user"`
}
