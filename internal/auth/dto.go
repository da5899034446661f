// AngelaMos | 2026
// dto.go

package auth

// Length and format rules for username, email, role and password live in
// the store constraints (and the pre-hash password check); the request
// DTOs only assert presence and upper bounds.
type RegisterRequest struct {
	Username string `json:"username" validate:"required,max=100"`
	Role     string `json:"role"     validate:"required"`
	Password string `json:"password" validate:"required,max=128"`
	Email    string `json:"email"    validate:"required,max=100"`
}

type LoginRequest struct {
	Username string `json:"username" validate:"required,max=100"`
	Password string `json:"password" validate:"required,max=128"`
}

type RegisterResponse struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

type WhoamiResponse struct {
	ID   int64  `json:"id"`
	Role string `json:"role"`
}
