package dto

// RegisterRequest carries everything a new account needs. All fields are
// required, passwords must be at least 8 characters.
type RegisterRequest struct {
	Username    string `json:"username" binding:"required,min=3,max=30"`
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required,min=8"`
	DisplayName string `json:"display_name" binding:"required,max=100"`
	Bio         string `json:"bio" binding:"required,max=1000"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// AuthResponse is returned on successful login.
type AuthResponse struct {
	Message      string       `json:"message"`
	Token        string       `json:"token"`
	RefreshToken string       `json:"refresh_token"`
	User         UserIdentity `json:"user"`
}

// UserIdentity is the public identity exposed after login.
type UserIdentity struct {
	ID          string `json:"id"`
	Username    string `json:"username"`
	DisplayName string `json:"display_name"`
}

type RefreshResponse struct {
	Token     string `json:"token"`
	TokenType string `json:"token_type"`
}
