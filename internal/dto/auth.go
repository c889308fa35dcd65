package dto

// LoginRequest authenticates a user against the settings document.
type LoginRequest struct {
	UserID   string `json:"userId" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse carries the signed session token.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}
