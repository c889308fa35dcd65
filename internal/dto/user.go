package dto

import "github.com/sahakari-app/sahakari_backend/internal/core/domain"

// CreateUserRequest adds a login to the settings document.
type CreateUserRequest struct {
	UserID   string `json:"userId" binding:"required"`
	Name     string `json:"name" binding:"required"`
	Password string `json:"password" binding:"required,min=6"`
	Role     string `json:"role" binding:"required,oneof=ADMIN TREASURER VIEWER"`
}

// UpdateUserRequest edits an existing login.
type UpdateUserRequest struct {
	Name     *string `json:"name"`
	Password *string `json:"password" binding:"omitempty,min=6"`
	Role     *string `json:"role" binding:"omitempty,oneof=ADMIN TREASURER VIEWER"`
}

// UserResponse is the externally visible shape of a user. The password hash
// never leaves the service layer.
type UserResponse struct {
	UserID string          `json:"userId"`
	Name   string          `json:"name"`
	Role   domain.UserRole `json:"role"`
}

// ToUserResponse converts a domain.User, dropping the password hash.
func ToUserResponse(u domain.User) UserResponse {
	return UserResponse{UserID: u.UserID, Name: u.Name, Role: u.Role}
}

// ToUserResponses converts a slice of users.
func ToUserResponses(users []domain.User) []UserResponse {
	res := make([]UserResponse, len(users))
	for i, u := range users {
		res[i] = ToUserResponse(u)
	}
	return res
}
