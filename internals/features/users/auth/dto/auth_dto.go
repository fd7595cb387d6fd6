// internals/features/users/auth/dto/auth_dto.go
package dto

import "github.com/google/uuid"

type LoginRequest struct {
	Identifier string `json:"identifier"` // email atau username
	Password   string `json:"password"`
}

type RegisterRequest struct {
	UserName string `json:"user_name" validate:"required,min=3,max=50"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type AuthResponse struct {
	AccessToken string       `json:"access_token"`
	User        UserResponse `json:"user"`
}

type UserResponse struct {
	ID       uuid.UUID `json:"id"`
	UserName string    `json:"user_name"`
	Email    string    `json:"email"`
	Roles    []string  `json:"roles"`
}
