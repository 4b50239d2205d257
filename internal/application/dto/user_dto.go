package dto

import "time"

// RegisterRequest body para POST /api/auth/register.
type RegisterRequest struct {
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required,min=8"`
	DisplayName string `json:"display_name,omitempty"`
}

// LoginRequest body para POST /api/auth/login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse token emitido tras autenticación.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// UpdateRolesRequest body para PUT /api/users/:id/roles (solo admin).
type UpdateRolesRequest struct {
	Roles []string `json:"roles" validate:"required,min=1,dive,oneof=admin compras almoxarife"`
}

// AuthorizeUserRequest body para PATCH /api/users/:id/authorize (solo admin).
type AuthorizeUserRequest struct {
	Authorized bool `json:"authorized"`
}

// UserResponse perfil de usuario en respuestas.
type UserResponse struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	DisplayName  string    `json:"display_name,omitempty"`
	IsAuthorized bool      `json:"is_authorized"`
	Roles        []string  `json:"roles"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// UserListResponse listado de usuarios (solo admin).
type UserListResponse struct {
	Items []UserResponse `json:"items"`
	Total int            `json:"total"`
}
