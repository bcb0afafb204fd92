// Package models содержит DTO запросов и ответов HTTP API.
package models

import (
	"time"

	"github.com/google/uuid"
)

// RegisterRequest — тело POST /api/auth/register.
type RegisterRequest struct {
	Username string `json:"username" example:"alice"`
	Email    string `json:"email" example:"alice@x.com"`
	Password string `json:"password" example:"pw1"`
}

// LoginRequest — тело POST /api/auth/login.
type LoginRequest struct {
	Username string `json:"username" example:"alice"`
	Password string `json:"password" example:"pw1"`
}

// AuthResponse — ответ регистрации и логина. Нигде не сохраняется.
type AuthResponse struct {
	Token    string `json:"token"`
	Username string `json:"username" example:"alice"`
	Email    string `json:"email" example:"alice@x.com"`
}

// ProfileResponse — ответ GET /api/users/profile.
type ProfileResponse struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username" example:"alice"`
	Email     string    `json:"email" example:"alice@x.com"`
	Role      string    `json:"role" example:"ROLE_USER"`
	CreatedAt time.Time `json:"createdAt"`
}

// MessageResponse — тело любой ошибки.
type MessageResponse struct {
	Message string `json:"message" example:"Credenciales inválidas"`
}

// HealthResponse — ответ GET /api/health.
type HealthResponse struct {
	Status string `json:"status" example:"ok"`
}
