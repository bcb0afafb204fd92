// Серверная модель пользователя
package models

import (
	"time"

	"github.com/google/uuid"
)

// DefaultRole — роль, которая выдаётся при регистрации.
const DefaultRole = "ROLE_USER"

// User — учётная запись пользователя.
//
// Username и Email уникальны, Username не меняется после создания.
// PasswordHash никогда не отдаётся наружу.
type User struct {
	ID           uuid.UUID `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"createdAt"`
}
