// Package service содержит бизнес-логику приложения.
// Это прослойка между HTTP-обработчиками (api) и хранилищем данных (repository).
package service

//go:generate mockgen -source=service.go -destination=mocks/mock_repos.go -package=mocks

import (
	"context"
	"fmt"

	"github.com/IvanChernomyrdin/go-jwt-auth/internal/server/config"
	"github.com/IvanChernomyrdin/go-jwt-auth/internal/server/crypto"
	"github.com/IvanChernomyrdin/go-jwt-auth/internal/server/models"
)

// Repositories — набор интерфейсов, которые сервисный слой ожидает от слоя repository.
type Repositories struct {
	Users  UsersRepo
	Health HealthRepo
}

// Services — агрегатор всех сервисов приложения.
type Services struct {
	Auth   *AuthService
	Users  *UserService
	Health *HealthService
}

// NewServices собирает все сервисы приложения.
// cfg нужен для выбора хэшера паролей и параметров токенов.
func NewServices(repos Repositories, cfg *config.Config) (*Services, error) {
	hasher, err := crypto.NewPasswordHasher(cfg.Password.Hasher, Argon2Params(cfg), cfg.Password.Bcrypt.Cost)
	if err != nil {
		return nil, fmt.Errorf("password hasher: %w", err)
	}

	authn := NewPasswordAuthenticator(repos.Users, hasher)

	return &Services{
		Auth:   NewAuthService(repos.Users, authn, hasher, cfg),
		Users:  NewUserService(repos.Users),
		Health: NewHealthService(repos.Health),
	}, nil
}

// Argon2Params переводит секцию password.argon2 конфига в параметры хэшера.
func Argon2Params(cfg *config.Config) crypto.Argon2Params {
	return crypto.Argon2Params{
		Time:      cfg.Password.Argon2.Time,
		MemoryKiB: cfg.Password.Argon2.MemoryKiB,
		Threads:   cfg.Password.Argon2.Threads,
		KeyLen:    cfg.Password.Argon2.KeyLen,
		SaltLen:   cfg.Password.Argon2.SaltLen,
	}
}

// JWTConfig переводит секцию auth конфига в параметры токенов.
func JWTConfig(cfg *config.Config) crypto.JWTConfig {
	return crypto.JWTConfig{
		Issuer:     cfg.Auth.Issuer,
		Audience:   cfg.Auth.Audience,
		SigningKey: cfg.Auth.JWT.SigningKey,
		AccessTTL:  cfg.Auth.AccessTTL,
	}
}

// HealthRepo — минимально нужное для health-check.
type HealthRepo interface {
	Ping(ctx context.Context) error
}

// UsersRepo — репозиторий пользователей (нужен для register/login/profile).
type UsersRepo interface {
	Create(ctx context.Context, u *models.User) (*models.User, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
}

// Authenticator проверяет пару username/password.
//
// Любая неудача возвращается как ErrInvalidCredentials.
type Authenticator interface {
	Authenticate(ctx context.Context, username, password string) (Principal, error)
}
