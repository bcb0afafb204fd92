package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/IvanChernomyrdin/go-jwt-auth/internal/server/crypto"
	serr "github.com/IvanChernomyrdin/go-jwt-auth/internal/shared/errors"
)

// Principal — проверенная личность после успешной аутентификации.
type Principal struct {
	Username string
	Role     string
}

// PasswordAuthenticator сверяет пароль с хэшем из хранилища.
type PasswordAuthenticator struct {
	users  UsersRepo
	hasher crypto.PasswordHasher
}

// NewPasswordAuthenticator создаёт PasswordAuthenticator.
func NewPasswordAuthenticator(users UsersRepo, hasher crypto.PasswordHasher) *PasswordAuthenticator {
	return &PasswordAuthenticator{users: users, hasher: hasher}
}

// Authenticate проверяет username и password.
//
// Неизвестный пользователь, неверный пароль, битый хэш и сбой хранилища
// одинаково дают ErrInvalidCredentials. Причина сохраняется в тексте ошибки для логов.
func (a *PasswordAuthenticator) Authenticate(ctx context.Context, username, password string) (Principal, error) {
	if username == "" || password == "" {
		return Principal{}, serr.ErrInvalidCredentials
	}

	u, err := a.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, serr.ErrNotFound) {
			return Principal{}, serr.ErrInvalidCredentials
		}
		return Principal{}, fmt.Errorf("%w: %v", serr.ErrInvalidCredentials, err)
	}

	ok, err := a.hasher.Verify(password, u.PasswordHash)
	if err != nil {
		return Principal{}, fmt.Errorf("%w: %v", serr.ErrInvalidCredentials, err)
	}
	if !ok {
		return Principal{}, serr.ErrInvalidCredentials
	}

	return Principal{Username: u.Username, Role: u.Role}, nil
}
