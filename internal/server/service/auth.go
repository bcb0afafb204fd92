package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/IvanChernomyrdin/go-jwt-auth/internal/server/config"
	"github.com/IvanChernomyrdin/go-jwt-auth/internal/server/crypto"
	"github.com/IvanChernomyrdin/go-jwt-auth/internal/server/models"
	serr "github.com/IvanChernomyrdin/go-jwt-auth/internal/shared/errors"
)

// AuthService реализует регистрацию и логин.
//
// Ответственность:
//   - проверка уникальности username/email
//   - хэширование пароля и сохранение пользователя
//   - проверка учётных данных через Authenticator
//   - выпуск access-токена
type AuthService struct {
	users  UsersRepo
	authn  Authenticator
	hasher crypto.PasswordHasher

	jwt         crypto.JWTConfig
	defaultRole string
}

// AuthResult — токен и данные пользователя, которые отдаются клиенту.
type AuthResult struct {
	Token    string
	Username string
	Email    string
}

// NewAuthService создаёт AuthService с зависимостями и настройками из конфига.
func NewAuthService(users UsersRepo, authn Authenticator, hasher crypto.PasswordHasher, cfg *config.Config) *AuthService {
	role := cfg.Auth.DefaultRole
	if role == "" {
		role = models.DefaultRole
	}
	return &AuthService{
		users:       users,
		authn:       authn,
		hasher:      hasher,
		jwt:         JWTConfig(cfg),
		defaultRole: role,
	}
}

// Register регистрирует нового пользователя и выдаёт ему токен.
//
// Ошибки:
//   - ErrInvalidInput, если одно из полей пустая строка
//   - ErrUsernameTaken / ErrEmailTaken при дубликате (в том числе при гонке на вставке)
//   - ErrInternal при любой другой ошибке
func (s *AuthService) Register(ctx context.Context, username, email, password string) (AuthResult, error) {
	// username сравнивается как есть: регистр и пробелы значимы
	if username == "" || email == "" || password == "" {
		return AuthResult{}, serr.ErrInvalidInput
	}

	taken, err := s.users.ExistsByUsername(ctx, username)
	if err != nil {
		return AuthResult{}, err
	}
	if taken {
		return AuthResult{}, serr.ErrUsernameTaken
	}

	taken, err = s.users.ExistsByEmail(ctx, email)
	if err != nil {
		return AuthResult{}, err
	}
	if taken {
		return AuthResult{}, serr.ErrEmailTaken
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return AuthResult{}, fmt.Errorf("%w: %v", serr.ErrInternal, err)
	}

	u, err := s.users.Create(ctx, &models.User{
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		Role:         s.defaultRole,
	})
	if err != nil {
		return AuthResult{}, err
	}

	token, err := crypto.NewAccessToken(u.Username, u.Role, s.jwt)
	if err != nil {
		return AuthResult{}, fmt.Errorf("%w: %v", serr.ErrInternal, err)
	}

	return AuthResult{Token: token, Username: u.Username, Email: u.Email}, nil
}

// Login проверяет учётные данные и выдаёт токен.
//
// Поведение:
//   - не раскрывает, что именно не так (username или пароль)
//   - после аутентификации читает полную запись пользователя; если её нет — ErrUserNotFound
func (s *AuthService) Login(ctx context.Context, username, password string) (AuthResult, error) {
	p, err := s.authn.Authenticate(ctx, username, password)
	if err != nil {
		return AuthResult{}, err
	}

	u, err := s.users.GetByUsername(ctx, p.Username)
	if err != nil {
		if errors.Is(err, serr.ErrNotFound) {
			return AuthResult{}, serr.ErrUserNotFound
		}
		return AuthResult{}, err
	}

	token, err := crypto.NewAccessToken(u.Username, p.Role, s.jwt)
	if err != nil {
		return AuthResult{}, fmt.Errorf("%w: %v", serr.ErrInternal, err)
	}

	return AuthResult{Token: token, Username: u.Username, Email: u.Email}, nil
}
