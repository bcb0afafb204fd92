package service

import (
	"context"
	"errors"

	"github.com/IvanChernomyrdin/go-jwt-auth/internal/server/models"
	serr "github.com/IvanChernomyrdin/go-jwt-auth/internal/shared/errors"
)

// UserService отдаёт данные учётной записи.
type UserService struct {
	users UsersRepo
}

// NewUserService создаёт UserService.
func NewUserService(users UsersRepo) *UserService {
	return &UserService{users: users}
}

// Profile возвращает пользователя по username из проверенного токена.
// Если записи нет — ErrUserNotFound.
func (s *UserService) Profile(ctx context.Context, username string) (*models.User, error) {
	u, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, serr.ErrNotFound) {
			return nil, serr.ErrUserNotFound
		}
		return nil, err
	}
	return u, nil
}
