// Package repository содержит реализации слоя доступа к данным (Repository layer).
//
// Репозитории инкапсулируют работу с БД и не содержат бизнес-логики.
// Все ошибки приводятся к доменным ошибкам из internal/shared/errors.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgconn"

	"github.com/IvanChernomyrdin/go-jwt-auth/internal/server/models"
	serr "github.com/IvanChernomyrdin/go-jwt-auth/internal/shared/errors"
)

const (
	// pgUniqueViolation — SQLSTATE unique_violation.
	pgUniqueViolation = "23505"

	usernameConstraint = "users_username_key"
	emailConstraint    = "users_email_key"
)

// UsersRepository — хранилище учётных записей пользователей в PostgreSQL.
type UsersRepository struct {
	db *sql.DB
}

// NewUsersRepository создает новый UsersRepository.
func NewUsersRepository(db *sql.DB) *UsersRepository {
	return &UsersRepository{db: db}
}

// Create сохраняет пользователя. ID и CreatedAt проставляет БД.
//
// Нарушение уникальности username/email возвращается как ErrUsernameTaken/ErrEmailTaken.
func (r *UsersRepository) Create(ctx context.Context, u *models.User) (*models.User, error) {
	created := *u

	err := r.db.QueryRowContext(ctx,
		`INSERT INTO users (username, email, password_hash, role)
		 VALUES ($1,$2,$3,$4)
		 RETURNING id, created_at`,
		u.Username, u.Email, u.PasswordHash, u.Role,
	).Scan(&created.ID, &created.CreatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			switch pgErr.ConstraintName {
			case usernameConstraint:
				return nil, serr.ErrUsernameTaken
			case emailConstraint:
				return nil, serr.ErrEmailTaken
			default:
				return nil, serr.ErrAlreadyExists
			}
		}
		return nil, fmt.Errorf("%w: %v", serr.ErrInternal, err)
	}

	return &created, nil
}

// ExistsByUsername проверяет, занят ли username.
func (r *UsersRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	return r.exists(ctx, `SELECT EXISTS(SELECT 1 FROM users WHERE username=$1)`, username)
}

// ExistsByEmail проверяет, зарегистрирован ли email.
func (r *UsersRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return r.exists(ctx, `SELECT EXISTS(SELECT 1 FROM users WHERE email=$1)`, email)
}

func (r *UsersRepository) exists(ctx context.Context, query, arg string) (bool, error) {
	var ok bool
	if err := r.db.QueryRowContext(ctx, query, arg).Scan(&ok); err != nil {
		return false, fmt.Errorf("%w: %v", serr.ErrInternal, err)
	}
	return ok, nil
}

// GetByUsername возвращает пользователя по username (с учётом регистра).
func (r *UsersRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	var u models.User

	err := r.db.QueryRowContext(ctx,
		`SELECT id, username, email, password_hash, role, created_at
		 FROM users WHERE username=$1`,
		username,
	).Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.Role, &u.CreatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, serr.ErrNotFound
		}
		return nil, fmt.Errorf("%w: %v", serr.ErrInternal, err)
	}

	return &u, nil
}

// Ping проверяет доступность БД.
func (r *UsersRepository) Ping(ctx context.Context) error {
	if err := r.db.PingContext(ctx); err != nil {
		return fmt.Errorf("%w: %v", serr.ErrInternal, err)
	}
	return nil
}
