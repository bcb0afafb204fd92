// Инициализация подключения к PostgreSQL:
//   - открытие соединения через драйвер pgx;
//   - настройка пула и проверка доступности (Ping);
//   - запуск миграций (golang-migrate) при старте сервера.
package config

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"go.uber.org/zap"

	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/jackc/pgx/v4/stdlib"
)

// OpenDB открывает подключение к базе данных, настраивает пул и проверяет его доступность.
// Если миграции включены, применяет их. migrate.ErrNoChange ошибкой не считается.
func OpenDB(ctx context.Context, dbCfg DBConfig, migCfg MigrationsConfig, log *zap.Logger) (*sql.DB, error) {
	db, err := sql.Open("pgx", dbCfg.DSN)
	if err != nil {
		log.Error("open db", zap.Error(err))
		return nil, fmt.Errorf("open db: %w", err)
	}

	applyPool(db, dbCfg)

	if err := db.PingContext(ctx); err != nil {
		log.Error("ping db", zap.Error(err))
		_ = db.Close()
		return nil, fmt.Errorf("ping db: %w", err)
	}

	if migCfg.Enabled {
		if err := Migrate(db, migCfg.Path, log); err != nil {
			_ = db.Close()
			return nil, err
		}
	}

	return db, nil
}

// Migrate применяет миграции из source (например file://migrations/postgres).
func Migrate(db *sql.DB, source string, log *zap.Logger) error {
	driver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		log.Error("create migration driver", zap.Error(err))
		return fmt.Errorf("migration driver: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance(source, "postgres", driver)
	if err != nil {
		log.Error("create migrations", zap.String("source", source), zap.Error(err))
		return fmt.Errorf("migrations: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		log.Error("apply migrations", zap.Error(err))
		return fmt.Errorf("apply migrations: %w", err)
	}

	log.Info("migrations applied", zap.String("source", source))
	return nil
}

func applyPool(db *sql.DB, c DBConfig) {
	if c.MaxOpenConns > 0 {
		db.SetMaxOpenConns(c.MaxOpenConns)
	}
	if c.MaxIdleConns > 0 {
		db.SetMaxIdleConns(c.MaxIdleConns)
	}
	if c.ConnMaxLifetime > 0 {
		db.SetConnMaxLifetime(c.ConnMaxLifetime)
	}
	if c.ConnMaxIdleTime > 0 {
		db.SetConnMaxIdleTime(c.ConnMaxIdleTime)
	}
}
