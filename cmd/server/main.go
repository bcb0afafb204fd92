// @title           go-jwt-auth API
// @version         1.0
// @description     Minimal authentication service: registration, login and profile behind JWT bearer tokens.

// @contact.name   Ivan Chernomyrdin
// @contact.url    https://github.com/IvanChernomyrdin

// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT

// @host      localhost:8080
// @BasePath  /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
//
// Package main содержит точку входа сервера аутентификации.
//
// Пакет отвечает за жизненный цикл HTTP(S)-сервера:
//   - загрузку переменных окружения из файла .env (если он присутствует);
//   - загрузку конфигурации из ./configs/server.yaml (или SERVER_CONFIG);
//   - подключение к базе данных и миграции;
//   - создание репозиториев, сервисов, middleware и HTTP-обработчиков;
//   - запуск сервера (HTTPS, если включён tls) с заданными таймаутами;
//   - graceful shutdown по SIGINT, SIGTERM, SIGQUIT.
//
// Пакет не содержит бизнес-логики и не предназначен для unit-тестирования.
package main

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/IvanChernomyrdin/go-jwt-auth/internal/server/api"
	"github.com/IvanChernomyrdin/go-jwt-auth/internal/server/config"
	"github.com/IvanChernomyrdin/go-jwt-auth/internal/server/middleware"
	h "github.com/IvanChernomyrdin/go-jwt-auth/internal/server/net/http"
	"github.com/IvanChernomyrdin/go-jwt-auth/internal/server/repository"
	"github.com/IvanChernomyrdin/go-jwt-auth/internal/server/service"
	"github.com/IvanChernomyrdin/go-jwt-auth/internal/shared/i18n"
	"github.com/IvanChernomyrdin/go-jwt-auth/internal/shared/logger"

	_ "github.com/IvanChernomyrdin/go-jwt-auth/swagger/docs"
)

const defaultConfigPath = "./configs/server.yaml"

func main() {
	boot := logger.NewHTTPLogger().Logger.Sugar()

	if err := godotenv.Load(); err != nil {
		boot.Warnf("no .env file loaded, error: %v", err)
	}

	path := defaultConfigPath
	if p := os.Getenv("SERVER_CONFIG"); p != "" {
		path = p
	}

	cfg, err := config.Load(path)
	if err != nil {
		boot.Fatal(err)
	}

	httpLogger, err := logger.New(logger.Options{
		Dir:    cfg.Log.Dir,
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
	})
	if err != nil {
		boot.Fatal(err)
	}
	defer httpLogger.Sync()
	sugar := httpLogger.Logger.Sugar()

	ctx, stop := signal.NotifyContext(
		context.Background(),
		os.Interrupt,
		syscall.SIGTERM,
		syscall.SIGQUIT,
	)
	defer stop()

	// подключаем базу данных и накатываем миграции
	db, err := config.OpenDB(ctx, cfg.DB, cfg.Migrations, httpLogger.Logger)
	if err != nil {
		sugar.Fatal(err)
	}
	defer db.Close()

	usersRepo := repository.NewUsersRepository(db)
	repos := service.Repositories{
		Users:  usersRepo,
		Health: usersRepo,
	}

	svc, err := service.NewServices(repos, cfg)
	if err != nil {
		sugar.Fatal(err)
	}

	tr, err := i18n.New(cfg.I18n.DefaultLang)
	if err != nil {
		sugar.Fatal(err)
	}

	verifier := middleware.NewJWTVerifier(service.JWTConfig(cfg), tr)
	handler := api.NewHandler(svc, httpLogger, verifier, tr)
	router := h.NewRouter(handler, h.Options{
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		MaxBodyBytes:   cfg.Server.MaxBodyBytes,
	})

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)

	server := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
		MaxHeaderBytes:    cfg.Server.MaxHeaderBytes,
	}
	if cfg.TLS.Enabled {
		server.TLSConfig = &tls.Config{MinVersion: tlsVersion(cfg.TLS.MinVersion)}
	}

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		sugar.Infow("server started", "addr", addr, "tls", cfg.TLS.Enabled, "env", cfg.Env)

		var err error
		if cfg.TLS.Enabled {
			err = server.ListenAndServeTLS(cfg.TLS.CertFile, cfg.TLS.KeyFile)
		} else {
			err = server.ListenAndServe()
		}
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	// graceful shutdown с таймаутом из конфига
	g.Go(func() error {
		<-ctx.Done()

		sugar.Info("shutdown signal received")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()

		return server.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		httpLogger.Fatal("server stopped with error", zap.Error(err))
	}
	sugar.Info("server gracefully stopped")
}

func tlsVersion(v string) uint16 {
	if v == "1.3" {
		return tls.VersionTLS13
	}
	return tls.VersionTLS12
}
