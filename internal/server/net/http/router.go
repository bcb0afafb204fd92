// Package http реализует маршрутизацию HTTP-слоя сервера.
//
// Пакет отвечает за:
//   - регистрацию HTTP-маршрутов и настройку роутера (chi);
//   - политику CORS;
//   - логирование выполнения HTTP-запросов;
//   - проверку JWT access-токенов на защищённых путях.
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/IvanChernomyrdin/go-jwt-auth/internal/server/api"
	"github.com/IvanChernomyrdin/go-jwt-auth/internal/server/middleware"
)

// Options — настройки роутера, не относящиеся к хендлерам.
type Options struct {
	// AllowedOrigins — список origin для CORS, "*" разрешает все.
	AllowedOrigins []string
	// MaxBodyBytes — лимит тела запроса, 0 — без лимита.
	MaxBodyBytes int64
}

// NewRouter создаёт и настраивает HTTP-роутер сервера.
//
// Роутер использует chi.Router и регистрирует:
//   - CORS и логирование для всех запросов;
//   - swagger UI по /swagger/*;
//   - публичные эндпоинты /api/health и /api/auth/*;
//   - защищённый JWT эндпоинт /api/users/profile.
func NewRouter(h *api.Handler, opts Options) http.Handler {
	origins := opts.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	r := chi.NewRouter()
	r.Use(chimw.Recoverer)
	// логирование всех запросов
	r.Use(middleware.LoggerMiddleware(h.Log))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Authorization", "Content-Type", "Accept", "Accept-Language"},
		MaxAge:         300,
	}))
	if opts.MaxBodyBytes > 0 {
		r.Use(chimw.RequestSize(opts.MaxBodyBytes))
	}

	// добавляем swagger
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", h.Health)

		// Публичные пути
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", h.Register)
			r.Post("/login", h.Login)
		})

		// защищённые пути
		r.Group(func(r chi.Router) {
			// проверка access токена
			r.Use(h.Verifier.AuthMiddleware())
			r.Get("/users/profile", h.Verifier.WithIdentity(h.Profile))
		})
	})

	return r
}
