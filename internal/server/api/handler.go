// Package api реализует HTTP-слой сервера.
//
// Пакет отвечает за:
//   - обработку входящих запросов и формирование ответов (JSON, статусы);
//   - маппинг доменных ошибок (service/repository) в HTTP-коды и локализованные сообщения;
//   - описание эндпоинтов для swagger.
package api

import (
	"encoding/json"
	"net/http"

	"github.com/IvanChernomyrdin/go-jwt-auth/internal/server/middleware"
	"github.com/IvanChernomyrdin/go-jwt-auth/internal/server/service"
	"github.com/IvanChernomyrdin/go-jwt-auth/internal/server/service/models"
	"github.com/IvanChernomyrdin/go-jwt-auth/internal/shared/i18n"
	"github.com/IvanChernomyrdin/go-jwt-auth/internal/shared/logger"
)

// Каждый метод если будет возвращать ответ то будет это делать в JSON
// Вынес Content-Type и JSON для удобства
const (
	JsonContentType string = "application/json"
	ContentType     string = "Content-Type"
)

// Handler агрегирует зависимости HTTP-слоя и предоставляет методы-хендлеры.
//
// Handler содержит:
//   - Svc: сервисный слой (бизнес-логика);
//   - Log: логгер для записи событий и ошибок;
//   - Verifier: проверка JWT и передача личности в защищённые хендлеры;
//   - I18n: переводы пользовательских сообщений.
type Handler struct {
	Svc      *service.Services
	Log      *logger.HTTPLogger
	Verifier *middleware.JWTVerifier
	I18n     *i18n.Translator
}

// NewHandler создаёт экземпляр Handler с переданными зависимостями.
func NewHandler(svc *service.Services, log *logger.HTTPLogger, verifier *middleware.JWTVerifier, tr *i18n.Translator) *Handler {
	return &Handler{
		Svc:      svc,
		Log:      log,
		Verifier: verifier,
		I18n:     tr,
	}
}

// WriteJSON пишет v как JSON с заданным статусом.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set(ContentType, JsonContentType)
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeMessage пишет {"message": ...} на языке из Accept-Language.
func (h *Handler) writeMessage(w http.ResponseWriter, r *http.Request, status int, id string, data map[string]any) {
	WriteJSON(w, status, models.MessageResponse{Message: h.message(r, id, data)})
}

func (h *Handler) message(r *http.Request, id string, data map[string]any) string {
	return h.I18n.Message(r.Header.Get("Accept-Language"), id, data)
}
