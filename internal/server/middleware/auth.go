// Package middleware содержит HTTP middleware сервера.
package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/IvanChernomyrdin/go-jwt-auth/internal/server/crypto"
	serr "github.com/IvanChernomyrdin/go-jwt-auth/internal/shared/errors"
	"github.com/IvanChernomyrdin/go-jwt-auth/internal/shared/i18n"
)

// ctxKey используется как тип ключа для хранения значений в context.Context.
// Отдельный тип предотвращает коллизии ключей между пакетами.
type ctxKey string

// identityKey — ключ контекста, под которым хранится проверенная личность вызывающего.
const identityKey ctxKey = "identity"

// Identity — кто вызывает запрос, по данным проверенного токена.
type Identity struct {
	Username string
	Role     string
}

// JWTVerifier проверяет access-токены на каждом защищённом запросе.
//
// Используется в HTTP middleware для:
//   - проверки подписи и срока жизни токена
//   - валидации issuer и audience
//   - извлечения username (sub) и роли из claims
type JWTVerifier struct {
	cfg  crypto.JWTConfig
	i18n *i18n.Translator
}

// NewJWTVerifier создаёт новый JWTVerifier.
//
// tr может быть nil — тогда в теле 401 отдаётся непереведённый текст.
func NewJWTVerifier(cfg crypto.JWTConfig, tr *i18n.Translator) *JWTVerifier {
	return &JWTVerifier{cfg: cfg, i18n: tr}
}

// IdentityFromContext извлекает личность аутентифицированного пользователя из контекста.
//
// Возвращает false, если запрос не прошёл через AuthMiddleware.
func IdentityFromContext(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(identityKey).(Identity)
	return id, ok
}

// AuthMiddleware возвращает HTTP middleware для проверки JWT access-токенов.
//
// Middleware:
//   - ожидает заголовок Authorization: Bearer <token>
//   - валидирует подпись и claims токена
//   - сохраняет Identity в context.Context
//
// В случае ошибки возвращает HTTP 401 с телом {"message": "..."}.
func (v *JWTVerifier) AuthMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenStr := ExtractBearer(r.Header.Get("Authorization"))
			if tokenStr == "" {
				v.unauthorized(w, r)
				return
			}

			claims, err := crypto.ParseAccessToken(tokenStr, v.cfg)
			if err != nil {
				v.unauthorized(w, r)
				return
			}

			id := Identity{Username: strings.TrimSpace(claims.Subject), Role: claims.Role}
			ctx := context.WithValue(r.Context(), identityKey, id)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// WithIdentity адаптирует обработчик, которому личность передаётся явным параметром.
//
// Должен стоять после AuthMiddleware. Если личности в контексте нет — 401.
func (v *JWTVerifier) WithIdentity(fn func(w http.ResponseWriter, r *http.Request, id Identity)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := IdentityFromContext(r.Context())
		if !ok || id.Username == "" {
			v.unauthorized(w, r)
			return
		}
		fn(w, r, id)
	}
}

func (v *JWTVerifier) unauthorized(w http.ResponseWriter, r *http.Request) {
	msg := serr.ErrUnauthorized.Error()
	if v.i18n != nil {
		msg = v.i18n.Message(r.Header.Get("Accept-Language"), i18n.MsgUnauthorized, nil)
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("WWW-Authenticate", "Bearer")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(map[string]string{"message": msg})
}

// ExtractBearer извлекает JWT из заголовка Authorization.
//
// Ожидаемый формат:
//
//	Authorization: Bearer <token>
//
// Возвращает пустую строку, если формат некорректен.
func ExtractBearer(h string) string {
	h = strings.TrimSpace(h)
	if h == "" {
		return ""
	}
	parts := strings.SplitN(h, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
