package api

import (
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/IvanChernomyrdin/go-jwt-auth/internal/server/middleware"
	"github.com/IvanChernomyrdin/go-jwt-auth/internal/server/service/models"
	serr "github.com/IvanChernomyrdin/go-jwt-auth/internal/shared/errors"
	"github.com/IvanChernomyrdin/go-jwt-auth/internal/shared/i18n"
)

// Profile возвращает профиль вызывающего пользователя.
//
// Личность приходит параметром из проверенного токена (см. middleware.WithIdentity).
// Если записи пользователя нет, отвечаем 500, а не 404.
//
// @Summary      Current user profile
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        Accept-Language header string false "Message language (es, en)"
// @Success      200 {object} models.ProfileResponse
// @Failure      401 {object} models.MessageResponse "Missing or invalid token"
// @Failure      500 {object} models.MessageResponse "Profile lookup failed"
// @Router       /api/users/profile [get]
func (h *Handler) Profile(w http.ResponseWriter, r *http.Request, id middleware.Identity) {
	u, err := h.Svc.Users.Profile(r.Context(), id.Username)
	if err != nil {
		cause := err.Error()
		if errors.Is(err, serr.ErrUserNotFound) {
			cause = h.message(r, i18n.MsgUserNotFound, nil)
		}
		h.Log.Error("profile failed", zap.String("username", id.Username), zap.Error(err))
		h.writeMessage(w, r, http.StatusInternalServerError, i18n.MsgProfileFailed, map[string]any{"Cause": cause})
		return
	}

	WriteJSON(w, http.StatusOK, models.ProfileResponse{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
	})
}
