// HTTP-хендлеры регистрации и логина
package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/IvanChernomyrdin/go-jwt-auth/internal/server/service/models"
	serr "github.com/IvanChernomyrdin/go-jwt-auth/internal/shared/errors"
	"github.com/IvanChernomyrdin/go-jwt-auth/internal/shared/i18n"
)

// Register обрабатывает регистрацию пользователя.
//
// @Summary      Register a new user
// @Description  Creates a user with the default role and returns an access token.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body models.RegisterRequest true "Registration data"
// @Param        Accept-Language header string false "Message language (es, en)"
// @Success      200 {object} models.AuthResponse
// @Failure      400 {object} models.MessageResponse "Bad JSON, empty fields, duplicate username or email"
// @Failure      500 {object} models.MessageResponse "Registration failed"
// @Router       /api/auth/register [post]
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeMessage(w, r, http.StatusBadRequest, i18n.MsgBadJSON, nil)
		return
	}

	res, err := h.Svc.Auth.Register(r.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, serr.ErrInvalidInput):
			h.writeMessage(w, r, http.StatusBadRequest, i18n.MsgFieldsRequired, nil)
		case errors.Is(err, serr.ErrUsernameTaken):
			h.writeMessage(w, r, http.StatusBadRequest, i18n.MsgUsernameTaken, nil)
		case errors.Is(err, serr.ErrEmailTaken):
			h.writeMessage(w, r, http.StatusBadRequest, i18n.MsgEmailTaken, nil)
		default:
			h.Log.Error("register failed", zap.String("username", req.Username), zap.Error(err))
			h.writeMessage(w, r, http.StatusInternalServerError, i18n.MsgRegisterFailed, map[string]any{"Cause": err.Error()})
		}
		return
	}

	WriteJSON(w, http.StatusOK, models.AuthResponse{
		Token:    res.Token,
		Username: res.Username,
		Email:    res.Email,
	})
}

// Login обрабатывает вход пользователя.
//
// Любая неудача отдаётся одним и тем же 401, причина пишется только в лог.
//
// @Summary      Log in
// @Description  Verifies username and password and returns an access token.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body models.LoginRequest true "Credentials"
// @Param        Accept-Language header string false "Message language (es, en)"
// @Success      200 {object} models.AuthResponse
// @Failure      401 {object} models.MessageResponse "Invalid credentials"
// @Router       /api/auth/login [post]
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Log.Info("login rejected", zap.Error(serr.ErrBadJSON))
		h.writeMessage(w, r, http.StatusUnauthorized, i18n.MsgInvalidCredentials, nil)
		return
	}

	res, err := h.Svc.Auth.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, serr.ErrInvalidCredentials) {
			h.Log.Info("login rejected", zap.String("username", req.Username), zap.Error(err))
		} else {
			h.Log.Error("login failed", zap.String("username", req.Username), zap.Error(err))
		}
		h.writeMessage(w, r, http.StatusUnauthorized, i18n.MsgInvalidCredentials, nil)
		return
	}

	WriteJSON(w, http.StatusOK, models.AuthResponse{
		Token:    res.Token,
		Username: res.Username,
		Email:    res.Email,
	})
}
