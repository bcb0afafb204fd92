// В этом файле описаны методы клиента для работы
// с эндпоинтами аутентификации: регистрация, вход и профиль текущего пользователя.
package api

import "time"

// RegisterRequest описывает тело запроса регистрации пользователя.
type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest описывает тело запроса входа пользователя.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// AuthResponse описывает ответ сервера при успешной регистрации или входе.
//
// Token используется для авторизации запросов к защищённым эндпоинтам.
type AuthResponse struct {
	Token    string `json:"token"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// ProfileResponse описывает профиль текущего пользователя.
type ProfileResponse struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

// Register регистрирует пользователя и сразу получает токен.
func (c *Client) Register(username, email, password string) (AuthResponse, error) {
	var resp AuthResponse
	err := c.PostJSON("/api/auth/register", RegisterRequest{Username: username, Email: email, Password: password}, &resp, "")
	return resp, err
}

// Login выполняет вход пользователя.
func (c *Client) Login(username, password string) (AuthResponse, error) {
	var resp AuthResponse
	err := c.PostJSON("/api/auth/login", LoginRequest{Username: username, Password: password}, &resp, "")
	return resp, err
}

// Profile запрашивает профиль пользователя, которому принадлежит token.
func (c *Client) Profile(token string) (ProfileResponse, error) {
	var resp ProfileResponse
	err := c.GetJSON("/api/users/profile", &resp, token)
	return resp, err
}

// HealthResponse описывает ответ эндпоинта проверки доступности.
type HealthResponse struct {
	Status string `json:"status"`
}

// Health проверяет доступность сервера и его хранилища.
//
// При 503 сервер отвечает {"status":"unavailable"}, такой ответ возвращается как ошибка.
func (c *Client) Health() (string, error) {
	var resp HealthResponse
	if err := c.GetJSON("/api/health", &resp, ""); err != nil {
		return "", err
	}
	return resp.Status, nil
}
