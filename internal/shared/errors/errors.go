// Package errors содержит общие доменные ошибки приложения.
//
// Эти ошибки используются в service и repository слоях
// и маппятся на HTTP-статусы и локализованные сообщения в api слое.
package errors

import "errors"

var (
	// Входные данные невалидны (пустые поля и т.п.)
	ErrInvalidInput = errors.New("invalid input")
	// Неверные учётные данные
	ErrInvalidCredentials = errors.New("invalid credentials")
	// Получена непредвиденная ошибка
	ErrInternal = errors.New("internal error")
	// Полученные JSON данные с ошибками
	ErrBadJSON = errors.New("bad json")
	// Неавторизован
	ErrUnauthorized = errors.New("unauthorized")
	// Ресурс уже существует
	ErrAlreadyExists = errors.New("already exists")
	// Ресурс не найден
	ErrNotFound = errors.New("not found")
	// ожидаемая ошибка
	ErrExpectedError = errors.New("expected error")
	// неожидаемая ошибка
	ErrUnexpectedError = errors.New("unexpected error")
)

// только для пользователей
var (
	// username уже занят
	ErrUsernameTaken = errors.New("username already exists")
	// email уже зарегистрирован
	ErrEmailTaken = errors.New("email already registered")
	// пользователь прошёл проверку, но в хранилище его нет
	ErrUserNotFound = errors.New("user not found")
)
