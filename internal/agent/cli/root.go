// Package cli реализует командный интерфейс (CLI) клиента сервиса аутентификации.
//
// Пакет отвечает за:
//   - определение root-команды и набора подкоманд;
//   - разбор аргументов и флагов командной строки;
//   - загрузку локальных учётных данных (токен) из конфигурационного файла;
//   - выполнение команд и вывод результата пользователю.
//
// Точка входа пакета — функция Execute.
package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/IvanChernomyrdin/go-jwt-auth/internal/agent/api"
	"github.com/IvanChernomyrdin/go-jwt-auth/internal/agent/config"
)

const defaultServerURL = "http://127.0.0.1:8080"

// ErrNotLoggedIn возвращается командами, которым нужен сохранённый токен.
var ErrNotLoggedIn = errors.New("not logged in: run `authcli login` first")

// App содержит состояние CLI-приложения, разделяемое между командами.
//
// Экземпляр App создаётся при построении root-команды и передаётся в подкоманды.
type App struct {
	// ServerURL — базовый URL сервера (например, "http://127.0.0.1:8080").
	ServerURL string
	// Insecure отключает проверку TLS-сертификата сервера.
	Insecure bool
	// Lang — язык сообщений сервера (Accept-Language), пусто — язык сервера по умолчанию.
	Lang string

	// CredsPath — путь к файлу с сохранённым токеном.
	CredsPath string
	// Creds — загруженные учётные данные из файла конфигурации.
	// Может быть nil, если загрузка не выполнялась или завершилась ошибкой.
	Creds *config.Credentials
}

// client создаёт API-клиент с настройками приложения.
func (a *App) client() *api.Client {
	c := NewAPIClient(a.ServerURL, a.Insecure)
	c.SetLanguage(a.Lang)
	return c
}

// saveAuth сохраняет ответ сервера в локальный конфиг.
func (a *App) saveAuth(resp api.AuthResponse) error {
	if a.Creds == nil {
		a.Creds = &config.Credentials{}
	}
	a.Creds.Token = resp.Token
	a.Creds.Username = resp.Username
	a.Creds.Email = resp.Email
	return config.Save(a.CredsPath, a.Creds)
}

// NewRootCmd создаёт root-команду CLI и регистрирует подкоманды.
//
// buildVersion и buildDate используются для вывода информации о сборке (команда version).
// В PersistentPreRunE определяется путь к файлу учётных данных и загружается сохранённый токен.
func NewRootCmd(buildVersion, buildDate string) *cobra.Command {
	app := &App{}

	cmd := &cobra.Command{
		Use:   "authcli",
		Short: "authcli — клиент сервиса регистрации и входа",
		Long: `authcli.

Команды:
  register  Регистрация нового пользователя (сразу сохраняет токен)
  login     Вход (получить токен)
  profile   Профиль текущего пользователя
  logout    Удалить сохранённый токен
  health    Проверка доступности сервера
  version   Версия и дата сборки

Примеры:

Регистрация:
  authcli register --username alice --email alice@x.com --password pw1

Вход:
  authcli login --username alice --password pw1

Профиль:
  authcli profile
`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if app.CredsPath == "" {
				p, err := config.DefaultPath()
				if err != nil {
					return err
				}
				app.CredsPath = p
			}

			creds, err := config.Load(app.CredsPath)
			if err != nil {
				return err
			}
			app.Creds = creds
			return nil
		},
	}

	cmd.SetOut(os.Stdout)
	cmd.SetErr(os.Stderr)

	cmd.PersistentFlags().StringVar(&app.ServerURL, "server", defaultServerURL, "server base URL")
	cmd.PersistentFlags().BoolVar(&app.Insecure, "insecure", false, "skip TLS certificate verification")
	cmd.PersistentFlags().StringVar(&app.Lang, "lang", "", "language of server messages (es, en)")
	cmd.PersistentFlags().StringVar(&app.CredsPath, "creds", "", "credentials file (default ~/.authcli/credentials.json)")

	cmd.AddCommand(NewRegisterCmd(app))
	cmd.AddCommand(NewLoginCmd(app))
	cmd.AddCommand(NewProfileCmd(app))
	cmd.AddCommand(NewLogoutCmd(app))
	cmd.AddCommand(NewHealthCmd(app))
	cmd.AddCommand(NewVersionCmd(buildVersion, buildDate))

	return cmd
}

// Execute запускает обработку CLI-команд.
//
// При ошибке выполнения команды сообщение выводится в stderr, после чего процесс
// завершается с кодом 1 (os.Exit(1)).
func Execute(buildVersion, buildDate string) {
	if err := NewRootCmd(buildVersion, buildDate).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
