package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/IvanChernomyrdin/go-jwt-auth/internal/agent/config"
)

// NewProfileCmd создаёт CLI-команду для просмотра профиля текущего пользователя.
//
// Используется токен из локального конфига. Если токена нет, возвращается ErrNotLoggedIn.
//
// Пример использования:
//
//	authcli profile
func NewProfileCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "profile",
		Short: "Профиль текущего пользователя",
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.Creds == nil || app.Creds.Token == "" {
				return ErrNotLoggedIn
			}

			p, err := app.client().Profile(app.Creds.Token)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "id=%s\n", p.ID)
			fmt.Fprintf(out, "username=%s\n", p.Username)
			fmt.Fprintf(out, "email=%s\n", p.Email)
			fmt.Fprintf(out, "role=%s\n", p.Role)
			fmt.Fprintf(out, "created_at=%s\n", p.CreatedAt.Format(time.RFC3339))
			return nil
		},
	}
}

// NewLogoutCmd создаёт CLI-команду, удаляющую сохранённый токен.
//
// Сервер токены не хранит, поэтому выход сводится к удалению локального файла.
func NewLogoutCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Удалить сохранённый токен",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := config.Remove(app.CredsPath); err != nil {
				return err
			}
			app.Creds = &config.Credentials{}

			fmt.Fprintln(cmd.OutOrStdout(), "logged out")
			return nil
		},
	}
}

// NewHealthCmd создаёт CLI-команду проверки доступности сервера.
func NewHealthCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Проверка доступности сервера",
		RunE: func(cmd *cobra.Command, args []string) error {
			status, err := app.client().Health()
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "status=%s\n", status)
			return nil
		},
	}
}
