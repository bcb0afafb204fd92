package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewLoginCmd создаёт CLI-команду для входа пользователя в систему.
//
// Команда выполняет аутентификацию на сервере, получает токен
// и сохраняет его вместе с именем и email в локальный конфигурационный файл.
//
// Пример использования:
//
//	authcli login --username alice --password pw1
func NewLoginCmd(app *App) *cobra.Command {
	var username, password string
	var passwordStdin bool

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Вход пользователя (получить токен)",
		Long: `Вход пользователя.

Пример:
  authcli login --username alice --password pw1
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			pw, err := resolvePassword(cmd, password, passwordStdin)
			if err != nil {
				return err
			}

			resp, err := app.client().Login(username, pw)
			if err != nil {
				return err
			}

			// токен сохраняем только после успешного входа
			if err := app.saveAuth(resp); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), "login ok (token saved)")
			return nil
		},
	}

	cmd.Flags().StringVar(&username, "username", "", "username for login")
	cmd.Flags().StringVar(&password, "password", "", "password for login (prompted if empty)")
	cmd.Flags().BoolVar(&passwordStdin, "password-stdin", false, "read password from stdin")
	cmd.MarkFlagRequired("username")
	cmd.MarkFlagsMutuallyExclusive("password", "password-stdin")

	return cmd
}
