package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewRegisterCmd создаёт CLI-команду для регистрации нового пользователя.
//
// Сервер сразу выдаёт токен, поэтому после регистрации пользователь
// считается вошедшим: токен сохраняется в локальный конфиг.
//
// Пример использования:
//
//	authcli register --username alice --email alice@x.com --password pw1
func NewRegisterCmd(app *App) *cobra.Command {
	var username, email, password string
	var passwordStdin bool

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Регистрация нового пользователя",
		Long: `Регистрация нового пользователя на сервере.

Пример:
  authcli register --username alice --email alice@x.com --password pw1
  echo pw1 | authcli register --username alice --email alice@x.com --password-stdin
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			pw, err := resolvePassword(cmd, password, passwordStdin)
			if err != nil {
				return err
			}

			resp, err := app.client().Register(username, email, pw)
			if err != nil {
				return err
			}

			if err := app.saveAuth(resp); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "registration successful: %s <%s>\n", resp.Username, resp.Email)
			return nil
		},
	}

	cmd.Flags().StringVar(&username, "username", "", "username for registration")
	cmd.Flags().StringVar(&email, "email", "", "email for registration")
	cmd.Flags().StringVar(&password, "password", "", "password for registration (prompted if empty)")
	cmd.Flags().BoolVar(&passwordStdin, "password-stdin", false, "read password from stdin")
	cmd.MarkFlagRequired("username")
	cmd.MarkFlagRequired("email")
	cmd.MarkFlagsMutuallyExclusive("password", "password-stdin")

	return cmd
}
