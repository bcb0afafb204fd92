package cli

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// readPassword читает пароль пользователя, если он не передан флагом --password.
//
// Режимы:
//   - fromStdin=true: читает пароль из STDIN полностью (удобно для скриптов/CI);
//   - fromStdin=false: читает пароль интерактивно из терминала со скрытым вводом.
//
// Если fromStdin=false, но stdin не является терминалом, возвращается ошибка
// с подсказкой использовать --password-stdin. Пустой пароль считается ошибкой.
func readPassword(cmd *cobra.Command, fromStdin bool) (string, error) {
	if fromStdin {
		b, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("read password from stdin: %w", err)
		}
		pw := trimLineEnd(b)
		if pw == "" {
			return "", errors.New("empty password on stdin")
		}
		return pw, nil
	}

	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return "", errors.New("stdin is not a terminal; use --password or --password-stdin")
	}

	fmt.Fprint(cmd.ErrOrStderr(), "Password: ")
	pwBytes, err := term.ReadPassword(fd)
	fmt.Fprintln(cmd.ErrOrStderr())
	if err != nil {
		return "", fmt.Errorf("read password: %w", err)
	}

	pw := trimLineEnd(pwBytes)
	if pw == "" {
		return "", errors.New("empty password")
	}
	return pw, nil
}

// trimLineEnd убирает только завершающий перевод строки.
// Остальные пробелы входят в пароль так же, как при передаче через --password.
func trimLineEnd(b []byte) string {
	return string(bytes.TrimRight(b, "\r\n"))
}

// resolvePassword возвращает пароль из флага или запрашивает его.
func resolvePassword(cmd *cobra.Command, password string, fromStdin bool) (string, error) {
	if password != "" {
		return password, nil
	}
	return ReadPassword(cmd, fromStdin)
}
