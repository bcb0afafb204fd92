package tests

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/IvanChernomyrdin/go-jwt-auth/internal/agent/cli"
	"github.com/IvanChernomyrdin/go-jwt-auth/internal/agent/config"
	serr "github.com/IvanChernomyrdin/go-jwt-auth/internal/shared/errors"
)

func TestNewRegisterCmd_Success_SavesTokenAndPrintsMessage(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/auth/register", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Fatalf("expected POST, got %s", r.Method)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Fatalf("expected Content-Type application/json, got %q", ct)
		}

		var req struct {
			Username string `json:"username"`
			Email    string `json:"email"`
			Password string `json:"password"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if req.Username != "alice" || req.Email != "alice@x.com" || req.Password != "pw1" {
			t.Fatalf("unexpected request: %+v", req)
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{
			"token":    "token-1",
			"username": "alice",
			"email":    "alice@x.com",
		})
	})

	srv := httptest.NewTLSServer(mux)
	defer srv.Close()

	credsPath := filepath.Join(t.TempDir(), "creds.json")

	app := &cli.App{
		ServerURL: srv.URL,
		Insecure:  true,
		CredsPath: credsPath,
		Creds:     &config.Credentials{},
	}

	cmd := cli.NewRegisterCmd(app)

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)

	cmd.SetArgs([]string{
		"--username", "alice",
		"--email", "alice@x.com",
		"--password", "pw1",
	})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}

	if got := out.String(); !strings.Contains(got, "registration successful: alice <alice@x.com>") {
		t.Fatalf("unexpected output: %q", got)
	}

	loaded, err := config.Load(credsPath)
	if err != nil {
		t.Fatalf("load creds: %v", err)
	}
	if loaded.Token != "token-1" || loaded.Username != "alice" {
		t.Fatalf("unexpected creds: %+v", loaded)
	}
}

func TestNewRegisterCmd_PasswordFromStdin(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/auth/register", func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Password string `json:"password"`
		}
		json.NewDecoder(r.Body).Decode(&req)
		if req.Password != "pw from stdin" {
			t.Fatalf("expected password from stdin, got %q", req.Password)
		}
		json.NewEncoder(w).Encode(map[string]string{"token": "t", "username": "bob", "email": "bob@x.com"})
	})

	srv := httptest.NewServer(mux)
	defer srv.Close()

	app := &cli.App{
		ServerURL: srv.URL,
		CredsPath: filepath.Join(t.TempDir(), "creds.json"),
		Creds:     &config.Credentials{},
	}

	cmd := cli.NewRegisterCmd(app)
	cmd.SetOut(io.Discard)
	cmd.SetIn(strings.NewReader("pw from stdin\n"))
	cmd.SetArgs([]string{"--username", "bob", "--email", "bob@x.com", "--password-stdin"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
}

// Из stdin снимается только перевод строки, пробелы остаются частью пароля
func TestNewRegisterCmd_PasswordFromStdin_KeepsSpaces(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/auth/register", func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Password string `json:"password"`
		}
		json.NewDecoder(r.Body).Decode(&req)
		if req.Password != " pw " {
			t.Fatalf("expected password %q, got %q", " pw ", req.Password)
		}
		json.NewEncoder(w).Encode(map[string]string{"token": "t", "username": "bob", "email": "bob@x.com"})
	})

	srv := httptest.NewServer(mux)
	defer srv.Close()

	app := &cli.App{
		ServerURL: srv.URL,
		CredsPath: filepath.Join(t.TempDir(), "creds.json"),
		Creds:     &config.Credentials{},
	}

	cmd := cli.NewRegisterCmd(app)
	cmd.SetOut(io.Discard)
	cmd.SetIn(strings.NewReader(" pw \r\n"))
	cmd.SetArgs([]string{"--username", "bob", "--email", "bob@x.com", "--password-stdin"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
}

func TestNewRegisterCmd_MissingRequiredFlags_ReturnsError(t *testing.T) {
	app := &cli.App{ServerURL: "http://127.0.0.1:8080", Creds: &config.Credentials{}}

	cmd := cli.NewRegisterCmd(app)
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)

	// не передаём --email
	cmd.SetArgs([]string{"--username", "alice", "--password", "pw1"})

	err := cmd.Execute()
	if err == nil {
		t.Fatalf("%s, got nil", serr.ErrExpectedError.Error())
	}

	// Cobra пишет "required flag(s) \"email\" not set"
	if !strings.Contains(err.Error(), "required") {
		t.Fatalf("%s: %v", serr.ErrUnexpectedError.Error(), err)
	}
}

func TestNewRegisterCmd_ServerReturnsError_ReturnsMessage(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/auth/register", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		io.WriteString(w, `{"message":"El nombre de usuario ya existe"}`)
	})

	srv := httptest.NewServer(mux)
	defer srv.Close()

	credsPath := filepath.Join(t.TempDir(), "creds.json")
	app := &cli.App{
		ServerURL: srv.URL,
		CredsPath: credsPath,
		Creds:     &config.Credentials{},
	}

	cmd := cli.NewRegisterCmd(app)
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)

	cmd.SetArgs([]string{
		"--username", "alice",
		"--email", "alice@x.com",
		"--password", "pw1",
	})

	err := cmd.Execute()
	if err == nil {
		t.Fatalf("%s, got nil", serr.ErrExpectedError.Error())
	}
	if err.Error() != "El nombre de usuario ya existe" {
		t.Fatalf("%s: %v", serr.ErrUnexpectedError.Error(), err)
	}
	if _, statErr := os.Stat(credsPath); statErr == nil {
		t.Fatalf("creds file should not be created on register error")
	}
}
