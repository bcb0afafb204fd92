package tests

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/IvanChernomyrdin/go-jwt-auth/internal/agent/cli"
	"github.com/IvanChernomyrdin/go-jwt-auth/internal/agent/config"
)

func TestNewProfileCmd_PrintsProfile(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/users/profile", func(w http.ResponseWriter, r *http.Request) {
		if auth := r.Header.Get("Authorization"); auth != "Bearer token-1" {
			t.Fatalf("expected Authorization Bearer token-1, got %q", auth)
		}
		if lang := r.Header.Get("Accept-Language"); lang != "en" {
			t.Fatalf("expected Accept-Language en, got %q", lang)
		}
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `{"id":"0b7f7e3c-3f57-4b5f-9a55-6b4a8f6b1c11","username":"alice","email":"alice@x.com","role":"ROLE_USER","createdAt":"2024-01-02T03:04:05Z"}`)
	})

	srv := httptest.NewServer(mux)
	defer srv.Close()

	app := &cli.App{
		ServerURL: srv.URL,
		Lang:      "en",
		Creds:     &config.Credentials{Token: "token-1"},
	}

	cmd := cli.NewProfileCmd(app)

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}

	got := out.String()
	for _, want := range []string{
		"id=0b7f7e3c-3f57-4b5f-9a55-6b4a8f6b1c11",
		"username=alice",
		"email=alice@x.com",
		"role=ROLE_USER",
		"created_at=2024-01-02T03:04:05Z",
	} {
		if !strings.Contains(got, want) {
			t.Fatalf("expected %q in output, got %q", want, got)
		}
	}
}

func TestNewProfileCmd_NoToken_ReturnsErrNotLoggedIn(t *testing.T) {
	app := &cli.App{ServerURL: "http://127.0.0.1:1", Creds: &config.Credentials{}}

	cmd := cli.NewProfileCmd(app)
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	cmd.SetArgs([]string{})

	if err := cmd.Execute(); !errors.Is(err, cli.ErrNotLoggedIn) {
		t.Fatalf("expected ErrNotLoggedIn, got %v", err)
	}
}

func TestNewProfileCmd_Unauthorized_ReturnsServerMessage(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/users/profile", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		io.WriteString(w, `{"message":"No autorizado"}`)
	})

	srv := httptest.NewServer(mux)
	defer srv.Close()

	app := &cli.App{ServerURL: srv.URL, Creds: &config.Credentials{Token: "expired"}}

	cmd := cli.NewProfileCmd(app)
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	cmd.SetArgs([]string{})

	err := cmd.Execute()
	if err == nil || err.Error() != "No autorizado" {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestNewLogoutCmd_RemovesCredsFile(t *testing.T) {
	credsPath := filepath.Join(t.TempDir(), "creds.json")
	if err := config.Save(credsPath, &config.Credentials{Token: "token-1"}); err != nil {
		t.Fatalf("save creds: %v", err)
	}

	app := &cli.App{CredsPath: credsPath, Creds: &config.Credentials{Token: "token-1"}}

	cmd := cli.NewLogoutCmd(app)

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if !strings.Contains(out.String(), "logged out") {
		t.Fatalf("unexpected output: %q", out.String())
	}
	if _, err := os.Stat(credsPath); !os.IsNotExist(err) {
		t.Fatalf("expected creds file removed, stat err=%v", err)
	}
	if app.Creds.Token != "" {
		t.Fatalf("expected in-memory token cleared")
	}
}

func TestNewHealthCmd_PrintsStatus(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/health", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	})

	srv := httptest.NewServer(mux)
	defer srv.Close()

	cmd := cli.NewHealthCmd(&cli.App{ServerURL: srv.URL})

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if out.String() != "status=ok\n" {
		t.Fatalf("unexpected output: %q", out.String())
	}
}

func TestNewHealthCmd_Unavailable_ReturnsError(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		io.WriteString(w, `{"status":"unavailable"}`)
	})

	srv := httptest.NewServer(mux)
	defer srv.Close()

	cmd := cli.NewHealthCmd(&cli.App{ServerURL: srv.URL})
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	cmd.SetArgs([]string{})

	if err := cmd.Execute(); err == nil {
		t.Fatalf("expected error, got nil")
	}
}
