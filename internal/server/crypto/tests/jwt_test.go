package tests

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	crypt "github.com/IvanChernomyrdin/go-jwt-auth/internal/server/crypto"
)

func testJWTConfig() crypt.JWTConfig {
	return crypt.JWTConfig{
		Issuer:     "go-jwt-auth",
		Audience:   "go-jwt-auth-clients",
		SigningKey: "supersecretkeysupersecretkey123456",
		AccessTTL:  5 * time.Minute,
	}
}

func TestNewAccessToken_Success(t *testing.T) {
	t.Parallel()
	cfg := testJWTConfig()

	tokenStr, err := crypt.NewAccessToken("alice", "ROLE_USER", cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tokenStr == "" {
		t.Fatal("expected non-empty token string")
	}

	// Парсим токен напрямую библиотекой, без ParseAccessToken
	parsed, err := jwt.ParseWithClaims(
		tokenStr,
		&crypt.Claims{},
		func(token *jwt.Token) (any, error) {
			if token.Method != jwt.SigningMethodHS256 {
				t.Fatalf("unexpected signing method: %v", token.Method)
			}
			return []byte(cfg.SigningKey), nil
		},
	)
	if err != nil {
		t.Fatalf("failed to parse token: %v", err)
	}
	if !parsed.Valid {
		t.Fatal("token is not valid")
	}

	claims, ok := parsed.Claims.(*crypt.Claims)
	if !ok {
		t.Fatal("claims type assertion failed")
	}

	if claims.Subject != "alice" {
		t.Fatalf("expected subject %q, got %q", "alice", claims.Subject)
	}
	if claims.Role != "ROLE_USER" {
		t.Fatalf("expected role %q, got %q", "ROLE_USER", claims.Role)
	}
	if claims.Issuer != cfg.Issuer {
		t.Fatalf("expected issuer %q, got %q", cfg.Issuer, claims.Issuer)
	}
	if len(claims.Audience) != 1 || claims.Audience[0] != cfg.Audience {
		t.Fatalf("expected audience %q, got %v", cfg.Audience, claims.Audience)
	}
	if claims.ExpiresAt == nil || time.Until(claims.ExpiresAt.Time) <= 0 {
		t.Fatal("token already expired")
	}
}

func TestParseAccessToken_RoundTrip(t *testing.T) {
	t.Parallel()
	cfg := testJWTConfig()

	tokenStr, err := crypt.NewAccessToken("bob", "ROLE_ADMIN", cfg)
	require.NoError(t, err)

	claims, err := crypt.ParseAccessToken(tokenStr, cfg)
	require.NoError(t, err)
	require.Equal(t, "bob", claims.Subject)
	require.Equal(t, "ROLE_ADMIN", claims.Role)
}

func TestParseAccessToken_WrongKey(t *testing.T) {
	t.Parallel()
	cfg := testJWTConfig()

	tokenStr, err := crypt.NewAccessToken("bob", "ROLE_USER", cfg)
	require.NoError(t, err)

	other := cfg
	other.SigningKey = "anothersecretkeyanothersecretkey12"

	_, err = crypt.ParseAccessToken(tokenStr, other)
	require.ErrorIs(t, err, jwt.ErrTokenSignatureInvalid)
}

func TestParseAccessToken_WrongAudience(t *testing.T) {
	t.Parallel()
	cfg := testJWTConfig()

	tokenStr, err := crypt.NewAccessToken("bob", "ROLE_USER", cfg)
	require.NoError(t, err)

	other := cfg
	other.Audience = "somebody-else"

	_, err = crypt.ParseAccessToken(tokenStr, other)
	require.ErrorIs(t, err, jwt.ErrTokenInvalidAudience)
}

func TestParseAccessToken_Expired(t *testing.T) {
	t.Parallel()
	cfg := testJWTConfig()
	cfg.AccessTTL = -time.Minute

	tokenStr, err := crypt.NewAccessToken("bob", "ROLE_USER", cfg)
	require.NoError(t, err)

	_, err = crypt.ParseAccessToken(tokenStr, cfg)
	require.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestParseAccessToken_Garbage(t *testing.T) {
	t.Parallel()

	_, err := crypt.ParseAccessToken("not-a-jwt", testJWTConfig())
	require.Error(t, err)
}
