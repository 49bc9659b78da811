package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestNewAccessTokenClaims(t *testing.T) {
	secret := "test-secret"
	at, err := NewAccessToken(secret, 42, "EDITOR", 15)
	if err != nil {
		t.Fatalf("NewAccessToken: %v", err)
	}
	if at.Token == "" {
		t.Fatal("expected a non-empty token string")
	}

	parsed, err := jwt.Parse(at.Token, func(tok *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	})
	if err != nil || !parsed.Valid {
		t.Fatalf("parse signed token: valid=%v err=%v", parsed != nil && parsed.Valid, err)
	}
	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		t.Fatalf("claims type = %T, want jwt.MapClaims", parsed.Claims)
	}
	if sub, _ := claims["sub"].(float64); uint64(sub) != 42 {
		t.Errorf("sub = %v, want 42", claims["sub"])
	}
	if claims["role"] != "EDITOR" {
		t.Errorf("role = %v, want EDITOR", claims["role"])
	}
	if exp, _ := claims["exp"].(float64); int64(exp) != at.Exp.Unix() {
		t.Errorf("exp claim = %v, want %d", claims["exp"], at.Exp.Unix())
	}
}

func TestNewAccessTokenRejectsWrongSecret(t *testing.T) {
	at, err := NewAccessToken("right-secret", 1, "ADMIN", 5)
	if err != nil {
		t.Fatalf("NewAccessToken: %v", err)
	}
	_, err = jwt.Parse(at.Token, func(tok *jwt.Token) (interface{}, error) {
		return []byte("wrong-secret"), nil
	})
	if err == nil {
		t.Error("expected verification failure with the wrong secret")
	}
}

func TestNewRefreshToken(t *testing.T) {
	rt, err := NewRefreshToken(7)
	if err != nil {
		t.Fatalf("NewRefreshToken: %v", err)
	}
	if len(rt.Raw) != 96 { // 48 random bytes hex-encoded
		t.Errorf("raw length = %d, want 96", len(rt.Raw))
	}
	remaining := time.Until(rt.Exp)
	if remaining < 6*24*time.Hour || remaining > 8*24*time.Hour {
		t.Errorf("expiry %v not roughly 7 days out", rt.Exp)
	}

	other, err := NewRefreshToken(7)
	if err != nil {
		t.Fatalf("NewRefreshToken: %v", err)
	}
	if rt.Raw == other.Raw {
		t.Error("two refresh tokens should never collide")
	}
}

func TestHashRefreshRaw(t *testing.T) {
	h := HashRefreshRaw("abc")
	if len(h) != 64 {
		t.Errorf("hash length = %d, want 64 hex chars", len(h))
	}
	if h != HashRefreshRaw("abc") {
		t.Error("hash must be deterministic")
	}
	if h == HashRefreshRaw("abd") {
		t.Error("different inputs should hash differently")
	}
}
