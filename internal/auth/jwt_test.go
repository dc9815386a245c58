package auth

import (
	"testing"
	"time"
)

func TestGenerateAndParseToken(t *testing.T) {
	token, expiresAt, err := GenerateToken("s3cret", "admin", time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}
	if token == "" {
		t.Fatal("token is empty")
	}
	if !expiresAt.After(time.Now()) {
		t.Errorf("expiresAt = %v, want a future time", expiresAt)
	}

	claims, err := ParseToken("s3cret", token)
	if err != nil {
		t.Fatalf("ParseToken() error = %v", err)
	}
	if claims.Username != "admin" {
		t.Errorf("Username = %q, want admin", claims.Username)
	}
}

func TestParseTokenWrongSecret(t *testing.T) {
	token, _, err := GenerateToken("s3cret", "admin", time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}

	if _, err := ParseToken("other-secret", token); err == nil {
		t.Error("ParseToken() with wrong secret succeeded, want error")
	}
}

func TestParseTokenExpired(t *testing.T) {
	token, _, err := GenerateToken("s3cret", "admin", -time.Minute)
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}

	if _, err := ParseToken("s3cret", token); err == nil {
		t.Error("ParseToken() with expired token succeeded, want error")
	}
}
