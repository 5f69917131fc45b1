package service

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func initTestJWT(t *testing.T) {
	t.Helper()
	t.Setenv("JWT_SECRET", "test-secret")
	InitJWT()
}

func TestGenerateParseRoundTrip(t *testing.T) {
	initTestJWT(t)

	token, err := GenerateJWT("identity-42")
	if err != nil {
		t.Fatalf("GenerateJWT: %v", err)
	}

	identity, err := ParseJWT(token)
	if err != nil {
		t.Fatalf("ParseJWT: %v", err)
	}
	if identity != "identity-42" {
		t.Fatalf("identity = %q, want identity-42", identity)
	}
}

func TestParseRejectsGarbage(t *testing.T) {
	initTestJWT(t)

	for _, tok := range []string{"", "not-a-token", "a.b.c"} {
		if _, err := ParseJWT(tok); err == nil {
			t.Fatalf("ParseJWT(%q) accepted garbage", tok)
		}
	}
}

func TestParseRejectsWrongSecret(t *testing.T) {
	initTestJWT(t)
	token, err := GenerateJWT("identity-42")
	if err != nil {
		t.Fatalf("GenerateJWT: %v", err)
	}

	t.Setenv("JWT_SECRET", "other-secret")
	InitJWT()
	if _, err := ParseJWT(token); err == nil {
		t.Fatal("token signed with old secret was accepted")
	}
}

func TestParseRejectsExpired(t *testing.T) {
	initTestJWT(t)

	past := time.Now().Add(-time.Hour).Unix()
	claims := jwt.MapClaims{
		"identity_id": "identity-42",
		"exp":         past,
		"iat":         past - 60,
		"nbf":         past - 60,
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	if _, err := ParseJWT(token); err == nil {
		t.Fatal("expired token was accepted")
	}
}

func TestParseRejectsMissingIdentity(t *testing.T) {
	initTestJWT(t)

	now := time.Now().Unix()
	claims := jwt.MapClaims{
		"exp": now + 3600,
		"iat": now,
		"nbf": now,
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	if _, err := ParseJWT(token); err == nil {
		t.Fatal("token without identity_id was accepted")
	}
}
