package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

func TestSigner_IssueAndVerify(t *testing.T) {
	signer := NewSigner("test-secret")
	id := uuid.New()

	token, err := signer.Issue(id, "tech@metacore.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	claims, err := signer.Verify(token)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if claims.Email != "tech@metacore.com" {
		t.Errorf("expected email claim, got %q", claims.Email)
	}
	got, err := claims.AccountID()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != id {
		t.Errorf("expected account id %s, got %s", id, got)
	}

	ttl := time.Until(claims.ExpiresAt.Time)
	if ttl < 23*time.Hour || ttl > 24*time.Hour {
		t.Errorf("expected ~24h expiry, got %v", ttl)
	}
}

func TestSigner_ExpiredToken(t *testing.T) {
	signer := NewSigner("test-secret")

	claims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   uuid.New().String(),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
		Email: "tech@metacore.com",
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatal(err)
	}

	_, err = signer.Verify(token)
	if err == nil {
		t.Fatal("expected error for expired token")
	}
	if err.Error() != "Token has expired" {
		t.Errorf("expected expired message, got %q", err.Error())
	}
}

func TestSigner_WrongSecret(t *testing.T) {
	token, err := NewSigner("secret-a").Issue(uuid.New(), "tech@metacore.com")
	if err != nil {
		t.Fatal(err)
	}

	_, err = NewSigner("secret-b").Verify(token)
	if err == nil {
		t.Fatal("expected error for bad signature")
	}
	if err.Error() != "Invalid token" {
		t.Errorf("expected invalid message, got %q", err.Error())
	}
}

func TestSigner_Garbage(t *testing.T) {
	if _, err := NewSigner("s").Verify("not.a.token"); err == nil {
		t.Error("expected error for malformed token")
	}
}
