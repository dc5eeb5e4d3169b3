// Package auth implements the bearer-token gate: HMAC-signed tokens
// issued on login and verified on every protected request.
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/metacore/lims/internal/platform/apperr"
)

// TokenTTL is the lifetime of an issued token.
const TokenTTL = 24 * time.Hour

// Claims identify the logged-in account.
type Claims struct {
	jwt.RegisteredClaims
	Email string `json:"email"`
}

// AccountID returns the subject claim as a UUID.
func (c *Claims) AccountID() (uuid.UUID, error) {
	return uuid.Parse(c.Subject)
}

// Signer issues and verifies HS256 tokens with a process-wide secret.
// The secret is loaded once at startup and never mutated.
type Signer struct {
	secret []byte
}

func NewSigner(secret string) *Signer {
	return &Signer{secret: []byte(secret)}
}

// Issue signs a token for the account with a 24-hour expiry.
func (s *Signer) Issue(accountID uuid.UUID, email string) (string, error) {
	now := time.Now()
	claims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   accountID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(TokenTTL)),
		},
		Email: email,
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// Verify parses and validates a token. Expired tokens and otherwise
// invalid tokens both fail with 401 but carry distinct messages.
func (s *Signer) Verify(tokenStr string) (*Claims, error) {
	claims := &Claims{}
	_, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, apperr.Auth("Token has expired")
		}
		return nil, apperr.Auth("Invalid token")
	}
	return claims, nil
}
