// Package token verifies the JSON Web Tokens issued by the main backend.
package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrInvalidToken is returned for malformed, mis-signed or structurally
	// broken tokens.
	ErrInvalidToken = errors.New("invalid token")

	// ErrExpiredToken is returned when the token signature is fine but the
	// token is past its expiry.
	ErrExpiredToken = errors.New("token expired")
)

// Claims is the payload the main backend puts in its access tokens.
// The user identifier may arrive either as "user_id" or as the standard
// "sub" claim depending on the backend version.
type Claims struct {
	UserID string `json:"user_id,omitempty"`
	Name   string `json:"name,omitempty"`
	Email  string `json:"email,omitempty"`
	jwt.RegisteredClaims
}

// UserIdentifier returns the effective user identifier, preferring the
// explicit user_id claim over the registered sub claim.
func (c *Claims) UserIdentifier() string {
	if c.UserID != "" {
		return c.UserID
	}
	return c.Subject
}

// Manager signs and verifies HS256 tokens with a shared secret.
type Manager struct {
	secretKey []byte
	tokenDur  time.Duration
}

// NewManager creates a Manager. expireMinutes applies to tokens generated
// locally (the test helpers); verification only cares about the secret.
func NewManager(secret string, expireMinutes int) *Manager {
	return &Manager{
		secretKey: []byte(secret),
		tokenDur:  time.Duration(expireMinutes) * time.Minute,
	}
}

// Generate creates a signed access token for the given user. The service
// itself never issues tokens in production, the main backend does; this is
// used by local tooling and tests.
func (m *Manager) Generate(userID, name, email string) (string, error) {
	claims := Claims{
		UserID: userID,
		Name:   name,
		Email:  email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(m.tokenDur)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return tok.SignedString(m.secretKey)
}

// Verify parses and validates a token string and returns its claims.
func (m *Manager) Verify(tokenString string) (*Claims, error) {
	tok, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return m.secretKey, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}

	claims, ok := tok.Claims.(*Claims)
	if !ok || !tok.Valid {
		return nil, ErrInvalidToken
	}
	if claims.UserIdentifier() == "" {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
