// Package auth implements the single-admin session gate: credential
// verification at login, signed session tokens, and the gin middleware that
// protects the admin API.
package auth

import (
	"context"
	"crypto/subtle"
	"errors"

	"golang.org/x/crypto/bcrypt"
)

var (
	// ErrInvalidCredentials is returned by every Verifier for any login
	// failure. Callers must not distinguish causes.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrUnauthorized covers missing, malformed, expired and forged session tokens.
	ErrUnauthorized = errors.New("unauthorized")
)

// Credentials is a login attempt. Password verifiers read Username and
// Password; the Firebase verifier reads IDToken.
type Credentials struct {
	Username string
	Password string
	IDToken  string
}

// Identity is the authenticated admin.
type Identity struct {
	Subject string `json:"username"`
}

type Verifier interface {
	Verify(ctx context.Context, c Credentials) (Identity, error)
}

// PasswordVerifier checks a username and bcrypt password hash taken from
// configuration.
type PasswordVerifier struct {
	username []byte
	hash     []byte
}

func NewPasswordVerifier(username, passwordHash string) *PasswordVerifier {
	return &PasswordVerifier{username: []byte(username), hash: []byte(passwordHash)}
}

func (v *PasswordVerifier) Verify(_ context.Context, c Credentials) (Identity, error) {
	// Both checks always run so a wrong username costs the same as a wrong password.
	userOK := subtle.ConstantTimeCompare([]byte(c.Username), v.username) == 1
	passErr := bcrypt.CompareHashAndPassword(v.hash, []byte(c.Password))
	if !userOK || passErr != nil {
		return Identity{}, ErrInvalidCredentials
	}
	return Identity{Subject: string(v.username)}, nil
}

// HashPassword returns a bcrypt hash suitable for ADMIN_PASSWORD_HASH.
func HashPassword(password string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
