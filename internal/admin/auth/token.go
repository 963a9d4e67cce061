package auth

import (
	"crypto/rand"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultTTL is how long an admin session stays valid.
const DefaultTTL = 7 * 24 * time.Hour

// Issuer signs and validates HS256 session tokens. A token issued at T is
// valid strictly before T+ttl.
type Issuer struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// sessionClaims carries the exact expiry next to the registered exp claim,
// which only has whole-second resolution on the wire.
type sessionClaims struct {
	jwt.RegisteredClaims
	ExpiresAtNano int64 `json:"exp_ns"`
}

func NewIssuer(secret []byte, ttl time.Duration) *Issuer {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Issuer{secret: secret, ttl: ttl, now: time.Now}
}

// WithClock replaces the issuer's time source.
func (i *Issuer) WithClock(now func() time.Time) *Issuer {
	i.now = now
	return i
}

func (i *Issuer) TTL() time.Duration { return i.ttl }

// Issue returns a signed token for id and its expiry.
func (i *Issuer) Issue(id Identity) (string, time.Time, error) {
	now := i.now()
	exp := now.Add(i.ttl)
	// Round exp up so the library check never fires before the exact one.
	wireExp := exp.Truncate(time.Second)
	if wireExp.Before(exp) {
		wireExp = wireExp.Add(time.Second)
	}
	claims := sessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   id.Subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(wireExp),
		},
		ExpiresAtNano: exp.UnixNano(),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign token: %w", err)
	}
	return signed, exp, nil
}

// Parse validates a token and returns the identity it carries. Every failure
// is reported as ErrUnauthorized.
func (i *Issuer) Parse(token string) (Identity, error) {
	if token == "" {
		return Identity{}, ErrUnauthorized
	}

	var claims sessionClaims
	_, err := jwt.ParseWithClaims(token, &claims,
		func(*jwt.Token) (any, error) { return i.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(i.now),
		jwt.WithExpirationRequired(),
	)
	if err != nil || claims.Subject == "" || claims.ExpiresAtNano == 0 {
		return Identity{}, ErrUnauthorized
	}
	if !i.now().Before(time.Unix(0, claims.ExpiresAtNano)) {
		return Identity{}, ErrUnauthorized
	}
	return Identity{Subject: claims.Subject}, nil
}

// RandomSecret returns a fresh 32-byte signing key. Sessions signed with it
// do not survive a restart.
func RandomSecret() ([]byte, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return nil, fmt.Errorf("generate secret: %w", err)
	}
	return b, nil
}
