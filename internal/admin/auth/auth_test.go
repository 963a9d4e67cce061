package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	fbauth "firebase.google.com/go/v4/auth"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

var secret = []byte("0123456789abcdef0123456789abcdef")

func TestPasswordVerifier(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	require.NoError(t, err)
	v := NewPasswordVerifier("admin", string(hash))

	id, err := v.Verify(context.Background(), Credentials{Username: "admin", Password: "s3cret"})
	require.NoError(t, err)
	assert.Equal(t, "admin", id.Subject)

	for name, c := range map[string]Credentials{
		"wrong password": {Username: "admin", Password: "nope"},
		"wrong username": {Username: "root", Password: "s3cret"},
		"empty":          {},
	} {
		t.Run(name, func(t *testing.T) {
			_, err := v.Verify(context.Background(), c)
			assert.ErrorIs(t, err, ErrInvalidCredentials)
		})
	}
}

type fakeIDVerifier struct {
	email string
	err   error
}

func (f fakeIDVerifier) VerifyIDToken(context.Context, string) (*fbauth.Token, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &fbauth.Token{UID: "uid-1", Claims: map[string]interface{}{"email": f.email}}, nil
}

func TestFirebaseVerifier(t *testing.T) {
	ctx := context.Background()

	id, err := NewFirebaseVerifier(fakeIDVerifier{email: "Owner@Example.com"}, "owner@example.com").
		Verify(ctx, Credentials{IDToken: "tok"})
	require.NoError(t, err)
	assert.Equal(t, "owner@example.com", id.Subject)

	_, err = NewFirebaseVerifier(fakeIDVerifier{email: "someone@example.com"}, "owner@example.com").
		Verify(ctx, Credentials{IDToken: "tok"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = NewFirebaseVerifier(fakeIDVerifier{err: assert.AnError}, "owner@example.com").
		Verify(ctx, Credentials{IDToken: "tok"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = NewFirebaseVerifier(fakeIDVerifier{email: "owner@example.com"}, "owner@example.com").
		Verify(ctx, Credentials{})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestIssuer_SevenDayWindow(t *testing.T) {
	issuedAt := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	now := issuedAt
	issuer := NewIssuer(secret, DefaultTTL).WithClock(func() time.Time { return now })

	tok, exp, err := issuer.Issue(Identity{Subject: "admin"})
	require.NoError(t, err)
	assert.Equal(t, issuedAt.Add(7*24*time.Hour), exp)

	for _, at := range []time.Time{issuedAt, issuedAt.Add(3 * 24 * time.Hour), exp.Add(-time.Second)} {
		now = at
		id, err := issuer.Parse(tok)
		require.NoError(t, err, "at %s", at)
		assert.Equal(t, "admin", id.Subject)
	}

	for _, at := range []time.Time{exp, exp.Add(time.Second), exp.Add(30 * 24 * time.Hour)} {
		now = at
		_, err := issuer.Parse(tok)
		assert.ErrorIs(t, err, ErrUnauthorized, "at %s", at)
	}
}

func TestIssuer_SevenDayWindowSubSecond(t *testing.T) {
	issuedAt := time.Date(2026, 3, 1, 12, 0, 0, 900_000_123, time.UTC)
	now := issuedAt
	issuer := NewIssuer(secret, DefaultTTL).WithClock(func() time.Time { return now })

	tok, exp, err := issuer.Issue(Identity{Subject: "admin"})
	require.NoError(t, err)
	require.Equal(t, issuedAt.Add(7*24*time.Hour), exp)

	for _, at := range []time.Time{exp.Add(-time.Second), exp.Add(-500 * time.Millisecond), exp.Add(-time.Nanosecond)} {
		now = at
		_, err := issuer.Parse(tok)
		require.NoError(t, err, "at %s", at)
	}

	for _, at := range []time.Time{exp, exp.Add(time.Nanosecond), exp.Add(50 * time.Millisecond)} {
		now = at
		_, err := issuer.Parse(tok)
		assert.ErrorIs(t, err, ErrUnauthorized, "at %s", at)
	}
}

func TestIssuer_RejectsBadTokens(t *testing.T) {
	issuer := NewIssuer(secret, time.Hour)

	forged, _, err := NewIssuer([]byte("another-secret-another-secret-xx"), time.Hour).Issue(Identity{Subject: "admin"})
	require.NoError(t, err)

	noExp, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{Subject: "admin"}).SignedString(secret)
	require.NoError(t, err)

	secondsOnly, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "admin",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}).SignedString(secret)
	require.NoError(t, err)

	none, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{
		Subject:   "admin",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	for name, tok := range map[string]string{
		"missing":      "",
		"malformed":    "not.a.jwt",
		"forged":       forged,
		"no expiry":    noExp,
		"seconds only": secondsOnly,
		"alg none":     none,
	} {
		t.Run(name, func(t *testing.T) {
			_, err := issuer.Parse(tok)
			assert.ErrorIs(t, err, ErrUnauthorized)
		})
	}
}

func gated(issuer *Issuer) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/admin/check", RequireAdmin(issuer), func(c *gin.Context) {
		id, _ := AdminFromContext(c)
		c.JSON(http.StatusOK, gin.H{"ok": true, "user": id})
	})
	return r
}

func TestRequireAdmin(t *testing.T) {
	issuer := NewIssuer(secret, time.Hour)
	tok, _, err := issuer.Issue(Identity{Subject: "admin"})
	require.NoError(t, err)
	r := gated(issuer)

	t.Run("cookie", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/admin/check", nil)
		req.AddCookie(&http.Cookie{Name: CookieName, Value: tok})
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), `"username":"admin"`)
	})

	t.Run("bearer header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/admin/check", nil)
		req.Header.Set("Authorization", "Bearer "+tok)
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("uniform 401", func(t *testing.T) {
		expired, _, err := NewIssuer(secret, time.Hour).
			WithClock(func() time.Time { return time.Now().Add(-2 * time.Hour) }).
			Issue(Identity{Subject: "admin"})
		require.NoError(t, err)

		var bodies []string
		for _, h := range []string{"", "Bearer garbage", "Bearer " + expired, "Basic abc"} {
			req := httptest.NewRequest(http.MethodGet, "/admin/check", nil)
			if h != "" {
				req.Header.Set("Authorization", h)
			}
			rr := httptest.NewRecorder()
			r.ServeHTTP(rr, req)
			assert.Equal(t, http.StatusUnauthorized, rr.Code)
			bodies = append(bodies, rr.Body.String())
		}
		for _, b := range bodies[1:] {
			assert.Equal(t, bodies[0], b)
		}
	})
}

func TestSessionCookie(t *testing.T) {
	gin.SetMode(gin.TestMode)

	rr := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rr)
	c.Request = httptest.NewRequest(http.MethodPost, "/", nil)
	SetSessionCookie(c, "tok", DefaultTTL, true)

	set := rr.Header().Get("Set-Cookie")
	assert.Contains(t, set, CookieName+"=tok")
	assert.Contains(t, set, "HttpOnly")
	assert.Contains(t, set, "SameSite=Strict")
	assert.Contains(t, set, "Secure")
	assert.Contains(t, set, "Max-Age=604800")

	rr = httptest.NewRecorder()
	c, _ = gin.CreateTestContext(rr)
	c.Request = httptest.NewRequest(http.MethodPost, "/", nil)
	ClearSessionCookie(c, false)

	set = rr.Header().Get("Set-Cookie")
	assert.Contains(t, set, "Max-Age=0")
	assert.NotContains(t, set, "Secure")
}
