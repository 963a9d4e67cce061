package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/folio-labs/portfolio-backend/internal/admin/auth"
	"github.com/folio-labs/portfolio-backend/internal/admin/service"
	"github.com/folio-labs/portfolio-backend/internal/ratelimit"
)

type fixed int64

func (f fixed) Count(context.Context) (int64, error)         { return int64(f), nil }
func (f fixed) TotalVisitors(context.Context) (int64, error) { return int64(f), nil }

func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	hash, err := bcrypt.GenerateFromPassword([]byte("hunter2"), bcrypt.MinCost)
	require.NoError(t, err)

	issuer := auth.NewIssuer([]byte("0123456789abcdef0123456789abcdef"), auth.DefaultTTL)
	dash := service.NewDashboardService(service.Sources{
		Visitors: fixed(42),
		Projects: fixed(5),
		Blogs:    fixed(3),
		Contacts: fixed(7),
		Demos:    fixed(2),
		Quotes:   fixed(11),
	})
	h := New(auth.NewPasswordVerifier("admin", string(hash)), issuer, dash, true)

	r := gin.New()
	g := r.Group("/api/admin")
	h.RegisterSession(g, ratelimit.Middleware(ratelimit.NewMemoryLimiter(3, time.Minute), "too many login attempts"))
	h.RegisterGated(g.Group("", auth.RequireAdmin(issuer)))
	return r
}

func do(r *gin.Engine, method, path, body string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}

func sessionCookie(t *testing.T, rr *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, ck := range rr.Result().Cookies() {
		if ck.Name == auth.CookieName {
			return ck
		}
	}
	t.Fatal("no session cookie set")
	return nil
}

func TestLoginCheckLogout(t *testing.T) {
	r := setupRouter(t)

	rr := do(r, http.MethodPost, "/api/admin/login", `{"username":"admin","password":"hunter2"}`)
	require.Equal(t, http.StatusOK, rr.Code)

	ck := sessionCookie(t, rr)
	assert.True(t, ck.HttpOnly)
	assert.True(t, ck.Secure)
	assert.Equal(t, http.SameSiteStrictMode, ck.SameSite)
	assert.Equal(t, int(auth.DefaultTTL/time.Second), ck.MaxAge)

	var body struct {
		OK    bool   `json:"ok"`
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.True(t, body.OK)
	assert.Equal(t, ck.Value, body.Token)

	rr = do(r, http.MethodGet, "/api/admin/check", "", &http.Cookie{Name: auth.CookieName, Value: ck.Value})
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"username":"admin"`)

	rr = do(r, http.MethodPost, "/api/admin/logout", "")
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "", sessionCookie(t, rr).Value)

	rr = do(r, http.MethodGet, "/api/admin/check", "")
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestLogin_Rejections(t *testing.T) {
	r := setupRouter(t)

	rr := do(r, http.MethodPost, "/api/admin/login", `{"username":"admin"}`)
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	rr = do(r, http.MethodPost, "/api/admin/login", `{"username":"admin","password":"wrong"}`)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Empty(t, rr.Result().Cookies())

	rr = do(r, http.MethodPost, "/api/admin/login", `{"username":"admin","password":"hunter2"}`)
	assert.Equal(t, http.StatusOK, rr.Code)

	rr = do(r, http.MethodPost, "/api/admin/login", `{"username":"admin","password":"hunter2"}`)
	assert.Equal(t, http.StatusTooManyRequests, rr.Code, "fourth attempt from the same client is throttled")
}

func TestDashboard(t *testing.T) {
	r := setupRouter(t)

	rr := do(r, http.MethodGet, "/api/admin/dashboard", "")
	assert.Equal(t, http.StatusUnauthorized, rr.Code)

	rr = do(r, http.MethodPost, "/api/admin/login", `{"username":"admin","password":"hunter2"}`)
	require.Equal(t, http.StatusOK, rr.Code)
	ck := sessionCookie(t, rr)

	rr = do(r, http.MethodGet, "/api/admin/dashboard", "", &http.Cookie{Name: auth.CookieName, Value: ck.Value})
	require.Equal(t, http.StatusOK, rr.Code)

	var body struct {
		Stats service.Summary `json:"stats"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Equal(t, service.Summary{
		TotalVisitors: 42,
		TotalProjects: 5,
		TotalBlogs:    3,
		TotalContacts: 7,
		TotalDemos:    2,
		TotalQuotes:   11,
	}, body.Stats)
}
