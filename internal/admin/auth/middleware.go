package auth

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/folio-labs/portfolio-backend/internal/api/http/respond"
)

const (
	CookieName = "admin_token"
	ctxAdmin   = "admin_identity"
)

// RequireAdmin rejects the request with 401 unless it carries a valid session
// token in the admin_token cookie or an Authorization bearer header.
func RequireAdmin(issuer *Issuer) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := issuer.Parse(extractToken(c))
		if err != nil {
			respond.Error(c, http.StatusUnauthorized, "unauthorized")
			return
		}
		c.Set(ctxAdmin, id)
		c.Next()
	}
}

// AdminFromContext returns the identity set by RequireAdmin.
func AdminFromContext(c *gin.Context) (Identity, bool) {
	v, ok := c.Get(ctxAdmin)
	if !ok {
		return Identity{}, false
	}
	id, ok := v.(Identity)
	return id, ok
}

// extractToken prefers the session cookie and falls back to the Bearer header.
func extractToken(c *gin.Context) string {
	if v, err := c.Cookie(CookieName); err == nil && v != "" {
		return v
	}
	bearerToken := c.GetHeader("Authorization")
	if len(bearerToken) > 7 && strings.HasPrefix(bearerToken, "Bearer ") {
		return bearerToken[7:]
	}
	return ""
}

// SetSessionCookie writes the http-only, SameSite=Strict session cookie.
func SetSessionCookie(c *gin.Context, token string, ttl time.Duration, secure bool) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(CookieName, token, int(ttl/time.Second), "/", "", secure, true)
}

func ClearSessionCookie(c *gin.Context, secure bool) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(CookieName, "", -1, "/", "", secure, true)
}
