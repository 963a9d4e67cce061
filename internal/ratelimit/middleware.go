package ratelimit

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/folio-labs/portfolio-backend/internal/api/http/respond"
	"github.com/folio-labs/portfolio-backend/internal/logging"
)

// Middleware answers 429 once the client IP exceeds the limiter's budget.
// Limiter errors let the request through.
func Middleware(l Limiter, msg string) gin.HandlerFunc {
	return func(c *gin.Context) {
		ok, err := l.Allow(c.Request.Context(), c.ClientIP())
		if err != nil {
			logging.FromContext(c.Request.Context()).Warn("rate limiter unavailable", zap.Error(err))
			c.Next()
			return
		}
		if !ok {
			respond.Error(c, http.StatusTooManyRequests, msg)
			return
		}
		c.Next()
	}
}
