package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/folio-labs/portfolio-backend/internal/api/http/respond"
	"github.com/folio-labs/portfolio-backend/internal/logging"
)

// Recovery turns a handler panic into a generic 500.
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		logging.FromContext(c.Request.Context()).Error("handler panic",
			zap.Any("panic", recovered),
			zap.String("path", c.Request.URL.Path),
		)
		respond.Error(c, http.StatusInternalServerError, "internal server error")
	})
}

// Unavailable answers every request with 503. It is mounted in place of the
// API when the store could not be reached at startup.
func Unavailable() gin.HandlerFunc {
	return func(c *gin.Context) {
		respond.Error(c, http.StatusServiceUnavailable, "service unavailable")
	}
}

// NotFound is the JSON fallback for unmatched routes.
func NotFound() gin.HandlerFunc {
	return func(c *gin.Context) {
		respond.Error(c, http.StatusNotFound, "route not found")
	}
}
