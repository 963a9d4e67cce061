// Package respond writes the {"ok": ..., "error": ...} JSON envelope shared by
// every API handler.
package respond

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/folio-labs/portfolio-backend/internal/logging"
)

// Error aborts with status and a client-facing message.
func Error(c *gin.Context, status int, msg string) {
	c.AbortWithStatusJSON(status, gin.H{"ok": false, "error": msg})
}

// BadRequest is the generic validation failure. No field detail is exposed.
func BadRequest(c *gin.Context) {
	Error(c, http.StatusBadRequest, "invalid body")
}

func NotFound(c *gin.Context, what string) {
	Error(c, http.StatusNotFound, what+" not found")
}

// Internal logs err against the request and answers a 500 that carries no
// detail about the failure.
func Internal(c *gin.Context, op string, err error) {
	logging.FromContext(c.Request.Context()).Error(op, zap.Error(err))
	Error(c, http.StatusInternalServerError, "internal server error")
}
