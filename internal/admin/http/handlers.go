package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/folio-labs/portfolio-backend/internal/admin/auth"
	"github.com/folio-labs/portfolio-backend/internal/api/http/respond"
)

func (h *Handler) login(c *gin.Context) {
	var req loginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.BadRequest(c)
		return
	}
	creds, ok := req.toCredentials()
	if !ok {
		respond.BadRequest(c)
		return
	}

	id, err := h.verifier.Verify(c.Request.Context(), creds)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			respond.Error(c, http.StatusUnauthorized, "invalid credentials")
			return
		}
		respond.Internal(c, "verify admin", err)
		return
	}

	token, exp, err := h.issuer.Issue(id)
	if err != nil {
		respond.Internal(c, "issue session", err)
		return
	}
	auth.SetSessionCookie(c, token, h.issuer.TTL(), h.secureCookie)
	c.JSON(http.StatusOK, gin.H{"ok": true, "user": id, "token": token, "expires_at": exp})
}

func (h *Handler) logout(c *gin.Context) {
	auth.ClearSessionCookie(c, h.secureCookie)
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func (h *Handler) check(c *gin.Context) {
	id, _ := auth.AdminFromContext(c)
	c.JSON(http.StatusOK, gin.H{"ok": true, "user": id})
}

func (h *Handler) dashboard(c *gin.Context) {
	sum, err := h.dash.Summary(c.Request.Context())
	if err != nil {
		respond.Internal(c, "dashboard summary", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "stats": sum})
}
