package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/folio-labs/portfolio-backend/internal/api/http/respond"
	"github.com/folio-labs/portfolio-backend/internal/settings/domain"
)

func (h *Handler) public(c *gin.Context) {
	s, err := h.svc.Visit(c.Request.Context())
	if err != nil {
		respond.Internal(c, "load settings", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "settings": s})
}

func (h *Handler) get(c *gin.Context) {
	s, err := h.svc.Get(c.Request.Context())
	if err != nil {
		respond.Internal(c, "load settings", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "settings": s})
}

func (h *Handler) update(c *gin.Context) {
	var p domain.Patch
	if err := c.ShouldBindJSON(&p); err != nil {
		respond.BadRequest(c)
		return
	}

	s, err := h.svc.Update(c.Request.Context(), p)
	if err != nil {
		respond.Internal(c, "update settings", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "settings": s})
}
