package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/folio-labs/portfolio-backend/internal/api/http/respond"
	"github.com/folio-labs/portfolio-backend/internal/contacts/domain"
)

func (h *Handler) submit(c *gin.Context) {
	var req submitReq
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.BadRequest(c)
		return
	}
	in, ok := req.toDomain()
	if !ok {
		respond.BadRequest(c)
		return
	}

	if _, err := h.svc.Submit(c.Request.Context(), in); err != nil {
		respond.Internal(c, "save contact", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "message": "Thanks! I'll reply in 2 hours 🚀"})
}

func (h *Handler) list(c *gin.Context) {
	items, err := h.svc.List(c.Request.Context())
	if err != nil {
		respond.Internal(c, "list contacts", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "contacts": items})
}

func (h *Handler) setReplied(c *gin.Context) {
	var req repliedReq
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.BadRequest(c)
		return
	}

	ct, err := h.svc.MarkReplied(c.Request.Context(), c.Param("id"), *req.Replied)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			respond.NotFound(c, "contact")
			return
		}
		respond.Internal(c, "update contact", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "contact": ct})
}
