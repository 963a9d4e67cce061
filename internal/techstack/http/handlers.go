package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/folio-labs/portfolio-backend/internal/api/http/respond"
	"github.com/folio-labs/portfolio-backend/internal/techstack/domain"
)

func (h *Handler) list(c *gin.Context) {
	items, err := h.svc.List(c.Request.Context())
	if err != nil {
		respond.Internal(c, "list tech stack", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "techstack": items})
}

func (h *Handler) create(c *gin.Context) {
	var req itemReq
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.BadRequest(c)
		return
	}
	in, ok := req.toDomain()
	if !ok {
		respond.BadRequest(c)
		return
	}

	it, err := h.svc.Create(c.Request.Context(), in)
	if err != nil {
		respond.Internal(c, "create tech stack item", err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"ok": true, "item": it})
}

func (h *Handler) update(c *gin.Context) {
	var req itemReq
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.BadRequest(c)
		return
	}
	in, ok := req.toDomain()
	if !ok {
		respond.BadRequest(c)
		return
	}

	it, err := h.svc.Update(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			respond.NotFound(c, "tech stack item")
			return
		}
		respond.Internal(c, "update tech stack item", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "item": it})
}

func (h *Handler) delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respond.Internal(c, "delete tech stack item", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
