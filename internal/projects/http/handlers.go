package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/folio-labs/portfolio-backend/internal/api/http/respond"
	"github.com/folio-labs/portfolio-backend/internal/projects/domain"
)

func (h *Handler) list(c *gin.Context) {
	items, err := h.svc.List(c.Request.Context())
	if err != nil {
		respond.Internal(c, "list projects", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "projects": items})
}

func (h *Handler) create(c *gin.Context) {
	var req projectReq
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.BadRequest(c)
		return
	}
	in, ok := req.toDomain()
	if !ok {
		respond.BadRequest(c)
		return
	}

	p, err := h.svc.Create(c.Request.Context(), in)
	if err != nil {
		respond.Internal(c, "create project", err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"ok": true, "project": p})
}

func (h *Handler) update(c *gin.Context) {
	var req projectReq
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.BadRequest(c)
		return
	}
	in, ok := req.toDomain()
	if !ok {
		respond.BadRequest(c)
		return
	}

	p, err := h.svc.Update(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			respond.NotFound(c, "project")
			return
		}
		respond.Internal(c, "update project", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "project": p})
}

func (h *Handler) delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respond.Internal(c, "delete project", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func (h *Handler) click(c *gin.Context) {
	clicks, err := h.svc.Click(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			respond.NotFound(c, "project")
			return
		}
		respond.Internal(c, "record project click", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "clicks": clicks})
}
