package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/folio-labs/portfolio-backend/internal/api/http/respond"
	"github.com/folio-labs/portfolio-backend/internal/blogs/domain"
)

func (h *Handler) listPublished(c *gin.Context) {
	items, err := h.svc.Published(c.Request.Context())
	if err != nil {
		respond.Internal(c, "list blogs", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "blogs": items})
}

func (h *Handler) listAll(c *gin.Context) {
	items, err := h.svc.All(c.Request.Context())
	if err != nil {
		respond.Internal(c, "list blogs", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "blogs": items})
}

func (h *Handler) read(c *gin.Context) {
	b, err := h.svc.Read(c.Request.Context(), c.Param("slug"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			respond.NotFound(c, "blog")
			return
		}
		respond.Internal(c, "read blog", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "blog": b})
}

func (h *Handler) create(c *gin.Context) {
	in, ok := bind(c)
	if !ok {
		return
	}

	b, err := h.svc.Create(c.Request.Context(), in)
	if err != nil {
		writeErr(c, "create blog", err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"ok": true, "blog": b})
}

func (h *Handler) update(c *gin.Context) {
	in, ok := bind(c)
	if !ok {
		return
	}

	b, err := h.svc.Update(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		writeErr(c, "update blog", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "blog": b})
}

func (h *Handler) delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respond.Internal(c, "delete blog", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func bind(c *gin.Context) (domain.Blog, bool) {
	var req blogReq
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.BadRequest(c)
		return domain.Blog{}, false
	}
	in, ok := req.toDomain()
	if !ok {
		respond.BadRequest(c)
	}
	return in, ok
}

func writeErr(c *gin.Context, op string, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidSlug):
		respond.BadRequest(c)
	case errors.Is(err, domain.ErrSlugTaken):
		respond.Error(c, http.StatusConflict, "slug already exists")
	case errors.Is(err, domain.ErrNotFound):
		respond.NotFound(c, "blog")
	default:
		respond.Internal(c, op, err)
	}
}
