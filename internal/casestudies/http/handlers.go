package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/folio-labs/portfolio-backend/internal/api/http/respond"
	"github.com/folio-labs/portfolio-backend/internal/casestudies/domain"
)

func (h *Handler) list(c *gin.Context) {
	items, err := h.svc.List(c.Request.Context())
	if err != nil {
		respond.Internal(c, "list case studies", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "case_studies": items})
}

func (h *Handler) create(c *gin.Context) {
	var req caseStudyReq
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.BadRequest(c)
		return
	}
	in, ok := req.toDomain()
	if !ok {
		respond.BadRequest(c)
		return
	}

	cs, err := h.svc.Create(c.Request.Context(), in)
	if err != nil {
		respond.Internal(c, "create case study", err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"ok": true, "case_study": cs})
}

func (h *Handler) update(c *gin.Context) {
	var req caseStudyReq
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.BadRequest(c)
		return
	}
	in, ok := req.toDomain()
	if !ok {
		respond.BadRequest(c)
		return
	}

	cs, err := h.svc.Update(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			respond.NotFound(c, "case study")
			return
		}
		respond.Internal(c, "update case study", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "case_study": cs})
}

func (h *Handler) delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respond.Internal(c, "delete case study", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
