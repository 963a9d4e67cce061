package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/folio-labs/portfolio-backend/internal/api/http/respond"
	"github.com/folio-labs/portfolio-backend/internal/pricing/domain"
	"github.com/folio-labs/portfolio-backend/internal/pricing/quote"
)

func (h *Handler) calculate(c *gin.Context) {
	var req calculateReq
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.ProjectType) == "" {
		respond.BadRequest(c)
		return
	}

	q := h.svc.Calculate(c.Request.Context(), domain.QuoteRequest{
		ProjectType: strings.TrimSpace(req.ProjectType),
		Features:    quote.Dedupe(req.Features),
	})

	c.JSON(http.StatusOK, gin.H{"ok": true, "total_price": q.TotalPrice, "timeline_days": q.TimelineDays})
}

func (h *Handler) catalog(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"ok": true, "catalog": h.svc.Catalog()})
}

func (h *Handler) list(c *gin.Context) {
	items, err := h.svc.Recent(c.Request.Context(), recentLimit)
	if err != nil {
		respond.Internal(c, "list pricing quotes", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "quotes": items})
}

func (h *Handler) setContacted(c *gin.Context) {
	var req contactedReq
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.BadRequest(c)
		return
	}

	q, err := h.svc.MarkContacted(c.Request.Context(), c.Param("id"), *req.Contacted)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			respond.NotFound(c, "pricing quote")
			return
		}
		respond.Internal(c, "update pricing quote", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "quote": q})
}
