package http

import (
	"encoding/base64"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/folio-labs/portfolio-backend/internal/api/http/respond"
	"github.com/folio-labs/portfolio-backend/internal/demos/domain"
	"github.com/folio-labs/portfolio-backend/internal/logging"
)

func (h *Handler) analyzeResume(c *gin.Context) {
	// base64 inflates by 4/3; leave headroom for the other JSON fields.
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxBytes/3*4+64<<10)

	var req analyzeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		var tooBig *http.MaxBytesError
		if errors.As(err, &tooBig) {
			respond.Error(c, http.StatusRequestEntityTooLarge, "document too large")
			return
		}
		respond.Error(c, http.StatusBadRequest, "missing file data")
		return
	}

	doc, err := h.document(req)
	if err != nil {
		if errors.Is(err, domain.ErrDocumentTooLarge) {
			respond.Error(c, http.StatusRequestEntityTooLarge, "document too large")
			return
		}
		respond.Error(c, http.StatusBadRequest, "file data is not valid base64")
		return
	}

	a, err := h.svc.AnalyzeResume(c.Request.Context(), doc)
	if err != nil {
		if errors.Is(err, domain.ErrAnalyzerUnavailable) {
			respond.Error(c, http.StatusServiceUnavailable, "resume analyzer unavailable")
			return
		}
		logging.FromContext(c.Request.Context()).Error("resume analysis failed", zap.Error(err))
		respond.Error(c, http.StatusBadGateway, "failed to analyze resume")
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "result": a})
}

// document decodes the upload. A data URL prefix is accepted and supplies
// the mime type when none was sent.
func (h *Handler) document(req analyzeReq) (domain.Document, error) {
	data, mime := strings.TrimSpace(req.FileData), strings.TrimSpace(req.MimeType)
	if rest, ok := strings.CutPrefix(data, "data:"); ok {
		meta, payload, found := strings.Cut(rest, ",")
		if !found {
			return domain.Document{}, errors.New("malformed data url")
		}
		if mime == "" {
			mime = strings.TrimSuffix(meta, ";base64")
		}
		data = payload
	}
	if mime == "" {
		mime = defaultMimeType
	}

	if int64(base64.StdEncoding.DecodedLen(len(data))) > h.maxBytes+2 {
		return domain.Document{}, domain.ErrDocumentTooLarge
	}
	raw, err := base64.StdEncoding.DecodeString(data)
	if err != nil {
		return domain.Document{}, err
	}
	if int64(len(raw)) > h.maxBytes {
		return domain.Document{}, domain.ErrDocumentTooLarge
	}

	return domain.Document{FileName: strings.TrimSpace(req.FileName), MimeType: mime, Data: raw}, nil
}

func (h *Handler) list(c *gin.Context) {
	items, err := h.svc.Recent(c.Request.Context(), recentLimit)
	if err != nil {
		respond.Internal(c, "list demo results", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "results": items})
}
