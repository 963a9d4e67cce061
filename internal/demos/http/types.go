package http

import "github.com/folio-labs/portfolio-backend/internal/demos/service"

const (
	recentLimit     = 50
	defaultMimeType = "application/pdf"
)

type Handler struct {
	svc      *service.DemoService
	maxBytes int64
}

// New builds the demo handler. Documents decoding to more than maxBytes are
// rejected.
func New(svc *service.DemoService, maxBytes int64) *Handler {
	return &Handler{svc: svc, maxBytes: maxBytes}
}

type analyzeReq struct {
	FileName string `json:"file_name"`
	FileData string `json:"file_data" binding:"required"`
	MimeType string `json:"mime_type"`
}
