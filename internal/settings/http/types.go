package http

import "github.com/folio-labs/portfolio-backend/internal/settings/service"

type Handler struct {
	svc *service.SettingsService
}

func New(svc *service.SettingsService) *Handler {
	return &Handler{svc: svc}
}
