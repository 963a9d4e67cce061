package http

import "github.com/folio-labs/portfolio-backend/internal/pricing/service"

// recentLimit caps the admin quote listing.
const recentLimit = 50

type Handler struct {
	svc *service.PricingService
}

func New(svc *service.PricingService) *Handler {
	return &Handler{svc: svc}
}

type calculateReq struct {
	ProjectType string   `json:"project_type" binding:"required"`
	Features    []string `json:"features"`
}

type contactedReq struct {
	Contacted *bool `json:"contacted" binding:"required"`
}
