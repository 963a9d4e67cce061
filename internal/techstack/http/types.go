package http

import (
	"strings"

	"github.com/folio-labs/portfolio-backend/internal/techstack/domain"
	"github.com/folio-labs/portfolio-backend/internal/techstack/service"
)

type Handler struct {
	svc *service.TechStackService
}

func New(svc *service.TechStackService) *Handler {
	return &Handler{svc: svc}
}

type itemReq struct {
	Name        string `json:"name" binding:"required"`
	Category    string `json:"category" binding:"required,oneof=Frontend Backend AI Tools"`
	Proficiency *int   `json:"proficiency" binding:"omitempty,min=0,max=100"`
	Order       int    `json:"order"`
}

func (r itemReq) toDomain() (domain.Item, bool) {
	it := domain.Item{
		Name:        strings.TrimSpace(r.Name),
		Category:    r.Category,
		Proficiency: domain.DefaultProficiency,
		Order:       r.Order,
	}
	if r.Proficiency != nil {
		it.Proficiency = *r.Proficiency
	}
	return it, it.Name != ""
}
