package http

import (
	"strings"

	"github.com/folio-labs/portfolio-backend/internal/contacts/domain"
	"github.com/folio-labs/portfolio-backend/internal/contacts/service"
)

type Handler struct {
	svc *service.ContactService
}

func New(svc *service.ContactService) *Handler {
	return &Handler{svc: svc}
}

type submitReq struct {
	Name        string `json:"name" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	ProjectType string `json:"project_type" binding:"required"`
	Budget      string `json:"budget" binding:"required"`
	Message     string `json:"message" binding:"required"`
}

func (r submitReq) toDomain() (domain.Contact, bool) {
	c := domain.Contact{
		Name:        strings.TrimSpace(r.Name),
		Email:       strings.TrimSpace(r.Email),
		ProjectType: strings.TrimSpace(r.ProjectType),
		Budget:      strings.TrimSpace(r.Budget),
		Message:     strings.TrimSpace(r.Message),
	}
	ok := c.Name != "" && c.ProjectType != "" && c.Budget != "" && c.Message != ""
	return c, ok
}

type repliedReq struct {
	Replied *bool `json:"replied" binding:"required"`
}
