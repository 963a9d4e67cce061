package http

import (
	"strings"

	"github.com/folio-labs/portfolio-backend/internal/projects/domain"
	"github.com/folio-labs/portfolio-backend/internal/projects/service"
)

// Handler bundles the dependencies for projects HTTP endpoints.
type Handler struct {
	svc *service.ProjectService
}

func New(svc *service.ProjectService) *Handler {
	return &Handler{svc: svc}
}

type projectReq struct {
	Title       string   `json:"title" binding:"required"`
	Description string   `json:"description" binding:"required"`
	Metrics     string   `json:"metrics" binding:"required"`
	Tech        []string `json:"tech"`
	DemoURL     string   `json:"demo_url"`
	GitHubURL   string   `json:"github_url"`
	Featured    bool     `json:"featured"`
	Category    string   `json:"category" binding:"omitempty,oneof=AI MERN Freelance Other"`
}

// toDomain trims the request and reports false when a required field is blank.
func (r projectReq) toDomain() (domain.Project, bool) {
	p := domain.Project{
		Title:       strings.TrimSpace(r.Title),
		Description: strings.TrimSpace(r.Description),
		Metrics:     strings.TrimSpace(r.Metrics),
		Tech:        r.Tech,
		DemoURL:     strings.TrimSpace(r.DemoURL),
		GitHubURL:   strings.TrimSpace(r.GitHubURL),
		Featured:    r.Featured,
		Category:    r.Category,
	}
	ok := p.Title != "" && p.Description != "" && p.Metrics != ""
	return p, ok
}
