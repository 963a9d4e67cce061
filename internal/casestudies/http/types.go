package http

import (
	"strings"

	"github.com/folio-labs/portfolio-backend/internal/casestudies/domain"
	"github.com/folio-labs/portfolio-backend/internal/casestudies/service"
)

type Handler struct {
	svc *service.CaseStudyService
}

func New(svc *service.CaseStudyService) *Handler {
	return &Handler{svc: svc}
}

type caseStudyReq struct {
	Title       string   `json:"title" binding:"required"`
	ClientName  string   `json:"client_name" binding:"required"`
	Metrics     []string `json:"metrics"`
	Description string   `json:"description" binding:"required"`
	ROI         string   `json:"roi" binding:"required"`
	ImageURL    string   `json:"image_url"`
	Featured    bool     `json:"featured"`
}

func (r caseStudyReq) toDomain() (domain.CaseStudy, bool) {
	cs := domain.CaseStudy{
		Title:       strings.TrimSpace(r.Title),
		ClientName:  strings.TrimSpace(r.ClientName),
		Metrics:     r.Metrics,
		Description: strings.TrimSpace(r.Description),
		ROI:         strings.TrimSpace(r.ROI),
		ImageURL:    strings.TrimSpace(r.ImageURL),
		Featured:    r.Featured,
	}
	ok := cs.Title != "" && cs.ClientName != "" && cs.Description != "" && cs.ROI != ""
	return cs, ok
}
