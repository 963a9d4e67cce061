package http

import (
	"strings"

	"github.com/folio-labs/portfolio-backend/internal/blogs/domain"
	"github.com/folio-labs/portfolio-backend/internal/blogs/service"
)

type Handler struct {
	svc *service.BlogService
}

func New(svc *service.BlogService) *Handler {
	return &Handler{svc: svc}
}

type blogReq struct {
	Title         string   `json:"title" binding:"required"`
	Slug          string   `json:"slug"`
	Excerpt       string   `json:"excerpt"`
	Content       string   `json:"content" binding:"required"`
	Category      string   `json:"category" binding:"required,oneof=MERN AI Freelancing 'Nepal Tech'"`
	Tags          []string `json:"tags"`
	FeaturedImage string   `json:"featured_image"`
	Published     bool     `json:"published"`
}

func (r blogReq) toDomain() (domain.Blog, bool) {
	b := domain.Blog{
		Title:         strings.TrimSpace(r.Title),
		Slug:          strings.TrimSpace(r.Slug),
		Excerpt:       strings.TrimSpace(r.Excerpt),
		Content:       r.Content,
		Category:      r.Category,
		Tags:          r.Tags,
		FeaturedImage: strings.TrimSpace(r.FeaturedImage),
		Published:     r.Published,
	}
	return b, b.Title != "" && strings.TrimSpace(b.Content) != ""
}
