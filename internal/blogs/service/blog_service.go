package service

import (
	"context"

	"github.com/folio-labs/portfolio-backend/internal/blogs/domain"
)

type Store interface {
	ListPublished(ctx context.Context) ([]domain.Blog, error)
	ListAll(ctx context.Context) ([]domain.Blog, error)
	ViewBySlug(ctx context.Context, slug string) (*domain.Blog, error)
	Create(ctx context.Context, b *domain.Blog) error
	Update(ctx context.Context, id string, b domain.Blog) (*domain.Blog, error)
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}

type BlogService struct {
	store Store
}

func NewBlogService(store Store) *BlogService {
	return &BlogService{store: store}
}

func (s *BlogService) Published(ctx context.Context) ([]domain.Blog, error) {
	return s.store.ListPublished(ctx)
}

func (s *BlogService) All(ctx context.Context) ([]domain.Blog, error) {
	return s.store.ListAll(ctx)
}

// Read returns a published post by slug and counts the view.
func (s *BlogService) Read(ctx context.Context, slug string) (*domain.Blog, error) {
	return s.store.ViewBySlug(ctx, slug)
}

func (s *BlogService) Create(ctx context.Context, b domain.Blog) (*domain.Blog, error) {
	if err := normalizeSlug(&b); err != nil {
		return nil, err
	}
	if err := s.store.Create(ctx, &b); err != nil {
		return nil, err
	}
	return &b, nil
}

func (s *BlogService) Update(ctx context.Context, id string, b domain.Blog) (*domain.Blog, error) {
	if err := normalizeSlug(&b); err != nil {
		return nil, err
	}
	return s.store.Update(ctx, id, b)
}

func (s *BlogService) Delete(ctx context.Context, id string) error {
	return s.store.Delete(ctx, id)
}

func (s *BlogService) Count(ctx context.Context) (int64, error) {
	return s.store.Count(ctx)
}

// normalizeSlug slugifies the given slug, or the title when no slug was sent.
func normalizeSlug(b *domain.Blog) error {
	src := b.Slug
	if src == "" {
		src = b.Title
	}
	b.Slug = domain.Slugify(src)
	if b.Slug == "" {
		return domain.ErrInvalidSlug
	}
	return nil
}
