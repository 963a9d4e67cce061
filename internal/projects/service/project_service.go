package service

import (
	"context"

	"github.com/folio-labs/portfolio-backend/internal/projects/domain"
)

// Store is the project persistence the service depends on.
type Store interface {
	List(ctx context.Context) ([]domain.Project, error)
	Create(ctx context.Context, p *domain.Project) error
	Update(ctx context.Context, id string, p domain.Project) (*domain.Project, error)
	Delete(ctx context.Context, id string) error
	IncrementClicks(ctx context.Context, id string) (int64, error)
	Count(ctx context.Context) (int64, error)
}

// ProjectService handles project-related business logic
type ProjectService struct {
	store Store
}

func NewProjectService(store Store) *ProjectService {
	return &ProjectService{store: store}
}

func (s *ProjectService) List(ctx context.Context) ([]domain.Project, error) {
	return s.store.List(ctx)
}

// Create stores p, defaulting the category.
func (s *ProjectService) Create(ctx context.Context, p domain.Project) (*domain.Project, error) {
	if p.Category == "" {
		p.Category = domain.DefaultCategory
	}
	if err := s.store.Create(ctx, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *ProjectService) Update(ctx context.Context, id string, p domain.Project) (*domain.Project, error) {
	if p.Category == "" {
		p.Category = domain.DefaultCategory
	}
	return s.store.Update(ctx, id, p)
}

func (s *ProjectService) Delete(ctx context.Context, id string) error {
	return s.store.Delete(ctx, id)
}

// Click records one public click on project id.
func (s *ProjectService) Click(ctx context.Context, id string) (int64, error) {
	return s.store.IncrementClicks(ctx, id)
}

func (s *ProjectService) Count(ctx context.Context) (int64, error) {
	return s.store.Count(ctx)
}
