package service

import (
	"context"

	"github.com/folio-labs/portfolio-backend/internal/techstack/domain"
)

type Store interface {
	List(ctx context.Context) ([]domain.Item, error)
	Create(ctx context.Context, it *domain.Item) error
	Update(ctx context.Context, id string, it domain.Item) (*domain.Item, error)
	Delete(ctx context.Context, id string) error
}

type TechStackService struct {
	store Store
}

func NewTechStackService(store Store) *TechStackService {
	return &TechStackService{store: store}
}

func (s *TechStackService) List(ctx context.Context) ([]domain.Item, error) {
	return s.store.List(ctx)
}

func (s *TechStackService) Create(ctx context.Context, it domain.Item) (*domain.Item, error) {
	if err := s.store.Create(ctx, &it); err != nil {
		return nil, err
	}
	return &it, nil
}

func (s *TechStackService) Update(ctx context.Context, id string, it domain.Item) (*domain.Item, error) {
	return s.store.Update(ctx, id, it)
}

func (s *TechStackService) Delete(ctx context.Context, id string) error {
	return s.store.Delete(ctx, id)
}
