package service

import (
	"context"

	"github.com/folio-labs/portfolio-backend/internal/casestudies/domain"
)

type Store interface {
	List(ctx context.Context) ([]domain.CaseStudy, error)
	Create(ctx context.Context, cs *domain.CaseStudy) error
	Update(ctx context.Context, id string, cs domain.CaseStudy) (*domain.CaseStudy, error)
	Delete(ctx context.Context, id string) error
}

type CaseStudyService struct {
	store Store
}

func NewCaseStudyService(store Store) *CaseStudyService {
	return &CaseStudyService{store: store}
}

func (s *CaseStudyService) List(ctx context.Context) ([]domain.CaseStudy, error) {
	return s.store.List(ctx)
}

func (s *CaseStudyService) Create(ctx context.Context, cs domain.CaseStudy) (*domain.CaseStudy, error) {
	if err := s.store.Create(ctx, &cs); err != nil {
		return nil, err
	}
	return &cs, nil
}

func (s *CaseStudyService) Update(ctx context.Context, id string, cs domain.CaseStudy) (*domain.CaseStudy, error) {
	return s.store.Update(ctx, id, cs)
}

func (s *CaseStudyService) Delete(ctx context.Context, id string) error {
	return s.store.Delete(ctx, id)
}
