package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/folio-labs/portfolio-backend/internal/logging"
	"github.com/folio-labs/portfolio-backend/internal/pricing/domain"
	"github.com/folio-labs/portfolio-backend/internal/pricing/quote"
)

// QuoteStore is the persistence the pricing service needs.
type QuoteStore interface {
	Create(ctx context.Context, q *domain.PricingQuote) error
	List(ctx context.Context, limit int) ([]domain.PricingQuote, error)
	SetContacted(ctx context.Context, id string, contacted bool) (*domain.PricingQuote, error)
	Count(ctx context.Context) (int64, error)
}

// Catalog is the public price list.
type Catalog struct {
	Default      quote.Rate            `json:"default"`
	ProjectTypes map[string]quote.Rate `json:"project_types"`
	Features     []quote.Feature       `json:"features"`
}

type PricingService struct {
	store QuoteStore
}

func NewPricingService(store QuoteStore) *PricingService {
	return &PricingService{store: store}
}

// Calculate prices req and records the quote. A failed save is logged and
// the computed quote is still returned. Features must already be deduplicated.
func (s *PricingService) Calculate(ctx context.Context, req domain.QuoteRequest) domain.Quote {
	price, days := quote.Compute(req.ProjectType, req.Features)

	rec := &domain.PricingQuote{
		ProjectType:  req.ProjectType,
		Features:     req.Features,
		TotalPrice:   price,
		TimelineDays: days,
	}
	if err := s.store.Create(ctx, rec); err != nil {
		logging.FromContext(ctx).Warn("pricing quote not saved",
			zap.String("project_type", req.ProjectType),
			zap.Error(err),
		)
	}

	return domain.Quote{TotalPrice: price, TimelineDays: days}
}

func (s *PricingService) Catalog() Catalog {
	return Catalog{
		Default:      quote.DefaultBase,
		ProjectTypes: quote.ProjectTypes(),
		Features:     quote.Features(),
	}
}

func (s *PricingService) Recent(ctx context.Context, limit int) ([]domain.PricingQuote, error) {
	return s.store.List(ctx, limit)
}

func (s *PricingService) MarkContacted(ctx context.Context, id string, contacted bool) (*domain.PricingQuote, error) {
	return s.store.SetContacted(ctx, id, contacted)
}

func (s *PricingService) Count(ctx context.Context) (int64, error) {
	return s.store.Count(ctx)
}
