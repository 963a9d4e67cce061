package service

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/folio-labs/portfolio-backend/internal/logging"
	"github.com/folio-labs/portfolio-backend/internal/settings/domain"
)

type Store interface {
	Get(ctx context.Context) (*domain.Settings, error)
	GetOrCreate(ctx context.Context) (*domain.Settings, error)
	IncrementVisitors(ctx context.Context) (*domain.Settings, error)
	Update(ctx context.Context, p domain.Patch) (*domain.Settings, error)
}

type SettingsService struct {
	store Store
}

func NewSettingsService(store Store) *SettingsService {
	return &SettingsService{store: store}
}

// Visit counts a public page load and returns the settings. A failed
// increment is logged and the current row (or the defaults) is served.
func (s *SettingsService) Visit(ctx context.Context) (*domain.Settings, error) {
	st, err := s.store.IncrementVisitors(ctx)
	if err == nil {
		return st, nil
	}
	logging.FromContext(ctx).Warn("visitor increment failed", zap.Error(err))

	st, err = s.store.Get(ctx)
	if errors.Is(err, domain.ErrNotFound) {
		d := domain.Defaults()
		return &d, nil
	}
	return st, err
}

func (s *SettingsService) Get(ctx context.Context) (*domain.Settings, error) {
	return s.store.GetOrCreate(ctx)
}

func (s *SettingsService) Update(ctx context.Context, p domain.Patch) (*domain.Settings, error) {
	return s.store.Update(ctx, p)
}

// TotalVisitors feeds the admin dashboard. A missing row counts as zero.
func (s *SettingsService) TotalVisitors(ctx context.Context) (int64, error) {
	st, err := s.store.Get(ctx)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return 0, nil
		}
		return 0, err
	}
	return st.TotalVisitors, nil
}
