package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/folio-labs/portfolio-backend/internal/settings/domain"
)

type fakeStore struct {
	row     *domain.Settings
	incrErr error
}

func (f *fakeStore) Get(context.Context) (*domain.Settings, error) {
	if f.row == nil {
		return nil, domain.ErrNotFound
	}
	cp := *f.row
	return &cp, nil
}

func (f *fakeStore) GetOrCreate(ctx context.Context) (*domain.Settings, error) {
	if f.row == nil {
		d := domain.Defaults()
		f.row = &d
	}
	return f.Get(ctx)
}

func (f *fakeStore) IncrementVisitors(ctx context.Context) (*domain.Settings, error) {
	if f.incrErr != nil {
		return nil, f.incrErr
	}
	if _, err := f.GetOrCreate(ctx); err != nil {
		return nil, err
	}
	f.row.TotalVisitors++
	return f.Get(ctx)
}

func (f *fakeStore) Update(ctx context.Context, p domain.Patch) (*domain.Settings, error) {
	if _, err := f.GetOrCreate(ctx); err != nil {
		return nil, err
	}
	if p.HeroTitle != nil {
		f.row.HeroTitle = *p.HeroTitle
	}
	return f.Get(ctx)
}

func TestVisit(t *testing.T) {
	t.Run("counts each visit", func(t *testing.T) {
		svc := NewSettingsService(&fakeStore{})

		_, err := svc.Visit(context.Background())
		require.NoError(t, err)
		st, err := svc.Visit(context.Background())
		require.NoError(t, err)
		assert.Equal(t, int64(2), st.TotalVisitors)
	})

	t.Run("serves defaults when increment fails on an empty store", func(t *testing.T) {
		svc := NewSettingsService(&fakeStore{incrErr: errors.New("read-only transaction")})

		st, err := svc.Visit(context.Background())
		require.NoError(t, err)
		assert.Equal(t, domain.Defaults().HeroTitle, st.HeroTitle)
		assert.Zero(t, st.TotalVisitors)
	})
}

func TestTotalVisitors(t *testing.T) {
	store := &fakeStore{}
	svc := NewSettingsService(store)

	n, err := svc.TotalVisitors(context.Background())
	require.NoError(t, err)
	assert.Zero(t, n)

	_, _ = svc.Visit(context.Background())
	n, err = svc.TotalVisitors(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}
