package service

import (
	"context"

	"github.com/folio-labs/portfolio-backend/internal/contacts/domain"
	"github.com/folio-labs/portfolio-backend/internal/notify"
)

type Store interface {
	Create(ctx context.Context, c *domain.Contact) error
	List(ctx context.Context) ([]domain.Contact, error)
	SetReplied(ctx context.Context, id string, replied bool) (*domain.Contact, error)
	Count(ctx context.Context) (int64, error)
}

// Runner starts work that must not affect the caller's response.
type Runner interface {
	Go(ctx context.Context, name string, fn func(ctx context.Context) error)
}

type ContactService struct {
	store  Store
	mailer notify.Mailer
	runner Runner
}

func NewContactService(store Store, mailer notify.Mailer, runner Runner) *ContactService {
	return &ContactService{store: store, mailer: mailer, runner: runner}
}

// Submit persists c and then notifies the owner in the background. Only the
// save can fail the call.
func (s *ContactService) Submit(ctx context.Context, c domain.Contact) (*domain.Contact, error) {
	if err := s.store.Create(ctx, &c); err != nil {
		return nil, err
	}

	msg := notification(c)
	s.runner.Go(ctx, "contact-email", func(ctx context.Context) error {
		return s.mailer.Send(ctx, msg)
	})
	return &c, nil
}

func (s *ContactService) List(ctx context.Context) ([]domain.Contact, error) {
	return s.store.List(ctx)
}

func (s *ContactService) MarkReplied(ctx context.Context, id string, replied bool) (*domain.Contact, error) {
	return s.store.SetReplied(ctx, id, replied)
}

func (s *ContactService) Count(ctx context.Context) (int64, error) {
	return s.store.Count(ctx)
}
