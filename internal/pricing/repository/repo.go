package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/folio-labs/portfolio-backend/internal/pricing/domain"
)

// QuoteRepository persists pricing quotes in the pricing_quotes table.
type QuoteRepository struct {
	db *sqlx.DB
}

func NewQuoteRepository(db *sqlx.DB) *QuoteRepository {
	return &QuoteRepository{db: db}
}

// Create inserts q, assigning its ID and CreatedAt.
func (r *QuoteRepository) Create(ctx context.Context, q *domain.PricingQuote) error {
	if q.ID == "" {
		q.ID = uuid.New().String()
	}
	if q.Features == nil {
		q.Features = []string{}
	}

	const query = `
insert into pricing_quotes (id, project_type, features, total_price, timeline_days)
values ($1, $2, $3, $4, $5)
returning contacted, created_at;
`
	err := r.db.QueryRowContext(ctx, query,
		q.ID, q.ProjectType, pq.Array(q.Features), q.TotalPrice, q.TimelineDays,
	).Scan(&q.Contacted, &q.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert pricing quote: %w", err)
	}
	return nil
}

// List returns the newest quotes first, at most limit of them.
func (r *QuoteRepository) List(ctx context.Context, limit int) ([]domain.PricingQuote, error) {
	const query = `
select id, project_type, features, total_price, timeline_days, contacted, created_at
from pricing_quotes
order by created_at desc
limit $1;
`
	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("list pricing quotes: %w", err)
	}
	defer rows.Close()

	out := make([]domain.PricingQuote, 0, limit)
	for rows.Next() {
		var q domain.PricingQuote
		if err := rows.Scan(&q.ID, &q.ProjectType, pq.Array(&q.Features), &q.TotalPrice, &q.TimelineDays, &q.Contacted, &q.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, q)
	}
	return out, rows.Err()
}

// SetContacted flips the contacted flag, the one mutable field of a quote.
func (r *QuoteRepository) SetContacted(ctx context.Context, id string, contacted bool) (*domain.PricingQuote, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, domain.ErrNotFound
	}

	const query = `
update pricing_quotes
set contacted = $2
where id = $1
returning id, project_type, features, total_price, timeline_days, contacted, created_at;
`
	var q domain.PricingQuote
	err := r.db.QueryRowContext(ctx, query, id, contacted).
		Scan(&q.ID, &q.ProjectType, pq.Array(&q.Features), &q.TotalPrice, &q.TimelineDays, &q.Contacted, &q.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("update pricing quote: %w", err)
	}
	return &q, nil
}

func (r *QuoteRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.GetContext(ctx, &n, `select count(*) from pricing_quotes`); err != nil {
		return 0, fmt.Errorf("count pricing quotes: %w", err)
	}
	return n, nil
}
