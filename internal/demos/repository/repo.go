package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/folio-labs/portfolio-backend/internal/demos/domain"
)

type DemoResultRepository struct {
	db *sqlx.DB
}

func NewDemoResultRepository(db *sqlx.DB) *DemoResultRepository {
	return &DemoResultRepository{db: db}
}

func (r *DemoResultRepository) Create(ctx context.Context, d *domain.DemoResult) error {
	if !domain.ValidType(d.DemoType) {
		return fmt.Errorf("%w: %q", domain.ErrUnknownType, d.DemoType)
	}
	d.ID = uuid.New().String()
	in, out := jsonOrEmpty(d.InputData), jsonOrEmpty(d.ResultData)

	// jsonb params go over the wire as text; lib/pq would send []byte as bytea.
	const q = `
INSERT INTO demo_results (id, demo_type, input_data, result_data)
VALUES ($1, $2, $3::jsonb, $4::jsonb)
RETURNING created_at;
`
	if err := r.db.QueryRowContext(ctx, q, d.ID, d.DemoType, string(in), string(out)).Scan(&d.CreatedAt); err != nil {
		return fmt.Errorf("insert demo result: %w", err)
	}
	return nil
}

// List returns the newest results first, at most limit of them.
func (r *DemoResultRepository) List(ctx context.Context, limit int) ([]domain.DemoResult, error) {
	const q = `
SELECT id, demo_type, input_data, result_data, created_at
FROM demo_results
ORDER BY created_at DESC
LIMIT $1;
`
	rows, err := r.db.QueryContext(ctx, q, limit)
	if err != nil {
		return nil, fmt.Errorf("list demo results: %w", err)
	}
	defer rows.Close()

	out := make([]domain.DemoResult, 0, limit)
	for rows.Next() {
		var (
			d       domain.DemoResult
			in, res []byte
		)
		if err := rows.Scan(&d.ID, &d.DemoType, &in, &res, &d.CreatedAt); err != nil {
			return nil, err
		}
		d.InputData, d.ResultData = in, res
		out = append(out, d)
	}
	return out, rows.Err()
}

func (r *DemoResultRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.GetContext(ctx, &n, `SELECT count(*) FROM demo_results`); err != nil {
		return 0, fmt.Errorf("count demo results: %w", err)
	}
	return n, nil
}

func jsonOrEmpty(m json.RawMessage) json.RawMessage {
	if len(m) == 0 {
		return json.RawMessage(`{}`)
	}
	return m
}
