package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/folio-labs/portfolio-backend/internal/techstack/domain"
)

const columns = `id, name, category, proficiency, sort_order, created_at`

type TechStackRepository struct {
	db *sqlx.DB
}

func NewTechStackRepository(db *sqlx.DB) *TechStackRepository {
	return &TechStackRepository{db: db}
}

// List orders by the manual sort key, oldest first among equal keys.
func (r *TechStackRepository) List(ctx context.Context) ([]domain.Item, error) {
	out := []domain.Item{}
	if err := r.db.SelectContext(ctx, &out, `SELECT `+columns+` FROM tech_stack ORDER BY sort_order ASC, created_at ASC`); err != nil {
		return nil, fmt.Errorf("list tech stack: %w", err)
	}
	return out, nil
}

func (r *TechStackRepository) Create(ctx context.Context, it *domain.Item) error {
	const q = `
INSERT INTO tech_stack (id, name, category, proficiency, sort_order)
VALUES ($1, $2, $3, $4, $5)
RETURNING ` + columns + `;
`
	var created domain.Item
	err := r.db.GetContext(ctx, &created, q, uuid.New().String(), it.Name, it.Category, it.Proficiency, it.Order)
	if err != nil {
		return fmt.Errorf("insert tech stack item: %w", err)
	}
	*it = created
	return nil
}

func (r *TechStackRepository) Update(ctx context.Context, id string, it domain.Item) (*domain.Item, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, domain.ErrNotFound
	}

	const q = `
UPDATE tech_stack
SET name = $2, category = $3, proficiency = $4, sort_order = $5
WHERE id = $1
RETURNING ` + columns + `;
`
	var updated domain.Item
	if err := r.db.GetContext(ctx, &updated, q, id, it.Name, it.Category, it.Proficiency, it.Order); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("update tech stack item: %w", err)
	}
	return &updated, nil
}

func (r *TechStackRepository) Delete(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return nil
	}
	if _, err := r.db.ExecContext(ctx, `DELETE FROM tech_stack WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete tech stack item: %w", err)
	}
	return nil
}
