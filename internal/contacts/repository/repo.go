package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/folio-labs/portfolio-backend/internal/contacts/domain"
)

const columns = `id, name, email, project_type, budget, message, replied, created_at`

type ContactRepository struct {
	db *sqlx.DB
}

func NewContactRepository(db *sqlx.DB) *ContactRepository {
	return &ContactRepository{db: db}
}

func (r *ContactRepository) Create(ctx context.Context, c *domain.Contact) error {
	const q = `
INSERT INTO contacts (id, name, email, project_type, budget, message)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING ` + columns + `;
`
	var created domain.Contact
	err := r.db.GetContext(ctx, &created, q, uuid.New().String(), c.Name, c.Email, c.ProjectType, c.Budget, c.Message)
	if err != nil {
		return fmt.Errorf("insert contact: %w", err)
	}
	*c = created
	return nil
}

func (r *ContactRepository) List(ctx context.Context) ([]domain.Contact, error) {
	out := []domain.Contact{}
	if err := r.db.SelectContext(ctx, &out, `SELECT `+columns+` FROM contacts ORDER BY created_at DESC`); err != nil {
		return nil, fmt.Errorf("list contacts: %w", err)
	}
	return out, nil
}

func (r *ContactRepository) SetReplied(ctx context.Context, id string, replied bool) (*domain.Contact, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, domain.ErrNotFound
	}

	var c domain.Contact
	err := r.db.GetContext(ctx, &c, `UPDATE contacts SET replied = $2 WHERE id = $1 RETURNING `+columns, id, replied)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("update contact: %w", err)
	}
	return &c, nil
}

func (r *ContactRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.GetContext(ctx, &n, `SELECT count(*) FROM contacts`); err != nil {
		return 0, fmt.Errorf("count contacts: %w", err)
	}
	return n, nil
}
