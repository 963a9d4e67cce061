package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/folio-labs/portfolio-backend/internal/casestudies/domain"
)

const columns = `id, title, client_name, metrics, description, roi, image_url, featured, created_at`

type scanner interface {
	Scan(dest ...any) error
}

func scanCaseStudy(s scanner) (domain.CaseStudy, error) {
	var cs domain.CaseStudy
	err := s.Scan(&cs.ID, &cs.Title, &cs.ClientName, pq.Array(&cs.Metrics), &cs.Description,
		&cs.ROI, &cs.ImageURL, &cs.Featured, &cs.CreatedAt)
	if cs.Metrics == nil {
		cs.Metrics = []string{}
	}
	return cs, err
}

type CaseStudyRepository struct {
	db *sqlx.DB
}

func NewCaseStudyRepository(db *sqlx.DB) *CaseStudyRepository {
	return &CaseStudyRepository{db: db}
}

func (r *CaseStudyRepository) List(ctx context.Context) ([]domain.CaseStudy, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+columns+` FROM case_studies ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list case studies: %w", err)
	}
	defer rows.Close()

	out := make([]domain.CaseStudy, 0, 8)
	for rows.Next() {
		cs, err := scanCaseStudy(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, cs)
	}
	return out, rows.Err()
}

func (r *CaseStudyRepository) Create(ctx context.Context, cs *domain.CaseStudy) error {
	const q = `
INSERT INTO case_studies (id, title, client_name, metrics, description, roi, image_url, featured)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
RETURNING ` + columns + `;
`
	created, err := scanCaseStudy(r.db.QueryRowContext(ctx, q, uuid.New().String(), cs.Title, cs.ClientName,
		pq.Array(nonNil(cs.Metrics)), cs.Description, cs.ROI, cs.ImageURL, cs.Featured))
	if err != nil {
		return fmt.Errorf("insert case study: %w", err)
	}
	*cs = created
	return nil
}

func (r *CaseStudyRepository) Update(ctx context.Context, id string, cs domain.CaseStudy) (*domain.CaseStudy, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, domain.ErrNotFound
	}

	const q = `
UPDATE case_studies
SET title = $2, client_name = $3, metrics = $4, description = $5, roi = $6, image_url = $7, featured = $8
WHERE id = $1
RETURNING ` + columns + `;
`
	updated, err := scanCaseStudy(r.db.QueryRowContext(ctx, q, id, cs.Title, cs.ClientName,
		pq.Array(nonNil(cs.Metrics)), cs.Description, cs.ROI, cs.ImageURL, cs.Featured))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("update case study: %w", err)
	}
	return &updated, nil
}

func (r *CaseStudyRepository) Delete(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return nil
	}
	if _, err := r.db.ExecContext(ctx, `DELETE FROM case_studies WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete case study: %w", err)
	}
	return nil
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
