package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/folio-labs/portfolio-backend/internal/projects/domain"
)

const columns = `id, title, description, metrics, tech, demo_url, github_url, featured, category, clicks, created_at`

type scanner interface {
	Scan(dest ...any) error
}

func scanProject(s scanner) (domain.Project, error) {
	var p domain.Project
	err := s.Scan(&p.ID, &p.Title, &p.Description, &p.Metrics, pq.Array(&p.Tech),
		&p.DemoURL, &p.GitHubURL, &p.Featured, &p.Category, &p.Clicks, &p.CreatedAt)
	if p.Tech == nil {
		p.Tech = []string{}
	}
	return p, err
}

// ProjectRepository provides persistence operations for projects
type ProjectRepository struct {
	db *sqlx.DB
}

func NewProjectRepository(db *sqlx.DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

// List returns every project, newest first.
func (r *ProjectRepository) List(ctx context.Context) ([]domain.Project, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+columns+` FROM projects ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	defer rows.Close()

	out := make([]domain.Project, 0, 16)
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Create inserts p and fills in its ID, Clicks and CreatedAt.
func (r *ProjectRepository) Create(ctx context.Context, p *domain.Project) error {
	p.ID = uuid.New().String()

	const q = `
INSERT INTO projects (id, title, description, metrics, tech, demo_url, github_url, featured, category)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
RETURNING ` + columns + `;
`
	row := r.db.QueryRowContext(ctx, q, p.ID, p.Title, p.Description, p.Metrics, pq.Array(nonNil(p.Tech)),
		p.DemoURL, p.GitHubURL, p.Featured, p.Category)
	created, err := scanProject(row)
	if err != nil {
		return fmt.Errorf("insert project: %w", err)
	}
	*p = created
	return nil
}

// Update replaces the editable fields of project id. Clicks and CreatedAt
// are left alone.
func (r *ProjectRepository) Update(ctx context.Context, id string, p domain.Project) (*domain.Project, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, domain.ErrNotFound
	}

	const q = `
UPDATE projects
SET title = $2, description = $3, metrics = $4, tech = $5, demo_url = $6,
    github_url = $7, featured = $8, category = $9
WHERE id = $1
RETURNING ` + columns + `;
`
	row := r.db.QueryRowContext(ctx, q, id, p.Title, p.Description, p.Metrics, pq.Array(nonNil(p.Tech)),
		p.DemoURL, p.GitHubURL, p.Featured, p.Category)
	updated, err := scanProject(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("update project: %w", err)
	}
	return &updated, nil
}

// Delete removes project id. Deleting a missing project is not an error.
func (r *ProjectRepository) Delete(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return nil
	}
	if _, err := r.db.ExecContext(ctx, `DELETE FROM projects WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete project: %w", err)
	}
	return nil
}

// IncrementClicks bumps the click counter in one statement.
func (r *ProjectRepository) IncrementClicks(ctx context.Context, id string) (int64, error) {
	if _, err := uuid.Parse(id); err != nil {
		return 0, domain.ErrNotFound
	}

	var clicks int64
	err := r.db.GetContext(ctx, &clicks, `UPDATE projects SET clicks = clicks + 1 WHERE id = $1 RETURNING clicks`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, domain.ErrNotFound
		}
		return 0, fmt.Errorf("increment clicks: %w", err)
	}
	return clicks, nil
}

func (r *ProjectRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.GetContext(ctx, &n, `SELECT count(*) FROM projects`); err != nil {
		return 0, fmt.Errorf("count projects: %w", err)
	}
	return n, nil
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
