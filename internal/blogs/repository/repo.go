package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/folio-labs/portfolio-backend/internal/blogs/domain"
)

const columns = `id, title, slug, excerpt, content, category, tags, featured_image, published, views, created_at, updated_at`

type scanner interface {
	Scan(dest ...any) error
}

func scanBlog(s scanner) (domain.Blog, error) {
	var b domain.Blog
	err := s.Scan(&b.ID, &b.Title, &b.Slug, &b.Excerpt, &b.Content, &b.Category, pq.Array(&b.Tags),
		&b.FeaturedImage, &b.Published, &b.Views, &b.CreatedAt, &b.UpdatedAt)
	if b.Tags == nil {
		b.Tags = []string{}
	}
	return b, err
}

func isUniqueViolation(err error) bool {
	var pgErr *pq.Error
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

type BlogRepository struct {
	db *sqlx.DB
}

func NewBlogRepository(db *sqlx.DB) *BlogRepository {
	return &BlogRepository{db: db}
}

func (r *BlogRepository) list(ctx context.Context, q string) ([]domain.Blog, error) {
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("list blogs: %w", err)
	}
	defer rows.Close()

	out := make([]domain.Blog, 0, 16)
	for rows.Next() {
		b, err := scanBlog(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

// ListPublished returns the publicly visible posts, newest first.
func (r *BlogRepository) ListPublished(ctx context.Context) ([]domain.Blog, error) {
	return r.list(ctx, `SELECT `+columns+` FROM blogs WHERE published ORDER BY created_at DESC`)
}

// ListAll includes drafts.
func (r *BlogRepository) ListAll(ctx context.Context) ([]domain.Blog, error) {
	return r.list(ctx, `SELECT `+columns+` FROM blogs ORDER BY created_at DESC`)
}

// ViewBySlug counts one view of a published post and returns it with the
// new count. Drafts and unknown slugs are ErrNotFound and are not counted.
func (r *BlogRepository) ViewBySlug(ctx context.Context, slug string) (*domain.Blog, error) {
	const q = `
UPDATE blogs SET views = views + 1
WHERE slug = $1 AND published
RETURNING ` + columns + `;
`
	b, err := scanBlog(r.db.QueryRowContext(ctx, q, slug))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("view blog: %w", err)
	}
	return &b, nil
}

func (r *BlogRepository) Create(ctx context.Context, b *domain.Blog) error {
	const q = `
INSERT INTO blogs (id, title, slug, excerpt, content, category, tags, featured_image, published)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
RETURNING ` + columns + `;
`
	row := r.db.QueryRowContext(ctx, q, uuid.New().String(), b.Title, b.Slug, b.Excerpt, b.Content,
		b.Category, pq.Array(nonNil(b.Tags)), b.FeaturedImage, b.Published)
	created, err := scanBlog(row)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrSlugTaken
		}
		return fmt.Errorf("insert blog: %w", err)
	}
	*b = created
	return nil
}

// Update replaces the editable fields and bumps updated_at. Views and
// created_at are kept.
func (r *BlogRepository) Update(ctx context.Context, id string, b domain.Blog) (*domain.Blog, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, domain.ErrNotFound
	}

	const q = `
UPDATE blogs
SET title = $2, slug = $3, excerpt = $4, content = $5, category = $6, tags = $7,
    featured_image = $8, published = $9, updated_at = now()
WHERE id = $1
RETURNING ` + columns + `;
`
	row := r.db.QueryRowContext(ctx, q, id, b.Title, b.Slug, b.Excerpt, b.Content,
		b.Category, pq.Array(nonNil(b.Tags)), b.FeaturedImage, b.Published)
	updated, err := scanBlog(row)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return nil, domain.ErrNotFound
		case isUniqueViolation(err):
			return nil, domain.ErrSlugTaken
		}
		return nil, fmt.Errorf("update blog: %w", err)
	}
	return &updated, nil
}

func (r *BlogRepository) Delete(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return nil
	}
	if _, err := r.db.ExecContext(ctx, `DELETE FROM blogs WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete blog: %w", err)
	}
	return nil
}

func (r *BlogRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.GetContext(ctx, &n, `SELECT count(*) FROM blogs`); err != nil {
		return 0, fmt.Errorf("count blogs: %w", err)
	}
	return n, nil
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
