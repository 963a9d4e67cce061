package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/folio-labs/portfolio-backend/internal/settings/domain"
)

const columns = `hero_title, hero_subtitle, users_served, whatsapp, telegram, linkedin, github, email, total_visitors, updated_at`

type SettingsRepository struct {
	db *sqlx.DB
}

func NewSettingsRepository(db *sqlx.DB) *SettingsRepository {
	return &SettingsRepository{db: db}
}

func defaultArgs() []any {
	d := domain.Defaults()
	return []any{domain.Key, d.HeroTitle, d.HeroSubtitle, d.UsersServed, d.WhatsApp, d.Telegram, d.LinkedIn, d.GitHub, d.Email}
}

// Get reads the settings row without creating it.
func (r *SettingsRepository) Get(ctx context.Context) (*domain.Settings, error) {
	var s domain.Settings
	err := r.db.GetContext(ctx, &s, `select `+columns+` from settings where id = $1`, domain.Key)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get settings: %w", err)
	}
	return &s, nil
}

// GetOrCreate returns the settings row, inserting the defaults first if it
// does not exist yet.
func (r *SettingsRepository) GetOrCreate(ctx context.Context) (*domain.Settings, error) {
	const q = `
insert into settings (id, hero_title, hero_subtitle, users_served, whatsapp, telegram, linkedin, github, email)
values ($1, $2, $3, $4, $5, $6, $7, $8, $9)
on conflict (id) do nothing;
`
	if _, err := r.db.ExecContext(ctx, q, defaultArgs()...); err != nil {
		return nil, fmt.Errorf("seed settings: %w", err)
	}
	return r.Get(ctx)
}

// IncrementVisitors adds one visit in a single upsert and returns the row.
func (r *SettingsRepository) IncrementVisitors(ctx context.Context) (*domain.Settings, error) {
	const q = `
insert into settings (id, hero_title, hero_subtitle, users_served, whatsapp, telegram, linkedin, github, email, total_visitors)
values ($1, $2, $3, $4, $5, $6, $7, $8, $9, 1)
on conflict (id) do update set total_visitors = settings.total_visitors + 1
returning ` + columns + `;
`
	var s domain.Settings
	if err := r.db.GetContext(ctx, &s, q, defaultArgs()...); err != nil {
		return nil, fmt.Errorf("increment visitors: %w", err)
	}
	return &s, nil
}

// Update applies p to the row, creating it from defaults when missing.
func (r *SettingsRepository) Update(ctx context.Context, p domain.Patch) (*domain.Settings, error) {
	if _, err := r.GetOrCreate(ctx); err != nil {
		return nil, err
	}

	const q = `
update settings set
  hero_title    = coalesce($2, hero_title),
  hero_subtitle = coalesce($3, hero_subtitle),
  users_served  = coalesce($4, users_served),
  whatsapp      = coalesce($5, whatsapp),
  telegram      = coalesce($6, telegram),
  linkedin      = coalesce($7, linkedin),
  github        = coalesce($8, github),
  email         = coalesce($9, email),
  updated_at    = now()
where id = $1
returning ` + columns + `;
`
	var s domain.Settings
	err := r.db.GetContext(ctx, &s, q, domain.Key,
		p.HeroTitle, p.HeroSubtitle, p.UsersServed, p.WhatsApp, p.Telegram, p.LinkedIn, p.GitHub, p.Email)
	if err != nil {
		return nil, fmt.Errorf("update settings: %w", err)
	}
	return &s, nil
}
