package repository

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/folio-labs/portfolio-backend/internal/techstack/domain"
)

var itemColumns = []string{"id", "name", "category", "proficiency", "sort_order", "created_at"}

func setupTechStackRepo(t *testing.T) (*TechStackRepository, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return NewTechStackRepository(sqlx.NewDb(db, "postgres")), mock
}

func TestTechStackRepository_List(t *testing.T) {
	repo, mock := setupTechStackRepo(t)
	now := time.Now()

	mock.ExpectQuery(`ORDER BY sort_order ASC, created_at ASC`).
		WillReturnRows(sqlmock.NewRows(itemColumns).
			AddRow("a", "Go", "Backend", 90, 0, now).
			AddRow("b", "React", "Frontend", 85, 1, now))

	items, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "Go", items[0].Name)
	assert.Equal(t, 1, items[1].Order)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestTechStackRepository_List_Empty(t *testing.T) {
	repo, mock := setupTechStackRepo(t)

	mock.ExpectQuery(`FROM tech_stack`).WillReturnRows(sqlmock.NewRows(itemColumns))

	items, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, items)
	assert.Empty(t, items)
}

func TestTechStackRepository_Create(t *testing.T) {
	repo, mock := setupTechStackRepo(t)
	id := "6f1c2a8e-4b3d-4e5f-8a9b-0c1d2e3f4a5b"

	mock.ExpectQuery(`INSERT INTO tech_stack`).
		WithArgs(sqlmock.AnyArg(), "Go", "Backend", 80, 0).
		WillReturnRows(sqlmock.NewRows(itemColumns).AddRow(id, "Go", "Backend", 80, 0, time.Now()))

	it := &domain.Item{Name: "Go", Category: "Backend", Proficiency: 80}
	require.NoError(t, repo.Create(context.Background(), it))
	assert.Equal(t, id, it.ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestTechStackRepository_Update_NotFound(t *testing.T) {
	repo, mock := setupTechStackRepo(t)
	id := "6f1c2a8e-4b3d-4e5f-8a9b-0c1d2e3f4a5b"

	mock.ExpectQuery(`UPDATE tech_stack`).WillReturnError(sql.ErrNoRows)

	_, err := repo.Update(context.Background(), id, domain.Item{Name: "Go", Category: "Backend"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}
