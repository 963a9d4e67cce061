package repository

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/folio-labs/portfolio-backend/internal/projects/domain"
)

const projectID = "5b0a1f3e-2c7d-4f0e-9a51-8d2b6c4e7f10"

var projectColumns = []string{"id", "title", "description", "metrics", "tech", "demo_url", "github_url", "featured", "category", "clicks", "created_at"}

func setupProjectRepo(t *testing.T) (*ProjectRepository, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return NewProjectRepository(sqlx.NewDb(db, "postgres")), mock
}

func TestProjectRepository_List(t *testing.T) {
	repo, mock := setupProjectRepo(t)
	now := time.Now()

	mock.ExpectQuery(`SELECT id, title, .* FROM projects ORDER BY created_at DESC`).
		WillReturnRows(sqlmock.NewRows(projectColumns).
			AddRow(projectID, "JobMatch", "AI job board", "85% accuracy", "{React,Go}", "", "", true, "AI", 12, now).
			AddRow("9a9b3c1e-0000-4f0e-9a51-8d2b6c4e7f10", "Shop", "Store", "2x sales", "{}", "", "", false, "MERN", 0, now.Add(-time.Hour)))

	items, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, []string{"React", "Go"}, items[0].Tech)
	assert.Equal(t, int64(12), items[0].Clicks)
	assert.Equal(t, []string{}, items[1].Tech)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestProjectRepository_Create(t *testing.T) {
	repo, mock := setupProjectRepo(t)
	now := time.Now()

	mock.ExpectQuery(`INSERT INTO projects`).
		WithArgs(sqlmock.AnyArg(), "JobMatch", "AI job board", "85%", sqlmock.AnyArg(), "", "", false, "MERN").
		WillReturnRows(sqlmock.NewRows(projectColumns).
			AddRow(projectID, "JobMatch", "AI job board", "85%", "{}", "", "", false, "MERN", 0, now))

	p := &domain.Project{Title: "JobMatch", Description: "AI job board", Metrics: "85%", Category: "MERN"}
	require.NoError(t, repo.Create(context.Background(), p))
	assert.Equal(t, projectID, p.ID)
	assert.Equal(t, now, p.CreatedAt)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestProjectRepository_Update(t *testing.T) {
	repo, mock := setupProjectRepo(t)

	t.Run("missing row", func(t *testing.T) {
		mock.ExpectQuery(`UPDATE projects`).WillReturnError(sql.ErrNoRows)

		_, err := repo.Update(context.Background(), projectID, domain.Project{Title: "x"})
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("malformed id", func(t *testing.T) {
		_, err := repo.Update(context.Background(), "123", domain.Project{Title: "x"})
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestProjectRepository_Delete(t *testing.T) {
	repo, mock := setupProjectRepo(t)

	mock.ExpectExec(`DELETE FROM projects WHERE id = \$1`).
		WithArgs(projectID).
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.NoError(t, repo.Delete(context.Background(), projectID))
	assert.NoError(t, repo.Delete(context.Background(), "not-a-uuid"))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestProjectRepository_IncrementClicks(t *testing.T) {
	repo, mock := setupProjectRepo(t)

	t.Run("single statement increment", func(t *testing.T) {
		mock.ExpectQuery(`UPDATE projects SET clicks = clicks \+ 1 WHERE id = \$1 RETURNING clicks`).
			WithArgs(projectID).
			WillReturnRows(sqlmock.NewRows([]string{"clicks"}).AddRow(5))

		n, err := repo.IncrementClicks(context.Background(), projectID)
		require.NoError(t, err)
		assert.Equal(t, int64(5), n)
	})

	t.Run("unknown project", func(t *testing.T) {
		mock.ExpectQuery(`UPDATE projects SET clicks`).
			WithArgs(projectID).
			WillReturnError(sql.ErrNoRows)

		_, err := repo.IncrementClicks(context.Background(), projectID)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("store failure is wrapped", func(t *testing.T) {
		mock.ExpectQuery(`UPDATE projects SET clicks`).
			WithArgs(projectID).
			WillReturnError(errors.New("conn closed"))

		_, err := repo.IncrementClicks(context.Background(), projectID)
		require.Error(t, err)
		assert.NotErrorIs(t, err, domain.ErrNotFound)
	})

	require.NoError(t, mock.ExpectationsWereMet())
}
