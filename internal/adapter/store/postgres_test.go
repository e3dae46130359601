package store

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nachtlabs/git-nacht/internal/domain"
	"github.com/nachtlabs/git-nacht/internal/port"
)

func newMockStore(t *testing.T) (*PostgresStore, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return NewPostgresStoreWithDB(db), mock
}

func TestInsertScreenshotReturnsAssignedID(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectQuery("INSERT INTO screenshots").
		WithArgs(int64(7), "aaaabbb", "http://localhost:5173", "screenshots/x.png", int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(33))

	id, err := s.InsertScreenshot(context.Background(), &domain.Screenshot{
		ProjectID:  7,
		CommitHash: "aaaabbb",
		URL:        "http://localhost:5173",
		ImagePath:  "screenshots/x.png",
		UserID:     1,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(33), id)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInsertScreenshotSurfacesPersistFailure(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectQuery("INSERT INTO screenshots").
		WillReturnError(&pq.Error{Code: "23503"}) // foreign key violation

	_, err := s.InsertScreenshot(context.Background(), &domain.Screenshot{ProjectID: 999})
	assert.ErrorIs(t, err, port.ErrPersistFailure)
}

func TestFindProjectByURLNotFound(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectQuery("FROM projects").
		WithArgs("git@host:org/unknown.git", int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "description", "repository_url", "user_id", "created_at"}))

	_, err := s.FindProjectByURL(context.Background(), "git@host:org/unknown.git", 1)
	assert.ErrorIs(t, err, port.ErrProjectNotFound)
}

func TestFindProjectByURLReturnsRow(t *testing.T) {
	s, mock := newMockStore(t)

	created := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	mock.ExpectQuery("FROM projects").
		WithArgs("git@host:org/myrepo.git", int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "description", "repository_url", "user_id", "created_at"}).
			AddRow(7, "myrepo", "Auto-created for repository git@host:org/myrepo.git", "git@host:org/myrepo.git", 1, created))

	p, err := s.FindProjectByURL(context.Background(), "git@host:org/myrepo.git", 1)
	require.NoError(t, err)
	assert.Equal(t, int64(7), p.ID)
	assert.Equal(t, "myrepo", p.Name)
}

func TestCreateProjectReReadsOnUniqueViolation(t *testing.T) {
	s, mock := newMockStore(t)

	created := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	mock.ExpectQuery("INSERT INTO projects").
		WillReturnError(&pq.Error{Code: "23505"})
	mock.ExpectQuery("FROM projects").
		WithArgs("git@host:org/myrepo.git", int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "description", "repository_url", "user_id", "created_at"}).
			AddRow(7, "myrepo", "", "git@host:org/myrepo.git", 1, created))

	p, err := s.CreateProject(context.Background(), &domain.Project{
		Name:          "myrepo",
		RepositoryURL: "git@host:org/myrepo.git",
		UserID:        1,
	})
	require.NoError(t, err, "a concurrent create is resolved by re-reading")
	assert.Equal(t, int64(7), p.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListScreenshotsNewestFirst(t *testing.T) {
	s, mock := newMockStore(t)

	newer := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	older := newer.Add(-time.Hour)
	mock.ExpectQuery("FROM screenshots ORDER BY created_at DESC").
		WithArgs(10).
		WillReturnRows(sqlmock.NewRows([]string{"id", "project_id", "commit_hash", "url", "image_path", "user_id", "created_at"}).
			AddRow(2, 7, "bbbb222", "http://localhost:5173", "screenshots/b.png", 1, newer).
			AddRow(1, 7, "aaaa111", "http://localhost:5173", "screenshots/a.png", 1, older))

	screenshots, err := s.ListScreenshots(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, screenshots, 2)
	assert.Equal(t, int64(2), screenshots[0].ID)
	assert.True(t, screenshots[0].CreatedAt.After(screenshots[1].CreatedAt))
}

func TestEnsureSchemaCreatesScreenshotsTableOnly(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectExec("CREATE TABLE IF NOT EXISTS screenshots").
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, s.EnsureSchema(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetUserByEmail(t *testing.T) {
	s, mock := newMockStore(t)

	created := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	mock.ExpectQuery("FROM users").
		WithArgs("dev@example.com").
		WillReturnRows(sqlmock.NewRows([]string{"id", "email", "name", "password_hash", "password_algo", "role", "created_at"}).
			AddRow(3, "dev@example.com", "Dev", "$2a$10$hash", "bcrypt", "user", created))

	u, err := s.GetUserByEmail(context.Background(), "dev@example.com")
	require.NoError(t, err)
	assert.Equal(t, int64(3), u.ID)
	assert.Equal(t, "bcrypt", u.PasswordAlgo)
}

func TestGetUserByEmailNotFound(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectQuery("FROM users").
		WithArgs("nobody@example.com").
		WillReturnRows(sqlmock.NewRows([]string{"id", "email", "name", "password_hash", "password_algo", "role", "created_at"}))

	_, err := s.GetUserByEmail(context.Background(), "nobody@example.com")
	assert.ErrorIs(t, err, port.ErrUserNotFound)
}
