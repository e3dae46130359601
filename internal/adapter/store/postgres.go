package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"

	"github.com/nachtlabs/git-nacht/internal/domain"
	"github.com/nachtlabs/git-nacht/internal/port"
)

// PostgresStore handles all relational database operations against the
// store shared with the web backend.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgresStore opens a connection and verifies it with a ping.
func NewPostgresStore(dsn string) (*PostgresStore, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	db.SetMaxOpenConns(5)
	db.SetMaxIdleConns(2)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.PingContext(context.Background()); err != nil {
		db.Close()
		return nil, fmt.Errorf("%w: %v", port.ErrStoreUnavailable, err)
	}

	return &PostgresStore{db: db}, nil
}

// NewPostgresStoreWithDB wraps an existing connection (used by tests).
func NewPostgresStoreWithDB(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

// Close closes the database connection.
func (s *PostgresStore) Close() error {
	return s.db.Close()
}

// Ping checks store connectivity.
func (s *PostgresStore) Ping(ctx context.Context) error {
	if err := s.db.PingContext(ctx); err != nil {
		return fmt.Errorf("%w: %v", port.ErrStoreUnavailable, err)
	}
	return nil
}

// EnsureSchema creates the screenshots table if absent. The projects and
// users tables are owned by the external backend and are not touched here.
func (s *PostgresStore) EnsureSchema(ctx context.Context) error {
	query := `
		CREATE TABLE IF NOT EXISTS screenshots (
			id SERIAL PRIMARY KEY,
			project_id INTEGER NOT NULL REFERENCES projects(id) ON DELETE CASCADE,
			commit_hash VARCHAR(40),
			url TEXT,
			image_path VARCHAR(500) NOT NULL,
			user_id INTEGER DEFAULT 1,
			created_at TIMESTAMPTZ DEFAULT NOW()
		)`

	if _, err := s.db.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("create screenshots table: %w", err)
	}
	return nil
}

// BootstrapBackendTables creates the backend-owned projects and users tables
// when the backend has not been set up yet, including the uniqueness
// constraint on repository_url that concurrent project resolution relies on.
// Only the setup command calls this.
func (s *PostgresStore) BootstrapBackendTables(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id SERIAL PRIMARY KEY,
			email VARCHAR(255) UNIQUE NOT NULL,
			name VARCHAR(255),
			password_hash VARCHAR(255) NOT NULL,
			password_algo VARCHAR(32) NOT NULL DEFAULT 'bcrypt',
			role VARCHAR(32) DEFAULT 'user',
			created_at TIMESTAMPTZ DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS projects (
			id SERIAL PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			description TEXT,
			repository_url VARCHAR(500),
			user_id INTEGER,
			created_at TIMESTAMPTZ DEFAULT NOW()
		)`,
		`CREATE UNIQUE INDEX IF NOT EXISTS projects_repository_url_key
			ON projects (repository_url) WHERE repository_url IS NOT NULL`,
	}

	for _, stmt := range statements {
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("bootstrap backend tables: %w", err)
		}
	}
	return nil
}

// --- Projects ---

// FindProjectByURL returns the project whose repository_url matches url.
// Repository identity is the primary key for correlation; ownership only
// disambiguates among duplicates, so a project owned by userID sorts first.
func (s *PostgresStore) FindProjectByURL(ctx context.Context, url string, userID int64) (*domain.Project, error) {
	query := `SELECT id, name, COALESCE(description, ''), COALESCE(repository_url, ''), COALESCE(user_id, 0), created_at
	          FROM projects
	          WHERE repository_url = $1
	          ORDER BY (user_id = $2) DESC NULLS LAST, id
	          LIMIT 1`

	var p domain.Project
	err := s.db.QueryRowContext(ctx, query, url, userID).Scan(
		&p.ID, &p.Name, &p.Description, &p.RepositoryURL, &p.UserID, &p.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, port.ErrProjectNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find project by url: %w", err)
	}
	return &p, nil
}

// CreateProject inserts a new project and returns it with the assigned id.
// A unique violation on repository_url means another invocation created the
// project between our lookup and insert; re-read and return that row.
func (s *PostgresStore) CreateProject(ctx context.Context, p *domain.Project) (*domain.Project, error) {
	query := `INSERT INTO projects (name, description, repository_url, user_id)
	          VALUES ($1, $2, $3, $4)
	          RETURNING id, name, COALESCE(description, ''), COALESCE(repository_url, ''), COALESCE(user_id, 0), created_at`

	var created domain.Project
	err := s.db.QueryRowContext(ctx, query,
		p.Name, p.Description, p.RepositoryURL, p.UserID,
	).Scan(
		&created.ID, &created.Name, &created.Description,
		&created.RepositoryURL, &created.UserID, &created.CreatedAt,
	)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return s.FindProjectByURL(ctx, p.RepositoryURL, p.UserID)
		}
		return nil, fmt.Errorf("create project: %w", err)
	}
	return &created, nil
}

// ListProjects returns all projects, newest first.
func (s *PostgresStore) ListProjects(ctx context.Context) ([]domain.Project, error) {
	query := `SELECT id, name, COALESCE(description, ''), COALESCE(repository_url, ''), COALESCE(user_id, 0), created_at
	          FROM projects ORDER BY created_at DESC`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	defer rows.Close()

	var projects []domain.Project
	for rows.Next() {
		var p domain.Project
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.RepositoryURL, &p.UserID, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan project: %w", err)
		}
		projects = append(projects, p)
	}
	return projects, rows.Err()
}

// --- Screenshots ---

// InsertScreenshot performs a single-row insert and returns the assigned id.
func (s *PostgresStore) InsertScreenshot(ctx context.Context, sc *domain.Screenshot) (int64, error) {
	query := `INSERT INTO screenshots (project_id, commit_hash, url, image_path, user_id)
	          VALUES ($1, $2, $3, $4, $5)
	          RETURNING id`

	var id int64
	err := s.db.QueryRowContext(ctx, query,
		sc.ProjectID, sc.CommitHash, sc.URL, sc.ImagePath, sc.UserID,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", port.ErrPersistFailure, err)
	}
	return id, nil
}

// ListScreenshots returns recorded screenshots, newest first.
func (s *PostgresStore) ListScreenshots(ctx context.Context, limit int) ([]domain.Screenshot, error) {
	query := `SELECT id, project_id, COALESCE(commit_hash, ''), COALESCE(url, ''), image_path, COALESCE(user_id, 0), created_at
	          FROM screenshots ORDER BY created_at DESC`
	args := []interface{}{}
	if limit > 0 {
		query += ` LIMIT $1`
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list screenshots: %w", err)
	}
	defer rows.Close()

	var screenshots []domain.Screenshot
	for rows.Next() {
		var sc domain.Screenshot
		if err := rows.Scan(&sc.ID, &sc.ProjectID, &sc.CommitHash, &sc.URL, &sc.ImagePath, &sc.UserID, &sc.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan screenshot: %w", err)
		}
		screenshots = append(screenshots, sc)
	}
	return screenshots, rows.Err()
}

// --- Users ---

// GetUserByEmail retrieves a user by email.
func (s *PostgresStore) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `SELECT id, email, COALESCE(name, ''), password_hash, password_algo, COALESCE(role, 'user'), created_at
	          FROM users WHERE email = $1`

	var u domain.User
	err := s.db.QueryRowContext(ctx, query, email).Scan(
		&u.ID, &u.Email, &u.Name, &u.PasswordHash, &u.PasswordAlgo, &u.Role, &u.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, port.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	return &u, nil
}

// CreateUser inserts a new user record with a pre-hashed credential.
func (s *PostgresStore) CreateUser(ctx context.Context, u *domain.User) (*domain.User, error) {
	query := `INSERT INTO users (email, name, password_hash, password_algo, role)
	          VALUES ($1, $2, $3, $4, $5)
	          RETURNING id, email, COALESCE(name, ''), password_hash, password_algo, COALESCE(role, 'user'), created_at`

	var created domain.User
	err := s.db.QueryRowContext(ctx, query,
		u.Email, u.Name, u.PasswordHash, u.PasswordAlgo, u.Role,
	).Scan(
		&created.ID, &created.Email, &created.Name,
		&created.PasswordHash, &created.PasswordAlgo, &created.Role, &created.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	return &created, nil
}
