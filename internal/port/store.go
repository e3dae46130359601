package port

import (
	"context"

	"github.com/nachtlabs/git-nacht/internal/domain"
)

// ProjectStore resolves and creates project records keyed by repository URL.
type ProjectStore interface {
	// FindProjectByURL returns the project whose repository_url matches url.
	// When userID > 0, a project owned by that user is preferred; otherwise
	// any project with the URL wins. Returns ErrProjectNotFound when no row
	// matches.
	FindProjectByURL(ctx context.Context, url string, userID int64) (*domain.Project, error)

	// CreateProject inserts a new project and returns it with the assigned id.
	// A uniqueness violation on repository_url means another process created
	// the project concurrently; implementations re-read and return that row.
	CreateProject(ctx context.Context, p *domain.Project) (*domain.Project, error)
}

// ScreenshotStore persists and lists screenshot records.
type ScreenshotStore interface {
	// InsertScreenshot performs a single-row insert and returns the
	// store-assigned id. Failures surface as ErrPersistFailure, never a
	// default id.
	InsertScreenshot(ctx context.Context, s *domain.Screenshot) (int64, error)

	// ListScreenshots returns recorded screenshots, newest first.
	ListScreenshots(ctx context.Context, limit int) ([]domain.Screenshot, error)

	// EnsureSchema creates the screenshots table if absent. The projects and
	// users tables are owned by the external backend.
	EnsureSchema(ctx context.Context) error
}
