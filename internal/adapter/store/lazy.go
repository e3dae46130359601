package store

import (
	"context"
	"sync"

	"github.com/nachtlabs/git-nacht/internal/domain"
	"github.com/nachtlabs/git-nacht/internal/port"
)

var (
	_ port.ProjectStore    = (*LazyStore)(nil)
	_ port.ScreenshotStore = (*LazyStore)(nil)
)

// LazyStore defers opening the database connection until the first
// operation. The capture workflow orders rendering before persistence, and a
// store that connects eagerly would fail a run before any capture happened;
// with the lazy wrapper a down database surfaces at the persistence step,
// where it is reported as a split outcome.
type LazyStore struct {
	dsn string

	mu   sync.Mutex
	s    *PostgresStore
	err  error
	done bool
}

// NewLazyStore creates a store that connects on first use.
func NewLazyStore(dsn string) *LazyStore {
	return &LazyStore{dsn: dsn}
}

func (l *LazyStore) get() (*PostgresStore, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if !l.done {
		l.s, l.err = NewPostgresStore(l.dsn)
		l.done = true
	}
	return l.s, l.err
}

// Close releases the connection if one was opened.
func (l *LazyStore) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.s == nil {
		return nil
	}
	return l.s.Close()
}

// FindProjectByURL implements port.ProjectStore.
func (l *LazyStore) FindProjectByURL(ctx context.Context, url string, userID int64) (*domain.Project, error) {
	s, err := l.get()
	if err != nil {
		return nil, err
	}
	return s.FindProjectByURL(ctx, url, userID)
}

// CreateProject implements port.ProjectStore.
func (l *LazyStore) CreateProject(ctx context.Context, p *domain.Project) (*domain.Project, error) {
	s, err := l.get()
	if err != nil {
		return nil, err
	}
	return s.CreateProject(ctx, p)
}

// InsertScreenshot implements port.ScreenshotStore.
func (l *LazyStore) InsertScreenshot(ctx context.Context, sc *domain.Screenshot) (int64, error) {
	s, err := l.get()
	if err != nil {
		return 0, err
	}
	return s.InsertScreenshot(ctx, sc)
}

// ListScreenshots implements port.ScreenshotStore.
func (l *LazyStore) ListScreenshots(ctx context.Context, limit int) ([]domain.Screenshot, error) {
	s, err := l.get()
	if err != nil {
		return nil, err
	}
	return s.ListScreenshots(ctx, limit)
}

// EnsureSchema implements port.ScreenshotStore.
func (l *LazyStore) EnsureSchema(ctx context.Context) error {
	s, err := l.get()
	if err != nil {
		return err
	}
	return s.EnsureSchema(ctx)
}
