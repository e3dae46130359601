package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/nachtlabs/git-nacht/internal/domain"
	"github.com/nachtlabs/git-nacht/internal/port"
)

// Outcome is the terminal state of a workflow run. Each outcome maps to one
// exit status and one user-facing message.
type Outcome int

const (
	OutcomeDone Outcome = iota
	OutcomeIneligible
	OutcomeCaptureFailed
	OutcomePersistFailed
)

// Result is the consolidated outcome of one workflow run.
type Result struct {
	Outcome      Outcome
	Commit       *domain.CommitInfo
	ProjectID    int64
	ScreenshotID int64
	ImagePath    string
	Err          error
}

// Screenshotter produces an image file for a URL and returns its path
// relative to the upload root.
type Screenshotter interface {
	Capture(ctx context.Context, url, commitHash string) (string, error)
}

// Resolver maps a remote URL and optional identity to a project id.
type Resolver interface {
	Resolve(ctx context.Context, remoteURL string, identity *domain.Identity) (int64, error)
}

// Workflow orchestrates the commit-to-screenshot correlation: eligibility
// gate, capture, project resolution, persistence. One run per invocation,
// no retries; capture is ordered before persistence so a database row never
// references a missing file.
type Workflow struct {
	inspector     port.CommitInspector
	screenshotter Screenshotter
	resolver      Resolver
	store         port.ScreenshotStore
	window        time.Duration
	defaultUserID int64
	now           func() time.Time
}

// NewWorkflow wires the correlation workflow.
func NewWorkflow(
	inspector port.CommitInspector,
	screenshotter Screenshotter,
	resolver Resolver,
	store port.ScreenshotStore,
	window time.Duration,
	defaultUserID int64,
) *Workflow {
	if window <= 0 {
		window = domain.DefaultEligibilityWindow
	}
	return &Workflow{
		inspector:     inspector,
		screenshotter: screenshotter,
		resolver:      resolver,
		store:         store,
		window:        window,
		defaultUserID: defaultUserID,
		now:           time.Now,
	}
}

// Run executes the workflow for targetURL. The identity is threaded as an
// argument; nil means the sentinel system user.
func (w *Workflow) Run(ctx context.Context, targetURL string, identity *domain.Identity) *Result {
	// Checking-Eligibility
	commit, err := w.inspector.LatestCommit(ctx)
	if err != nil {
		return &Result{Outcome: OutcomeIneligible, Err: err}
	}
	if !commit.IsRecent(w.now(), w.window) {
		return &Result{
			Outcome: OutcomeIneligible,
			Commit:  commit,
			Err:     fmt.Errorf("%w: commit %s from %s", port.ErrStaleCommit, commit.ShortHash, commit.Timestamp.Format(time.RFC3339)),
		}
	}

	// Capturing
	imagePath, err := w.screenshotter.Capture(ctx, targetURL, commit.ShortHash)
	if err != nil {
		if !errors.Is(err, port.ErrCaptureFailure) {
			err = fmt.Errorf("%w: %v", port.ErrCaptureFailure, err)
		}
		return &Result{Outcome: OutcomeCaptureFailed, Commit: commit, Err: err}
	}

	// Resolving-Project
	projectID, err := w.resolver.Resolve(ctx, commit.RemoteURL, identity)
	if err != nil {
		// The image already exists on disk; report the split outcome and
		// keep the file. A stray file is acceptable, a stray row is not.
		return &Result{Outcome: OutcomePersistFailed, Commit: commit, ImagePath: imagePath, Err: err}
	}

	// Persisting
	userID := w.defaultUserID
	if identity != nil {
		userID = identity.UserID
	}
	id, err := w.store.InsertScreenshot(ctx, &domain.Screenshot{
		ProjectID:  projectID,
		CommitHash: commit.ShortHash,
		URL:        targetURL,
		ImagePath:  imagePath,
		UserID:     userID,
	})
	if err != nil {
		return &Result{Outcome: OutcomePersistFailed, Commit: commit, ProjectID: projectID, ImagePath: imagePath, Err: err}
	}

	slog.Info("screenshot recorded",
		"screenshot_id", id,
		"project_id", projectID,
		"commit", commit.ShortHash,
		"url", targetURL,
		"image_path", imagePath,
	)
	return &Result{
		Outcome:      OutcomeDone,
		Commit:       commit,
		ProjectID:    projectID,
		ScreenshotID: id,
		ImagePath:    imagePath,
	}
}
