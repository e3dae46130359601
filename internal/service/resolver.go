package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/nachtlabs/git-nacht/internal/domain"
	"github.com/nachtlabs/git-nacht/internal/port"
)

// ProjectResolver maps a repository remote URL to the owning project record,
// creating one lazily when the URL has never been seen.
type ProjectResolver struct {
	store            port.ProjectStore
	defaultProjectID int64
	defaultUserID    int64
}

// NewProjectResolver creates a resolver. defaultProjectID is returned for
// repositories without a remote; defaultUserID owns auto-created projects
// when no identity is present.
func NewProjectResolver(store port.ProjectStore, defaultProjectID, defaultUserID int64) *ProjectResolver {
	return &ProjectResolver{
		store:            store,
		defaultProjectID: defaultProjectID,
		defaultUserID:    defaultUserID,
	}
}

// Resolve returns the id of the project owning remoteURL. An empty URL
// resolves to the configured default project without touching the store; no
// project is fabricated for an un-hosted repository. Otherwise the lookup
// prefers a project owned by the identity, falls back to any project with
// the URL, and creates one when nothing matches.
func (r *ProjectResolver) Resolve(ctx context.Context, remoteURL string, identity *domain.Identity) (int64, error) {
	if remoteURL == "" {
		return r.defaultProjectID, nil
	}

	userID := r.defaultUserID
	if identity != nil {
		userID = identity.UserID
	}

	project, err := r.store.FindProjectByURL(ctx, remoteURL, userID)
	if err == nil {
		return project.ID, nil
	}
	if !errors.Is(err, port.ErrProjectNotFound) {
		return 0, fmt.Errorf("resolve project: %w", err)
	}

	created, err := r.store.CreateProject(ctx, &domain.Project{
		Name:          domain.RepoNameFromURL(remoteURL),
		Description:   fmt.Sprintf("Auto-created for repository %s", remoteURL),
		RepositoryURL: remoteURL,
		UserID:        userID,
	})
	if err != nil {
		return 0, fmt.Errorf("create project: %w", err)
	}

	slog.Info("project created", "project_id", created.ID, "name", created.Name, "repository_url", remoteURL)
	return created.ID, nil
}
