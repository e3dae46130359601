package port

import (
	"context"

	"github.com/nachtlabs/git-nacht/internal/domain"
)

// CommitInspector abstracts read access to the local repository's state.
// Implementations shell out to the git CLI.
type CommitInspector interface {
	// IsRepository reports whether the working directory is inside a git repo.
	IsRepository(ctx context.Context) bool

	// LatestCommit returns the most recent commit of the working repository.
	// Returns ErrNotARepository or ErrNoCommitYet when there is nothing to read.
	LatestCommit(ctx context.Context) (*domain.CommitInfo, error)

	// RemoteURL returns the origin remote URL. An empty string with a nil
	// error means the repository has no remote, which is legal.
	RemoteURL(ctx context.Context) (string, error)
}
