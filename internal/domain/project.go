package domain

import (
	"strings"
	"time"
)

// Project groups screenshots by source repository. It is identified by the
// repository's remote URL and created lazily the first time a URL is seen.
type Project struct {
	ID            int64     `json:"id"             db:"id"`
	Name          string    `json:"name"           db:"name"`
	Description   string    `json:"description"    db:"description"`
	RepositoryURL string    `json:"repository_url" db:"repository_url"`
	UserID        int64     `json:"user_id"        db:"user_id"`
	CreatedAt     time.Time `json:"created_at"     db:"created_at"`
}

// UnknownRepositoryName is the fallback project name used when a remote URL
// cannot be parsed into a repository name.
const UnknownRepositoryName = "Unknown Repository"

// RepoNameFromURL derives a project name from a remote URL: the path segment
// after the last slash, with a trailing ".git" suffix stripped.
// Works for both https and scp-like (git@host:org/repo.git) remotes.
func RepoNameFromURL(remoteURL string) string {
	url := strings.TrimRight(strings.TrimSpace(remoteURL), "/")
	if url == "" {
		return UnknownRepositoryName
	}
	name := url
	if idx := strings.LastIndex(url, "/"); idx >= 0 {
		name = url[idx+1:]
	} else if idx := strings.LastIndex(url, ":"); idx >= 0 {
		name = url[idx+1:]
	}
	name = strings.TrimSuffix(name, ".git")
	if name == "" {
		return UnknownRepositoryName
	}
	return name
}
