package vcs

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/nachtlabs/git-nacht/internal/domain"
	"github.com/nachtlabs/git-nacht/internal/port"
)

// GitInspector implements port.CommitInspector using the git CLI.
type GitInspector struct {
	// WorkDir is the directory git commands run in. Empty means the
	// process working directory.
	WorkDir string
}

// NewGitInspector creates an inspector for the given directory.
func NewGitInspector(workDir string) *GitInspector {
	return &GitInspector{WorkDir: workDir}
}

// IsRepository reports whether workDir is inside a git repository.
func (g *GitInspector) IsRepository(ctx context.Context) bool {
	cmd := exec.CommandContext(ctx, "git", "rev-parse", "--git-dir")
	cmd.Dir = g.WorkDir
	return cmd.Run() == nil
}

// LatestCommit reads the most recent commit of the working repository.
func (g *GitInspector) LatestCommit(ctx context.Context) (*domain.CommitInfo, error) {
	if !g.IsRepository(ctx) {
		return nil, port.ErrNotARepository
	}

	cmd := exec.CommandContext(ctx, "git", "log", "-1", "--format=%H|%h|%aI|%s")
	cmd.Dir = g.WorkDir
	output, err := cmd.Output()
	if err != nil {
		// A repository with zero commits has nothing to log.
		return nil, port.ErrNoCommitYet
	}

	commit, err := parseCommitLine(strings.TrimSpace(string(output)))
	if err != nil {
		return nil, fmt.Errorf("git log: %w", err)
	}

	commit.Branch = g.currentBranch(ctx)
	if remote, err := g.RemoteURL(ctx); err == nil {
		commit.RemoteURL = remote
	}
	return commit, nil
}

// RemoteURL returns the origin remote URL, or empty when the repository has
// no remote configured. Absence is not an error: local-only repos are legal.
func (g *GitInspector) RemoteURL(ctx context.Context) (string, error) {
	cmd := exec.CommandContext(ctx, "git", "config", "--get", "remote.origin.url")
	cmd.Dir = g.WorkDir
	output, err := cmd.Output()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return "", nil // no remote.origin.url set
		}
		return "", fmt.Errorf("git config: %w", err)
	}
	return strings.TrimSpace(string(output)), nil
}

// Exec passes a git command through with inherited stdio and returns the
// child's exit code.
func (g *GitInspector) Exec(ctx context.Context, args ...string) (int, error) {
	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = g.WorkDir
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return exitErr.ExitCode(), nil
		}
		return 1, fmt.Errorf("git %s: %w", strings.Join(args, " "), err)
	}
	return 0, nil
}

func (g *GitInspector) currentBranch(ctx context.Context) string {
	cmd := exec.CommandContext(ctx, "git", "rev-parse", "--abbrev-ref", "HEAD")
	cmd.Dir = g.WorkDir
	output, err := cmd.Output()
	if err != nil {
		return "main"
	}
	return strings.TrimSpace(string(output))
}

// parseCommitLine parses a single "%H|%h|%aI|%s" log line.
func parseCommitLine(line string) (*domain.CommitInfo, error) {
	parts := strings.SplitN(line, "|", 4)
	if len(parts) < 4 {
		return nil, fmt.Errorf("unexpected log line %q", line)
	}

	ts, err := time.Parse(time.RFC3339, parts[2])
	if err != nil {
		return nil, fmt.Errorf("parse commit timestamp %q: %w", parts[2], err)
	}

	return &domain.CommitInfo{
		Hash:      parts[0],
		ShortHash: parts[1],
		Timestamp: ts,
		Message:   parts[3],
	}, nil
}
