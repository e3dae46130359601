package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nachtlabs/git-nacht/internal/adapter/browser"
	"github.com/nachtlabs/git-nacht/internal/adapter/store"
	"github.com/nachtlabs/git-nacht/internal/adapter/vcs"
	"github.com/nachtlabs/git-nacht/internal/port"
	"github.com/nachtlabs/git-nacht/internal/service"
	"github.com/nachtlabs/git-nacht/pkg/config"
)

func newNachtCmd() *cobra.Command {
	var rawURL string

	cmd := &cobra.Command{
		Use:   "nacht --url <url>",
		Short: "Capture a screenshot correlated with the latest commit",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCapture(cmd.Context(), rawURL)
		},
	}

	cmd.Flags().StringVar(&rawURL, "url", "", "target URL to render")
	_ = cmd.MarkFlagRequired("url")

	return cmd
}

func newShotCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "shot <url>",
		Short: "Shorthand for nacht --url",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCapture(cmd.Context(), args[0])
		},
	}
}

// runCapture wires the correlation workflow and maps its outcome to one
// user-facing message and exit status.
func runCapture(ctx context.Context, rawURL string) error {
	cfg := config.Load()
	targetURL := normalizeURL(rawURL)

	// The store connects lazily so a down database is hit only at the
	// persistence step, after the image exists on disk.
	lazy := store.NewLazyStore(cfg.DSN())
	defer lazy.Close()

	inspector := vcs.NewGitInspector("")
	capture := service.NewCapture(browser.NewRodRenderer(cfg.ChromeURL), cfg.UploadPath)
	resolver := service.NewProjectResolver(lazy, cfg.DefaultProjectID, cfg.DefaultUserID)
	workflow := service.NewWorkflow(inspector, capture, resolver, lazy, cfg.EligibilityWindow, cfg.DefaultUserID)

	fmt.Printf("Taking screenshot of %s...\n", targetURL)
	result := workflow.Run(ctx, targetURL, loadSession())

	switch result.Outcome {
	case service.OutcomeDone:
		fmt.Printf("Screenshot saved: %s\n", result.ImagePath)
		fmt.Printf("Recorded as screenshot %d for project %d (commit %s)\n",
			result.ScreenshotID, result.ProjectID, result.Commit.ShortHash)
		return nil

	case service.OutcomeIneligible:
		switch {
		case errors.Is(result.Err, port.ErrNotARepository):
			fmt.Println("Not a git repository. Run git-nacht inside a repository.")
		case errors.Is(result.Err, port.ErrNoCommitYet):
			fmt.Println("The repository has no commits yet. Make a commit first.")
		default:
			fmt.Printf("The latest commit is older than %s. Commit your changes first, then retry.\n", cfg.EligibilityWindow)
		}
		return result.Err

	case service.OutcomeCaptureFailed:
		fmt.Println("Screenshot capture failed. Check that the target URL is reachable and a browser is available, then retry.")
		return result.Err

	case service.OutcomePersistFailed:
		// Split outcome: the image exists on disk but no row was written.
		fmt.Printf("Screenshot captured (%s) but not recorded in the database.\n", result.ImagePath)
		fmt.Println("Fix the database connection and re-run; the image file is kept.")
		return result.Err
	}

	return result.Err
}

// normalizeURL prepends http:// when the target has no scheme.
func normalizeURL(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return raw
	}
	if !strings.HasPrefix(raw, "http://") && !strings.HasPrefix(raw, "https://") {
		return "http://" + raw
	}
	return raw
}
