package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	_ "github.com/lib/pq"
)

// NewRootCmd builds the git-nacht command tree.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "git-nacht",
		Short:         "Git wrapper that correlates commits with screenshots",
		Long:          `git-nacht wraps git and, on request, captures a browser screenshot of a running application and records it with the latest commit's metadata in the shared database.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newSetupCmd())
	root.AddCommand(newExecCmd())
	root.AddCommand(newNachtCmd())
	root.AddCommand(newShotCmd())
	root.AddCommand(newListCmd())
	root.AddCommand(newStatusCmd())
	root.AddCommand(newLoginCmd())
	root.AddCommand(newServeCmd())

	return root
}

// Execute runs the CLI and exits non-zero on failure.
func Execute() {
	_ = godotenv.Load() // silently ignore if .env doesn't exist

	root := NewRootCmd()
	root.SetContext(context.Background())
	root.SetOut(os.Stdout)

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
