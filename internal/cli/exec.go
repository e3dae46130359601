package cli

import (
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nachtlabs/git-nacht/internal/adapter/vcs"
)

func newExecCmd() *cobra.Command {
	return &cobra.Command{
		Use:                "exec <git-args...>",
		Short:              "Pass a command through to git",
		Long:               `exec forwards its arguments to git unchanged. The legacy "nacht -url <url>" form embedded in the arguments is routed to the capture workflow instead.`,
		Args:               cobra.MinimumNArgs(1),
		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Legacy invocation style is an input-parsing alias for the
			// nacht command, not a separate code path.
			if url, ok := parseLegacyNachtURL(args); ok {
				return runCapture(cmd.Context(), url)
			}

			inspector := vcs.NewGitInspector("")
			code, err := inspector.Exec(cmd.Context(), args...)
			if err != nil {
				return err
			}
			if code != 0 {
				os.Exit(code) // propagate the git child's exit code
			}
			return nil
		},
	}
}

// parseLegacyNachtURL detects the legacy "nacht -url <url>" form inside a
// pass-through argument list and extracts the URL.
func parseLegacyNachtURL(args []string) (string, bool) {
	for i, arg := range args {
		if arg != "nacht" {
			continue
		}
		rest := args[i+1:]
		for j, flag := range rest {
			if flag == "-url" || flag == "--url" {
				if j+1 < len(rest) {
					return strings.Trim(rest[j+1], `"'`), true
				}
				return "", false
			}
			if v, ok := strings.CutPrefix(flag, "-url="); ok {
				return strings.Trim(v, `"'`), true
			}
			if v, ok := strings.CutPrefix(flag, "--url="); ok {
				return strings.Trim(v, `"'`), true
			}
		}
		return "", false
	}
	return "", false
}
