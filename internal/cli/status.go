package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nachtlabs/git-nacht/internal/adapter/store"
	"github.com/nachtlabs/git-nacht/internal/adapter/vcs"
	"github.com/nachtlabs/git-nacht/pkg/config"
)

func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Report repository detection and store connectivity",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			ctx := cmd.Context()

			inspector := vcs.NewGitInspector("")
			if inspector.IsRepository(ctx) {
				fmt.Println("Repository: detected")
				if commit, err := inspector.LatestCommit(ctx); err == nil {
					fmt.Printf("Latest commit: %s on %s (%s)\n",
						commit.ShortHash, commit.Branch, commit.Timestamp.Format("2006-01-02 15:04:05"))
					if commit.RemoteURL != "" {
						fmt.Printf("Remote: %s\n", commit.RemoteURL)
					} else {
						fmt.Println("Remote: none (local-only repository)")
					}
				} else {
					fmt.Println("Latest commit: none yet")
				}
			} else {
				fmt.Println("Repository: not detected")
			}

			pg, err := store.NewPostgresStore(cfg.DSN())
			if err != nil {
				fmt.Println("Database: unreachable")
				return nil // status is read-only reporting, not a failure
			}
			defer pg.Close()
			fmt.Printf("Database: connected (%s@%s:%s/%s)\n", cfg.DBUser, cfg.DBHost, cfg.DBPort, cfg.DBName)

			if identity := loadSession(); identity != nil {
				fmt.Printf("Logged in as: %s (user %d)\n", identity.Email, identity.UserID)
			} else {
				fmt.Println("Logged in as: nobody (sentinel system user)")
			}
			return nil
		},
	}
}
