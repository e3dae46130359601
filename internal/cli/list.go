package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nachtlabs/git-nacht/internal/adapter/store"
	"github.com/nachtlabs/git-nacht/pkg/config"
)

func newListCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recorded screenshots, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()

			pg, err := store.NewPostgresStore(cfg.DSN())
			if err != nil {
				return err
			}
			defer pg.Close()

			screenshots, err := pg.ListScreenshots(cmd.Context(), limit)
			if err != nil {
				return err
			}

			if len(screenshots) == 0 {
				fmt.Println("No screenshots recorded yet.")
				return nil
			}

			for _, s := range screenshots {
				fmt.Printf("%5d  %s  project %-4d  commit %-8s  %s\n",
					s.ID, s.CreatedAt.Format("2006-01-02 15:04"), s.ProjectID, s.CommitHash, s.URL)
			}
			fmt.Printf("%d screenshot(s)\n", len(screenshots))
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 20, "maximum number of rows")

	return cmd
}
