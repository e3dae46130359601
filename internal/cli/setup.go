package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nachtlabs/git-nacht/internal/adapter/auth"
	"github.com/nachtlabs/git-nacht/internal/adapter/store"
	"github.com/nachtlabs/git-nacht/internal/port"
	"github.com/nachtlabs/git-nacht/internal/service"
	"github.com/nachtlabs/git-nacht/pkg/config"
)

func newSetupCmd() *cobra.Command {
	var (
		email    string
		password string
		name     string
	)

	cmd := &cobra.Command{
		Use:   "setup",
		Short: "Bootstrap store connectivity, schema, and an administrative user",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			ctx := cmd.Context()

			pg, err := store.NewPostgresStore(cfg.DSN())
			if err != nil {
				fmt.Println("Could not connect to the database. Check DB_HOST/DB_PORT/DB_USER/DB_PASSWORD.")
				return err
			}
			defer pg.Close()
			fmt.Println("Database connection OK")

			if err := pg.BootstrapBackendTables(ctx); err != nil {
				return err
			}
			if err := pg.EnsureSchema(ctx); err != nil {
				return err
			}
			fmt.Println("Screenshots table ready")

			authSvc := service.NewAuth(pg, auth.NewBcryptHasher())
			if _, err := pg.GetUserByEmail(ctx, email); err == nil {
				fmt.Printf("Admin user %s already exists\n", email)
				return nil
			} else if !errors.Is(err, port.ErrUserNotFound) {
				return err
			}

			admin, err := authSvc.Register(ctx, email, name, password, "admin")
			if err != nil {
				return err
			}
			fmt.Printf("Admin user created (id %d, email %s)\n", admin.ID, admin.Email)
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "administrator email")
	cmd.Flags().StringVar(&password, "password", "", "administrator password")
	cmd.Flags().StringVar(&name, "name", "Administrator", "administrator display name")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}
