package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nachtlabs/git-nacht/internal/adapter/auth"
	"github.com/nachtlabs/git-nacht/internal/adapter/store"
	"github.com/nachtlabs/git-nacht/internal/service"
	"github.com/nachtlabs/git-nacht/pkg/config"
)

func newLoginCmd() *cobra.Command {
	var (
		email    string
		password string
	)

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Resolve credentials to a user identity",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()

			pg, err := store.NewPostgresStore(cfg.DSN())
			if err != nil {
				return err
			}
			defer pg.Close()

			authSvc := service.NewAuth(pg, auth.NewBcryptHasher())
			identity, err := authSvc.Login(cmd.Context(), email, password)
			if err != nil {
				fmt.Println("Login failed. Check your email and password.")
				return err
			}

			if err := saveSession(identity); err != nil {
				return err
			}
			fmt.Printf("Logged in as %s (user %d)\n", identity.Email, identity.UserID)
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "account email")
	cmd.Flags().StringVar(&password, "password", "", "account password")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}
