package cli

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v3/middleware/logger"
	"github.com/gofiber/fiber/v3/middleware/recover"
	"github.com/spf13/cobra"

	"github.com/nachtlabs/git-nacht/internal/adapter/store"
	"github.com/nachtlabs/git-nacht/internal/handler"
	"github.com/nachtlabs/git-nacht/pkg/config"
)

func newServeCmd() *cobra.Command {
	var port string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve recorded screenshots read-only over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			if port == "" {
				port = cfg.ServePort
			}

			pg, err := store.NewPostgresStore(cfg.DSN())
			if err != nil {
				return err
			}
			defer pg.Close()

			app := fiber.New(fiber.Config{
				AppName:      cfg.AppName,
				ReadTimeout:  30 * time.Second,
				WriteTimeout: 30 * time.Second,
			})

			app.Use(recover.New())
			app.Use(fiberlogger.New())
			app.Use(cors.New())

			app.Get("/api/v1/health", func(c fiber.Ctx) error {
				return c.JSON(fiber.Map{
					"status": "healthy",
					"app":    cfg.AppName,
				})
			})

			api := app.Group("/api/v1")
			handler.NewScreenshotHandler(pg).Register(api)
			handler.NewProjectHandler(pg).Register(api)

			// Capture image files, served from the managed upload root.
			uploadRoot, err := filepath.Abs(cfg.UploadPath)
			if err != nil {
				return err
			}
			app.Get("/uploads/*", func(c fiber.Ctx) error {
				rel := filepath.Clean(c.Params("*"))
				if rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
					return c.SendStatus(fiber.StatusNotFound)
				}
				return c.SendFile(filepath.Join(uploadRoot, rel))
			})

			slog.Info("serving screenshots", "port", port, "upload_root", uploadRoot)
			if err := app.Listen(":" + port); err != nil {
				return fmt.Errorf("serve: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&port, "port", "", "listen port (default from SERVE_PORT)")

	return cmd
}
