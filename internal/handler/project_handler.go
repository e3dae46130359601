package handler

import (
	"github.com/gofiber/fiber/v3"

	"github.com/nachtlabs/git-nacht/internal/adapter/store"
)

// ProjectHandler serves project records read-only.
type ProjectHandler struct {
	store *store.PostgresStore
}

// NewProjectHandler creates a new project handler.
func NewProjectHandler(store *store.PostgresStore) *ProjectHandler {
	return &ProjectHandler{store: store}
}

// Register sets up project routes.
func (h *ProjectHandler) Register(router fiber.Router) {
	router.Get("/projects", h.List)
}

// List returns all projects, newest first.
func (h *ProjectHandler) List(c fiber.Ctx) error {
	projects, err := h.store.ListProjects(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{
		"projects": projects,
		"count":    len(projects),
	})
}
