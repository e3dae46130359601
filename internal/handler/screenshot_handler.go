package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v3"

	"github.com/nachtlabs/git-nacht/internal/adapter/store"
)

// ScreenshotHandler serves the recorded screenshots read-only.
type ScreenshotHandler struct {
	store *store.PostgresStore
}

// NewScreenshotHandler creates a new screenshot handler.
func NewScreenshotHandler(store *store.PostgresStore) *ScreenshotHandler {
	return &ScreenshotHandler{store: store}
}

// Register sets up screenshot routes.
func (h *ScreenshotHandler) Register(router fiber.Router) {
	router.Get("/screenshots", h.List)
}

// List returns recorded screenshots, newest first.
func (h *ScreenshotHandler) List(c fiber.Ctx) error {
	limitStr := c.Query("limit", "100")
	limit, _ := strconv.Atoi(limitStr)

	screenshots, err := h.store.ListScreenshots(c.Context(), limit)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{
		"screenshots": screenshots,
		"count":       len(screenshots),
	})
}
