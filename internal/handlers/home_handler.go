package handlers

import (
	"github.com/gofiber/fiber/v2"

	"resume-matcher/internal/services"
)

type HomeHandler struct {
	storage services.StorageService
}

func NewHomeHandler(storage services.StorageService) *HomeHandler {
	return &HomeHandler{storage: storage}
}

// HandleHome handles GET /. A top-level visit starts a fresh matching cycle,
// so stale uploads from the previous batch are cleared here, never
// concurrently with an in-flight batch.
func (h *HomeHandler) HandleHome(c *fiber.Ctx) error {
	h.storage.Cleanup()

	return c.JSON(fiber.Map{
		"message": "Resume Matcher API",
		"version": "1.0.0",
		"endpoints": []string{
			"POST /api/v1/match",
			"GET /api/v1/health",
		},
	})
}
