package handlers

import (
	"errors"
	"fmt"
	"mime/multipart"

	"github.com/gofiber/fiber/v2"

	"resume-matcher/internal/services"
)

type MatchHandler struct {
	matcher     services.MatcherService
	maxFileSize int64
}

func NewMatchHandler(matcher services.MatcherService, maxFileSize int64) *MatchHandler {
	return &MatchHandler{
		matcher:     matcher,
		maxFileSize: maxFileSize,
	}
}

// HandleMatch handles POST /api/v1/match. The request carries one
// job_description text field and one or more resume_file uploads. Validation
// failures abort before any scoring happens.
func (h *MatchHandler) HandleMatch(c *fiber.Ctx) error {
	form, err := c.MultipartForm()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "failed to parse multipart form",
		})
	}

	jobDescription := c.FormValue("job_description")
	if jobDescription == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Please paste a job description to begin matching.",
		})
	}

	files := nonEmptyFiles(form.File["resume_file"])
	if len(files) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Please upload at least one resume file.",
		})
	}

	for _, file := range files {
		if file.Size > h.maxFileSize {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": fmt.Sprintf("Resume file %q too large. Max size: %d bytes", file.Filename, h.maxFileSize),
			})
		}
	}

	response, err := h.matcher.Match(c.Context(), jobDescription, files)
	if err != nil {
		if errors.Is(err, services.ErrDegenerateVocabulary) {
			return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
				"error": "The job description and resumes contain no scorable terms.",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to score resumes",
		})
	}

	return c.JSON(response)
}

// nonEmptyFiles drops form parts without a filename, which browsers send for
// empty file inputs.
func nonEmptyFiles(files []*multipart.FileHeader) []*multipart.FileHeader {
	var kept []*multipart.FileHeader
	for _, f := range files {
		if f != nil && f.Filename != "" {
			kept = append(kept, f)
		}
	}
	return kept
}
