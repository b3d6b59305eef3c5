package handlers

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/jobboard/api/http/presenter"
	"github.com/artem13815/jobboard/pkg/bookmark"
)

type BookmarksHandler struct {
	uc bookmark.UseCase
}

func NewBookmarksHandler(uc bookmark.UseCase) *BookmarksHandler {
	return &BookmarksHandler{uc: uc}
}

// subject resolves who owns the bookmark set: the authenticated user when
// the auth middleware ran, the fixed local subject otherwise. The remote
// store rejects the local subject, so an unauthenticated call against a
// remote deployment fails without writing.
func subject(c *fiber.Ctx) string {
	if userID, _ := c.Locals("userId").(string); userID != "" {
		return userID
	}
	return bookmark.LocalSubject
}

// List returns the saved jobs resolved to full records.
// @Summary List bookmarked jobs
// @Tags    bookmarks
// @Produce json
// @Security BearerAuth
// @Success 200 {array} job.Job
// @Failure 401 {object} presenter.ErrorResponse
// @Router  /bookmarks [get]
func (h *BookmarksHandler) List(c *fiber.Ctx) error {
	jobs, err := h.uc.Jobs(c.Context(), subject(c))
	if err != nil {
		if errors.Is(err, bookmark.ErrAuthRequired) {
			return presenter.Error(c, http.StatusUnauthorized, "sign in to use bookmarks")
		}
		return presenter.Error(c, http.StatusBadGateway, "failed to load bookmarks")
	}
	return presenter.JSON(c, http.StatusOK, jobs)
}

// Toggle flips bookmark state for one job and reports the new state.
// @Summary Toggle a bookmark
// @Tags    bookmarks
// @Produce json
// @Param   id path string true "job id"
// @Security BearerAuth
// @Success 200 {object} map[string]any
// @Failure 401 {object} presenter.ErrorResponse
// @Router  /bookmarks/{id}/toggle [post]
func (h *BookmarksHandler) Toggle(c *fiber.Ctx) error {
	jobID := c.Params("id")
	bookmarked, err := h.uc.Toggle(c.Context(), subject(c), jobID)
	if err != nil {
		if errors.Is(err, bookmark.ErrAuthRequired) {
			return presenter.Error(c, http.StatusUnauthorized, "sign in to use bookmarks")
		}
		return presenter.Error(c, http.StatusBadGateway, "failed to toggle bookmark")
	}
	return presenter.JSON(c, http.StatusOK, fiber.Map{
		"jobId":      jobID,
		"bookmarked": bookmarked,
	})
}
