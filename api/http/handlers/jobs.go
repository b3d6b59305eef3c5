package handlers

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/artem13815/jobboard/api/http/presenter"
	"github.com/artem13815/jobboard/pkg/interaction"
	"github.com/artem13815/jobboard/pkg/job"
)

type JobsHandler struct {
	jobs    job.UseCase
	applies interaction.UseCase
}

func NewJobsHandler(jobs job.UseCase, applies interaction.UseCase) *JobsHandler {
	return &JobsHandler{jobs: jobs, applies: applies}
}

// List returns postings, optionally narrowed by role and location.
// @Summary List jobs
// @Tags    jobs
// @Produce json
// @Param   role query string false "case-insensitive substring match on title"
// @Param   location query string false "case-insensitive substring match on location"
// @Param   limit query int false "page size (default 9, max 200)"
// @Param   offset query int false "rows to skip"
// @Success 200 {array} job.Job
// @Failure 502 {object} presenter.ErrorResponse
// @Router  /jobs [get]
func (h *JobsHandler) List(c *fiber.Ctx) error {
	limit, offset := parseLimitOffset(c, 9)
	jobs, err := h.jobs.List(c.Context(), job.Filters{
		Role:     c.Query("role"),
		Location: c.Query("location"),
	}, limit, offset)
	if err != nil {
		return presenter.Error(c, http.StatusBadGateway, "failed to load jobs")
	}
	if jobs == nil {
		jobs = []job.Job{}
	}
	return presenter.JSON(c, http.StatusOK, jobs)
}

// GetByID returns a single posting.
// @Summary Get job by id
// @Tags    jobs
// @Produce json
// @Param   id path string true "job id"
// @Success 200 {object} job.Job
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /jobs/{id} [get]
func (h *JobsHandler) GetByID(c *fiber.Ctx) error {
	j, err := h.jobs.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, job.ErrNotFound) {
			return presenter.Error(c, http.StatusNotFound, "job not found")
		}
		return presenter.Error(c, http.StatusBadGateway, "failed to load job")
	}
	return presenter.JSON(c, http.StatusOK, j)
}

// Apply records an apply interaction for the authenticated user.
// @Summary Apply to a job
// @Tags    jobs
// @Produce json
// @Param   id path string true "job id"
// @Security BearerAuth
// @Success 201 {object} map[string]any
// @Failure 401 {object} presenter.ErrorResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /jobs/{id}/apply [post]
func (h *JobsHandler) Apply(c *fiber.Ctx) error {
	userIDStr, _ := c.Locals("userId").(string)
	uid, err := uuid.Parse(userIDStr)
	if err != nil {
		return presenter.Error(c, http.StatusUnauthorized, "could not identify user")
	}
	jobID := c.Params("id")
	if err := h.applies.Apply(c.Context(), uid, jobID); err != nil {
		if errors.Is(err, job.ErrNotFound) {
			return presenter.Error(c, http.StatusNotFound, "job not found")
		}
		return presenter.Error(c, http.StatusBadGateway, "failed to record application")
	}
	return presenter.JSON(c, http.StatusCreated, fiber.Map{
		"jobId":   jobID,
		"applied": true,
	})
}
