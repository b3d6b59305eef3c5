package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/artem13815/jobboard/api/http/presenter"
	"github.com/artem13815/jobboard/pkg/job"
	"github.com/artem13815/jobboard/pkg/recommend"
)

type RecommendationsHandler struct {
	uc recommend.UseCase
}

func NewRecommendationsHandler(uc recommend.UseCase) *RecommendationsHandler {
	return &RecommendationsHandler{uc: uc}
}

// List returns up to 10 jobs similar to the user's latest application, or
// an unfiltered sample when there is no history to go on.
// @Summary Recommended jobs
// @Tags    recommendations
// @Produce json
// @Security BearerAuth
// @Success 200 {array} job.Job
// @Failure 401 {object} presenter.ErrorResponse
// @Failure 502 {object} presenter.ErrorResponse
// @Router  /recommendations [get]
func (h *RecommendationsHandler) List(c *fiber.Ctx) error {
	userIDStr, _ := c.Locals("userId").(string)
	uid, err := uuid.Parse(userIDStr)
	if err != nil {
		return presenter.Error(c, http.StatusUnauthorized, "could not identify user")
	}
	jobs, err := h.uc.Recommend(c.Context(), uid)
	if err != nil {
		// Degrade with a notice; the client shows an empty list.
		return presenter.Error(c, http.StatusBadGateway, "failed to fetch recommendations")
	}
	if jobs == nil {
		jobs = []job.Job{}
	}
	return presenter.JSON(c, http.StatusOK, jobs)
}
