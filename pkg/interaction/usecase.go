package interaction

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/artem13815/jobboard/pkg/job"
)

// UseCase covers the apply action. Bookmarks have their own package since
// their persistence is swappable.
type UseCase interface {
	Apply(ctx context.Context, userID uuid.UUID, jobID string) error
}

type service struct {
	repo Repository
	jobs job.Source
}

func NewService(repo Repository, jobs job.Source) UseCase {
	return &service{repo: repo, jobs: jobs}
}

func (s *service) Apply(ctx context.Context, userID uuid.UUID, jobID string) error {
	// The job must exist in the active source before we log against it.
	if _, err := s.jobs.Get(ctx, jobID); err != nil {
		return err
	}
	return s.repo.Insert(ctx, Interaction{
		ID:        uuid.New(),
		UserID:    userID,
		JobID:     jobID,
		Type:      TypeApply,
		CreatedAt: time.Now().UTC(),
	})
}
