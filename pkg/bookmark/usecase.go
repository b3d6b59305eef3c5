package bookmark

import (
	"context"
	"errors"

	"github.com/artem13815/jobboard/pkg/job"
)

// UseCase exposes the bookmark set to the API layer.
type UseCase interface {
	// Toggle flips membership for (subject, jobID) exactly once per call
	// and reports the resulting state.
	Toggle(ctx context.Context, subject, jobID string) (bookmarked bool, err error)
	List(ctx context.Context, subject string) ([]string, error)
	// Jobs resolves the set against the active source, skipping ids the
	// source no longer knows.
	Jobs(ctx context.Context, subject string) ([]job.Job, error)
}

type service struct {
	store Store
	jobs  job.Source
}

func NewService(store Store, jobs job.Source) UseCase {
	return &service{store: store, jobs: jobs}
}

func (s *service) Toggle(ctx context.Context, subject, jobID string) (bool, error) {
	saved, err := s.store.Contains(ctx, subject, jobID)
	if err != nil {
		return false, err
	}
	if saved {
		if err := s.store.Remove(ctx, subject, jobID); err != nil {
			return true, err
		}
		return false, nil
	}
	if err := s.store.Add(ctx, subject, jobID); err != nil {
		return false, err
	}
	return true, nil
}

func (s *service) List(ctx context.Context, subject string) ([]string, error) {
	return s.store.List(ctx, subject)
}

func (s *service) Jobs(ctx context.Context, subject string) ([]job.Job, error) {
	ids, err := s.store.List(ctx, subject)
	if err != nil {
		return nil, err
	}
	out := make([]job.Job, 0, len(ids))
	for _, id := range ids {
		j, err := s.jobs.Get(ctx, id)
		if errors.Is(err, job.ErrNotFound) {
			continue // job removed from the source since it was saved
		}
		if err != nil {
			return nil, err
		}
		out = append(out, j)
	}
	return out, nil
}
