// Package recommend derives a short list of postings from the user's most
// recent apply: other jobs sharing that job's category and industry.
package recommend

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/artem13815/jobboard/pkg/interaction"
	"github.com/artem13815/jobboard/pkg/job"
)

// MaxResults caps every recommendation response.
const MaxResults = 10

// Error wraps any failure inside the multi-step lookup so the API layer
// can degrade to a notice instead of crashing the page.
type Error struct {
	Step string
	Err  error
}

func (e *Error) Error() string { return fmt.Sprintf("recommend: %s: %v", e.Step, e.Err) }
func (e *Error) Unwrap() error { return e.Err }

// UseCase produces at most MaxResults jobs for a user.
type UseCase interface {
	Recommend(ctx context.Context, userID uuid.UUID) ([]job.Job, error)
}

type service struct {
	interactions interaction.Repository
	jobs         job.Source
}

func NewService(interactions interaction.Repository, jobs job.Source) UseCase {
	return &service{interactions: interactions, jobs: jobs}
}

func (s *service) Recommend(ctx context.Context, userID uuid.UUID) ([]job.Job, error) {
	lastJobID, err := s.interactions.LastApplied(ctx, userID)
	if errors.Is(err, interaction.ErrNoInteractions) {
		return s.fallback(ctx)
	}
	if err != nil {
		return nil, &Error{Step: "last apply lookup", Err: err}
	}

	ref, err := s.jobs.Get(ctx, lastJobID)
	if errors.Is(err, job.ErrNotFound) {
		// The applied-to job is gone from the source; same degraded path
		// as a user with no history.
		return s.fallback(ctx)
	}
	if err != nil {
		return nil, &Error{Step: "reference job lookup", Err: err}
	}

	similar, err := s.jobs.List(ctx, job.Query{
		Category:  ref.Category,
		Industry:  ref.Industry,
		ExcludeID: ref.ID,
		Limit:     MaxResults,
	})
	if err != nil {
		return nil, &Error{Step: "similar jobs query", Err: err}
	}
	return similar, nil
}

// fallback serves an unfiltered sample when there is nothing to derive a
// recommendation from. Not an error.
func (s *service) fallback(ctx context.Context) ([]job.Job, error) {
	jobs, err := s.jobs.List(ctx, job.Query{Limit: MaxResults})
	if err != nil {
		return nil, &Error{Step: "fallback sample", Err: err}
	}
	return jobs, nil
}
