package bookmark

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/artem13815/jobboard/pkg/interaction"
)

// RemoteStore keeps the bookmark set in the interactions table, one
// type=bookmark row per saved job, scoped to the authenticated user.
type RemoteStore struct {
	repo interaction.Repository
}

func NewRemoteStore(repo interaction.Repository) *RemoteStore {
	return &RemoteStore{repo: repo}
}

func (s *RemoteStore) List(ctx context.Context, subject string) ([]string, error) {
	uid, err := parseSubject(subject)
	if err != nil {
		return nil, err
	}
	return s.repo.ListJobIDs(ctx, uid, interaction.TypeBookmark)
}

func (s *RemoteStore) Contains(ctx context.Context, subject, jobID string) (bool, error) {
	uid, err := parseSubject(subject)
	if err != nil {
		return false, err
	}
	return s.repo.Exists(ctx, uid, jobID, interaction.TypeBookmark)
}

func (s *RemoteStore) Add(ctx context.Context, subject, jobID string) error {
	uid, err := parseSubject(subject)
	if err != nil {
		return err
	}
	return s.repo.Insert(ctx, interaction.Interaction{
		ID:        uuid.New(),
		UserID:    uid,
		JobID:     jobID,
		Type:      interaction.TypeBookmark,
		CreatedAt: time.Now().UTC(),
	})
}

func (s *RemoteStore) Remove(ctx context.Context, subject, jobID string) error {
	uid, err := parseSubject(subject)
	if err != nil {
		return err
	}
	return s.repo.Delete(ctx, uid, jobID, interaction.TypeBookmark)
}

func parseSubject(subject string) (uuid.UUID, error) {
	uid, err := uuid.Parse(subject)
	if err != nil {
		return uuid.Nil, ErrAuthRequired
	}
	return uid, nil
}
