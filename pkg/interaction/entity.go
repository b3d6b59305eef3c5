// Package interaction records user actions on jobs. The log is
// append-only: applies accumulate, a bookmark row is removed when the
// bookmark is toggled off.
package interaction

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Type says what the user did with the job.
type Type string

const (
	TypeApply    Type = "apply"
	TypeBookmark Type = "bookmark"
)

// ParseType converts a raw string to a Type, rejecting unknown values.
func ParseType(s string) (Type, error) {
	t := Type(s)
	switch t {
	case TypeApply, TypeBookmark:
		return t, nil
	}
	return "", fmt.Errorf("unknown interaction type %q", s)
}

// Interaction links a user to a job at a point in time. Ordering for
// recommendation purposes is CreatedAt descending.
type Interaction struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	JobID     string
	Type      Type
	CreatedAt time.Time
}

var ErrNoInteractions = errors.New("no interactions recorded")

// Repository abstracts the interactions table.
type Repository interface {
	Insert(ctx context.Context, in Interaction) error
	// Delete removes every row for the (user, job, type) triple; used to
	// clear a bookmark. Deleting nothing is not an error.
	Delete(ctx context.Context, userID uuid.UUID, jobID string, t Type) error
	// LastApplied returns the job id of the user's most recent apply, or
	// ErrNoInteractions when the user never applied.
	LastApplied(ctx context.Context, userID uuid.UUID) (string, error)
	ListJobIDs(ctx context.Context, userID uuid.UUID, t Type) ([]string, error)
	Exists(ctx context.Context, userID uuid.UUID, jobID string, t Type) (bool, error)
}
