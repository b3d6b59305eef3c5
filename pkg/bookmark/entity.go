// Package bookmark keeps the per-subject set of saved job ids. Persistence
// is a capability: a deployment wires exactly one Store (the interactions
// table for signed-in users, or a local file for a single anonymous
// subject) and the two are never reconciled.
package bookmark

import (
	"context"
	"errors"
)

var (
	// ErrAuthRequired means a mutation was attempted against the remote
	// store without an authenticated subject. Nothing is written.
	ErrAuthRequired = errors.New("authentication required for bookmarks")
)

// Store abstracts where the bookmark set lives.
type Store interface {
	List(ctx context.Context, subject string) ([]string, error)
	Contains(ctx context.Context, subject, jobID string) (bool, error)
	Add(ctx context.Context, subject, jobID string) error
	Remove(ctx context.Context, subject, jobID string) error
}
