package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/artem13815/jobboard/pkg/interaction"
)

// InteractionRepository implements interaction.Repository over an
// append-only table. Bookmark removal is the one permitted delete.
type InteractionRepository struct {
	pool *pgxpool.Pool
}

func NewInteractionRepository(pool *pgxpool.Pool) (*InteractionRepository, error) {
	r := &InteractionRepository{pool: pool}
	if err := r.ensureSchema(context.Background()); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *InteractionRepository) ensureSchema(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, `
CREATE TABLE IF NOT EXISTS interactions (
	id UUID PRIMARY KEY,
	user_id UUID NOT NULL,
	job_id TEXT NOT NULL,
	type TEXT NOT NULL CHECK (type IN ('apply', 'bookmark')),
	created_at TIMESTAMPTZ NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_interactions_user_type ON interactions(user_id, type, created_at DESC);
`)
	return err
}

func (r *InteractionRepository) Insert(ctx context.Context, in interaction.Interaction) error {
	_, err := r.pool.Exec(ctx, `
INSERT INTO interactions (id, user_id, job_id, type, created_at)
VALUES ($1, $2, $3, $4, $5)
`, in.ID, in.UserID, in.JobID, string(in.Type), in.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert interaction: %w", err)
	}
	return nil
}

func (r *InteractionRepository) Delete(ctx context.Context, userID uuid.UUID, jobID string, t interaction.Type) error {
	_, err := r.pool.Exec(ctx, `
DELETE FROM interactions WHERE user_id = $1 AND job_id = $2 AND type = $3
`, userID, jobID, string(t))
	if err != nil {
		return fmt.Errorf("delete interaction: %w", err)
	}
	return nil
}

func (r *InteractionRepository) LastApplied(ctx context.Context, userID uuid.UUID) (string, error) {
	row := r.pool.QueryRow(ctx, `
SELECT job_id FROM interactions
WHERE user_id = $1 AND type = 'apply'
ORDER BY created_at DESC
LIMIT 1
`, userID)
	var jobID string
	if err := row.Scan(&jobID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", interaction.ErrNoInteractions
		}
		return "", fmt.Errorf("query last apply: %w", err)
	}
	return jobID, nil
}

func (r *InteractionRepository) ListJobIDs(ctx context.Context, userID uuid.UUID, t interaction.Type) ([]string, error) {
	rows, err := r.pool.Query(ctx, `
SELECT job_id FROM interactions
WHERE user_id = $1 AND type = $2
ORDER BY created_at DESC
`, userID, string(t))
	if err != nil {
		return nil, fmt.Errorf("query interactions: %w", err)
	}
	defer rows.Close()
	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func (r *InteractionRepository) Exists(ctx context.Context, userID uuid.UUID, jobID string, t interaction.Type) (bool, error) {
	row := r.pool.QueryRow(ctx, `
SELECT EXISTS (
	SELECT 1 FROM interactions WHERE user_id = $1 AND job_id = $2 AND type = $3
)
`, userID, jobID, string(t))
	var ok bool
	if err := row.Scan(&ok); err != nil {
		return false, fmt.Errorf("query interaction exists: %w", err)
	}
	return ok, nil
}
