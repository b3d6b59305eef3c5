package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/artem13815/jobboard/pkg/job"
)

// JobRepository is the remote-table job source. Rows arrive already
// shaped; only normalization-time defaults apply (empty strings, empty
// skills array).
type JobRepository struct {
	pool *pgxpool.Pool
}

func NewJobRepository(pool *pgxpool.Pool) (*JobRepository, error) {
	r := &JobRepository{pool: pool}
	if err := r.ensureSchema(context.Background()); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *JobRepository) ensureSchema(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, `
CREATE TABLE IF NOT EXISTS jobs (
	id TEXT PRIMARY KEY,
	title TEXT NOT NULL,
	company_name TEXT NOT NULL,
	location TEXT NOT NULL DEFAULT '',
	salary TEXT NOT NULL DEFAULT '',
	description TEXT NOT NULL DEFAULT '',
	application_url TEXT NOT NULL DEFAULT '',
	skills TEXT[] NOT NULL DEFAULT '{}',
	years_of_experience TEXT NOT NULL DEFAULT '',
	mode_of_working TEXT NOT NULL DEFAULT '',
	posting_date TEXT NOT NULL DEFAULT '',
	category TEXT NOT NULL DEFAULT '',
	industry TEXT NOT NULL DEFAULT ''
);
CREATE INDEX IF NOT EXISTS idx_jobs_category_industry ON jobs(category, industry);
`)
	return err
}

const jobColumns = `id, title, company_name, location, salary, description,
	application_url, skills, years_of_experience, mode_of_working,
	posting_date, category, industry`

func (r *JobRepository) List(ctx context.Context, q job.Query) ([]job.Job, error) {
	var (
		where []string
		args  []any
	)
	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}
	if s := strings.TrimSpace(q.Role); s != "" {
		where = append(where, "title ILIKE "+arg("%"+s+"%"))
	}
	if s := strings.TrimSpace(q.Location); s != "" {
		where = append(where, "location ILIKE "+arg("%"+s+"%"))
	}
	if q.Category != "" {
		where = append(where, "category = "+arg(q.Category))
	}
	if q.Industry != "" {
		where = append(where, "industry = "+arg(q.Industry))
	}
	if q.ExcludeID != "" {
		where = append(where, "id <> "+arg(q.ExcludeID))
	}

	sql := "SELECT " + jobColumns + " FROM jobs"
	if len(where) > 0 {
		sql += " WHERE " + strings.Join(where, " AND ")
	}
	sql += " ORDER BY id" // deterministic order across identical queries
	limit := q.Limit
	if limit <= 0 {
		limit = 50
	}
	sql += " LIMIT " + arg(limit)
	if q.Offset > 0 {
		sql += " OFFSET " + arg(q.Offset)
	}

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("query jobs: %w", err)
	}
	defer rows.Close()
	var res []job.Job
	for rows.Next() {
		j, err := scanJob(rows)
		if err != nil {
			return nil, err
		}
		res = append(res, j)
	}
	return res, rows.Err()
}

func (r *JobRepository) Get(ctx context.Context, id string) (job.Job, error) {
	row := r.pool.QueryRow(ctx, "SELECT "+jobColumns+" FROM jobs WHERE id = $1", id)
	j, err := scanJob(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return job.Job{}, job.ErrNotFound
	}
	if err != nil {
		return job.Job{}, fmt.Errorf("query job %s: %w", id, err)
	}
	return j, nil
}

// Upsert writes a job row, replacing an existing one with the same id.
// Used by the importer to seed the table from the flat file.
func (r *JobRepository) Upsert(ctx context.Context, j job.Job) error {
	_, err := r.pool.Exec(ctx, `
INSERT INTO jobs (`+jobColumns+`)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
ON CONFLICT (id) DO UPDATE SET
	title = EXCLUDED.title,
	company_name = EXCLUDED.company_name,
	location = EXCLUDED.location,
	salary = EXCLUDED.salary,
	description = EXCLUDED.description,
	application_url = EXCLUDED.application_url,
	skills = EXCLUDED.skills,
	years_of_experience = EXCLUDED.years_of_experience,
	mode_of_working = EXCLUDED.mode_of_working,
	posting_date = EXCLUDED.posting_date,
	category = EXCLUDED.category,
	industry = EXCLUDED.industry
`, j.ID, j.Title, j.CompanyName, j.Location, j.SalaryDisplay, j.Description,
		j.ApplicationURL, j.Skills, j.YearsOfExperience, j.ModeOfWorking,
		j.PostingDate, j.Category, j.Industry)
	if err != nil {
		return fmt.Errorf("upsert job %s: %w", j.ID, err)
	}
	return nil
}

func scanJob(row pgx.Row) (job.Job, error) {
	var j job.Job
	err := row.Scan(&j.ID, &j.Title, &j.CompanyName, &j.Location,
		&j.SalaryDisplay, &j.Description, &j.ApplicationURL, &j.Skills,
		&j.YearsOfExperience, &j.ModeOfWorking, &j.PostingDate,
		&j.Category, &j.Industry)
	if err != nil {
		return job.Job{}, err
	}
	if j.Skills == nil {
		j.Skills = []string{}
	}
	return j, nil
}
