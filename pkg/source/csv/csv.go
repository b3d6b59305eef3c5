// Package csv loads job postings from a flat comma-separated file with a
// header row, the same document the static deployment serves to browsers.
package csv

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/artem13815/jobboard/pkg/job"
)

// ParseError reports an unreadable or malformed document. The whole load
// fails; callers never get a silently empty set.
type ParseError struct {
	Path string
	Msg  string
	Err  error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("parse %s: %s: %v", e.Path, e.Msg, e.Err)
	}
	return fmt.Sprintf("parse %s: %s", e.Path, e.Msg)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Source implements job.Source over the flat file. The file is read once on
// first use; the normalized slice is read-only afterwards, so concurrent
// requests share it without locking.
type Source struct {
	path string

	once sync.Once
	jobs []job.Job
	err  error
}

func NewSource(path string) *Source { return &Source{path: path} }

func (s *Source) load() ([]job.Job, error) {
	s.once.Do(func() {
		s.jobs, s.err = parseFile(s.path)
	})
	return s.jobs, s.err
}

func (s *Source) List(ctx context.Context, q job.Query) ([]job.Job, error) {
	all, err := s.load()
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	matched := job.Filter(all, job.Filters{Role: q.Role, Location: q.Location})
	if q.Category != "" || q.Industry != "" || q.ExcludeID != "" {
		narrowed := make([]job.Job, 0, len(matched))
		for _, j := range matched {
			if q.Category != "" && j.Category != q.Category {
				continue
			}
			if q.Industry != "" && j.Industry != q.Industry {
				continue
			}
			if q.ExcludeID != "" && j.ID == q.ExcludeID {
				continue
			}
			narrowed = append(narrowed, j)
		}
		matched = narrowed
	}
	return paginate(matched, q.Limit, q.Offset), nil
}

func (s *Source) Get(ctx context.Context, id string) (job.Job, error) {
	all, err := s.load()
	if err != nil {
		return job.Job{}, err
	}
	if err := ctx.Err(); err != nil {
		return job.Job{}, err
	}
	for _, j := range all {
		if j.ID == id {
			return j, nil
		}
	}
	return job.Job{}, job.ErrNotFound
}

func parseFile(path string) ([]job.Job, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &ParseError{Path: path, Msg: "open document", Err: err}
	}
	defer f.Close()

	r := csv.NewReader(f)
	// encoding/csv enforces a consistent column count against the header
	// row, which is exactly the malformed-document check we need.
	rows, err := r.ReadAll()
	if err != nil {
		return nil, &ParseError{Path: path, Msg: "read rows", Err: err}
	}
	if len(rows) == 0 {
		return nil, &ParseError{Path: path, Msg: "missing header row"}
	}
	header := rows[0]
	if !looksLikeHeader(header) {
		return nil, &ParseError{Path: path, Msg: "first row is not a recognizable header"}
	}

	ids := make([]string, 0, len(rows)-1)
	raws := make([]job.RawJob, 0, len(rows)-1)
	for i, row := range rows[1:] {
		raw := job.RawJob{Fields: make(map[string]string, len(header))}
		for col, name := range header {
			name = strings.ToLower(strings.TrimSpace(name))
			value := row[col]
			// Bracketed cells are JSON-encoded lists (skills in newer
			// exports); anything else stays plain text.
			if name == "skills" {
				if list, ok := parseBracketedList(value); ok {
					raw.Skills = list
					continue
				}
			}
			raw.Fields[name] = value
		}
		ids = append(ids, fmt.Sprintf("job-%d", i+1))
		raws = append(raws, raw)
	}
	return job.NormalizeAll(ids, raws), nil
}

// looksLikeHeader requires at least one known column name, so a headerless
// data file fails instead of producing records keyed by their own values.
func looksLikeHeader(row []string) bool {
	known := map[string]bool{
		"job_title": true, "title": true,
		"company": true, "company_name": true,
		"location": true, "skills": true,
	}
	for _, cell := range row {
		if known[strings.ToLower(strings.TrimSpace(cell))] {
			return true
		}
	}
	return false
}

func parseBracketedList(value string) ([]string, bool) {
	v := strings.TrimSpace(value)
	if !strings.HasPrefix(v, "[") || !strings.HasSuffix(v, "]") {
		return nil, false
	}
	var list []string
	if err := json.Unmarshal([]byte(v), &list); err != nil {
		return nil, false
	}
	return list, true
}

func paginate(jobs []job.Job, limit, offset int) []job.Job {
	if offset < 0 {
		offset = 0
	}
	if offset >= len(jobs) {
		return []job.Job{}
	}
	jobs = jobs[offset:]
	if limit > 0 && limit < len(jobs) {
		jobs = jobs[:limit]
	}
	return jobs
}
