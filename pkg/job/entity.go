package job

import (
	"context"
	"errors"
)

// Job is the canonical posting shape every consumer sees. Sources deliver
// rows in several historical layouts; Normalize is the only place raw data
// becomes a Job. All fields are display strings on purpose: the upstream
// data is too inconsistent for numeric or date coercion.
type Job struct {
	ID                string   `json:"id"`
	Title             string   `json:"title"`
	CompanyName       string   `json:"companyName"`
	Location          string   `json:"location,omitempty"`
	SalaryDisplay     string   `json:"salaryDisplay,omitempty"`
	Description       string   `json:"description,omitempty"`
	ApplicationURL    string   `json:"applicationUrl,omitempty"`
	Skills            []string `json:"skills"`
	YearsOfExperience string   `json:"yearsOfExperience,omitempty"`
	ModeOfWorking     string   `json:"modeOfWorking,omitempty"`
	PostingDate       string   `json:"postingDate,omitempty"`
	Category          string   `json:"category,omitempty"`
	Industry          string   `json:"industry,omitempty"`
}

// Filters narrows a listing by role and location, both optional.
type Filters struct {
	Role     string
	Location string
}

// Query is the request every source understands. Role and Location are
// case-insensitive substring predicates, Category and Industry exact
// matches, ExcludeID drops a single id from the result.
type Query struct {
	Role      string
	Location  string
	Category  string
	Industry  string
	ExcludeID string
	Limit     int
	Offset    int
}

// Source is the port both adapters implement: the flat-file loader and the
// Postgres repository. A deployment picks exactly one; ids from the two are
// unrelated and sets must never be mixed.
type Source interface {
	List(ctx context.Context, q Query) ([]Job, error)
	Get(ctx context.Context, id string) (Job, error)
}

var ErrNotFound = errors.New("job not found")
