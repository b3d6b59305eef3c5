package job_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artem13815/jobboard/pkg/job"
)

func sampleJobs() []job.Job {
	return []job.Job{
		{ID: "job-1", Title: "Senior Go Engineer", CompanyName: "Acme", Location: "Berlin"},
		{ID: "job-2", Title: "Product Designer", CompanyName: "Beta", Location: "Remote"},
		{ID: "job-3", Title: "go engineer", CompanyName: "Gamma", Location: "Munich"},
		{ID: "job-4", Title: "Data Engineer", CompanyName: "Delta"}, // no location
	}
}

func TestFilter_EmptyFiltersReturnInputUnchanged(t *testing.T) {
	in := sampleJobs()
	out := job.Filter(in, job.Filters{})
	require.Len(t, out, len(in))
	for i := range in {
		assert.Equal(t, in[i].ID, out[i].ID, "order must be preserved")
	}
}

func TestFilter_RoleIsCaseInsensitiveSubstring(t *testing.T) {
	out := job.Filter(sampleJobs(), job.Filters{Role: "go engineer"})
	require.Len(t, out, 2)
	assert.Equal(t, "job-1", out[0].ID)
	assert.Equal(t, "job-3", out[1].ID)
	for _, j := range out {
		assert.Contains(t, strings.ToLower(j.Title), "go engineer")
	}
}

func TestFilter_LocationNarrows(t *testing.T) {
	out := job.Filter(sampleJobs(), job.Filters{Location: "berlin"})
	require.Len(t, out, 1)
	assert.Equal(t, "job-1", out[0].ID)
}

func TestFilter_BothPredicatesMustMatch(t *testing.T) {
	out := job.Filter(sampleJobs(), job.Filters{Role: "engineer", Location: "munich"})
	require.Len(t, out, 1)
	assert.Equal(t, "job-3", out[0].ID)
}

func TestFilter_EmptyLocationNeverMatchesLocationFilter(t *testing.T) {
	out := job.Filter(sampleJobs(), job.Filters{Role: "engineer", Location: "remote"})
	for _, j := range out {
		assert.NotEqual(t, "job-4", j.ID, "record without location must not match")
	}
}

func TestFilter_NoMatchesYieldsEmpty(t *testing.T) {
	out := job.Filter(sampleJobs(), job.Filters{Role: "astronaut"})
	assert.Empty(t, out)
}
