package csv_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artem13815/jobboard/pkg/job"
	csvsource "github.com/artem13815/jobboard/pkg/source/csv"
)

func writeCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "jobs.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const sampleCSV = `job_title,company,location,skills,category,industry
Go Engineer,Acme,Berlin,"Go, Docker",Eng,Tech
Product Designer,Beta,Remote,"[""Figma"",""Sketch""]",Design,Tech
Data Engineer,Gamma,Munich,"Python, SQL",Eng,Tech
`

func TestSource_SynthesizesSequentialIDs(t *testing.T) {
	src := csvsource.NewSource(writeCSV(t, sampleCSV))
	jobs, err := src.List(context.Background(), job.Query{})
	require.NoError(t, err)
	require.Len(t, jobs, 3)
	assert.Equal(t, "job-1", jobs[0].ID)
	assert.Equal(t, "job-2", jobs[1].ID)
	assert.Equal(t, "job-3", jobs[2].ID)
}

func TestSource_ParsesBracketedSkillLists(t *testing.T) {
	src := csvsource.NewSource(writeCSV(t, sampleCSV))
	jobs, err := src.List(context.Background(), job.Query{})
	require.NoError(t, err)
	assert.Equal(t, []string{"Go", "Docker"}, jobs[0].Skills)
	assert.Equal(t, []string{"Figma", "Sketch"}, jobs[1].Skills)
}

func TestSource_AppliesRoleAndLocationFilters(t *testing.T) {
	src := csvsource.NewSource(writeCSV(t, sampleCSV))
	jobs, err := src.List(context.Background(), job.Query{Role: "engineer", Location: "berlin"})
	require.NoError(t, err)
	require.Len(t, jobs, 1)
	assert.Equal(t, "Go Engineer", jobs[0].Title)
}

func TestSource_CategoryIndustryAndExclusion(t *testing.T) {
	src := csvsource.NewSource(writeCSV(t, sampleCSV))
	jobs, err := src.List(context.Background(), job.Query{
		Category:  "Eng",
		Industry:  "Tech",
		ExcludeID: "job-1",
	})
	require.NoError(t, err)
	require.Len(t, jobs, 1)
	assert.Equal(t, "job-3", jobs[0].ID)
}

func TestSource_Pagination(t *testing.T) {
	src := csvsource.NewSource(writeCSV(t, sampleCSV))
	jobs, err := src.List(context.Background(), job.Query{Limit: 1, Offset: 1})
	require.NoError(t, err)
	require.Len(t, jobs, 1)
	assert.Equal(t, "job-2", jobs[0].ID)

	jobs, err = src.List(context.Background(), job.Query{Offset: 10})
	require.NoError(t, err)
	assert.Empty(t, jobs)
}

func TestSource_Get(t *testing.T) {
	src := csvsource.NewSource(writeCSV(t, sampleCSV))
	j, err := src.Get(context.Background(), "job-2")
	require.NoError(t, err)
	assert.Equal(t, "Product Designer", j.Title)

	_, err = src.Get(context.Background(), "job-99")
	assert.ErrorIs(t, err, job.ErrNotFound)
}

func TestSource_MissingHeaderFails(t *testing.T) {
	// Data rows only: none of the known column names appear.
	src := csvsource.NewSource(writeCSV(t, "Go Engineer,Acme,Berlin\nProduct Designer,Beta,Remote\n"))
	_, err := src.List(context.Background(), job.Query{})
	require.Error(t, err)
	var perr *csvsource.ParseError
	assert.ErrorAs(t, err, &perr)
}

func TestSource_InconsistentColumnCountFails(t *testing.T) {
	src := csvsource.NewSource(writeCSV(t, "job_title,company\nGo Engineer,Acme,ExtraCell\n"))
	_, err := src.List(context.Background(), job.Query{})
	var perr *csvsource.ParseError
	require.ErrorAs(t, err, &perr)
}

func TestSource_AbsentDocumentFails(t *testing.T) {
	src := csvsource.NewSource(filepath.Join(t.TempDir(), "nope.csv"))
	_, err := src.List(context.Background(), job.Query{})
	var perr *csvsource.ParseError
	require.ErrorAs(t, err, &perr)
}

func TestSource_CanceledContextDiscardsResult(t *testing.T) {
	src := csvsource.NewSource(writeCSV(t, sampleCSV))
	ctx, cancel := context.WithCancel(context.Background())
	cancel() // superseded request: its result must never be applied

	_, err := src.List(ctx, job.Query{})
	assert.ErrorIs(t, err, context.Canceled)

	_, err = src.Get(ctx, "job-1")
	assert.ErrorIs(t, err, context.Canceled)

	// A fresh request against the same source still succeeds.
	jobs, err := src.List(context.Background(), job.Query{})
	require.NoError(t, err)
	assert.Len(t, jobs, 3)
}

func TestSource_DropsUnnormalizableRowsOnly(t *testing.T) {
	src := csvsource.NewSource(writeCSV(t, "job_title,company\nEngineer,Acme\nNameless,\n"))
	jobs, err := src.List(context.Background(), job.Query{})
	require.NoError(t, err)
	require.Len(t, jobs, 1)
	assert.Equal(t, "Engineer", jobs[0].Title)
}
