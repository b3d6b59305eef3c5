package recommend_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artem13815/jobboard/pkg/interaction"
	"github.com/artem13815/jobboard/pkg/job"
	"github.com/artem13815/jobboard/pkg/recommend"
)

// fakeInteractions implements interaction.Repository in memory.
type fakeInteractions struct {
	interactions []interaction.Interaction
	failWith     error
}

func (f *fakeInteractions) Insert(ctx context.Context, in interaction.Interaction) error {
	f.interactions = append(f.interactions, in)
	return nil
}

func (f *fakeInteractions) Delete(ctx context.Context, userID uuid.UUID, jobID string, t interaction.Type) error {
	return nil
}

func (f *fakeInteractions) LastApplied(ctx context.Context, userID uuid.UUID) (string, error) {
	if f.failWith != nil {
		return "", f.failWith
	}
	var best *interaction.Interaction
	for i := range f.interactions {
		in := &f.interactions[i]
		if in.UserID != userID || in.Type != interaction.TypeApply {
			continue
		}
		if best == nil || in.CreatedAt.After(best.CreatedAt) {
			best = in
		}
	}
	if best == nil {
		return "", interaction.ErrNoInteractions
	}
	return best.JobID, nil
}

func (f *fakeInteractions) ListJobIDs(ctx context.Context, userID uuid.UUID, t interaction.Type) ([]string, error) {
	return nil, nil
}

func (f *fakeInteractions) Exists(ctx context.Context, userID uuid.UUID, jobID string, t interaction.Type) (bool, error) {
	return false, nil
}

// fakeSource mimics both adapters' query semantics over a fixed set.
type fakeSource struct {
	jobs     []job.Job
	failWith error
}

func (f *fakeSource) List(ctx context.Context, q job.Query) ([]job.Job, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	var out []job.Job
	for _, j := range f.jobs {
		if q.Category != "" && j.Category != q.Category {
			continue
		}
		if q.Industry != "" && j.Industry != q.Industry {
			continue
		}
		if q.ExcludeID != "" && j.ID == q.ExcludeID {
			continue
		}
		out = append(out, j)
		if q.Limit > 0 && len(out) == q.Limit {
			break
		}
	}
	return out, nil
}

func (f *fakeSource) Get(ctx context.Context, id string) (job.Job, error) {
	if f.failWith != nil {
		return job.Job{}, f.failWith
	}
	for _, j := range f.jobs {
		if j.ID == id {
			return j, nil
		}
	}
	return job.Job{}, job.ErrNotFound
}

func apply(userID uuid.UUID, jobID string, at time.Time) interaction.Interaction {
	return interaction.Interaction{
		ID:        uuid.New(),
		UserID:    userID,
		JobID:     jobID,
		Type:      interaction.TypeApply,
		CreatedAt: at,
	}
}

func TestRecommend_SharesCategoryAndIndustryExcludingReference(t *testing.T) {
	userID := uuid.New()
	source := &fakeSource{jobs: []job.Job{
		{ID: "j1", Title: "Backend Engineer", CompanyName: "Acme", Category: "Eng", Industry: "Tech"},
		{ID: "j2", Title: "Platform Engineer", CompanyName: "Beta", Category: "Eng", Industry: "Tech"},
		{ID: "j3", Title: "Account Exec", CompanyName: "Gamma", Category: "Sales", Industry: "Tech"},
	}}
	repo := &fakeInteractions{interactions: []interaction.Interaction{
		apply(userID, "j1", time.Now()),
	}}

	got, err := recommend.NewService(repo, source).Recommend(context.Background(), userID)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "j2", got[0].ID)
}

func TestRecommend_UsesMostRecentApply(t *testing.T) {
	userID := uuid.New()
	now := time.Now()
	source := &fakeSource{jobs: []job.Job{
		{ID: "j1", Title: "Backend Engineer", CompanyName: "Acme", Category: "Eng", Industry: "Tech"},
		{ID: "j2", Title: "Platform Engineer", CompanyName: "Beta", Category: "Eng", Industry: "Tech"},
		{ID: "j3", Title: "Account Exec", CompanyName: "Gamma", Category: "Sales", Industry: "Fin"},
		{ID: "j4", Title: "Sales Lead", CompanyName: "Delta", Category: "Sales", Industry: "Fin"},
	}}
	repo := &fakeInteractions{interactions: []interaction.Interaction{
		apply(userID, "j1", now.Add(-time.Hour)),
		apply(userID, "j3", now),
	}}

	got, err := recommend.NewService(repo, source).Recommend(context.Background(), userID)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "j4", got[0].ID)
}

func TestRecommend_NoHistoryFallsBackToSample(t *testing.T) {
	source := &fakeSource{jobs: []job.Job{
		{ID: "j1", Title: "Backend Engineer", CompanyName: "Acme"},
		{ID: "j2", Title: "Platform Engineer", CompanyName: "Beta"},
	}}
	repo := &fakeInteractions{}

	got, err := recommend.NewService(repo, source).Recommend(context.Background(), uuid.New())
	require.NoError(t, err, "missing history is a degraded path, not an error")
	assert.Len(t, got, 2)
}

func TestRecommend_ReferenceJobGoneFallsBack(t *testing.T) {
	userID := uuid.New()
	source := &fakeSource{jobs: []job.Job{
		{ID: "j2", Title: "Platform Engineer", CompanyName: "Beta"},
	}}
	repo := &fakeInteractions{interactions: []interaction.Interaction{
		apply(userID, "j1", time.Now()), // j1 deleted since
	}}

	got, err := recommend.NewService(repo, source).Recommend(context.Background(), userID)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "j2", got[0].ID)
}

func TestRecommend_CapsAtTen(t *testing.T) {
	userID := uuid.New()
	jobs := []job.Job{{ID: "ref", Title: "Engineer", CompanyName: "Acme", Category: "Eng", Industry: "Tech"}}
	for i := 0; i < 15; i++ {
		jobs = append(jobs, job.Job{
			ID:          uuid.NewString(),
			Title:       "Engineer",
			CompanyName: "Acme",
			Category:    "Eng",
			Industry:    "Tech",
		})
	}
	repo := &fakeInteractions{interactions: []interaction.Interaction{
		apply(userID, "ref", time.Now()),
	}}

	got, err := recommend.NewService(repo, &fakeSource{jobs: jobs}).Recommend(context.Background(), userID)
	require.NoError(t, err)
	assert.Len(t, got, recommend.MaxResults)
}

func TestRecommend_QueryFailureYieldsRecommendationError(t *testing.T) {
	repo := &fakeInteractions{failWith: errors.New("connection reset")}

	_, err := recommend.NewService(repo, &fakeSource{}).Recommend(context.Background(), uuid.New())
	require.Error(t, err)
	var rerr *recommend.Error
	require.ErrorAs(t, err, &rerr)
	assert.Equal(t, "last apply lookup", rerr.Step)
}
