package recommendations

import (
	"context"
	"errors"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/InternFinder-SIH/internfinder-backend/internal/internships"
	"github.com/InternFinder-SIH/internfinder-backend/internal/ml"
)

type fakeRecommender struct {
	recs []ml.Recommendation
	err  error
}

func (f *fakeRecommender) ProfileRecommendations(_ context.Context, _ ml.ProfileRequest) ([]ml.Recommendation, error) {
	return f.recs, f.err
}

type fakeCatalog struct {
	items map[string]internships.Internship
	calls int
}

func (f *fakeCatalog) Get(_ context.Context, id string) (*internships.Internship, error) {
	f.calls++
	in, ok := f.items[id]
	if !ok {
		return nil, internships.ErrNotFound
	}
	return &in, nil
}

func TestRecommendEnrichesFromCatalog(t *testing.T) {
	mlStub := &fakeRecommender{recs: []ml.Recommendation{
		{InternshipID: "intern-1", Score: 0.9},
		{InternshipID: "intern-2", Score: 0.6},
	}}
	catalog := &fakeCatalog{items: map[string]internships.Internship{
		"intern-1": {ID: "intern-1", Title: "Backend Intern", Company: "Acme"},
		"intern-2": {ID: "intern-2", Title: "Data Intern", Company: "Globex"},
	}}

	svc := NewService(mlStub, catalog, nil)
	results, err := svc.Recommend(context.Background(), ml.ProfileRequest{Skills: []string{"Go"}})
	require.NoError(t, err)

	require.Len(t, results, 2)
	assert.Equal(t, "Backend Intern", results[0].Title)
	assert.InDelta(t, 0.9, results[0].Score, 1e-9)
	assert.Equal(t, "Globex", results[1].Company)
}

func TestRecommendDropsUnknownIDs(t *testing.T) {
	mlStub := &fakeRecommender{recs: []ml.Recommendation{
		{InternshipID: "intern-1", Score: 0.9},
		{InternshipID: "gone", Score: 0.8},
	}}
	catalog := &fakeCatalog{items: map[string]internships.Internship{
		"intern-1": {ID: "intern-1", Title: "Backend Intern"},
	}}

	svc := NewService(mlStub, catalog, nil)
	results, err := svc.Recommend(context.Background(), ml.ProfileRequest{Skills: []string{"Go"}})
	require.NoError(t, err)

	require.Len(t, results, 1)
	assert.Equal(t, "intern-1", results[0].ID)
}

func TestRecommendUpstreamFailure(t *testing.T) {
	mlStub := &fakeRecommender{err: errors.New("ml service down")}
	svc := NewService(mlStub, &fakeCatalog{}, nil)

	_, err := svc.Recommend(context.Background(), ml.ProfileRequest{Skills: []string{"Go"}})
	assert.Error(t, err)
}

func TestRecommendPrefersSnapshotCache(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer client.Close()

	cache := internships.NewCache(client)
	require.NoError(t, cache.Snapshot(context.Background(), []internships.Internship{
		{ID: "intern-1", Title: "Cached Intern", Company: "Acme"},
	}))

	mlStub := &fakeRecommender{recs: []ml.Recommendation{{InternshipID: "intern-1", Score: 0.9}}}
	catalog := &fakeCatalog{}

	svc := NewService(mlStub, catalog, cache)
	results, err := svc.Recommend(context.Background(), ml.ProfileRequest{Skills: []string{"Go"}})
	require.NoError(t, err)

	require.Len(t, results, 1)
	assert.Equal(t, "Cached Intern", results[0].Title)
	assert.Zero(t, catalog.calls)
}
