package recommendations

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/InternFinder-SIH/internfinder-backend/internal/internships"
	"github.com/InternFinder-SIH/internfinder-backend/internal/ml"
)

// Recommender is the slice of the ML client this service consumes.
type Recommender interface {
	ProfileRecommendations(ctx context.Context, req ml.ProfileRequest) ([]ml.Recommendation, error)
}

// CatalogSource resolves internship ids to catalog entries.
type CatalogSource interface {
	Get(ctx context.Context, id string) (*internships.Internship, error)
}

// RecommendedInternship is a catalog entry with its match score attached.
type RecommendedInternship struct {
	internships.Internship
	Score float64 `json:"score"`
}

// Service asks the ML backend for scored internship ids and enriches them
// with catalog details, snapshot cache first.
type Service struct {
	ml      Recommender
	catalog CatalogSource
	cache   *internships.Cache
}

// NewService creates a new recommendation service. cache may be nil.
func NewService(mlClient Recommender, catalog CatalogSource, cache *internships.Cache) *Service {
	return &Service{ml: mlClient, catalog: catalog, cache: cache}
}

// Recommend returns enriched recommendations for the profile. Ids the catalog
// no longer knows are dropped, not errors, mirroring how the results page
// filters them out.
func (s *Service) Recommend(ctx context.Context, req ml.ProfileRequest) ([]RecommendedInternship, error) {
	recs, err := s.ml.ProfileRecommendations(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("fetch recommendations: %w", err)
	}

	out := make([]RecommendedInternship, 0, len(recs))
	for _, rec := range recs {
		in := s.lookup(ctx, rec.InternshipID)
		if in == nil {
			continue
		}
		out = append(out, RecommendedInternship{Internship: *in, Score: rec.Score})
	}
	return out, nil
}

func (s *Service) lookup(ctx context.Context, id string) *internships.Internship {
	if s.cache != nil {
		if in, err := s.cache.Get(ctx, id); err == nil && in != nil {
			return in
		}
	}

	in, err := s.catalog.Get(ctx, id)
	if err != nil {
		if !errors.Is(err, internships.ErrNotFound) {
			log.Printf("catalog lookup failed for %s: %v", id, err)
		}
		return nil
	}
	return in
}
