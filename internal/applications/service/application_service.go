package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/InternFinder-SIH/internfinder-backend/internal/applications/domain"
)

const (
	statsKeyPrefix = "apps:stats:" // cached per-user stats: apps:stats:{user_id}
	statsTTL       = time.Minute
)

// RecordStore is the persistence contract the lifecycle service needs. Any
// store with insert-with-generated-id, equality queries and atomic multi-doc
// delete satisfies it; production uses the Firestore repository.
type RecordStore interface {
	Create(ctx context.Context, rec *domain.ApplicationRecord) (*domain.ApplicationRecord, error)
	ListByUser(ctx context.Context, userID string) ([]domain.ApplicationRecord, error)
	DeleteWhere(ctx context.Context, userID, internshipID string, status domain.Status) (int, error)
}

// ApplicationService enforces the status rules and derives aggregate stats.
// It is stateless; all state lives in the store. The Redis cache is optional
// and only shortcuts Stats.
type ApplicationService struct {
	store RecordStore
	cache *redis.Client
}

// NewApplicationService creates a new ApplicationService. cache may be nil.
func NewApplicationService(store RecordStore, cache *redis.Client) *ApplicationService {
	return &ApplicationService{store: store, cache: cache}
}

// ApplyInput carries the fields accepted by Apply. Status is optional and
// defaults to Applied; posting Saved is how a bookmark-only record is made.
type ApplyInput struct {
	UserID       string
	InternshipID string
	Title        string
	Company      string
	Location     string
	Stipend      string
	Status       domain.Status
}

// Apply creates a new application record. Repeat applies for the same pair
// intentionally create distinct records; no uniqueness is enforced.
func (s *ApplicationService) Apply(ctx context.Context, in ApplyInput) (*domain.ApplicationRecord, error) {
	if strings.TrimSpace(in.UserID) == "" || strings.TrimSpace(in.InternshipID) == "" {
		return nil, domain.ErrMissingIDs
	}

	status := in.Status
	if status == "" {
		status = domain.StatusApplied
	}
	if !status.Valid() {
		return nil, domain.ErrInvalidStatus
	}

	now := time.Now().UTC()
	rec := &domain.ApplicationRecord{
		UserID:       in.UserID,
		InternshipID: in.InternshipID,
		Title:        in.Title,
		Company:      in.Company,
		Location:     in.Location,
		Stipend:      in.Stipend,
		Status:       status,
		AppliedOn:    now,
		UpdatedAt:    now,
	}

	created, err := s.store.Create(ctx, rec)
	if err != nil {
		return nil, fmt.Errorf("create application: %w", err)
	}

	s.invalidateStats(ctx, in.UserID)
	return created, nil
}

// Unsave deletes the user's Saved record for the internship. No matching
// Saved record is an error, so a double-unsave is observable as not found.
func (s *ApplicationService) Unsave(ctx context.Context, userID, internshipID string) error {
	if strings.TrimSpace(userID) == "" || strings.TrimSpace(internshipID) == "" {
		return domain.ErrMissingIDs
	}

	if _, err := s.store.DeleteWhere(ctx, userID, internshipID, domain.StatusSaved); err != nil {
		return err
	}

	s.invalidateStats(ctx, userID)
	return nil
}

// ListByUser returns all of the user's application records.
func (s *ApplicationService) ListByUser(ctx context.Context, userID string) ([]domain.ApplicationRecord, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, domain.ErrMissingIDs
	}
	return s.store.ListByUser(ctx, userID)
}

// Stats partitions the user's records into the dashboard counters. Statuses
// outside the enum count toward nothing. Results are cached briefly per user.
func (s *ApplicationService) Stats(ctx context.Context, userID string) (*domain.Stats, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, domain.ErrMissingIDs
	}

	if cached := s.cachedStats(ctx, userID); cached != nil {
		return cached, nil
	}

	records, err := s.store.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	stats := &domain.Stats{}
	for _, rec := range records {
		switch rec.Status {
		case domain.StatusApplied, domain.StatusInReview:
			stats.Active++
		case domain.StatusSaved:
			stats.Saved++
		case domain.StatusInterview:
			stats.Interviews++
		}
	}

	s.cacheStats(ctx, userID, stats)
	return stats, nil
}

func (s *ApplicationService) cachedStats(ctx context.Context, userID string) *domain.Stats {
	if s.cache == nil {
		return nil
	}
	data, err := s.cache.Get(ctx, statsKeyPrefix+userID).Result()
	if err != nil {
		if err != redis.Nil {
			log.Printf("stats cache get failed for user %s: %v", userID, err)
		}
		return nil
	}
	var stats domain.Stats
	if err := json.Unmarshal([]byte(data), &stats); err != nil {
		return nil
	}
	return &stats
}

func (s *ApplicationService) cacheStats(ctx context.Context, userID string, stats *domain.Stats) {
	if s.cache == nil {
		return
	}
	data, err := json.Marshal(stats)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, statsKeyPrefix+userID, data, statsTTL).Err(); err != nil {
		log.Printf("stats cache set failed for user %s: %v", userID, err)
	}
}

func (s *ApplicationService) invalidateStats(ctx context.Context, userID string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Del(ctx, statsKeyPrefix+userID).Err(); err != nil {
		log.Printf("stats cache invalidate failed for user %s: %v", userID, err)
	}
}
