package internships

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"
)

// Scheduler refreshes the Redis catalog snapshot nightly so lookups stay warm
// without hitting the Realtime Database.
type Scheduler struct {
	repo  *Repo
	cache *Cache
}

func NewScheduler(repo *Repo, cache *Cache) *Scheduler {
	return &Scheduler{repo: repo, cache: cache}
}

// Start initializes the cron tasks and takes one snapshot immediately.
func (s *Scheduler) Start() {
	c := cron.New(cron.WithSeconds())

	// 12:00 AM
	_, err := c.AddFunc("0 0 0 * * *", s.refresh)
	if err != nil {
		log.Printf("Failed to create cron job: %v", err)
		return
	}

	log.Println("Catalog snapshot scheduler started (running nightly at 12:00AM)")
	c.Start()

	go s.refresh()
}

func (s *Scheduler) refresh() {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	items, err := s.repo.List(ctx)
	if err != nil {
		log.Printf("Catalog snapshot failed: %v", err)
		return
	}

	if err := s.cache.Snapshot(ctx, items); err != nil {
		log.Printf("Catalog snapshot failed: %v", err)
		return
	}

	log.Printf("Catalog snapshot completed: %d internships at %s", len(items), time.Now().Format(time.RFC1123))
}
