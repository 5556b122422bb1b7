package internships

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	catalogKeyPrefix = "catalog:internship:" // catalog:internship:{id}
	catalogTTL       = 48 * time.Hour
)

// Cache is a Redis snapshot of the catalog, refreshed nightly. Recommendation
// enrichment reads here first to avoid a Realtime Database round trip per hit.
type Cache struct {
	client *redis.Client
}

// NewCache creates a new catalog cache. client may be nil (cache disabled).
func NewCache(client *redis.Client) *Cache {
	return &Cache{client: client}
}

// Snapshot writes every entry in one pipeline.
func (c *Cache) Snapshot(ctx context.Context, items []Internship) error {
	if c.client == nil {
		return nil
	}

	pipe := c.client.Pipeline()
	for _, in := range items {
		data, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("marshal internship %s: %w", in.ID, err)
		}
		pipe.Set(ctx, catalogKeyPrefix+in.ID, data, catalogTTL)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("snapshot catalog: %w", err)
	}
	return nil
}

// Get returns the cached entry, or (nil, nil) on a miss.
func (c *Cache) Get(ctx context.Context, id string) (*Internship, error) {
	if c.client == nil {
		return nil, nil
	}

	data, err := c.client.Get(ctx, catalogKeyPrefix+id).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get cached internship: %w", err)
	}

	var in Internship
	if err := json.Unmarshal([]byte(data), &in); err != nil {
		return nil, fmt.Errorf("decode cached internship: %w", err)
	}
	return &in, nil
}
