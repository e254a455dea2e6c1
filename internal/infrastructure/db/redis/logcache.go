package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/cityhall/email-gateway/internal/core/domain"
)

const (
	logCacheKey = "email_logs:recent"
	logCacheTTL = 30 * time.Second
)

// LogCache caches the recent audit-log listing under a single TTL key. Every
// successful dispatch invalidates it, so staleness is bounded by logCacheTTL
// and only affects reads, never the audit store itself.
type LogCache struct {
	client *redis.Client
}

// NewLogCache creates a LogCache wrapping the given Redis client.
func NewLogCache(client *redis.Client) *LogCache {
	return &LogCache{client: client}
}

// Get returns the cached listing, or ok=false on a miss or any cache error.
func (c *LogCache) Get(ctx context.Context) ([]domain.EmailLog, bool) {
	raw, err := c.client.Get(ctx, logCacheKey).Bytes()
	if err != nil {
		return nil, false
	}

	var logs []domain.EmailLog
	if err := json.Unmarshal(raw, &logs); err != nil {
		return nil, false
	}
	return logs, true
}

// Set stores the listing (expires after logCacheTTL).
func (c *LogCache) Set(ctx context.Context, logs []domain.EmailLog) error {
	raw, err := json.Marshal(logs)
	if err != nil {
		return fmt.Errorf("encode log cache: %w", err)
	}
	return c.client.Set(ctx, logCacheKey, raw, logCacheTTL).Err()
}

// Invalidate drops the cached listing.
func (c *LogCache) Invalidate(ctx context.Context) error {
	return c.client.Del(ctx, logCacheKey).Err()
}
