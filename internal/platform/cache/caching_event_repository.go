// Package cache provides caching decorators for repository interfaces.
package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"tradetracker/internal/feature/calendar/domain/entity"
	"tradetracker/internal/feature/calendar/usecase"
)

// CachingEventRepository decorates an EventRepository with Redis caching.
// The upstream feed updates on a slow cadence, so a short TTL shields it
// from per-request traffic without serving stale releases for long.
type CachingEventRepository struct {
	inner     usecase.EventRepository
	rdb       *redis.Client
	ttl       time.Duration
	namespace string
}

// Compile-time check that the decorator still satisfies the interface.
var _ usecase.EventRepository = (*CachingEventRepository)(nil)

// NewCachingEventRepository decorates an EventRepository with Redis
// caching. If ttl is 0, it defaults to 5 minutes. If namespace is empty,
// it uses "calendar".
func NewCachingEventRepository(rdb *redis.Client, ttl time.Duration, inner usecase.EventRepository, namespace string) *CachingEventRepository {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	if namespace == "" {
		namespace = "calendar"
	}
	return &CachingEventRepository{
		inner:     inner,
		rdb:       rdb,
		ttl:       ttl,
		namespace: namespace,
	}
}

// Events retrieves events, checking cache first then falling back to the
// upstream feed.
func (c *CachingEventRepository) Events(ctx context.Context) ([]entity.Event, error) {
	// Bypass cache if Redis is not configured
	if c.rdb == nil {
		return c.inner.Events(ctx)
	}

	key := c.namespace + ":events"

	// 1) Check cache
	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		var out []entity.Event
		if err := json.Unmarshal(b, &out); err == nil {
			return out, nil
		}
		// Delete corrupted cache entry
		_ = c.rdb.Del(ctx, key).Err()
	}

	// 2) Fallback to upstream
	out, err := c.inner.Events(ctx)
	if err != nil {
		return nil, err
	}

	// 3) Store in cache (best effort)
	if b, err := json.Marshal(out); err == nil {
		_ = c.rdb.Set(ctx, key, b, c.ttl).Err()
	}

	return out, nil
}
