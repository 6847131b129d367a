package calendar

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"turnero/internal/logger"
	"turnero/internal/metrics"
	"turnero/internal/slot"

	"github.com/redis/go-redis/v9"
)

// DefaultCacheTTL keeps range reads fresh enough for an eventually-consistent
// calendar while absorbing polling bursts.
const DefaultCacheTTL = 30 * time.Second

// Cache is a read-through cache of raw slot ranges. Scoping happens after the
// cache, so one cached range serves every caller role.
type Cache struct {
	client redis.Cmdable
	ttl    time.Duration
}

func NewCache(client redis.Cmdable, ttl time.Duration) *Cache {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &Cache{client: client, ttl: ttl}
}

func rangeKey(from, to time.Time) string {
	return fmt.Sprintf("calendar:range:%d:%d", from.Unix(), to.Unix())
}

func (c *Cache) GetRange(ctx context.Context, from, to time.Time) ([]slot.Slot, bool) {
	data, err := c.client.Get(ctx, rangeKey(from, to)).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			logger.Errorf("Calendar cache read failed: %v", err)
		}
		metrics.RecordCalendarCache("miss")
		return nil, false
	}

	var slots []slot.Slot
	if err := json.Unmarshal(data, &slots); err != nil {
		metrics.RecordCalendarCache("miss")
		return nil, false
	}

	metrics.RecordCalendarCache("hit")
	return slots, true
}

func (c *Cache) SetRange(ctx context.Context, from, to time.Time, slots []slot.Slot) {
	data, err := json.Marshal(slots)
	if err != nil {
		return
	}

	if err := c.client.Set(ctx, rangeKey(from, to), data, c.ttl).Err(); err != nil {
		logger.Errorf("Calendar cache write failed: %v", err)
	}
}

// Invalidate drops every cached range. The slot service calls it after week
// generation and ad-hoc creation so new inventory is visible immediately.
func (c *Cache) Invalidate(ctx context.Context) {
	iter := c.client.Scan(ctx, 0, "calendar:range:*", 100).Iterator()
	for iter.Next(ctx) {
		c.client.Del(ctx, iter.Val())
	}
	if err := iter.Err(); err != nil {
		logger.Errorf("Calendar cache invalidation failed: %v", err)
	}
}
