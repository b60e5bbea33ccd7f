// Package cache holds the advisory Redis cache for availability reads.
// Cached lists are never authoritative: booking always re-validates against
// the database, so a stale entry can only cost a client one 409.
package cache

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/go-redis/redis/v8"
)

const availabilityTTL = 30 * time.Second

const (
	datesKey       = "availability:dates"
	slotsKeyPrefix = "availability:slots:"
)

type Availability struct {
	rdb *redis.Client
}

// New pings addr and returns the cache, or nil when addr is empty or Redis is
// unreachable. A nil *Availability is valid and always misses.
func New(addr, password string) *Availability {
	if addr == "" {
		return nil
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Printf("redis unreachable at %s, availability cache disabled: %v", addr, err)
		return nil
	}

	return &Availability{rdb: rdb}
}

func (c *Availability) GetDates(ctx context.Context) ([]string, bool) {
	return c.get(ctx, datesKey)
}

func (c *Availability) SetDates(ctx context.Context, dates []string) {
	c.set(ctx, datesKey, dates)
}

func (c *Availability) GetSlots(ctx context.Context, date string) ([]string, bool) {
	return c.get(ctx, slotsKeyPrefix+date)
}

func (c *Availability) SetSlots(ctx context.Context, date string, slots []string) {
	c.set(ctx, slotsKeyPrefix+date, slots)
}

// Invalidate drops the cached lists touched by a mutation on date.
func (c *Availability) Invalidate(ctx context.Context, date string) {
	if c == nil {
		return
	}
	if err := c.rdb.Del(ctx, datesKey, slotsKeyPrefix+date).Err(); err != nil {
		log.Printf("cache invalidate failed: %v", err)
	}
}

func (c *Availability) get(ctx context.Context, key string) ([]string, bool) {
	if c == nil {
		return nil, false
	}
	raw, err := c.rdb.Get(ctx, key).Result()
	if err != nil {
		if err != redis.Nil {
			log.Printf("cache read failed: %v", err)
		}
		return nil, false
	}

	var values []string
	if err := json.Unmarshal([]byte(raw), &values); err != nil {
		return nil, false
	}
	return values, true
}

func (c *Availability) set(ctx context.Context, key string, values []string) {
	if c == nil {
		return
	}
	raw, err := json.Marshal(values)
	if err != nil {
		return
	}
	if err := c.rdb.Set(ctx, key, raw, availabilityTTL).Err(); err != nil {
		log.Printf("cache write failed: %v", err)
	}
}
