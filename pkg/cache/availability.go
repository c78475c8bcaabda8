package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"hotel-booking/pkg/utils"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const generationKey = "availability:generation"

// AvailabilityCache keeps room search results in redis for a short TTL.
// Every ledger mutation bumps a generation counter that is part of the
// cache key, so searches after a booking never see stale availability.
// The cache is optional: with no redis address it is disabled and every
// lookup is a miss.
type AvailabilityCache struct {
	rdb *redis.Client
	ttl time.Duration
	log *zap.Logger
}

func NewAvailabilityCache(config utils.RedisConfig, log *zap.Logger) *AvailabilityCache {
	log = log.With(zap.String("component", "availability_cache"))

	cache := &AvailabilityCache{
		ttl: time.Duration(config.TTLSeconds) * time.Second,
		log: log,
	}

	if config.Addr == "" {
		log.Info("Availability cache disabled, no redis address configured")
		return cache
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     config.Addr,
		Password: config.Password,
		DB:       config.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Warn("Redis unreachable, availability cache disabled", zap.Error(err))
		return cache
	}

	cache.rdb = rdb
	log.Info("Availability cache connected", zap.String("addr", config.Addr))
	return cache
}

func (c *AvailabilityCache) Enabled() bool {
	return c.rdb != nil
}

// GetSearch reads a cached search result into target and reports whether
// it was a hit. Redis errors count as misses so a broken cache never
// breaks the request path.
func (c *AvailabilityCache) GetSearch(ctx context.Context, checkIn, checkOut, category string, target interface{}) bool {
	if c.rdb == nil {
		return false
	}

	cachedData, err := c.rdb.Get(ctx, c.searchKey(ctx, checkIn, checkOut, category)).Result()
	if err == redis.Nil {
		return false
	}
	if err != nil {
		c.log.Warn("Failed to read availability cache", zap.Error(err))
		return false
	}

	if err := json.Unmarshal([]byte(cachedData), target); err != nil {
		c.log.Warn("Failed to decode cached availability", zap.Error(err))
		return false
	}

	return true
}

func (c *AvailabilityCache) SetSearch(ctx context.Context, checkIn, checkOut, category string, value interface{}) {
	if c.rdb == nil {
		return
	}

	dataJSON, err := json.Marshal(value)
	if err != nil {
		c.log.Warn("Failed to encode availability for cache", zap.Error(err))
		return
	}

	if err := c.rdb.Set(ctx, c.searchKey(ctx, checkIn, checkOut, category), dataJSON, c.ttl).Err(); err != nil {
		c.log.Warn("Failed to write availability cache", zap.Error(err))
	}
}

// Invalidate bumps the generation counter. Entries written under older
// generations become unreachable and fall out by TTL.
func (c *AvailabilityCache) Invalidate(ctx context.Context) {
	if c.rdb == nil {
		return
	}

	if err := c.rdb.Incr(ctx, generationKey).Err(); err != nil {
		c.log.Warn("Failed to bump availability generation", zap.Error(err))
	}
}

func (c *AvailabilityCache) searchKey(ctx context.Context, checkIn, checkOut, category string) string {
	generation, err := c.rdb.Get(ctx, generationKey).Int64()
	if err != nil && err != redis.Nil {
		c.log.Warn("Failed to read availability generation", zap.Error(err))
	}
	return fmt.Sprintf("availability:%d:%s:%s:%s", generation, checkIn, checkOut, category)
}
