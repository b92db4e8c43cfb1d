package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"hospital-records/internal/domain/entity"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const (
	RedisDashboardKeyPrefix = "analytics:dashboard:"
	RedisGenerationKey      = "analytics:dashboard:generation"

	// Timeout for individual Redis operations
	redisCacheTimeout = 2 * time.Second
)

// AnalyticsCache holds the last assembled dashboard. Implementations never
// return errors: a cache that cannot be reached behaves like an empty one.
//
// Snapshots are stored per generation. Invalidate starts a new generation,
// so a dashboard loaded before a write and stored after it is never served.
type AnalyticsCache interface {
	// Get returns the cached dashboard, if any, and the generation it was
	// looked up under. Pass that generation to Set after a miss.
	Get(ctx context.Context) (dashboard *entity.Dashboard, generation int64, ok bool)
	Set(ctx context.Context, generation int64, dashboard *entity.Dashboard)
	Invalidate(ctx context.Context)
}

// NewAnalyticsCache returns a Redis backed cache, or a no-op cache when
// Redis is not configured or ttl is zero.
func NewAnalyticsCache(redisClient *redis.Client, ttl time.Duration, log *logrus.Logger) AnalyticsCache {
	if redisClient == nil || ttl <= 0 {
		return noopAnalyticsCache{}
	}
	return &redisAnalyticsCache{
		redisClient: redisClient,
		ttl:         ttl,
		log:         log,
	}
}

// unknownGeneration is handed out when the generation could not be read;
// Set ignores it.
const unknownGeneration int64 = -1

type redisAnalyticsCache struct {
	redisClient *redis.Client
	ttl         time.Duration
	log         *logrus.Logger
}

func dashboardKey(generation int64) string {
	return fmt.Sprintf("%s%d", RedisDashboardKeyPrefix, generation)
}

func (c *redisAnalyticsCache) Get(ctx context.Context) (*entity.Dashboard, int64, bool) {
	ctx, cancel := context.WithTimeout(ctx, redisCacheTimeout)
	defer cancel()

	generation, err := c.redisClient.Get(ctx, RedisGenerationKey).Int64()
	if errors.Is(err, redis.Nil) {
		generation = 0
	} else if err != nil {
		c.log.Warnf("Failed to read dashboard cache generation (non-fatal): %+v", err)
		return nil, unknownGeneration, false
	}

	raw, err := c.redisClient.Get(ctx, dashboardKey(generation)).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.log.Warnf("Failed to read cached dashboard (non-fatal): %+v", err)
		}
		return nil, generation, false
	}

	var dashboard entity.Dashboard
	if err := json.Unmarshal(raw, &dashboard); err != nil {
		c.log.Warnf("Discarding undecodable cached dashboard: %+v", err)
		return nil, generation, false
	}
	return &dashboard, generation, true
}

func (c *redisAnalyticsCache) Set(ctx context.Context, generation int64, dashboard *entity.Dashboard) {
	if generation == unknownGeneration {
		return
	}

	raw, err := json.Marshal(dashboard)
	if err != nil {
		c.log.Warnf("Failed to encode dashboard for cache: %+v", err)
		return
	}

	ctx, cancel := context.WithTimeout(ctx, redisCacheTimeout)
	defer cancel()

	if err := c.redisClient.Set(ctx, dashboardKey(generation), raw, c.ttl).Err(); err != nil {
		c.log.Warnf("Failed to cache dashboard (non-fatal): %+v", err)
	}
}

// Invalidate bumps the generation. Snapshots of older generations are left
// to expire with their TTL.
func (c *redisAnalyticsCache) Invalidate(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, redisCacheTimeout)
	defer cancel()

	if err := c.redisClient.Incr(ctx, RedisGenerationKey).Err(); err != nil {
		c.log.Warnf("Failed to invalidate cached dashboard (non-fatal): %+v", err)
	}
}

type noopAnalyticsCache struct{}

func (noopAnalyticsCache) Get(context.Context) (*entity.Dashboard, int64, bool) { return nil, 0, false }
func (noopAnalyticsCache) Set(context.Context, int64, *entity.Dashboard)        {}
func (noopAnalyticsCache) Invalidate(context.Context)                           {}
