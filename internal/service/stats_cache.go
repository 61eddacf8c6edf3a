package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/minhhquann88/DoAn-sub001/internal/dto"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// StatsCache holds statistics snapshots. Errors are logged and swallowed: a broken cache
// degrades to reading the database every time.
type StatsCache interface {
	Get(ctx context.Context, testID uint) (*dto.TestStatisticsDTO, bool)
	Set(ctx context.Context, stats *dto.TestStatisticsDTO)
	Invalidate(ctx context.Context, testID uint)
}

type redisStatsCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisStatsCache(client *redis.Client, ttl time.Duration) StatsCache {
	return &redisStatsCache{client: client, ttl: ttl}
}

func statsKey(testID uint) string {
	return fmt.Sprintf("assessment:stats:test:%d", testID)
}

func (c *redisStatsCache) Get(ctx context.Context, testID uint) (*dto.TestStatisticsDTO, bool) {
	raw, err := c.client.Get(ctx, statsKey(testID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false
	}
	if err != nil {
		log.Warn().Err(err).Uint("testID", testID).Msg("Stats cache read failed")
		return nil, false
	}
	var stats dto.TestStatisticsDTO
	if err := json.Unmarshal(raw, &stats); err != nil {
		log.Warn().Err(err).Uint("testID", testID).Msg("Stats cache entry is corrupt, dropping it")
		c.Invalidate(ctx, testID)
		return nil, false
	}
	return &stats, true
}

func (c *redisStatsCache) Set(ctx context.Context, stats *dto.TestStatisticsDTO) {
	raw, err := json.Marshal(stats)
	if err != nil {
		log.Warn().Err(err).Uint("testID", stats.TestID).Msg("Failed to encode stats for cache")
		return
	}
	if err := c.client.Set(ctx, statsKey(stats.TestID), raw, c.ttl).Err(); err != nil {
		log.Warn().Err(err).Uint("testID", stats.TestID).Msg("Stats cache write failed")
	}
}

func (c *redisStatsCache) Invalidate(ctx context.Context, testID uint) {
	if err := c.client.Del(ctx, statsKey(testID)).Err(); err != nil {
		log.Warn().Err(err).Uint("testID", testID).Msg("Stats cache invalidation failed")
	}
}

type noopStatsCache struct{}

// NewNoopStatsCache is used when no Redis address is configured.
func NewNoopStatsCache() StatsCache { return noopStatsCache{} }

func (noopStatsCache) Get(context.Context, uint) (*dto.TestStatisticsDTO, bool) { return nil, false }
func (noopStatsCache) Set(context.Context, *dto.TestStatisticsDTO)             {}
func (noopStatsCache) Invalidate(context.Context, uint)                        {}
