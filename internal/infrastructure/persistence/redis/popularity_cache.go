// Package redis implements the optional Redis popularity cache. It mirrors
// gallery popularity scores in a sorted set so the popular query can rank
// without scanning the gallery. The in-memory gallery stays authoritative;
// cache failures are logged and ignored.
package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/cityspark/cityspark-hub/pkg/logger"
)

// keyPopularity is the sorted set holding artID -> popularity score.
const keyPopularity = "gallery:popularity"

// Config holds Redis connection configuration.
type Config struct {
	Addr     string
	Password string
	DB       int

	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	return Config{
		Addr:         "localhost:6379",
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	}
}

// PopularityCache maintains the popularity sorted set.
type PopularityCache struct {
	client *redis.Client
	log    *logger.Logger
}

// NewPopularityCache connects to Redis and verifies the connection.
func NewPopularityCache(ctx context.Context, cfg Config, log *logger.Logger) (*PopularityCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  cfg.DialTimeout,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis: ping failed: %w", err)
	}

	if log == nil {
		log = logger.Default()
	}

	return &PopularityCache{
		client: client,
		log:    log.With(logger.Component("popularity_cache")),
	}, nil
}

// UpdateScore writes the current popularity score for a piece. O(log N).
func (c *PopularityCache) UpdateScore(ctx context.Context, artID string, score float64) error {
	err := c.client.ZAdd(ctx, keyPopularity, redis.Z{
		Score:  score,
		Member: artID,
	}).Err()
	if err != nil {
		return fmt.Errorf("redis: update score: %w", err)
	}
	return nil
}

// TopIDs returns up to limit art IDs ordered by popularity descending.
func (c *PopularityCache) TopIDs(ctx context.Context, limit int) ([]string, error) {
	if limit <= 0 {
		limit = 10
	}

	ids, err := c.client.ZRevRange(ctx, keyPopularity, 0, int64(limit-1)).Result()
	if err != nil {
		return nil, fmt.Errorf("redis: top ids: %w", err)
	}
	return ids, nil
}

// Remove deletes a piece from the popularity set.
func (c *PopularityCache) Remove(ctx context.Context, artID string) error {
	if err := c.client.ZRem(ctx, keyPopularity, artID).Err(); err != nil {
		return fmt.Errorf("redis: remove: %w", err)
	}
	return nil
}

// Size returns the number of tracked pieces.
func (c *PopularityCache) Size(ctx context.Context) (int64, error) {
	n, err := c.client.ZCard(ctx, keyPopularity).Result()
	if err != nil {
		return 0, fmt.Errorf("redis: size: %w", err)
	}
	return n, nil
}

// Ping checks the Redis connection.
func (c *PopularityCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

// Close closes the Redis client.
func (c *PopularityCache) Close() error {
	return c.client.Close()
}
