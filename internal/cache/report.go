// Package cache stores computed keyword reports in Redis so repeated scorecard views skip
// reclassification.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jonathan/resume-studio/internal/types"
	"github.com/redis/go-redis/v9"
)

// DefaultTTL bounds how long a report may be served without recomputation.
const DefaultTTL = 15 * time.Minute

// ReportCache caches keyword reports per job. Get returns (nil, nil) on a miss.
// The version string lets callers key entries on job content so edits never serve a stale
// report even if a Delete was lost.
type ReportCache interface {
	Get(ctx context.Context, jobID, version string) (*types.KeywordReport, error)
	Set(ctx context.Context, jobID, version string, report *types.KeywordReport) error
	Delete(ctx context.Context, jobID string) error
}

// RedisCache is a ReportCache backed by Redis. Each job has a single key holding the
// latest version; a version mismatch is a miss.
type RedisCache struct {
	client     redis.Cmdable
	expiration time.Duration
}

// NewRedisCache wraps an existing client.
func NewRedisCache(client redis.Cmdable, expiration time.Duration) *RedisCache {
	if expiration <= 0 {
		expiration = DefaultTTL
	}
	return &RedisCache{client: client, expiration: expiration}
}

// Connect parses a redis:// URL, pings the server and returns a RedisCache.
func Connect(ctx context.Context, redisURL string) (*RedisCache, *redis.Client, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to parse redis URL: %w", err)
	}
	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, nil, fmt.Errorf("failed to ping redis: %w", err)
	}
	return NewRedisCache(client, DefaultTTL), client, nil
}

type entry struct {
	Version string               `json:"version"`
	Report  *types.KeywordReport `json:"report"`
}

// Get returns the cached report for jobID if it was stored under version.
func (c *RedisCache) Get(ctx context.Context, jobID, version string) (*types.KeywordReport, error) {
	data, err := c.client.Get(ctx, Key(jobID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get cached report %s: %w", jobID, err)
	}

	var e entry
	if err := json.Unmarshal(data, &e); err != nil {
		return nil, fmt.Errorf("failed to decode cached report %s: %w", jobID, err)
	}
	if e.Version != version {
		return nil, nil
	}
	return e.Report, nil
}

// Set stores report for jobID under version.
func (c *RedisCache) Set(ctx context.Context, jobID, version string, report *types.KeywordReport) error {
	data, err := json.Marshal(entry{Version: version, Report: report})
	if err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	if err := c.client.Set(ctx, Key(jobID), data, c.expiration).Err(); err != nil {
		return fmt.Errorf("failed to cache report %s: %w", jobID, err)
	}
	return nil
}

// Delete drops any cached report for jobID.
func (c *RedisCache) Delete(ctx context.Context, jobID string) error {
	if err := c.client.Del(ctx, Key(jobID)).Err(); err != nil {
		return fmt.Errorf("failed to delete cached report %s: %w", jobID, err)
	}
	return nil
}

// Key returns the Redis key for a job's report.
func Key(jobID string) string {
	return "resume-studio:report:" + jobID
}

// NopCache never stores anything. It is used when Redis is not configured.
type NopCache struct{}

// Get always misses.
func (NopCache) Get(context.Context, string, string) (*types.KeywordReport, error) { return nil, nil }

// Set is a no-op.
func (NopCache) Set(context.Context, string, string, *types.KeywordReport) error { return nil }

// Delete is a no-op.
func (NopCache) Delete(context.Context, string) error { return nil }
