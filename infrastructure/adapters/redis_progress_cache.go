package adapters

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/toruasakawa/short-video-generator-clean/application/ports/outbound"
	"github.com/toruasakawa/short-video-generator-clean/domain"
)

const progressKeyPrefix = "progress:"

type redisProgressCache struct {
	client *redis.Client
	ttl    time.Duration
	logger outbound.LoggerPort
}

// NewRedisProgressCache keeps expiring in-flight snapshots keyed by job id.
// Entries are advisory; a missing key is not an error.
func NewRedisProgressCache(client *redis.Client, ttl time.Duration, logger outbound.LoggerPort) outbound.ProgressCachePort {
	return &redisProgressCache{
		client: client,
		ttl:    ttl,
		logger: logger,
	}
}

func (c *redisProgressCache) Put(ctx context.Context, jobID string, progress domain.Progress) error {
	encoded, err := json.Marshal(progress)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, progressKeyPrefix+jobID, encoded, c.ttl).Err()
}

func (c *redisProgressCache) Get(ctx context.Context, jobID string) (*domain.Progress, error) {
	raw, err := c.client.Get(ctx, progressKeyPrefix+jobID).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var progress domain.Progress
	if err := json.Unmarshal(raw, &progress); err != nil {
		return nil, fmt.Errorf("corrupt progress entry for job %s: %w", jobID, err)
	}
	return &progress, nil
}

func (c *redisProgressCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}
