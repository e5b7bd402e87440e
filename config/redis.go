package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type RedisConfig struct {
	Url         string
	ProgressTtl time.Duration
}

func GetRedisConfig() (*RedisConfig, error) {
	url := os.Getenv("REDIS_URL")
	if url == "" {
		url = "redis://localhost:6379"
	}
	ttl := 5 * time.Minute
	if raw := os.Getenv("PROGRESS_TTL_SECONDS"); raw != "" {
		seconds, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("failed to parse PROGRESS_TTL_SECONDS: %w", err)
		}
		ttl = time.Duration(seconds) * time.Second
	}

	return &RedisConfig{
		Url:         url,
		ProgressTtl: ttl,
	}, nil
}
