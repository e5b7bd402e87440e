package adapters

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/toruasakawa/short-video-generator-clean/domain"
)

func newTestProgressCache(t *testing.T) *redisProgressCache {
	t.Helper()
	url := os.Getenv("REDIS_URL")
	if url == "" {
		t.Skip("REDIS_URL not set")
	}
	options, err := redis.ParseURL(url)
	if err != nil {
		t.Fatal("Failed to parse redis url:", err)
	}
	client := redis.NewClient(options)
	t.Cleanup(func() { client.Close() })

	cache := NewRedisProgressCache(client, time.Minute, NewZerologWrapper()).(*redisProgressCache)
	if err := cache.Ping(context.Background()); err != nil {
		t.Skip("redis not reachable:", err)
	}
	return cache
}

func TestRedisProgressCache_RoundTrip(t *testing.T) {
	cache := newTestProgressCache(t)
	ctx := context.Background()

	if err := cache.Put(ctx, "test-job", domain.Progress{Percent: 30, Step: "script ready"}); err != nil {
		t.Fatal("Failed to put progress:", err)
	}

	snapshot, err := cache.Get(ctx, "test-job")
	if err != nil {
		t.Fatal("Failed to get progress:", err)
	}
	if snapshot == nil || snapshot.Percent != 30 || snapshot.Step != "script ready" {
		t.Fatalf("unexpected snapshot %+v", snapshot)
	}
}

func TestRedisProgressCache_MissingKey(t *testing.T) {
	cache := newTestProgressCache(t)

	snapshot, err := cache.Get(context.Background(), "never-written")
	if err != nil {
		t.Fatal("Failed to get progress:", err)
	}
	if snapshot != nil {
		t.Fatalf("expected nil for a missing key, got %+v", snapshot)
	}
}
