package outbound

import (
	"context"

	"github.com/toruasakawa/short-video-generator-clean/domain"
)

// ProgressCachePort holds the expiring in-flight snapshot per job. Get
// returns (nil, nil) for a missing or expired entry; callers treat that as
// "unknown, infer from job status".
type ProgressCachePort interface {
	Put(ctx context.Context, jobID string, progress domain.Progress) error
	Get(ctx context.Context, jobID string) (*domain.Progress, error)
	Ping(ctx context.Context) error
}
