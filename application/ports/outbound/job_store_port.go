package outbound

import (
	"context"

	"github.com/toruasakawa/short-video-generator-clean/domain"
)

// JobStorePort is the durable record of jobs and the source of terminal
// truth. Terminal states are absorbing: Mark calls against a job that is
// already completed or failed are no-ops.
type JobStorePort interface {
	Create(ctx context.Context, job domain.Job) error
	Get(ctx context.Context, id string) (*domain.Job, error)
	MarkProcessing(ctx context.Context, id string) error
	MarkCompleted(ctx context.Context, id string, resultPath string, outcomes []domain.SceneOutcome) error
	MarkFailed(ctx context.Context, id string, detail string, outcomes []domain.SceneOutcome) error
	ListByUser(ctx context.Context, userID string, limit int) ([]domain.Job, error)
}
