package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/toruasakawa/short-video-generator-clean/application/ports/inbound"
	"github.com/toruasakawa/short-video-generator-clean/application/ports/outbound"
	"github.com/toruasakawa/short-video-generator-clean/domain"
)

type jobDispatcher struct {
	logger       outbound.LoggerPort
	jobStore     outbound.JobStorePort
	orchestrator inbound.PipelineOrchestratorPort
	workerPool   outbound.TaskDispatcher
}

func NewJobDispatcher(logger outbound.LoggerPort, jobStore outbound.JobStorePort,
	orchestrator inbound.PipelineOrchestratorPort, workerPool outbound.TaskDispatcher) inbound.JobDispatcherPort {
	return &jobDispatcher{
		logger:       logger,
		jobStore:     jobStore,
		orchestrator: orchestrator,
		workerPool:   workerPool,
	}
}

// Submit persists a pending job and schedules its pipeline on the worker
// pool. The pipeline runs on a background context because the job outlives
// the originating request. No deduplication: identical submissions run as
// independent jobs.
func (d *jobDispatcher) Submit(ctx context.Context, params inbound.SubmitJobParams) (string, error) {
	if _, ok := domain.StyleByID(params.Style); !ok {
		return "", fmt.Errorf("%w: %q", domain.ErrUnknownStyle, params.Style)
	}

	userID := params.UserID
	if userID == "" {
		userID = "anonymous"
	}

	job := domain.Job{
		ID:            uuid.NewString(),
		UserID:        userID,
		Topic:         params.Topic,
		Style:         params.Style,
		Speaker:       params.Speaker,
		EnablePreview: params.EnablePreview,
		Status:        domain.JobPending,
		CreatedAt:     time.Now().UTC(),
	}

	if err := d.jobStore.Create(ctx, job); err != nil {
		d.logger.Error(err, "failed to persist pending job")
		return "", err
	}

	err := d.workerPool.Submit(func() {
		d.orchestrator.Run(context.Background(), job)
	})
	if err != nil {
		d.logger.Error(err, "failed to schedule pipeline")
		if markErr := d.jobStore.MarkFailed(ctx, job.ID, "failed to schedule pipeline", nil); markErr != nil {
			d.logger.Error(markErr, "failed to mark unscheduled job failed")
		}
		return "", err
	}

	return job.ID, nil
}
