package services

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/toruasakawa/short-video-generator-clean/application/ports/inbound"
	"github.com/toruasakawa/short-video-generator-clean/application/ports/outbound"
	"github.com/toruasakawa/short-video-generator-clean/domain"
)

const historyLimit = 20

type jobQuery struct {
	logger        outbound.LoggerPort
	jobStore      outbound.JobStorePort
	progressCache outbound.ProgressCachePort
}

func NewJobQuery(logger outbound.LoggerPort, jobStore outbound.JobStorePort,
	progressCache outbound.ProgressCachePort) inbound.JobQueryPort {
	return &jobQuery{
		logger:        logger,
		jobStore:      jobStore,
		progressCache: progressCache,
	}
}

// Status merges the authoritative store record with the advisory cache
// snapshot. A missing or expired snapshot falls back to a coarse percent
// derived from the status alone.
func (q *jobQuery) Status(ctx context.Context, jobID string) (*domain.JobStatusView, error) {
	job, err := q.jobStore.Get(ctx, jobID)
	if err != nil {
		return nil, err
	}

	view := &domain.JobStatusView{
		JobID:       job.ID,
		Status:      job.Status,
		ErrorDetail: job.ErrorDetail,
	}

	switch {
	case job.Status.Terminal():
		view.Percent = 100
		view.Step = string(job.Status)
		view.SceneOutcomes = job.SceneOutcomes
		if job.Status == domain.JobCompleted {
			view.ResultURL = downloadURL(job.ID)
		}
	case job.Status == domain.JobPending:
		view.Percent = 0
		view.Step = "waiting"
	default:
		view.Percent = 10
		view.Step = "preparing"
	}

	if !job.Status.Terminal() {
		snapshot, cacheErr := q.progressCache.Get(ctx, jobID)
		if cacheErr != nil {
			q.logger.WarnWithFields("progress cache read failed", map[string]interface{}{
				"job_id": jobID,
				"error":  cacheErr.Error(),
			})
		} else if snapshot != nil {
			view.Percent = snapshot.Percent
			view.Step = snapshot.Step
		}
	}

	return view, nil
}

// Download resolves the result file for a completed job. Anything else,
// including a completed job whose file has since disappeared, is reported as
// not found.
func (q *jobQuery) Download(ctx context.Context, jobID string) (*inbound.DownloadInfo, error) {
	job, err := q.jobStore.Get(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if job.Status != domain.JobCompleted || job.ResultPath == "" {
		return nil, domain.ErrNotFound
	}
	if _, err := os.Stat(job.ResultPath); err != nil {
		q.logger.WarnWithFields("result file missing on disk", map[string]interface{}{
			"job_id": jobID,
			"path":   job.ResultPath,
		})
		return nil, domain.ErrNotFound
	}

	return &inbound.DownloadInfo{
		Path:     job.ResultPath,
		Filename: strings.ReplaceAll(job.Topic, " ", "_") + ".mp4",
	}, nil
}

func (q *jobQuery) History(ctx context.Context, userID string) ([]domain.JobSummary, error) {
	jobs, err := q.jobStore.ListByUser(ctx, userID, historyLimit)
	if err != nil {
		return nil, err
	}

	summaries := make([]domain.JobSummary, 0, len(jobs))
	for _, job := range jobs {
		summary := domain.JobSummary{
			ID:        job.ID,
			Topic:     job.Topic,
			Style:     job.Style,
			Status:    job.Status,
			CreatedAt: job.CreatedAt,
		}
		if job.Status == domain.JobCompleted {
			summary.DownloadURL = downloadURL(job.ID)
		}
		summaries = append(summaries, summary)
	}
	return summaries, nil
}

func downloadURL(jobID string) string {
	return fmt.Sprintf("/api/video/download/%s", jobID)
}
