package inbound

import (
	"context"

	"github.com/toruasakawa/short-video-generator-clean/domain"
)

type DownloadInfo struct {
	Path     string
	Filename string
}

// JobQueryPort answers status, download and history queries. Unknown ids and
// not-yet-ready downloads fail with domain.ErrNotFound.
type JobQueryPort interface {
	Status(ctx context.Context, jobID string) (*domain.JobStatusView, error)
	Download(ctx context.Context, jobID string) (*DownloadInfo, error)
	History(ctx context.Context, userID string) ([]domain.JobSummary, error)
}
