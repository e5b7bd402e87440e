package inbound

import (
	"context"

	"github.com/toruasakawa/short-video-generator-clean/domain"
)

// PipelineOrchestratorPort runs one job to a terminal state. It never
// returns an error: every outcome, including internal failures, is written
// to the job store before Run returns.
type PipelineOrchestratorPort interface {
	Run(ctx context.Context, job domain.Job)
}
