package inbound

import "context"

type SubmitJobParams struct {
	Topic         string
	Style         string
	Speaker       int
	EnablePreview bool
	UserID        string
}

// JobDispatcherPort accepts a job, persists it as pending and schedules the
// pipeline in the background. It returns the fresh job id without waiting
// for any pipeline stage.
type JobDispatcherPort interface {
	Submit(ctx context.Context, params SubmitJobParams) (string, error)
}
