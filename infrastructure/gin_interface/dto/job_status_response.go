package dto

import "github.com/toruasakawa/short-video-generator-clean/domain"

type SceneOutcomeResponse struct {
	Index    int    `json:"index"`
	Included bool   `json:"included"`
	Reason   string `json:"reason,omitempty"`
}

type JobStatusResponse struct {
	GenerationID  string                 `json:"generation_id"`
	Status        string                 `json:"status"`
	Progress      int                    `json:"progress"`
	CurrentStep   string                 `json:"current_step"`
	ResultURL     string                 `json:"result_url,omitempty"`
	ErrorDetail   string                 `json:"error_detail,omitempty"`
	SceneOutcomes []SceneOutcomeResponse `json:"scene_outcomes,omitempty"`
}

func NewJobStatusResponse(view *domain.JobStatusView) JobStatusResponse {
	res := JobStatusResponse{
		GenerationID: view.JobID,
		Status:       string(view.Status),
		Progress:     view.Percent,
		CurrentStep:  view.Step,
		ResultURL:    view.ResultURL,
		ErrorDetail:  view.ErrorDetail,
	}
	for _, outcome := range view.SceneOutcomes {
		res.SceneOutcomes = append(res.SceneOutcomes, SceneOutcomeResponse{
			Index:    outcome.Index,
			Included: outcome.Included,
			Reason:   outcome.Reason,
		})
	}
	return res
}
