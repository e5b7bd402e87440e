package dto

import (
	"time"

	"github.com/toruasakawa/short-video-generator-clean/domain"
)

type HistoryEntryResponse struct {
	GenerationID string    `json:"generation_id"`
	Topic        string    `json:"topic"`
	Style        string    `json:"style"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
	DownloadURL  string    `json:"download_url,omitempty"`
}

type HistoryResponse struct {
	UserID  string                 `json:"user_id"`
	History []HistoryEntryResponse `json:"history"`
}

func NewHistoryResponse(userID string, summaries []domain.JobSummary) HistoryResponse {
	res := HistoryResponse{
		UserID:  userID,
		History: make([]HistoryEntryResponse, 0, len(summaries)),
	}
	for _, summary := range summaries {
		res.History = append(res.History, HistoryEntryResponse{
			GenerationID: summary.ID,
			Topic:        summary.Topic,
			Style:        summary.Style,
			Status:       string(summary.Status),
			CreatedAt:    summary.CreatedAt,
			DownloadURL:  summary.DownloadURL,
		})
	}
	return res
}
