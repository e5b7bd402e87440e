package dto

type GenerateVideoRequest struct {
	Topic         string `json:"topic" binding:"required"`
	Style         string `json:"style" binding:"required"`
	SpeakerID     int    `json:"speaker_id"`
	EnablePreview bool   `json:"enable_preview"`
	UserID        string `json:"user_id"`
}

type GenerateVideoResponse struct {
	GenerationID  string `json:"generation_id"`
	Status        string `json:"status"`
	EstimatedTime int    `json:"estimated_time"`
}
