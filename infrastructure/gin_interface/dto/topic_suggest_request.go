package dto

import "github.com/toruasakawa/short-video-generator-clean/domain"

type TopicSuggestRequest struct {
	Theme string `json:"theme" binding:"required"`
}

type TopicSuggestResponse struct {
	Theme       string                   `json:"theme"`
	Suggestions []domain.TopicSuggestion `json:"suggestions"`
}
