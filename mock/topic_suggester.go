package mock_generator

import (
	"context"
	"fmt"

	"github.com/toruasakawa/short-video-generator-clean/application/ports/outbound"
	"github.com/toruasakawa/short-video-generator-clean/domain"
)

type topicSuggester struct{}

func NewTopicSuggester() outbound.TopicSuggesterPort {
	return &topicSuggester{}
}

func (t *topicSuggester) Suggest(_ context.Context, theme string) ([]domain.TopicSuggestion, error) {
	suggestions := make([]domain.TopicSuggestion, 0, 5)
	for i := 1; i <= 5; i++ {
		suggestions = append(suggestions, domain.TopicSuggestion{
			Title:          fmt.Sprintf("Top %d picks about %s", i+2, theme),
			Description:    "mock suggestion for local development",
			EstimatedViews: "10k-50k",
		})
	}
	return suggestions, nil
}
