package outbound

import (
	"context"

	"github.com/toruasakawa/short-video-generator-clean/domain"
)

type TopicSuggesterPort interface {
	Suggest(ctx context.Context, theme string) ([]domain.TopicSuggestion, error)
}
