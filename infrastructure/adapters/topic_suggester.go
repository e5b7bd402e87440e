package adapters

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/toruasakawa/short-video-generator-clean/application/ports/outbound"
	"github.com/toruasakawa/short-video-generator-clean/domain"
)

const suggestionTemperature = 0.8

type suggestionsPayload struct {
	Theme       string                   `json:"theme"`
	Suggestions []domain.TopicSuggestion `json:"suggestions"`
}

type topicSuggester struct {
	logger outbound.LoggerPort
	chat   ChatCompleter
}

func NewTopicSuggester(chat ChatCompleter, logger outbound.LoggerPort) outbound.TopicSuggesterPort {
	return &topicSuggester{
		logger: logger,
		chat:   chat,
	}
}

func (t *topicSuggester) Suggest(ctx context.Context, theme string) ([]domain.TopicSuggestion, error) {
	raw, err := t.chat.Complete(ctx, suggestionPrompt(theme), suggestionTemperature)
	if err != nil {
		return nil, err
	}

	payload, err := extractJSONPayload(raw)
	if err != nil {
		t.logger.WarnWithFields("suggestion output contained no json payload", map[string]interface{}{
			"theme": theme,
		})
		return nil, err
	}

	var parsed suggestionsPayload
	if err := json.Unmarshal([]byte(payload), &parsed); err != nil {
		return nil, fmt.Errorf("malformed suggestion payload: %w", err)
	}
	if len(parsed.Suggestions) == 0 {
		return nil, ErrNoJSONPayload
	}

	return parsed.Suggestions, nil
}

func suggestionPrompt(theme string) string {
	return fmt.Sprintf(`Propose five appealing short-video topics for the following theme.
Theme: %s

Conditions:
1. Use ranking formats such as "top 3 ...", "top 5 ..." or "... everyone does".
2. Make each topic something viewers would click on.
3. Keep every topic explainable in 15-30 seconds.
4. Make the titles catchy.
5. Include practical, useful information.

Output a single JSON object in exactly this shape:
{
    "theme": "%s",
    "suggestions": [
        {
            "title": "concrete topic title",
            "description": "short note on why it is interesting or useful",
            "estimated_views": "rough view count estimate"
        }
    ]
}`, theme, theme)
}
