package adapters

import (
	"context"
	"errors"
	"testing"
)

func TestTopicSuggester_Suggest(t *testing.T) {
	response := "```json\n" + `{
	"theme": "cooking",
	"suggestions": [
		{"title": "Top 3 knife mistakes", "description": "common and fixable", "estimated_views": "50k"},
		{"title": "Top 5 pantry staples", "description": "saves weeknight dinners", "estimated_views": "30k"}
	]
}` + "\n```"

	suggester := NewTopicSuggester(&stubChatCompleter{response: response}, NewZerologWrapper())

	suggestions, err := suggester.Suggest(context.Background(), "cooking")
	if err != nil {
		t.Fatal("Failed to suggest topics:", err)
	}
	if len(suggestions) != 2 {
		t.Fatalf("expected 2 suggestions, got %d", len(suggestions))
	}
	if suggestions[0].Title != "Top 3 knife mistakes" {
		t.Fatalf("unexpected first suggestion %q", suggestions[0].Title)
	}
}

func TestTopicSuggester_EmptySuggestions(t *testing.T) {
	suggester := NewTopicSuggester(&stubChatCompleter{response: `{"theme": "cooking", "suggestions": []}`}, NewZerologWrapper())

	_, err := suggester.Suggest(context.Background(), "cooking")
	if !errors.Is(err, ErrNoJSONPayload) {
		t.Fatalf("expected ErrNoJSONPayload, got %v", err)
	}
}
