package adapters

import (
	"context"
	"errors"
	"testing"

	"github.com/toruasakawa/short-video-generator-clean/application/ports/outbound"
	"github.com/toruasakawa/short-video-generator-clean/domain"
)

type stubChatCompleter struct {
	response string
	err      error
}

func (s *stubChatCompleter) Complete(_ context.Context, _ string, _ float64) (string, error) {
	return s.response, s.err
}

const validScriptResponse = "```json\n" + `{
	"title": "Top 3 sleep mistakes",
	"style": "anime",
	"scenes": [
		{"text": "Number 3 is late caffeine.", "visual_concept": "steaming coffee cup at night", "duration": 5},
		{"text": "Number 2 is bright screens.", "visual_concept": "glowing phone in a dark room", "duration": 5},
		{"text": "Number 1 is irregular hours.", "visual_concept": "clock with scattered hands", "duration": 6}
	]
}` + "\n```"

func TestScriptGenerator_Generate(t *testing.T) {
	generator := NewScriptGenerator(&stubChatCompleter{response: validScriptResponse}, NewZerologWrapper())

	script, err := generator.Generate(context.Background(), outbound.GenerateScriptRequest{
		Topic: "sleep mistakes",
		Style: "anime",
	})
	if err != nil {
		t.Fatal("Failed to generate script:", err)
	}

	if script.Title != "Top 3 sleep mistakes" {
		t.Fatalf("unexpected title %q", script.Title)
	}
	if len(script.Scenes) != 3 {
		t.Fatalf("expected 3 scenes, got %d", len(script.Scenes))
	}
	if script.Scenes[2].DurationHint != 6 {
		t.Fatalf("expected duration hint to survive, got %v", script.Scenes[2].DurationHint)
	}
}

func TestScriptGenerator_RejectsVisualLeakage(t *testing.T) {
	leaky := "```json\n" + `{
	"title": "Top 3 sleep mistakes",
	"style": "anime",
	"scenes": [
		{"text": "Number 3 is late caffeine. This image shows a coffee cup.", "visual_concept": "coffee cup", "duration": 5}
	]
}` + "\n```"

	generator := NewScriptGenerator(&stubChatCompleter{response: leaky}, NewZerologWrapper())

	_, err := generator.Generate(context.Background(), outbound.GenerateScriptRequest{
		Topic: "sleep mistakes",
		Style: "anime",
	})
	if !errors.Is(err, domain.ErrGeneration) {
		t.Fatalf("expected ErrGeneration for leaked visuals, got %v", err)
	}
}

func TestScriptGenerator_RejectsEmptyScenes(t *testing.T) {
	empty := `{"title": "Top 3", "style": "anime", "scenes": []}`

	generator := NewScriptGenerator(&stubChatCompleter{response: empty}, NewZerologWrapper())

	_, err := generator.Generate(context.Background(), outbound.GenerateScriptRequest{
		Topic: "anything",
		Style: "anime",
	})
	if !errors.Is(err, domain.ErrGeneration) {
		t.Fatalf("expected ErrGeneration for an empty script, got %v", err)
	}
}

func TestScriptGenerator_RejectsNonJSONOutput(t *testing.T) {
	generator := NewScriptGenerator(&stubChatCompleter{response: "sorry, I cannot help with that"}, NewZerologWrapper())

	_, err := generator.Generate(context.Background(), outbound.GenerateScriptRequest{
		Topic: "anything",
		Style: "anime",
	})
	if !errors.Is(err, domain.ErrGeneration) {
		t.Fatalf("expected ErrGeneration for non-json output, got %v", err)
	}
}

func TestScriptGenerator_RejectsUnknownStyle(t *testing.T) {
	generator := NewScriptGenerator(&stubChatCompleter{response: validScriptResponse}, NewZerologWrapper())

	_, err := generator.Generate(context.Background(), outbound.GenerateScriptRequest{
		Topic: "anything",
		Style: "bauhaus",
	})
	if !errors.Is(err, domain.ErrGeneration) {
		t.Fatalf("expected ErrGeneration for an unknown style, got %v", err)
	}
}
