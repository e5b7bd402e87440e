package mock_generator

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/toruasakawa/short-video-generator-clean/application/ports/outbound"
	"github.com/toruasakawa/short-video-generator-clean/domain"
)

type mockScript struct {
	Title  string `json:"title"`
	Scenes []struct {
		Text          string  `json:"text"`
		VisualConcept string  `json:"visual_concept"`
		Duration      float64 `json:"duration"`
	} `json:"scenes"`
}

type scriptGenerator struct {
	logger     outbound.LoggerPort
	scriptFile string
}

// NewScriptGenerator serves a canned three-scene script, or the contents of
// scriptFile when one is configured.
func NewScriptGenerator(scriptFile string, logger outbound.LoggerPort) outbound.ScriptGeneratorPort {
	return &scriptGenerator{
		logger:     logger,
		scriptFile: scriptFile,
	}
}

func (s *scriptGenerator) Generate(_ context.Context, req outbound.GenerateScriptRequest) (*domain.Script, error) {
	if _, ok := domain.StyleByID(req.Style); !ok {
		return nil, fmt.Errorf("%w: unknown style %q", domain.ErrGeneration, req.Style)
	}

	if s.scriptFile != "" {
		return s.fromFile(req.Style)
	}
	return cannedScript(req.Topic, req.Style), nil
}

func (s *scriptGenerator) fromFile(style string) (*domain.Script, error) {
	raw, err := os.ReadFile(s.scriptFile)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrGeneration, err)
	}
	var parsed mockScript
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("%w: malformed mock script: %v", domain.ErrGeneration, err)
	}

	script := &domain.Script{Title: parsed.Title, Style: style}
	for _, scene := range parsed.Scenes {
		script.Scenes = append(script.Scenes, domain.Scene{
			Text:          scene.Text,
			VisualConcept: scene.VisualConcept,
			DurationHint:  scene.Duration,
		})
	}
	return script, nil
}

func cannedScript(topic, style string) *domain.Script {
	return &domain.Script{
		Title: "Top 3: " + topic,
		Style: style,
		Scenes: []domain.Scene{
			{
				Text:          "Number 3 is the classic everyone knows about " + topic + ".",
				VisualConcept: "an eye-catching opening visual about " + topic,
				DurationHint:  5,
			},
			{
				Text:          "Number 2 is the one most people get wrong.",
				VisualConcept: "a surprising contrast visual about " + topic,
				DurationHint:  5,
			},
			{
				Text:          "And number 1 is the tip worth trying today.",
				VisualConcept: "a triumphant closing visual about " + topic,
				DurationHint:  5,
			},
		},
	}
}
