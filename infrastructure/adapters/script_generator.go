package adapters

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/toruasakawa/short-video-generator-clean/application/ports/outbound"
	"github.com/toruasakawa/short-video-generator-clean/domain"
)

const scriptTemperature = 0.5

// Spoken text must never describe the visuals; these markers catch the
// leakage the generation prompt forbids.
var visualLeakMarkers = []string{
	"この画像",
	"画像では",
	"絵では",
	"絵には",
	"this image",
	"the image shows",
	"in this picture",
	"in the illustration",
}

type scriptPayload struct {
	Title  string         `json:"title"`
	Style  string         `json:"style"`
	Scenes []scenePayload `json:"scenes"`
}

type scenePayload struct {
	Text          string  `json:"text"`
	VisualConcept string  `json:"visual_concept"`
	Duration      float64 `json:"duration"`
}

type scriptGenerator struct {
	logger outbound.LoggerPort
	chat   ChatCompleter
}

func NewScriptGenerator(chat ChatCompleter, logger outbound.LoggerPort) outbound.ScriptGeneratorPort {
	return &scriptGenerator{
		logger: logger,
		chat:   chat,
	}
}

func (s *scriptGenerator) Generate(ctx context.Context, req outbound.GenerateScriptRequest) (*domain.Script, error) {
	style, ok := domain.StyleByID(req.Style)
	if !ok {
		return nil, fmt.Errorf("%w: unknown style %q", domain.ErrGeneration, req.Style)
	}

	raw, err := s.chat.Complete(ctx, scriptPrompt(req.Topic, style), scriptTemperature)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrGeneration, err)
	}

	payload, err := extractJSONPayload(raw)
	if err != nil {
		s.logger.WarnWithFields("script output contained no json payload", map[string]interface{}{
			"topic": req.Topic,
		})
		return nil, fmt.Errorf("%w: %v", domain.ErrGeneration, err)
	}

	var parsed scriptPayload
	if err := json.Unmarshal([]byte(payload), &parsed); err != nil {
		return nil, fmt.Errorf("%w: malformed script payload: %v", domain.ErrGeneration, err)
	}
	if err := validateScript(parsed); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrGeneration, err)
	}

	script := &domain.Script{
		Title:  parsed.Title,
		Style:  req.Style,
		Scenes: make([]domain.Scene, 0, len(parsed.Scenes)),
	}
	for _, scene := range parsed.Scenes {
		script.Scenes = append(script.Scenes, domain.Scene{
			Text:          scene.Text,
			VisualConcept: scene.VisualConcept,
			DurationHint:  scene.Duration,
		})
	}
	return script, nil
}

func validateScript(payload scriptPayload) error {
	if strings.TrimSpace(payload.Title) == "" {
		return fmt.Errorf("script has no title")
	}
	if len(payload.Scenes) == 0 {
		return fmt.Errorf("script has no scenes")
	}
	for i, scene := range payload.Scenes {
		if strings.TrimSpace(scene.Text) == "" {
			return fmt.Errorf("scene %d has no spoken text", i)
		}
		if strings.TrimSpace(scene.VisualConcept) == "" {
			return fmt.Errorf("scene %d has no visual concept", i)
		}
		if marker := leakedVisualMarker(scene.Text); marker != "" {
			return fmt.Errorf("scene %d spoken text describes visuals (%q)", i, marker)
		}
	}
	return nil
}

func leakedVisualMarker(text string) string {
	lowered := strings.ToLower(text)
	for _, marker := range visualLeakMarkers {
		if strings.Contains(lowered, marker) {
			return marker
		}
	}
	return ""
}

func scriptPrompt(topic string, style domain.VisualStyle) string {
	return fmt.Sprintf(`Write the script for a 15-30 second short video in the %s visual style.
Topic: %s

Important rules:
1. Never describe pictures or images after announcing a ranked item.
2. Explain only the content of each ranked item, concisely.
3. Phrases like "this image shows" or "in the picture" are forbidden.
4. Speak only content a listener can understand without seeing anything.

Output a single JSON object in exactly this shape:
{
    "title": "video title",
    "style": "%s",
    "scenes": [
        {
            "text": "Number 3 is ... because ...",
            "visual_concept": "visual concept representing the item (internal use only)",
            "duration": 5
        },
        {
            "text": "Number 2 is ... because ...",
            "visual_concept": "visual concept representing the item (internal use only)",
            "duration": 5
        },
        {
            "text": "Number 1 is ... because ...",
            "visual_concept": "visual concept representing the item (internal use only)",
            "duration": 5
        }
    ]
}

Good example: "Number 3 is eating late at night. Late meals are stored as fat because your metabolism slows down."
Bad example: "Number 3 is eating late at night. This image shows a clock pointing at midnight."`,
		style.Name, topic, style.ID)
}
