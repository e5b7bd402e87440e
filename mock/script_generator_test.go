package mock_generator

import (
	"bytes"
	"context"
	"testing"

	"github.com/toruasakawa/short-video-generator-clean/application/ports/outbound"
)

type noopLogger struct{}

func (noopLogger) Info(string)                                           {}
func (noopLogger) InfoWithFields(string, map[string]interface{})         {}
func (noopLogger) Error(error, string)                                   {}
func (noopLogger) ErrorWithFields(error, string, map[string]interface{}) {}
func (noopLogger) Debug(string)                                          {}
func (noopLogger) DebugWithFields(string, map[string]interface{})        {}
func (noopLogger) Warn(string)                                           {}
func (noopLogger) WarnWithFields(string, map[string]interface{})         {}

func TestMockScriptGenerator(t *testing.T) {
	generator := NewScriptGenerator("", noopLogger{})

	script, err := generator.Generate(context.Background(), outbound.GenerateScriptRequest{
		Topic: "tea brewing",
		Style: "anime",
	})
	if err != nil {
		t.Fatal("Failed to generate mock script:", err)
	}
	if len(script.Scenes) != 3 {
		t.Fatalf("expected 3 canned scenes, got %d", len(script.Scenes))
	}
	for i, scene := range script.Scenes {
		if scene.Text == "" || scene.VisualConcept == "" {
			t.Fatalf("scene %d is incomplete: %+v", i, scene)
		}
	}
}

func TestMockScriptGeneratorRejectsUnknownStyle(t *testing.T) {
	generator := NewScriptGenerator("", noopLogger{})

	if _, err := generator.Generate(context.Background(), outbound.GenerateScriptRequest{
		Topic: "tea brewing",
		Style: "cubist",
	}); err == nil {
		t.Fatal("expected an error for an unknown style")
	}
}

func TestMockAudioGeneratorEmitsWav(t *testing.T) {
	generator := NewAudioGenerator()

	data, err := generator.Generate(context.Background(), outbound.GenerateAudioRequest{Text: "hello"})
	if err != nil {
		t.Fatal("Failed to generate mock audio:", err)
	}
	if !bytes.HasPrefix(data, []byte("RIFF")) || !bytes.Contains(data[:12], []byte("WAVE")) {
		t.Fatal("expected a WAV header")
	}
}
