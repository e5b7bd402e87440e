package adapters

import (
	"errors"
	"testing"
)

func TestExtractJSONPayload_FencedBlock(t *testing.T) {
	raw := "Here is the script:\n```json\n{\"title\": \"test\"}\n```\nEnjoy!"

	payload, err := extractJSONPayload(raw)
	if err != nil {
		t.Fatal("Failed to extract payload:", err)
	}
	if payload != `{"title": "test"}` {
		t.Fatalf("unexpected payload %q", payload)
	}
}

func TestExtractJSONPayload_BareObject(t *testing.T) {
	raw := `Sure! {"title": "test", "scenes": []} hope that helps`

	payload, err := extractJSONPayload(raw)
	if err != nil {
		t.Fatal("Failed to extract payload:", err)
	}
	if payload != `{"title": "test", "scenes": []}` {
		t.Fatalf("unexpected payload %q", payload)
	}
}

func TestExtractJSONPayload_FenceWinsOverBareBraces(t *testing.T) {
	raw := "{not json}\n```json\n{\"title\": \"fenced\"}\n```"

	payload, err := extractJSONPayload(raw)
	if err != nil {
		t.Fatal("Failed to extract payload:", err)
	}
	if payload != `{"title": "fenced"}` {
		t.Fatalf("unexpected payload %q", payload)
	}
}

func TestExtractJSONPayload_NoPayload(t *testing.T) {
	for _, raw := range []string{
		"no json here at all",
		"```json\n```",
		"```json\n{\"unclosed\": true}",
		"only a closing } brace",
	} {
		if _, err := extractJSONPayload(raw); !errors.Is(err, ErrNoJSONPayload) {
			t.Fatalf("input %q: expected ErrNoJSONPayload, got %v", raw, err)
		}
	}
}
