package adapters

import (
	"errors"
	"strings"
)

// ErrNoJSONPayload means the model output contained no extractable JSON
// object. Callers treat it as a hard error, never as a silent default.
var ErrNoJSONPayload = errors.New("no json payload found in model output")

// extractJSONPayload pulls the one JSON object expected inside free-form
// model output. A ```json fenced block wins; otherwise the slice from the
// first '{' to the last '}' is taken. Validation happens at unmarshal time.
func extractJSONPayload(raw string) (string, error) {
	if idx := strings.Index(raw, "```json"); idx >= 0 {
		rest := raw[idx+len("```json"):]
		end := strings.Index(rest, "```")
		if end < 0 {
			return "", ErrNoJSONPayload
		}
		payload := strings.TrimSpace(rest[:end])
		if payload == "" {
			return "", ErrNoJSONPayload
		}
		return payload, nil
	}

	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start < 0 || end <= start {
		return "", ErrNoJSONPayload
	}
	return raw[start : end+1], nil
}
