package outbound

import (
	"context"

	"github.com/toruasakawa/short-video-generator-clean/domain"
)

type GenerateScriptRequest struct {
	Topic string
	Style string
}

// ScriptGeneratorPort produces a structured script from a topic. Failures are
// fatal to the calling job; implementations must not fabricate a script when
// the upstream output cannot be parsed.
type ScriptGeneratorPort interface {
	Generate(ctx context.Context, req GenerateScriptRequest) (*domain.Script, error)
}
