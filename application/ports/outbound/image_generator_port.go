package outbound

import (
	"context"

	"github.com/toruasakawa/short-video-generator-clean/domain"
)

type GenerateImageRequest struct {
	Concept       string
	Style         domain.VisualStyle
	SceneIndex    int
	CharacterHint string
}

type ImageGeneratorPort interface {
	Generate(ctx context.Context, req GenerateImageRequest) ([]byte, error)
}
