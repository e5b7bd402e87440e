package mock_generator

import (
	"context"

	"github.com/toruasakawa/short-video-generator-clean/application/ports/outbound"
)

type imageGenerator struct {
	cardRenderer outbound.CardRendererPort
}

// NewImageGenerator renders every scene as a placeholder card instead of
// calling the image API.
func NewImageGenerator(cardRenderer outbound.CardRendererPort) outbound.ImageGeneratorPort {
	return &imageGenerator{cardRenderer: cardRenderer}
}

func (g *imageGenerator) Generate(_ context.Context, req outbound.GenerateImageRequest) ([]byte, error) {
	return g.cardRenderer.RenderPlaceholder(req.Style, req.SceneIndex, req.Concept)
}
