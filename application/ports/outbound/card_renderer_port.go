package outbound

import (
	"github.com/toruasakawa/short-video-generator-clean/domain"
)

// CardRendererPort draws local stand-in images: the title card shown before
// the first scene and the placeholder used when image generation degrades.
type CardRendererPort interface {
	RenderPlaceholder(style domain.VisualStyle, sceneIndex int, concept string) ([]byte, error)
	RenderTitleCard(style domain.VisualStyle, title string) ([]byte, error)
}
