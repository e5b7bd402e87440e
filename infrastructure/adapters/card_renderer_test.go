package adapters

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/toruasakawa/short-video-generator-clean/domain"
)

func TestCardRenderer_Placeholder(t *testing.T) {
	style, ok := domain.StyleByID("anime")
	if !ok {
		t.Fatal("anime style missing from the catalog")
	}

	renderer := NewCardRenderer(NewZerologWrapper())

	data, err := renderer.RenderPlaceholder(style, 1, "a glowing phone in a dark room")
	if err != nil {
		t.Fatal("Failed to render placeholder:", err)
	}

	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatal("Placeholder is not a decodable PNG:", err)
	}
	bounds := img.Bounds()
	if bounds.Dx() != 1080 || bounds.Dy() != 1920 {
		t.Fatalf("expected 1080x1920, got %dx%d", bounds.Dx(), bounds.Dy())
	}
}

func TestCardRenderer_TitleCardAllStyles(t *testing.T) {
	renderer := NewCardRenderer(NewZerologWrapper())

	for _, style := range domain.Styles() {
		data, err := renderer.RenderTitleCard(style, "Top 3 Late Night Habits That Wreck Your Sleep")
		if err != nil {
			t.Fatalf("style %s: failed to render title card: %v", style.ID, err)
		}
		img, err := png.Decode(bytes.NewReader(data))
		if err != nil {
			t.Fatalf("style %s: title card is not a decodable PNG: %v", style.ID, err)
		}
		if img.Bounds().Dx() != 1080 || img.Bounds().Dy() != 1920 {
			t.Fatalf("style %s: wrong dimensions", style.ID)
		}
	}
}

func TestCardRenderer_LongConceptIsTruncated(t *testing.T) {
	style, ok := domain.StyleByID("realistic")
	if !ok {
		t.Fatal("realistic style missing from the catalog")
	}

	renderer := NewCardRenderer(NewZerologWrapper())

	long := bytes.Repeat([]byte("scene "), 100)
	if _, err := renderer.RenderPlaceholder(style, 0, string(long)); err != nil {
		t.Fatal("Failed to render placeholder for a long concept:", err)
	}
}
