package adapters

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"strings"
	"unicode/utf8"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/toruasakawa/short-video-generator-clean/application/ports/outbound"
	"github.com/toruasakawa/short-video-generator-clean/domain"
)

const (
	cardWidth  = 1080
	cardHeight = 1920

	maxConceptChars = 100
)

type cardRenderer struct {
	logger outbound.LoggerPort
}

// NewCardRenderer draws the locally produced images: placeholder scene cards
// when image generation degrades and the title card shown before scene one.
func NewCardRenderer(logger outbound.LoggerPort) outbound.CardRendererPort {
	return &cardRenderer{logger: logger}
}

func (r *cardRenderer) RenderPlaceholder(style domain.VisualStyle, sceneIndex int, concept string) ([]byte, error) {
	background, err := parseHexColor(style.Card.Background)
	if err != nil {
		return nil, err
	}
	textColor, err := parseHexColor(style.Card.Text)
	if err != nil {
		return nil, err
	}
	accent, err := parseHexColor(style.Card.Accent)
	if err != nil {
		return nil, err
	}

	img := image.NewRGBA(image.Rect(0, 0, cardWidth, cardHeight))
	fillRect(img, img.Bounds(), background)

	if utf8.RuneCountInString(concept) > maxConceptChars {
		concept = string([]rune(concept)[:maxConceptChars]) + "..."
	}

	drawCenteredText(img, fmt.Sprintf("[ %s ]", style.Name), accent, 6, 300)
	drawCenteredText(img, fmt.Sprintf("Scene %d", sceneIndex+1), textColor, 5, 500)
	drawCenteredText(img, concept, textColor, 3, 700)

	return encodePNG(img)
}

func (r *cardRenderer) RenderTitleCard(style domain.VisualStyle, title string) ([]byte, error) {
	background, err := parseHexColor(style.TitleCard.Background)
	if err != nil {
		return nil, err
	}
	textColor, err := parseHexColor(style.TitleCard.Text)
	if err != nil {
		return nil, err
	}
	accent, err := parseHexColor(style.TitleCard.Accent)
	if err != nil {
		return nil, err
	}

	img := image.NewRGBA(image.Rect(0, 0, cardWidth, cardHeight))
	if style.TitleCard.Gradient {
		fillGradient(img, background)
	} else {
		fillRect(img, img.Bounds(), background)
	}

	// Decorative frame: horizontal rules and corner marks.
	fillRect(img, image.Rect(340, 600, 740, 608), accent)
	fillRect(img, image.Rect(200, 800, 880, 808), accent)
	fillRect(img, image.Rect(340, 1400, 740, 1408), accent)
	drawCornerMarks(img, accent)

	lines := wrapTitle(title)
	if len(lines) == 2 {
		drawCenteredText(img, lines[0], textColor, 7, 900)
		drawCenteredText(img, lines[1], textColor, 7, 1000)
	} else {
		drawCenteredText(img, lines[0], textColor, 7, 950)
	}
	drawCenteredText(img, "Style: "+style.Name, accent, 4, 1200)

	return encodePNG(img)
}

// wrapTitle splits a long title in two at the midpoint of its words.
func wrapTitle(title string) []string {
	if utf8.RuneCountInString(title)*7*7 <= 900 {
		return []string{title}
	}
	words := strings.Fields(title)
	if len(words) < 2 {
		return []string{title}
	}
	mid := len(words) / 2
	return []string{
		strings.Join(words[:mid], " "),
		strings.Join(words[mid:], " "),
	}
}

func drawCornerMarks(img *image.RGBA, accent color.RGBA) {
	const size = 50
	// Top left.
	fillRect(img, image.Rect(100, 100, 100+size, 108), accent)
	fillRect(img, image.Rect(100, 100, 108, 100+size), accent)
	// Top right.
	fillRect(img, image.Rect(980-size, 100, 980, 108), accent)
	fillRect(img, image.Rect(972, 100, 980, 100+size), accent)
	// Bottom left.
	fillRect(img, image.Rect(100, 1812, 100+size, 1820), accent)
	fillRect(img, image.Rect(100, 1820-size, 108, 1820), accent)
	// Bottom right.
	fillRect(img, image.Rect(980-size, 1812, 980, 1820), accent)
	fillRect(img, image.Rect(972, 1820-size, 980, 1820), accent)
}

func fillRect(img *image.RGBA, rect image.Rectangle, col color.RGBA) {
	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		for x := rect.Min.X; x < rect.Max.X; x++ {
			img.SetRGBA(x, y, col)
		}
	}
}

// fillGradient brightens the base color from top to bottom, up to 20%.
func fillGradient(img *image.RGBA, base color.RGBA) {
	bounds := img.Bounds()
	height := bounds.Dy()
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		alpha := float64(y) / float64(height)
		row := color.RGBA{
			R: brighten(base.R, alpha),
			G: brighten(base.G, alpha),
			B: brighten(base.B, alpha),
			A: 255,
		}
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			img.SetRGBA(x, y, row)
		}
	}
}

func brighten(channel uint8, alpha float64) uint8 {
	value := int(float64(channel) * (1 + alpha*0.2))
	if value > 255 {
		value = 255
	}
	return uint8(value)
}

// drawCenteredText renders text with the bitmap face, then scales it up so
// it is legible at card resolution.
func drawCenteredText(img *image.RGBA, text string, col color.RGBA, scale int, y int) {
	if text == "" {
		return
	}
	face := basicfont.Face7x13
	width := utf8.RuneCountInString(text) * face.Advance
	height := face.Height

	small := image.NewRGBA(image.Rect(0, 0, width, height))
	drawer := font.Drawer{
		Dst:  small,
		Src:  image.NewUniform(col),
		Face: face,
		Dot:  fixed.P(0, face.Ascent),
	}
	drawer.DrawString(text)

	scaledWidth := width * scale
	scaledHeight := height * scale
	if scaledWidth > cardWidth {
		scaledWidth = cardWidth
	}
	x := (cardWidth - scaledWidth) / 2
	target := image.Rect(x, y, x+scaledWidth, y+scaledHeight)
	xdraw.NearestNeighbor.Scale(img, target, small, small.Bounds(), xdraw.Over, nil)
}

func parseHexColor(value string) (color.RGBA, error) {
	var r, g, b uint8
	if _, err := fmt.Sscanf(value, "#%02x%02x%02x", &r, &g, &b); err != nil {
		return color.RGBA{}, fmt.Errorf("invalid color %q: %w", value, err)
	}
	return color.RGBA{R: r, G: g, B: b, A: 255}, nil
}

func encodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
