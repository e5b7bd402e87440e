package domain

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed styles.yaml
var stylesYAML []byte

// CardPalette holds the colors used when rendering placeholder and title
// cards for a style.
type CardPalette struct {
	Background string `yaml:"background"`
	Text       string `yaml:"text"`
	Accent     string `yaml:"accent"`
	Gradient   bool   `yaml:"gradient"`
}

// VisualStyle is one entry of the catalog. StylePrompt and the consistency
// keywords are prompt material for image generation and stay internal.
type VisualStyle struct {
	ID                  string      `yaml:"id"`
	Name                string      `yaml:"name"`
	Description         string      `yaml:"description"`
	StylePrompt         string      `yaml:"style_prompt"`
	ConsistencyKeywords []string    `yaml:"consistency_keywords"`
	Quality             string      `yaml:"quality"`
	RenderStyle         string      `yaml:"render_style"`
	Card                CardPalette `yaml:"card"`
	TitleCard           CardPalette `yaml:"title_card"`
}

type styleCatalog struct {
	Styles []VisualStyle `yaml:"styles"`
}

var (
	styleOrder []VisualStyle
	styleIndex map[string]VisualStyle
)

func init() {
	var catalog styleCatalog
	if err := yaml.Unmarshal(stylesYAML, &catalog); err != nil {
		panic(fmt.Sprintf("invalid embedded style catalog: %v", err))
	}
	styleOrder = catalog.Styles
	styleIndex = make(map[string]VisualStyle, len(catalog.Styles))
	for _, style := range catalog.Styles {
		styleIndex[style.ID] = style
	}
}

// Styles returns the catalog in declaration order.
func Styles() []VisualStyle {
	return styleOrder
}

// StyleByID looks up a style by its catalog id.
func StyleByID(id string) (VisualStyle, bool) {
	style, ok := styleIndex[id]
	return style, ok
}
