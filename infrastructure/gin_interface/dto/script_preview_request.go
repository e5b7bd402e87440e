package dto

import "github.com/toruasakawa/short-video-generator-clean/domain"

type ScriptPreviewRequest struct {
	Topic string `json:"topic" binding:"required"`
	Style string `json:"style" binding:"required"`
}

type ScriptSceneResponse struct {
	Text     string  `json:"text"`
	Duration float64 `json:"duration"`
}

type ScriptPreviewResponse struct {
	Title  string                `json:"title"`
	Style  string                `json:"style"`
	Scenes []ScriptSceneResponse `json:"scenes"`
}

// NewScriptPreviewResponse exposes only the spoken side of the script; the
// visual concepts are prompt material and stay internal.
func NewScriptPreviewResponse(script *domain.Script) ScriptPreviewResponse {
	res := ScriptPreviewResponse{
		Title:  script.Title,
		Style:  script.Style,
		Scenes: make([]ScriptSceneResponse, 0, len(script.Scenes)),
	}
	for _, scene := range script.Scenes {
		res.Scenes = append(res.Scenes, ScriptSceneResponse{
			Text:     scene.Text,
			Duration: scene.DurationHint,
		})
	}
	return res
}
