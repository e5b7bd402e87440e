package dto

import "github.com/toruasakawa/short-video-generator-clean/domain"

type StyleResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

type StylesResponse struct {
	Styles []StyleResponse `json:"styles"`
}

// NewStylesResponse lists the catalog without its prompt material; style
// prompts and consistency keywords stay internal.
func NewStylesResponse(styles []domain.VisualStyle) StylesResponse {
	res := StylesResponse{Styles: make([]StyleResponse, 0, len(styles))}
	for _, style := range styles {
		res.Styles = append(res.Styles, StyleResponse{
			ID:          style.ID,
			Name:        style.Name,
			Description: style.Description,
		})
	}
	return res
}
