package adapters

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/toruasakawa/short-video-generator-clean/application/ports/outbound"
	"github.com/toruasakawa/short-video-generator-clean/config"
)

const maxImagePromptLength = 1000

type DalleApiRequest struct {
	Model          string `json:"model"`
	Prompt         string `json:"prompt"`
	Size           string `json:"size"`
	Quality        string `json:"quality"`
	Style          string `json:"style"`
	Number         int    `json:"n"`
	ResponseFormat string `json:"response_format"`
}

type DalleApiResponse struct {
	Data []struct {
		B64Json string `json:"b64_json"`
	} `json:"data"`
}

type imageGenerator struct {
	ContentFetcher
	logger      outbound.LoggerPort
	dalleConfig *config.DaLLeConfig
}

func NewImageGenerator(contentFetcher ContentFetcher, dalleConfig *config.DaLLeConfig, logger outbound.LoggerPort) outbound.ImageGeneratorPort {
	return &imageGenerator{
		logger:         logger,
		ContentFetcher: contentFetcher,
		dalleConfig:    dalleConfig,
	}
}

func (i *imageGenerator) Generate(ctx context.Context, genReq outbound.GenerateImageRequest) ([]byte, error) {
	req, err := i.getRequest(ctx, genReq)
	if err != nil {
		i.logger.Error(err, "Failed to create the HTTP request")
		return nil, err
	}

	rawRes, err := i.FetchContent(req)
	if err != nil {
		i.logger.Error(err, "Failed to fetch the content")
		return nil, err
	}

	var dalleRes DalleApiResponse
	err = json.Unmarshal(rawRes, &dalleRes)
	if err != nil {
		i.logger.Error(err, "Failed to unmarshal the response")
		return nil, err
	}
	if len(dalleRes.Data) == 0 {
		return nil, fmt.Errorf("image response contained no data")
	}

	decodedImage, err := base64.StdEncoding.DecodeString(dalleRes.Data[0].B64Json)
	if err != nil {
		i.logger.Error(err, "Failed to decode the image")
		return nil, err
	}

	return decodedImage, nil
}

func (i *imageGenerator) getRequest(ctx context.Context, genReq outbound.GenerateImageRequest) (*http.Request, error) {
	reqBody := DalleApiRequest{
		Model:          i.dalleConfig.Model,
		Prompt:         composeImagePrompt(genReq),
		Size:           i.dalleConfig.Size,
		Quality:        genReq.Style.Quality,
		Style:          genReq.Style.RenderStyle,
		Number:         1,
		ResponseFormat: "b64_json",
	}

	jsonPayload, err := json.Marshal(reqBody)
	if err != nil {
		i.logger.Error(err, "Failed to marshal the request body")
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, "POST", i.dalleConfig.ApiUrl, bytes.NewBuffer(jsonPayload))
	if err != nil {
		i.logger.Error(err, "Failed to create the HTTP request")
		return nil, err
	}

	req.Header.Add("Authorization", "Bearer "+i.dalleConfig.ApiKey)
	req.Header.Add("Content-Type", "application/json")

	return req, nil
}

// composeImagePrompt layers the scene concept with the style's consistency
// keywords so every scene of a job renders in one uniform look.
func composeImagePrompt(genReq outbound.GenerateImageRequest) string {
	baseConsistency := fmt.Sprintf("Consistent %s, maintaining identical art style throughout, same artistic technique, uniform color palette",
		strings.Join(genReq.Style.ConsistencyKeywords, " "))

	characterConsistency := ""
	if genReq.CharacterHint != "" {
		characterConsistency = ", " + genReq.CharacterHint
	}

	fullPrompt := fmt.Sprintf("%s, %s%s, %s", genReq.Concept, baseConsistency, characterConsistency, genReq.Style.StylePrompt)
	if len(fullPrompt) > maxImagePromptLength {
		fullPrompt = fmt.Sprintf("%s, %s, %s", truncate(genReq.Concept, 300), baseConsistency, truncate(genReq.Style.StylePrompt, 400))
	}
	return fullPrompt
}

func truncate(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	return s[:limit]
}
