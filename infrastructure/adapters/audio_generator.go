package adapters

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/toruasakawa/short-video-generator-clean/application/ports/outbound"
	"github.com/toruasakawa/short-video-generator-clean/config"
)

// titleSpeedScale slows the title readout slightly to give the opening
// some breathing room.
const titleSpeedScale = 0.9

type audioGenerator struct {
	ContentFetcher
	logger         outbound.LoggerPort
	voicevoxConfig *config.VoicevoxConfig
}

func NewAudioGenerator(contentFetcher ContentFetcher, voicevoxConfig *config.VoicevoxConfig, logger outbound.LoggerPort) outbound.AudioGeneratorPort {
	return &audioGenerator{
		ContentFetcher: contentFetcher,
		logger:         logger,
		voicevoxConfig: voicevoxConfig,
	}
}

// Generate runs the two-step VOICEVOX flow: query synthesis parameters for
// the text, then synthesize audio bytes from them.
func (a *audioGenerator) Generate(ctx context.Context, genReq outbound.GenerateAudioRequest) ([]byte, error) {
	query, err := a.audioQuery(ctx, genReq)
	if err != nil {
		a.logger.ErrorWithFields(err, "Failed to fetch the audio query", map[string]interface{}{
			"speaker": genReq.Speaker,
		})
		return nil, err
	}

	if genReq.TitleReadout {
		query, err = withSpeedScale(query, titleSpeedScale)
		if err != nil {
			a.logger.Error(err, "Failed to adjust title speed scale")
			return nil, err
		}
	}

	return a.synthesize(ctx, genReq.Speaker, query)
}

func (a *audioGenerator) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, "GET", a.voicevoxConfig.BaseUrl+"/speakers", nil)
	if err != nil {
		return err
	}
	_, err = a.FetchContent(req)
	return err
}

func (a *audioGenerator) audioQuery(ctx context.Context, genReq outbound.GenerateAudioRequest) ([]byte, error) {
	params := url.Values{}
	params.Set("text", genReq.Text)
	params.Set("speaker", strconv.Itoa(genReq.Speaker))

	req, err := http.NewRequestWithContext(ctx, "POST", a.voicevoxConfig.BaseUrl+"/audio_query?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}

	return a.FetchContent(req)
}

func (a *audioGenerator) synthesize(ctx context.Context, speaker int, query []byte) ([]byte, error) {
	params := url.Values{}
	params.Set("speaker", strconv.Itoa(speaker))

	req, err := http.NewRequestWithContext(ctx, "POST", a.voicevoxConfig.BaseUrl+"/synthesis?"+params.Encode(), bytes.NewBuffer(query))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	return a.FetchContent(req)
}

func withSpeedScale(query []byte, scale float64) ([]byte, error) {
	var decoded map[string]interface{}
	if err := json.Unmarshal(query, &decoded); err != nil {
		return nil, fmt.Errorf("malformed audio query: %w", err)
	}
	decoded["speedScale"] = scale
	return json.Marshal(decoded)
}
