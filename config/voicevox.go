package config

import (
	"os"
)

type VoicevoxConfig struct {
	BaseUrl string
}

func GetVoicevoxConfig() (*VoicevoxConfig, error) {
	baseUrl := os.Getenv("VOICEVOX_URL")
	if baseUrl == "" {
		baseUrl = "http://localhost:50021"
	}

	return &VoicevoxConfig{
		BaseUrl: baseUrl,
	}, nil
}
