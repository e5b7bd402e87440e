package config

import (
	"fmt"
	"os"
)

type GptConfig struct {
	ApiUrl string
	ApiKey string
	Model  string
}

func GetGptConfig() (*GptConfig, error) {
	model := os.Getenv("GPT_MODEL")
	if model == "" {
		model = "gpt-4o"
	}
	apiUrl := os.Getenv("GPT_API_URL")
	if apiUrl == "" {
		apiUrl = "https://api.openai.com/v1/chat/completions"
	}
	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("OPENAI_API_KEY must be set")
	}
	return &GptConfig{
		ApiUrl: apiUrl,
		ApiKey: apiKey,
		Model:  model,
	}, nil
}
