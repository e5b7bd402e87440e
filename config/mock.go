package config

import (
	"os"
)

type MockConfig struct {
	Enabled    bool
	ScriptFile string
}

// GetMockConfig switches the upstream generators for local fakes so the
// pipeline runs without OpenAI or VOICEVOX.
func GetMockConfig() (*MockConfig, error) {
	return &MockConfig{
		Enabled:    os.Getenv("MOCK_MODE") == "true",
		ScriptFile: os.Getenv("MOCK_SCRIPT_FILE"),
	}, nil
}
