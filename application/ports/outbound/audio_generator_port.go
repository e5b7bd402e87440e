package outbound

import "context"

type GenerateAudioRequest struct {
	Text    string
	Speaker int
	// TitleReadout selects the slightly slower synthesis speed used for the
	// title line.
	TitleReadout bool
}

type AudioGeneratorPort interface {
	Generate(ctx context.Context, req GenerateAudioRequest) ([]byte, error)
	// Ping checks that the synthesis service is reachable.
	Ping(ctx context.Context) error
}
