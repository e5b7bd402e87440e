package outbound

import "context"

type EncodeSegment struct {
	ImagePath string
	AudioPath string
}

type EncodeRequest struct {
	// Title plays first; scenes follow in slice order.
	Title      EncodeSegment
	Scenes     []EncodeSegment
	WorkDir    string
	OutputPath string
}

// VideoEncoderPort muxes the ordered segments into one vertical video file.
// It returns domain.ErrEncodeEmpty when nothing playable was produced.
type VideoEncoderPort interface {
	Encode(ctx context.Context, req EncodeRequest) (string, error)
}
