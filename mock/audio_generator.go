package mock_generator

import (
	"bytes"
	"context"
	"encoding/binary"

	"github.com/toruasakawa/short-video-generator-clean/application/ports/outbound"
)

const (
	sampleRate      = 24000
	silenceSeconds  = 2
	bytesPerSample  = 2
	silenceDataSize = sampleRate * silenceSeconds * bytesPerSample
)

type audioGenerator struct{}

// NewAudioGenerator emits a short silent WAV so the encoder has real audio
// input to work with.
func NewAudioGenerator() outbound.AudioGeneratorPort {
	return &audioGenerator{}
}

func (g *audioGenerator) Generate(_ context.Context, _ outbound.GenerateAudioRequest) ([]byte, error) {
	return silentWav(), nil
}

func (g *audioGenerator) Ping(_ context.Context) error {
	return nil
}

func silentWav() []byte {
	var buf bytes.Buffer

	buf.WriteString("RIFF")
	binary.Write(&buf, binary.LittleEndian, uint32(36+silenceDataSize))
	buf.WriteString("WAVE")

	buf.WriteString("fmt ")
	binary.Write(&buf, binary.LittleEndian, uint32(16))
	binary.Write(&buf, binary.LittleEndian, uint16(1)) // PCM
	binary.Write(&buf, binary.LittleEndian, uint16(1)) // mono
	binary.Write(&buf, binary.LittleEndian, uint32(sampleRate))
	binary.Write(&buf, binary.LittleEndian, uint32(sampleRate*bytesPerSample))
	binary.Write(&buf, binary.LittleEndian, uint16(bytesPerSample))
	binary.Write(&buf, binary.LittleEndian, uint16(16))

	buf.WriteString("data")
	binary.Write(&buf, binary.LittleEndian, uint32(silenceDataSize))
	buf.Write(make([]byte, silenceDataSize))

	return buf.Bytes()
}
