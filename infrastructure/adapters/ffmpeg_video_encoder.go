package adapters

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/toruasakawa/short-video-generator-clean/application/ports/outbound"
	"github.com/toruasakawa/short-video-generator-clean/domain"
)

const (
	defaultSceneDuration = 5.0
	defaultTitleDuration = 3.0
	titleTailPadding     = 0.5

	// Vertical 9:16 frame; letterboxed when the source aspect differs.
	scaleFilter = "scale=1080:1920:force_original_aspect_ratio=decrease,pad=1080:1920:(ow-iw)/2:(oh-ih)/2"
)

type ffmpegVideoEncoder struct {
	logger outbound.LoggerPort
}

// NewFfmpegVideoEncoder encodes each image/audio pair into a segment and
// concatenates the segments into the final vertical video.
func NewFfmpegVideoEncoder(logger outbound.LoggerPort) outbound.VideoEncoderPort {
	return &ffmpegVideoEncoder{logger: logger}
}

func (e *ffmpegVideoEncoder) Encode(ctx context.Context, req outbound.EncodeRequest) (string, error) {
	var segments []string

	if req.Title.ImagePath != "" && req.Title.AudioPath != "" {
		duration := defaultTitleDuration
		if probed, err := e.probeDuration(ctx, req.Title.AudioPath); err == nil {
			duration = probed + titleTailPadding
		} else {
			e.logger.Warn("Failed to probe title audio duration, using default")
		}

		path := filepath.Join(req.WorkDir, "segment_title.mp4")
		if err := e.encodeSegment(ctx, req.Title, duration, path); err != nil {
			e.logger.Error(err, "Failed to encode the title segment")
		} else {
			segments = append(segments, path)
		}
	}

	for i, scene := range req.Scenes {
		if scene.ImagePath == "" || scene.AudioPath == "" {
			continue
		}

		duration := defaultSceneDuration
		if probed, err := e.probeDuration(ctx, scene.AudioPath); err == nil {
			duration = probed
		}

		path := filepath.Join(req.WorkDir, fmt.Sprintf("segment_%d.mp4", i))
		if err := e.encodeSegment(ctx, scene, duration, path); err != nil {
			e.logger.ErrorWithFields(err, "Failed to encode a scene segment", map[string]interface{}{
				"scene": i,
			})
			continue
		}
		segments = append(segments, path)
	}

	if len(segments) == 0 {
		return "", domain.ErrEncodeEmpty
	}

	if err := os.MkdirAll(filepath.Dir(req.OutputPath), 0o755); err != nil {
		return "", err
	}

	if err := e.concat(ctx, segments, req.WorkDir, req.OutputPath); err != nil {
		e.logger.Error(err, "Failed to concatenate segments, falling back to the first segment")
		if renameErr := os.Rename(segments[0], req.OutputPath); renameErr != nil {
			return "", renameErr
		}
	}

	info, err := os.Stat(req.OutputPath)
	if err != nil || info.Size() == 0 {
		return "", domain.ErrEncodeEmpty
	}
	return req.OutputPath, nil
}

func (e *ffmpegVideoEncoder) encodeSegment(ctx context.Context, segment outbound.EncodeSegment, duration float64, outputPath string) error {
	cmd := exec.CommandContext(ctx, "ffmpeg", "-y",
		"-loop", "1",
		"-i", segment.ImagePath,
		"-i", segment.AudioPath,
		"-c:v", "libx264",
		"-t", strconv.FormatFloat(duration, 'f', 2, 64),
		"-pix_fmt", "yuv420p",
		"-vf", scaleFilter,
		"-c:a", "aac",
		"-b:a", "128k",
		"-preset", "medium",
		outputPath,
	)
	if output, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("ffmpeg segment encode: %w: %s", err, tail(string(output)))
	}
	return nil
}

func (e *ffmpegVideoEncoder) concat(ctx context.Context, segments []string, workDir, outputPath string) error {
	listPath := filepath.Join(workDir, "concat.txt")
	var list strings.Builder
	for _, segment := range segments {
		fmt.Fprintf(&list, "file '%s'\n", segment)
	}
	if err := os.WriteFile(listPath, []byte(list.String()), 0o644); err != nil {
		return err
	}

	cmd := exec.CommandContext(ctx, "ffmpeg", "-y",
		"-f", "concat",
		"-safe", "0",
		"-i", listPath,
		"-c", "copy",
		outputPath,
	)
	if output, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("ffmpeg concat: %w: %s", err, tail(string(output)))
	}
	return nil
}

func (e *ffmpegVideoEncoder) probeDuration(ctx context.Context, audioPath string) (float64, error) {
	cmd := exec.CommandContext(ctx, "ffprobe",
		"-v", "error",
		"-show_entries", "format=duration",
		"-of", "default=noprint_wrappers=1:nokey=1",
		audioPath,
	)
	output, err := cmd.Output()
	if err != nil {
		return 0, err
	}
	duration, err := strconv.ParseFloat(strings.TrimSpace(string(output)), 64)
	if err != nil {
		return 0, fmt.Errorf("unparseable ffprobe duration: %w", err)
	}
	return duration, nil
}

// tail keeps only the last lines of ffmpeg output, which carry the actual
// error message.
func tail(output string) string {
	lines := strings.Split(strings.TrimSpace(output), "\n")
	if len(lines) > 3 {
		lines = lines[len(lines)-3:]
	}
	return strings.Join(lines, " | ")
}
