package utils

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

type RealAudioExtractor struct {
	FFmpegPath string
	Logger     Logger
}

func NewRealAudioExtractor(ffmpegPath string, log Logger) *RealAudioExtractor {
	return &RealAudioExtractor{FFmpegPath: ffmpegPath, Logger: log}
}

// ExtractAudio writes a mono 16 kHz PCM WAV of videoFile to audioFile,
// overwriting it if present.
func (e *RealAudioExtractor) ExtractAudio(ctx context.Context, videoFile, audioFile string) error {
	e.Logger.Info(ctx, "Starting audio extraction from %s", videoFile)

	if _, err := os.Stat(videoFile); err != nil {
		e.Logger.Error(ctx, "Video file not found: %s", videoFile)
		return fmt.Errorf("%w: video file not found: %s", ErrExtractionFailed, videoFile)
	}

	cmd := exec.CommandContext(ctx, e.FFmpegPath, "-i", videoFile, "-vn", "-acodec", "pcm_s16le", "-ar", "16000", "-ac", "1", "-y", audioFile)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	err := cmd.Run()

	if err != nil {
		stderrStr := stderr.String()
		e.Logger.Error(ctx, "FFmpeg failed: %v\nStderr: %s", err, stderrStr)
		if strings.Contains(stderrStr, "does not contain any stream") {
			return fmt.Errorf("%w: %s has no audio stream", ErrExtractionFailed, videoFile)
		}
		return fmt.Errorf("%w: ffmpeg error: %v", ErrExtractionFailed, err)
	}

	e.Logger.Info(ctx, "Audio extraction completed: %s", audioFile)
	return nil
}
