package utils

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// TranscribeJob describes one transcription run.
type TranscribeJob struct {
	VideoFile  string
	OutputFile string
	Model      string
	TempDir    string
}

// SummarizeJob describes one summarization run.
type SummarizeJob struct {
	TranscriptFile string
	OutputFile     string
	Model          SummaryModel
	Prompt         string
}

// TranscriptPath names the transcript after the video's base name.
func TranscriptPath(outputDir, videoFile string) string {
	base := strings.TrimSuffix(filepath.Base(videoFile), filepath.Ext(videoFile))
	return filepath.Join(outputDir, base+".txt")
}

// SummaryPath places <base>_summary.txt next to the transcript.
func SummaryPath(transcriptFile string) string {
	base := strings.TrimSuffix(filepath.Base(transcriptFile), filepath.Ext(transcriptFile))
	return filepath.Join(filepath.Dir(transcriptFile), base+"_summary.txt")
}

// TranscribeVideo extracts audio to a private temp file, transcribes it and
// writes the transcript. The temp file is removed however the run ends.
func TranscribeVideo(ctx context.Context, job TranscribeJob, extractor AudioExtractor, transcriber AudioTranscriber, log Logger) (string, error) {
	log.Info(ctx, "Processing video file: %s", job.VideoFile)

	if err := os.MkdirAll(job.TempDir, os.ModePerm); err != nil {
		return "", fmt.Errorf("failed to create temp directory: %w", err)
	}
	audioFile := filepath.Join(job.TempDir, fmt.Sprintf("audio_%s.wav", uuid.New().String()))
	defer removeTempAudio(ctx, audioFile, log)

	if err := extractor.ExtractAudio(ctx, job.VideoFile, audioFile); err != nil {
		log.Error(ctx, "Failed to transcribe video %s: %v", job.VideoFile, err)
		return "", fmt.Errorf("failed to extract audio: %w", err)
	}

	transcription, err := transcriber.TranscribeAudio(ctx, audioFile, job.Model)
	if err != nil {
		log.Error(ctx, "Failed to transcribe video %s: %v", job.VideoFile, err)
		return "", fmt.Errorf("failed to transcribe audio: %w", err)
	}

	if err := writeTextFile(job.OutputFile, transcription); err != nil {
		log.Error(ctx, "Failed to transcribe video %s: %v", job.VideoFile, err)
		return "", err
	}
	log.Info(ctx, "Transcription saved to %s", job.OutputFile)

	return transcription, nil
}

func removeTempAudio(ctx context.Context, audioFile string, log Logger) {
	err := os.Remove(audioFile)
	switch {
	case err == nil:
		log.Info(ctx, "Temporary audio file removed: %s", audioFile)
	case !errors.Is(err, os.ErrNotExist):
		log.Warn(ctx, "Failed to remove temporary audio file %s: %v", audioFile, err)
	}
}

// SummarizeTranscript reads the transcript, prefixes the prompt and writes
// the model's summary.
func SummarizeTranscript(ctx context.Context, job SummarizeJob, summarizer TextSummarizer, log Logger) (string, error) {
	data, err := os.ReadFile(job.TranscriptFile)
	if err != nil {
		log.Error(ctx, "Failed to read transcript %s: %v", job.TranscriptFile, err)
		return "", fmt.Errorf("failed to read transcript: %w", err)
	}

	summary, err := summarizer.Summarize(ctx, job.Model, BuildSummaryInput(job.Prompt, string(data)))
	if err != nil {
		return "", fmt.Errorf("failed to summarize transcript: %w", err)
	}

	if err := writeTextFile(job.OutputFile, summary); err != nil {
		log.Error(ctx, "Failed to save summary %s: %v", job.OutputFile, err)
		return "", err
	}
	log.Info(ctx, "Summary saved to %s", job.OutputFile)

	return summary, nil
}

func writeTextFile(path, content string) error {
	if err := os.MkdirAll(filepath.Dir(path), os.ModePerm); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to write '%s': %w", path, err)
	}
	return nil
}
