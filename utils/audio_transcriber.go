package utils

import (
	"context"
	"fmt"
	"strings"

	"github.com/pemistahl/lingua-go"
	openai "github.com/sashabaranov/go-openai"
)

type RealAudioTranscriber struct {
	client   *openai.Client
	detector lingua.LanguageDetector
	language string
	logger   Logger
}

// NewRealAudioTranscriber transcribes in a single language. detector may be
// nil, in which case one covering all languages is built.
func NewRealAudioTranscriber(client *openai.Client, detector lingua.LanguageDetector, language string, log Logger) *RealAudioTranscriber {
	if detector == nil {
		detector = lingua.NewLanguageDetectorBuilder().FromAllLanguages().Build()
	}
	return &RealAudioTranscriber{
		client:   client,
		detector: detector,
		language: language,
		logger:   log,
	}
}

// TranscribeAudio sends the whole file in one request and returns the decoded text.
func (t *RealAudioTranscriber) TranscribeAudio(ctx context.Context, audioFile string, model string) (string, error) {
	t.logger.Info(ctx, "Loading speech model: %s", model)

	req := openai.AudioRequest{
		Model:    model,
		FilePath: audioFile,
		Language: t.language,
	}
	resp, err := t.client.CreateTranscription(ctx, req)
	if err != nil {
		t.logger.Error(ctx, "Whisper failed: %v", err)
		return "", fmt.Errorf("%w: transcription error: %v", ErrModelFailure, err)
	}
	t.logger.Info(ctx, "Transcription completed successfully.")

	transcription := strings.TrimSpace(resp.Text)

	if language, ok := t.detector.DetectLanguageOf(transcription); ok {
		t.logger.Debug(ctx, "Detected transcription language: %s", language.String())
		if !strings.EqualFold(language.IsoCode639_1().String(), t.language) {
			t.logger.Warn(ctx, "Transcription language %s differs from requested language %s", language.String(), t.language)
		}
	}

	return transcription, nil
}
