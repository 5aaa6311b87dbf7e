package utils

import (
	"context"
	"fmt"
	"strings"

	"github.com/pemistahl/lingua-go"
)

// BuildSummaryInput is exactly what the model receives.
func BuildSummaryInput(prompt, transcript string) string {
	return prompt + "\n\n" + transcript
}

// RealTextSummarizer routes seq2seq models to the inference API and causal
// models to a chat completion endpoint.
type RealTextSummarizer struct {
	seq2seq  *HFInferenceClient
	causal   *ChatDescriptionGenerator
	detector lingua.LanguageDetector
	logger   Logger
}

func NewRealTextSummarizer(seq2seq *HFInferenceClient, causal *ChatDescriptionGenerator, detector lingua.LanguageDetector, log Logger) *RealTextSummarizer {
	if detector == nil {
		detector = lingua.NewLanguageDetectorBuilder().FromAllLanguages().Build()
	}
	return &RealTextSummarizer{
		seq2seq:  seq2seq,
		causal:   causal,
		detector: detector,
		logger:   log,
	}
}

func (s *RealTextSummarizer) Summarize(ctx context.Context, model SummaryModel, input string) (string, error) {
	s.logger.Info(ctx, "Loading model: %s", model.ID)

	if language, ok := s.detector.DetectLanguageOf(input); ok {
		s.logger.Debug(ctx, "Detected input language: %s", language.String())
	}

	s.logger.Info(ctx, "Starting summarization.")

	var (
		summary string
		err     error
	)
	switch {
	case model.Kind == ModelKindSeq2Seq && s.seq2seq != nil:
		summary, err = s.seq2seq.Summarize(ctx, model.ID, input)
	case model.Kind == ModelKindCausal && s.causal != nil:
		summary, err = s.causal.GenerateDescription(ctx, model.ID, input)
	default:
		err = fmt.Errorf("no backend for %s models", model.Kind)
	}
	if err != nil {
		s.logger.Error(ctx, "Error during summarization: %v", err)
		return "", fmt.Errorf("%w: %s: %v", ErrModelFailure, model.Key, err)
	}

	summary = strings.TrimSpace(summary)
	if summary == "" {
		s.logger.Error(ctx, "Error during summarization: empty summary")
		return "", fmt.Errorf("%w: %s returned an empty summary", ErrModelFailure, model.Key)
	}

	s.logger.Info(ctx, "Summarization completed.")
	return summary, nil
}
