package utils

import (
	"context"
)

type MockAudioExtractor struct {
	ExtractAudioFunc func(ctx context.Context, videoFile, audioFile string) error
}

func (m *MockAudioExtractor) ExtractAudio(ctx context.Context, videoFile, audioFile string) error {
	return m.ExtractAudioFunc(ctx, videoFile, audioFile)
}

type MockAudioTranscriber struct {
	TranscribeAudioFunc func(ctx context.Context, audioFile string, model string) (string, error)
}

func (m *MockAudioTranscriber) TranscribeAudio(ctx context.Context, audioFile string, model string) (string, error) {
	return m.TranscribeAudioFunc(ctx, audioFile, model)
}

type MockTextSummarizer struct {
	SummarizeFunc func(ctx context.Context, model SummaryModel, input string) (string, error)
}

func (m *MockTextSummarizer) Summarize(ctx context.Context, model SummaryModel, input string) (string, error) {
	return m.SummarizeFunc(ctx, model, input)
}

type MockModelDownloader struct {
	DownloadFunc func(ctx context.Context, repoID string, destDir string, progress func(file string, downloaded, total int64)) error
}

func (m *MockModelDownloader) Download(ctx context.Context, repoID string, destDir string, progress func(file string, downloaded, total int64)) error {
	return m.DownloadFunc(ctx, repoID, destDir, progress)
}
