package utils

import (
	"context"
)

type AudioExtractor interface {
	ExtractAudio(ctx context.Context, videoFile, audioFile string) error
}

type AudioTranscriber interface {
	TranscribeAudio(ctx context.Context, audioFile string, model string) (string, error)
}

type TextSummarizer interface {
	Summarize(ctx context.Context, model SummaryModel, input string) (string, error)
}

type ModelDownloader interface {
	Download(ctx context.Context, repoID string, destDir string, progress func(file string, downloaded, total int64)) error
}
