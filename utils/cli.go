package utils

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"path/filepath"
)

// RunTranscribe asks the operator for a video and transcribes it.
func RunTranscribe(ctx context.Context, cfg *Config, in io.Reader, out io.Writer, extractor AudioExtractor, transcriber AudioTranscriber, log Logger) (string, error) {
	videos, err := ListFiles(cfg.Paths.Input, IsVideoFile)
	if err != nil {
		log.Error(ctx, "Error listing video files: %v", err)
		return "", err
	}

	index, err := PromptSelection(bufio.NewReader(in), out, "Available video files:", "Enter the number of the file to transcribe: ", videos)
	if err != nil {
		return "", err
	}

	job := TranscribeJob{
		VideoFile:  filepath.Join(cfg.Paths.Input, videos[index]),
		OutputFile: TranscriptPath(cfg.Paths.Output, videos[index]),
		Model:      cfg.Transcription.Model,
		TempDir:    cfg.Paths.Temp,
	}
	log.Info(ctx, "Script started for file: %s", job.VideoFile)

	if _, err := TranscribeVideo(ctx, job, extractor, transcriber, log); err != nil {
		return "", err
	}

	fmt.Fprintf(out, "Transcription completed and saved to %s.\n", job.OutputFile)
	return job.OutputFile, nil
}

// RunSummarize asks for a transcript and a model, then writes the summary.
func RunSummarize(ctx context.Context, cfg *Config, in io.Reader, out io.Writer, summarizer TextSummarizer, log Logger) (string, error) {
	prompt := LoadPrompt(ctx, cfg.Paths.Prompt, log)

	transcripts, err := ListFiles(cfg.Paths.Output, IsTranscriptFile)
	if err != nil {
		log.Error(ctx, "Error listing text files: %v", err)
		return "", err
	}

	reader := bufio.NewReader(in)
	fileIndex, err := PromptSelection(reader, out, "Available text files:", "Enter the number of the file to summarize: ", transcripts)
	if err != nil {
		return "", err
	}

	modelIndex, err := PromptSelection(reader, out, "Available models:", "Enter the number of the model to use: ", summaryModelKeys())
	if err != nil {
		return "", err
	}

	transcriptFile := filepath.Join(cfg.Paths.Output, transcripts[fileIndex])
	job := SummarizeJob{
		TranscriptFile: transcriptFile,
		OutputFile:     SummaryPath(transcriptFile),
		Model:          SummaryModels[modelIndex],
		Prompt:         prompt,
	}

	if _, err := SummarizeTranscript(ctx, job, summarizer, log); err != nil {
		return "", err
	}

	fmt.Fprintf(out, "Summary saved to %s.\n", job.OutputFile)
	return job.OutputFile, nil
}

// RunDownload asks for a model and mirrors it under the models directory.
func RunDownload(ctx context.Context, cfg *Config, in io.Reader, out io.Writer, downloader ModelDownloader, log Logger) (string, error) {
	index, err := PromptSelection(bufio.NewReader(in), out, "Available models:", "Enter the number of the model to download: ", downloadableModelKeys())
	if err != nil {
		return "", err
	}

	model := DownloadableModels[index]
	destDir := filepath.Join(cfg.Paths.Models, model.Dir)
	log.Info(ctx, "Downloading %s to %s", model.RepoID, destDir)

	lastFile := ""
	progress := func(file string, downloaded, total int64) {
		if file != lastFile {
			fmt.Fprintf(out, "Downloading %s...\n", file)
			lastFile = file
		}
	}

	if err := downloader.Download(ctx, model.RepoID, destDir, progress); err != nil {
		log.Error(ctx, "Failed to download %s: %v", model.RepoID, err)
		return "", err
	}

	fmt.Fprintf(out, "Model saved to %s.\n", destDir)
	return destDir, nil
}
