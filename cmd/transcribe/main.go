package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/HugeFrog24/video-transcript-summarizer/utils"
)

func main() {
	// .env is optional; a local OpenAI-compatible server needs no key
	envErr := godotenv.Load()

	cfg, err := utils.LoadConfig(utils.DefaultConfigFile)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	log, logFile, err := utils.NewFileLogger(cfg.Paths.Logs, "transcription", cfg.Logging.Level)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	stop := utils.CancelOnInterrupt(cancel, os.Stdout)

	if envErr != nil {
		log.Debug(ctx, "No .env file loaded: %v", envErr)
	}

	extractor := utils.NewRealAudioExtractor(cfg.FFmpeg.BinaryPath, log)
	transcriber := utils.NewRealAudioTranscriber(cfg.Credentials.NewOpenAIClient(), nil, cfg.Transcription.Language, log)

	_, err = utils.RunTranscribe(ctx, cfg, os.Stdin, os.Stdout, extractor, transcriber, log)
	code := utils.ReportOutcome(ctx, log, os.Stdout, err)

	stop()
	cancel()
	logFile.Close()
	os.Exit(code)
}
