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

	log, logFile, err := utils.NewFileLogger(cfg.Paths.Logs, "summarization", cfg.Logging.Level)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	stop := utils.CancelOnInterrupt(cancel, os.Stdout)

	if envErr != nil {
		log.Debug(ctx, "No .env file loaded: %v", envErr)
	}

	summarizer := utils.NewRealTextSummarizer(
		utils.NewHFInferenceClient(cfg.Credentials.HFInferenceURL, cfg.Credentials.HFToken),
		utils.NewChatDescriptionGenerator(cfg.Credentials.NewOpenAIClient()),
		nil,
		log,
	)

	_, err = utils.RunSummarize(ctx, cfg, os.Stdin, os.Stdout, summarizer, log)
	code := utils.ReportOutcome(ctx, log, os.Stdout, err)

	stop()
	cancel()
	logFile.Close()
	os.Exit(code)
}
