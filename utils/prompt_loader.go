package utils

import (
	"context"
	"errors"
	"os"
	"strings"
)

const DefaultPrompt = "Summarize this transcript into a concise, engaging YouTube description " +
	"that highlights key points while being casual and optimized for SEO. " +
	"Limit the main description to 500 characters. Add relevant hashtags based on the content."

// LoadPrompt returns the trimmed contents of path, or DefaultPrompt when the
// file is missing or unreadable.
func LoadPrompt(ctx context.Context, path string, log Logger) string {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			log.Warn(ctx, "Prompt file not found. Using default prompt.")
		} else {
			log.Error(ctx, "Error loading prompt: %v", err)
		}
		return DefaultPrompt
	}

	log.Info(ctx, "Custom prompt loaded.")
	return strings.TrimSpace(string(data))
}
