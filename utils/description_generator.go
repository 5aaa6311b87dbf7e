package utils

import (
	"context"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
)

// summarySeed pins sampling so repeated runs over the same transcript agree.
const summarySeed = 42

// ChatDescriptionGenerator drives decoder-only models through a chat
// completion endpoint.
type ChatDescriptionGenerator struct {
	client *openai.Client
}

func NewChatDescriptionGenerator(client *openai.Client) *ChatDescriptionGenerator {
	return &ChatDescriptionGenerator{client: client}
}

// GenerateDescription sends the prompt-prefixed transcript as a single user turn.
func (g *ChatDescriptionGenerator) GenerateDescription(ctx context.Context, modelID, input string) (string, error) {
	seed := summarySeed
	req := openai.ChatCompletionRequest{
		Model: modelID,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: "You are a helpful assistant that turns video transcripts into clear and concise video descriptions.",
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: input,
			},
		},
		MaxTokens:   SummaryMaxLength,
		Temperature: 0,
		Seed:        &seed,
	}

	resp, err := g.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", fmt.Errorf("error generating description: %v", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("empty response from %s", modelID)
	}

	return resp.Choices[0].Message.Content, nil
}
