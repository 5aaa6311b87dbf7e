package utils

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// HFInferenceClient calls the Hugging Face inference API for seq2seq models.
type HFInferenceClient struct {
	BaseURL    string
	Token      string
	HTTPClient *http.Client
}

func NewHFInferenceClient(baseURL, token string) *HFInferenceClient {
	return &HFInferenceClient{
		BaseURL:    strings.TrimRight(baseURL, "/"),
		Token:      token,
		HTTPClient: http.DefaultClient,
	}
}

type hfSummaryParameters struct {
	MaxLength int  `json:"max_length"`
	MinLength int  `json:"min_length"`
	DoSample  bool `json:"do_sample"`
}

type hfSummaryRequest struct {
	Inputs     string              `json:"inputs"`
	Parameters hfSummaryParameters `json:"parameters"`
	Options    struct {
		WaitForModel bool `json:"wait_for_model"`
	} `json:"options"`
}

type hfSummaryResult struct {
	SummaryText   string `json:"summary_text"`
	GeneratedText string `json:"generated_text"`
}

type hfError struct {
	Error string `json:"error"`
}

// Summarize runs greedy, length-constrained generation and returns the best candidate.
func (c *HFInferenceClient) Summarize(ctx context.Context, modelID, input string) (string, error) {
	payload := hfSummaryRequest{
		Inputs: input,
		Parameters: hfSummaryParameters{
			MaxLength: SummaryMaxLength,
			MinLength: SummaryMinLength,
			DoSample:  false,
		},
	}
	payload.Options.WaitForModel = true

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/"+modelID, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.Token)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var apiErr hfError
		if json.Unmarshal(data, &apiErr) == nil && apiErr.Error != "" {
			return "", fmt.Errorf("huggingface error %d: %s", resp.StatusCode, apiErr.Error)
		}
		return "", fmt.Errorf("huggingface error %d: %s", resp.StatusCode, string(data))
	}

	var results []hfSummaryResult
	if err := json.Unmarshal(data, &results); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}
	if len(results) == 0 {
		return "", fmt.Errorf("empty response from %s", modelID)
	}

	if results[0].SummaryText != "" {
		return results[0].SummaryText, nil
	}
	return results[0].GeneratedText, nil
}
