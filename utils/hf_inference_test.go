package utils

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"testing"
	"time"
)

func TestHFInferenceClientHasNoTimeout(t *testing.T) {
	client := NewHFInferenceClient("http://localhost", "")
	if client.HTTPClient.Timeout != 0 {
		t.Errorf("Expected no client timeout, got %v", client.HTTPClient.Timeout)
	}
}

func TestHFInferenceClientStopsOnCancel(t *testing.T) {
	release := make(chan struct{})
	hf := newHFServer(t, func(w http.ResponseWriter, model string, req hfSummaryRequest) {
		<-release
		w.Write([]byte(`[{"summary_text":"late"}]`))
	})
	defer hf.Close()
	defer close(release)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	summarizer := NewRealTextSummarizer(NewHFInferenceClient(hf.URL, ""), nil, newTestDetector(), NewLogger(&bytes.Buffer{}, "debug"))
	model, _ := summaryModelByKey("bart")

	_, err := summarizer.Summarize(ctx, model, "input")
	if !errors.Is(err, ErrModelFailure) {
		t.Errorf("Expected ErrModelFailure after cancellation, got %v", err)
	}
}
