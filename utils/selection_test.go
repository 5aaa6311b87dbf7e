package utils

import (
	"bufio"
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestParseSelection(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		n       int
		want    int
		wantErr bool
	}{
		{"first", "1", 3, 0, false},
		{"last with whitespace", " 3\n", 3, 2, false},
		{"zero", "0", 3, 0, true},
		{"negative", "-1", 3, 0, true},
		{"above range", "4", 3, 0, true},
		{"not a number", "two", 3, 0, true},
		{"empty", "", 3, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseSelection(tt.input, tt.n)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseSelection() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvalidSelection) {
				t.Errorf("Expected ErrInvalidSelection, got %v", err)
			}
			if got != tt.want {
				t.Errorf("ParseSelection() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestPromptSelection(t *testing.T) {
	var out bytes.Buffer
	in := bufio.NewReader(strings.NewReader("2\n"))

	index, err := PromptSelection(in, &out, "Available video files:", "Enter the number of the file to transcribe: ", []string{"a.mp4", "b.mkv"})
	if err != nil {
		t.Fatalf("PromptSelection failed: %v", err)
	}
	if index != 1 {
		t.Errorf("Expected index 1, got %d", index)
	}

	want := "Available video files:\n1: a.mp4\n2: b.mkv\nEnter the number of the file to transcribe: "
	if out.String() != want {
		t.Errorf("Expected output %q, got %q", want, out.String())
	}
}

func TestPromptSelectionWithoutInput(t *testing.T) {
	in := bufio.NewReader(strings.NewReader(""))

	_, err := PromptSelection(in, &bytes.Buffer{}, "Available models:", "Enter the number of the model to use: ", []string{"bart"})
	if !errors.Is(err, ErrInvalidSelection) {
		t.Errorf("Expected ErrInvalidSelection, got %v", err)
	}
}
