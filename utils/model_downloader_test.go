package utils

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"
)

func newHubServer(t *testing.T, files map[string]string, downloads *int32) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/api/models/acme/tiny-model", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer hf_test" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":"acme/tiny-model","siblings":[{"rfilename":"config.json"},{"rfilename":"tokenizer/vocab.txt"}]}`))
	})
	mux.HandleFunc("/acme/tiny-model/resolve/main/", func(w http.ResponseWriter, r *http.Request) {
		name := r.URL.Path[len("/acme/tiny-model/resolve/main/"):]
		content, ok := files[name]
		if !ok {
			http.NotFound(w, r)
			return
		}
		atomic.AddInt32(downloads, 1)
		w.Write([]byte(content))
	})
	return httptest.NewServer(mux)
}

func TestHubDownloaderDownload(t *testing.T) {
	var downloads int32
	server := newHubServer(t, map[string]string{
		"config.json":         `{"model_type":"bart"}`,
		"tokenizer/vocab.txt": "hello\nworld\n",
	}, &downloads)
	defer server.Close()

	dest := filepath.Join(t.TempDir(), "tiny-model")
	downloader := NewHubDownloader(server.URL, "hf_test", NewLogger(&bytes.Buffer{}, "debug"))

	var progressCalls int
	err := downloader.Download(context.Background(), "acme/tiny-model", dest, func(file string, downloaded, total int64) {
		progressCalls++
	})
	if err != nil {
		t.Fatalf("Download failed: %v", err)
	}

	content, err := os.ReadFile(filepath.Join(dest, "tokenizer", "vocab.txt"))
	if err != nil {
		t.Fatalf("Failed to read downloaded file: %v", err)
	}
	if string(content) != "hello\nworld\n" {
		t.Errorf("Unexpected content %q", content)
	}
	if _, err := os.Stat(filepath.Join(dest, "config.json.tmp")); !os.IsNotExist(err) {
		t.Errorf("Temporary file left behind")
	}
	if progressCalls == 0 {
		t.Error("Expected progress callbacks")
	}

	// Second run keeps existing files.
	if err := downloader.Download(context.Background(), "acme/tiny-model", dest, nil); err != nil {
		t.Fatalf("Second download failed: %v", err)
	}
	if got := atomic.LoadInt32(&downloads); got != 2 {
		t.Errorf("Expected 2 file downloads in total, got %d", got)
	}
}

func TestHubDownloaderMissingFile(t *testing.T) {
	var downloads int32
	server := newHubServer(t, map[string]string{"config.json": "{}"}, &downloads)
	defer server.Close()

	downloader := NewHubDownloader(server.URL, "hf_test", NewLogger(&bytes.Buffer{}, "debug"))
	if err := downloader.Download(context.Background(), "acme/tiny-model", t.TempDir(), nil); err == nil {
		t.Error("Expected error when a file is missing on the hub")
	}
}

func TestHubDownloaderUnauthorized(t *testing.T) {
	var downloads int32
	server := newHubServer(t, nil, &downloads)
	defer server.Close()

	downloader := NewHubDownloader(server.URL, "", NewLogger(&bytes.Buffer{}, "debug"))
	if err := downloader.Download(context.Background(), "acme/tiny-model", t.TempDir(), nil); err == nil {
		t.Error("Expected error for unauthorized repository listing")
	}
}

func TestHubDownloaderRejectsEscapingNames(t *testing.T) {
	tests := []struct {
		name     string
		filename string
	}{
		{"parent directory", "../escaped.txt"},
		{"nested parent directory", "tokenizer/../../escaped.txt"},
		{"absolute path", "/tmp/escaped.txt"},
		{"repository root", "."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var downloads int32
			mux := http.NewServeMux()
			mux.HandleFunc("/api/models/acme/evil", func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				fmt.Fprintf(w, `{"siblings":[{"rfilename":"config.json"},{"rfilename":%q}]}`, tt.filename)
			})
			mux.HandleFunc("/acme/evil/resolve/main/", func(w http.ResponseWriter, r *http.Request) {
				atomic.AddInt32(&downloads, 1)
				w.Write([]byte("payload"))
			})
			server := httptest.NewServer(mux)
			defer server.Close()

			root := t.TempDir()
			dest := filepath.Join(root, "models", "evil")
			downloader := NewHubDownloader(server.URL, "", NewLogger(&bytes.Buffer{}, "debug"))

			err := downloader.Download(context.Background(), "acme/evil", dest, nil)
			if err == nil {
				t.Fatal("Expected error for a file name outside the model directory")
			}
			if !strings.Contains(err.Error(), tt.filename) {
				t.Errorf("Expected error to name %q, got %v", tt.filename, err)
			}
			if got := atomic.LoadInt32(&downloads); got != 0 {
				t.Errorf("Expected no downloads, got %d", got)
			}
			if _, err := os.Stat(filepath.Join(root, "models", "escaped.txt")); !os.IsNotExist(err) {
				t.Error("File written outside the model directory")
			}
			if _, err := os.Stat(dest); !os.IsNotExist(err) {
				t.Error("Model directory should not be created for a rejected listing")
			}
		})
	}
}

func TestHubDownloaderProgressCountsBytes(t *testing.T) {
	var downloads int32
	server := newHubServer(t, map[string]string{
		"config.json":         `{"model_type":"bart"}`,
		"tokenizer/vocab.txt": "hello\nworld\n",
	}, &downloads)
	defer server.Close()

	downloader := NewHubDownloader(server.URL, "hf_test", NewLogger(&bytes.Buffer{}, "debug"))

	last := map[string]int64{}
	err := downloader.Download(context.Background(), "acme/tiny-model", t.TempDir(), func(file string, downloaded, total int64) {
		last[file] = downloaded
	})
	if err != nil {
		t.Fatalf("Download failed: %v", err)
	}
	if last["config.json"] != int64(len(`{"model_type":"bart"}`)) {
		t.Errorf("Unexpected byte count for config.json: %d", last["config.json"])
	}
	if last["tokenizer/vocab.txt"] != int64(len("hello\nworld\n")) {
		t.Errorf("Unexpected byte count for vocab.txt: %d", last["tokenizer/vocab.txt"])
	}
}
