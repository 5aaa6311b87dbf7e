package utils

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
)

// HubDownloader mirrors a model hub repository to a local directory.
type HubDownloader struct {
	BaseURL    string
	Token      string
	HTTPClient *http.Client
	Logger     Logger
}

func NewHubDownloader(baseURL, token string, log Logger) *HubDownloader {
	return &HubDownloader{
		BaseURL:    strings.TrimRight(baseURL, "/"),
		Token:      token,
		HTTPClient: http.DefaultClient,
		Logger:     log,
	}
}

type hubModelInfo struct {
	Siblings []struct {
		Filename string `json:"rfilename"`
	} `json:"siblings"`
}

// Download fetches every file of repoID into destDir. Files already present
// and non-empty are kept. progress may be nil.
func (d *HubDownloader) Download(ctx context.Context, repoID string, destDir string, progress func(file string, downloaded, total int64)) error {
	files, err := d.listFiles(ctx, repoID)
	if err != nil {
		return err
	}
	d.Logger.Info(ctx, "Repository %s has %d files", repoID, len(files))

	destPaths := make([]string, len(files))
	for i, file := range files {
		destPath, err := localModelPath(destDir, file)
		if err != nil {
			d.Logger.Error(ctx, "Refusing to download %s: %v", repoID, err)
			return err
		}
		destPaths[i] = destPath
	}

	if err := os.MkdirAll(destDir, os.ModePerm); err != nil {
		return fmt.Errorf("failed to create model directory: %w", err)
	}

	for i, file := range files {
		destPath := destPaths[i]
		if stat, err := os.Stat(destPath); err == nil && stat.Size() > 0 {
			d.Logger.Debug(ctx, "Skipping %s, already downloaded", file)
			continue
		}
		if err := d.downloadFile(ctx, repoID, file, destPath, progress); err != nil {
			return fmt.Errorf("failed to download %s: %w", file, err)
		}
		d.Logger.Info(ctx, "Downloaded %s", file)
	}

	return nil
}

// localModelPath maps a hub filename under destDir and rejects names that
// would resolve outside it.
func localModelPath(destDir, file string) (string, error) {
	if file == "" || strings.HasPrefix(file, "/") || filepath.IsAbs(filepath.FromSlash(file)) {
		return "", fmt.Errorf("invalid hub file name %q", file)
	}

	destPath := filepath.Join(destDir, filepath.FromSlash(file))
	rel, err := filepath.Rel(destDir, destPath)
	if err != nil || rel == "." || filepath.IsAbs(rel) || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("hub file %q resolves outside %s", file, destDir)
	}
	return destPath, nil
}

// progressWriter reports the running byte count of a file as it is written.
type progressWriter struct {
	file       string
	total      int64
	downloaded int64
	report     func(file string, downloaded, total int64)
}

func (w *progressWriter) Write(p []byte) (int, error) {
	w.downloaded += int64(len(p))
	if w.report != nil {
		w.report(w.file, w.downloaded, w.total)
	}
	return len(p), nil
}

func (d *HubDownloader) newRequest(ctx context.Context, url string) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	if d.Token != "" {
		req.Header.Set("Authorization", "Bearer "+d.Token)
	}
	return req, nil
}

func (d *HubDownloader) listFiles(ctx context.Context, repoID string) ([]string, error) {
	req, err := d.newRequest(ctx, fmt.Sprintf("%s/api/models/%s", d.BaseURL, repoID))
	if err != nil {
		return nil, err
	}

	resp, err := d.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", repoID, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to query %s: HTTP %s", repoID, resp.Status)
	}

	var info hubModelInfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return nil, fmt.Errorf("failed to decode model info: %w", err)
	}

	files := make([]string, 0, len(info.Siblings))
	for _, sibling := range info.Siblings {
		files = append(files, sibling.Filename)
	}
	return files, nil
}

func (d *HubDownloader) downloadFile(ctx context.Context, repoID, file, destPath string, progress func(file string, downloaded, total int64)) error {
	if err := os.MkdirAll(filepath.Dir(destPath), os.ModePerm); err != nil {
		return err
	}

	tmpPath := destPath + ".tmp"
	defer os.Remove(tmpPath)

	req, err := d.newRequest(ctx, fmt.Sprintf("%s/%s/resolve/main/%s", d.BaseURL, repoID, file))
	if err != nil {
		return err
	}

	resp, err := d.HTTPClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("HTTP %s", resp.Status)
	}

	out, err := os.Create(tmpPath)
	if err != nil {
		return err
	}

	counter := &progressWriter{file: file, total: resp.ContentLength, report: progress}
	if _, err := io.Copy(out, io.TeeReader(resp.Body, counter)); err != nil {
		out.Close()
		return err
	}

	if err := out.Close(); err != nil {
		return err
	}
	return os.Rename(tmpPath, destPath)
}
