package fetcher

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"time"
)

// ErrBadStatus marks a download rejected by the remote with a non-2xx code.
var ErrBadStatus = errors.New("bad status")

const sessionCookie = "FANBOXSESSID"

// Config holds downloader configuration.
type Config struct {
	Root    string
	Timeout time.Duration
}

// Fetcher downloads remote assets into the storage tree. Fetches are
// idempotent: a file already present under the hinted name is treated as the
// prior successful download and reused.
type Fetcher struct {
	httpClient *http.Client
	root       string
	logger     *slog.Logger
}

// New creates a new asset fetcher rooted at cfg.Root.
func New(cfg Config, logger *slog.Logger) *Fetcher {
	return &Fetcher{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		root:   cfg.Root,
		logger: logger.With("component", "fetcher"),
	}
}

// Fetch retrieves remoteURL into destDir (relative to the storage root)
// under nameHint and returns the filename actually used on disk. Callers
// must use the returned name; it is authoritative. The destination directory
// is created if absent. A partial download never lands under the final name.
func (f *Fetcher) Fetch(ctx context.Context, remoteURL, destDir, nameHint, sessionKey string) (string, error) {
	name := filepath.Base(nameHint)
	dir := filepath.Join(f.root, destDir)

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create dest dir: %w", err)
	}

	final := filepath.Join(dir, name)
	if _, err := os.Stat(final); err == nil {
		f.logger.Debug("asset already present", "name", name, "dir", destDir)
		return name, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, remoteURL, nil)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Cookie", sessionCookie+"="+sessionKey)
	req.Header.Set("Origin", "https://fanbox.cc")

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("%w: %d for %s", ErrBadStatus, resp.StatusCode, remoteURL)
	}

	tmp, err := os.CreateTemp(dir, "."+name+".part-*")
	if err != nil {
		return "", fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := io.Copy(tmp, resp.Body); err != nil {
		tmp.Close()
		return "", fmt.Errorf("write asset: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("close temp file: %w", err)
	}

	if err := os.Rename(tmp.Name(), final); err != nil {
		return "", fmt.Errorf("finalize asset: %w", err)
	}

	f.logger.Debug("fetched asset", "name", name, "dir", destDir)
	return name, nil
}
