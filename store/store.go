// Package store fetches the settings document the field boots with.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/itsjaydesu/jayfolio-sub000/settings"
)

// Fetcher loads the settings document.
type Fetcher interface {
	Fetch(ctx context.Context) (settings.Document, error)
}

// HTTPFetcher reads the document from a JSON endpoint.
type HTTPFetcher struct {
	URL    string
	Client *http.Client
}

// Fetch implements Fetcher.
func (h *HTTPFetcher) Fetch(ctx context.Context) (settings.Document, error) {
	client := h.Client
	if client == nil {
		client = http.DefaultClient
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, h.URL, nil)
	if err != nil {
		return settings.Document{}, fmt.Errorf("building settings request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return settings.Document{}, fmt.Errorf("fetching settings: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return settings.Document{}, fmt.Errorf("fetching settings: unexpected status %s", resp.Status)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return settings.Document{}, fmt.Errorf("reading settings body: %w", err)
	}
	return settings.ParseDocument(data)
}

// FileStore keeps the document in a JSON file.
type FileStore struct {
	Path string
}

// Fetch implements Fetcher. A missing file is created with the defaults.
func (f *FileStore) Fetch(ctx context.Context) (settings.Document, error) {
	if err := ctx.Err(); err != nil {
		return settings.Document{}, err
	}
	data, err := os.ReadFile(f.Path)
	if errors.Is(err, fs.ErrNotExist) {
		doc := settings.DefaultDocument()
		if werr := f.Write(doc); werr != nil {
			return settings.Document{}, werr
		}
		return doc, nil
	}
	if err != nil {
		return settings.Document{}, fmt.Errorf("reading settings file: %w", err)
	}
	return settings.ParseDocument(data)
}

// Write merges doc over the defaults and persists it.
func (f *FileStore) Write(doc settings.Document) error {
	merged := settings.Merge(doc.Base.Partial(), doc.Influences)
	data, err := json.MarshalIndent(merged, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling settings: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(f.Path), 0755); err != nil {
		return fmt.Errorf("creating settings directory: %w", err)
	}
	if err := os.WriteFile(f.Path, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("writing settings file: %w", err)
	}
	return nil
}

// Open returns the fetcher for source: http(s) URLs fetch over the network,
// anything else is a file path. An empty source returns nil.
func Open(source string) Fetcher {
	switch {
	case source == "":
		return nil
	case strings.HasPrefix(source, "http://"), strings.HasPrefix(source, "https://"):
		return &HTTPFetcher{URL: source}
	default:
		return &FileStore{Path: source}
	}
}

// Bootstrap loads the document once. Any failure is logged and the
// compiled-in defaults are returned so the field still starts.
func Bootstrap(ctx context.Context, f Fetcher, timeout time.Duration) settings.Document {
	if f == nil {
		return settings.DefaultDocument()
	}
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	doc, err := f.Fetch(ctx)
	if err != nil {
		slog.Warn("settings fetch failed, using defaults", "error", err)
		return settings.DefaultDocument()
	}
	return doc
}
