package bootstrap

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Fetcher pulls the bootstrap outreach document from its well-known URL.
// It runs once at startup, only when no persisted snapshot exists; a
// failure is reported once and the store simply starts empty.
type Fetcher struct {
	URL    string
	Client *http.Client
}

func NewFetcher(url string) *Fetcher {
	return &Fetcher{
		URL:    url,
		Client: &http.Client{Timeout: 15 * time.Second},
	}
}

func (f *Fetcher) FetchCSV(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.URL, nil)
	if err != nil {
		return "", err
	}

	resp, err := f.Client.Do(req)
	if err != nil {
		return "", fmt.Errorf("bootstrap fetch failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("bootstrap fetch returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read bootstrap document: %w", err)
	}
	return string(body), nil
}
