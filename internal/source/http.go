package source

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"Cascade/internal/model"
)

// HTTPFetcher pulls rows from an HTTP endpoint returning a JSON array of
// objects, e.g. [{"month":"jan","revenue":120.5}, ...].
type HTTPFetcher struct {
	URL    string
	APIKey string
	Client *http.Client
}

// NewHTTPFetcher creates a fetcher with optional bearer auth and proxy support.
func NewHTTPFetcher(rawURL, apiKey, proxyURL string) *HTTPFetcher {
	transport := &http.Transport{}
	if proxyURL != "" {
		if u, err := url.Parse(proxyURL); err == nil {
			transport.Proxy = http.ProxyURL(u)
		}
	}
	return &HTTPFetcher{
		URL:    rawURL,
		APIKey: apiKey,
		Client: &http.Client{
			Timeout:   30 * time.Second,
			Transport: transport,
		},
	}
}

func (f *HTTPFetcher) Name() string { return "http" }

func (f *HTTPFetcher) FetchRows(ctx context.Context) ([]model.Record, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.URL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	if f.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+f.APIKey)
	}

	resp, err := f.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch rows: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("source %s: status %d, body: %s", f.URL, resp.StatusCode, string(body))
	}

	var raw []map[string]any
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("decode rows: %w", err)
	}

	records := make([]model.Record, 0, len(raw))
	for _, fields := range raw {
		records = append(records, model.Record{Fields: fields})
	}
	return records, nil
}
