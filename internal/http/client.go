package http

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client wraps HTTP operations against the master-data and asset
// hosts.
//
// Client provides:
//   - Configured User-Agent header
//   - Timeout handling
//   - JSON dataset decoding
//   - In-memory binary downloads for cover art and audio payloads
//
// Example usage:
//
//	client := NewClient()
//
//	// Decode a master-data dataset
//	var musics []dto.JSONMusic
//	err := client.GetJSON(ctx, "https://.../musics.json", &musics)
//
//	// Fetch a binary asset
//	cover, err := client.DownloadBytes(ctx, coverURL)
type Client struct {
	httpClient *http.Client
	userAgent  string
}

// NewClient creates a new HTTP client.
//
// The client is configured with:
//   - 60 second timeout
//   - "sekai-dl" User-Agent header
func NewClient() *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
		userAgent: "sekai-dl",
	}
}

// Get performs a GET request and returns the response body as bytes.
//
// The request includes the configured User-Agent header.
//
// Returns an error if:
//   - The request fails
//   - The response status is not 200 OK
//   - Reading the body fails
func (c *Client) Get(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP %d: %s", resp.StatusCode, resp.Status)
	}

	return io.ReadAll(resp.Body)
}

// GetJSON performs a GET request and decodes the JSON response body
// into v.
//
// This is the fetch+parse step of master-data loading: a decode
// failure is reported the same way as a network failure, so callers
// retry the whole batch either way.
//
// Example:
//
//	var vocals []dto.JSONVocal
//	err := client.GetJSON(ctx, baseURL+"/musicVocals.json", &vocals)
func (c *Client) GetJSON(ctx context.Context, url string, v any) error {
	body, err := c.Get(ctx, url)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, v); err != nil {
		return fmt.Errorf("decoding %s: %w", url, err)
	}
	return nil
}

// DownloadBytes downloads a binary asset and returns the bytes in
// memory.
//
// Both cover art and audio payloads are buffered rather than streamed
// to disk: a destination file only ever appears once its payload was
// fully fetched, which the skip-if-exists dedupe relies on.
//
// Example:
//
//	audio, err := client.DownloadBytes(ctx, sekai.AudioURL(host, vocal.AssetBundleName))
func (c *Client) DownloadBytes(ctx context.Context, url string) ([]byte, error) {
	return c.Get(ctx, url)
}
