// Package http provides the HTTP client used for master-data and
// asset requests.
//
// The Client in this package handles:
//   - User-Agent headers
//   - Timeout handling
//   - JSON dataset decoding
//   - In-memory binary downloads
//
// # Basic Usage
//
//	client := http.NewClient()
//
//	// Decode a master-data dataset
//	var musics []dto.JSONMusic
//	err := client.GetJSON(ctx, baseURL+"/musics.json", &musics)
//
//	// Fetch cover art or an audio payload
//	data, err := client.DownloadBytes(ctx, assetURL)
//
// The client never retries on its own; retry policy lives with the
// callers in internal/download and internal/sekai, where transient
// failures are absorbed.
package http
