package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/ayutaki/sekai-dl/internal/model"
	"github.com/ayutaki/sekai-dl/internal/sekai"
)

// Settings holds all configuration options.
type Settings struct {
	// Download settings
	DownloadsPath         string  `json:"downloads_path"`
	MasterDataBaseURL     string  `json:"master_data_base_url"`
	AssetBaseURL          string  `json:"asset_base_url"`
	MaxConcurrentTracks   int     `json:"max_concurrent_tracks"`   // 0 = one worker per track
	DownloadMaxAttempts   int     `json:"download_max_attempts"`   // 0 = retry forever
	DownloadRetryCooldown float64 `json:"download_retry_cooldown"` // seconds between attempts

	// Cover art settings
	SaveCoverArtInTags    bool `json:"save_cover_art_in_tags"`
	CoverArtInTagsResize  bool `json:"cover_art_in_tags_resize"`
	CoverArtInTagsMaxSize int  `json:"cover_art_in_tags_max_size"`
	ConvertCoverArtToJPG  bool `json:"convert_cover_art_to_jpg"`

	// Playlist settings
	CreatePlaylist bool   `json:"create_playlist"`
	PlaylistFormat string `json:"playlist_format"` // m3u, pls
	M3UExtended    bool   `json:"m3u_extended"`

	// Tag settings
	ModifyTags bool `json:"modify_tags"`
}

// DefaultSettings returns settings with default values.
//
// The defaults reproduce the reference behavior: output under
// ./Download, unlimited download attempts with no cooldown, the PNG
// jacket embedded untouched, no playlists.
func DefaultSettings() *Settings {
	return &Settings{
		DownloadsPath:         filepath.Join(".", "Download"),
		MasterDataBaseURL:     sekai.DefaultMasterDataBaseURL,
		AssetBaseURL:          sekai.DefaultAssetBaseURL,
		MaxConcurrentTracks:   0,
		DownloadMaxAttempts:   0,
		DownloadRetryCooldown: 0,

		SaveCoverArtInTags:    true,
		CoverArtInTagsResize:  false,
		CoverArtInTagsMaxSize: 1000,
		ConvertCoverArtToJPG:  false,

		CreatePlaylist: false,
		PlaylistFormat: "m3u",
		M3UExtended:    true,

		ModifyTags: true,
	}
}

// Load reads settings from a JSON file. A missing file yields the
// defaults.
func Load(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultSettings(), nil
		}
		return nil, err
	}

	settings := DefaultSettings()
	if err := json.Unmarshal(data, settings); err != nil {
		return nil, err
	}

	return settings, nil
}

// Save writes settings to a JSON file.
func (s *Settings) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// ToPathConfig converts settings to the model's path configuration.
func (s *Settings) ToPathConfig() *model.PathConfig {
	return &model.PathConfig{
		DownloadsPath: s.DownloadsPath,
	}
}
