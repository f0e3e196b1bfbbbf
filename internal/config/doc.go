// Package config provides application settings for sekai-dl.
//
// Settings are stored as JSON and loaded with fallback to defaults:
//
//	settings, err := config.Load("~/.config/sekai-dl/settings.json")
//
// The defaults reproduce the reference pipeline behavior exactly:
// unlimited download retries with no cooldown, one worker per track,
// the CDN's PNG jacket embedded untouched. Every knob that loosens
// those semantics (attempt caps, cooldowns, cover resizing,
// playlists) is opt-in.
package config
