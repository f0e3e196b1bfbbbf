package sekai

import "fmt"

// Default hosts for the master-data mirror and the asset CDN.
const (
	// DefaultMasterDataBaseURL serves the four master-data datasets.
	DefaultMasterDataBaseURL = "https://sekai-world.github.io/sekai-master-db-diff"

	// DefaultAssetBaseURL serves ripped jacket and audio assets.
	DefaultAssetBaseURL = "https://storage.sekai.best/sekai-assets"
)

// CoverURL builds the jacket-art URL for a track's asset bundle.
//
// Template: <host>/music/jacket/<bundle>_rip/<bundle>.png
func CoverURL(assetHost, bundleName string) string {
	return fmt.Sprintf("%s/music/jacket/%s_rip/%s.png", assetHost, bundleName, bundleName)
}

// AudioURL builds the full-length audio URL for a vocal's asset
// bundle.
//
// Template: <host>/music/long/<bundle>_rip/<bundle>.mp3
func AudioURL(assetHost, bundleName string) string {
	return fmt.Sprintf("%s/music/long/%s_rip/%s.mp3", assetHost, bundleName, bundleName)
}
