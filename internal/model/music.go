package model

// NoAuthor is the sentinel the master data uses for absent
// lyricist/composer/arranger credits.
const NoAuthor = "-"

// Music represents one track from the music master data.
//
// Music contains the metadata needed to download and tag every vocal
// variant of a track:
//   - Title and author credits for ID3 tagging and file naming
//   - AssetBundleName for building the cover art URL
//   - Stage/filler attributes carried for completeness but not
//     consumed by the download pipeline
//
// A Music record is immutable once loaded; the catalog shares it
// read-only across all concurrent track workers.
//
// Example:
//
//	music := &model.Music{Title: "Tell Your World", Lyricist: "kz", Composer: "kz", Arranger: "-"}
//	music.AuthorNames() // ["kz"]
type Music struct {
	// ID is the track identifier; vocal variants reference it via MusicID.
	ID int

	// Seq is the display ordering index from the master data.
	Seq int

	// ReleaseConditionID gates in-game availability (not used here).
	ReleaseConditionID int

	// Categories is the ordered list of category tags.
	Categories []string

	// Title is the track title.
	Title string

	// Pronunciation is the kana reading of the title.
	Pronunciation string

	// Lyricist, Composer and Arranger are author credits.
	// Each may be the NoAuthor sentinel.
	Lyricist string
	Composer string
	Arranger string

	DancerCount        int
	SelfDancerPosition int

	// AssetBundleName names the asset bundle holding the jacket art.
	AssetBundleName string

	// LiveTalkBackgroundAssetBundleName is a stage attribute (unused).
	LiveTalkBackgroundAssetBundleName string

	// PublishedAt is the publication timestamp in Unix milliseconds.
	PublishedAt int64

	LiveStageID int
	FillerSec   int
}

// AuthorNames returns the de-duplicated, order-preserving list of
// author credits, excluding empty values and the NoAuthor sentinel.
//
// The order is always lyricist, composer, arranger, with later
// duplicates dropped:
//
//	Lyricist = "X", Composer = "X", Arranger = "-"  =>  ["X"]
func (m *Music) AuthorNames() []string {
	var names []string
	seen := make(map[string]struct{}, 3)
	for _, name := range []string{m.Lyricist, m.Composer, m.Arranger} {
		if name == "" || name == NoAuthor {
			continue
		}
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		names = append(names, name)
	}
	return names
}
