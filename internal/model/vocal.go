package model

// Vocal represents one vocal variant of a track.
//
// Many vocals belong to one Music (1:N). Each vocal has its own asset
// bundle (the audio payload) and its own ordered list of performing
// characters, resolved against the catalog at download time.
type Vocal struct {
	// ID is the vocal variant identifier.
	ID int

	// MusicID references the owning Music.
	MusicID int

	// VocalType is the variant-type tag, e.g. "sekai" or
	// "virtual_single". It doubles as the output subdirectory name.
	VocalType string

	// Seq is the display ordering index from the master data.
	Seq int

	// ReleaseConditionID gates in-game availability (not used here).
	ReleaseConditionID int

	// Caption is the in-game display caption for the variant.
	Caption string

	// Characters is the ordered list of performing character
	// references.
	Characters []CharacterRef

	// AssetBundleName names the asset bundle holding the audio file.
	AssetBundleName string
}
