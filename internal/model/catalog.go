package model

// Catalog aggregates the four master-data collections plus the
// derived mapping from track id to its vocal variants.
//
// A Catalog is built once, fully, before any download begins and is
// never mutated afterwards, so concurrent track workers may read it
// without synchronization.
//
// Example:
//
//	catalog := model.NewCatalog(musics, vocals, gameChars, outsideChars)
//	for _, music := range catalog.MusicsWithVocals() {
//	    for _, vocal := range catalog.VocalsFor(music.ID) {
//	        // download vocal...
//	    }
//	}
type Catalog struct {
	// Musics is the full track list in master-data order.
	Musics []*Music

	// GameCharacters maps in-game character id to its record.
	GameCharacters map[int]*GameCharacter

	// OutsideCharacters maps guest character id to its record.
	OutsideCharacters map[int]*OutsideCharacter

	vocalsByMusic map[int][]*Vocal
}

// NewCatalog builds a Catalog from the four loaded collections.
//
// The vocal map preserves the insertion order of the vocals slice, so
// variants of a track are processed in master-data order. Vocals
// whose MusicID matches no loaded track stay in the map but are never
// reached, since scheduling iterates over Musics.
func NewCatalog(musics []*Music, vocals []*Vocal, game map[int]*GameCharacter, outside map[int]*OutsideCharacter) *Catalog {
	vocalsByMusic := make(map[int][]*Vocal)
	for _, v := range vocals {
		vocalsByMusic[v.MusicID] = append(vocalsByMusic[v.MusicID], v)
	}

	return &Catalog{
		Musics:            musics,
		GameCharacters:    game,
		OutsideCharacters: outside,
		vocalsByMusic:     vocalsByMusic,
	}
}

// VocalsFor returns the vocal variants of a track in master-data
// order, or nil for a track with no released variants.
func (c *Catalog) VocalsFor(musicID int) []*Vocal {
	return c.vocalsByMusic[musicID]
}

// MusicsWithVocals returns the tracks that have at least one vocal
// variant, preserving master-data order. Tracks with no variants are
// silently excluded: some tracks genuinely have no released vocals,
// so their absence from the vocal map is not an error.
func (c *Catalog) MusicsWithVocals() []*Music {
	musics := make([]*Music, 0, len(c.Musics))
	for _, m := range c.Musics {
		if len(c.vocalsByMusic[m.ID]) > 0 {
			musics = append(musics, m)
		}
	}
	return musics
}

// VocalCount returns the total number of vocal variants across all
// tracks that have at least one, i.e. the variant-counter total.
func (c *Catalog) VocalCount() int {
	count := 0
	for _, m := range c.Musics {
		count += len(c.vocalsByMusic[m.ID])
	}
	return count
}
