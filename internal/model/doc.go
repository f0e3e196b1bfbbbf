// Package model defines the master-data records and the catalog
// aggregate used throughout sekai-dl.
//
// # Catalog
//
// Catalog bundles the four master-data collections and the derived
// track-to-vocals mapping. It is built once by the loader and shared
// read-only by all concurrent workers:
//
//	catalog := model.NewCatalog(musics, vocals, gameChars, outsideChars)
//	catalog.MusicsWithVocals() // tracks that will be scheduled
//	catalog.VocalCount()       // variant-counter total
//
// # Records
//
// Music, Vocal, GameCharacter and OutsideCharacter mirror the
// master-data JSON shapes (see internal/sekai/dto for the wire
// format). CharacterRef is the tagged reference a vocal uses to name
// its performers in either character catalog.
//
// # Paths
//
// Destination paths are computed on the Vocal:
//
//	path := vocal.FilePath(music, characterNames, &model.PathConfig{
//	    DownloadsPath: "./Download",
//	})
//	// "./Download/<vocalType>/<authors> - <title> - <vocalType>(<chars>).mp3"
//
// Path computation is deterministic, which enables skip-if-exists
// deduplication across runs.
package model
