// Package audio handles ID3 tagging of downloaded vocals and
// playlist generation.
//
// # Tagging
//
// Tagger writes metadata in two ordered passes over one tag
// container: textual frames first (persisted), then the front-cover
// picture frame (persisted). See Tagger for the frame layout.
//
//	tagger := audio.NewTagger(audio.DefaultTagConfig())
//	err := tagger.SaveTags(path, music, vocal, names, cover, mime)
//
// # Playlists
//
// PlaylistCreator generates optional M3U/PLS playlists per vocal-type
// directory after a run completes.
package audio
