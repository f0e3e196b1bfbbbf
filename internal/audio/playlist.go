package audio

import (
	"fmt"
	"path/filepath"
	"strings"
)

// PlaylistFormat represents supported playlist file formats.
//
// Output directories are flat per-vocal-type folders, so only the two
// simple list formats are generated:
//   - M3U: plain text, widely supported
//   - PLS: INI-style, used by Winamp and friends
type PlaylistFormat int

const (
	// FormatM3U creates .m3u files (most compatible).
	// Can be extended with EXTINF lines carrying display titles.
	FormatM3U PlaylistFormat = iota

	// FormatPLS creates .pls files.
	FormatPLS
)

// Extension returns the file extension for the format, including the
// dot.
func (f PlaylistFormat) Extension() string {
	if f == FormatPLS {
		return ".pls"
	}
	return ".m3u"
}

// PlaylistEntry is one completed vocal file in a playlist.
type PlaylistEntry struct {
	// Path is the vocal's destination file path.
	Path string

	// Title is the display title, e.g. "Tell Your World (初音ミク)".
	Title string
}

// PlaylistCreator generates a playlist for one vocal-type directory.
//
// Entries reference files by bare filename, assuming the playlist
// lives in the same directory as the vocals it lists.
//
// Example:
//
//	creator := NewPlaylistCreator(FormatM3U, true)
//	content := creator.CreatePlaylist("sekai", entries)
//	os.WriteFile(filepath.Join(dir, "sekai"+creator.Extension()), []byte(content), 0644)
type PlaylistCreator struct {
	format   PlaylistFormat
	extended bool // For M3U: include EXTINF lines
}

// NewPlaylistCreator creates a new PlaylistCreator.
func NewPlaylistCreator(format PlaylistFormat, extended bool) *PlaylistCreator {
	return &PlaylistCreator{
		format:   format,
		extended: extended,
	}
}

// Extension returns the file extension of the configured format.
func (p *PlaylistCreator) Extension() string {
	return p.format.Extension()
}

// CreatePlaylist generates playlist content for one vocal-type
// directory. The name is informational (used as the PLS header
// comment); entries are emitted in the order given.
func (p *PlaylistCreator) CreatePlaylist(name string, entries []PlaylistEntry) string {
	if p.format == FormatPLS {
		return p.createPLS(entries)
	}
	return p.createM3U(entries)
}

// createM3U generates an M3U playlist.
//
// Extended M3U (when extended=true):
//
//	#EXTM3U
//	#EXTINF:-1,Display Title
//	filename.mp3
//
// Audio durations are not known without decoding the payloads, so
// EXTINF carries -1.
func (p *PlaylistCreator) createM3U(entries []PlaylistEntry) string {
	var sb strings.Builder

	if p.extended {
		sb.WriteString("#EXTM3U\n")
	}

	for _, entry := range entries {
		if p.extended {
			sb.WriteString(fmt.Sprintf("#EXTINF:-1,%s\n", entry.Title))
		}
		sb.WriteString(filepath.Base(entry.Path) + "\n")
	}

	return sb.String()
}

// createPLS generates a PLS playlist.
func (p *PlaylistCreator) createPLS(entries []PlaylistEntry) string {
	var sb strings.Builder

	sb.WriteString("[playlist]\n")

	for i, entry := range entries {
		idx := i + 1
		sb.WriteString(fmt.Sprintf("File%d=%s\n", idx, filepath.Base(entry.Path)))
		sb.WriteString(fmt.Sprintf("Title%d=%s\n", idx, entry.Title))
		sb.WriteString(fmt.Sprintf("Length%d=-1\n", idx))
	}

	sb.WriteString(fmt.Sprintf("NumberOfEntries=%d\n", len(entries)))
	sb.WriteString("Version=2\n")

	return sb.String()
}
