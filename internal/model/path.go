package model

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
)

// PathConfig holds output layout settings.
//
// Files are written to <DownloadsPath>/<vocalType>/<filename>.mp3,
// one file per vocal variant.
type PathConfig struct {
	// DownloadsPath is the output root directory.
	// Example: "./Download"
	DownloadsPath string
}

// FileName computes the destination filename for this vocal variant.
//
// The filename template is:
//
//	<authors joined by ", "> - <title> - <vocalType>(<characters joined by ", ">).mp3
//
// The character suffix (parentheses included) is omitted entirely when
// the variant has no performers. Authors come from Music.AuthorNames,
// so a track with only sentinel credits yields a leading " - ".
//
// Forbidden filename characters (? * : < > | / \) are replaced with
// underscores. The result is deterministic for fixed inputs, which is
// what lets a later run detect prior completion by path existence.
//
// Example:
//
//	vocal.FileName(music, []string{"初音ミク"})
//	// "kz - Tell Your World - virtual_single(初音ミク).mp3"
func (v *Vocal) FileName(music *Music, characterNames []string) string {
	authors := strings.Join(music.AuthorNames(), ", ")

	suffix := ""
	if len(characterNames) > 0 {
		suffix = fmt.Sprintf("(%s)", strings.Join(characterNames, ", "))
	}

	fileName := fmt.Sprintf("%s - %s - %s%s.mp3", authors, music.Title, v.VocalType, suffix)
	return sanitizeFileName(fileName)
}

// FilePath computes the full destination path for this vocal variant.
//
// The vocal type doubles as the subdirectory name; it comes from a
// small closed set of tags and is used verbatim, only the filename is
// sanitized.
func (v *Vocal) FilePath(music *Music, characterNames []string, cfg *PathConfig) string {
	return filepath.Join(cfg.DownloadsPath, v.VocalType, v.FileName(music, characterNames))
}

// sanitizeFileName replaces characters that are invalid in file names
// with underscores.
//
// Only the characters ? * : < > | / \ are replaced; everything else,
// including leading/trailing spaces produced by empty author lists,
// is preserved so paths stay stable across runs.
func sanitizeFileName(name string) string {
	invalidChars := regexp.MustCompile(`[?*:<>|/\\]`)
	return invalidChars.ReplaceAllString(name, "_")
}
