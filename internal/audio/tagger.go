package audio

import (
	"fmt"
	"strings"

	"github.com/ayutaki/sekai-dl/internal/model"
	"github.com/bogem/id3v2"
)

// albumPrefix is the product name used in the TALB frame.
const albumPrefix = "Project Sekai Soundtrack"

// coverDescription is the APIC frame description for embedded covers.
const coverDescription = "Cover (front)"

// TagConfig holds tagging configuration.
type TagConfig struct {
	// ModifyTags is a master switch for the textual frame pass.
	ModifyTags bool

	// EmbedCover controls the attached-picture pass.
	EmbedCover bool
}

// DefaultTagConfig returns the default tag configuration: both the
// textual pass and the cover pass enabled.
func DefaultTagConfig() *TagConfig {
	return &TagConfig{
		ModifyTags: true,
		EmbedCover: true,
	}
}

// Tagger writes ID3 tags to downloaded vocal files.
//
// Tagging happens in two ordered passes over one tag container:
//
//  1. Textual frames: title, author credits, artist, performer,
//     album. Persisted before the next pass.
//  2. Attached picture: one front-cover APIC frame holding the
//     track's jacket art.
//
// The split preserves the write-then-enrich ordering: the textual
// frames are always on disk before the binary frame is appended, so a
// failure in the picture pass never corrupts them.
//
// Example:
//
//	tagger := NewTagger(DefaultTagConfig())
//	err := tagger.SaveTags(path, music, vocal, characterNames, coverPNG, ioutils.MimePNG)
type Tagger struct {
	config *TagConfig
}

// NewTagger creates a new Tagger with the given configuration.
//
// If config is nil, DefaultTagConfig() is used.
func NewTagger(config *TagConfig) *Tagger {
	if config == nil {
		config = DefaultTagConfig()
	}
	return &Tagger{config: config}
}

// SaveTags writes ID3 tags to a downloaded vocal file.
//
// Parameters:
//   - path: the vocal's destination file (must exist)
//   - music: the owning track (title, author credits)
//   - vocal: the variant (vocal type, for the album name)
//   - characterNames: resolved performer names, in variant order
//   - cover: image bytes for the front cover (nil to skip)
//   - coverMime: MIME type of the cover bytes, e.g. "image/png"
//
// A failure to open or persist the container is fatal for the vocal;
// it is never retried, unlike network fetches.
func (t *Tagger) SaveTags(path string, music *model.Music, vocal *model.Vocal, characterNames []string, cover []byte, coverMime string) error {
	tag, err := id3v2.Open(path, id3v2.Options{Parse: true})
	if err != nil {
		return fmt.Errorf("opening tag container %s: %w", path, err)
	}
	defer tag.Close()

	if t.config.ModifyTags {
		t.writeTextFrames(tag, music, vocal, characterNames)
		// Persist the textual pass before appending the binary frame.
		if err := tag.Save(); err != nil {
			return fmt.Errorf("saving text frames for %s: %w", path, err)
		}
	}

	if t.config.EmbedCover && cover != nil {
		t.attachPicture(tag, cover, coverMime)
		if err := tag.Save(); err != nil {
			return fmt.Errorf("saving cover frame for %s: %w", path, err)
		}
	}

	return nil
}

// writeTextFrames writes the textual pass.
//
// Author credits equal to the "-" sentinel (or empty) are omitted
// entirely, never written as empty frames. The artist list puts
// performers first, then the de-duplicated author credits; order
// matters for downstream players.
func (t *Tagger) writeTextFrames(tag *id3v2.Tag, music *model.Music, vocal *model.Vocal, characterNames []string) {
	tag.SetTitle(music.Title)

	// Lyricist (TEXT), Composer (TCOM), Arranger (TPE4)
	if music.Lyricist != "" && music.Lyricist != model.NoAuthor {
		tag.AddTextFrame("TEXT", id3v2.EncodingUTF8, music.Lyricist)
	}
	if music.Composer != "" && music.Composer != model.NoAuthor {
		tag.AddTextFrame("TCOM", id3v2.EncodingUTF8, music.Composer)
	}
	if music.Arranger != "" && music.Arranger != model.NoAuthor {
		tag.AddTextFrame("TPE4", id3v2.EncodingUTF8, music.Arranger)
	}

	// Artist (TPE1): performers first, then authors.
	artists := append(append([]string{}, characterNames...), music.AuthorNames()...)
	tag.SetArtist(strings.Join(artists, "/"))

	// Performer (TOPE): performers alone.
	if len(characterNames) > 0 {
		tag.AddTextFrame("TOPE", id3v2.EncodingUTF8, strings.Join(characterNames, "/"))
	}

	// Album (TALB)
	tag.SetAlbum(fmt.Sprintf("%s - %s", albumPrefix, vocal.VocalType))
}

// attachPicture appends the front-cover picture frame.
func (t *Tagger) attachPicture(tag *id3v2.Tag, cover []byte, mime string) {
	pic := id3v2.PictureFrame{
		Encoding:    id3v2.EncodingUTF8,
		MimeType:    mime,
		PictureType: id3v2.PTFrontCover,
		Description: coverDescription,
		Picture:     cover,
	}
	tag.AddAttachedPicture(pic)
}
