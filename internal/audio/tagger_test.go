package audio

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ayutaki/sekai-dl/internal/model"
	"github.com/bogem/id3v2"
)

func writeTestFile(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "vocal.mp3")
	if err := os.WriteFile(path, []byte("not really mpeg audio"), 0644); err != nil {
		t.Fatalf("write test file: %v", err)
	}
	return path
}

func readTag(t *testing.T, path string) *id3v2.Tag {
	t.Helper()
	tag, err := id3v2.Open(path, id3v2.Options{Parse: true})
	if err != nil {
		t.Fatalf("reopen tag: %v", err)
	}
	t.Cleanup(func() { tag.Close() })
	return tag
}

func TestTagger_SaveTags(t *testing.T) {
	path := writeTestFile(t)
	music := &model.Music{Title: "Song", Lyricist: "X", Composer: "Y", Arranger: "-"}
	vocal := &model.Vocal{VocalType: "sekai"}
	cover := []byte{0x89, 'P', 'N', 'G'}

	tagger := NewTagger(DefaultTagConfig())
	if err := tagger.SaveTags(path, music, vocal, []string{"Miku", "Rin"}, cover, "image/png"); err != nil {
		t.Fatalf("SaveTags: %v", err)
	}

	tag := readTag(t, path)

	if got := tag.Title(); got != "Song" {
		t.Errorf("title = %q, want %q", got, "Song")
	}
	// Artist: performers first, then authors.
	if got := tag.Artist(); got != "Miku/Rin/X/Y" {
		t.Errorf("artist = %q, want %q", got, "Miku/Rin/X/Y")
	}
	if got := tag.GetTextFrame("TOPE").Text; got != "Miku/Rin" {
		t.Errorf("performer = %q, want %q", got, "Miku/Rin")
	}
	if got := tag.Album(); got != "Project Sekai Soundtrack - sekai" {
		t.Errorf("album = %q, want %q", got, "Project Sekai Soundtrack - sekai")
	}
	if got := tag.GetTextFrame("TEXT").Text; got != "X" {
		t.Errorf("lyricist = %q, want %q", got, "X")
	}
	if got := tag.GetTextFrame("TCOM").Text; got != "Y" {
		t.Errorf("composer = %q, want %q", got, "Y")
	}
	// The "-" sentinel must be omitted, not written as an empty frame.
	if got := tag.GetTextFrame("TPE4").Text; got != "" {
		t.Errorf("arranger frame present with %q, want omitted", got)
	}
}

func TestTagger_AttachesFrontCover(t *testing.T) {
	path := writeTestFile(t)
	music := &model.Music{Title: "Song"}
	vocal := &model.Vocal{VocalType: "instrumental"}
	cover := []byte{1, 2, 3, 4}

	tagger := NewTagger(DefaultTagConfig())
	if err := tagger.SaveTags(path, music, vocal, nil, cover, "image/png"); err != nil {
		t.Fatalf("SaveTags: %v", err)
	}

	tag := readTag(t, path)
	frames := tag.GetFrames(tag.CommonID("Attached picture"))
	if len(frames) != 1 {
		t.Fatalf("got %d picture frames, want 1", len(frames))
	}

	pic, ok := frames[0].(id3v2.PictureFrame)
	if !ok {
		t.Fatalf("frame has type %T, want PictureFrame", frames[0])
	}
	if pic.MimeType != "image/png" {
		t.Errorf("mime = %q, want image/png", pic.MimeType)
	}
	if pic.PictureType != id3v2.PTFrontCover {
		t.Errorf("picture type = %d, want front cover", pic.PictureType)
	}
	if pic.Description != "Cover (front)" {
		t.Errorf("description = %q, want %q", pic.Description, "Cover (front)")
	}
	if len(pic.Picture) != len(cover) {
		t.Errorf("picture data length = %d, want %d", len(pic.Picture), len(cover))
	}
}

func TestTagger_NilCoverSkipsPictureFrame(t *testing.T) {
	path := writeTestFile(t)

	tagger := NewTagger(DefaultTagConfig())
	if err := tagger.SaveTags(path, &model.Music{Title: "Song"}, &model.Vocal{VocalType: "sekai"}, nil, nil, ""); err != nil {
		t.Fatalf("SaveTags: %v", err)
	}

	tag := readTag(t, path)
	if frames := tag.GetFrames(tag.CommonID("Attached picture")); len(frames) != 0 {
		t.Errorf("got %d picture frames, want 0", len(frames))
	}
}

func TestTagger_NoPerformersOmitsFrame(t *testing.T) {
	path := writeTestFile(t)
	music := &model.Music{Title: "Song", Composer: "Y"}
	vocal := &model.Vocal{VocalType: "instrumental"}

	tagger := NewTagger(DefaultTagConfig())
	if err := tagger.SaveTags(path, music, vocal, nil, nil, ""); err != nil {
		t.Fatalf("SaveTags: %v", err)
	}

	tag := readTag(t, path)
	if got := tag.GetTextFrame("TOPE").Text; got != "" {
		t.Errorf("performer frame present with %q, want omitted", got)
	}
	// Artist falls back to the authors alone.
	if got := tag.Artist(); got != "Y" {
		t.Errorf("artist = %q, want %q", got, "Y")
	}
}

func TestTagger_MissingFileIsFatal(t *testing.T) {
	tagger := NewTagger(DefaultTagConfig())
	err := tagger.SaveTags(filepath.Join(t.TempDir(), "missing.mp3"), &model.Music{}, &model.Vocal{}, nil, nil, "")
	if err == nil {
		t.Error("SaveTags on a missing file should fail")
	}
}
