package sekai

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/ayutaki/sekai-dl/internal/model"
	"github.com/ayutaki/sekai-dl/internal/sekai/dto"
)

const sampleVocalJSON = `{
	"id": 201,
	"musicId": 47,
	"musicVocalType": "sekai",
	"seq": 1,
	"releaseConditionId": 1,
	"caption": "セカイver.",
	"characters": [
		{"id": 1, "musicId": 47, "musicVocalId": 201, "characterType": "game_character", "characterId": 21, "seq": 1},
		{"id": 2, "musicId": 47, "musicVocalId": 201, "characterType": "outside_character", "characterId": 3, "seq": 2}
	],
	"assetbundleName": "se_0047_01"
}`

func TestJSONVocal_AliasAndDiscriminant(t *testing.T) {
	var jv dto.JSONVocal
	if err := json.Unmarshal([]byte(sampleVocalJSON), &jv); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	vocal := jv.ToVocal()

	if vocal.AssetBundleName != "se_0047_01" {
		t.Errorf("AssetBundleName = %q, want %q (assetbundleName alias)", vocal.AssetBundleName, "se_0047_01")
	}
	if vocal.VocalType != "sekai" {
		t.Errorf("VocalType = %q, want %q", vocal.VocalType, "sekai")
	}
	if len(vocal.Characters) != 2 {
		t.Fatalf("len(Characters) = %d, want 2", len(vocal.Characters))
	}
	if vocal.Characters[0].Kind != model.KindGame || vocal.Characters[0].CharacterID != 21 {
		t.Errorf("Characters[0] = %+v, want game character 21", vocal.Characters[0])
	}
	if vocal.Characters[1].Kind != model.KindOutside || vocal.Characters[1].CharacterID != 3 {
		t.Errorf("Characters[1] = %+v, want outside character 3", vocal.Characters[1])
	}
}

func TestJSONMusic_AliasMapping(t *testing.T) {
	raw := `{"id": 47, "title": "Song", "assetbundleName": "jacket_s_047", "liveTalkBackgroundAssetbundleName": "bg_047", "publishedAt": 1601370000000}`

	var jm dto.JSONMusic
	if err := json.Unmarshal([]byte(raw), &jm); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	music := jm.ToMusic()
	if music.AssetBundleName != "jacket_s_047" {
		t.Errorf("AssetBundleName = %q, want %q", music.AssetBundleName, "jacket_s_047")
	}
	if music.LiveTalkBackgroundAssetBundleName != "bg_047" {
		t.Errorf("LiveTalkBackgroundAssetBundleName = %q, want %q", music.LiveTalkBackgroundAssetBundleName, "bg_047")
	}
	if music.PublishedAt != 1601370000000 {
		t.Errorf("PublishedAt = %d, want 1601370000000", music.PublishedAt)
	}
}

func newTestCatalog() *model.Catalog {
	game := map[int]*model.GameCharacter{
		21: {ID: 21, FirstName: "初音", GivenName: "ミク"},
		22: {ID: 22, GivenName: "KAITO"},
	}
	outside := map[int]*model.OutsideCharacter{
		3: {ID: 3, Name: "DECO*27"},
	}
	return model.NewCatalog(nil, nil, game, outside)
}

func TestResolveCharacterNames(t *testing.T) {
	catalog := newTestCatalog()
	vocal := &model.Vocal{
		ID: 201,
		Characters: []model.CharacterRef{
			{Kind: model.KindGame, CharacterID: 21},
			{Kind: model.KindOutside, CharacterID: 3},
			{Kind: model.KindGame, CharacterID: 22},
		},
	}

	names, err := ResolveCharacterNames(vocal, catalog)
	if err != nil {
		t.Fatalf("ResolveCharacterNames: %v", err)
	}

	want := []string{"初音ミク", "DECO*27", "KAITO"}
	if len(names) != len(want) {
		t.Fatalf("got %v, want %v", names, want)
	}
	for i := range names {
		if names[i] != want[i] {
			t.Errorf("names[%d] = %q, want %q", i, names[i], want[i])
		}
	}
}

func TestResolveCharacterNames_NoCharacters(t *testing.T) {
	names, err := ResolveCharacterNames(&model.Vocal{ID: 300}, newTestCatalog())
	if err != nil {
		t.Fatalf("ResolveCharacterNames: %v", err)
	}
	if len(names) != 0 {
		t.Errorf("expected no names, got %v", names)
	}
}

func TestResolveCharacterNames_UnknownID(t *testing.T) {
	catalog := newTestCatalog()

	tests := []struct {
		name string
		ref  model.CharacterRef
	}{
		{"unknown game character", model.CharacterRef{Kind: model.KindGame, CharacterID: 999}},
		{"unknown outside character", model.CharacterRef{Kind: model.KindOutside, CharacterID: 999}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			vocal := &model.Vocal{ID: 201, Characters: []model.CharacterRef{tt.ref}}
			_, err := ResolveCharacterNames(vocal, catalog)
			if !errors.Is(err, ErrUnknownCharacter) {
				t.Errorf("err = %v, want ErrUnknownCharacter", err)
			}
		})
	}
}

func TestAssetURLs(t *testing.T) {
	host := "https://assets.example.com/sekai-assets"

	if got, want := CoverURL(host, "jacket_s_047"), host+"/music/jacket/jacket_s_047_rip/jacket_s_047.png"; got != want {
		t.Errorf("CoverURL = %q, want %q", got, want)
	}
	if got, want := AudioURL(host, "se_0047_01"), host+"/music/long/se_0047_01_rip/se_0047_01.mp3"; got != want {
		t.Errorf("AudioURL = %q, want %q", got, want)
	}
}
