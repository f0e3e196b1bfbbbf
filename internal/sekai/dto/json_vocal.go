package dto

import (
	"github.com/ayutaki/sekai-dl/internal/model"
)

// characterTypeGame is the discriminant value for in-game characters;
// every other value references the outside-character catalog.
const characterTypeGame = "game_character"

// JSONVocal represents one element of the musicVocals.json dataset.
type JSONVocal struct {
	ID                 int                  `json:"id"`
	MusicID            int                  `json:"musicId"`
	MusicVocalType     string               `json:"musicVocalType"`
	Seq                int                  `json:"seq"`
	ReleaseConditionID int                  `json:"releaseConditionId"`
	Caption            string               `json:"caption"`
	Characters         []JSONVocalCharacter `json:"characters"`
	AssetBundleName    string               `json:"assetbundleName"`
}

// JSONVocalCharacter is a performer reference within a vocal.
type JSONVocalCharacter struct {
	ID            int    `json:"id"`
	MusicID       int    `json:"musicId"`
	MusicVocalID  int    `json:"musicVocalId"`
	CharacterType string `json:"characterType"`
	CharacterID   int    `json:"characterId"`
	Seq           int    `json:"seq"`
}

// ToVocal converts a JSONVocal to a model.Vocal, mapping each
// performer's runtime type tag onto the CharacterRef discriminant.
func (jv *JSONVocal) ToVocal() *model.Vocal {
	characters := make([]model.CharacterRef, 0, len(jv.Characters))
	for _, jc := range jv.Characters {
		kind := model.KindOutside
		if jc.CharacterType == characterTypeGame {
			kind = model.KindGame
		}
		characters = append(characters, model.CharacterRef{
			Kind:        kind,
			CharacterID: jc.CharacterID,
		})
	}

	return &model.Vocal{
		ID:                 jv.ID,
		MusicID:            jv.MusicID,
		VocalType:          jv.MusicVocalType,
		Seq:                jv.Seq,
		ReleaseConditionID: jv.ReleaseConditionID,
		Caption:            jv.Caption,
		Characters:         characters,
		AssetBundleName:    jv.AssetBundleName,
	}
}
