package dto

import (
	"github.com/ayutaki/sekai-dl/internal/model"
)

// JSONMusic represents one element of the musics.json dataset.
//
// The wire format spells the bundle fields "assetbundleName"; the
// struct tags carry the alias mapping to the internal names.
type JSONMusic struct {
	ID                                int      `json:"id"`
	Seq                               int      `json:"seq"`
	ReleaseConditionID                int      `json:"releaseConditionId"`
	Categories                        []string `json:"categories"`
	Title                             string   `json:"title"`
	Pronunciation                     string   `json:"pronunciation"`
	Lyricist                          string   `json:"lyricist"`
	Composer                          string   `json:"composer"`
	Arranger                          string   `json:"arranger"`
	DancerCount                       int      `json:"dancerCount"`
	SelfDancerPosition                int      `json:"selfDancerPosition"`
	AssetBundleName                   string   `json:"assetbundleName"`
	LiveTalkBackgroundAssetBundleName string   `json:"liveTalkBackgroundAssetbundleName"`
	PublishedAt                       int64    `json:"publishedAt"`
	LiveStageID                       int      `json:"liveStageId"`
	FillerSec                         int      `json:"fillerSec"`
}

// ToMusic converts a JSONMusic to a model.Music.
func (jm *JSONMusic) ToMusic() *model.Music {
	return &model.Music{
		ID:                                jm.ID,
		Seq:                               jm.Seq,
		ReleaseConditionID:                jm.ReleaseConditionID,
		Categories:                        jm.Categories,
		Title:                             jm.Title,
		Pronunciation:                     jm.Pronunciation,
		Lyricist:                          jm.Lyricist,
		Composer:                          jm.Composer,
		Arranger:                          jm.Arranger,
		DancerCount:                       jm.DancerCount,
		SelfDancerPosition:                jm.SelfDancerPosition,
		AssetBundleName:                   jm.AssetBundleName,
		LiveTalkBackgroundAssetBundleName: jm.LiveTalkBackgroundAssetBundleName,
		PublishedAt:                       jm.PublishedAt,
		LiveStageID:                       jm.LiveStageID,
		FillerSec:                         jm.FillerSec,
	}
}
