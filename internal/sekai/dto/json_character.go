package dto

import (
	"github.com/ayutaki/sekai-dl/internal/model"
)

// JSONGameCharacter represents one element of the gameCharacters.json
// dataset. Only the fields the pipeline consumes are decoded.
type JSONGameCharacter struct {
	ID         int    `json:"id"`
	Seq        int    `json:"seq"`
	ResourceID int    `json:"resourceId"`
	FirstName  string `json:"firstName"`
	GivenName  string `json:"givenName"`
	Gender     string `json:"gender"`
	Unit       string `json:"unit"`
}

// ToGameCharacter converts a JSONGameCharacter to a
// model.GameCharacter.
func (jc *JSONGameCharacter) ToGameCharacter() *model.GameCharacter {
	return &model.GameCharacter{
		ID:         jc.ID,
		Seq:        jc.Seq,
		ResourceID: jc.ResourceID,
		FirstName:  jc.FirstName,
		GivenName:  jc.GivenName,
		Gender:     jc.Gender,
		Unit:       jc.Unit,
	}
}

// JSONOutsideCharacter represents one element of the
// outsideCharacters.json dataset.
type JSONOutsideCharacter struct {
	ID   int    `json:"id"`
	Seq  int    `json:"seq"`
	Name string `json:"name"`
}

// ToOutsideCharacter converts a JSONOutsideCharacter to a
// model.OutsideCharacter.
func (jc *JSONOutsideCharacter) ToOutsideCharacter() *model.OutsideCharacter {
	return &model.OutsideCharacter{
		ID:   jc.ID,
		Seq:  jc.Seq,
		Name: jc.Name,
	}
}
