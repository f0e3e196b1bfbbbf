package sekai

import (
	"errors"
	"fmt"

	"github.com/ayutaki/sekai-dl/internal/model"
)

// ErrUnknownCharacter is returned when a vocal references a character
// id that is absent from its catalog.
//
// This indicates a corrupt or inconsistent master-data snapshot, not
// a transient condition: the reference and the catalogs come from the
// same atomic load, so a miss can never heal by retrying.
var ErrUnknownCharacter = errors.New("unknown character id")

// ResolveCharacterNames resolves the ordered display names of a
// vocal's performers.
//
// Each CharacterRef is looked up in the catalog selected by its
// discriminant: in-game characters render as first name + given name,
// outside (guest) characters as their single name field. Order
// follows the vocal's character list.
//
// Returns an error wrapping ErrUnknownCharacter if any referenced id
// is missing; such errors are fatal and must not be retried.
func ResolveCharacterNames(vocal *model.Vocal, catalog *model.Catalog) ([]string, error) {
	names := make([]string, 0, len(vocal.Characters))
	for _, ref := range vocal.Characters {
		switch ref.Kind {
		case model.KindGame:
			c, ok := catalog.GameCharacters[ref.CharacterID]
			if !ok {
				return nil, fmt.Errorf("vocal %d: game character %d: %w", vocal.ID, ref.CharacterID, ErrUnknownCharacter)
			}
			names = append(names, c.FullName())
		case model.KindOutside:
			c, ok := catalog.OutsideCharacters[ref.CharacterID]
			if !ok {
				return nil, fmt.Errorf("vocal %d: outside character %d: %w", vocal.ID, ref.CharacterID, ErrUnknownCharacter)
			}
			names = append(names, c.Name)
		}
	}
	return names, nil
}
