package model

// CharacterKind discriminates the two character catalogs a vocal's
// performer reference can point into.
type CharacterKind int

const (
	// KindGame references the in-game character catalog.
	KindGame CharacterKind = iota

	// KindOutside references the guest (outside) character catalog.
	KindOutside
)

// CharacterRef identifies one performer of a vocal variant.
//
// The Kind selects the catalog the CharacterID is looked up in; the
// two catalogs have independent id spaces.
type CharacterRef struct {
	Kind        CharacterKind
	CharacterID int
}

// GameCharacter is an in-game character from the master data.
type GameCharacter struct {
	ID         int
	Seq        int
	ResourceID int

	// FirstName may be empty for single-name characters.
	FirstName string
	GivenName string

	Gender string
	Unit   string
}

// FullName returns the display name, composed as first name followed
// by given name with no separator (the names are Japanese).
func (c *GameCharacter) FullName() string {
	return c.FirstName + c.GivenName
}

// OutsideCharacter is a guest character from the master data. Guests
// carry a single display name.
type OutsideCharacter struct {
	ID   int
	Seq  int
	Name string
}
