package cards

import "fmt"

// Suggestion is a claim that the murder was committed by Suspect with Weapon
// in Room. The hidden solution uses the same shape.
type Suggestion struct {
	Suspect Suspect `json:"suspect"`
	Weapon  Weapon  `json:"weapon"`
	Room    Room    `json:"room"`
}

// Cards returns the three cards named by the suggestion.
func (s Suggestion) Cards() []Card {
	return []Card{SuspectCard(s.Suspect), WeaponCard(s.Weapon), RoomCard(s.Room)}
}

// Contains reports whether c is one of the suggested cards.
func (s Suggestion) Contains(c Card) bool {
	for _, sc := range s.Cards() {
		if sc == c {
			return true
		}
	}
	return false
}

// Validate rejects suggestions naming values outside the catalog, including
// fields left empty by a decoder.
func (s Suggestion) Validate() error {
	if _, err := ParseSuspect(string(s.Suspect)); err != nil {
		return err
	}
	if _, err := ParseWeapon(string(s.Weapon)); err != nil {
		return err
	}
	if _, err := ParseRoom(string(s.Room)); err != nil {
		return err
	}
	return nil
}

// FromCards builds a suggestion from one card of each category, in any order.
func FromCards(cs ...Card) (Suggestion, error) {
	var s Suggestion
	seen := make(map[Category]bool)
	for _, c := range cs {
		if seen[c.Category] {
			return Suggestion{}, fmt.Errorf("two %s cards in suggestion", c.Category)
		}
		seen[c.Category] = true
		switch c.Category {
		case CategorySuspect:
			s.Suspect = Suspect(c.Name)
		case CategoryWeapon:
			s.Weapon = Weapon(c.Name)
		case CategoryRoom:
			s.Room = Room(c.Name)
		}
	}
	if len(seen) != len(Categories) {
		return Suggestion{}, fmt.Errorf("suggestion needs one card of each category, got %d", len(seen))
	}
	return s, s.Validate()
}

func (s Suggestion) String() string {
	return fmt.Sprintf("%s with the %s in the %s", s.Suspect, s.Weapon, s.Room)
}
