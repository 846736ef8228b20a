package cards

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Category defines the type of a card using a typed enum.
type Category int

const (
	CategorySuspect Category = iota
	CategoryWeapon
	CategoryRoom
)

// Categories lists every category in deck order.
var Categories = []Category{CategorySuspect, CategoryWeapon, CategoryRoom}

func (c Category) String() string {
	return []string{"Suspect", "Weapon", "Room"}[c]
}

// ErrUnknownCard is matched by every catalog lookup failure.
var ErrUnknownCard = errors.New("unknown card")

// UnknownCardError reports a value outside the closed set of a category.
type UnknownCardError struct {
	Category Category
	Value    string
}

func (e *UnknownCardError) Error() string {
	return fmt.Sprintf("unknown %s %q", e.Category, e.Value)
}

func (e *UnknownCardError) Is(target error) bool { return target == ErrUnknownCard }

// Card is a single card of the deck. Two cards are equal when both the
// category and the name match, so Card can be compared with == and used as a
// map key.
type Card struct {
	Category Category
	Name     string
}

func SuspectCard(s Suspect) Card { return Card{Category: CategorySuspect, Name: string(s)} }
func WeaponCard(w Weapon) Card   { return Card{Category: CategoryWeapon, Name: string(w)} }
func RoomCard(r Room) Card       { return Card{Category: CategoryRoom, Name: string(r)} }

func (c Card) String() string { return c.Name }

// MarshalJSON encodes a card as a single-key object tagged by its category,
// e.g. {"Weapon":"Rope"}.
func (c Card) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]string{c.Category.String(): c.Name})
}

func (c *Card) UnmarshalJSON(data []byte) error {
	var tagged map[string]string
	if err := json.Unmarshal(data, &tagged); err != nil {
		return err
	}
	if len(tagged) != 1 {
		return fmt.Errorf("card must have exactly one category, got %d", len(tagged))
	}
	for tag, name := range tagged {
		switch tag {
		case CategorySuspect.String():
			s, err := ParseSuspect(name)
			if err != nil {
				return err
			}
			*c = SuspectCard(s)
		case CategoryWeapon.String():
			w, err := ParseWeapon(name)
			if err != nil {
				return err
			}
			*c = WeaponCard(w)
		case CategoryRoom.String():
			r, err := ParseRoom(name)
			if err != nil {
				return err
			}
			*c = RoomCard(r)
		default:
			return fmt.Errorf("unknown card category %q", tag)
		}
	}
	return nil
}

func (s *Suspect) UnmarshalJSON(data []byte) error { return unmarshalValue(data, s, ParseSuspect) }
func (w *Weapon) UnmarshalJSON(data []byte) error  { return unmarshalValue(data, w, ParseWeapon) }
func (r *Room) UnmarshalJSON(data []byte) error    { return unmarshalValue(data, r, ParseRoom) }

func unmarshalValue[T ~string](data []byte, dst *T, parse func(string) (T, error)) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	v, err := parse(raw)
	if err != nil {
		return err
	}
	*dst = v
	return nil
}
