package cards

// Suspect is one of the six people who may have committed the murder.
type Suspect string

const (
	Plum     Suspect = "Plum"
	Green    Suspect = "Green"
	Mustard  Suspect = "Mustard"
	Peacock  Suspect = "Peacock"
	Scarlett Suspect = "Scarlett"
	Orchid   Suspect = "Orchid"
)

// Weapon is one of the six possible murder weapons.
type Weapon string

const (
	Candlestick Weapon = "Candlestick"
	LeadPipe    Weapon = "LeadPipe"
	Dagger      Weapon = "Dagger"
	Rope        Weapon = "Rope"
	Revolver    Weapon = "Revolver"
	Wrench      Weapon = "Wrench"
)

// Room is one of the nine rooms of the mansion.
type Room string

const (
	Kitchen      Room = "Kitchen"
	Hall         Room = "Hall"
	Lounge       Room = "Lounge"
	Ballroom     Room = "Ballroom"
	Conservatory Room = "Conservatory"
	DiningRoom   Room = "DiningRoom"
	Library      Room = "Library"
	BilliardRoom Room = "BilliardRoom"
	Study        Room = "Study"
)

var (
	suspects = []Suspect{Plum, Green, Mustard, Peacock, Scarlett, Orchid}
	weapons  = []Weapon{Candlestick, LeadPipe, Dagger, Rope, Revolver, Wrench}
	rooms    = []Room{Kitchen, Hall, Lounge, Ballroom, Conservatory, DiningRoom, Library, BilliardRoom, Study}
)

// DeckSize is the number of cards in the full catalog.
const DeckSize = 6 + 6 + 9

// Suspects returns the suspects in catalog order. The slice is a copy.
func Suspects() []Suspect { return append([]Suspect(nil), suspects...) }

// Weapons returns the weapons in catalog order. The slice is a copy.
func Weapons() []Weapon { return append([]Weapon(nil), weapons...) }

// Rooms returns the rooms in catalog order. The slice is a copy.
func Rooms() []Room { return append([]Room(nil), rooms...) }

// All returns the full deck: suspects, then weapons, then rooms.
func All() []Card {
	deck := make([]Card, 0, DeckSize)
	for _, s := range suspects {
		deck = append(deck, SuspectCard(s))
	}
	for _, w := range weapons {
		deck = append(deck, WeaponCard(w))
	}
	for _, r := range rooms {
		deck = append(deck, RoomCard(r))
	}
	return deck
}

// ForCategory returns the cards of a single category in catalog order.
func ForCategory(cat Category) []Card {
	var out []Card
	for _, c := range All() {
		if c.Category == cat {
			out = append(out, c)
		}
	}
	return out
}

func ParseSuspect(s string) (Suspect, error) { return parse(CategorySuspect, suspects, s) }
func ParseWeapon(s string) (Weapon, error)   { return parse(CategoryWeapon, weapons, s) }
func ParseRoom(s string) (Room, error)       { return parse(CategoryRoom, rooms, s) }

// parse matches s exactly (case-sensitive) against the closed set of values.
func parse[T ~string](cat Category, values []T, s string) (T, error) {
	for _, v := range values {
		if string(v) == s {
			return v, nil
		}
	}
	var zero T
	return zero, &UnknownCardError{Category: cat, Value: s}
}
