package cli

import (
	"fmt"
	"io"
	"strings"

	"example.com/cluedo-server/internal/cards"

	"github.com/jedib0t/go-pretty/v6/table"
)

// --- Help and Usage ---

var playCommands = []struct {
	name, alias, usage, description string
}{
	{"add", "a", "add <player>", "Seat a new player at the table."},
	{"remove", "rm", "remove <player>", "Remove a player; mid-game their cards leave play."},
	{"players", "p", "players", "List the players in turn order."},
	{"hand", "ha", "hand <player>", "Show the cards held by a player."},
	{"start", "", "start", "Choose the solution and deal the cards."},
	{"reset", "", "reset", "End the game and empty the table."},
	{"suggest", "s", "suggest <player> <suspect> <weapon> <room>", "Ask the table to disprove a suggestion."},
	{"accuse", "", "accuse <player> <suspect> <weapon> <room>", "Check an accusation against the solution."},
	{"help", "h", "help", "Show this help message."},
	{"quit", "q", "quit", "Leave the table."},
}

func printPlayHelp(w io.Writer) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendHeader(table.Row{"Command", "Alias", "Description"})
	t.AppendSeparator()
	for _, c := range playCommands {
		t.AppendRow(table.Row{c.usage, c.alias, c.description})
	}
	t.SetStyle(table.StyleLight)
	t.Render()

	C.Header.Fprintln(w, "\nCards")
	fmt.Fprintf(w, "  Suspects: %s\n", joinNames(cards.ForCategory(cards.CategorySuspect)))
	fmt.Fprintf(w, "  Weapons:  %s\n", joinNames(cards.ForCategory(cards.CategoryWeapon)))
	fmt.Fprintf(w, "  Rooms:    %s\n", joinNames(cards.ForCategory(cards.CategoryRoom)))
}

func printCommandUsage(w io.Writer, name string) {
	for _, c := range playCommands {
		if c.name == name {
			C.Warn.Fprintf(w, "Usage: %s\n", c.usage)
			return
		}
	}
}

func joinNames(cs []cards.Card) string {
	names := make([]string, len(cs))
	for i, c := range cs {
		names[i] = ColorizeCard(c.Name)
	}
	return strings.Join(names, ", ")
}

// --- Card input ---

// resolveCardName maps typed input onto the catalog's canonical spelling so
// that "leadpipe" finds LeadPipe. The engine itself stays case-sensitive.
func resolveCardName(cat cards.Category, input string) string {
	for _, c := range cards.ForCategory(cat) {
		if strings.EqualFold(c.Name, input) {
			return c.Name
		}
	}
	return input
}

// parseSuggestion reads a suspect, a weapon and a room, in that order.
func parseSuggestion(args []string) (cards.Suggestion, error) {
	if len(args) != 3 {
		return cards.Suggestion{}, fmt.Errorf("expected <suspect> <weapon> <room>, got %d values", len(args))
	}
	suspect, err := cards.ParseSuspect(resolveCardName(cards.CategorySuspect, args[0]))
	if err != nil {
		return cards.Suggestion{}, err
	}
	weapon, err := cards.ParseWeapon(resolveCardName(cards.CategoryWeapon, args[1]))
	if err != nil {
		return cards.Suggestion{}, err
	}
	room, err := cards.ParseRoom(resolveCardName(cards.CategoryRoom, args[2]))
	if err != nil {
		return cards.Suggestion{}, err
	}
	return cards.Suggestion{Suspect: suspect, Weapon: weapon, Room: room}, nil
}
