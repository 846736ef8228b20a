package cli

import (
	"fmt"
	"io"
	"strings"

	"example.com/cluedo-server/internal/ai"
	"example.com/cluedo-server/internal/cards"
	"example.com/cluedo-server/internal/events"
	"example.com/cluedo-server/internal/player"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// C holds pre-configured color objects for printing to the console.
var C = struct {
	Yes, No, Maybe, Info, Warn, Header, Prompt, Debug *color.Color
}{
	Yes:    color.New(color.FgGreen),
	No:     color.New(color.FgRed),
	Maybe:  color.New(color.FgYellow),
	Info:   color.New(color.FgCyan),
	Warn:   color.New(color.FgHiYellow),
	Header: color.New(color.FgWhite, color.Bold),
	Prompt: color.New(color.FgHiWhite),
	Debug:  color.New(color.FgMagenta),
}

// SuspectColors maps suspect names to specific colors for display.
var SuspectColors = map[string]*color.Color{
	string(cards.Scarlett): color.New(color.FgRed),
	string(cards.Mustard):  color.New(color.FgYellow),
	string(cards.Orchid):   color.New(color.FgWhite),
	string(cards.Green):    color.New(color.FgGreen),
	string(cards.Peacock):  color.New(color.FgBlue),
	string(cards.Plum):     color.New(color.FgMagenta),
}

// ColorizeCard returns a name as a colored string if it's a suspect.
func ColorizeCard(name string) string {
	if c, ok := SuspectColors[name]; ok {
		return c.Sprint(name)
	}
	return name
}

func colorizeSuggestion(s cards.Suggestion) string {
	var parts []string
	for _, c := range s.Cards() {
		parts = append(parts, ColorizeCard(c.Name))
	}
	return strings.Join(parts, ", ")
}

// RenderPlayers prints the roster as a table. Hands are only listed when
// showHands is set.
func RenderPlayers(w io.Writer, players []player.Player, showHands bool) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	header := table.Row{"#", "Player", "Cards"}
	if showHands {
		header = append(header, "Hand")
	}
	t.AppendHeader(header)
	for i, p := range players {
		row := table.Row{i + 1, ColorizeCard(p.Name), len(p.Cards)}
		if showHands {
			var names []string
			for _, c := range p.Cards {
				names = append(names, ColorizeCard(c.Name))
			}
			row = append(row, strings.Join(names, ", "))
		}
		t.AppendRow(row)
	}
	t.SetStyle(table.StyleLight)
	t.SetColumnConfigs([]table.ColumnConfig{{Number: 1, Align: text.AlignRight}})
	t.Render()
}

// RenderNotes displays a notebook's knowledge grid in a formatted table.
func RenderNotes(w io.Writer, nb *ai.Notebook) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetTitle(fmt.Sprintf("%s's Detective Notes", nb.Owner()))
	header := table.Row{"ID", "Card", "Type"}
	for _, pName := range nb.Players() {
		header = append(header, ColorizeCard(pName))
	}
	header = append(header, "Solution")
	t.AppendHeader(header)

	all := cards.All()
	for cardID, card := range all {
		if cardID > 0 && card.Category != all[cardID-1].Category {
			t.AppendSeparator()
		}
		row := table.Row{cardID + 1, ColorizeCard(card.Name), card.Category.String()}
		for _, pName := range nb.Players() {
			row = append(row, statusToSymbol(nb.Status(card, pName)))
		}
		row = append(row, statusToSymbol(nb.Status(card, ai.SolutionLocation)))
		t.AppendRow(row)
	}
	t.SetStyle(table.StyleRounded)
	t.Style().Options.SeparateRows = false
	t.Style().Title.Align = text.AlignCenter
	t.SetColumnConfigs([]table.ColumnConfig{{Number: 1, Align: text.AlignRight}})
	t.Render()
}

func statusToSymbol(status ai.CardStatus) string {
	switch status {
	case ai.StatusYes:
		return C.Yes.Sprint("✔")
	case ai.StatusNo:
		return C.No.Sprint("✖")
	default:
		return C.Maybe.Sprint("?")
	}
}

// SimulationRenderer implements the events.Listener interface to print game state.
type SimulationRenderer struct {
	w io.Writer
}

func NewSimulationRenderer(w io.Writer) *SimulationRenderer {
	return &SimulationRenderer{w: w}
}

// HandleEvent is the central dispatcher for rendering events.
func (r *SimulationRenderer) HandleEvent(e events.Event) {
	switch event := e.(type) {
	case events.GameStartedEvent:
		C.Header.Fprintf(r.w, "--- Game %s: %d players ---\n", event.GameID, len(event.Players))
		for _, name := range event.Players {
			C.Info.Fprintf(r.w, "%s holds %d cards\n", ColorizeCard(name), event.HandSizes[name])
		}
	case events.TurnStartEvent:
		C.Header.Fprintf(r.w, "\n--- Turn %d: %s ---\n", event.TurnNumber, ColorizeCard(event.PlayerName))
	case events.SuggestionResolvedEvent:
		C.Info.Fprintf(r.w, "%s suggests: %s\n", ColorizeCard(event.SuggesterName), colorizeSuggestion(event.Suggestion))
		if event.DisproverName != "" {
			C.Info.Fprintf(r.w, "-> %s shows a card to %s.\n", ColorizeCard(event.DisproverName), ColorizeCard(event.SuggesterName))
		} else {
			C.Info.Fprintln(r.w, "-> No player could show a card.")
		}
	case events.AccusationMadeEvent:
		C.Info.Fprintf(r.w, "%s ACCUSED with: %s\n", ColorizeCard(event.PlayerName), colorizeSuggestion(event.Accusation))
	case events.AccusationResolvedEvent:
		if event.IsCorrect {
			C.Yes.Fprintln(r.w, "The accusation is CORRECT!")
		} else {
			C.No.Fprintln(r.w, "The accusation is INCORRECT!")
		}
	case events.GameOverEvent:
		r.renderGameResult(event)
	}
}

func (r *SimulationRenderer) renderGameResult(event events.GameOverEvent) {
	C.Header.Fprintln(r.w, "\n--- GAME OVER ---")
	if event.Winner != "" {
		C.Yes.Fprintf(r.w, "%s wins after %d turns!\n", ColorizeCard(event.Winner), event.Turns)
	} else {
		C.Warn.Fprintln(r.w, "Game ended without a correct accusation.")
	}
	if len(event.Eliminated) > 0 {
		C.No.Fprintf(r.w, "Eliminated: %s\n", strings.Join(event.Eliminated, ", "))
	}
	C.Info.Fprintf(r.w, "The correct solution was: %s\n", event.Solution)
}
