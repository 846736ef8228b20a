package cli

import (
	"errors"
	"io"
	"strings"

	"example.com/cluedo-server/internal/cards"
	"example.com/cluedo-server/internal/events"
	"example.com/cluedo-server/internal/game"

	"github.com/sirupsen/logrus"
)

// Table is the command interpreter behind the play REPL. It keeps track of
// players eliminated by a wrong accusation during the current game.
type Table struct {
	engine      *game.Engine
	log         logrus.FieldLogger
	out         io.Writer
	eliminated  map[string]bool
	unsubscribe func()
}

func NewTable(engine *game.Engine, logger logrus.FieldLogger, out io.Writer) *Table {
	t := &Table{
		engine:     engine,
		log:        logger,
		out:        out,
		eliminated: make(map[string]bool),
	}
	t.unsubscribe = engine.EventManager().Subscribe(events.ListenerFunc(t.handleEvent))
	return t
}

// Close detaches the table from the engine's events.
func (t *Table) Close() { t.unsubscribe() }

// handleEvent forgets eliminations whenever the engine leaves a game, no
// matter who triggered it.
func (t *Table) handleEvent(e events.Event) {
	switch e.(type) {
	case events.GameStartedEvent, events.GameResetEvent:
		t.eliminated = make(map[string]bool)
	}
}

// Execute runs a single command line and reports whether the user asked to quit.
func (t *Table) Execute(input string) (quit bool) {
	parts := strings.Fields(input)
	if len(parts) == 0 {
		return false
	}
	cmd, args := strings.ToLower(parts[0]), parts[1:]

	switch cmd {
	case "add", "a":
		t.handleAdd(args)
	case "remove", "rm":
		t.handleRemove(args)
	case "players", "p":
		RenderPlayers(t.out, t.engine.ListPlayers(), false)
	case "hand", "ha":
		t.handleHand(args)
	case "start":
		t.handleStart()
	case "reset":
		t.handleReset()
	case "suggest", "s":
		t.handleSuggest(args)
	case "accuse":
		t.handleAccuse(args)
	case "help", "h":
		printPlayHelp(t.out)
	case "quit", "q":
		C.Info.Fprintln(t.out, "Leaving the table.")
		return true
	default:
		C.Warn.Fprintf(t.out, "Unknown command '%s'. Type 'help' for a list of commands.\n", cmd)
	}
	return false
}

func (t *Table) handleAdd(args []string) {
	if len(args) != 1 {
		printCommandUsage(t.out, "add")
		return
	}
	p, err := t.engine.AddPlayer(args[0])
	if err != nil {
		t.printError(err)
		return
	}
	C.Info.Fprintf(t.out, "%s joined the table (%d players).\n", ColorizeCard(p.Name), len(t.engine.ListPlayers()))
}

func (t *Table) handleRemove(args []string) {
	if len(args) != 1 {
		printCommandUsage(t.out, "remove")
		return
	}
	if err := t.engine.RemovePlayer(args[0]); err != nil {
		t.printError(err)
		return
	}
	delete(t.eliminated, args[0])
	C.Info.Fprintf(t.out, "%s left the table.\n", ColorizeCard(args[0]))
}

func (t *Table) handleHand(args []string) {
	if len(args) != 1 {
		printCommandUsage(t.out, "hand")
		return
	}
	p, err := t.engine.GetPlayer(args[0])
	if err != nil {
		t.printError(err)
		return
	}
	C.Header.Fprintf(t.out, "\n--- %s's Hand ---\n", p.Name)
	if len(p.Cards) == 0 {
		C.Info.Fprintln(t.out, " (empty)")
	}
	for _, card := range p.Cards {
		C.Info.Fprintf(t.out, " - %s (%s)\n", ColorizeCard(card.Name), card.Category)
	}
}

func (t *Table) handleStart() {
	state, err := t.engine.StartGame()
	if err != nil {
		t.printError(err)
		return
	}
	C.Header.Fprintf(t.out, "Game %s started. Cards are dealt.\n", state.GameID)
	RenderPlayers(t.out, state.Players, false)
}

func (t *Table) handleReset() {
	if err := t.engine.ResetGame(); err != nil {
		t.printError(err)
		return
	}
	C.Info.Fprintln(t.out, "Game reset. The table is empty.")
}

func (t *Table) handleSuggest(args []string) {
	name, s, ok := t.parseTurn("suggest", args)
	if !ok {
		return
	}
	result, err := t.engine.Refute(s, name)
	if err != nil {
		t.printError(err)
		return
	}
	if !result.Refuted {
		C.Info.Fprintf(t.out, "Nobody could disprove %s.\n", s)
		return
	}
	C.Info.Fprintf(t.out, "%s shows %s to %s.\n",
		ColorizeCard(result.Refuter), ColorizeCard(result.Card.Name), ColorizeCard(name))
}

func (t *Table) handleAccuse(args []string) {
	name, s, ok := t.parseTurn("accuse", args)
	if !ok {
		return
	}
	correct, err := t.engine.Accuse(s)
	if err != nil {
		t.printError(err)
		return
	}
	if correct {
		C.Yes.Fprintf(t.out, "%s solved the case: %s!\n", ColorizeCard(name), s)
		return
	}
	t.eliminated[name] = true
	t.log.WithField("player", name).Warn("Wrong accusation; player eliminated")
	C.No.Fprintf(t.out, "%s is wrong and may no longer suggest or accuse.\n", ColorizeCard(name))
}

// parseTurn reads "<player> <suspect> <weapon> <room>" and checks that the
// player is seated and still in the running.
func (t *Table) parseTurn(cmd string, args []string) (string, cards.Suggestion, bool) {
	if len(args) != 4 {
		printCommandUsage(t.out, cmd)
		return "", cards.Suggestion{}, false
	}
	name := args[0]
	if _, err := t.engine.GetPlayer(name); err != nil {
		t.printError(err)
		return "", cards.Suggestion{}, false
	}
	if t.eliminated[name] {
		C.Warn.Fprintf(t.out, "%s has been eliminated from this game.\n", name)
		return "", cards.Suggestion{}, false
	}
	s, err := parseSuggestion(args[1:])
	if err != nil {
		t.printError(err)
		return "", cards.Suggestion{}, false
	}
	return name, s, true
}

func (t *Table) printError(err error) {
	switch {
	case errors.Is(err, cards.ErrUnknownCard):
		C.Warn.Fprintf(t.out, "Error: %v. Type 'help' to list the cards.\n", err)
	default:
		C.Warn.Fprintf(t.out, "Error: %v\n", err)
	}
}
