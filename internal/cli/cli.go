package cli

import (
	"errors"
	"fmt"
	"io"
	"math/rand"
	"strings"
	"time"

	"example.com/cluedo-server/internal/game"

	"github.com/peterh/liner"
	"github.com/sirupsen/logrus"
)

// CLI manages all command-line interactions.
type CLI struct {
	log  logrus.FieldLogger
	out  io.Writer
	line *liner.State
}

// NewCLI creates a new command-line interface manager writing to out.
func NewCLI(log logrus.FieldLogger, out io.Writer) *CLI {
	return &CLI{
		log: log,
		out: out,
	}
}

// RunPlay drives an interactive table over engine until the user quits.
func (c *CLI) RunPlay(engine *game.Engine) error {
	c.line = liner.NewLiner()
	c.line.SetCtrlCAborts(true)
	defer c.line.Close()

	table := NewTable(engine, c.log, c.out)
	defer table.Close()

	C.Header.Fprintln(c.out, "\n--- Cluedo Table ---")
	printPlayHelp(c.out)

	for {
		input, err := c.line.Prompt("(cluedo) ")
		if err != nil {
			if errors.Is(err, liner.ErrPromptAborted) || errors.Is(err, io.EOF) {
				C.Info.Fprintln(c.out, "\nGoodbye!")
				return nil
			}
			return fmt.Errorf("error reading line: %w", err)
		}
		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}
		c.line.AppendHistory(input)
		if quit := table.Execute(input); quit {
			return nil
		}
	}
}

// RunSimulation seats numBots bots on engine, plays the game out and prints
// the winner's notes.
func (c *CLI) RunSimulation(engine *game.Engine, rng *rand.Rand, numBots, turnLimit int, delay time.Duration) (Result, error) {
	C.Header.Fprintln(c.out, "--- Running Fast Simulation ---")

	unsubscribe := engine.EventManager().Subscribe(NewSimulationRenderer(c.out))
	defer unsubscribe()

	sim, err := NewSimulation(engine, c.log, rng, numBots, turnLimit, delay)
	if err != nil {
		return Result{}, fmt.Errorf("failed to set up simulation: %w", err)
	}
	result, err := sim.Run()
	if err != nil {
		return Result{}, err
	}

	if result.Winner != "" {
		for _, b := range sim.Bots() {
			if b.Name() == result.Winner {
				RenderNotes(c.out, b.Notebook())
				break
			}
		}
	}
	return result, nil
}
