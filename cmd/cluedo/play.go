package main

import (
	"os"

	"example.com/cluedo-server/internal/cli"
)

// PlayCmd opens an interactive table over a fresh engine.
type PlayCmd struct{}

func (c *PlayCmd) Run(g *Globals) error {
	_, log, rng, err := g.setup()
	if err != nil {
		return err
	}
	return cli.NewCLI(log, os.Stdout).RunPlay(newEngine(log, rng))
}
