package main

import (
	"os"
	"time"

	"example.com/cluedo-server/internal/cli"

	"github.com/sirupsen/logrus"
)

// SimulateCmd seats a table of bots and plays one game to the end.
type SimulateCmd struct {
	Bots      int           `arg:"" optional:"" default:"3" help:"Number of bots at the table (2-6)."`
	TurnLimit int           `name:"turn-limit" help:"Stop after this many turns (overrides CLUEDO_SIM_TURN_LIMIT)."`
	Delay     time.Duration `help:"Pause between turns (overrides CLUEDO_SIM_DELAY)."`
}

func (c *SimulateCmd) Run(g *Globals) error {
	cfg, log, rng, err := g.setup()
	if err != nil {
		return err
	}
	if c.TurnLimit > 0 {
		cfg.SimTurnLimit = c.TurnLimit
	}
	if c.Delay > 0 {
		cfg.SimDelay = c.Delay
	}

	result, err := cli.NewCLI(log, os.Stdout).
		RunSimulation(newEngine(log, rng), rng, c.Bots, cfg.SimTurnLimit, cfg.SimDelay)
	if err != nil {
		return err
	}
	log.WithFields(logrus.Fields{"winner": result.Winner, "turns": result.Turns}).Info("Simulation finished")
	return nil
}
