package main

import (
	"fmt"
	"math/rand"
	"time"

	"example.com/cluedo-server/internal/config"
	"example.com/cluedo-server/internal/game"

	"github.com/alecthomas/kong"
	"github.com/sirupsen/logrus"
)

// Globals are flags shared by every command. Flags left unset fall back to
// the CLUEDO_* environment.
type Globals struct {
	EnvFile  string `name:"env-file" default:".env" help:"Optional dotenv file to load before reading the environment."`
	LogLevel string `name:"log-level" help:"Set logging level (debug, info, warn, error)."`
	Seed     *int64 `help:"Deterministic RNG seed (optional)."`
}

type CLI struct {
	Globals

	Serve    ServeCmd    `cmd:"" help:"Serve the game engine over HTTP."`
	Play     PlayCmd     `cmd:"" help:"Run an interactive table in the terminal."`
	Simulate SimulateCmd `cmd:"" help:"Watch a table of bots play a game."`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("cluedo"),
		kong.Description("Cluedo game engine: HTTP server, terminal table and bot simulation"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
	)
	err := ctx.Run(&cli.Globals)
	ctx.FatalIfErrorf(err)
}

// setup loads the configuration, applies flag overrides and builds the
// top-level dependencies every command needs.
func (g *Globals) setup() (*config.Config, *logrus.Logger, *rand.Rand, error) {
	cfg, err := config.Load(g.EnvFile)
	if err != nil {
		return nil, nil, nil, err
	}
	if g.LogLevel != "" {
		cfg.LogLevel = g.LogLevel
	}
	if g.Seed != nil {
		cfg.Seed = *g.Seed
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, nil, fmt.Errorf("invalid configuration: %w", err)
	}

	log := cfg.NewLogger()
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
		log.WithField("seed", seed).Debug("Using random seed")
	} else {
		log.WithField("seed", seed).Info("Using deterministic seed")
	}
	return cfg, log, rand.New(rand.NewSource(seed)), nil
}

func newEngine(log *logrus.Logger, rng *rand.Rand) *game.Engine {
	return game.NewBuilder(log, rng).Build()
}
