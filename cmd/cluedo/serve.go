package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"example.com/cluedo-server/internal/httpapi"
)

// ServeCmd runs the HTTP API until interrupted.
type ServeCmd struct {
	Addr           string        `help:"Listen address (overrides CLUEDO_ADDR)."`
	RequestTimeout time.Duration `name:"request-timeout" help:"Per-request timeout (overrides CLUEDO_REQUEST_TIMEOUT)."`
}

func (c *ServeCmd) Run(g *Globals) error {
	cfg, log, rng, err := g.setup()
	if err != nil {
		return err
	}
	if c.Addr != "" {
		cfg.Addr = c.Addr
	}
	if c.RequestTimeout > 0 {
		cfg.RequestTimeout = c.RequestTimeout
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := httpapi.New(newEngine(log, rng), log, cfg.RequestTimeout)
	if err := srv.ListenAndServe(ctx, cfg.Addr); err != nil {
		log.WithError(err).Error("Server exited with error")
		return err
	}
	log.Info("Server stopped")
	return nil
}
