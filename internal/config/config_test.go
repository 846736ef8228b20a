package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Addr != ":8000" || cfg.LogLevel != "info" || cfg.RequestTimeout != 10*time.Second {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("CLUEDO_ADDR", "127.0.0.1:9999")
	t.Setenv("CLUEDO_SEED", "42")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	if err != nil {
		t.Fatalf("a missing .env file should be ignored: %v", err)
	}
	if cfg.Addr != "127.0.0.1:9999" || cfg.Seed != 42 {
		t.Errorf("environment not applied: %+v", cfg)
	}
}

func TestLoadFromDotenv(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte("CLUEDO_SIM_TURN_LIMIT=25\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Unsetenv("CLUEDO_SIM_TURN_LIMIT") })

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.SimTurnLimit != 25 {
		t.Errorf("expected turn limit from .env, got %d", cfg.SimTurnLimit)
	}
}

func TestValidate(t *testing.T) {
	cases := map[string]Config{
		"bad log level":     {LogLevel: "loud", RequestTimeout: time.Second, SimTurnLimit: 1},
		"zero timeout":      {LogLevel: "info", SimTurnLimit: 1},
		"zero turn limit":   {LogLevel: "info", RequestTimeout: time.Second},
		"negative sim wait": {LogLevel: "info", RequestTimeout: time.Second, SimTurnLimit: 1, SimDelay: -time.Second},
	}
	for name, cfg := range cases {
		t.Run(name, func(t *testing.T) {
			if err := cfg.Validate(); err == nil {
				t.Error("expected a validation error")
			}
		})
	}
}
