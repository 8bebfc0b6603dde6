package main

import (
	"encoding/hex"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/lox/isaacrand/cmd/isaacrand/shared"
	"github.com/lox/isaacrand/internal/config"
	"github.com/lox/isaacrand/internal/randutil"
	"github.com/lox/isaacrand/isaac"
)

// Globals are flags shared by every command.
type Globals struct {
	Config   string `help:"HCL config file" default:"isaacrand.hcl" env:"ISAACRAND_CONFIG" type:"path"`
	Seed     string `help:"Explicit seed string, bypasses system entropy" env:"ISAACRAND_SEED" xor:"seed"`
	SeedHex  string `help:"Explicit seed as hex bytes, bypasses system entropy" xor:"seed"`
	LogLevel string `help:"Log level (debug|info|warn|error), overrides config"`

	Out    io.Writer   `kong:"-"`
	In     io.Reader   `kong:"-"`
	Stderr io.Writer   `kong:"-"`
	logger *log.Logger
}

// setup loads the config and builds the logger.
func (g *Globals) setup() (*config.Config, error) {
	cfg, err := config.Load(g.Config)
	if err != nil {
		return nil, fmt.Errorf("loading config %s: %w", g.Config, err)
	}
	if g.LogLevel != "" {
		cfg.LogLevel = g.LogLevel
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	if g.Stderr != nil {
		g.logger = shared.SetupLoggerTo(g.Stderr, cfg.LogLevel)
	} else {
		g.logger = shared.SetupLogger(cfg.LogLevel)
	}
	return cfg, nil
}

// stream returns a generator seeded from the explicit seed flags, or from
// system entropy when neither is set.
func (g *Globals) stream(cfg *config.Config) (*isaac.Stream, error) {
	switch {
	case g.SeedHex != "":
		seed, err := hex.DecodeString(g.SeedHex)
		if err != nil {
			return nil, fmt.Errorf("invalid --seed-hex: %w", err)
		}
		g.logger.Debug("seeding from explicit bytes", "bytes", len(seed))
		return randutil.FromBytes(seed), nil
	case g.Seed != "":
		g.logger.Debug("seeding from explicit string", "bytes", len(g.Seed))
		return randutil.FromBytes([]byte(g.Seed)), nil
	default:
		g.logger.Debug("seeding from system entropy",
			"strong", cfg.Entropy.StrongDevice, "weak", cfg.Entropy.WeakDevice)
		return randutil.FromSystem(cfg.EntropySettings(g.logger)), nil
	}
}
