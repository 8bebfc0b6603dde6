// Package config loads isaacrand's optional HCL configuration file.
package config

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/lox/isaacrand/isaac"
)

// Config is the complete configuration
type Config struct {
	LogLevel string         `hcl:"log_level,optional"`
	Entropy  *EntropyConfig `hcl:"entropy,block"`
	Stats    *StatsConfig   `hcl:"stats,block"`
}

// EntropyConfig selects the entropy devices used when no explicit seed is
// given.
type EntropyConfig struct {
	StrongDevice string `hcl:"strong_device,optional"`
	StrongBytes  int    `hcl:"strong_bytes,optional"`
	WeakDevice   string `hcl:"weak_device,optional"`
	WeakBytes    int    `hcl:"weak_bytes,optional"`
}

// StatsConfig holds defaults for the stats command.
type StatsConfig struct {
	Trials  int `hcl:"trials,optional"`
	Workers int `hcl:"workers,optional"`
	Buckets int `hcl:"buckets,optional"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	c := &Config{}
	c.applyDefaults()
	return c
}

// Load reads an HCL config file. A missing file yields Default().
func Load(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return Default(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var config Config
	diags = gohcl.DecodeBody(file.Body, nil, &config)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	config.applyDefaults()
	return &config, nil
}

func (c *Config) applyDefaults() {
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}

	if c.Entropy == nil {
		c.Entropy = &EntropyConfig{}
	}
	if c.Entropy.StrongDevice == "" {
		c.Entropy.StrongDevice = isaac.DefaultStrongDevice
	}
	if c.Entropy.StrongBytes == 0 {
		c.Entropy.StrongBytes = isaac.DefaultStrongBytes
	}
	if c.Entropy.WeakDevice == "" {
		c.Entropy.WeakDevice = isaac.DefaultWeakDevice
	}
	if c.Entropy.WeakBytes == 0 {
		c.Entropy.WeakBytes = isaac.DefaultWeakBytes
	}

	if c.Stats == nil {
		c.Stats = &StatsConfig{}
	}
	if c.Stats.Trials == 0 {
		c.Stats.Trials = 1_000_000
	}
	if c.Stats.Workers == 0 {
		c.Stats.Workers = 4
	}
	if c.Stats.Buckets == 0 {
		c.Stats.Buckets = 64
	}
}

// Validate checks the configuration for values the CLI cannot use.
func (c *Config) Validate() error {
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid log_level %q: %w", c.LogLevel, err)
	}
	if c.Entropy.StrongBytes < 0 || c.Entropy.StrongBytes > isaac.Bytes {
		return fmt.Errorf("entropy: strong_bytes must be between 0 and %d", isaac.Bytes)
	}
	if c.Entropy.WeakBytes < 0 || c.Entropy.WeakBytes > isaac.Bytes {
		return fmt.Errorf("entropy: weak_bytes must be between 0 and %d", isaac.Bytes)
	}
	if c.Stats.Trials < 1 {
		return fmt.Errorf("stats: trials must be positive")
	}
	if c.Stats.Workers < 1 {
		return fmt.Errorf("stats: workers must be positive")
	}
	if c.Stats.Buckets < 1 {
		return fmt.Errorf("stats: buckets must be positive")
	}
	return nil
}

// EntropySettings converts the entropy block for isaac.SystemEntropy.
func (c *Config) EntropySettings(logger *log.Logger) *isaac.EntropyConfig {
	return &isaac.EntropyConfig{
		StrongDevice: c.Entropy.StrongDevice,
		StrongBytes:  c.Entropy.StrongBytes,
		WeakDevice:   c.Entropy.WeakDevice,
		WeakBytes:    c.Entropy.WeakBytes,
		Logger:       logger,
	}
}
