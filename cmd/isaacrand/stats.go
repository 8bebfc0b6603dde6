package main

import (
	"fmt"

	"github.com/lox/isaacrand/cmd/isaacrand/shared"
	"github.com/lox/isaacrand/internal/stats"
)

type StatsCmd struct {
	Max     uint32 `arg:"" help:"Inclusive upper bound n to test"`
	Trials  int    `help:"Number of draws (default from config)"`
	Workers int    `help:"Parallel workers (default from config)"`
	Buckets int    `help:"Histogram buckets (default from config)"`
	Strict  bool   `help:"Exit with an error when the histogram is not uniform"`
}

func (c *StatsCmd) Run(g *Globals) error {
	cfg, err := g.setup()
	if err != nil {
		return err
	}
	if c.Trials == 0 {
		c.Trials = cfg.Stats.Trials
	}
	if c.Workers == 0 {
		c.Workers = cfg.Stats.Workers
	}
	if c.Buckets == 0 {
		c.Buckets = cfg.Stats.Buckets
	}

	r, err := g.stream(cfg)
	if err != nil {
		return err
	}

	ctx, cancel := shared.SetupSignalHandler(g.logger)
	defer cancel()

	g.logger.Info("Running uniformity check", "n", c.Max, "trials", c.Trials, "workers", c.Workers)
	res, err := stats.Run(ctx, r, stats.Config{
		N:       c.Max,
		Trials:  c.Trials,
		Workers: c.Workers,
		Buckets: c.Buckets,
		Logger:  g.logger,
	})
	if err != nil {
		return fmt.Errorf("uniformity check: %w", err)
	}

	fmt.Fprint(g.Out, stats.Render(res))
	if c.Strict && !res.Passed() {
		return fmt.Errorf("histogram is not uniform (z=%.2f)", res.ZScore())
	}
	return nil
}
