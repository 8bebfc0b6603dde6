package main

import (
	"bufio"
	"fmt"
)

type UniformCmd struct {
	Max   uint32 `arg:"" help:"Inclusive upper bound n"`
	Count int    `short:"n" default:"1" help:"Number of values to draw"`
}

func (c *UniformCmd) Run(g *Globals) error {
	cfg, err := g.setup()
	if err != nil {
		return err
	}
	if c.Count < 0 {
		return fmt.Errorf("count must not be negative, got %d", c.Count)
	}
	r, err := g.stream(cfg)
	if err != nil {
		return err
	}

	w := bufio.NewWriter(g.Out)
	for i := 0; i < c.Count; i++ {
		fmt.Fprintf(w, "%d\n", r.Uniform(c.Max))
	}
	return w.Flush()
}
