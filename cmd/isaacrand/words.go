package main

import (
	"bufio"
	"fmt"
)

type WordsCmd struct {
	Count  int    `arg:"" optional:"" default:"8" help:"Number of words to print"`
	Format string `short:"f" enum:"hex,dec" default:"hex" help:"Output format (hex|dec)"`
}

func (c *WordsCmd) Run(g *Globals) error {
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
		if c.Format == "dec" {
			fmt.Fprintf(w, "%d\n", r.Uint32())
		} else {
			fmt.Fprintf(w, "%08x\n", r.Uint32())
		}
	}
	return w.Flush()
}
