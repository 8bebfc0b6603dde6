package main

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/lox/isaacrand/internal/shuffle"
)

type ShuffleCmd struct {
	Input     string `arg:"" optional:"" type:"path" help:"File to shuffle (default stdin)"`
	HeadCount int    `short:"n" default:"-1" help:"Output at most N lines"`
}

func (c *ShuffleCmd) Run(g *Globals) error {
	cfg, err := g.setup()
	if err != nil {
		return err
	}

	in := g.In
	if c.Input != "" && c.Input != "-" {
		f, err := os.Open(c.Input)
		if err != nil {
			return fmt.Errorf("opening input: %w", err)
		}
		defer f.Close()
		in = f
	}

	lines, err := readLines(in)
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}
	if uint64(len(lines)) > math.MaxUint32 {
		return fmt.Errorf("too many lines to shuffle: %d", len(lines))
	}

	r, err := g.stream(cfg)
	if err != nil {
		return err
	}

	if c.HeadCount >= 0 {
		lines = shuffle.Sample(lines, c.HeadCount, r)
	} else {
		shuffle.Slice(lines, r)
	}
	g.logger.Debug("shuffled input", "lines", len(lines))

	w := bufio.NewWriter(g.Out)
	for _, line := range lines {
		fmt.Fprintln(w, line)
	}
	return w.Flush()
}

func readLines(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 16*1024*1024)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	return lines, scanner.Err()
}
