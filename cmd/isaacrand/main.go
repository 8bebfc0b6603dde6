package main

import (
	"os"

	"github.com/alecthomas/kong"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Globals

	Version kong.VersionFlag `short:"v" help:"Show version"`
	Words   WordsCmd         `cmd:"" help:"Print raw 32-bit output words"`
	Uniform UniformCmd       `cmd:"" help:"Print values drawn uniformly from [0, n]"`
	Shuffle ShuffleCmd       `cmd:"" help:"Shuffle input lines"`
	Stats   StatsCmd         `cmd:"" help:"Check uniformity of the sampler"`
}

func main() {
	cli := CLI{Globals: Globals{Out: os.Stdout, In: os.Stdin}}
	ctx := kong.Parse(&cli,
		kong.Name("isaacrand"),
		kong.Description("ISAAC pseudorandom words, uniform samples and shuffles"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)
	err := ctx.Run(&cli.Globals)
	ctx.FatalIfErrorf(err)
}
