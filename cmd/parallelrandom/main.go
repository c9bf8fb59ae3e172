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
	Seeds   SeedsCmd         `cmd:"" help:"Spawn goroutines and report each generator's seed"`
	Sample  SampleCmd        `cmd:"" help:"Draw uniform, integer or Bernoulli samples"`
	Select  SelectCmd        `cmd:"" help:"Run weighted selection and tabulate the outcomes"`
	Bench   BenchCmd         `cmd:"" help:"Measure parallel sampling throughput"`
}

func main() {
	cli := CLI{Globals: Globals{Stdout: os.Stdout}}
	ctx := kong.Parse(&cli,
		kong.Name("parallelrandom"),
		kong.Description("Per-goroutine random generators and samplers"),
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
