package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/coder/quartz"

	"github.com/lox/parallelrandom/internal/bench"
	"github.com/lox/parallelrandom/internal/engine"
)

// BenchCmd measures how fast per-goroutine generators draw in parallel
type BenchCmd struct {
	Workers    int  `short:"w" help:"Goroutines (default from config)"`
	Draws      int  `short:"d" help:"Draws per goroutine (default from config)"`
	AllEngines bool `help:"Benchmark every engine instead of the configured one"`
}

func (c *BenchCmd) Run(g *Globals) error {
	e, err := g.setup()
	if err != nil {
		return err
	}

	workers, draws := e.cfg.Bench.Workers, e.cfg.Bench.Draws
	if c.Workers > 0 {
		workers = c.Workers
	}
	if c.Draws > 0 {
		draws = c.Draws
	}

	kinds := []engine.Kind{e.registry.Engine()}
	if c.AllEngines {
		kinds = engine.Kinds()
	}

	ctx, stop := setupSignalHandler()
	defer stop()
	clock := quartz.NewReal()

	var sb strings.Builder
	sb.WriteString(headerStyle.Render(fmt.Sprintf("%-8s %8s %12s %12s %14s %9s", "engine", "workers", "draws", "elapsed", "draws/sec", "mean")) + "\n")
	for _, kind := range kinds {
		gen := *e.cfg.Generator
		gen.Engine = string(kind)
		reg, err := newRegistry(&gen, e.logger)
		if err != nil {
			return err
		}

		e.logger.Debug("Running benchmark", "engine", kind, "workers", workers, "draws", draws)
		res, err := bench.Run(ctx, bench.Config{
			Workers:  workers,
			Draws:    draws,
			Registry: reg,
			Clock:    clock,
			Logger:   e.logger,
		})
		if err != nil {
			if ctx.Err() != nil {
				e.logger.Info("Benchmark interrupted", "engine", kind)
			}
			return fmt.Errorf("bench %s: %w", kind, err)
		}

		sb.WriteString(fmt.Sprintf("%-8s %8d %12d %12s %s %9.5f\n",
			kind, workers, res.TotalDraws(), res.Elapsed.Round(time.Microsecond),
			valueStyle.Render(fmt.Sprintf("%14.0f", res.Rate())), res.Mean()))
	}
	fmt.Fprint(e.out, tableStyle.Render(strings.TrimSuffix(sb.String(), "\n"))+"\n")
	return nil
}
