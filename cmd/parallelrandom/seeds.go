package main

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/lox/parallelrandom/internal/fileutil"
	"github.com/lox/parallelrandom/random"
)

// SeedsCmd spawns goroutines and reports the seed each one's generator got
type SeedsCmd struct {
	Workers int    `short:"n" default:"10" help:"Goroutines to spawn"`
	Out     string `type:"path" help:"Also write the seeds, one per line, to this file"`
}

func (c *SeedsCmd) Run(g *Globals) error {
	e, err := g.setup()
	if err != nil {
		return err
	}
	if c.Workers < 1 {
		return fmt.Errorf("workers must be positive, got %d", c.Workers)
	}

	seeds, err := collectSeeds(context.Background(), e.registry, c.Workers)
	if err != nil {
		return err
	}

	distinct := make(map[uint32]struct{}, len(seeds))
	var sb strings.Builder
	sb.WriteString(headerStyle.Render(fmt.Sprintf("%-8s %s", "worker", "seed")) + "\n")
	for i, s := range seeds {
		distinct[s] = struct{}{}
		sb.WriteString(fmt.Sprintf("%-8d %s\n", i, valueStyle.Render(fmt.Sprint(s))))
	}
	fmt.Fprint(e.out, tableStyle.Render(strings.TrimSuffix(sb.String(), "\n"))+"\n")
	fmt.Fprintf(e.out, "%d distinct seeds across %d goroutines (engine %s, entropy %s)\n",
		len(distinct), len(seeds), e.registry.Engine(), e.registry.Entropy())
	if len(seeds) > 1 && len(distinct) == 1 {
		fmt.Fprintln(e.out, warnStyle.Render("warning: every goroutine received the same seed"))
	}

	if c.Out != "" {
		if err := fileutil.WriteAtomic(c.Out, 0o644, func(w io.Writer) error {
			for _, s := range seeds {
				if _, err := fmt.Fprintln(w, s); err != nil {
					return err
				}
			}
			return nil
		}); err != nil {
			return fmt.Errorf("write seeds: %w", err)
		}
		e.logger.Info("Wrote seeds", "path", c.Out, "count", len(seeds))
	}
	return nil
}

// collectSeeds runs n goroutines and returns the seed of each one's
// generator, indexed by spawn order.
func collectSeeds(ctx context.Context, reg *random.Registry, n int) ([]uint32, error) {
	seeds := make([]uint32, n)
	grp, _ := reg.NewGroup(ctx)
	for i := 0; i < n; i++ {
		grp.Go(func(_ context.Context, l *random.Local) error {
			seeds[i] = l.Seed()
			return nil
		})
	}
	if err := grp.Wait(); err != nil {
		return nil, err
	}
	return seeds, nil
}
