package main

import (
	"context"
	"fmt"
	"slices"

	"github.com/lox/parallelrandom/internal/histogram"
	"github.com/lox/parallelrandom/random"
)

// SelectCmd repeats a weighted selection and tabulates what came out
type SelectCmd struct {
	Prob       []float64 `short:"p" required:"" help:"Probability of each element, in order (repeatable)"`
	Elem       []string  `short:"e" required:"" help:"Elements, paired positionally with --prob (repeatable)"`
	Fallback   string    `default:"(fallback)" help:"Returned when the draw lands in the uncovered mass"`
	Count      int       `short:"n" default:"10000" help:"Selections to make"`
	Workers    int       `short:"w" default:"1" help:"Goroutines sharing the work"`
	NoValidate bool      `help:"Skip input validation"`
	Lazy       bool      `help:"Walk the inputs as lazy sequences instead of slices"`
	Sort       bool      `help:"Order the table by frequency"`
}

func (c *SelectCmd) Run(g *Globals) error {
	e, err := g.setup()
	if err != nil {
		return err
	}

	counts, err := c.run(context.Background(), e.registry)
	if err != nil {
		return err
	}

	fmt.Fprintln(e.out, headerStyle.Render(fmt.Sprintf("%d weighted selections (engine %s)", counts.Total(), e.registry.Engine())))
	fmt.Fprint(e.out, histogram.Render(counts, 40, c.Sort))
	return nil
}

// run validates once on the calling goroutine, then fans the selections out.
func (c *SelectCmd) run(ctx context.Context, reg *random.Registry) (*histogram.Counts, error) {
	if c.Count < 1 {
		return nil, fmt.Errorf("count must be positive, got %d", c.Count)
	}
	if c.Workers < 1 {
		return nil, fmt.Errorf("workers must be positive, got %d", c.Workers)
	}
	if !c.NoValidate {
		if err := random.ValidateWeights(c.Prob, len(c.Elem)); err != nil {
			return nil, err
		}
	}

	parts := make([]*histogram.Counts, c.Workers)
	per, remainder := c.Count/c.Workers, c.Count%c.Workers

	grp, _ := reg.NewGroup(ctx)
	for w := 0; w < c.Workers; w++ {
		n := per
		if w < remainder {
			n++
		}
		grp.Go(func(_ context.Context, l *random.Local) error {
			part := c.newCounts()
			for i := 0; i < n; i++ {
				v, err := c.selectOne(l)
				if err != nil {
					return err
				}
				part.Add(v)
			}
			parts[w] = part
			return nil
		})
	}
	if err := grp.Wait(); err != nil {
		return nil, err
	}

	total := c.newCounts()
	for _, p := range parts {
		total.Merge(p)
	}
	return total, nil
}

func (c *SelectCmd) selectOne(l *random.Local) (string, error) {
	switch {
	case c.Lazy:
		return random.WeightedSelectSeq(l, slices.Values(c.Prob), slices.Values(c.Elem), c.Fallback, !c.NoValidate)
	case c.NoValidate:
		return random.WeightedSelectUnchecked(l, c.Prob, c.Elem, c.Fallback), nil
	default:
		return random.WeightedSelect(l, c.Prob, c.Elem, c.Fallback)
	}
}

func (c *SelectCmd) newCounts() *histogram.Counts {
	labels := append(slices.Clone(c.Elem), c.Fallback)
	return histogram.NewCounts(labels...)
}
