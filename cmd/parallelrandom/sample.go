package main

import (
	"context"
	"fmt"
	"math"
	"strconv"

	"github.com/lox/parallelrandom/internal/histogram"
	"github.com/lox/parallelrandom/internal/statistics"
	"github.com/lox/parallelrandom/random"
)

// SampleCmd draws from one of the scalar samplers and summarises the results
type SampleCmd struct {
	Kind      string  `arg:"" optional:"" enum:"uniform,range,int,bernoulli" default:"uniform" help:"Sampler: uniform, range, int or bernoulli"`
	Low       float64 `default:"0" help:"Lower bound for range and int"`
	High      float64 `default:"1" help:"Upper bound for range (exclusive) and int (inclusive)"`
	P         float64 `short:"p" default:"0.5" help:"Success probability for bernoulli"`
	Count     int     `short:"n" default:"100000" help:"Total samples"`
	Workers   int     `short:"w" default:"1" help:"Goroutines sharing the work"`
	Float32   bool    `help:"Sample single-precision values"`
	Histogram bool    `help:"Print a histogram"`
	Bins      int     `default:"10" help:"Histogram bins for continuous samplers"`
}

// tally is one worker's view of the samples it drew
type tally struct {
	summary statistics.Summary
	counts  *histogram.Counts
}

func (c *SampleCmd) Run(g *Globals) error {
	e, err := g.setup()
	if err != nil {
		return err
	}

	total, err := c.sample(context.Background(), e.registry)
	if err != nil {
		return err
	}
	if err := total.summary.Validate(); err != nil {
		return fmt.Errorf("statistics validation failed: %w", err)
	}

	s := &total.summary
	lo, hi := s.ConfidenceInterval95()
	fmt.Fprintln(e.out, headerStyle.Render(fmt.Sprintf("%s samples (engine %s)", c.Kind, e.registry.Engine())))
	fmt.Fprintf(e.out, "count   %s\n", valueStyle.Render(strconv.Itoa(s.Count)))
	fmt.Fprintf(e.out, "mean    %s  (95%% CI %.6f .. %.6f)\n", valueStyle.Render(fmt.Sprintf("%.6f", s.Mean())), lo, hi)
	fmt.Fprintf(e.out, "stddev  %s\n", valueStyle.Render(fmt.Sprintf("%.6f", s.StdDev())))
	fmt.Fprintf(e.out, "min     %s\n", valueStyle.Render(fmt.Sprintf("%.6f", s.Min)))
	fmt.Fprintf(e.out, "median  %s\n", valueStyle.Render(fmt.Sprintf("%.6f", s.Median())))
	fmt.Fprintf(e.out, "max     %s\n", valueStyle.Render(fmt.Sprintf("%.6f", s.Max)))
	if c.Histogram {
		fmt.Fprintln(e.out)
		fmt.Fprint(e.out, histogram.Render(total.counts, 40, false))
	}
	return nil
}

// sample splits Count across Workers goroutines, each drawing from its own
// generator, and merges their tallies.
func (c *SampleCmd) sample(ctx context.Context, reg *random.Registry) (*tally, error) {
	if c.Count < 1 {
		return nil, fmt.Errorf("count must be positive, got %d", c.Count)
	}
	if c.Workers < 1 {
		return nil, fmt.Errorf("workers must be positive, got %d", c.Workers)
	}
	if c.Kind == "int" {
		if _, _, err := c.intBounds(); err != nil {
			return nil, err
		}
	}

	tallies := make([]*tally, c.Workers)
	per, remainder := c.Count/c.Workers, c.Count%c.Workers

	grp, _ := reg.NewGroup(ctx)
	for w := 0; w < c.Workers; w++ {
		n := per
		if w < remainder {
			n++
		}
		grp.Go(func(_ context.Context, l *random.Local) error {
			t, err := c.drawInto(l, n)
			tallies[w] = t
			return err
		})
	}
	if err := grp.Wait(); err != nil {
		return nil, err
	}

	total := &tally{counts: c.newCounts()}
	for _, t := range tallies {
		total.summary.Merge(&t.summary)
		total.counts.Merge(t.counts)
	}
	return total, nil
}

func (c *SampleCmd) drawInto(l *random.Local, n int) (*tally, error) {
	t := &tally{counts: c.newCounts()}
	buckets := c.newBuckets()
	low, high, _ := c.intBounds()

	for i := 0; i < n; i++ {
		switch c.Kind {
		case "int":
			v, err := random.IntRange(l, low, high)
			if err != nil {
				return t, err
			}
			t.summary.Add(float64(v))
			t.counts.Add(strconv.Itoa(v))
		case "bernoulli":
			var hit bool
			if c.Float32 {
				hit = random.Bernoulli(l, float32(c.P))
			} else {
				hit = random.Bernoulli(l, c.P)
			}
			x := 0.0
			if hit {
				x = 1
			}
			t.summary.Add(x)
			t.counts.Add(strconv.FormatBool(hit))
		default:
			x := c.continuous(l)
			t.summary.Add(x)
			buckets.Add(x)
		}
	}

	if buckets != nil {
		t.counts.Merge(buckets.Counts())
	}
	return t, nil
}

func (c *SampleCmd) continuous(l *random.Local) float64 {
	low, high := 0.0, 1.0
	if c.Kind == "range" {
		low, high = c.Low, c.High
	}
	if c.Float32 {
		return float64(random.UniformRange(l, float32(low), float32(high)))
	}
	return random.UniformRange(l, low, high)
}

// newCounts pre-seeds labels so every outcome is listed, in order, even when
// never drawn.
func (c *SampleCmd) newCounts() *histogram.Counts {
	switch c.Kind {
	case "bernoulli":
		return histogram.NewCounts("true", "false")
	case "int":
		low, high, err := c.intBounds()
		if err != nil || uint64(high)-uint64(low) >= 64 {
			return histogram.NewCounts()
		}
		labels := make([]string, 0, high-low+1)
		for v := low; v <= high; v++ {
			labels = append(labels, strconv.Itoa(v))
		}
		return histogram.NewCounts(labels...)
	default:
		return histogram.NewCounts()
	}
}

// intBounds converts Low and High for the int sampler, rejecting values an
// int cannot hold.
func (c *SampleCmd) intBounds() (low, high int, err error) {
	for _, x := range []float64{c.Low, c.High} {
		if !(x >= math.MinInt64 && x < math.MaxInt64) {
			return 0, 0, fmt.Errorf("%w: %v does not fit in an int", random.ErrInvalidRange, x)
		}
	}
	low, high = int(c.Low), int(c.High)
	if low > high {
		return 0, 0, fmt.Errorf("%w: low %d > high %d", random.ErrInvalidRange, low, high)
	}
	return low, high, nil
}

func (c *SampleCmd) newBuckets() *histogram.Buckets {
	switch c.Kind {
	case "uniform":
		return histogram.NewBuckets(0, 1, c.Bins)
	case "range":
		return histogram.NewBuckets(c.Low, c.High, c.Bins)
	default:
		return nil
	}
}
