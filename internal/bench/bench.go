// Package bench measures parallel sampling throughput: every worker draws
// from its own generator, so throughput should scale with workers.
package bench

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/lox/parallelrandom/random"
)

// Config controls a benchmark run
type Config struct {
	Workers  int
	Draws    int // Per worker
	Registry *random.Registry
	Clock    quartz.Clock
	Logger   *log.Logger
}

// WorkerResult is one worker's contribution
type WorkerResult struct {
	Seed  uint32
	Draws int
	Sum   float64 // Keeps the draws observable
}

// Result summarises a run
type Result struct {
	Workers []WorkerResult
	Elapsed time.Duration
}

// TotalDraws returns draws across every worker
func (r Result) TotalDraws() int {
	total := 0
	for _, w := range r.Workers {
		total += w.Draws
	}
	return total
}

// Rate returns draws per second, or 0 when no time was observed
func (r Result) Rate() float64 {
	if r.Elapsed <= 0 {
		return 0
	}
	return float64(r.TotalDraws()) / r.Elapsed.Seconds()
}

// Mean returns the mean uniform draw, which should sit near 0.5
func (r Result) Mean() float64 {
	draws, sum := 0, 0.0
	for _, w := range r.Workers {
		draws += w.Draws
		sum += w.Sum
	}
	if draws == 0 {
		return 0
	}
	return sum / float64(draws)
}

// Run spreads cfg.Draws uniform draws over each of cfg.Workers goroutines.
// Workers check for cancellation every 4096 draws.
func Run(ctx context.Context, cfg Config) (Result, error) {
	if cfg.Workers < 1 {
		return Result{}, fmt.Errorf("workers must be positive, got %d", cfg.Workers)
	}
	if cfg.Draws < 0 {
		return Result{}, fmt.Errorf("draws must not be negative, got %d", cfg.Draws)
	}
	if cfg.Registry == nil {
		cfg.Registry = random.Default
	}
	if cfg.Clock == nil {
		cfg.Clock = quartz.NewReal()
	}
	if cfg.Logger == nil {
		cfg.Logger = log.Default()
	}

	results := make([]WorkerResult, cfg.Workers)
	start := cfg.Clock.Now()

	g, ctx := cfg.Registry.NewGroup(ctx)
	for w := 0; w < cfg.Workers; w++ {
		g.Go(func(ctx context.Context, l *random.Local) error {
			res := WorkerResult{Seed: l.Seed()}
			for i := 0; i < cfg.Draws; i++ {
				if i&4095 == 0 {
					if err := ctx.Err(); err != nil {
						return err
					}
				}
				res.Sum += random.Uniform[float64](l)
				res.Draws++
			}
			results[w] = res
			cfg.Logger.Debug("worker finished", "worker", w, "seed", res.Seed, "draws", res.Draws)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Result{}, err
	}

	return Result{Workers: results, Elapsed: cfg.Clock.Since(start)}, nil
}
