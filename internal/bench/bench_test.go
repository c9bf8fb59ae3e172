package bench

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/parallelrandom/internal/randutil"
	"github.com/lox/parallelrandom/random"
)

func testConfig(t *testing.T, workers, draws int) Config {
	t.Helper()
	reg, err := random.NewRegistry(random.WithEntropy(randutil.NewSequence(9)))
	require.NoError(t, err)
	return Config{
		Workers:  workers,
		Draws:    draws,
		Registry: reg,
		Clock:    quartz.NewMock(t),
		Logger:   log.NewWithOptions(io.Discard, log.Options{Level: log.WarnLevel}),
	}
}

func TestRunDrawsOnEveryWorker(t *testing.T) {
	cfg := testConfig(t, 4, 20_000)

	res, err := Run(context.Background(), cfg)
	require.NoError(t, err)

	require.Len(t, res.Workers, 4)
	assert.Equal(t, 80_000, res.TotalDraws())
	assert.InDelta(t, 0.5, res.Mean(), 0.01)

	seeds := map[uint32]bool{}
	for _, w := range res.Workers {
		assert.Equal(t, 20_000, w.Draws)
		seeds[w.Seed] = true
	}
	assert.Len(t, seeds, 4, "every worker owns its own generator")
	assert.EqualValues(t, 4, cfg.Registry.Created())
}

func TestRunWithFrozenClockReportsZeroRate(t *testing.T) {
	res, err := Run(context.Background(), testConfig(t, 2, 10))
	require.NoError(t, err)
	assert.Zero(t, res.Elapsed)
	assert.Zero(t, res.Rate())
}

func TestRate(t *testing.T) {
	res := Result{
		Workers: []WorkerResult{{Draws: 3_000}, {Draws: 1_000}},
		Elapsed: 2 * time.Second,
	}
	assert.Equal(t, 2_000.0, res.Rate())
}

func TestRunHonoursCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Run(ctx, testConfig(t, 3, 1_000))
	require.ErrorIs(t, err, context.Canceled)
}

func TestRunRejectsBadConfig(t *testing.T) {
	_, err := Run(context.Background(), testConfig(t, 0, 10))
	assert.Error(t, err)

	_, err = Run(context.Background(), testConfig(t, 1, -1))
	assert.Error(t, err)
}
