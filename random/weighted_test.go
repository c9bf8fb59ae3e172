package random

import (
	"math"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWeightedSelectValidation(t *testing.T) {
	tests := []struct {
		name  string
		probs []float64
		elems []string
		want  error
	}{
		{"mass exceeded", []float64{0.5, 0.6}, []string{"A", "B"}, ErrMassExceeded},
		{"negative probability", []float64{0.5, -0.1}, []string{"A", "B"}, ErrOutOfRange},
		{"probability above one", []float64{1.5}, []string{"A"}, ErrOutOfRange},
		{"NaN probability", []float64{0.2, math.NaN()}, []string{"A", "B"}, ErrOutOfRange},
		{"size mismatch", []float64{0.5}, []string{"A", "B"}, ErrSizeMismatch},
		{"size checked before range", []float64{-1, 2}, []string{"A"}, ErrSizeMismatch},
		{"range checked before mass", []float64{0.9, 1.2}, []string{"A", "B"}, ErrOutOfRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := NewLocalWithSeed(1)
			_, err := WeightedSelect(l, tt.probs, tt.elems, "F")
			require.ErrorIs(t, err, tt.want)

			_, err = WeightedSelectSeq(l, slices.Values(tt.probs), slices.Values(tt.elems), "F", true)
			require.ErrorIs(t, err, tt.want)
		})
	}
}

func TestWeightedSelectValidationDoesNotDraw(t *testing.T) {
	a := NewLocalWithSeed(77)
	b := NewLocalWithSeed(77)

	_, err := WeightedSelect(a, []float64{0.5, 0.6}, []string{"A", "B"}, "F")
	require.Error(t, err)

	assert.Equal(t, b.Generator().Uint64(), a.Generator().Uint64())
}

func TestWeightedSelectFixedSeedIsReproducible(t *testing.T) {
	probs := []float64{0.3, 0.3, 0.3}
	elems := []string{"A", "B", "C"}

	run := func() []string {
		l := NewLocalWithSeed(20240601)
		out := make([]string, 200)
		for i := range out {
			v, err := WeightedSelect(l, probs, elems, "F")
			require.NoError(t, err)
			out[i] = v
		}
		return out
	}

	first := run()
	assert.Equal(t, first, run())
	assert.Contains(t, first, "F", "10% fallback mass shows up in 200 draws")
}

func TestWeightedSelectFallbackCoverage(t *testing.T) {
	probs := []float64{0.2, 0.2}
	elems := []string{"A", "B"}

	tests := []struct {
		draw float64
		want string
	}{
		{0.125, "A"},
		{0.25, "B"},
		{0.5, "F"},
		{0.75, "F"},
	}
	for _, tt := range tests {
		got, err := WeightedSelect(drawing(t, tt.draw), probs, elems, "F")
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "draw %v", tt.draw)
	}
}

func TestWeightedSelectBoundaryGoesToEarlierElement(t *testing.T) {
	probs := []float64{0.25, 0.25, 0.5}
	elems := []string{"A", "B", "C"}

	tests := []struct {
		draw float64
		want string
	}{
		{0, "A"},
		{0.25, "A"},
		{0.25 + 1.0/(1<<53), "B"},
		{0.5, "B"},
		{0.75, "C"},
	}
	for _, tt := range tests {
		got, err := WeightedSelect(drawing(t, tt.draw), probs, elems, "F")
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "draw %v", tt.draw)

		got, err = WeightedSelectSeq(drawing(t, tt.draw), slices.Values(probs), slices.Values(elems), "F", true)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "seq draw %v", tt.draw)
	}
}

func TestWeightedSelectZeroWeightIsSkipped(t *testing.T) {
	got, err := WeightedSelect(drawing(t, 0.5), []float64{0.5, 0, 0.5}, []string{"A", "B", "C"}, "F")
	require.NoError(t, err)
	assert.Equal(t, "A", got)

	got, err = WeightedSelect(drawing(t, 0.75), []float64{0.5, 0, 0.5}, []string{"A", "B", "C"}, "F")
	require.NoError(t, err)
	assert.Equal(t, "C", got)
}

func TestWeightedSelectEmptyInputReturnsFallback(t *testing.T) {
	got, err := WeightedSelect(NewLocalWithSeed(1), []float32{}, []int{}, -1)
	require.NoError(t, err)
	assert.Equal(t, -1, got)
}

func TestWeightedSelectUncheckedToleratesBadInput(t *testing.T) {
	// Common prefix only.
	assert.Equal(t, "A", WeightedSelectUnchecked(drawing(t, 0.5), []float64{0.9}, []string{"A", "B"}, "F"))
	assert.Equal(t, "F", WeightedSelectUnchecked(drawing(t, 0.5), []float64{0.1, 0.9}, []string{"A"}, "F"))
	// A negative weight pushes the next boundary down.
	assert.Equal(t, "F", WeightedSelectUnchecked(drawing(t, 0.5), []float64{-0.5, 0.9}, []string{"A", "B"}, "F"))
	// Excess mass makes the fallback unreachable.
	assert.Equal(t, "A", WeightedSelectUnchecked(drawing(t, 0.75), []float64{2}, []string{"A"}, "F"))

	got, err := WeightedSelectSeq(drawing(t, 0.5), slices.Values([]float64{0.1, 0.9}), slices.Values([]string{"A"}), "F", false)
	require.NoError(t, err)
	assert.Equal(t, "F", got)
}

func TestWeightedSelectSeqMatchesSlices(t *testing.T) {
	probs := []float32{0.1, 0.2, 0.3}
	elems := []int{1, 2, 3}

	a := NewLocalWithSeed(555)
	b := NewLocalWithSeed(555)
	for i := 0; i < 500; i++ {
		want, err := WeightedSelect(a, probs, elems, 0)
		require.NoError(t, err)
		got, err := WeightedSelectSeq(b, slices.Values(probs), slices.Values(elems), 0, true)
		require.NoError(t, err)
		require.Equal(t, want, got)
	}
}

func TestWeightedSelectFrequencies(t *testing.T) {
	const trials = 100_000
	l := NewLocalWithSeed(31337)
	counts := map[string]int{}
	for i := 0; i < trials; i++ {
		v, err := WeightedSelect(l, []float64{0.1, 0.6}, []string{"A", "B"}, "F")
		require.NoError(t, err)
		counts[v]++
	}
	assert.InDelta(t, 0.1, float64(counts["A"])/trials, 0.01)
	assert.InDelta(t, 0.6, float64(counts["B"])/trials, 0.01)
	assert.InDelta(t, 0.3, float64(counts["F"])/trials, 0.01)
}
