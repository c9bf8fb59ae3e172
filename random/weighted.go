package random

import (
	"fmt"
	"iter"
)

// WeightedSelect returns elems[i] with probability probs[i], or fallback with
// the probability left over when probs sums to less than 1.
//
// The input is validated before anything is drawn: lengths must match, every
// probability must lie in [0, 1] and their sum must too. A NaN probability is
// out of range. Validation errors wrap ErrSizeMismatch, ErrOutOfRange or
// ErrMassExceeded, checked in that order, and leave the generator untouched.
func WeightedSelect[P Float, E any](l *Local, probs []P, elems []E, fallback E) (E, error) {
	if err := ValidateWeights(probs, len(elems)); err != nil {
		var zero E
		return zero, err
	}
	return WeightedSelectUnchecked(l, probs, elems, fallback), nil
}

// WeightedSelectUnchecked is WeightedSelect without validation. Mismatched
// lengths walk only the common prefix; out-of-range weights simply shift the
// cumulative boundaries.
func WeightedSelectUnchecked[P Float, E any](l *Local, probs []P, elems []E, fallback E) E {
	r := l.Generator().Float64()
	n := min(len(probs), len(elems))

	partial := 0.0
	for i := 0; i < n; i++ {
		partial += float64(probs[i])
		// A draw on a boundary belongs to the earlier element.
		if r <= partial {
			return elems[i]
		}
	}
	return fallback
}

// ValidateWeights checks probs against an element count of n.
func ValidateWeights[P Float](probs []P, n int) error {
	if len(probs) != n {
		return fmt.Errorf("%w: %d probabilities, %d elements", ErrSizeMismatch, len(probs), n)
	}

	sum := 0.0
	for i, p := range probs {
		if !inUnit(float64(p)) {
			return fmt.Errorf("%w: probability %d is %v", ErrOutOfRange, i, p)
		}
		sum += float64(p)
	}
	if !inUnit(sum) {
		return fmt.Errorf("%w: sum is %v", ErrMassExceeded, sum)
	}
	return nil
}

// WeightedSelectSeq is WeightedSelect over lazily produced sequences, walked
// pairwise. When validate is true both sequences are iterated twice, once to
// validate and once to select, so they must be re-iterable; otherwise a
// single pass stops at the first hit.
func WeightedSelectSeq[P Float, E any](l *Local, probs iter.Seq[P], elems iter.Seq[E], fallback E, validate bool) (E, error) {
	if validate {
		if err := validateSeq(probs, elems); err != nil {
			var zero E
			return zero, err
		}
	}

	r := l.Generator().Float64()
	next, stop := iter.Pull(elems)
	defer stop()

	partial := 0.0
	for p := range probs {
		e, ok := next()
		if !ok {
			break
		}
		partial += float64(p)
		if r <= partial {
			return e, nil
		}
	}
	return fallback, nil
}

// validateSeq walks both sequences together. Errors are reported in the same
// priority as ValidateWeights even though a range violation may be seen
// before the sequences run out.
func validateSeq[P Float, E any](probs iter.Seq[P], elems iter.Seq[E]) error {
	next, stop := iter.Pull(elems)
	defer stop()

	var (
		rangeErr error
		sum      float64
		np, ne   int
	)
	for p := range probs {
		np++
		if _, ok := next(); ok {
			ne++
		}
		if rangeErr == nil && !inUnit(float64(p)) {
			rangeErr = fmt.Errorf("%w: probability %d is %v", ErrOutOfRange, np-1, p)
		}
		sum += float64(p)
	}
	if np == ne {
		for _, ok := next(); ok; _, ok = next() {
			ne++
		}
	}

	switch {
	case np != ne:
		return fmt.Errorf("%w: %d probabilities, %d elements", ErrSizeMismatch, np, ne)
	case rangeErr != nil:
		return rangeErr
	case !inUnit(sum):
		return fmt.Errorf("%w: sum is %v", ErrMassExceeded, sum)
	}
	return nil
}

// inUnit reports whether x lies in [0, 1]. NaN does not.
func inUnit(x float64) bool {
	return x >= 0 && x <= 1
}
