package random

import (
	"fmt"
	"math"
	"unsafe"
)

// Uniform returns a value in [0, 1) using one draw from l. Single-precision
// kinds use the engine's 24-bit Float32, everything else its 53-bit Float64.
func Uniform[T Float](l *Local) T {
	var zero T
	if unsafe.Sizeof(zero) == 4 {
		return T(l.Generator().Float32())
	}
	return T(l.Generator().Float64())
}

// UniformRange returns (high-low)*Uniform + low, never high itself. The bounds
// are not checked: when low > high the result lies in (high, low] and scales
// downward from low.
func UniformRange[T Float](l *Local, low, high T) T {
	v := (high-low)*Uniform[T](l) + low
	if v == high && low != high {
		// Rounding can carry the largest draws onto high.
		return nextToward(high, low)
	}
	return v
}

// nextToward returns the representable value after x in the direction of y.
func nextToward[T Float](x, y T) T {
	if unsafe.Sizeof(x) == 4 {
		return T(math.Nextafter32(float32(x), float32(y)))
	}
	return T(math.Nextafter(float64(x), float64(y)))
}

// IntRange returns an integer drawn uniformly from [low, highInclusive]. The
// full int range is supported.
func IntRange(l *Local, low, highInclusive int) (int, error) {
	if low > highInclusive {
		return 0, fmt.Errorf("%w: low %d > high %d", ErrInvalidRange, low, highInclusive)
	}
	span := uint64(highInclusive) - uint64(low)
	if span == math.MaxUint64 {
		return int(l.Generator().Uint64()), nil
	}
	return low + int(l.Generator().Uint64N(span+1)), nil
}

// Bernoulli reports whether Uniform[T] <= p. p is not validated; values
// below 0 never succeed and values at or above 1 always do.
func Bernoulli[T Float](l *Local, p T) bool {
	return Uniform[T](l) <= p
}

// Shuffle permutes s in place with a Fisher-Yates shuffle on l's generator.
func Shuffle[E any](l *Local, s []E) {
	l.Generator().Shuffle(len(s), func(i, j int) {
		s[i], s[j] = s[j], s[i]
	})
}
