package statistics

import (
	"fmt"
	"math"
	"sort"
)

// Summary accumulates real-valued samples
type Summary struct {
	Count  int
	Sum    float64
	SumSq  float64   // Sum of squares for variance calculation
	Values []float64 // Kept for median/percentile calculation
	Min    float64
	Max    float64
}

// Add incorporates a new sample
func (s *Summary) Add(x float64) {
	if s.Count == 0 || x < s.Min {
		s.Min = x
	}
	if s.Count == 0 || x > s.Max {
		s.Max = x
	}
	s.Count++
	s.Sum += x
	s.SumSq += x * x
	s.Values = append(s.Values, x)
}

// Merge folds other into s. Workers keep their own Summary and merge once
// they finish.
func (s *Summary) Merge(other *Summary) {
	if other.Count == 0 {
		return
	}
	if s.Count == 0 || other.Min < s.Min {
		s.Min = other.Min
	}
	if s.Count == 0 || other.Max > s.Max {
		s.Max = other.Max
	}
	s.Count += other.Count
	s.Sum += other.Sum
	s.SumSq += other.SumSq
	s.Values = append(s.Values, other.Values...)
}

// Mean returns the arithmetic mean
func (s *Summary) Mean() float64 {
	if s.Count == 0 {
		return 0
	}
	return s.Sum / float64(s.Count)
}

// Variance returns the sample variance
func (s *Summary) Variance() float64 {
	if s.Count < 2 {
		return 0
	}
	mean := s.Mean()
	return (s.SumSq - float64(s.Count)*mean*mean) / float64(s.Count-1)
}

// StdDev returns the sample standard deviation
func (s *Summary) StdDev() float64 {
	return math.Sqrt(s.Variance())
}

// StdError returns the standard error of the mean
func (s *Summary) StdError() float64 {
	if s.Count == 0 {
		return 0
	}
	return s.StdDev() / math.Sqrt(float64(s.Count))
}

// ConfidenceInterval95 returns the 95% confidence interval for the mean
func (s *Summary) ConfidenceInterval95() (float64, float64) {
	mean := s.Mean()
	margin := 1.96 * s.StdError()
	return mean - margin, mean + margin
}

// Median returns the median sample
func (s *Summary) Median() float64 {
	return s.Percentile(0.5)
}

// Percentile returns the value at the given percentile (0.0 to 1.0),
// interpolating between neighbouring samples
func (s *Summary) Percentile(p float64) float64 {
	if len(s.Values) == 0 {
		return 0
	}
	sorted := make([]float64, len(s.Values))
	copy(sorted, s.Values)
	sort.Float64s(sorted)

	index := p * float64(len(sorted)-1)
	lower := int(index)
	upper := lower + 1

	if upper >= len(sorted) {
		return sorted[len(sorted)-1]
	}

	weight := index - float64(lower)
	return sorted[lower]*(1-weight) + sorted[upper]*weight
}

// Validate checks the accumulator's bookkeeping
func (s *Summary) Validate() error {
	if s.Count <= 0 {
		return fmt.Errorf("invalid sample count: %d", s.Count)
	}
	if len(s.Values) != s.Count {
		return fmt.Errorf("values length (%d) does not match count (%d)", len(s.Values), s.Count)
	}
	if s.Min > s.Max {
		return fmt.Errorf("min %.6f exceeds max %.6f", s.Min, s.Max)
	}
	return nil
}
