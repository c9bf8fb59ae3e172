// Package histogram tallies sampled outcomes and renders them as bar charts.
package histogram

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	labelStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("14"))

	barStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("10"))

	percentStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("12"))
)

// Counts tallies discrete outcomes by label, remembering first-seen order.
type Counts struct {
	order  []string
	counts map[string]int
	total  int
}

// NewCounts returns an empty tally. Labels passed here are shown even when
// they are never observed.
func NewCounts(labels ...string) *Counts {
	c := &Counts{counts: make(map[string]int)}
	for _, l := range labels {
		c.ensure(l)
	}
	return c
}

func (c *Counts) ensure(label string) {
	if _, ok := c.counts[label]; !ok {
		c.order = append(c.order, label)
		c.counts[label] = 0
	}
}

// Add records one observation of label.
func (c *Counts) Add(label string) {
	c.ensure(label)
	c.counts[label]++
	c.total++
}

// Merge folds other into c.
func (c *Counts) Merge(other *Counts) {
	for _, l := range other.order {
		c.ensure(l)
		c.counts[l] += other.counts[l]
	}
	c.total += other.total
}

// Count returns how often label was observed.
func (c *Counts) Count(label string) int { return c.counts[label] }

// Total returns the number of observations.
func (c *Counts) Total() int { return c.total }

// Labels returns labels in first-seen order.
func (c *Counts) Labels() []string { return append([]string(nil), c.order...) }

// Frequency returns the observed share of label.
func (c *Counts) Frequency(label string) float64 {
	if c.total == 0 {
		return 0
	}
	return float64(c.counts[label]) / float64(c.total)
}

// Buckets splits [Low, High) into equal-width bins. Values outside the
// range land in the nearest edge bin.
type Buckets struct {
	Low, High float64
	Bins      []int
}

// NewBuckets returns n bins over [low, high).
func NewBuckets(low, high float64, n int) *Buckets {
	if n < 1 {
		n = 1
	}
	return &Buckets{Low: low, High: high, Bins: make([]int, n)}
}

// Add records x.
func (b *Buckets) Add(x float64) {
	width := (b.High - b.Low) / float64(len(b.Bins))
	i := 0
	if width != 0 {
		i = int(math.Floor((x - b.Low) / width))
	}
	i = max(0, min(i, len(b.Bins)-1))
	b.Bins[i]++
}

// Counts converts the bins into a labelled tally.
func (b *Buckets) Counts() *Counts {
	width := (b.High - b.Low) / float64(len(b.Bins))
	c := NewCounts()
	for i, n := range b.Bins {
		label := fmt.Sprintf("[%.3g, %.3g)", b.Low+float64(i)*width, b.Low+float64(i+1)*width)
		c.ensure(label)
		c.counts[label] = n
		c.total += n
	}
	return c
}

// Render draws one bar per label, scaled so the largest count fills width
// cells. sorted orders bars by descending count instead of first-seen order.
func Render(c *Counts, width int, sorted bool) string {
	labels := c.Labels()
	if sorted {
		sort.SliceStable(labels, func(i, j int) bool {
			return c.counts[labels[i]] > c.counts[labels[j]]
		})
	}

	peak, pad := 0, 0
	for _, l := range labels {
		peak = max(peak, c.counts[l])
		pad = max(pad, len(l))
	}

	var sb strings.Builder
	for _, l := range labels {
		n := c.counts[l]
		cells := 0
		if peak > 0 {
			cells = n * width / peak
		}
		sb.WriteString(labelStyle.Render(fmt.Sprintf("%-*s", pad, l)))
		sb.WriteString(" ")
		sb.WriteString(barStyle.Render(strings.Repeat("█", cells)))
		sb.WriteString(fmt.Sprintf(" %d ", n))
		sb.WriteString(percentStyle.Render(fmt.Sprintf("(%.2f%%)", 100*c.Frequency(l))))
		sb.WriteString("\n")
	}
	return sb.String()
}
