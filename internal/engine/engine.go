// Package engine is the catalogue of pseudo-random bit generators a goroutine
// can be seeded with. Each engine is a third-party or standard algorithm; this
// package only knows how to seed one from a 32-bit value and expose it as a
// math/rand/v2 Source.
package engine

import (
	"fmt"
	rand "math/rand/v2"
	"strings"

	xrand "golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mathext/prng"

	"github.com/lox/parallelrandom/internal/randutil"
)

// Kind names an engine algorithm.
type Kind string

const (
	// MT19937 is the 32-bit Mersenne Twister.
	MT19937 Kind = "mt19937"
	// PCG is math/rand/v2's 128-bit PCG-DXSM.
	PCG Kind = "pcg"
	// XPCG is the PCG source from golang.org/x/exp/rand.
	XPCG Kind = "xpcg"

	Default = MT19937
)

// Kinds lists every supported engine in display order.
func Kinds() []Kind {
	return []Kind{MT19937, PCG, XPCG}
}

// Parse resolves a Kind from user input.
func Parse(s string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(s)))
	if k == "" {
		return Default, nil
	}
	for _, known := range Kinds() {
		if k == known {
			return k, nil
		}
	}
	return "", fmt.Errorf("unknown engine %q", s)
}

// Factory builds a freshly seeded source. The same seed always produces the
// same stream.
type Factory func(seed uint32) rand.Source

// Lookup returns the factory for kind.
func Lookup(kind Kind) (Factory, error) {
	switch kind {
	case MT19937, "":
		return newMT19937, nil
	case PCG:
		return newPCG, nil
	case XPCG:
		return newXPCG, nil
	default:
		return nil, fmt.Errorf("unknown engine %q", kind)
	}
}

// New returns a *rand.Rand over a freshly seeded source of the given kind.
func New(kind Kind, seed uint32) (*rand.Rand, error) {
	factory, err := Lookup(kind)
	if err != nil {
		return nil, err
	}
	return rand.New(factory(seed)), nil
}

// Only the low 32 bits of the seed reach the twister's state.
func newMT19937(seed uint32) rand.Source {
	src := prng.NewMT19937()
	src.Seed(uint64(seed))
	return src
}

func newPCG(seed uint32) rand.Source {
	return rand.NewPCG(randutil.Expand(seed))
}

func newXPCG(seed uint32) rand.Source {
	src := &xrand.PCGSource{}
	src.Seed(uint64(seed))
	return src
}
