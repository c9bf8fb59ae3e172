package randutil

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math"
	"strconv"
	"strings"
	"sync/atomic"

	"lukechampine.com/frand"
)

// Entropy produces seeds for new generators. Implementations must be safe for
// concurrent use because every goroutine consults the source once, at the
// moment its generator is created.
type Entropy interface {
	Seed() uint32
	String() string
}

// OS reads seeds from the operating system's entropy pool.
type OS struct{}

// Seed reads four bytes from crypto/rand. Since Go 1.24 crypto/rand.Read
// never returns an error.
func (OS) Seed() uint32 {
	var b [4]byte
	_, _ = crand.Read(b[:])
	return binary.LittleEndian.Uint32(b[:])
}

func (OS) String() string { return "os" }

// Fast draws seeds from frand, a user-space ChaCha-based generator that is
// itself seeded from the OS once per process.
type Fast struct{}

func (Fast) Seed() uint32 {
	return uint32(frand.Uint64n(math.MaxUint32 + 1))
}

func (Fast) String() string { return "fast" }

// Sequence derives a reproducible stream of seeds from a master seed. Each
// call hands out the next counter value run through splitmix64, so concurrent
// callers receive distinct inputs without a lock. Which goroutine receives
// which seed depends on scheduling; the set of seeds does not.
type Sequence struct {
	master uint64
	next   atomic.Uint64
}

// NewSequence returns a Sequence rooted at master.
func NewSequence(master int64) *Sequence {
	return &Sequence{master: uint64(master)}
}

func (s *Sequence) Seed() uint32 {
	n := s.next.Add(1)
	return uint32(Mix(s.master+n*goldenRatio64) >> 32)
}

func (s *Sequence) String() string {
	return "sequence(" + strconv.FormatInt(int64(s.master), 10) + ")"
}

// ParseEntropy resolves an entropy source by name. A master seed selects the
// deterministic sequence source regardless of name.
func ParseEntropy(name string, master *int64) (Entropy, error) {
	if master != nil {
		return NewSequence(*master), nil
	}
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "os":
		return OS{}, nil
	case "fast":
		return Fast{}, nil
	default:
		return nil, fmt.Errorf("unknown entropy source %q (want os or fast)", name)
	}
}
