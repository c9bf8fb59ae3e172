package random

import (
	"io"
	rand "math/rand/v2"
	"sync/atomic"

	"github.com/charmbracelet/log"

	"github.com/lox/parallelrandom/internal/engine"
	"github.com/lox/parallelrandom/internal/randutil"
)

// Option configures a Registry.
type Option func(*Registry)

// WithEngine selects the engine algorithm backing new generators.
func WithEngine(kind engine.Kind) Option {
	return func(r *Registry) {
		r.kind = kind
	}
}

// WithEntropy sets where default seeds come from.
func WithEntropy(entropy randutil.Entropy) Option {
	return func(r *Registry) {
		r.entropy = entropy
	}
}

// WithLogger sets the logger used to report generator lifecycle events.
func WithLogger(logger *log.Logger) Option {
	return func(r *Registry) {
		r.logger = logger
	}
}

// Registry creates per-goroutine generators. A Registry is safe for
// concurrent use; the handles it returns are not.
type Registry struct {
	kind    engine.Kind
	factory engine.Factory
	entropy randutil.Entropy
	logger  *log.Logger
	created atomic.Int64
}

// Default seeds MT19937 engines from OS entropy.
var Default = mustRegistry()

func mustRegistry() *Registry {
	r, err := NewRegistry()
	if err != nil {
		panic(err)
	}
	return r
}

// NewRegistry returns a Registry configured by opts. It fails only when the
// engine kind is unknown.
func NewRegistry(opts ...Option) (*Registry, error) {
	r := &Registry{
		kind:    engine.Default,
		entropy: randutil.OS{},
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.logger == nil {
		r.logger = log.New(io.Discard)
	}
	if r.entropy == nil {
		r.entropy = randutil.OS{}
	}

	factory, err := engine.Lookup(r.kind)
	if err != nil {
		return nil, err
	}
	r.factory = factory
	return r, nil
}

// Engine reports the engine kind backing new generators.
func (r *Registry) Engine() engine.Kind { return r.kind }

// Entropy reports the source consulted for default seeds.
func (r *Registry) Entropy() randutil.Entropy { return r.entropy }

// Created reports how many generators have been materialised so far.
func (r *Registry) Created() int64 { return r.created.Load() }

// NewLocal returns a handle whose generator is created on first use. The
// entropy source is consulted at that moment, not here.
func (r *Registry) NewLocal() *Local {
	return &Local{reg: r}
}

// NewLocalWithSeed returns a handle seeded with seed. Two handles with the
// same seed and engine produce identical streams.
func (r *Registry) NewLocalWithSeed(seed uint32) *Local {
	l := &Local{reg: r}
	r.materialise(l, seed, true)
	return l
}

func (r *Registry) materialise(l *Local, seed uint32, explicit bool) {
	l.seed = seed
	l.rng = rand.New(r.factory(seed))
	r.created.Add(1)
	r.logger.Debug("generator created", "engine", r.kind, "seed", seed, "explicit", explicit)
}

// NewLocal returns a lazy handle from the Default registry.
func NewLocal() *Local { return Default.NewLocal() }

// NewLocalWithSeed returns a deterministic handle from the Default registry.
func NewLocalWithSeed(seed uint32) *Local { return Default.NewLocalWithSeed(seed) }

// Local is one goroutine's generator: a seed fixed at creation and the engine
// it initialised. It must only be used by the goroutine that owns it. The zero
// value draws from a generator made by the Default registry.
type Local struct {
	reg  *Registry
	seed uint32
	rng  *rand.Rand
}

// Seed returns the generator's seed, creating the generator first if needed.
func (l *Local) Seed() uint32 {
	l.ensure()
	return l.seed
}

// Generator returns the underlying engine, creating it first if needed. The
// returned value shares state with l and carries the same ownership rule.
func (l *Local) Generator() *rand.Rand {
	l.ensure()
	return l.rng
}

func (l *Local) ensure() {
	if l.reg == nil {
		l.reg = Default
	}
	if l.rng == nil {
		l.reg.materialise(l, l.reg.entropy.Seed(), false)
	}
}

// release drops the generator state. It runs when the owning goroutine's
// function returns.
func (l *Local) release() {
	if l.rng == nil {
		return
	}
	l.reg.logger.Debug("generator released", "engine", l.reg.kind, "seed", l.seed)
	l.rng = nil
	l.seed = 0
}
