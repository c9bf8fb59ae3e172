package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/lox/parallelrandom/internal/config"
	"github.com/lox/parallelrandom/internal/engine"
	"github.com/lox/parallelrandom/internal/randutil"
	"github.com/lox/parallelrandom/random"
)

// Globals are flags shared by every command. Flags override the config file.
type Globals struct {
	Config  string `help:"HCL settings file" type:"path" default:"parallelrandom.hcl"`
	Engine  string `help:"Engine: mt19937, pcg or xpcg"`
	Entropy string `help:"Seed source: os or fast"`
	Seed    *int64 `help:"Master seed; makes every goroutine's seed reproducible" env:"PARALLELRANDOM_SEED"`
	Debug   bool   `help:"Enable debug logging"`

	Stdout io.Writer `kong:"-"`
}

// env is everything a command needs once flags and config are resolved.
type env struct {
	cfg      *config.Config
	logger   *log.Logger
	registry *random.Registry
	out      io.Writer
}

func (g *Globals) setup() (*env, error) {
	cfg, err := config.Load(g.Config)
	if err != nil {
		return nil, err
	}
	if g.Engine != "" {
		cfg.Generator.Engine = g.Engine
	}
	if g.Entropy != "" {
		cfg.Generator.Entropy = g.Entropy
	}
	if g.Seed != nil {
		cfg.Generator.Seed = g.Seed
	}
	if g.Debug {
		cfg.LogLevel = "debug"
	}

	logger, err := setupLogger(cfg.LogLevel)
	if err != nil {
		return nil, err
	}

	registry, err := newRegistry(cfg.Generator, logger)
	if err != nil {
		return nil, err
	}

	out := g.Stdout
	if out == nil {
		out = os.Stdout
	}
	return &env{cfg: cfg, logger: logger, registry: registry, out: out}, nil
}

func newRegistry(gen *config.GeneratorSettings, logger *log.Logger) (*random.Registry, error) {
	kind, err := engine.Parse(gen.Engine)
	if err != nil {
		return nil, err
	}
	entropy, err := randutil.ParseEntropy(gen.Entropy, gen.Seed)
	if err != nil {
		return nil, err
	}
	if gen.Seed != nil {
		logger.Info("Using deterministic seed", "seed", *gen.Seed)
	}
	registry, err := random.NewRegistry(
		random.WithEngine(kind),
		random.WithEntropy(entropy),
		random.WithLogger(logger),
	)
	if err != nil {
		return nil, fmt.Errorf("create registry: %w", err)
	}
	return registry, nil
}
