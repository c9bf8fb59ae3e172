// Package config loads the optional HCL settings file shared by every CLI
// command.
package config

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/lox/parallelrandom/internal/engine"
	"github.com/lox/parallelrandom/internal/randutil"
)

// Config is the complete settings file
type Config struct {
	Generator *GeneratorSettings `hcl:"generator,block"`
	Bench     *BenchSettings     `hcl:"bench,block"`
	LogLevel  string             `hcl:"log_level,optional"`
}

// GeneratorSettings controls how per-goroutine generators are built
type GeneratorSettings struct {
	Engine  string `hcl:"engine,optional"`
	Entropy string `hcl:"entropy,optional"`
	Seed    *int64 `hcl:"seed,optional"`
}

// BenchSettings holds defaults for the bench command
type BenchSettings struct {
	Workers int `hcl:"workers,optional"`
	Draws   int `hcl:"draws,optional"`
}

// Default returns the configuration used when no file is present
func Default() *Config {
	return &Config{
		Generator: &GeneratorSettings{
			Engine:  string(engine.Default),
			Entropy: "os",
		},
		Bench: &BenchSettings{
			Workers: 4,
			Draws:   1_000_000,
		},
		LogLevel: "info",
	}
}

// Load reads configuration from an HCL file. A missing file yields Default.
func Load(filename string) (*Config, error) {
	if filename == "" {
		return Default(), nil
	}
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return Default(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var cfg Config
	diags = gohcl.DecodeBody(file.Body, nil, &cfg)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	def := Default()
	if cfg.Generator == nil {
		cfg.Generator = def.Generator
	}
	if cfg.Bench == nil {
		cfg.Bench = def.Bench
	}
	if cfg.Generator.Engine == "" {
		cfg.Generator.Engine = def.Generator.Engine
	}
	if cfg.Generator.Entropy == "" {
		cfg.Generator.Entropy = def.Generator.Entropy
	}
	if cfg.Bench.Workers == 0 {
		cfg.Bench.Workers = def.Bench.Workers
	}
	if cfg.Bench.Draws == 0 {
		cfg.Bench.Draws = def.Bench.Draws
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = def.LogLevel
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return &cfg, nil
}

// Validate checks the configuration
func (c *Config) Validate() error {
	if _, err := engine.Parse(c.Generator.Engine); err != nil {
		return err
	}
	if _, err := randutil.ParseEntropy(c.Generator.Entropy, nil); err != nil {
		return err
	}
	if c.Bench.Workers < 1 {
		return fmt.Errorf("bench workers must be positive, got %d", c.Bench.Workers)
	}
	if c.Bench.Draws < 1 {
		return fmt.Errorf("bench draws must be positive, got %d", c.Bench.Draws)
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level %q", c.LogLevel)
	}
	return nil
}
