// Package config loads the calculator's tunables — parser punctuation,
// the multi-cube-containment time budget, and default log verbosity —
// from a TOML file via koanf, the layered configuration library this
// module uses in place of a hand-rolled flag-only setup.
package config

import (
	"time"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"

	"github.com/rudell/cubecalc/bcp"
)

// Config holds every tunable a Context needs at construction time.
type Config struct {
	Punct            bcp.Punct
	MCCBudget        time.Duration
	DefaultVerbosity int
}

// Default returns the engine's built-in defaults: the calculator's default
// punctuation, an unbounded MCC budget, and verbosity 0.
func Default() *Config {
	return &Config{
		Punct:            bcp.DefaultPunct(),
		MCCBudget:        0,
		DefaultVerbosity: 0,
	}
}

// Load reads a TOML config file at path, overlaying it on Default(). A
// missing key simply leaves the default in place; an unreadable or
// malformed file is an error.
//
// Expected keys: punct.true, punct.false, punct.end, punct.and, punct.or,
// punct.not (single-character strings), mcc_budget_ms (integer), and
// default_verbosity (integer).
func Load(path string) (*Config, error) {
	cfg := Default()

	k := koanf.New(".")
	if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "config: loading %s", path)
	}

	if v := k.String("punct.true"); v != "" {
		cfg.Punct.True = v[0]
	}
	if v := k.String("punct.false"); v != "" {
		cfg.Punct.False = v[0]
	}
	if v := k.String("punct.end"); v != "" {
		cfg.Punct.End = v[0]
	}
	if v := k.String("punct.and"); v != "" {
		cfg.Punct.And = v[0]
	}
	if v := k.String("punct.or"); v != "" {
		cfg.Punct.Or = v[0]
	}
	if v := k.String("punct.not"); v != "" {
		cfg.Punct.Not = v[0]
	}
	if k.Exists("mcc_budget_ms") {
		cfg.MCCBudget = time.Duration(k.Int64("mcc_budget_ms")) * time.Millisecond
	}
	if k.Exists("default_verbosity") {
		cfg.DefaultVerbosity = k.Int("default_verbosity")
	}

	return cfg, nil
}

// NewContext builds a *bcp.Context with placeholderVars variables, applying
// cfg's punctuation and MCC budget.
func (cfg *Config) NewContext(placeholderVars uint) *bcp.Context {
	ctx := bcp.New(placeholderVars)
	ctx.Punct = cfg.Punct
	ctx.MCCBudget = cfg.MCCBudget
	return ctx
}
