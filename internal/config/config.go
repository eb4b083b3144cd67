// Package config loads the BettingAbstraction that parameterises a tree
// build from an HCL file, the way the teacher repo loads its server
// configuration: parse, apply defaults for anything unset, validate.
package config

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// BettingAbstraction is the configuration input to a tree build: starting
// stack and blinds, the per-street raise cap, the all-in policy, and the
// discrete pot-fraction sizes offered on each street.
type BettingAbstraction struct {
	StartingStack      int `hcl:"starting_stack,optional"`
	SmallBlind         int `hcl:"small_blind,optional"`
	BigBlind           int `hcl:"big_blind,optional"`
	MaxRaisesPerStreet int `hcl:"max_raises_per_street,optional"`
	AllowAllIn         bool `hcl:"allow_all_in,optional"`

	BetSizesByStreet   [4][]float64
	RaiseSizesByStreet [4][]float64

	Streets StreetSizes `hcl:"streets,block"`
}

// StreetSizes is the HCL-decodable shape for per-street sizing; it is
// flattened into BetSizesByStreet/RaiseSizesByStreet after decode.
type StreetSizes struct {
	Preflop StreetSizeBlock `hcl:"preflop,block"`
	Flop    StreetSizeBlock `hcl:"flop,block"`
	Turn    StreetSizeBlock `hcl:"turn,block"`
	River   StreetSizeBlock `hcl:"river,block"`
}

// StreetSizeBlock holds one street's bet and raise pot-fraction sizes.
type StreetSizeBlock struct {
	BetSizes   []float64 `hcl:"bet_sizes,optional"`
	RaiseSizes []float64 `hcl:"raise_sizes,optional"`
}

// DefaultAbstraction returns the hand-engine-equivalent abstraction: the
// same stack/blinds/sizes the hand engine uses by default, at most 4
// raises per street, all-in always offered.
func DefaultAbstraction() *BettingAbstraction {
	sizes := []float64{0.5, 1.0, 2.0}
	a := &BettingAbstraction{
		StartingStack:      1000,
		SmallBlind:         5,
		BigBlind:           10,
		MaxRaisesPerStreet: 4,
		AllowAllIn:         true,
	}
	for i := range a.BetSizesByStreet {
		a.BetSizesByStreet[i] = sizes
		a.RaiseSizesByStreet[i] = sizes
	}
	return a
}

// Load reads a BettingAbstraction from an HCL file, filling in defaults
// for any attribute the file leaves unset. A missing file returns the default
// abstraction, matching the teacher's config-loading behaviour. The streets
// block and its preflop, flop, turn and river blocks are not optional: a file
// that omits any of them fails to decode.
func Load(path string) (*BettingAbstraction, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return DefaultAbstraction(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("parse HCL file: %s", diags.Error())
	}

	cfg := *DefaultAbstraction()
	diags = gohcl.DecodeBody(file.Body, nil, &cfg)
	if diags.HasErrors() {
		return nil, fmt.Errorf("decode HCL: %s", diags.Error())
	}

	applyStreetSizes(&cfg)
	applyDefaults(&cfg)
	return &cfg, nil
}

func applyStreetSizes(cfg *BettingAbstraction) {
	blocks := [4]StreetSizeBlock{cfg.Streets.Preflop, cfg.Streets.Flop, cfg.Streets.Turn, cfg.Streets.River}
	for i, b := range blocks {
		if len(b.BetSizes) > 0 {
			cfg.BetSizesByStreet[i] = b.BetSizes
		}
		if len(b.RaiseSizes) > 0 {
			cfg.RaiseSizesByStreet[i] = b.RaiseSizes
		}
	}
}

func applyDefaults(cfg *BettingAbstraction) {
	defaults := DefaultAbstraction()
	if cfg.StartingStack == 0 {
		cfg.StartingStack = defaults.StartingStack
	}
	if cfg.SmallBlind == 0 {
		cfg.SmallBlind = defaults.SmallBlind
	}
	if cfg.BigBlind == 0 {
		cfg.BigBlind = defaults.BigBlind
	}
	for i := range cfg.BetSizesByStreet {
		if len(cfg.BetSizesByStreet[i]) == 0 {
			cfg.BetSizesByStreet[i] = defaults.BetSizesByStreet[i]
		}
		if len(cfg.RaiseSizesByStreet[i]) == 0 {
			cfg.RaiseSizesByStreet[i] = defaults.RaiseSizesByStreet[i]
		}
	}
}

// Validate checks that the abstraction describes a playable, finite game
// tree before it is handed to the builder.
func (a *BettingAbstraction) Validate() error {
	if a.SmallBlind <= 0 {
		return fmt.Errorf("small_blind must be positive")
	}
	if a.BigBlind <= a.SmallBlind {
		return fmt.Errorf("big_blind must be greater than small_blind")
	}
	if a.StartingStack <= a.BigBlind {
		return fmt.Errorf("starting_stack must exceed big_blind")
	}
	if a.MaxRaisesPerStreet < 0 {
		return fmt.Errorf("max_raises_per_street must be non-negative")
	}
	for street, sizes := range a.BetSizesByStreet {
		for _, x := range sizes {
			if x <= 0 {
				return fmt.Errorf("bet_sizes_by_street[%d]: fractions must be positive, got %v", street, x)
			}
		}
	}
	for street, sizes := range a.RaiseSizesByStreet {
		for _, x := range sizes {
			if x <= 0 {
				return fmt.Errorf("raise_sizes_by_street[%d]: fractions must be positive, got %v", street, x)
			}
		}
	}
	return nil
}
