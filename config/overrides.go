package config

import (
	"fmt"
	"os"
	"sync/atomic"

	"gopkg.in/yaml.v3"
)

// OverrideKind selects how a configured amount adjusts the naturally derived
// holding target for a material.
type OverrideKind int

const (
	OverrideNone OverrideKind = iota
	OverrideMinimum
	OverrideMaximum
	OverrideAbsolute
)

func (k OverrideKind) String() string {
	switch k {
	case OverrideMinimum:
		return "minimum"
	case OverrideMaximum:
		return "maximum"
	case OverrideAbsolute:
		return "absolute"
	default:
		return "none"
	}
}

// MaterialOverride is a single holding-policy adjustment for one material on
// one planet.
type MaterialOverride struct {
	Kind   OverrideKind
	Amount float64
}

// Apply folds the override into a naturally derived holding target. Applying
// the same override twice yields the same result as applying it once.
func (o MaterialOverride) Apply(natural float64) float64 {
	switch o.Kind {
	case OverrideAbsolute:
		return o.Amount
	case OverrideMinimum:
		if o.Amount > natural {
			return o.Amount
		}
		return natural
	case OverrideMaximum:
		if o.Amount < natural {
			return o.Amount
		}
		return natural
	default:
		return natural
	}
}

// PlanetOverrides collects the per-planet holding policy: material overrides
// keyed by ticker plus an optional resupply period.
type PlanetOverrides struct {
	ResupplyDays int
	Materials    map[string]MaterialOverride
}

// Material returns the override configured for a ticker. The zero value means
// no override.
func (p *PlanetOverrides) Material(ticker string) MaterialOverride {
	if p == nil {
		return MaterialOverride{}
	}
	return p.Materials[ticker]
}

// Overrides is the full override table loaded from the operator's file.
type Overrides struct {
	Planets       map[string]*PlanetOverrides
	GalacticNeeds map[string]float64
}

// Planet returns the override set for a planet name, or nil when the planet
// has no entry. A nil receiver is valid and behaves like an empty table.
func (o *Overrides) Planet(name string) *PlanetOverrides {
	if o == nil {
		return nil
	}
	return o.Planets[name]
}

type rawPlanetOverrides struct {
	Resupply     int                `yaml:"resupply"`
	Materials    map[string]float64 `yaml:"materials"`
	MaterialsAbs map[string]float64 `yaml:"materials-override"`
	MaterialsMax map[string]float64 `yaml:"materials-max"`
}

type rawOverrides struct {
	Planets       map[string]rawPlanetOverrides `yaml:"planets"`
	GalacticNeeds map[string]float64            `yaml:"galactic_needs"`
}

// LoadOverrides reads and parses the holding-policy file. A missing or
// malformed file is an error; callers typically log it and continue with an
// empty table.
func LoadOverrides(path string) (*Overrides, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read overrides file: %w", err)
	}

	raw := rawOverrides{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse overrides file: %w", err)
	}

	out := &Overrides{
		Planets:       make(map[string]*PlanetOverrides, len(raw.Planets)),
		GalacticNeeds: raw.GalacticNeeds,
	}
	if out.GalacticNeeds == nil {
		out.GalacticNeeds = map[string]float64{}
	}

	for planet, rp := range raw.Planets {
		po := &PlanetOverrides{
			ResupplyDays: rp.Resupply,
			Materials:    make(map[string]MaterialOverride),
		}
		for ticker, amount := range rp.Materials {
			po.Materials[ticker] = MaterialOverride{Kind: OverrideMinimum, Amount: amount}
		}
		for ticker, amount := range rp.MaterialsMax {
			po.Materials[ticker] = MaterialOverride{Kind: OverrideMaximum, Amount: amount}
		}
		// Absolute entries win over minimum/maximum for the same ticker.
		for ticker, amount := range rp.MaterialsAbs {
			po.Materials[ticker] = MaterialOverride{Kind: OverrideAbsolute, Amount: amount}
		}
		out.Planets[planet] = po
	}

	return out, nil
}

// OverrideStore holds the active override table and supports on-demand reload.
// Readers always observe a complete table; Reload swaps the pointer atomically.
type OverrideStore struct {
	current atomic.Pointer[Overrides]
}

// NewOverrideStore returns a store seeded with an empty table.
func NewOverrideStore() *OverrideStore {
	s := &OverrideStore{}
	s.current.Store(&Overrides{
		Planets:       map[string]*PlanetOverrides{},
		GalacticNeeds: map[string]float64{},
	})
	return s
}

// Current returns the active override table.
func (s *OverrideStore) Current() *Overrides {
	return s.current.Load()
}

// Reload replaces the active table with the contents of path. On error the
// previous table stays in place.
func (s *OverrideStore) Reload(path string) error {
	o, err := LoadOverrides(path)
	if err != nil {
		return err
	}
	s.current.Store(o)
	return nil
}
