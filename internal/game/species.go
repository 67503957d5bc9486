package game

import (
	"errors"
	"fmt"
)

type SpeciesID string

var ErrUnknownSpecies = errors.New("unknown species")

// Range is an inclusive [Min, Max] band of acceptable levels.
type Range struct {
	Min int
	Max int
}

func (r Range) Contains(value int) bool {
	return value >= r.Min && value <= r.Max
}

type NutrientRanges struct {
	N Range
	P Range
	K Range
}

func (n NutrientRanges) For(kind NutrientKind) Range {
	switch kind {
	case NutrientN:
		return n.N
	case NutrientP:
		return n.P
	case NutrientK:
		return n.K
	default:
		return Range{}
	}
}

type OptimalRanges struct {
	Water       Range
	Light       Range
	Temperature Range
	Nutrients   NutrientRanges
}

type Species struct {
	ID      SpeciesID
	Name    string
	Stages  []string
	Optimal OptimalRanges
	// Preferred lists the nutrients the species responds to most; it only
	// feeds the fertilizer hint.
	Preferred []NutrientKind
}

func (s Species) Validate() error {
	if s.ID == "" {
		return fmt.Errorf("species has empty id")
	}
	if len(s.Stages) == 0 {
		return fmt.Errorf("species %s has no growth stages", s.ID)
	}
	for i, stage := range s.Stages {
		if stage == "" {
			return fmt.Errorf("species %s stage %d has empty name", s.ID, i)
		}
	}

	ranges := []struct {
		name string
		r    Range
	}{
		{"water", s.Optimal.Water},
		{"light", s.Optimal.Light},
		{"temperature", s.Optimal.Temperature},
		{"nutrient N", s.Optimal.Nutrients.N},
		{"nutrient P", s.Optimal.Nutrients.P},
		{"nutrient K", s.Optimal.Nutrients.K},
	}
	for _, entry := range ranges {
		if entry.r.Min > entry.r.Max {
			return fmt.Errorf("species %s %s range inverted: [%d,%d]", s.ID, entry.name, entry.r.Min, entry.r.Max)
		}
	}
	for _, kind := range s.Preferred {
		if _, ok := ParseNutrientKind(string(kind)); !ok {
			return fmt.Errorf("species %s prefers unknown nutrient %q", s.ID, kind)
		}
	}
	return nil
}

func (s Species) StageName(index int) string {
	if index < 0 || index >= len(s.Stages) {
		return ""
	}
	return s.Stages[index]
}

func (s Species) LastStage() int {
	return len(s.Stages) - 1
}

// Catalog is the species table keyed by id. It keeps insertion order for
// presentation.
type Catalog struct {
	byID  map[SpeciesID]Species
	order []SpeciesID
}

func NewCatalog(species ...Species) (*Catalog, error) {
	c := &Catalog{byID: make(map[SpeciesID]Species, len(species))}
	for _, sp := range species {
		if err := c.Add(sp); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// Add validates sp and stores it, replacing an existing entry with the same id
// in place.
func (c *Catalog) Add(sp Species) error {
	if err := sp.Validate(); err != nil {
		return err
	}
	sp.Stages = append([]string(nil), sp.Stages...)
	sp.Preferred = append([]NutrientKind(nil), sp.Preferred...)
	if _, exists := c.byID[sp.ID]; !exists {
		c.order = append(c.order, sp.ID)
	}
	c.byID[sp.ID] = sp
	return nil
}

func (c *Catalog) Get(id SpeciesID) (Species, bool) {
	if c == nil {
		return Species{}, false
	}
	sp, ok := c.byID[id]
	return sp, ok
}

func (c *Catalog) Lookup(id SpeciesID) (Species, error) {
	sp, ok := c.Get(id)
	if !ok {
		return Species{}, fmt.Errorf("%w: %s", ErrUnknownSpecies, id)
	}
	return sp, nil
}

func (c *Catalog) IDs() []SpeciesID {
	if c == nil {
		return nil
	}
	return append([]SpeciesID(nil), c.order...)
}

func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.order)
}
