// Package game holds the plant simulation rules: species catalog, state,
// condition evaluation, health and growth, day advancement and care actions.
package game

type PlantState string

const (
	StateNormal  PlantState = "normal"
	StateWarning PlantState = "warning"
	StateStress  PlantState = "stress"
	StateDry     PlantState = "dry"
	StateCold    PlantState = "cold"
	StateDead    PlantState = "dead"
)

// Distressed reports whether the state is one of the active problem states.
func (s PlantState) Distressed() bool {
	return s == StateStress || s == StateDry || s == StateCold
}

type NutrientKind string

const (
	NutrientN NutrientKind = "N"
	NutrientP NutrientKind = "P"
	NutrientK NutrientKind = "K"
)

var NutrientKinds = []NutrientKind{NutrientN, NutrientP, NutrientK}

func ParseNutrientKind(raw string) (NutrientKind, bool) {
	switch NutrientKind(raw) {
	case NutrientN, NutrientP, NutrientK:
		return NutrientKind(raw), true
	default:
		return "", false
	}
}

type Nutrients struct {
	N int `json:"n"`
	P int `json:"p"`
	K int `json:"k"`
}

func (n Nutrients) Get(kind NutrientKind) int {
	switch kind {
	case NutrientN:
		return n.N
	case NutrientP:
		return n.P
	case NutrientK:
		return n.K
	default:
		return 0
	}
}

func (n *Nutrients) set(kind NutrientKind, value int) {
	switch kind {
	case NutrientN:
		n.N = value
	case NutrientP:
		n.P = value
	case NutrientK:
		n.K = value
	}
}

type Environment struct {
	Water       int `json:"water"`
	Light       int `json:"light"`
	Temperature int `json:"temperature"`
}

type StressCounters struct {
	DryDays            int `json:"dry_days"`
	ColdDays           int `json:"cold_days"`
	NutrientStressDays int `json:"nutrient_stress_days"`
}

type Outcome string

const (
	OutcomeOngoing   Outcome = "ongoing"
	OutcomeCompleted Outcome = "completed"
	OutcomeDead      Outcome = "dead"
)

// State is the single mutable simulation value for the selected plant.
type State struct {
	Policy  Policy
	Species Species

	Day          int
	Environment  Environment
	Nutrients    Nutrients
	Stress       StressCounters
	Health       int
	StageIndex   int
	GrowthPoints float64
	PlantState   PlantState
	History      []int
}

func NewState(species Species, policy Policy) State {
	return State{
		Policy:  policy,
		Species: species,
		Environment: Environment{
			Water:       clamp(policy.InitialWater, MinLevel, MaxLevel),
			Light:       clamp(policy.InitialLight, MinLevel, MaxLevel),
			Temperature: clamp(policy.InitialTemperature, MinTemperature, MaxTemperature),
		},
		Nutrients: Nutrients{
			N: clamp(policy.InitialNutrient, MinLevel, MaxLevel),
			P: clamp(policy.InitialNutrient, MinLevel, MaxLevel),
			K: clamp(policy.InitialNutrient, MinLevel, MaxLevel),
		},
		Health:     clamp(policy.InitialHealth, MinLevel, MaxLevel),
		PlantState: StateNormal,
		History:    []int{clamp(policy.InitialHealth, MinLevel, MaxLevel)},
	}
}

func (s *State) Alive() bool {
	return s != nil && s.Species.ID != "" && s.PlantState != StateDead
}

// CanAdvance reports whether another day tick may run.
func (s *State) CanAdvance() bool {
	return s.Alive() && s.Day < s.Policy.MaxDays
}

func (s *State) Outcome() Outcome {
	switch {
	case s.PlantState == StateDead:
		return OutcomeDead
	case s.Day >= s.Policy.MaxDays:
		return OutcomeCompleted
	default:
		return OutcomeOngoing
	}
}

func (s *State) StageName() string {
	return s.Species.StageName(s.StageIndex)
}

// Snapshot is a read-only copy handed to presentation.
type Snapshot struct {
	SpeciesID    SpeciesID      `json:"species_id"`
	SpeciesName  string         `json:"species_name"`
	Stage        string         `json:"stage"`
	StageIndex   int            `json:"stage_index"`
	StageCount   int            `json:"stage_count"`
	Day          int            `json:"day"`
	MaxDays      int            `json:"max_days"`
	Water        int            `json:"water"`
	Light        int            `json:"light"`
	Temperature  int            `json:"temperature"`
	Nutrients    Nutrients      `json:"nutrients"`
	Health       int            `json:"health"`
	PlantState   PlantState     `json:"plant_state"`
	GrowthPoints float64        `json:"growth_points"`
	Stress       StressCounters `json:"stress"`
	Outcome      Outcome        `json:"outcome"`
	Paused       bool           `json:"paused"`
	History      []int          `json:"history"`
}

func (s *State) Snapshot() Snapshot {
	return Snapshot{
		SpeciesID:    s.Species.ID,
		SpeciesName:  s.Species.Name,
		Stage:        s.StageName(),
		StageIndex:   s.StageIndex,
		StageCount:   len(s.Species.Stages),
		Day:          s.Day,
		MaxDays:      s.Policy.MaxDays,
		Water:        s.Environment.Water,
		Light:        s.Environment.Light,
		Temperature:  s.Environment.Temperature,
		Nutrients:    s.Nutrients,
		Health:       s.Health,
		PlantState:   s.PlantState,
		GrowthPoints: s.GrowthPoints,
		Stress:       s.Stress,
		Outcome:      s.Outcome(),
		History:      append([]int(nil), s.History...),
	}
}
