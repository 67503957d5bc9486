package game

const (
	PolicyReference   = "reference"
	PolicyAlternative = "alternative"
)

const (
	MinLevel       = 0
	MaxLevel       = 100
	MinTemperature = 10
	MaxTemperature = 40
)

// Policy holds every tunable number of one rule model. The Condition
// Evaluator, Health & Growth Updater, day driver and action handlers read
// their constants from here only.
type Policy struct {
	Name    string
	MaxDays int

	InitialWater       int
	InitialLight       int
	InitialTemperature int
	InitialNutrient    int
	InitialHealth      int

	WaterDecayPerDay    int
	NutrientDecayPerDay int
	ColdDriftChance     float64
	TemperatureDrift    int

	WaterSevereMargin       int
	TemperatureSevereMargin int
	NutrientProblemMargin   int
	OptimalRecovery         int
	MildRecovery            int

	// ResetOnRecovery zeroes a counter on any reading that is not a severe
	// deficit instead of stepping it down.
	ResetOnRecovery bool

	SevereStreakDays   int
	CombinedStressDays int
	NutrientStressDays int
	WarningStreakDays  int

	HealthNormal  int
	HealthIdeal   int
	HealthWarning int
	HealthDry     int
	HealthCold    int
	HealthStress  int

	GrowthNormal         float64
	GrowthWarning        float64
	GrowthPenalty        float64
	GrowthPointsPerStage float64

	WaterPerAction       int
	NutrientPerAction    int
	WarmthPerAction      int
	LightToggleThreshold int
	LightLowPreset       int
	LightHighPreset      int
}

func ReferencePolicy() Policy {
	return Policy{
		Name:    PolicyReference,
		MaxDays: 35,

		InitialWater:       65,
		InitialLight:       70,
		InitialTemperature: 22,
		InitialNutrient:    35,
		InitialHealth:      100,

		WaterDecayPerDay:    5,
		NutrientDecayPerDay: 1,
		ColdDriftChance:     0.4,
		TemperatureDrift:    1,

		WaterSevereMargin:       15,
		TemperatureSevereMargin: 4,
		NutrientProblemMargin:   10,
		OptimalRecovery:         2,
		MildRecovery:            1,

		SevereStreakDays:   3,
		CombinedStressDays: 2,
		NutrientStressDays: 4,
		WarningStreakDays:  1,

		HealthNormal:  2,
		HealthIdeal:   4,
		HealthWarning: -1,
		HealthDry:     -4,
		HealthCold:    -3,
		HealthStress:  -5,

		GrowthNormal:         1.0,
		GrowthWarning:        0.5,
		GrowthPenalty:        0.5,
		GrowthPointsPerStage: 4,

		WaterPerAction:       15,
		NutrientPerAction:    15,
		WarmthPerAction:      3,
		LightToggleThreshold: 60,
		LightLowPreset:       45,
		LightHighPreset:      80,
	}
}

// AlternativePolicy carries the constants of the second rule model: faster
// decay, coin-flip drift, no severity grace band, and counters that reset as
// soon as a reading stops being a deficit.
func AlternativePolicy() Policy {
	p := ReferencePolicy()
	p.Name = PolicyAlternative
	p.InitialWater = 50

	p.WaterDecayPerDay = 8
	p.NutrientDecayPerDay = 5
	p.ColdDriftChance = 0.5

	p.WaterSevereMargin = 0
	p.TemperatureSevereMargin = 0
	p.ResetOnRecovery = true
	p.NutrientStressDays = 2

	p.WaterPerAction = 12
	// light at 70 or above drops to the low preset
	p.LightToggleThreshold = 69
	p.LightLowPreset = 50
	return p
}

func PolicyByName(name string) (Policy, bool) {
	switch name {
	case "", PolicyReference:
		return ReferencePolicy(), true
	case PolicyAlternative:
		return AlternativePolicy(), true
	default:
		return Policy{}, false
	}
}
