package game

// RNG is the randomness AdvanceDay needs; *rand.Rand satisfies it.
type RNG interface {
	Float64() float64
}

type DayReport struct {
	Day           int
	Transition    Transition
	HealthDelta   int
	StageAdvanced bool
	Outcome       Outcome
}

// Ticked reports whether the day actually advanced.
func (r DayReport) Ticked() bool {
	return r.Day > 0
}

// AdvanceDay runs one simulated day. It is a no-op once the plant is dead or
// the day limit is reached. A day that drops health to 0 reports the plant
// dead in that same day, rather than leaving it at 0 until the next one.
func (s *State) AdvanceDay(rng RNG) DayReport {
	if !s.CanAdvance() {
		return DayReport{
			Transition: Transition{Previous: s.PlantState, Current: s.PlantState},
			Outcome:    s.Outcome(),
		}
	}
	p := s.Policy

	s.Day++
	s.applyNaturalDecay(rng)

	transition := s.EvaluateConditions()
	healthDelta := s.ApplyHealth()
	if s.Health <= 0 && s.PlantState != StateDead {
		s.PlantState = DerivePlantState(s.Health, s.Stress, p)
		transition.Current = s.PlantState
	}
	advanced := s.ApplyGrowth()

	return DayReport{
		Day:           s.Day,
		Transition:    transition,
		HealthDelta:   healthDelta,
		StageAdvanced: advanced,
		Outcome:       s.Outcome(),
	}
}

func (s *State) applyNaturalDecay(rng RNG) {
	p := s.Policy
	s.Environment.Water = clamp(s.Environment.Water-p.WaterDecayPerDay, MinLevel, MaxLevel)
	for _, kind := range NutrientKinds {
		s.Nutrients.set(kind, clamp(s.Nutrients.Get(kind)-p.NutrientDecayPerDay, MinLevel, MaxLevel))
	}

	drift := p.TemperatureDrift
	if rng != nil && rng.Float64() < p.ColdDriftChance {
		drift = -drift
	}
	s.Environment.Temperature = clamp(s.Environment.Temperature+drift, MinTemperature, MaxTemperature)
}

func clamp(number, min, max int) int {
	if number < min {
		return min
	}

	if number > max {
		return max
	}

	return number
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func maxFloat(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
