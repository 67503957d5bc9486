package game

// Transition is the plant-state change produced by one evaluation.
type Transition struct {
	Previous PlantState
	Current  PlantState
}

func (t Transition) Changed() bool {
	return t.Previous != t.Current
}

// EvaluateConditions updates the stress counters from the current levels and
// re-derives the plant state. Environment and nutrients are read only.
func (s *State) EvaluateConditions() Transition {
	previous := s.PlantState
	s.Stress = NextStressCounters(s.Stress, s.Environment, s.Nutrients, s.Species.Optimal, s.Policy)
	s.PlantState = DerivePlantState(s.Health, s.Stress, s.Policy)
	return Transition{Previous: previous, Current: s.PlantState}
}

// NextStressCounters applies one day of accrual and recovery.
func NextStressCounters(counters StressCounters, env Environment, nutrients Nutrients, optimal OptimalRanges, p Policy) StressCounters {
	counters.DryDays = stepFactorCounter(counters.DryDays, env.Water, optimal.Water, p.WaterSevereMargin, p)
	counters.ColdDays = stepFactorCounter(counters.ColdDays, env.Temperature, optimal.Temperature, p.TemperatureSevereMargin, p)
	counters.NutrientStressDays = stepNutrientCounter(counters.NutrientStressDays, nutrients, optimal.Nutrients, p)
	return counters
}

func stepFactorCounter(counter, value int, band Range, margin int, p Policy) int {
	switch {
	case value < band.Min-margin:
		return counter + 1
	case p.ResetOnRecovery:
		return 0
	case band.Contains(value):
		return maxInt(0, counter-p.OptimalRecovery)
	case value >= band.Min:
		return maxInt(0, counter-p.MildRecovery)
	default:
		// Grace band between the severe margin and the lower bound: hold.
		return counter
	}
}

func stepNutrientCounter(counter int, nutrients Nutrients, bands NutrientRanges, p Policy) int {
	problem := false
	optimal := 0
	for _, kind := range NutrientKinds {
		band := bands.For(kind)
		value := nutrients.Get(kind)
		switch {
		case value < band.Min-p.NutrientProblemMargin || value > band.Max+p.NutrientProblemMargin:
			problem = true
		case band.Contains(value):
			optimal++
		}
	}

	switch {
	case problem:
		return counter + 1
	case p.ResetOnRecovery:
		return 0
	case optimal == len(NutrientKinds):
		return maxInt(0, counter-p.OptimalRecovery)
	default:
		return maxInt(0, counter-p.MildRecovery)
	}
}

// DerivePlantState classifies the plant; the first matching rule wins.
func DerivePlantState(health int, c StressCounters, p Policy) PlantState {
	combined := p.CombinedStressDays
	switch {
	case health <= 0:
		return StateDead
	case c.DryDays >= p.SevereStreakDays:
		return StateDry
	case c.ColdDays >= p.SevereStreakDays:
		return StateCold
	case (c.DryDays >= combined && c.NutrientStressDays >= combined) ||
		(c.ColdDays >= combined && c.NutrientStressDays >= combined) ||
		c.NutrientStressDays >= p.NutrientStressDays:
		return StateStress
	case c.DryDays >= p.WarningStreakDays || c.ColdDays >= p.WarningStreakDays || c.NutrientStressDays >= p.WarningStreakDays:
		return StateWarning
	default:
		return StateNormal
	}
}
