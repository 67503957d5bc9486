package game

// IdealConditions reports whether water, temperature, light and all three
// nutrients sit inside their optimal bands at once.
func (s *State) IdealConditions() bool {
	o := s.Species.Optimal
	if !o.Water.Contains(s.Environment.Water) ||
		!o.Temperature.Contains(s.Environment.Temperature) ||
		!o.Light.Contains(s.Environment.Light) {
		return false
	}
	for _, kind := range NutrientKinds {
		if !o.Nutrients.For(kind).Contains(s.Nutrients.Get(kind)) {
			return false
		}
	}
	return true
}

func (s *State) healthDelta() int {
	p := s.Policy
	switch s.PlantState {
	case StateNormal:
		if s.IdealConditions() {
			return p.HealthIdeal
		}
		return p.HealthNormal
	case StateWarning:
		return p.HealthWarning
	case StateDry:
		return p.HealthDry
	case StateCold:
		return p.HealthCold
	case StateStress:
		return p.HealthStress
	default:
		return 0
	}
}

// ApplyHealth applies the day's health delta, records it in the history and
// returns the change actually applied after clamping.
func (s *State) ApplyHealth() int {
	before := s.Health
	if s.PlantState == StateDead {
		s.Health = 0
	} else {
		s.Health = clamp(s.Health+s.healthDelta(), MinLevel, MaxLevel)
	}
	s.History = append(s.History, s.Health)
	return s.Health - before
}

// ApplyGrowth moves the growth accumulator and reports whether the plant
// advanced to its next stage.
func (s *State) ApplyGrowth() bool {
	p := s.Policy
	switch s.PlantState {
	case StateDead:
		return false
	case StateNormal:
		s.GrowthPoints += p.GrowthNormal
	case StateWarning:
		s.GrowthPoints += p.GrowthWarning
	default:
		s.GrowthPoints = maxFloat(0, s.GrowthPoints-p.GrowthPenalty)
	}

	if s.GrowthPoints >= p.GrowthPointsPerStage && s.StageIndex < s.Species.LastStage() {
		s.StageIndex++
		s.GrowthPoints = 0
		return true
	}
	return false
}
