package game

type ActionKind string

const (
	ActionWater       ActionKind = "water"
	ActionChangeLight ActionKind = "light"
	ActionFertilize   ActionKind = "fertilize"
	ActionWarm        ActionKind = "warm"
)

// Care actions return false without touching the state when the plant is
// missing or dead. None of them re-derive PlantState; the next day tick does.

func (s *State) Water() bool {
	if !s.Alive() {
		return false
	}
	s.Environment.Water = clamp(s.Environment.Water+s.Policy.WaterPerAction, MinLevel, MaxLevel)
	return true
}

// ChangeLight flips between the low and high light presets.
func (s *State) ChangeLight() bool {
	if !s.Alive() {
		return false
	}
	p := s.Policy
	if s.Environment.Light > p.LightToggleThreshold {
		s.Environment.Light = clamp(p.LightLowPreset, MinLevel, MaxLevel)
	} else {
		s.Environment.Light = clamp(p.LightHighPreset, MinLevel, MaxLevel)
	}
	return true
}

func (s *State) Fertilize(kind NutrientKind) bool {
	if !s.Alive() {
		return false
	}
	if _, ok := ParseNutrientKind(string(kind)); !ok {
		return false
	}
	s.Nutrients.set(kind, clamp(s.Nutrients.Get(kind)+s.Policy.NutrientPerAction, MinLevel, MaxLevel))
	return true
}

func (s *State) Warm() bool {
	if !s.Alive() {
		return false
	}
	s.Environment.Temperature = clamp(s.Environment.Temperature+s.Policy.WarmthPerAction, MinTemperature, MaxTemperature)
	return true
}
