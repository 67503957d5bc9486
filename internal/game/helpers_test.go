package game

import "testing"

// fixedRNG always returns the same draw; 0.9 warms, 0.1 cools under the
// reference drift chance.
type fixedRNG float64

func (r fixedRNG) Float64() float64 { return float64(r) }

const (
	warmingRNG = fixedRNG(0.9)
	coolingRNG = fixedRNG(0.1)
)

func mustSpecies(t *testing.T, id SpeciesID) Species {
	t.Helper()
	sp, err := BuiltInCatalog().Lookup(id)
	if err != nil {
		t.Fatalf("lookup species %s: %v", id, err)
	}
	return sp
}

func newTestState(t *testing.T, id SpeciesID) *State {
	t.Helper()
	state := NewState(mustSpecies(t, id), ReferencePolicy())
	return &state
}

func assertBounded(t *testing.T, s *State) {
	t.Helper()
	levels := map[string]int{
		"water":  s.Environment.Water,
		"light":  s.Environment.Light,
		"N":      s.Nutrients.N,
		"P":      s.Nutrients.P,
		"K":      s.Nutrients.K,
		"health": s.Health,
	}
	for name, v := range levels {
		if v < MinLevel || v > MaxLevel {
			t.Fatalf("expected %s within [%d,%d] on day %d, got %d", name, MinLevel, MaxLevel, s.Day, v)
		}
	}
	if s.Environment.Temperature < MinTemperature || s.Environment.Temperature > MaxTemperature {
		t.Fatalf("expected temperature within [%d,%d] on day %d, got %d", MinTemperature, MaxTemperature, s.Day, s.Environment.Temperature)
	}
	if s.StageIndex < 0 || s.StageIndex > s.Species.LastStage() {
		t.Fatalf("expected stage index within [0,%d], got %d", s.Species.LastStage(), s.StageIndex)
	}
	if s.GrowthPoints < 0 {
		t.Fatalf("expected non-negative growth points, got %v", s.GrowthPoints)
	}
}
