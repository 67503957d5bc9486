package game

import "testing"

func TestWaterClampsAtMaximum(t *testing.T) {
	state := newTestState(t, SpeciesBeanID)
	state.Environment.Water = 90

	if !state.Water() {
		t.Fatalf("expected water to apply")
	}
	if state.Environment.Water != MaxLevel {
		t.Fatalf("expected water %d, got %d", MaxLevel, state.Environment.Water)
	}
}

func TestChangeLightToggles(t *testing.T) {
	state := newTestState(t, SpeciesRoseID)

	state.ChangeLight()
	if state.Environment.Light != 45 {
		t.Fatalf("expected low preset 45, got %d", state.Environment.Light)
	}
	state.ChangeLight()
	if state.Environment.Light != 80 {
		t.Fatalf("expected high preset 80, got %d", state.Environment.Light)
	}
}

func TestFertilizeByKind(t *testing.T) {
	tests := []struct {
		kind    NutrientKind
		applied bool
		want    Nutrients
	}{
		{kind: NutrientN, applied: true, want: Nutrients{N: 50, P: 35, K: 35}},
		{kind: NutrientP, applied: true, want: Nutrients{N: 35, P: 50, K: 35}},
		{kind: NutrientK, applied: true, want: Nutrients{N: 35, P: 35, K: 50}},
		{kind: "X", applied: false, want: Nutrients{N: 35, P: 35, K: 35}},
		{kind: "n", applied: false, want: Nutrients{N: 35, P: 35, K: 35}},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			state := newTestState(t, SpeciesBeanID)
			if got := state.Fertilize(tt.kind); got != tt.applied {
				t.Fatalf("expected applied=%v, got %v", tt.applied, got)
			}
			if state.Nutrients != tt.want {
				t.Fatalf("expected %+v, got %+v", tt.want, state.Nutrients)
			}
		})
	}
}

func TestWarmClampsAtMaximumTemperature(t *testing.T) {
	state := newTestState(t, SpeciesBeanID)
	state.Environment.Temperature = 39
	state.Warm()
	if state.Environment.Temperature != MaxTemperature {
		t.Fatalf("expected %d, got %d", MaxTemperature, state.Environment.Temperature)
	}
}

func TestActionsDoNotReevaluateState(t *testing.T) {
	state := newTestState(t, SpeciesBeanID)
	state.PlantState = StateDry
	state.Stress.DryDays = 3

	state.Water()
	state.Water()
	if state.PlantState != StateDry || state.Stress.DryDays != 3 {
		t.Fatalf("expected state and counters untouched until the next tick, got %s/%d", state.PlantState, state.Stress.DryDays)
	}
}

func TestActionsRequireSelectedPlant(t *testing.T) {
	var state State
	state.Policy = ReferencePolicy()
	if state.Water() || state.ChangeLight() || state.Fertilize(NutrientK) || state.Warm() {
		t.Fatalf("expected actions rejected without a species")
	}
}
