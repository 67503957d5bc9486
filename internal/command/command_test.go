package command

import (
	"strings"
	"testing"

	"github.com/appengine-ltd/plantagotchi/internal/engine"
	"github.com/appengine-ltd/plantagotchi/internal/game"
)

type fixedRNG float64

func (r fixedRNG) Float64() float64 { return float64(r) }

func newSession(t *testing.T) (*Session, *engine.Controller) {
	t.Helper()
	ctrl := engine.New(game.BuiltInCatalog(), engine.WithRNG(fixedRNG(0.9)))
	return NewSession(ctrl), ctrl
}

func TestActionsBeforeSelectionAreRejected(t *testing.T) {
	s, _ := newSession(t)

	res := s.Handle("water")
	if !res.Handled || res.Applied {
		t.Fatalf("expected handled but not applied, got %+v", res)
	}
	if !strings.Contains(res.Message, "Select a species") {
		t.Fatalf("expected selection hint, got %q", res.Message)
	}
}

func TestSelectThenCare(t *testing.T) {
	s, ctrl := newSession(t)

	res := s.Handle("select rose")
	if !res.Applied {
		t.Fatalf("expected rose selected, got %+v", res)
	}
	if ctrl.Snapshot().SpeciesID != game.SpeciesRoseID {
		t.Fatalf("expected rose, got %s", ctrl.Snapshot().SpeciesID)
	}

	s.Handle("w")
	if got := ctrl.Snapshot().Water; got != 80 {
		t.Fatalf("expected water 80, got %d", got)
	}
	s.Handle("fertilize k")
	if got := ctrl.Snapshot().Nutrients.K; got != 50 {
		t.Fatalf("expected K 50, got %d", got)
	}
	s.Handle("feed again")
	if got := ctrl.Snapshot().Nutrients.K; got != 65 {
		t.Fatalf("expected repeated K to reach 65, got %d", got)
	}
	s.Handle("heat")
	if got := ctrl.Snapshot().Temperature; got != 25 {
		t.Fatalf("expected temperature 25, got %d", got)
	}
}

func TestWaterWithQuantityRepeats(t *testing.T) {
	s, ctrl := newSession(t)
	s.Handle("select bean")

	res := s.Handle("water 3")
	if !strings.Contains(res.Message, "x3") {
		t.Fatalf("expected repeat count in message, got %q", res.Message)
	}
	if got := ctrl.Snapshot().Water; got != 100 {
		t.Fatalf("expected water clamped at 100, got %d", got)
	}
}

type actionCounter struct {
	engine.NopListener
	actions int
}

func (c *actionCounter) OnAction(game.ActionKind) { c.actions++ }

func TestLargeRepeatCountsAreBounded(t *testing.T) {
	counter := &actionCounter{}
	ctrl := engine.New(game.BuiltInCatalog(), engine.WithRNG(fixedRNG(0.9)), engine.WithListener(counter))
	s := NewSession(ctrl)
	s.Handle("select bean")

	res := s.Handle("water 1000")
	if !res.Applied {
		t.Fatalf("expected water applied, got %+v", res)
	}
	if strings.Contains(res.Message, "x1000") {
		t.Fatalf("expected capped repeat count, got %q", res.Message)
	}
	if got := ctrl.Snapshot().Water; got != 100 {
		t.Fatalf("expected water 100, got %d", got)
	}
	// 65 -> 80 -> 95 -> 100, then one more that changes nothing.
	if counter.actions != 4 {
		t.Fatalf("expected 4 actions before stopping at the limit, got %d", counter.actions)
	}

	counter.actions = 0
	s.Handle("warm 999999999")
	if counter.actions > maxRepeat {
		t.Fatalf("expected at most %d warm actions, got %d", maxRepeat, counter.actions)
	}

	s.Handle("next 1000")
	if day := ctrl.Snapshot().Day; day < 1 || day > maxRepeat {
		t.Fatalf("expected between 1 and %d days, got %d", maxRepeat, day)
	}
}

func TestNextStepsDays(t *testing.T) {
	s, ctrl := newSession(t)
	s.Handle("select mint")

	res := s.Handle("next 4")
	if !res.Applied {
		t.Fatalf("expected days to advance, got %+v", res)
	}
	if got := ctrl.Snapshot().Day; got != 4 {
		t.Fatalf("expected day 4, got %d", got)
	}
}

func TestPauseAndResume(t *testing.T) {
	s, ctrl := newSession(t)
	s.Handle("select bean")

	if res := s.Handle("pause"); !res.Applied {
		t.Fatalf("expected pause applied, got %+v", res)
	}
	if !ctrl.Paused() {
		t.Fatalf("expected controller paused")
	}
	if res := s.Handle("water"); !res.Applied {
		t.Fatalf("expected water to work while paused")
	}
	if res := s.Handle("resume"); !res.Applied {
		t.Fatalf("expected resume applied, got %+v", res)
	}
}

func TestQuitAndQueries(t *testing.T) {
	s, _ := newSession(t)

	if res := s.Handle("q"); !res.Quit {
		t.Fatalf("expected quit")
	}
	if res := s.Handle("species"); !strings.Contains(res.Message, "mint (Mint)") {
		t.Fatalf("expected species list, got %q", res.Message)
	}
	if res := s.Handle("status"); res.Message != "No plant selected." {
		t.Fatalf("expected empty status, got %q", res.Message)
	}
}

func TestClarifyIsSurfaced(t *testing.T) {
	s, _ := newSession(t)
	res := s.Handle("fertilize")
	if res.Handled {
		t.Fatalf("expected clarify to be unhandled")
	}
	if !strings.Contains(res.Message, "fertilize n") {
		t.Fatalf("expected nutrient options, got %q", res.Message)
	}
}

func TestHintsListPreferredNutrientsFirst(t *testing.T) {
	sp, _ := game.BuiltInCatalog().Get(game.SpeciesBeanID)
	snap := game.Snapshot{
		SpeciesID:   sp.ID,
		Outcome:     game.OutcomeOngoing,
		Water:       30,
		Light:       70,
		Temperature: 22,
		Nutrients:   game.Nutrients{N: 10, P: 10, K: 10},
	}

	hints := Hints(snap, sp)
	want := []string{
		"soil is dry: water",
		"low P: fertilize P",
		"low K: fertilize K",
		"low N: fertilize N",
	}
	if len(hints) != len(want) {
		t.Fatalf("expected %d hints, got %v", len(want), hints)
	}
	for i := range want {
		if hints[i] != want[i] {
			t.Fatalf("hint %d: expected %q, got %q", i, want[i], hints[i])
		}
	}
}
