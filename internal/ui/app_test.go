package ui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/appengine-ltd/plantagotchi/internal/command"
	"github.com/appengine-ltd/plantagotchi/internal/engine"
	"github.com/appengine-ltd/plantagotchi/internal/game"
)

type fixedRNG float64

func (r fixedRNG) Float64() float64 { return float64(r) }

func newTestModel(t *testing.T, species game.SpeciesID) model {
	t.Helper()
	catalog := game.BuiltInCatalog()
	feed := command.NewFeed(catalog)
	ctrl := engine.New(catalog, engine.WithRNG(fixedRNG(0.9)), engine.WithListener(feed))
	if species != "" && !ctrl.SelectSpecies(species) {
		t.Fatalf("select %s failed", species)
	}
	return newModel(AppConfig{Version: "test", Controller: ctrl, Feed: feed})
}

func typeLine(m model, line string) model {
	for _, r := range line {
		var msg tea.KeyMsg
		if r == ' ' {
			msg = tea.KeyMsg{Type: tea.KeySpace}
		} else {
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
		}
		updated, _ := m.Update(msg)
		m = updated.(model)
	}
	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	return updated.(model)
}

func TestClockTickFullDayAdvances(t *testing.T) {
	m := newTestModel(t, game.SpeciesBeanID)
	m.lastTickAt = time.Date(2026, 2, 18, 10, 0, 0, 0, time.UTC)

	updated, cmd := m.Update(clockTickMsg{at: m.lastTickAt.Add(engine.DayDuration)})
	got := updated.(model)

	if day := got.ctrl.Snapshot().Day; day != 1 {
		t.Fatalf("expected day 1 after a full day of clock, got %d", day)
	}
	if cmd == nil {
		t.Fatalf("expected the clock to be rescheduled")
	}
}

func TestClockTickPartialDayDoesNotAdvance(t *testing.T) {
	m := newTestModel(t, game.SpeciesBeanID)
	m.lastTickAt = time.Date(2026, 2, 18, 10, 0, 0, 0, time.UTC)

	updated, _ := m.Update(clockTickMsg{at: m.lastTickAt.Add(2 * time.Second)})
	got := updated.(model)

	if day := got.ctrl.Snapshot().Day; day != 0 {
		t.Fatalf("expected no day advance on partial duration, got day %d", day)
	}
	if until := got.ctrl.UntilNextDay(); until != 4*time.Second {
		t.Fatalf("expected 4s until next day, got %s", until)
	}
}

func TestFirstClockTickOnlyArmsTheClock(t *testing.T) {
	m := newTestModel(t, game.SpeciesBeanID)

	updated, _ := m.Update(clockTickMsg{at: time.Date(2026, 2, 18, 10, 0, 0, 0, time.UTC)})
	got := updated.(model)
	if got.lastTickAt.IsZero() {
		t.Fatalf("expected lastTickAt to be set")
	}
	if day := got.ctrl.Snapshot().Day; day != 0 {
		t.Fatalf("expected day 0, got %d", day)
	}
}

func TestTypedWaterApplies(t *testing.T) {
	m := newTestModel(t, game.SpeciesBeanID)
	before := m.ctrl.Snapshot().Water

	m = typeLine(m, "water")

	if got := m.ctrl.Snapshot().Water; got != before+15 {
		t.Fatalf("expected water %d, got %d", before+15, got)
	}
	if m.input != "" {
		t.Fatalf("expected input cleared, got %q", m.input)
	}
	last := m.messages[len(m.messages)-1]
	if !strings.HasPrefix(last, "> water") {
		t.Fatalf("expected echoed command, got %q", last)
	}
}

func TestTabTogglesPause(t *testing.T) {
	m := newTestModel(t, game.SpeciesBeanID)

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = updated.(model)
	if !m.ctrl.Paused() {
		t.Fatalf("expected paused after tab")
	}
	if !strings.Contains(m.View(), "[paused]") {
		t.Fatalf("expected paused marker in view")
	}
}

func TestPickScreenEnterSelects(t *testing.T) {
	m := newTestModel(t, "")
	if m.screen != screenPick {
		t.Fatalf("expected pick screen without a species")
	}
	want := m.ctrl.Catalog().IDs()[1]

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m = updated.(model)
	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(model)

	if m.screen != screenRun {
		t.Fatalf("expected run screen after enter")
	}
	if got := m.ctrl.Snapshot().SpeciesID; got != want {
		t.Fatalf("expected %s, got %s", want, got)
	}
	if len(m.messages) == 0 || !strings.HasPrefix(m.messages[0], "Planted") {
		t.Fatalf("expected planting message from feed, got %v", m.messages)
	}
}

func TestQuitCommandQuits(t *testing.T) {
	m := newTestModel(t, game.SpeciesBeanID)
	m = typeLine(m, "quit")
	if !m.quitting {
		t.Fatalf("expected quitting after quit command")
	}
	if m.View() != "" {
		t.Fatalf("expected empty view when quitting")
	}
}

func TestRunViewShowsReadings(t *testing.T) {
	m := newTestModel(t, game.SpeciesRoseID)
	view := m.View()
	for _, want := range []string{"PLANTAGOTCHI", "Rose", "water", "health", "day 0/"} {
		if !strings.Contains(view, want) {
			t.Fatalf("expected view to contain %q", want)
		}
	}
}

func TestSparklineKeepsTail(t *testing.T) {
	got := sparkline([]int{0, 0, 0, 100, 50}, 2)
	if got != "█▄" {
		t.Fatalf("expected tail sparkline, got %q", got)
	}
}

func TestMessageHistoryIsBounded(t *testing.T) {
	m := newTestModel(t, game.SpeciesBeanID)
	for i := 0; i < maxMessages+5; i++ {
		m.push("line")
	}
	if len(m.messages) != maxMessages {
		t.Fatalf("expected %d messages, got %d", maxMessages, len(m.messages))
	}
}
