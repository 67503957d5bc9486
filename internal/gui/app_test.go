package gui

import (
	"strings"
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/appengine-ltd/plantagotchi/internal/command"
	"github.com/appengine-ltd/plantagotchi/internal/engine"
	"github.com/appengine-ltd/plantagotchi/internal/game"
	uitheme "github.com/appengine-ltd/plantagotchi/internal/ui/theme"
)

type fixedRNG float64

func (r fixedRNG) Float64() float64 { return float64(r) }

func newTestUI(t *testing.T, species game.SpeciesID) *gameUI {
	t.Helper()
	catalog := game.BuiltInCatalog()
	feed := command.NewFeed(catalog)
	ctrl := engine.New(catalog, engine.WithRNG(fixedRNG(0.9)), engine.WithListener(feed))
	if species != "" && !ctrl.SelectSpecies(species) {
		t.Fatalf("select %s failed", species)
	}
	return newGameUI(AppConfig{Controller: ctrl, Feed: feed})
}

func TestSubmitInputQueuesThenApplies(t *testing.T) {
	ui := newTestUI(t, game.SpeciesBeanID)
	before := ui.ctrl.Snapshot().Water

	ui.input = "water"
	ui.submitInput()
	if ui.queue.Len() != 1 {
		t.Fatalf("expected one queued intent, got %d", ui.queue.Len())
	}
	if got := ui.ctrl.Snapshot().Water; got != before {
		t.Fatalf("expected water untouched before processing, got %d", got)
	}

	ui.processIntentQueue()
	if got := ui.ctrl.Snapshot().Water; got != before+15 {
		t.Fatalf("expected water %d, got %d", before+15, got)
	}
	if ui.input != "" {
		t.Fatalf("expected input cleared")
	}
}

func TestSubmitInputClarifyDoesNotQueue(t *testing.T) {
	ui := newTestUI(t, game.SpeciesBeanID)

	ui.input = "fertilize"
	ui.submitInput()

	if ui.queue.Len() != 0 {
		t.Fatalf("expected nothing queued for a clarify prompt")
	}
	last := ui.messages[len(ui.messages)-1]
	if !strings.HasPrefix(last, "> fertilize") || !strings.Contains(strings.ToLower(last), "fertilize n") {
		t.Fatalf("expected nutrient options in prompt, got %q", last)
	}
}

func TestQuitIntentStopsLoop(t *testing.T) {
	ui := newTestUI(t, game.SpeciesBeanID)
	ui.input = "quit"
	ui.submitInput()
	ui.processIntentQueue()
	if !ui.quit {
		t.Fatalf("expected quit flag")
	}
}

func TestChooseSwitchesToRun(t *testing.T) {
	ui := newTestUI(t, "")
	if ui.screen != screenPick {
		t.Fatalf("expected pick screen without a species")
	}
	ui.choose(game.SpeciesMintID)
	if ui.screen != screenRun {
		t.Fatalf("expected run screen")
	}
	if got := ui.ctrl.Snapshot().SpeciesID; got != game.SpeciesMintID {
		t.Fatalf("expected mint, got %s", got)
	}
	ui.drainFeed()
	if len(ui.messages) == 0 || !strings.HasPrefix(ui.messages[len(ui.messages)-1], "Planted") {
		t.Fatalf("expected planting message, got %v", ui.messages)
	}
}

func TestNoticeIsLogged(t *testing.T) {
	ctrl := engine.New(game.BuiltInCatalog())
	ui := newGameUI(AppConfig{Controller: ctrl, Notice: "Up to date (v1.0.0)."})
	if len(ui.messages) != 1 || ui.messages[0] != "Up to date (v1.0.0)." {
		t.Fatalf("expected notice in log, got %v", ui.messages)
	}
}

func TestHotkeyIntentsNeedShift(t *testing.T) {
	pressed := func(key int32) bool { return key == rl.KeyW || key == rl.KeyK }

	if got := hotkeyIntents(false, pressed); len(got) != 0 {
		t.Fatalf("expected no intents without shift, got %d", len(got))
	}

	got := hotkeyIntents(true, pressed)
	if len(got) != 2 {
		t.Fatalf("expected 2 intents, got %d", len(got))
	}
	if got[0].Verb != "water" {
		t.Fatalf("expected water first, got %q", got[0].Verb)
	}
	if got[1].Verb != "fertilize" || len(got[1].Args) != 1 || got[1].Args[0] != "K" {
		t.Fatalf("expected fertilize K, got %+v", got[1])
	}
}

func TestHotkeysDisabledWhileTyping(t *testing.T) {
	if !HotkeysEnabled("  ") {
		t.Fatalf("expected hotkeys with blank input")
	}
	if HotkeysEnabled("wa") {
		t.Fatalf("expected hotkeys off while typing")
	}
}

func TestHotkeyAndButtonIntentsExecute(t *testing.T) {
	ui := newTestUI(t, game.SpeciesRoseID)
	before := ui.ctrl.Snapshot().Nutrients.P

	ui.queue.EnqueueIntent(verbIntent("fertilize", "P"))
	ui.queue.EnqueueIntent(verbIntent("pause"))
	ui.processIntentQueue()

	snap := ui.ctrl.Snapshot()
	if snap.Nutrients.P != before+15 {
		t.Fatalf("expected P %d, got %d", before+15, snap.Nutrients.P)
	}
	if !snap.Paused {
		t.Fatalf("expected paused")
	}
}

func TestIntentQueueDropsWhenFull(t *testing.T) {
	q := newIntentQueue(2)
	for i := 0; i < 5; i++ {
		q.EnqueueIntent(verbIntent("water"))
	}
	if q.Len() != 2 {
		t.Fatalf("expected queue capped at 2, got %d", q.Len())
	}

	var nilQueue *intentQueue
	nilQueue.EnqueueIntent(verbIntent("water"))
	if _, ok := nilQueue.Dequeue(); ok {
		t.Fatalf("expected nil queue to be empty")
	}
}

func TestHealthChartPoints(t *testing.T) {
	rect := rl.NewRectangle(10, 20, 100, 50)
	points := healthChartPoints([]int{100, 50, 0}, 4, rect)

	if len(points) != 3 {
		t.Fatalf("expected 3 points, got %d", len(points))
	}
	want := []rl.Vector2{{X: 10, Y: 20}, {X: 35, Y: 45}, {X: 60, Y: 70}}
	for i, p := range points {
		if p != want[i] {
			t.Fatalf("point %d: expected %+v, got %+v", i, want[i], p)
		}
	}
	if healthChartPoints(nil, 35, rect) != nil {
		t.Fatalf("expected no points for empty history")
	}
}

func TestReadingGaugesBands(t *testing.T) {
	sp, _ := game.BuiltInCatalog().Get(game.SpeciesRoseID)
	snap := game.Snapshot{Health: 100, Water: sp.Optimal.Water.Min, Light: 0, Temperature: sp.Optimal.Temperature.Max}

	gauges := readingGauges(snap, sp)
	if len(gauges) != 7 {
		t.Fatalf("expected 7 gauges, got %d", len(gauges))
	}
	if gauges[0].band != uitheme.BandInside {
		t.Fatalf("expected full health inside band")
	}
	if gauges[1].band != uitheme.BandInside {
		t.Fatalf("expected water at optimal min inside band")
	}
	if gauges[2].band != uitheme.BandOutside {
		t.Fatalf("expected zero light outside band")
	}
	if gauges[3].fill <= 0 || gauges[3].fill > 1 {
		t.Fatalf("expected temperature fill within track, got %v", gauges[3].fill)
	}
}

func TestPlantKeyTracksLook(t *testing.T) {
	a := game.Snapshot{SpeciesID: "bean", StageIndex: 1, PlantState: game.StateNormal}
	b := a
	b.Day = 7
	if plantKey(a) != plantKey(b) {
		t.Fatalf("expected day to leave the plant key alone")
	}
	b.PlantState = game.StateDry
	if plantKey(a) == plantKey(b) {
		t.Fatalf("expected state change to change the key")
	}
}
