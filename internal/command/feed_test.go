package command

import (
	"strings"
	"testing"

	"github.com/appengine-ltd/plantagotchi/internal/engine"
	"github.com/appengine-ltd/plantagotchi/internal/game"
)

func TestFeedNarratesRun(t *testing.T) {
	catalog := game.BuiltInCatalog()
	feed := NewFeed(catalog)
	ctrl := engine.New(catalog, engine.WithRNG(fixedRNG(0.9)), engine.WithListener(feed))

	ctrl.SelectSpecies(game.SpeciesBeanID)
	for i := 0; i < 9; i++ {
		ctrl.Step()
	}

	lines := feed.Drain()
	joined := strings.Join(lines, "\n")
	for _, want := range []string{"Planted a Bean seed.", "Day 4: Grew into a sprout!", "Day 8: Grew into a plant!", "Day 9: The plant looks unhappy."} {
		if !strings.Contains(joined, want) {
			t.Fatalf("expected %q in feed:\n%s", want, joined)
		}
	}
	if again := feed.Drain(); len(again) != 0 {
		t.Fatalf("expected drain to clear lines, got %v", again)
	}
}
