package command

import (
	"fmt"
	"sync"

	"github.com/appengine-ltd/plantagotchi/internal/game"
)

// Feed turns controller events into player-facing lines that a front end
// drains on its own schedule. Lines raised during a tick are stamped with
// the day once the tick's snapshot arrives.
type Feed struct {
	catalog *game.Catalog

	mu      sync.Mutex
	species game.Species
	day     int
	pending []string
	lines   []string
}

func NewFeed(catalog *game.Catalog) *Feed {
	return &Feed{catalog: catalog}
}

func (f *Feed) push(format string, args ...any) {
	f.pending = append(f.pending, fmt.Sprintf(format, args...))
}

func (f *Feed) flush() {
	for _, line := range f.pending {
		if f.day > 0 {
			line = fmt.Sprintf("Day %d: %s", f.day, line)
		}
		f.lines = append(f.lines, line)
	}
	f.pending = nil
}

func (f *Feed) OnSpeciesSelected(snap game.Snapshot) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.species, _ = f.catalog.Get(snap.SpeciesID)
	f.day = 0
	f.pending = nil
	f.push("Planted a %s seed.", f.species.Name)
	f.flush()
}

func (f *Feed) OnStateChanged(prev, next game.PlantState) {
	f.mu.Lock()
	defer f.mu.Unlock()
	switch next {
	case game.StateNormal:
		f.push("The plant has recovered.")
	case game.StateWarning:
		f.push("The plant looks unhappy.")
	case game.StateDry:
		f.push("The soil has been dry too long.")
	case game.StateCold:
		f.push("The plant has been cold too long.")
	case game.StateStress:
		f.push("The plant is stressed.")
	case game.StateDead:
		f.push("The plant has died.")
	}
}

func (f *Feed) OnStageAdvanced(index int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.push("Grew into a %s!", f.species.StageName(index))
}

func (f *Feed) OnAction(game.ActionKind) {}

func (f *Feed) OnSnapshotUpdated(snap game.Snapshot) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.day = snap.Day
	f.flush()
}

func (f *Feed) OnTerminal(outcome game.Outcome) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if outcome == game.OutcomeCompleted {
		f.push("The season is over. Your %s made it!", f.species.Name)
	}
	f.flush()
}

// Drain returns and clears the stamped lines.
func (f *Feed) Drain() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	lines := f.lines
	f.lines = nil
	return lines
}
