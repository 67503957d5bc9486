package engine

import "github.com/appengine-ltd/plantagotchi/internal/game"

// Listener receives controller events. Calls arrive synchronously after the
// controller lock is released, so a listener may call back into it.
type Listener interface {
	OnSpeciesSelected(snapshot game.Snapshot)
	OnStateChanged(prev, next game.PlantState)
	OnStageAdvanced(index int)
	OnAction(kind game.ActionKind)
	OnSnapshotUpdated(snapshot game.Snapshot)
	OnTerminal(outcome game.Outcome)
}

// NopListener implements every Listener method as a no-op; embed it to
// implement only the events you care about.
type NopListener struct{}

func (NopListener) OnSpeciesSelected(game.Snapshot) {}
func (NopListener) OnStateChanged(game.PlantState, game.PlantState) {}
func (NopListener) OnStageAdvanced(int) {}
func (NopListener) OnAction(game.ActionKind) {}
func (NopListener) OnSnapshotUpdated(game.Snapshot) {}
func (NopListener) OnTerminal(game.Outcome) {}

// Listeners fans every event out in order.
type Listeners []Listener

func (ls Listeners) OnSpeciesSelected(snapshot game.Snapshot) {
	for _, l := range ls {
		l.OnSpeciesSelected(snapshot)
	}
}

func (ls Listeners) OnStateChanged(prev, next game.PlantState) {
	for _, l := range ls {
		l.OnStateChanged(prev, next)
	}
}

func (ls Listeners) OnStageAdvanced(index int) {
	for _, l := range ls {
		l.OnStageAdvanced(index)
	}
}

func (ls Listeners) OnAction(kind game.ActionKind) {
	for _, l := range ls {
		l.OnAction(kind)
	}
}

func (ls Listeners) OnSnapshotUpdated(snapshot game.Snapshot) {
	for _, l := range ls {
		l.OnSnapshotUpdated(snapshot)
	}
}

func (ls Listeners) OnTerminal(outcome game.Outcome) {
	for _, l := range ls {
		l.OnTerminal(outcome)
	}
}
