package engine

import (
	"sync"

	"github.com/appengine-ltd/plantagotchi/internal/game"
)

type fixedRNG float64

func (r fixedRNG) Float64() float64 { return float64(r) }

type recorder struct {
	NopListener

	mu          sync.Mutex
	selected    int
	transitions [][2]game.PlantState
	stages      []int
	actions     []game.ActionKind
	snapshots   []game.Snapshot
	terminals   []game.Outcome
}

func (r *recorder) OnSpeciesSelected(game.Snapshot) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.selected++
}

func (r *recorder) OnStateChanged(prev, next game.PlantState) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.transitions = append(r.transitions, [2]game.PlantState{prev, next})
}

func (r *recorder) OnStageAdvanced(index int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.stages = append(r.stages, index)
}

func (r *recorder) OnAction(kind game.ActionKind) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.actions = append(r.actions, kind)
}

func (r *recorder) OnSnapshotUpdated(snapshot game.Snapshot) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.snapshots = append(r.snapshots, snapshot)
}

func (r *recorder) OnTerminal(outcome game.Outcome) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.terminals = append(r.terminals, outcome)
}

func (r *recorder) eventCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.selected + len(r.transitions) + len(r.stages) + len(r.actions) + len(r.snapshots) + len(r.terminals)
}

func newTestController(opts ...Option) (*Controller, *recorder) {
	rec := &recorder{}
	opts = append([]Option{WithRNG(fixedRNG(0.9)), WithListener(rec)}, opts...)
	return New(game.BuiltInCatalog(), opts...), rec
}
