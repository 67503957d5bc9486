package engine

import (
	"sync"
	"time"

	"github.com/appengine-ltd/plantagotchi/internal/game"
)

// Controller owns the single active plant. Every tick and action runs under
// one mutex; the events it produces are dispatched after the lock is
// released and before the call returns.
type Controller struct {
	mu        sync.Mutex
	catalog   *game.Catalog
	policy    game.Policy
	rng       game.RNG
	state     *game.State
	driver    *Driver
	listeners Listeners
}

type Option func(*Controller)

func WithPolicy(p game.Policy) Option {
	return func(c *Controller) { c.policy = p }
}

func WithRNG(rng game.RNG) Option {
	return func(c *Controller) { c.rng = rng }
}

func WithListener(l Listener) Option {
	return func(c *Controller) {
		if l != nil {
			c.listeners = append(c.listeners, l)
		}
	}
}

func New(catalog *game.Catalog, opts ...Option) *Controller {
	if catalog == nil {
		catalog = game.BuiltInCatalog()
	}
	c := &Controller{
		catalog: catalog,
		policy:  game.ReferencePolicy(),
		driver:  NewDriver(DayDuration),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.rng == nil {
		c.rng = game.NewRNG(0)
	}
	return c
}

type event func(Listener)

func (c *Controller) dispatch(events []event) {
	for _, ev := range events {
		ev(c.listeners)
	}
}

func (c *Controller) Catalog() *game.Catalog {
	return c.catalog
}

func (c *Controller) Policy() game.Policy {
	return c.policy
}

// SelectSpecies starts a fresh run for id, discarding any previous plant and
// pending driver time. Unknown ids are ignored.
func (c *Controller) SelectSpecies(id game.SpeciesID) bool {
	c.mu.Lock()
	species, ok := c.catalog.Get(id)
	if !ok {
		c.mu.Unlock()
		return false
	}
	state := game.NewState(species, c.policy)
	c.state = &state
	c.driver.Start()
	snapshot := c.snapshotLocked()
	c.mu.Unlock()

	c.dispatch([]event{func(l Listener) { l.OnSpeciesSelected(snapshot) }})
	return true
}

func (c *Controller) Pause() bool {
	return c.setPaused(true)
}

func (c *Controller) Resume() bool {
	return c.setPaused(false)
}

func (c *Controller) TogglePause() bool {
	c.mu.Lock()
	paused := c.driver.Paused()
	c.mu.Unlock()
	return c.setPaused(!paused)
}

func (c *Controller) setPaused(paused bool) bool {
	c.mu.Lock()
	if !c.state.CanAdvance() {
		c.mu.Unlock()
		return false
	}
	var changed bool
	if paused {
		changed = c.driver.Pause()
	} else {
		changed = c.driver.Resume()
	}
	if !changed {
		c.mu.Unlock()
		return false
	}
	snapshot := c.snapshotLocked()
	c.mu.Unlock()

	c.dispatch([]event{func(l Listener) { l.OnSnapshotUpdated(snapshot) }})
	return true
}

func (c *Controller) Paused() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.driver.Paused()
}

// UntilNextDay is the real time left before the next automatic tick.
func (c *Controller) UntilNextDay() time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.driver.Until()
}

func (c *Controller) Water() bool {
	return c.act(game.ActionWater, (*game.State).Water)
}

func (c *Controller) ChangeLight() bool {
	return c.act(game.ActionChangeLight, (*game.State).ChangeLight)
}

func (c *Controller) Fertilize(kind game.NutrientKind) bool {
	return c.act(game.ActionFertilize, func(s *game.State) bool { return s.Fertilize(kind) })
}

func (c *Controller) Warm() bool {
	return c.act(game.ActionWarm, (*game.State).Warm)
}

func (c *Controller) act(kind game.ActionKind, apply func(*game.State) bool) bool {
	c.mu.Lock()
	if c.state == nil || !apply(c.state) {
		c.mu.Unlock()
		return false
	}
	snapshot := c.snapshotLocked()
	c.mu.Unlock()

	c.dispatch([]event{
		func(l Listener) { l.OnAction(kind) },
		func(l Listener) { l.OnSnapshotUpdated(snapshot) },
	})
	return true
}

// Advance feeds delta of real time to the driver and runs every tick that
// became due. It returns the number of days simulated.
func (c *Controller) Advance(delta time.Duration) int {
	c.mu.Lock()
	due := c.driver.Due(delta)
	var events []event
	ticks := 0
	for i := 0; i < due; i++ {
		ticked, evs := c.tickLocked()
		if !ticked {
			break
		}
		ticks++
		events = append(events, evs...)
	}
	c.mu.Unlock()

	c.dispatch(events)
	return ticks
}

// Step forces one tick regardless of pause or accumulated time.
func (c *Controller) Step() bool {
	c.mu.Lock()
	ticked, events := c.tickLocked()
	c.mu.Unlock()

	c.dispatch(events)
	return ticked
}

func (c *Controller) tickLocked() (bool, []event) {
	if !c.state.CanAdvance() {
		return false, nil
	}
	report := c.state.AdvanceDay(c.rng)
	if !report.Ticked() {
		return false, nil
	}

	var events []event
	if report.Transition.Changed() {
		tr := report.Transition
		events = append(events, func(l Listener) { l.OnStateChanged(tr.Previous, tr.Current) })
	}
	if report.StageAdvanced {
		stage := c.state.StageIndex
		events = append(events, func(l Listener) { l.OnStageAdvanced(stage) })
	}
	snapshot := c.snapshotLocked()
	events = append(events, func(l Listener) { l.OnSnapshotUpdated(snapshot) })

	if report.Outcome != game.OutcomeOngoing {
		c.driver.Stop()
		outcome := report.Outcome
		events = append(events, func(l Listener) { l.OnTerminal(outcome) })
	}
	return true, events
}

func (c *Controller) Snapshot() game.Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshotLocked()
}

func (c *Controller) snapshotLocked() game.Snapshot {
	if c.state == nil {
		return game.Snapshot{
			MaxDays: c.policy.MaxDays,
			Outcome: game.OutcomeOngoing,
		}
	}
	snapshot := c.state.Snapshot()
	snapshot.Paused = c.driver.Paused()
	return snapshot
}
