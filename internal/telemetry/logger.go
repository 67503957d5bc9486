// Package telemetry records what happens during a run: a structured log, a
// per-day history that can be exported as CSV, and end-of-run statistics.
package telemetry

import (
	"context"
	"log/slog"
	"sync"

	"github.com/appengine-ltd/plantagotchi/internal/engine"
	"github.com/appengine-ltd/plantagotchi/internal/game"
)

// Logger writes controller events to a slog.Logger.
type Logger struct {
	log *slog.Logger

	mu      sync.Mutex
	lastDay int
}

var _ engine.Listener = (*Logger)(nil)

func NewLogger(log *slog.Logger) *Logger {
	if log == nil {
		log = slog.Default()
	}
	return &Logger{log: log}
}

func (l *Logger) OnSpeciesSelected(snap game.Snapshot) {
	l.mu.Lock()
	l.lastDay = snap.Day
	l.mu.Unlock()
	l.log.Info("species selected", "species", snap.SpeciesID, "max_days", snap.MaxDays, "health", snap.Health)
}

func (l *Logger) OnStateChanged(prev, next game.PlantState) {
	level := slog.LevelInfo
	if next.Distressed() || next == game.StateDead {
		level = slog.LevelWarn
	}
	l.log.Log(context.Background(), level, "plant state changed", "from", prev, "to", next)
}

func (l *Logger) OnStageAdvanced(index int) {
	l.log.Info("stage advanced", "stage_index", index)
}

func (l *Logger) OnAction(kind game.ActionKind) {
	l.log.Debug("action applied", "action", kind)
}

func (l *Logger) OnSnapshotUpdated(snap game.Snapshot) {
	l.mu.Lock()
	newDay := snap.Day != l.lastDay
	l.lastDay = snap.Day
	l.mu.Unlock()
	if !newDay {
		return
	}
	l.log.Debug("day advanced", "snapshot", snapshotValue(snap))
}

func (l *Logger) OnTerminal(outcome game.Outcome) {
	l.log.Info("run finished", "outcome", outcome)
}

func snapshotValue(s game.Snapshot) slog.Value {
	return slog.GroupValue(
		slog.Int("day", s.Day),
		slog.Int("health", s.Health),
		slog.String("state", string(s.PlantState)),
		slog.String("stage", s.Stage),
		slog.Int("water", s.Water),
		slog.Int("light", s.Light),
		slog.Int("temperature", s.Temperature),
		slog.Int("n", s.Nutrients.N),
		slog.Int("p", s.Nutrients.P),
		slog.Int("k", s.Nutrients.K),
		slog.Int("dry_days", s.Stress.DryDays),
		slog.Int("cold_days", s.Stress.ColdDays),
		slog.Int("nutrient_stress_days", s.Stress.NutrientStressDays),
	)
}
