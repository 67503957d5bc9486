package telemetry

import (
	"fmt"
	"log/slog"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/appengine-ltd/plantagotchi/internal/game"
)

// Summary describes the health curve of one run.
type Summary struct {
	Species     game.SpeciesID
	Days        int
	Outcome     game.Outcome
	FinalStage  string
	FinalHealth int
	MeanHealth  float64
	StdHealth   float64
	MinHealth   float64
	MaxHealth   float64
	StateDays   map[game.PlantState]int
}

// Summarize computes statistics over the health history of snap and the
// per-state day counts of records.
func Summarize(snap game.Snapshot, records []DayRecord) Summary {
	s := Summary{
		Species:     snap.SpeciesID,
		Days:        snap.Day,
		Outcome:     snap.Outcome,
		FinalStage:  snap.Stage,
		FinalHealth: snap.Health,
		StateDays:   make(map[game.PlantState]int),
	}
	if len(snap.History) > 0 {
		health := make([]float64, len(snap.History))
		for i, h := range snap.History {
			health[i] = float64(h)
		}
		if len(health) > 1 {
			s.MeanHealth, s.StdHealth = stat.MeanStdDev(health, nil)
		} else {
			s.MeanHealth = health[0]
		}
		s.MinHealth = floats.Min(health)
		s.MaxHealth = floats.Max(health)
	}
	for _, rec := range records {
		s.StateDays[game.PlantState(rec.State)]++
	}
	return s
}

func (s Summary) String() string {
	return fmt.Sprintf("%s: %s after %d days at stage %s, health %d (mean %.1f, sd %.1f, min %.0f, max %.0f)",
		s.Species, s.Outcome, s.Days, s.FinalStage, s.FinalHealth, s.MeanHealth, s.StdHealth, s.MinHealth, s.MaxHealth)
}

// LogValue implements slog.LogValuer for structured logging.
func (s Summary) LogValue() slog.Value {
	attrs := []slog.Attr{
		slog.String("species", string(s.Species)),
		slog.Int("days", s.Days),
		slog.String("outcome", string(s.Outcome)),
		slog.String("final_stage", s.FinalStage),
		slog.Int("final_health", s.FinalHealth),
		slog.Float64("mean_health", s.MeanHealth),
		slog.Float64("std_health", s.StdHealth),
		slog.Float64("min_health", s.MinHealth),
		slog.Float64("max_health", s.MaxHealth),
	}
	for _, state := range []game.PlantState{game.StateNormal, game.StateWarning, game.StateStress, game.StateDry, game.StateCold} {
		if n := s.StateDays[state]; n > 0 {
			attrs = append(attrs, slog.Int(string(state)+"_days", n))
		}
	}
	return slog.GroupValue(attrs...)
}
