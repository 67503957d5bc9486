package main

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/appengine-ltd/plantagotchi/internal/config"
	"github.com/appengine-ltd/plantagotchi/internal/game"
)

func TestFlagsOverrideConfig(t *testing.T) {
	opts, err := parseFlags([]string{"-species", "mint", "-preset", "alternative", "-seed", "9", "-history-out", "h.csv", "-tui"})
	if err != nil {
		t.Fatalf("parse flags: %v", err)
	}
	if !opts.terminal {
		t.Fatalf("expected -tui to select the terminal")
	}

	cfg, err := config.Load("")
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	applyFlags(cfg, opts)

	if cfg.Simulation.Species != "mint" || cfg.Simulation.Preset != "alternative" || cfg.Simulation.Seed != 9 {
		t.Fatalf("expected flags applied to simulation, got %+v", cfg.Simulation)
	}
	if cfg.Telemetry.HistoryPath != "h.csv" {
		t.Fatalf("expected history path h.csv, got %q", cfg.Telemetry.HistoryPath)
	}
}

func TestUnsetFlagsKeepConfig(t *testing.T) {
	opts, err := parseFlags(nil)
	if err != nil {
		t.Fatalf("parse flags: %v", err)
	}
	cfg, _ := config.Load("")
	before := cfg.Simulation
	applyFlags(cfg, opts)
	if cfg.Simulation != before {
		t.Fatalf("expected simulation untouched, got %+v", cfg.Simulation)
	}
}

func TestNewSessionStartsConfiguredSpecies(t *testing.T) {
	dir := t.TempDir()
	cfg, _ := config.Load("")
	cfg.Simulation.Species = "rose"
	cfg.Simulation.Seed = 3
	cfg.Telemetry.HistoryPath = filepath.Join(dir, "history.csv")

	s, err := newSession(cfg, slog.New(slog.DiscardHandler))
	if err != nil {
		t.Fatalf("new session: %v", err)
	}
	if got := s.ctrl.Snapshot().SpeciesID; got != game.SpeciesRoseID {
		t.Fatalf("expected rose planted, got %q", got)
	}

	for i := 0; i < 3; i++ {
		s.ctrl.Step()
	}
	s.close()

	data, err := os.ReadFile(cfg.Telemetry.HistoryPath)
	if err != nil {
		t.Fatalf("read history: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected header plus 3 days, got %d lines:\n%s", len(lines), data)
	}
	if len(s.history.Records()) != 3 {
		t.Fatalf("expected 3 history records, got %d", len(s.history.Records()))
	}
	if len(s.feed.Drain()) == 0 {
		t.Fatalf("expected feed lines for the planting")
	}
}

func TestNewSessionRejectsBadPreset(t *testing.T) {
	cfg, _ := config.Load("")
	cfg.Simulation.Preset = "chaos"
	if _, err := newSession(cfg, slog.New(slog.DiscardHandler)); err == nil {
		t.Fatalf("expected unknown preset to fail")
	}
}

func TestNewSessionRejectsUnknownSpecies(t *testing.T) {
	cfg, _ := config.Load("")
	cfg.Simulation.Species = "cactus"
	if _, err := newSession(cfg, slog.New(slog.DiscardHandler)); err == nil {
		t.Fatalf("expected unknown species to fail")
	}
}

func TestSetupLoggingWritesToLogPath(t *testing.T) {
	cfg, _ := config.Load("")
	cfg.Telemetry.LogPath = filepath.Join(t.TempDir(), "run.log")

	restore, err := setupLogging(cfg, true)
	if err != nil {
		t.Fatalf("setup logging: %v", err)
	}
	slog.Info("hello from test")
	restore()

	data, err := os.ReadFile(cfg.Telemetry.LogPath)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(data), "hello from test") {
		t.Fatalf("expected log line in file, got %q", data)
	}
}
