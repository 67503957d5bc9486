package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/appengine-ltd/plantagotchi/internal/command"
	"github.com/appengine-ltd/plantagotchi/internal/config"
	"github.com/appengine-ltd/plantagotchi/internal/engine"
	"github.com/appengine-ltd/plantagotchi/internal/game"
	"github.com/appengine-ltd/plantagotchi/internal/telemetry"
)

// session is everything one run wires together.
type session struct {
	ctrl    *engine.Controller
	feed    *command.Feed
	history *telemetry.History
	csv     *telemetry.CSVWriter
}

func newSession(cfg *config.Config, log *slog.Logger) (*session, error) {
	catalog, err := cfg.Catalog()
	if err != nil {
		return nil, fmt.Errorf("building catalog: %w", err)
	}
	policy, err := cfg.Policy()
	if err != nil {
		return nil, err
	}
	start, err := cfg.StartSpecies(catalog)
	if err != nil {
		return nil, err
	}

	csv, err := telemetry.NewCSVWriter(cfg.Telemetry.HistoryPath)
	if err != nil {
		return nil, err
	}

	s := &session{
		feed:    command.NewFeed(catalog),
		history: telemetry.NewHistory(csv),
		csv:     csv,
	}
	s.ctrl = engine.New(catalog,
		engine.WithPolicy(policy),
		engine.WithRNG(game.NewRNG(cfg.Simulation.Seed)),
		engine.WithListener(telemetry.NewLogger(log)),
		engine.WithListener(s.history),
		engine.WithListener(s.feed),
	)

	log.Info("session ready", "preset", policy.Name, "species", catalog.Len(), "seed", cfg.Simulation.Seed)
	if start != "" {
		s.ctrl.SelectSpecies(start)
	}
	return s, nil
}

func (s *session) close() {
	if err := s.csv.Close(); err != nil {
		slog.Warn("closing history file", "err", err)
	}
}

// setupLogging installs the default slog logger. The terminal interface owns
// the screen, so there logs go to telemetry.log_path or nowhere. The returned
// func closes the log file and puts the logger back on stderr.
func setupLogging(cfg *config.Config, terminal bool) (func(), error) {
	var w io.Writer = os.Stderr
	var file *os.File

	switch {
	case cfg.Telemetry.LogPath != "":
		f, err := os.OpenFile(cfg.Telemetry.LogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("opening log file: %w", err)
		}
		w = f
		file = f
	case terminal:
		w = io.Discard
	}

	opts := &slog.HandlerOptions{Level: cfg.LogLevel()}
	slog.SetDefault(slog.New(slog.NewTextHandler(w, opts)))
	return func() {
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, opts)))
		if file != nil {
			_ = file.Close()
		}
	}, nil
}
