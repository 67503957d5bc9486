package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/appengine-ltd/plantagotchi/internal/config"
	"github.com/appengine-ltd/plantagotchi/internal/telemetry"
	"github.com/appengine-ltd/plantagotchi/internal/ui"
	"github.com/appengine-ltd/plantagotchi/internal/update"
)

// version, commit, date are injected at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

type options struct {
	configPath  string
	species     string
	preset      string
	seed        int64
	historyOut  string
	writeConfig string
	terminal    bool
	checkUpdate bool
	showVersion bool
}

func parseFlags(args []string) (options, error) {
	var opts options
	fs := flag.NewFlagSet("plantagotchi", flag.ContinueOnError)
	fs.StringVar(&opts.configPath, "config", "", "YAML config file merged over the defaults")
	fs.StringVar(&opts.species, "species", "", "species id to plant at start (skips the picker)")
	fs.StringVar(&opts.preset, "preset", "", "rule preset: reference or alternative")
	fs.Int64Var(&opts.seed, "seed", 0, "temperature drift seed (0 picks one from the clock)")
	fs.StringVar(&opts.historyOut, "history-out", "", "write the per-day history to this CSV file")
	fs.StringVar(&opts.writeConfig, "write-config", "", "write the effective config to this YAML file and exit")
	fs.BoolVar(&opts.terminal, "tui", false, "use the terminal interface instead of the window")
	fs.BoolVar(&opts.checkUpdate, "check-update", false, "check GitHub for a newer release at start")
	fs.BoolVar(&opts.showVersion, "version", false, "print version and exit")
	return opts, fs.Parse(args)
}

// applyFlags lets command-line flags override the loaded config.
func applyFlags(cfg *config.Config, opts options) {
	if opts.species != "" {
		cfg.Simulation.Species = opts.species
	}
	if opts.preset != "" {
		cfg.Simulation.Preset = opts.preset
	}
	if opts.seed != 0 {
		cfg.Simulation.Seed = opts.seed
	}
	if opts.historyOut != "" {
		cfg.Telemetry.HistoryPath = opts.historyOut
	}
}

func main() {
	opts, err := parseFlags(os.Args[1:])
	if err != nil {
		os.Exit(2)
	}
	if opts.showVersion {
		fmt.Printf("Plantagotchi %s (%s) %s\n", version, commit, date)
		return
	}
	if err := run(opts); err != nil {
		slog.Error("plantagotchi failed", "err", err)
		os.Exit(1)
	}
}

func run(opts options) error {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return err
	}
	applyFlags(cfg, opts)

	if opts.writeConfig != "" {
		return cfg.WriteYAML(opts.writeConfig)
	}

	terminal := opts.terminal || !windowAvailable
	closeLog, err := setupLogging(cfg, terminal)
	if err != nil {
		return err
	}
	defer closeLog()

	s, err := newSession(cfg, slog.Default())
	if err != nil {
		return err
	}
	defer s.close()

	notice := ""
	if opts.checkUpdate {
		notice = checkForUpdate()
	}

	start := time.Now()
	if terminal {
		err = ui.NewApp(ui.AppConfig{Version: version, Controller: s.ctrl, Feed: s.feed, Notice: notice}).Run()
	} else {
		err = runWindow(cfg, s, notice)
	}
	if err != nil {
		return err
	}

	summary := telemetry.Summarize(s.ctrl.Snapshot(), s.history.Records())
	slog.Info("session ended", "played", time.Since(start).Round(time.Second), "summary", summary)
	if summary.Species != "" {
		fmt.Println(summary.String())
	}
	return nil
}

func checkForUpdate() string {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	res, err := update.NewChecker().Check(ctx, version)
	if err != nil {
		slog.Warn("update check failed", "err", err)
		return "Update check failed."
	}
	slog.Info("update check", "current", res.Current, "latest", res.Latest, "available", res.Available)
	return res.String()
}
