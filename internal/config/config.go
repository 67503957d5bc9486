// Package config loads the run configuration from embedded defaults and an
// optional user YAML file.
package config

import (
	_ "embed"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/appengine-ltd/plantagotchi/internal/game"
)

//go:embed defaults.yaml
var defaultsYAML []byte

type Config struct {
	Simulation SimulationConfig `yaml:"simulation"`
	Screen     ScreenConfig     `yaml:"screen"`
	Telemetry  TelemetryConfig  `yaml:"telemetry"`
	Species    []SpeciesConfig  `yaml:"species"`
}

type SimulationConfig struct {
	Preset  string `yaml:"preset"`
	Seed    int64  `yaml:"seed"`
	Species string `yaml:"species"`
}

type ScreenConfig struct {
	Width     int `yaml:"width"`
	Height    int `yaml:"height"`
	TargetFPS int `yaml:"target_fps"`
}

type TelemetryConfig struct {
	HistoryPath string `yaml:"history_path"`
	LogPath     string `yaml:"log_path"`
	LogLevel    string `yaml:"log_level"`
}

// SpeciesConfig is a user-defined species. Each range is a two-element
// [min, max] list.
type SpeciesConfig struct {
	ID          string   `yaml:"id"`
	Name        string   `yaml:"name"`
	Stages      []string `yaml:"stages,omitempty"`
	Water       []int    `yaml:"water"`
	Light       []int    `yaml:"light"`
	Temperature []int    `yaml:"temperature"`
	Nitrogen    []int    `yaml:"nitrogen"`
	Phosphorus  []int    `yaml:"phosphorus"`
	Potassium   []int    `yaml:"potassium"`
	Preferred   []string `yaml:"preferred,omitempty"`
}

// Load reads the embedded defaults and overlays the file at path, if any.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}
	return cfg, nil
}

// Policy resolves the configured tuning preset.
func (c *Config) Policy() (game.Policy, error) {
	p, ok := game.PolicyByName(strings.ToLower(strings.TrimSpace(c.Simulation.Preset)))
	if !ok {
		return game.Policy{}, fmt.Errorf("unknown preset %q (want %s or %s)", c.Simulation.Preset, game.PolicyReference, game.PolicyAlternative)
	}
	return p, nil
}

// Catalog returns the built-in species plus any configured extras.
func (c *Config) Catalog() (*game.Catalog, error) {
	catalog := game.BuiltInCatalog()
	for i, sc := range c.Species {
		sp, err := sc.toSpecies()
		if err != nil {
			return nil, fmt.Errorf("species[%d]: %w", i, err)
		}
		if err := catalog.Add(sp); err != nil {
			return nil, fmt.Errorf("species[%d]: %w", i, err)
		}
	}
	return catalog, nil
}

// StartSpecies returns the configured starting species, or "" when the
// player should pick one.
func (c *Config) StartSpecies(catalog *game.Catalog) (game.SpeciesID, error) {
	id := game.SpeciesID(strings.TrimSpace(c.Simulation.Species))
	if id == "" {
		return "", nil
	}
	if _, err := catalog.Lookup(id); err != nil {
		return "", err
	}
	return id, nil
}

func (c *Config) LogLevel() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.Telemetry.LogLevel)); err != nil {
		return slog.LevelInfo
	}
	return level
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}

func (sc SpeciesConfig) toSpecies() (game.Species, error) {
	ranges := []struct {
		name   string
		values []int
	}{
		{"water", sc.Water},
		{"light", sc.Light},
		{"temperature", sc.Temperature},
		{"nitrogen", sc.Nitrogen},
		{"phosphorus", sc.Phosphorus},
		{"potassium", sc.Potassium},
	}
	parsed := make([]game.Range, len(ranges))
	for i, r := range ranges {
		if len(r.values) != 2 {
			return game.Species{}, fmt.Errorf("%s: want [min, max], got %d values", r.name, len(r.values))
		}
		parsed[i] = game.Range{Min: r.values[0], Max: r.values[1]}
	}

	stages := sc.Stages
	if len(stages) == 0 {
		stages = []string{"seed", "sprout", "plant", "flower", "fruit"}
	}
	name := sc.Name
	if name == "" {
		name = sc.ID
	}

	preferred := make([]game.NutrientKind, 0, len(sc.Preferred))
	for _, raw := range sc.Preferred {
		kind, ok := game.ParseNutrientKind(strings.ToUpper(strings.TrimSpace(raw)))
		if !ok {
			return game.Species{}, fmt.Errorf("preferred nutrient %q: want N, P or K", raw)
		}
		preferred = append(preferred, kind)
	}

	sp := game.Species{
		ID:     game.SpeciesID(strings.TrimSpace(sc.ID)),
		Name:   name,
		Stages: append([]string(nil), stages...),
		Optimal: game.OptimalRanges{
			Water:       parsed[0],
			Light:       parsed[1],
			Temperature: parsed[2],
			Nutrients:   game.NutrientRanges{N: parsed[3], P: parsed[4], K: parsed[5]},
		},
		Preferred: preferred,
	}
	if err := sp.Validate(); err != nil {
		return game.Species{}, err
	}
	return sp, nil
}
