package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/appengine-ltd/plantagotchi/internal/game"
	"github.com/appengine-ltd/plantagotchi/internal/parser"
)

type docFile struct {
	Name    string
	Title   string
	Content string
}

func main() {
	root := filepath.Join("docs", "reference")
	if err := os.MkdirAll(root, 0o755); err != nil {
		fatal(err)
	}

	files := []docFile{
		generateSpeciesDoc(game.BuiltInCatalog()),
		generatePoliciesDoc(game.ReferencePolicy(), game.AlternativePolicy()),
		generateCommandsDoc(parser.New().Commands()),
	}
	for _, f := range files {
		path := filepath.Join(root, f.Name)
		if err := os.WriteFile(path, []byte(f.Content), 0o644); err != nil {
			fatal(err)
		}
		fmt.Printf("wrote %s\n", path)
	}

	indexPath := filepath.Join(root, "README.md")
	if err := os.WriteFile(indexPath, []byte(generateIndex(files)), 0o644); err != nil {
		fatal(err)
	}
	fmt.Printf("wrote %s\n", indexPath)
}

func generateIndex(files []docFile) string {
	var b strings.Builder
	b.WriteString("# Reference\n\n")
	b.WriteString("Generated from the current Go source using `go run ./cmd/docsgen`.\n\n")
	for _, f := range files {
		b.WriteString(fmt.Sprintf("- [%s](./%s)\n", f.Title, f.Name))
	}
	return b.String()
}

func generateSpeciesDoc(catalog *game.Catalog) docFile {
	var b strings.Builder
	b.WriteString("# Species\n\n")
	b.WriteString("Source: `internal/game/species_builtin.go` (`BuiltInSpecies`).\n\n")
	b.WriteString(fmt.Sprintf("Total species: **%d**.\n\n", catalog.Len()))
	b.WriteString("| ID | Name | Stages | Water | Light | Temp (°C) | N | P | K | Prefers |\n")
	b.WriteString("| --- | --- | --- | --- | --- | --- | --- | --- | --- | --- |\n")
	for _, id := range catalog.IDs() {
		sp, _ := catalog.Get(id)
		o := sp.Optimal
		prefers := make([]string, 0, len(sp.Preferred))
		for _, kind := range sp.Preferred {
			prefers = append(prefers, string(kind))
		}
		cells := []string{
			string(sp.ID),
			sp.Name,
			strings.Join(sp.Stages, " → "),
			formatRange(o.Water),
			formatRange(o.Light),
			formatRange(o.Temperature),
			formatRange(o.Nutrients.N),
			formatRange(o.Nutrients.P),
			formatRange(o.Nutrients.K),
			strings.Join(prefers, ", "),
		}
		writeRow(&b, cells)
	}
	return docFile{Name: "species.md", Title: "Species", Content: b.String()}
}

func generatePoliciesDoc(policies ...game.Policy) docFile {
	rows := []struct {
		label string
		value func(game.Policy) string
	}{
		{"Season length (days)", func(p game.Policy) string { return strconv.Itoa(p.MaxDays) }},
		{"Initial water / light / temp", func(p game.Policy) string {
			return fmt.Sprintf("%d / %d / %d", p.InitialWater, p.InitialLight, p.InitialTemperature)
		}},
		{"Initial nutrients / health", func(p game.Policy) string {
			return fmt.Sprintf("%d / %d", p.InitialNutrient, p.InitialHealth)
		}},
		{"Water decay per day", func(p game.Policy) string { return strconv.Itoa(p.WaterDecayPerDay) }},
		{"Nutrient decay per day", func(p game.Policy) string { return strconv.Itoa(p.NutrientDecayPerDay) }},
		{"Cold drift chance", func(p game.Policy) string { return formatFloat(p.ColdDriftChance) }},
		{"Water / temp severe margin", func(p game.Policy) string {
			return fmt.Sprintf("%d / %d", p.WaterSevereMargin, p.TemperatureSevereMargin)
		}},
		{"Counters reset on recovery", func(p game.Policy) string { return yesNo(p.ResetOnRecovery) }},
		{"Severe / combined / nutrient streak", func(p game.Policy) string {
			return fmt.Sprintf("%d / %d / %d", p.SevereStreakDays, p.CombinedStressDays, p.NutrientStressDays)
		}},
		{"Health: ideal / normal / warning", func(p game.Policy) string {
			return fmt.Sprintf("%+d / %+d / %+d", p.HealthIdeal, p.HealthNormal, p.HealthWarning)
		}},
		{"Health: dry / cold / stress", func(p game.Policy) string {
			return fmt.Sprintf("%+d / %+d / %+d", p.HealthDry, p.HealthCold, p.HealthStress)
		}},
		{"Growth points per stage", func(p game.Policy) string { return formatFloat(p.GrowthPointsPerStage) }},
		{"Water / nutrient / warmth per action", func(p game.Policy) string {
			return fmt.Sprintf("%d / %d / %d", p.WaterPerAction, p.NutrientPerAction, p.WarmthPerAction)
		}},
		{"Light presets (low / high)", func(p game.Policy) string {
			return fmt.Sprintf("%d / %d", p.LightLowPreset, p.LightHighPreset)
		}},
	}

	var b strings.Builder
	b.WriteString("# Rule presets\n\n")
	b.WriteString("Source: `internal/game/policy.go`.\n\n")
	header := []string{"Setting"}
	for _, p := range policies {
		header = append(header, p.Name)
	}
	writeRow(&b, header)
	b.WriteString("|" + strings.Repeat(" --- |", len(header)) + "\n")
	for _, row := range rows {
		cells := []string{row.label}
		for _, p := range policies {
			cells = append(cells, row.value(p))
		}
		writeRow(&b, cells)
	}
	return docFile{Name: "policies.md", Title: "Rule presets", Content: b.String()}
}

func generateCommandsDoc(cmds []parser.CommandDef) docFile {
	var b strings.Builder
	b.WriteString("# Commands\n\n")
	b.WriteString("Source: `internal/parser/registry.go` (`DefaultRegistry`). Typos within a small edit distance still match.\n\n")
	b.WriteString("| Command | Aliases | Arguments |\n")
	b.WriteString("| --- | --- | --- |\n")
	for _, c := range cmds {
		args := "none"
		if c.MaxArgs > 0 {
			args = fmt.Sprintf("%d-%d", c.MinArgs, c.MaxArgs)
		}
		writeRow(&b, []string{c.Canonical, strings.Join(c.Aliases, ", "), args})
	}
	return docFile{Name: "commands.md", Title: "Commands", Content: b.String()}
}

func writeRow(b *strings.Builder, cells []string) {
	b.WriteString("|")
	for _, c := range cells {
		b.WriteString(" ")
		b.WriteString(escape(c))
		b.WriteString(" |")
	}
	b.WriteString("\n")
}

func formatRange(r game.Range) string {
	return fmt.Sprintf("%d-%d", r.Min, r.Max)
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func escape(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return ""
	}
	v = strings.ReplaceAll(v, "|", "\\|")
	v = strings.ReplaceAll(v, "\n", "<br>")
	return v
}

func yesNo(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "error: %v\n", err)
	os.Exit(1)
}
