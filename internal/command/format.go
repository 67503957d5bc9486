package command

import (
	"fmt"
	"strings"

	"github.com/appengine-ltd/plantagotchi/internal/game"
)

// Status renders the one-line status shown after every command.
func Status(snap game.Snapshot) string {
	if snap.SpeciesID == "" {
		return "No plant selected."
	}
	var b strings.Builder
	fmt.Fprintf(&b, "Day %d/%d %s (%s) health %d, %s", snap.Day, snap.MaxDays, snap.SpeciesName, snap.Stage, snap.Health, snap.PlantState)
	fmt.Fprintf(&b, " | water %d light %d temp %dC N %d P %d K %d",
		snap.Water, snap.Light, snap.Temperature, snap.Nutrients.N, snap.Nutrients.P, snap.Nutrients.K)
	if snap.Paused {
		b.WriteString(" | paused")
	}
	switch snap.Outcome {
	case game.OutcomeDead:
		b.WriteString(" | the plant died")
	case game.OutcomeCompleted:
		b.WriteString(" | season complete")
	}
	return b.String()
}

func SpeciesList(catalog *game.Catalog) string {
	parts := make([]string, 0, catalog.Len())
	for _, id := range catalog.IDs() {
		sp, _ := catalog.Get(id)
		parts = append(parts, fmt.Sprintf("%s (%s)", sp.ID, sp.Name))
	}
	return "Species: " + strings.Join(parts, ", ")
}

// Hints lists the readings outside the species' optimal bands, preferred
// nutrients first.
func Hints(snap game.Snapshot, sp game.Species) []string {
	if snap.SpeciesID == "" || snap.Outcome != game.OutcomeOngoing {
		return nil
	}
	var hints []string
	o := sp.Optimal
	if snap.Water < o.Water.Min {
		hints = append(hints, "soil is dry: water")
	}
	if snap.Temperature < o.Temperature.Min {
		hints = append(hints, "too cold: warm")
	}
	if !o.Light.Contains(snap.Light) {
		hints = append(hints, "light is off its best: light")
	}

	kinds := append([]game.NutrientKind(nil), sp.Preferred...)
	for _, kind := range game.NutrientKinds {
		if !containsKind(kinds, kind) {
			kinds = append(kinds, kind)
		}
	}
	for _, kind := range kinds {
		if snap.Nutrients.Get(kind) < o.Nutrients.For(kind).Min {
			hints = append(hints, fmt.Sprintf("low %s: fertilize %s", kind, kind))
		}
	}
	return hints
}

func containsKind(kinds []game.NutrientKind, kind game.NutrientKind) bool {
	for _, k := range kinds {
		if k == kind {
			return true
		}
	}
	return false
}
