package gui

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/appengine-ltd/plantagotchi/internal/game"
	uitheme "github.com/appengine-ltd/plantagotchi/internal/ui/theme"
)

const (
	spaceXS = uitheme.PaddingXS
	spaceS  = uitheme.PaddingS
	spaceM  = uitheme.PaddingM
	spaceL  = uitheme.PaddingL

	// Readings within this many points of the optimal band draw amber.
	nearSlack = 10
)

var (
	colorBG     = uitheme.BG
	colorText   = uitheme.TextPrimary
	colorDim    = uitheme.TextSecondary
	colorMuted  = uitheme.TextMuted
	colorAccent = uitheme.AccentLeaf
	colorWarn   = uitheme.WarningAmber
	colorDanger = uitheme.Danger
)

// gauge is one reading laid out against its scale and optimal band.
type gauge struct {
	label   string
	value   int
	fill    float32
	bandLo  float32
	bandHi  float32
	band    uitheme.Band
	optimal game.Range
}

func newGauge(label string, value int, optimal game.Range, lo, hi int) gauge {
	span := float32(hi - lo)
	frac := func(v int) float32 {
		if span <= 0 {
			return 0
		}
		return float32(v-lo) / span
	}
	return gauge{
		label:   label,
		value:   value,
		fill:    frac(value),
		bandLo:  frac(optimal.Min),
		bandHi:  frac(optimal.Max),
		band:    uitheme.BandFor(value, optimal.Min, optimal.Max, nearSlack),
		optimal: optimal,
	}
}

// healthyRange only colours the health gauge; health has no optimal band.
var healthyRange = game.Range{Min: 50, Max: game.MaxLevel}

// readingGauges lays out health, environment and nutrients for the panel.
func readingGauges(snap game.Snapshot, sp game.Species) []gauge {
	o := sp.Optimal
	return []gauge{
		newGauge("Health", snap.Health, healthyRange, game.MinLevel, game.MaxLevel),
		newGauge("Water", snap.Water, o.Water, game.MinLevel, game.MaxLevel),
		newGauge("Light", snap.Light, o.Light, game.MinLevel, game.MaxLevel),
		newGauge("Temp °C", snap.Temperature, o.Temperature, game.MinTemperature, game.MaxTemperature),
		newGauge("Nitrogen", snap.Nutrients.N, o.Nutrients.N, game.MinLevel, game.MaxLevel),
		newGauge("Phosphorus", snap.Nutrients.P, o.Nutrients.P, game.MinLevel, game.MaxLevel),
		newGauge("Potassium", snap.Nutrients.K, o.Nutrients.K, game.MinLevel, game.MaxLevel),
	}
}

func drawGauge(rect rl.Rectangle, g gauge) {
	uitheme.DrawGauge(rect, g.label, g.value, g.fill, g.bandLo, g.bandHi, g.band)
}

func stateColor(state game.PlantState) rl.Color {
	switch state {
	case game.StateNormal:
		return colorAccent
	case game.StateWarning:
		return colorWarn
	default:
		return colorDanger
	}
}

func DrawPanel(rect rl.Rectangle, title string, focused bool) {
	variant := uitheme.PanelStandard
	if focused {
		variant = uitheme.PanelLifted
	}
	uitheme.DrawPanel(rect, variant)
	if title != "" {
		uitheme.DrawHeader(title, int32(rect.X+spaceM), int32(rect.Y+spaceS))
	}
}
