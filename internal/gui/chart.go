package gui

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/appengine-ltd/plantagotchi/internal/game"
	uitheme "github.com/appengine-ltd/plantagotchi/internal/ui/theme"
)

// healthChartPoints spreads the health history across rect, one slot per day
// including day 0, so the line grows left to right as the season passes.
func healthChartPoints(history []int, maxDays int, rect rl.Rectangle) []rl.Vector2 {
	if len(history) == 0 {
		return nil
	}
	slots := max(maxDays, len(history)-1, 1)
	step := rect.Width / float32(slots)
	points := make([]rl.Vector2, len(history))
	for i, h := range history {
		h = min(max(h, game.MinLevel), game.MaxLevel)
		points[i] = rl.Vector2{
			X: rect.X + float32(i)*step,
			Y: rect.Y + rect.Height - rect.Height*float32(h)/float32(game.MaxLevel),
		}
	}
	return points
}

func drawHealthChart(rect rl.Rectangle, snap game.Snapshot) {
	DrawPanel(rect, "Health", false)
	plot := rl.NewRectangle(rect.X+spaceM, rect.Y+spaceL+float32(uitheme.Type.Header), rect.Width-2*spaceM, rect.Height-spaceL-float32(uitheme.Type.Header)-spaceM)

	mid := plot.Y + plot.Height/2
	uitheme.DrawDivider(plot.X, mid, plot.X+plot.Width, mid)
	rl.DrawRectangleLinesEx(plot, 1, rl.Fade(colorMuted, 0.4))

	points := healthChartPoints(snap.History, snap.MaxDays, plot)
	for i := 1; i < len(points); i++ {
		rl.DrawLineEx(points[i-1], points[i], 2, colorAccent)
	}
	if n := len(points); n > 0 {
		rl.DrawCircleV(points[n-1], 3.5, stateColor(snap.PlantState))
	}
}
