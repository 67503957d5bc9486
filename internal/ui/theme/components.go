package theme

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func DrawPanel(rect rl.Rectangle, variant PanelVariant) {
	fill := Panel
	stroke := Border
	strokeWidth := BorderWidth

	switch variant {
	case PanelLifted:
		fill = PanelRaised
		stroke = mix(Border, AccentLeaf, 0.35)
		strokeWidth = 1.4
	case PanelMuted:
		fill = DisabledPanel
		stroke = rl.Fade(Border, 0.75)
	}

	rl.DrawRectangleRounded(rect, CornerRadius, CornerSegments, fill)
	rl.DrawRectangleRoundedLinesEx(rect, CornerRadius, CornerSegments, strokeWidth, stroke)
}

func DrawListItem(rect rl.Rectangle, state ListItemState, leftText, rightText string) {
	fill := rl.Fade(PanelRaised, 0.45)
	stroke := rl.Fade(Border, 0.9)
	left := TextPrimary
	right := TextSecondary
	strokeWidth := BorderWidth

	switch state {
	case ListItemSelected:
		fill = PanelRaised
		stroke = AccentLeaf
		strokeWidth = BorderWidthFocus
		right = AccentLeaf
	case ListItemDisabled:
		fill = DisabledPanel
		left = DisabledText
		right = DisabledText
	}

	rl.DrawRectangleRounded(rect, CornerRadius, CornerSegments, fill)
	rl.DrawRectangleRoundedLinesEx(rect, CornerRadius, CornerSegments, strokeWidth, stroke)
	if state == ListItemSelected {
		rl.DrawRectangleRec(rl.NewRectangle(rect.X+1, rect.Y+2, AccentStripWidth, rect.Height-4), AccentLeaf)
	}

	textY := int32(rect.Y + (rect.Height-float32(Type.Body))/2)
	if leftText != "" {
		drawText(leftText, int32(rect.X+PaddingM), textY, Type.Body, left)
	}
	if rightText != "" {
		rightW := measureText(rightText, Type.Small)
		drawText(rightText, int32(rect.X+rect.Width-PaddingM-float32(rightW)), textY+2, Type.Small, right)
	}
}

func DrawHeader(text string, x, y int32) {
	if text == "" {
		return
	}
	drawText(text, x, y, Type.Header, TextPrimary)
	w := measureText(text, Type.Header)
	lineW := max(int32(float32(w)*0.6), 44)
	drawLine(float32(x), float32(y+Type.Header+6), float32(x+lineW), float32(y+Type.Header+6), 2.0, AccentLeaf)
}

func DrawDivider(x1, y1, x2, y2 float32) {
	drawLine(x1, y1, x2, y2, 1.0, rl.Fade(Divider, 0.95))
}

func DrawHintText(text string, x, y int32) {
	if text == "" {
		return
	}
	drawText(text, x, y, Type.Small, TextMuted)
}

// DrawGauge draws a labelled 0..1 fill with the optimal band shaded behind
// it. fill, bandLo and bandHi are fractions of the track width.
func DrawGauge(rect rl.Rectangle, label string, value int, fill, bandLo, bandHi float32, band Band) {
	drawText(fmt.Sprintf("%s %d", label, value), int32(rect.X), int32(rect.Y), Type.Small, TextSecondary)

	track := rl.NewRectangle(rect.X, rect.Y+float32(Type.Small)+4, rect.Width, GaugeHeight)
	rl.DrawRectangleRec(track, rl.Fade(PanelRaised, 0.9))
	bandRect := rl.NewRectangle(track.X+track.Width*clamp01(bandLo), track.Y, track.Width*(clamp01(bandHi)-clamp01(bandLo)), track.Height)
	rl.DrawRectangleRec(bandRect, rl.Fade(AccentLeaf, 0.22))

	if w := (track.Width - 2) * clamp01(fill); w > 0 {
		rl.DrawRectangleRec(rl.NewRectangle(track.X+1, track.Y+1, w, track.Height-2), BandColor(band))
	}
	rl.DrawRectangleLinesEx(track, 1.0, rl.Fade(Border, 0.95))
}

func BandColor(band Band) rl.Color {
	switch band {
	case BandInside:
		return AccentLeaf
	case BandNear:
		return WarningAmber
	default:
		return Danger
	}
}

func drawLine(x1, y1, x2, y2, thickness float32, clr rl.Color) {
	rl.DrawLineEx(rl.NewVector2(x1, y1), rl.NewVector2(x2, y2), thickness, clr)
}

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func mix(a, b rl.Color, t float32) rl.Color {
	t = clamp01(t)
	inv := 1.0 - t
	return rl.NewColor(
		uint8(float32(a.R)*inv+float32(b.R)*t),
		uint8(float32(a.G)*inv+float32(b.G)*t),
		uint8(float32(a.B)*inv+float32(b.B)*t),
		uint8(float32(a.A)*inv+float32(b.A)*t),
	)
}
