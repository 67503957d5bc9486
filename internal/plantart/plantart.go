// Package plantart draws the plant for a snapshot. The same image feeds the
// terminal front end (as ANSI half blocks) and the raylib window (as a
// texture).
package plantart

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"strings"

	"github.com/fogleman/gg"

	"github.com/appengine-ltd/plantagotchi/internal/game"
)

type palette struct {
	leaf   color.RGBA
	shade  color.RGBA
	bloom  color.RGBA
	fruit  color.RGBA
	stem   color.RGBA
	soil   color.RGBA
	potTop color.RGBA
	potLow color.RGBA
}

func paletteFor(state game.PlantState) palette {
	p := palette{
		leaf:   color.RGBA{R: 60, G: 190, B: 90, A: 255},
		shade:  color.RGBA{R: 30, G: 120, B: 60, A: 255},
		bloom:  color.RGBA{R: 240, G: 120, B: 170, A: 255},
		fruit:  color.RGBA{R: 220, G: 60, B: 50, A: 255},
		stem:   color.RGBA{R: 70, G: 140, B: 60, A: 255},
		soil:   color.RGBA{R: 80, G: 55, B: 35, A: 255},
		potTop: color.RGBA{R: 200, G: 110, B: 60, A: 255},
		potLow: color.RGBA{R: 150, G: 75, B: 40, A: 255},
	}
	switch state {
	case game.StateWarning:
		p.leaf = color.RGBA{R: 150, G: 190, B: 70, A: 255}
		p.shade = color.RGBA{R: 100, G: 130, B: 50, A: 255}
	case game.StateDry:
		p.leaf = color.RGBA{R: 180, G: 150, B: 70, A: 255}
		p.shade = color.RGBA{R: 130, G: 100, B: 50, A: 255}
		p.soil = color.RGBA{R: 150, G: 120, B: 90, A: 255}
	case game.StateCold:
		p.leaf = color.RGBA{R: 90, G: 160, B: 170, A: 255}
		p.shade = color.RGBA{R: 60, G: 110, B: 130, A: 255}
	case game.StateStress:
		p.leaf = color.RGBA{R: 190, G: 170, B: 60, A: 255}
		p.shade = color.RGBA{R: 140, G: 110, B: 40, A: 255}
	case game.StateDead:
		p.leaf = color.RGBA{R: 110, G: 95, B: 80, A: 255}
		p.shade = color.RGBA{R: 80, G: 70, B: 60, A: 255}
		p.stem = color.RGBA{R: 95, G: 85, B: 70, A: 255}
		p.bloom = color.RGBA{R: 120, G: 100, B: 100, A: 255}
		p.fruit = color.RGBA{R: 110, G: 80, B: 70, A: 255}
	}
	return p
}

// Render draws the plant in a pot on a transparent w×h canvas. Growth follows
// the stage, colour follows the plant state, and a dead plant droops.
func Render(snap game.Snapshot, w, h int) image.Image {
	dc := gg.NewContext(w, h)
	dc.SetRGBA(0, 0, 0, 0)
	dc.Clear()

	fw, fh := float64(w), float64(h)
	p := paletteFor(snap.PlantState)
	cx := fw * 0.5

	potTopY := fh * 0.72
	potBottomY := fh * 0.97
	potHalfTop := fw * 0.28
	potHalfBottom := fw * 0.2

	// Pot.
	potGrad := gg.NewLinearGradient(cx, potTopY, cx, potBottomY)
	potGrad.AddColorStop(0, p.potTop)
	potGrad.AddColorStop(1, p.potLow)
	dc.SetFillStyle(potGrad)
	dc.MoveTo(cx-potHalfTop, potTopY)
	dc.LineTo(cx+potHalfTop, potTopY)
	dc.LineTo(cx+potHalfBottom, potBottomY)
	dc.LineTo(cx-potHalfBottom, potBottomY)
	dc.ClosePath()
	dc.Fill()
	dc.SetColor(p.soil)
	dc.DrawEllipse(cx, potTopY, potHalfTop*0.95, fh*0.025)
	dc.Fill()

	if snap.SpeciesID == "" {
		return dc.Image()
	}

	stages := snap.StageCount
	if stages < 1 {
		stages = 1
	}
	growth := float64(snap.StageIndex+1) / float64(stages)
	if stages > 1 {
		growth = 0.15 + 0.85*float64(snap.StageIndex)/float64(stages-1)
	}

	if snap.StageIndex == 0 {
		// Seed just breaking the soil.
		dc.SetColor(p.shade)
		dc.DrawEllipse(cx, potTopY-fh*0.01, fw*0.05, fh*0.02)
		dc.Fill()
		dc.SetColor(p.leaf)
		dc.SetLineWidth(math.Max(1, fw*0.02))
		dc.DrawLine(cx, potTopY-fh*0.01, cx+fw*0.03, potTopY-fh*0.06)
		dc.Stroke()
		return dc.Image()
	}

	stemHeight := growth * fh * 0.6
	droop := 0.0
	if snap.PlantState == game.StateDead {
		droop = stemHeight * 0.45
	}
	topX := cx + droop
	topY := potTopY - stemHeight + droop*0.6

	dc.SetLineCapRound()
	dc.SetColor(p.stem)
	dc.SetLineWidth(math.Max(1.5, fw*0.035))
	dc.MoveTo(cx, potTopY)
	dc.QuadraticTo(cx-fw*0.04, potTopY-stemHeight*0.5, topX, topY)
	dc.Stroke()

	leaves := 2 * snap.StageIndex
	for i := 0; i < leaves; i++ {
		t := 0.25 + 0.7*float64(i/2)/math.Max(1, float64(leaves/2))
		lx := lerp(cx, topX, t)
		ly := lerp(potTopY, topY, t)
		side := 1.0
		if i%2 == 1 {
			side = -1
		}
		size := fw * (0.09 + 0.04*growth)
		dc.Push()
		dc.RotateAbout(side*(0.5+droop/fh), lx, ly)
		leafGrad := gg.NewLinearGradient(lx, ly, lx+side*size*2, ly)
		leafGrad.AddColorStop(0, p.shade)
		leafGrad.AddColorStop(1, p.leaf)
		dc.SetFillStyle(leafGrad)
		dc.DrawEllipse(lx+side*size, ly, size, size*0.42)
		dc.Fill()
		dc.Pop()
	}

	bloomR := fw * 0.07
	if snap.StageIndex >= 3 {
		for k := 0; k < 5; k++ {
			a := float64(k) * 2 * math.Pi / 5
			dc.SetColor(p.bloom)
			dc.DrawCircle(topX+math.Cos(a)*bloomR, topY+math.Sin(a)*bloomR, bloomR*0.75)
			dc.Fill()
		}
		dc.SetRGB(1, 0.85, 0.3)
		dc.DrawCircle(topX, topY, bloomR*0.55)
		dc.Fill()
	}
	if snap.StageIndex >= 4 {
		dc.SetColor(p.fruit)
		for _, off := range []float64{-1, 1} {
			fx := lerp(cx, topX, 0.6) + off*fw*0.12
			fy := lerp(potTopY, topY, 0.6)
			dc.DrawCircle(fx, fy, fw*0.05)
			dc.Fill()
		}
	}
	return dc.Image()
}

// ANSI renders the plant as rows of half-block characters, two pixels per
// character cell.
func ANSI(snap game.Snapshot, widthChars, heightRows int) string {
	if widthChars < 8 || heightRows < 4 {
		return ""
	}
	return halfBlocks(Render(snap, widthChars, heightRows*2))
}

func halfBlocks(img image.Image) string {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()
	if width <= 0 || height <= 0 {
		return ""
	}

	var out strings.Builder
	for y := 0; y < height; y += 2 {
		for x := 0; x < width; x++ {
			tr, tg, tb, ta := rgba8(img.At(bounds.Min.X+x, bounds.Min.Y+y))
			br, bg, bb, ba := uint8(0), uint8(0), uint8(0), uint8(0)
			if y+1 < height {
				br, bg, bb, ba = rgba8(img.At(bounds.Min.X+x, bounds.Min.Y+y+1))
			}

			switch {
			case ta < 8 && ba < 8:
				out.WriteByte(' ')
			case ba < 8:
				fmt.Fprintf(&out, "\x1b[38;2;%d;%d;%dm▀\x1b[0m", tr, tg, tb)
			case ta < 8:
				fmt.Fprintf(&out, "\x1b[38;2;%d;%d;%dm▄\x1b[0m", br, bg, bb)
			default:
				fmt.Fprintf(&out, "\x1b[38;2;%d;%d;%dm\x1b[48;2;%d;%d;%dm▀\x1b[0m", tr, tg, tb, br, bg, bb)
			}
		}
		out.WriteByte('\n')
	}
	return out.String()
}

func rgba8(c color.Color) (r, g, b, a uint8) {
	r16, g16, b16, a16 := c.RGBA()
	return uint8(r16 >> 8), uint8(g16 >> 8), uint8(b16 >> 8), uint8(a16 >> 8)
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
