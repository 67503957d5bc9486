package gui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/appengine-ltd/plantagotchi/internal/game"
	"github.com/appengine-ltd/plantagotchi/internal/plantart"
)

const (
	plantTexW = 240
	plantTexH = 300
)

// plantTexture keeps the uploaded plant drawing and redraws it only when the
// look changes.
type plantTexture struct {
	key string
	tex rl.Texture2D
}

func plantKey(snap game.Snapshot) string {
	return fmt.Sprintf("%s/%d/%s", snap.SpeciesID, snap.StageIndex, snap.PlantState)
}

func (p *plantTexture) sync(snap game.Snapshot) {
	key := plantKey(snap)
	if key == p.key && p.tex.ID != 0 {
		return
	}
	p.unload()
	img := rl.NewImageFromImage(plantart.Render(snap, plantTexW, plantTexH))
	p.tex = rl.LoadTextureFromImage(img)
	rl.UnloadImage(img)
	rl.SetTextureFilter(p.tex, rl.FilterBilinear)
	p.key = key
}

func (p *plantTexture) draw(rect rl.Rectangle) {
	if p.tex.ID == 0 {
		return
	}
	scale := min(rect.Width/float32(p.tex.Width), rect.Height/float32(p.tex.Height))
	w := float32(p.tex.Width) * scale
	h := float32(p.tex.Height) * scale
	dest := rl.NewRectangle(rect.X+(rect.Width-w)/2, rect.Y+(rect.Height-h)/2, w, h)
	src := rl.NewRectangle(0, 0, float32(p.tex.Width), float32(p.tex.Height))
	rl.DrawTexturePro(p.tex, src, dest, rl.Vector2{}, 0, rl.White)
}

func (p *plantTexture) unload() {
	if p.tex.ID != 0 {
		rl.UnloadTexture(p.tex)
	}
	*p = plantTexture{}
}
