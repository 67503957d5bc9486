// Package gui is the raylib window front end.
package gui

import (
	"fmt"
	"strings"
	"time"

	raygui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/appengine-ltd/plantagotchi/internal/command"
	"github.com/appengine-ltd/plantagotchi/internal/engine"
	"github.com/appengine-ltd/plantagotchi/internal/game"
	"github.com/appengine-ltd/plantagotchi/internal/parser"
	uitheme "github.com/appengine-ltd/plantagotchi/internal/ui/theme"
)

const (
	maxInputLen  = 64
	maxMessages  = 9
	defaultFPS   = 60
	windowTitle  = "Plantagotchi"
	buttonHeight = 36
)

type AppConfig struct {
	Version    string
	Controller *engine.Controller
	// Feed must be registered as a listener on Controller.
	Feed   *command.Feed
	Width  int32
	Height int32
	FPS    int32
	// Notice is shown once in the message log, e.g. an update check result.
	Notice string
}

type App struct {
	cfg AppConfig
}

func NewApp(cfg AppConfig) *App {
	return &App{cfg: cfg}
}

func (a *App) Run() error {
	ui := newGameUI(a.cfg)
	return ui.Run()
}

type screen int

const (
	screenPick screen = iota
	screenRun
)

type gameUI struct {
	cfg     AppConfig
	ctrl    *engine.Controller
	session *command.Session
	queue   *intentQueue

	width  int32
	height int32
	screen screen
	idx    int
	input  string

	messages []string
	plant    plantTexture
	lastTick time.Time
	quit     bool
}

func newGameUI(cfg AppConfig) *gameUI {
	if cfg.Width <= 0 {
		cfg.Width = 960
	}
	if cfg.Height <= 0 {
		cfg.Height = 640
	}
	if cfg.FPS <= 0 {
		cfg.FPS = defaultFPS
	}
	ui := &gameUI{
		cfg:     cfg,
		ctrl:    cfg.Controller,
		session: command.NewSession(cfg.Controller),
		queue:   newIntentQueue(32),
		width:   cfg.Width,
		height:  cfg.Height,
		screen:  screenPick,
	}
	if ui.ctrl.Snapshot().SpeciesID != "" {
		ui.screen = screenRun
	}
	if cfg.Notice != "" {
		ui.push(cfg.Notice)
	}
	ui.drainFeed()
	return ui
}

func (ui *gameUI) Run() error {
	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagMsaa4xHint)
	rl.InitWindow(ui.width, ui.height, windowTitle)
	rl.SetExitKey(0)
	rl.SetTargetFPS(ui.cfg.FPS)
	initTypography()

	ui.lastTick = time.Now()
	for !ui.quit && !rl.WindowShouldClose() {
		now := time.Now()
		delta := max(now.Sub(ui.lastTick), 0)
		ui.lastTick = now

		ui.width = int32(rl.GetScreenWidth())
		ui.height = int32(rl.GetScreenHeight())

		ui.update(delta)

		rl.BeginDrawing()
		rl.ClearBackground(colorBG)
		ui.draw()
		rl.EndDrawing()
	}

	ui.plant.unload()
	shutdownTypography()
	rl.CloseWindow()
	return nil
}

func (ui *gameUI) update(delta time.Duration) {
	switch ui.screen {
	case screenPick:
		ui.updatePick()
	case screenRun:
		ui.updateRun(delta)
	}
	ui.processIntentQueue()
	ui.drainFeed()
}

func (ui *gameUI) updatePick() {
	ids := ui.ctrl.Catalog().IDs()
	if len(ids) == 0 {
		return
	}
	switch {
	case rl.IsKeyPressed(rl.KeyUp):
		ui.idx = (ui.idx + len(ids) - 1) % len(ids)
	case rl.IsKeyPressed(rl.KeyDown):
		ui.idx = (ui.idx + 1) % len(ids)
	case rl.IsKeyPressed(rl.KeyEnter):
		ui.choose(ids[ui.idx])
	case rl.IsKeyPressed(rl.KeyEscape):
		ui.quit = true
	}
}

func (ui *gameUI) choose(id game.SpeciesID) {
	if ui.ctrl.SelectSpecies(id) {
		ui.screen = screenRun
		ui.input = ""
		ui.plant.key = ""
	}
}

func (ui *gameUI) updateRun(delta time.Duration) {
	ui.ctrl.Advance(delta)

	hotkeyFired := false
	if HotkeysEnabled(ui.input) {
		for _, intent := range hotkeyIntents(ShiftPressed(), rl.IsKeyPressed) {
			ui.queue.EnqueueIntent(intent)
			hotkeyFired = true
		}
	}

	for ch := rl.GetCharPressed(); ch > 0; ch = rl.GetCharPressed() {
		if hotkeyFired {
			continue
		}
		if ch >= 32 && ch <= 126 && len(ui.input) < maxInputLen {
			ui.input += string(rune(ch))
		}
	}

	switch {
	case rl.IsKeyPressed(rl.KeyBackspace) && len(ui.input) > 0:
		ui.input = ui.input[:len(ui.input)-1]
	case rl.IsKeyPressed(rl.KeyEnter) || rl.IsKeyPressed(rl.KeyKpEnter):
		ui.submitInput()
	case rl.IsKeyPressed(rl.KeyTab):
		ui.ctrl.TogglePause()
	case rl.IsKeyPressed(rl.KeyEscape):
		ui.screen = screenPick
		ui.input = ""
	}
}

// submitInput parses the typed line. Clarify prompts go straight to the log;
// anything else is queued for this frame.
func (ui *gameUI) submitInput() {
	line := strings.TrimSpace(ui.input)
	ui.input = ""
	if line == "" {
		return
	}
	intent := ui.session.Parse(line)
	if intent.Clarify != nil {
		ui.push("> " + line + "  " + command.ClarifyMessage(intent.Clarify))
		return
	}
	ui.push("> " + line)
	ui.queue.EnqueueIntent(intent)
}

func (ui *gameUI) processIntentQueue() {
	for {
		intent, ok := ui.queue.Dequeue()
		if !ok {
			return
		}
		res := ui.session.Execute(intent)
		ui.drainFeed()
		if res.Message != "" {
			ui.push(res.Message)
		}
		if res.Quit {
			ui.quit = true
			return
		}
	}
}

func (ui *gameUI) drainFeed() {
	if ui.cfg.Feed == nil {
		return
	}
	for _, line := range ui.cfg.Feed.Drain() {
		ui.push(line)
	}
}

func (ui *gameUI) push(line string) {
	ui.messages = append(ui.messages, line)
	if len(ui.messages) > maxMessages {
		ui.messages = ui.messages[len(ui.messages)-maxMessages:]
	}
}

func verbIntent(verb string, args ...string) parser.Intent {
	return parser.Intent{
		Raw:        strings.TrimSpace(verb + " " + strings.Join(args, " ")),
		Kind:       parser.Command,
		Verb:       verb,
		Args:       args,
		Confidence: 1,
	}
}

// ---------------------------------------------------------------------------
// Drawing
// ---------------------------------------------------------------------------

func (ui *gameUI) draw() {
	title := windowTitle
	if ui.cfg.Version != "" {
		title += "  v" + ui.cfg.Version
	}
	drawText(title, int32(spaceL), int32(spaceM), uitheme.Type.Title, colorText)

	switch ui.screen {
	case screenPick:
		ui.drawPick()
	case screenRun:
		ui.drawRun()
	}
}

func (ui *gameUI) drawPick() {
	catalog := ui.ctrl.Catalog()
	top := spaceL*2 + float32(uitheme.Type.Title)
	panel := rl.NewRectangle(spaceL, top, float32(ui.width)-2*spaceL, float32(ui.height)-top-spaceL)
	DrawPanel(panel, "Choose a seed", true)

	y := panel.Y + spaceL*2 + float32(uitheme.Type.Header)
	for i, id := range catalog.IDs() {
		sp, _ := catalog.Get(id)
		row := rl.NewRectangle(panel.X+spaceM, y, panel.Width-2*spaceM-140, uitheme.RowHeight)
		state := uitheme.ListItemNormal
		if i == ui.idx {
			state = uitheme.ListItemSelected
		}
		uitheme.DrawListItem(row, state, sp.Name, strings.Join(sp.Stages, " › "))
		if raygui.Button(rl.NewRectangle(row.X+row.Width+spaceS, y+2, 120, uitheme.RowHeight-4), "Plant") {
			ui.idx = i
			ui.choose(id)
		}
		y += uitheme.RowHeight + spaceXS
	}
	uitheme.DrawHintText("↑/↓ choose  ·  Enter plant  ·  Esc quit", int32(panel.X+spaceM), int32(panel.Y+panel.Height-spaceL))
}

func (ui *gameUI) drawRun() {
	snap := ui.ctrl.Snapshot()
	sp, _ := ui.ctrl.Catalog().Get(snap.SpeciesID)
	ui.plant.sync(snap)

	top := spaceL*2 + float32(uitheme.Type.Title)
	w := float32(ui.width)
	h := float32(ui.height)

	// Header line.
	status := fmt.Sprintf("%s · %s · day %d/%d · %s", snap.SpeciesName, snap.Stage, snap.Day, snap.MaxDays, snap.PlantState)
	drawText(status, int32(spaceL), int32(top-spaceS), uitheme.Type.Body, stateColor(snap.PlantState))
	switch {
	case snap.Paused:
		drawText("PAUSED", int32(w-spaceL-100), int32(top-spaceS), uitheme.Type.Body, colorWarn)
	case snap.Outcome == game.OutcomeOngoing:
		drawText(fmt.Sprintf("next day %.1fs", ui.ctrl.UntilNextDay().Seconds()), int32(w-spaceL-150), int32(top-spaceS), uitheme.Type.Small, colorMuted)
	}
	top += spaceL

	// Plant, gauges, chart.
	leftW := w * 0.3
	plantRect := rl.NewRectangle(spaceL, top, leftW, h*0.55)
	DrawPanel(plantRect, "", false)
	ui.plant.draw(rl.NewRectangle(plantRect.X+spaceS, plantRect.Y+spaceS, plantRect.Width-2*spaceS, plantRect.Height-2*spaceS))

	gaugeRect := rl.NewRectangle(plantRect.X+plantRect.Width+spaceM, top, w*0.3, plantRect.Height)
	DrawPanel(gaugeRect, "Readings", false)
	gy := gaugeRect.Y + spaceL + float32(uitheme.Type.Header)
	for _, g := range readingGauges(snap, sp) {
		drawGauge(rl.NewRectangle(gaugeRect.X+spaceM, gy, gaugeRect.Width-2*spaceM, 30), g)
		gy += 36
	}

	chartRect := rl.NewRectangle(gaugeRect.X+gaugeRect.Width+spaceM, top, w-gaugeRect.X-gaugeRect.Width-spaceM-spaceL, plantRect.Height)
	drawHealthChart(chartRect, snap)

	// Action buttons.
	by := plantRect.Y + plantRect.Height + spaceS
	ui.drawActions(rl.NewRectangle(spaceL, by, w-2*spaceL, buttonHeight), snap)

	// Log, hints and input.
	logRect := rl.NewRectangle(spaceL, by+buttonHeight+spaceS, w-2*spaceL, h-by-buttonHeight-2*spaceS-spaceL-uitheme.RowHeight)
	DrawPanel(logRect, "", false)
	ly := int32(logRect.Y + spaceS)
	lineH := textLineHeight(uitheme.Type.Small)
	if hints := command.Hints(snap, sp); len(hints) > 0 {
		drawText("! "+strings.Join(hints, "; "), int32(logRect.X+spaceM), ly, uitheme.Type.Small, colorWarn)
		ly += lineH
	}
	switch snap.Outcome {
	case game.OutcomeDead:
		drawText("Your plant has died. Esc to pick another seed.", int32(logRect.X+spaceM), ly, uitheme.Type.Small, colorDanger)
		ly += lineH
	case game.OutcomeCompleted:
		drawText("Season complete! Esc to pick another seed.", int32(logRect.X+spaceM), ly, uitheme.Type.Small, colorAccent)
		ly += lineH
	}
	for _, line := range ui.messages {
		if ly+lineH > int32(logRect.Y+logRect.Height) {
			break
		}
		drawText(line, int32(logRect.X+spaceM), ly, uitheme.Type.Small, colorDim)
		ly += lineH
	}

	inputRect := rl.NewRectangle(spaceL, h-spaceL-uitheme.RowHeight+spaceXS, w-2*spaceL, uitheme.RowHeight-spaceXS)
	uitheme.DrawPanel(inputRect, uitheme.PanelLifted)
	text := "> " + ui.input + "_"
	if ui.input == "" {
		text = "> type a command (help)   " + hotkeyLegend()
	}
	drawText(text, int32(inputRect.X+spaceS), int32(inputRect.Y+6), uitheme.Type.Small, colorText)
}

func (ui *gameUI) drawActions(rect rl.Rectangle, snap game.Snapshot) {
	pauseLabel := "Pause"
	if snap.Paused {
		pauseLabel = "Resume"
	}
	actions := []struct {
		label  string
		intent parser.Intent
	}{
		{"Water", verbIntent("water")},
		{"Light", verbIntent("light")},
		{"Feed N", verbIntent("fertilize", "N")},
		{"Feed P", verbIntent("fertilize", "P")},
		{"Feed K", verbIntent("fertilize", "K")},
		{"Warm", verbIntent("warm")},
		{pauseLabel, verbIntent(strings.ToLower(pauseLabel))},
		{"Next day", verbIntent("next")},
	}
	bw := (rect.Width - spaceXS*float32(len(actions)-1)) / float32(len(actions))
	for i, a := range actions {
		r := rl.NewRectangle(rect.X+float32(i)*(bw+spaceXS), rect.Y, bw, rect.Height)
		if raygui.Button(r, a.label) {
			ui.queue.EnqueueIntent(a.intent)
		}
	}
}
