// Package ui is the terminal front end. A clock message every few hundred
// milliseconds feeds the engine, and typed lines go through the command
// parser.
package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/appengine-ltd/plantagotchi/internal/command"
	"github.com/appengine-ltd/plantagotchi/internal/engine"
	"github.com/appengine-ltd/plantagotchi/internal/game"
	"github.com/appengine-ltd/plantagotchi/internal/plantart"
)

const (
	clockInterval = 200 * time.Millisecond
	maxMessages   = 8
	artWidth      = 24
	artRows       = 12
)

type AppConfig struct {
	Version    string
	Controller *engine.Controller
	// Feed must be registered as a listener on Controller.
	Feed *command.Feed
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
	m := newModel(a.cfg)
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// --- Styles (garden green) ---
var (
	green       = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	brightGreen = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	dimGreen    = lipgloss.NewStyle().Foreground(lipgloss.Color("22"))
	amber       = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	red         = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	border      = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	panel       = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("22")).Padding(0, 1)
)

type screen int

const (
	screenPick screen = iota
	screenRun
)

type clockTickMsg struct {
	at time.Time
}

type model struct {
	cfg     AppConfig
	ctrl    *engine.Controller
	session *command.Session

	screen screen
	idx    int
	input  string

	messages   []string
	lastTickAt time.Time
	quitting   bool
}

func newModel(cfg AppConfig) model {
	m := model{
		cfg:     cfg,
		ctrl:    cfg.Controller,
		session: command.NewSession(cfg.Controller),
		screen:  screenPick,
	}
	if m.ctrl.Snapshot().SpeciesID != "" {
		m.screen = screenRun
	}
	if cfg.Notice != "" {
		m.push(cfg.Notice)
	}
	m.drainFeed()
	return m
}

func (m model) Init() tea.Cmd {
	return clockCmd()
}

func clockCmd() tea.Cmd {
	return tea.Tick(clockInterval, func(at time.Time) tea.Msg {
		return clockTickMsg{at: at}
	})
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case clockTickMsg:
		if !m.lastTickAt.IsZero() && m.screen == screenRun {
			m.ctrl.Advance(msg.at.Sub(m.lastTickAt))
		}
		m.lastTickAt = msg.at
		m.drainFeed()
		return m, clockCmd()
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.quitting = true
			return m, tea.Quit
		}
		if m.screen == screenPick {
			return m.updatePick(msg)
		}
		return m.updateRun(msg)
	}
	return m, nil
}

func (m model) updatePick(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	ids := m.ctrl.Catalog().IDs()
	if len(ids) == 0 {
		return m, nil
	}
	switch msg.String() {
	case "q", "esc":
		m.quitting = true
		return m, tea.Quit
	case "up", "k":
		m.idx = (m.idx + len(ids) - 1) % len(ids)
	case "down", "j":
		m.idx = (m.idx + 1) % len(ids)
	case "enter":
		if m.ctrl.SelectSpecies(ids[m.idx]) {
			m.screen = screenRun
			m.input = ""
			m.drainFeed()
		}
	}
	return m, nil
}

func (m model) updateRun(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		line := strings.TrimSpace(m.input)
		m.input = ""
		if line == "" {
			return m, nil
		}
		res := m.session.Handle(line)
		m.drainFeed()
		if res.Message != "" {
			m.push("> " + line + "  " + res.Message)
		}
		if res.Quit {
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil
	case tea.KeyTab:
		m.ctrl.TogglePause()
		return m, nil
	case tea.KeyEsc:
		m.screen = screenPick
		m.input = ""
		return m, nil
	case tea.KeyBackspace:
		if r := []rune(m.input); len(r) > 0 {
			m.input = string(r[:len(r)-1])
		}
		return m, nil
	case tea.KeySpace:
		m.input += " "
		return m, nil
	case tea.KeyRunes:
		m.input += string(msg.Runes)
		return m, nil
	}
	return m, nil
}

func (m *model) drainFeed() {
	if m.cfg.Feed == nil {
		return
	}
	for _, line := range m.cfg.Feed.Drain() {
		m.push(line)
	}
}

func (m *model) push(line string) {
	m.messages = append(m.messages, line)
	if len(m.messages) > maxMessages {
		m.messages = m.messages[len(m.messages)-maxMessages:]
	}
}

func (m model) View() string {
	if m.quitting {
		return ""
	}
	title := brightGreen.Render("PLANTAGOTCHI") + dimGreen.Render("  v"+m.cfg.Version)
	rule := border.Render(strings.Repeat("-", 48))

	var body string
	if m.screen == screenPick {
		body = m.viewPick()
	} else {
		body = m.viewRun()
	}
	return title + "\n" + rule + "\n\n" + body
}

func (m model) viewPick() string {
	catalog := m.ctrl.Catalog()
	var b strings.Builder
	b.WriteString(green.Render("Choose a seed to plant:") + "\n\n")
	for i, id := range catalog.IDs() {
		sp, _ := catalog.Get(id)
		cursor := "  "
		line := fmt.Sprintf("%-10s %s", sp.Name, dimGreen.Render(strings.Join(sp.Stages, " > ")))
		if i == m.idx {
			cursor = "> "
			line = brightGreen.Render(sp.Name)
		} else {
			line = green.Render(line)
		}
		b.WriteString(cursor + line + "\n")
	}
	b.WriteString("\n" + dimGreen.Render("↑/↓ to move, Enter to plant, q to quit") + "\n")
	return b.String()
}

func (m model) viewRun() string {
	snap := m.ctrl.Snapshot()
	sp, _ := m.ctrl.Catalog().Get(snap.SpeciesID)

	header := fmt.Sprintf("%s  %s  day %d/%d  %s", brightGreen.Render(snap.SpeciesName), green.Render(snap.Stage),
		snap.Day, snap.MaxDays, stateStyle(snap.PlantState).Render(string(snap.PlantState)))
	if snap.Paused {
		header += "  " + amber.Render("[paused]")
	} else if snap.Outcome == game.OutcomeOngoing {
		header += "  " + dimGreen.Render(fmt.Sprintf("next day in %.1fs", m.ctrl.UntilNextDay().Seconds()))
	}

	o := sp.Optimal
	bars := strings.Join([]string{
		bar("health", snap.Health, game.Range{Min: 50, Max: game.MaxLevel}, game.MinLevel, game.MaxLevel),
		bar("water", snap.Water, o.Water, game.MinLevel, game.MaxLevel),
		bar("light", snap.Light, o.Light, game.MinLevel, game.MaxLevel),
		bar("temp", snap.Temperature, o.Temperature, game.MinTemperature, game.MaxTemperature),
		bar("N", snap.Nutrients.N, o.Nutrients.N, game.MinLevel, game.MaxLevel),
		bar("P", snap.Nutrients.P, o.Nutrients.P, game.MinLevel, game.MaxLevel),
		bar("K", snap.Nutrients.K, o.Nutrients.K, game.MinLevel, game.MaxLevel),
		dimGreen.Render("trend  ") + green.Render(sparkline(snap.History, 24)),
	}, "\n")

	art := plantart.ANSI(snap, artWidth, artRows)
	top := lipgloss.JoinHorizontal(lipgloss.Top, panel.Render(strings.TrimSuffix(art, "\n")), panel.Render(bars))

	var b strings.Builder
	b.WriteString(header + "\n" + top + "\n")
	if hints := command.Hints(snap, sp); len(hints) > 0 {
		b.WriteString(amber.Render("! "+strings.Join(hints, "; ")) + "\n")
	}
	switch snap.Outcome {
	case game.OutcomeDead:
		b.WriteString(red.Render("Your plant has died. Esc to pick another seed.") + "\n")
	case game.OutcomeCompleted:
		b.WriteString(brightGreen.Render("Season complete! Esc to pick another seed.") + "\n")
	}
	b.WriteString("\n")
	for _, line := range m.messages {
		b.WriteString(dimGreen.Render(line) + "\n")
	}
	b.WriteString("\n" + brightGreen.Render("> ") + m.input + green.Render("_") + "\n")
	b.WriteString(dimGreen.Render("type a command (help), Tab pause, Esc seeds, Ctrl+C quit") + "\n")
	return b.String()
}

func stateStyle(state game.PlantState) lipgloss.Style {
	switch state {
	case game.StateNormal:
		return brightGreen
	case game.StateWarning:
		return amber
	default:
		return red
	}
}

// bar draws a 20 cell gauge coloured by whether value sits in the optimal
// band.
func bar(label string, value int, optimal game.Range, lo, hi int) string {
	const cells = 20
	filled := 0
	if hi > lo {
		filled = (value - lo) * cells / (hi - lo)
	}
	filled = max(0, min(cells, filled))

	style := brightGreen
	if !optimal.Contains(value) {
		style = amber
		if value < optimal.Min-15 || value > optimal.Max+15 {
			style = red
		}
	}
	gauge := style.Render(strings.Repeat("█", filled)) + dimGreen.Render(strings.Repeat("░", cells-filled))
	return fmt.Sprintf("%-6s %s %3d", label, gauge, value)
}

var sparkRunes = []rune("▁▂▃▄▅▆▇█")

// sparkline plots the last width health values on a fixed 0-100 scale.
func sparkline(history []int, width int) string {
	if len(history) > width {
		history = history[len(history)-width:]
	}
	out := make([]rune, 0, len(history))
	for _, h := range history {
		i := h * (len(sparkRunes) - 1) / game.MaxLevel
		out = append(out, sparkRunes[max(0, min(len(sparkRunes)-1, i))])
	}
	return string(out)
}
