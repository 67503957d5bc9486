// Package command turns parsed player input into controller calls and
// player-facing messages.
package command

import (
	"fmt"
	"strings"

	"github.com/appengine-ltd/plantagotchi/internal/game"
	"github.com/appengine-ltd/plantagotchi/internal/parser"
)

// Controller is the slice of the engine a session drives.
type Controller interface {
	SelectSpecies(id game.SpeciesID) bool
	Pause() bool
	Resume() bool
	Water() bool
	ChangeLight() bool
	Fertilize(kind game.NutrientKind) bool
	Warm() bool
	Step() bool
	Snapshot() game.Snapshot
	Catalog() *game.Catalog
}

// maxRepeat bounds "water 5" style counts so one line cannot stall a frame.
const maxRepeat = 10

type Result struct {
	Handled bool
	Applied bool
	Message string
	Quit    bool
}

// Session keeps the little state needed between lines, such as the last
// nutrient used so "feed again" works.
type Session struct {
	ctrl         Controller
	parser       *parser.Parser
	lastNutrient string
}

func NewSession(ctrl Controller) *Session {
	return &Session{ctrl: ctrl, parser: parser.New()}
}

func (s *Session) Context() parser.ParseContext {
	ids := s.ctrl.Catalog().IDs()
	species := make([]string, 0, len(ids))
	for _, id := range ids {
		species = append(species, string(id))
	}
	return parser.ParseContext{Species: species, LastNutrient: s.lastNutrient}
}

// Parse resolves a line against the catalog and the session's last nutrient
// without executing it.
func (s *Session) Parse(line string) parser.Intent {
	return s.parser.Parse(s.Context(), line)
}

// Handle parses one line and executes it.
func (s *Session) Handle(line string) Result {
	intent := s.Parse(line)
	if intent.Clarify != nil {
		return Result{Handled: false, Message: ClarifyMessage(intent.Clarify)}
	}
	return s.Execute(intent)
}

func (s *Session) Execute(intent parser.Intent) Result {
	repeat := 1
	if intent.Quantity != nil && intent.Quantity.N > 1 {
		repeat = min(intent.Quantity.N, maxRepeat)
	}

	switch intent.Verb {
	case "help":
		return Result{Handled: true, Message: "Commands: " + strings.Join(s.parser.Verbs(), ", ") + ". Fertilize takes N, P or K; select takes a species id."}
	case "species":
		return Result{Handled: true, Message: SpeciesList(s.ctrl.Catalog())}
	case "status":
		return Result{Handled: true, Message: Status(s.ctrl.Snapshot())}
	case "quit":
		return Result{Handled: true, Quit: true, Message: "Goodbye."}
	case "select":
		return s.selectSpecies(intent.Args)
	case "water":
		return s.repeatAction(repeat, s.ctrl.Water, "Watered")
	case "light":
		return s.repeatAction(1, s.ctrl.ChangeLight, "Switched the light")
	case "warm":
		return s.repeatAction(repeat, s.ctrl.Warm, "Warmed")
	case "fertilize":
		return s.fertilize(intent.Args, repeat)
	case "pause":
		if !s.ctrl.Pause() {
			return Result{Handled: true, Message: "Nothing to pause."}
		}
		return Result{Handled: true, Applied: true, Message: "Paused. Care actions still work."}
	case "resume":
		if !s.ctrl.Resume() {
			return Result{Handled: true, Message: "Nothing to resume."}
		}
		return Result{Handled: true, Applied: true, Message: "Resumed."}
	case "next":
		return s.step(repeat)
	default:
		return Result{Handled: false, Message: fmt.Sprintf("Unknown command %q.", intent.Raw)}
	}
}

func (s *Session) selectSpecies(args []string) Result {
	if len(args) == 0 {
		return Result{Handled: true, Message: "Usage: select <species>"}
	}
	id := game.SpeciesID(args[0])
	if !s.ctrl.SelectSpecies(id) {
		return Result{Handled: true, Message: fmt.Sprintf("Unknown species %q. %s", args[0], SpeciesList(s.ctrl.Catalog()))}
	}
	s.lastNutrient = ""
	snap := s.ctrl.Snapshot()
	return Result{Handled: true, Applied: true, Message: fmt.Sprintf("Planted a %s seed. %s", snap.SpeciesName, Status(snap))}
}

func (s *Session) fertilize(args []string, repeat int) Result {
	if len(args) == 0 {
		return Result{Handled: true, Message: "Usage: fertilize <N|P|K>"}
	}
	kind, ok := game.ParseNutrientKind(strings.ToUpper(args[0]))
	if !ok {
		return Result{Handled: true, Message: fmt.Sprintf("Unknown nutrient %q. Use N, P or K.", args[0])}
	}
	res := s.repeatAction(repeat, func() bool { return s.ctrl.Fertilize(kind) }, "Fertilized "+string(kind))
	if res.Applied {
		s.lastNutrient = string(kind)
	}
	return res
}

func (s *Session) repeatAction(n int, apply func() bool, done string) Result {
	applied := 0
	before := levelsOf(s.ctrl.Snapshot())
	for i := 0; i < n; i++ {
		if !apply() {
			break
		}
		applied++
		after := levelsOf(s.ctrl.Snapshot())
		if after == before {
			break
		}
		before = after
	}
	if applied == 0 {
		return Result{Handled: true, Message: unavailableMessage(s.ctrl.Snapshot())}
	}
	msg := done + "."
	if applied > 1 {
		msg = fmt.Sprintf("%s x%d.", done, applied)
	}
	return Result{Handled: true, Applied: true, Message: msg + " " + Status(s.ctrl.Snapshot())}
}

func (s *Session) step(n int) Result {
	days := 0
	for i := 0; i < n; i++ {
		if !s.ctrl.Step() {
			break
		}
		days++
	}
	snap := s.ctrl.Snapshot()
	if days == 0 {
		return Result{Handled: true, Message: unavailableMessage(snap)}
	}
	return Result{Handled: true, Applied: true, Message: Status(snap)}
}

type levels struct {
	water, light, temperature int
	nutrients                 game.Nutrients
}

func levelsOf(snap game.Snapshot) levels {
	return levels{snap.Water, snap.Light, snap.Temperature, snap.Nutrients}
}

func unavailableMessage(snap game.Snapshot) string {
	switch {
	case snap.SpeciesID == "":
		return "Select a species first."
	case snap.Outcome == game.OutcomeDead:
		return "The plant has died. Select a species to start again."
	case snap.Outcome == game.OutcomeCompleted:
		return "The season is over. Select a species to start again."
	default:
		return "Nothing happened."
	}
}

func ClarifyMessage(q *parser.ClarifyQuestion) string {
	if len(q.Options) == 0 {
		return q.Prompt
	}
	opts := make([]string, 0, len(q.Options))
	for _, opt := range q.Options {
		opts = append(opts, parser.IntentToCommandString(opt))
	}
	return q.Prompt + " " + strings.Join(opts, " | ")
}
