package gui

import (
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/appengine-ltd/plantagotchi/internal/parser"
)

// keyPressed reports a key press for this frame. Tests swap it out.
type keyPressed func(key int32) bool

type hotkey struct {
	key   int32
	verb  string
	args  []string
	label string
}

// Care hotkeys need Shift so they never fire while typing a command.
var careHotkeys = []hotkey{
	{key: rl.KeyW, verb: "water", label: "Shift+W water"},
	{key: rl.KeyL, verb: "light", label: "Shift+L light"},
	{key: rl.KeyN, verb: "fertilize", args: []string{"N"}, label: "Shift+N/P/K feed"},
	{key: rl.KeyP, verb: "fertilize", args: []string{"P"}},
	{key: rl.KeyK, verb: "fertilize", args: []string{"K"}},
	{key: rl.KeyH, verb: "warm", label: "Shift+H warm"},
	{key: rl.KeyRight, verb: "next", label: "Shift+→ next day"},
}

// hotkeyIntents returns the intents for care hotkeys pressed this frame.
func hotkeyIntents(shift bool, pressed keyPressed) []parser.Intent {
	if !shift {
		return nil
	}
	var out []parser.Intent
	for _, hk := range careHotkeys {
		if pressed(hk.key) {
			out = append(out, verbIntent(hk.verb, hk.args...))
		}
	}
	return out
}

func hotkeyLegend() string {
	labels := make([]string, 0, len(careHotkeys)+1)
	for _, hk := range careHotkeys {
		if hk.label != "" {
			labels = append(labels, hk.label)
		}
	}
	labels = append(labels, "Tab pause")
	return strings.Join(labels, "  ·  ")
}

func ShiftPressed() bool {
	return rl.IsKeyDown(rl.KeyLeftShift) || rl.IsKeyDown(rl.KeyRightShift)
}

// HotkeysEnabled is false while a command is being typed.
func HotkeysEnabled(input string) bool {
	return strings.TrimSpace(input) == ""
}
