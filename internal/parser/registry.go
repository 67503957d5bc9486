package parser

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
)

type commandPhrase struct {
	canonical string
	alias     string
	tokens    []string
}

type Registry struct {
	commands map[string]CommandDef
	phrases  []commandPhrase
}

func NewRegistry() *Registry {
	return &Registry{
		commands: make(map[string]CommandDef),
	}
}

func (r *Registry) RegisterCommand(c CommandDef) {
	c.Canonical = normaliseInput(c.Canonical)
	if c.Canonical == "" {
		return
	}
	if c.HandlerKey == "" {
		c.HandlerKey = c.Canonical
	}
	r.commands[c.Canonical] = c

	for _, phrase := range append([]string{c.Canonical}, c.Aliases...) {
		n := normaliseInput(phrase)
		if n == "" {
			continue
		}
		r.phrases = append(r.phrases, commandPhrase{
			canonical: c.Canonical,
			alias:     n,
			tokens:    tokenise(n),
		})
	}
}

func (r *Registry) command(canonical string) (CommandDef, bool) {
	cmd, ok := r.commands[normaliseInput(canonical)]
	return cmd, ok
}

// Verbs lists the canonical command names in registration order.
func (r *Registry) Verbs() []string {
	seen := make(map[string]bool, len(r.commands))
	out := make([]string, 0, len(r.commands))
	for _, phrase := range r.phrases {
		if seen[phrase.canonical] {
			continue
		}
		seen[phrase.canonical] = true
		out = append(out, phrase.canonical)
	}
	return out
}

// Commands returns the registered definitions in the same order as Verbs.
func (r *Registry) Commands() []CommandDef {
	verbs := r.Verbs()
	out := make([]CommandDef, 0, len(verbs))
	for _, verb := range verbs {
		out = append(out, r.commands[verb])
	}
	return out
}

type commandCandidate struct {
	Canonical string
	Alias     string
	Consumed  int
	Score     float64
	Source    string
}

// scorePhrase rates one phrase against the leading tokens. Exact and alias
// hits beat prefixes, which beat levenshtein matches.
func scorePhrase(phrase commandPhrase, tokens []string, joined string) (commandCandidate, bool) {
	cand := commandCandidate{Canonical: phrase.canonical, Alias: phrase.alias}
	consumed := min(len(tokens), len(phrase.tokens))
	head := strings.Join(tokens[:consumed], " ")

	if consumed == len(phrase.tokens) && head == phrase.alias {
		cand.Consumed, cand.Score, cand.Source = consumed, 1.0, "exact"
		if phrase.alias != phrase.canonical {
			cand.Score, cand.Source = 0.97, "alias"
		}
		return cand, true
	}

	if len(phrase.tokens) == 1 && len(tokens[0]) >= 2 && strings.HasPrefix(phrase.alias, tokens[0]) {
		cand.Consumed, cand.Score, cand.Source = 1, 0.9, "prefix"
		return cand, true
	}

	if len(phrase.tokens) > 1 && len(tokens) >= len(phrase.tokens) {
		consumed = len(phrase.tokens)
		head = strings.Join(tokens[:consumed], " ")
	}
	if consumed == 0 || len(head) < 3 {
		return cand, false
	}
	dist := levenshtein.ComputeDistance(head, phrase.alias)
	if dist > levenshteinLimit(len(phrase.alias)) {
		return cand, false
	}
	cand.Consumed, cand.Source = consumed, "lev"
	cand.Score = 0.72 - (0.08 * float64(dist))
	if strings.Contains(joined, phrase.alias) {
		cand.Score += 0.04
	}
	if phrase.alias != phrase.canonical {
		cand.Score += 0.03
	}
	return cand, true
}

func (r *Registry) matchCommand(tokens []string) (commandCandidate, []commandCandidate) {
	if len(tokens) == 0 {
		return commandCandidate{}, nil
	}
	joined := strings.Join(tokens, " ")
	cands := make([]commandCandidate, 0, len(r.phrases))
	for _, phrase := range r.phrases {
		if len(phrase.tokens) == 0 {
			continue
		}
		if cand, ok := scorePhrase(phrase, tokens, joined); ok {
			cands = append(cands, cand)
		}
	}
	if len(cands) == 0 {
		return commandCandidate{}, nil
	}

	sort.SliceStable(cands, func(i, j int) bool {
		if cands[i].Score == cands[j].Score {
			if cands[i].Consumed == cands[j].Consumed {
				return cands[i].Canonical < cands[j].Canonical
			}
			return cands[i].Consumed > cands[j].Consumed
		}
		return cands[i].Score > cands[j].Score
	})

	best := cands[0]
	alts := make([]commandCandidate, 0, 3)
	seen := map[string]bool{best.Canonical: true}
	for _, c := range cands[1:] {
		if seen[c.Canonical] {
			continue
		}
		seen[c.Canonical] = true
		alts = append(alts, c)
		if len(alts) == cap(alts) {
			break
		}
	}
	return best, alts
}

func levenshteinLimit(length int) int {
	switch {
	case length <= 4:
		return 1
	case length <= 8:
		return 2
	default:
		return 3
	}
}

func DefaultRegistry() *Registry {
	r := NewRegistry()
	commands := []CommandDef{
		{Canonical: "help", Aliases: []string{"h", "commands"}, HandlerKey: "help"},
		{Canonical: "select", Aliases: []string{"choose", "pick", "plant", "grow"}, MinArgs: 1, MaxArgs: 1, HandlerKey: "select"},
		{Canonical: "water", Aliases: []string{"w", "irrigate", "give water"}, HandlerKey: "water"},
		{Canonical: "light", Aliases: []string{"l", "lamp", "lights", "toggle light"}, HandlerKey: "light"},
		{Canonical: "fertilize", Aliases: []string{"f", "fert", "feed", "fertilise"}, MinArgs: 1, MaxArgs: 1, HandlerKey: "fertilize"},
		{Canonical: "warm", Aliases: []string{"heat", "heater"}, HandlerKey: "warm"},
		{Canonical: "pause", Aliases: []string{"hold", "freeze"}, HandlerKey: "pause"},
		{Canonical: "resume", Aliases: []string{"continue", "unpause", "play"}, HandlerKey: "resume"},
		{Canonical: "next", Aliases: []string{"step", "advance", "skip"}, HandlerKey: "next"},
		{Canonical: "status", Aliases: []string{"s", "stats", "info"}, HandlerKey: "status"},
		{Canonical: "species", Aliases: []string{"list", "catalog", "plants"}, HandlerKey: "species"},
		{Canonical: "quit", Aliases: []string{"q", "exit"}, HandlerKey: "quit"},
	}
	for _, cmd := range commands {
		r.RegisterCommand(cmd)
	}
	return r
}
