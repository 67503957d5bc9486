package parser

import (
	"fmt"
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
)

type Parser struct {
	registry *Registry
}

func New() *Parser {
	return &Parser{registry: DefaultRegistry()}
}

func (p *Parser) RegisterCommand(c CommandDef) {
	p.registry.RegisterCommand(c)
}

func (p *Parser) Verbs() []string {
	return p.registry.Verbs()
}

func (p *Parser) Commands() []CommandDef {
	return p.registry.Commands()
}

func (p *Parser) Parse(ctx ParseContext, raw string) Intent {
	intent := Intent{
		Raw:        raw,
		Normalised: normaliseInput(raw),
		Kind:       Unknown,
	}
	if intent.Normalised == "" {
		intent.Clarify = &ClarifyQuestion{Prompt: "Enter a command. Type help for the list."}
		return intent
	}

	tokens := tokenise(intent.Normalised)
	match, alternates := p.registry.matchCommand(tokens)
	if match.Canonical == "" || match.Score < 0.5 {
		if inferred := inferFreeTextIntent(ctx, intent.Raw, intent.Normalised); inferred != nil {
			return *inferred
		}
		intent.Clarify = &ClarifyQuestion{
			Prompt: "I couldn't map that to a command. Try " + strings.Join(p.registry.Verbs(), ", ") + ".",
		}
		return intent
	}

	if len(alternates) > 0 && (match.Score-alternates[0].Score) < 0.05 && alternates[0].Score > 0.65 {
		intent.Clarify = &ClarifyQuestion{
			Prompt: "Did you mean:",
			Options: []Intent{
				verbOption(raw, match),
				verbOption(raw, alternates[0]),
			},
		}
		return intent
	}

	intent.Verb = match.Canonical
	intent.Kind = commandKind(intent.Verb)
	intent.Confidence = clampScore(match.Score)

	argTokens := tokens
	if match.Consumed > 0 && len(tokens) >= match.Consumed {
		argTokens = tokens[match.Consumed:]
	}
	argTokens, intent.Quantity = splitQuantity(argTokens)

	def, _ := p.registry.command(intent.Verb)
	args, clarify, argScore := resolveArgs(ctx, def, argTokens)
	if clarify != nil {
		intent.Clarify = clarify
		intent.Confidence = 0.45
		return intent
	}
	intent.Args = args
	intent.Confidence = clampScore((intent.Confidence * 0.75) + (argScore * 0.25))

	if len(intent.Args) < def.MinArgs {
		intent.Clarify = missingArgQuestion(ctx, def)
		intent.Confidence = 0.42
		return intent
	}
	if def.MaxArgs > 0 && len(intent.Args) > def.MaxArgs {
		intent.Args = append([]string(nil), intent.Args[:def.MaxArgs]...)
		intent.Confidence = clampScore(intent.Confidence - 0.05)
	}

	if intent.Confidence < 0.52 {
		intent.Clarify = &ClarifyQuestion{Prompt: "I have low confidence in that parse. Please rephrase."}
	}
	return intent
}

func verbOption(raw string, c commandCandidate) Intent {
	return Intent{
		Raw:        raw,
		Normalised: c.Canonical,
		Kind:       commandKind(c.Canonical),
		Verb:       c.Canonical,
		Confidence: c.Score,
	}
}

func commandKind(verb string) IntentKind {
	switch verb {
	case "help":
		return Help
	case "status", "species":
		return Query
	default:
		return Command
	}
}

func splitQuantity(tokens []string) ([]string, *Quantity) {
	if len(tokens) == 0 {
		return nil, nil
	}
	out := make([]string, 0, len(tokens))
	var q *Quantity
	for _, token := range tokens {
		if q == nil {
			if candidate := parseQuantityToken(token); candidate != nil {
				q = candidate
				continue
			}
		}
		out = append(out, token)
	}
	return out, q
}

func resolveArgs(ctx ParseContext, def CommandDef, args []string) ([]string, *ClarifyQuestion, float64) {
	if len(args) == 0 {
		return nil, nil, 0.9
	}

	resolved := make([]string, 0, len(args))
	score := 0.9
	for i, token := range args {
		switch {
		case def.Canonical == "fertilize" && i == 0:
			kind, confidence := resolveNutrient(ctx, token)
			if kind == "" {
				return nil, nutrientQuestion(fmt.Sprintf("Unknown nutrient %q. Which one?", token)), 0.4
			}
			resolved = append(resolved, kind)
			score = minScore(score, confidence)

		case def.Canonical == "select" && i == 0 && len(ctx.Species) > 0:
			matches, confidence, tie := bestMatches(normaliseInput(token), normaliseAll(ctx.Species))
			if tie {
				return nil, &ClarifyQuestion{
					Prompt: "Which species?",
					Options: []Intent{
						{Kind: Command, Verb: "select", Args: []string{matches[0]}, Confidence: confidence},
						{Kind: Command, Verb: "select", Args: []string{matches[1]}, Confidence: confidence - 0.01},
					},
				}, 0.5
			}
			if len(matches) == 0 {
				return nil, speciesQuestion(ctx, fmt.Sprintf("Unknown species %q. Pick one:", token)), 0.4
			}
			resolved = append(resolved, matches[0])
			score = minScore(score, confidence)

		default:
			resolved = append(resolved, token)
			score -= 0.02
		}
	}
	return resolved, nil, clampScore(score)
}

func resolveNutrient(ctx ParseContext, token string) (string, float64) {
	if isPronoun(token) {
		if kind := mapNutrient(ctx.LastNutrient); kind != "" {
			return kind, 0.82
		}
		return "", 0
	}
	if kind := mapNutrient(token); kind != "" {
		return kind, 0.98
	}
	matches, confidence, tie := bestMatches(normaliseInput(token), nutrientNames)
	if tie || len(matches) == 0 {
		return "", 0
	}
	return mapNutrient(matches[0]), confidence
}

func missingArgQuestion(ctx ParseContext, def CommandDef) *ClarifyQuestion {
	switch def.Canonical {
	case "fertilize":
		return nutrientQuestion("Which nutrient?")
	case "select":
		if len(ctx.Species) > 0 {
			return speciesQuestion(ctx, "Which species?")
		}
	}
	return &ClarifyQuestion{Prompt: fmt.Sprintf("%s needs at least %d argument(s).", def.Canonical, def.MinArgs)}
}

func nutrientQuestion(prompt string) *ClarifyQuestion {
	options := make([]Intent, 0, 3)
	for _, kind := range []string{"N", "P", "K"} {
		options = append(options, Intent{Kind: Command, Verb: "fertilize", Args: []string{kind}, Confidence: 0.88})
	}
	return &ClarifyQuestion{Prompt: prompt, Options: options}
}

func speciesQuestion(ctx ParseContext, prompt string) *ClarifyQuestion {
	options := make([]Intent, 0, len(ctx.Species))
	for _, id := range normaliseAll(ctx.Species) {
		options = append(options, Intent{Kind: Command, Verb: "select", Args: []string{id}, Confidence: 0.88})
	}
	return &ClarifyQuestion{Prompt: prompt, Options: options}
}

func bestMatches(token string, all []string) ([]string, float64, bool) {
	if token == "" || len(all) == 0 {
		return nil, 0, false
	}
	type scored struct {
		val   string
		score float64
	}

	results := make([]scored, 0, len(all))
	for _, cand := range all {
		var score float64
		switch {
		case token == cand:
			score = 1.0
		case strings.HasPrefix(cand, token) && len(token) >= 2:
			score = 0.9
		default:
			dist := levenshtein.ComputeDistance(token, cand)
			if dist > levenshteinLimit(len(cand)) {
				continue
			}
			score = 0.72 - (0.08 * float64(dist))
		}
		results = append(results, scored{val: cand, score: clampScore(score)})
	}
	if len(results) == 0 {
		return nil, 0, false
	}
	sort.SliceStable(results, func(i, j int) bool {
		if results[i].score == results[j].score {
			return results[i].val < results[j].val
		}
		return results[i].score > results[j].score
	})

	best := results[0]
	if len(results) > 1 && (best.score-results[1].score) < 0.05 && results[1].score > 0.6 {
		return []string{best.val, results[1].val}, best.score, true
	}
	return []string{best.val}, best.score, false
}

// inferFreeTextIntent catches plain-language complaints about the plant
// that don't start with a verb.
func inferFreeTextIntent(ctx ParseContext, raw string, normalised string) *Intent {
	n := normalised
	makeIntent := func(kind IntentKind, verb string, args []string, confidence float64) *Intent {
		return &Intent{
			Raw:        raw,
			Normalised: normalised,
			Kind:       kind,
			Verb:       verb,
			Args:       args,
			Confidence: clampScore(confidence),
		}
	}

	if containsAnyPhrase(n, "thirsty", "too dry", "soil is dry", "needs water", "wilting") {
		return makeIntent(Command, "water", nil, 0.84)
	}
	if containsAnyPhrase(n, "too cold", "freezing", "chilly", "needs heat", "warm it up") {
		return makeIntent(Command, "warm", nil, 0.84)
	}
	if containsAnyPhrase(n, "too dark", "too bright", "more light", "less light", "switch the light") {
		return makeIntent(Command, "light", nil, 0.8)
	}
	if containsAnyPhrase(n, "feed", "fertilizer", "fertiliser", "give") {
		for _, token := range tokenise(n) {
			if kind := mapNutrient(token); kind != "" && len(token) > 1 {
				return makeIntent(Command, "fertilize", []string{kind}, 0.8)
			}
		}
	}
	if containsAnyPhrase(n, "how is my plant", "how is it doing", "how are we doing", "check plant") {
		return makeIntent(Query, "status", nil, 0.86)
	}
	if containsAnyPhrase(n, "what can i grow", "which plants", "what plants") {
		return makeIntent(Query, "species", nil, 0.86)
	}
	if len(ctx.Species) > 0 && containsAnyPhrase(n, "grow a", "grow some", "i want a", "lets grow") {
		for _, token := range tokenise(n) {
			for _, id := range normaliseAll(ctx.Species) {
				if token == id {
					return makeIntent(Command, "select", []string{id}, 0.8)
				}
			}
		}
	}
	return nil
}

func containsAnyPhrase(value string, phrases ...string) bool {
	for _, phrase := range phrases {
		p := normaliseInput(phrase)
		if p != "" && strings.Contains(" "+value+" ", " "+p+" ") {
			return true
		}
	}
	return false
}

func normaliseAll(values []string) []string {
	seen := map[string]bool{}
	out := make([]string, 0, len(values))
	for _, v := range values {
		n := normaliseInput(v)
		if n == "" || seen[n] {
			continue
		}
		seen[n] = true
		out = append(out, n)
	}
	return out
}

func minScore(a, b float64) float64 {
	if b < a {
		return b
	}
	return a
}

func clampScore(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// IntentToCommandString renders an intent back to the canonical command line.
func IntentToCommandString(intent Intent) string {
	verb := normaliseInput(intent.Verb)
	if verb == "" {
		return ""
	}
	args := make([]string, 0, len(intent.Args)+1)
	for _, arg := range intent.Args {
		if n := normaliseInput(arg); n != "" {
			args = append(args, n)
		}
	}
	if intent.Quantity != nil && intent.Quantity.Raw != "" {
		args = append(args, normaliseInput(intent.Quantity.Raw))
	}
	if len(args) == 0 {
		return verb
	}
	return verb + " " + strings.Join(args, " ")
}
