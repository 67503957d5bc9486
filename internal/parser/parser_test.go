package parser

import "testing"

var plantCtx = ParseContext{Species: []string{"bean", "rose", "mint"}}

func TestNormalisationTable(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "  WATER  ", want: "water"},
		{in: "fertilize---K!!", want: "fertilize k"},
		{in: "select   Rose", want: "select rose"},
	}
	for _, tc := range tests {
		got := normaliseInput(tc.in)
		if got != tc.want {
			t.Fatalf("normaliseInput(%q)=%q want=%q", tc.in, got, tc.want)
		}
	}
}

func TestAliasesMapToCanonicalVerbs(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "w", want: "water"},
		{in: "give water", want: "water"},
		{in: "heat", want: "warm"},
		{in: "lamp", want: "light"},
		{in: "step", want: "next"},
		{in: "q", want: "quit"},
		{in: "plants", want: "species"},
		{in: "unpause", want: "resume"},
	}
	p := New()
	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			intent := p.Parse(plantCtx, tc.in)
			if intent.Clarify != nil {
				t.Fatalf("did not expect clarify: %+v", intent.Clarify)
			}
			if intent.Verb != tc.want {
				t.Fatalf("expected %s verb, got %q", tc.want, intent.Verb)
			}
		})
	}
}

func TestTypoWatrMapsToWater(t *testing.T) {
	p := New()
	intent := p.Parse(plantCtx, "watr")
	if intent.Verb != "water" {
		t.Fatalf("expected water verb, got %q", intent.Verb)
	}
	if intent.Confidence < 0.6 {
		t.Fatalf("expected decent confidence for typo correction, got %.2f", intent.Confidence)
	}
}

func TestFertilizeResolvesNutrient(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "fertilize n", want: "N"},
		{in: "fert K", want: "K"},
		{in: "feed phosphorus", want: "P"},
		{in: "fertilize potasium", want: "K"},
		{in: "fertilise Nitrogen", want: "N"},
	}
	p := New()
	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			intent := p.Parse(plantCtx, tc.in)
			if intent.Clarify != nil {
				t.Fatalf("did not expect clarify: %+v", intent.Clarify)
			}
			if intent.Verb != "fertilize" {
				t.Fatalf("expected fertilize verb, got %q", intent.Verb)
			}
			if len(intent.Args) != 1 || intent.Args[0] != tc.want {
				t.Fatalf("expected nutrient %s, got %+v", tc.want, intent.Args)
			}
		})
	}
}

func TestFertilizeWithoutNutrientAsks(t *testing.T) {
	p := New()
	intent := p.Parse(plantCtx, "fertilize")
	if intent.Clarify == nil {
		t.Fatalf("expected clarify for missing nutrient")
	}
	if len(intent.Clarify.Options) != 3 {
		t.Fatalf("expected N/P/K options, got %d", len(intent.Clarify.Options))
	}
}

func TestFertilizeUnknownNutrientAsks(t *testing.T) {
	p := New()
	intent := p.Parse(plantCtx, "fertilize x")
	if intent.Clarify == nil {
		t.Fatalf("expected clarify for unknown nutrient")
	}
	if len(intent.Args) != 0 {
		t.Fatalf("expected no resolved args, got %+v", intent.Args)
	}
}

func TestPronounReusesLastNutrient(t *testing.T) {
	p := New()
	ctx := plantCtx
	ctx.LastNutrient = "P"
	intent := p.Parse(ctx, "feed again")
	if len(intent.Args) != 1 || intent.Args[0] != "P" {
		t.Fatalf("expected pronoun to resolve to P, got %+v", intent.Args)
	}
}

func TestSelectResolvesSpeciesPrefix(t *testing.T) {
	p := New()
	intent := p.Parse(plantCtx, "select ros")
	if intent.Verb != "select" {
		t.Fatalf("expected select verb, got %q", intent.Verb)
	}
	if len(intent.Args) != 1 || intent.Args[0] != "rose" {
		t.Fatalf("expected rose, got %+v", intent.Args)
	}
}

func TestSelectWithoutSpeciesListsOptions(t *testing.T) {
	p := New()
	intent := p.Parse(plantCtx, "select")
	if intent.Clarify == nil {
		t.Fatalf("expected clarify for missing species")
	}
	if len(intent.Clarify.Options) != 3 {
		t.Fatalf("expected one option per species, got %d", len(intent.Clarify.Options))
	}
}

func TestQuantityIsSplitFromArgs(t *testing.T) {
	p := New()
	intent := p.Parse(plantCtx, "next 3")
	if intent.Verb != "next" {
		t.Fatalf("expected next verb, got %q", intent.Verb)
	}
	if intent.Quantity == nil || intent.Quantity.N != 3 {
		t.Fatalf("expected quantity 3, got %+v", intent.Quantity)
	}
}

func TestFreeTextInference(t *testing.T) {
	tests := []struct {
		in   string
		verb string
	}{
		{in: "the plant is thirsty", verb: "water"},
		{in: "it is too cold in here", verb: "warm"},
		{in: "how is my plant", verb: "status"},
	}
	p := New()
	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			intent := p.Parse(plantCtx, tc.in)
			if intent.Verb != tc.verb {
				t.Fatalf("expected %s inference, got %q", tc.verb, intent.Verb)
			}
		})
	}
}

func TestGibberishAsksForClarification(t *testing.T) {
	p := New()
	intent := p.Parse(plantCtx, "xyzzy")
	if intent.Kind != Unknown || intent.Clarify == nil {
		t.Fatalf("expected unknown intent with clarify, got %+v", intent)
	}
}

func TestIntentToCommandString(t *testing.T) {
	got := IntentToCommandString(Intent{Verb: "fertilize", Args: []string{"K"}})
	if got != "fertilize k" {
		t.Fatalf("expected \"fertilize k\", got %q", got)
	}
}

func TestCommandsFollowVerbOrder(t *testing.T) {
	p := New()
	verbs := p.Verbs()
	cmds := p.Commands()
	if len(cmds) != len(verbs) {
		t.Fatalf("expected %d commands, got %d", len(verbs), len(cmds))
	}
	for i, c := range cmds {
		if c.Canonical != verbs[i] {
			t.Fatalf("command %d: expected %q, got %q", i, verbs[i], c.Canonical)
		}
	}
	if cmds[0].Canonical != "help" || len(cmds[0].Aliases) == 0 {
		t.Fatalf("expected help with aliases first, got %+v", cmds[0])
	}
}
