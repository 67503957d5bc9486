package parser

import (
	"regexp"
	"strconv"
	"strings"
)

var multiSpaceRE = regexp.MustCompile(`\s+`)

func normaliseInput(raw string) string {
	raw = strings.TrimSpace(strings.ToLower(raw))
	if raw == "" {
		return ""
	}
	var b strings.Builder
	lastSpace := false
	for _, r := range raw {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
			lastSpace = false
			continue
		}
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' || r == '-' || r == '_' || r == '/' || r == '\'' {
			if !lastSpace {
				b.WriteByte(' ')
			}
			lastSpace = true
		}
	}
	return strings.TrimSpace(multiSpaceRE.ReplaceAllString(b.String(), " "))
}

func tokenise(normalised string) []string {
	if strings.TrimSpace(normalised) == "" {
		return nil
	}
	return strings.Fields(normalised)
}

func parseQuantityToken(token string) *Quantity {
	token = strings.TrimSpace(strings.ToLower(token))
	if token == "" {
		return nil
	}
	if n, err := strconv.Atoi(token); err == nil && n > 0 {
		return &Quantity{Raw: token, N: n}
	}
	if strings.HasSuffix(token, "x") {
		if n, err := strconv.Atoi(strings.TrimSuffix(token, "x")); err == nil && n > 0 {
			return &Quantity{Raw: token, N: n}
		}
	}
	return nil
}

func isPronoun(token string) bool {
	switch strings.ToLower(strings.TrimSpace(token)) {
	case "it", "that", "again", "same":
		return true
	default:
		return false
	}
}

var nutrientNames = []string{"nitrogen", "phosphorus", "potassium"}

// mapNutrient returns the canonical N, P or K for a symbol or element name.
func mapNutrient(token string) string {
	switch strings.ToLower(strings.TrimSpace(token)) {
	case "n", "nitrogen":
		return "N"
	case "p", "phosphorus", "phosphate":
		return "P"
	case "k", "potassium", "potash":
		return "K"
	default:
		return ""
	}
}
