// Package cities canonicalizes free-text metro identifiers and carries the
// static lookup tables used for coordinate enrichment.
package cities

import (
	"regexp"
	"strings"
)

// dashPattern matches the dash variants that show up in scraped metro names
// (en dash, em dash, plain hyphen).
var dashPattern = regexp.MustCompile(`[\x{2013}\x{2014}-]`)

// Normalize lowercases and trims a city string, unifies dash variants to a
// single hyphen and collapses whitespace runs to one space. Empty input
// passes through unchanged.
func Normalize(s string) string {
	if s == "" {
		return s
	}

	s = strings.ToLower(strings.TrimSpace(s))
	s = dashPattern.ReplaceAllString(s, "-")
	s = strings.Join(strings.Fields(s), " ")

	return s
}

// cityAliases rewrites known mismatched metro spellings to the spelling used
// by the metro table. Keys and values are stored in normalized form so that
// lookups happen after Normalize.
var cityAliases = buildAliases(map[string]string{
	"las vegas-henderson-paradise":        "las vegas-henderson-north las vegas",
	"denver-aurora-lakewood":              "denver-aurora-centennial",
	"houston-the woodlands-sugar land":    "houston-pasadena-the woodlands",
	"austin-round rock-georgetown":        "austin-round rock-san marcos",
	"miami-fort lauderdale-pompano beach": "miami-fort lauderdale-west palm beach",
	"san francisco-oakland-berkeley":      "san francisco-oakland-fremont",
	"dc_metro":                            "washington-arlington-alexandria",
	"atlanta-sandy springs-alpharetta":    "atlanta-sandy springs-roswell",
})

func buildAliases(raw map[string]string) map[string]string {
	aliases := make(map[string]string, len(raw))
	for alias, canonical := range raw {
		aliases[Normalize(alias)] = Normalize(canonical)
	}

	return aliases
}

// Canonical normalizes a city string and rewrites known aliases to the
// canonical metro spelling. Unmapped values pass through unchanged, so the
// function is idempotent.
func Canonical(s string) string {
	normalized := Normalize(s)
	if canonical, ok := cityAliases[normalized]; ok {
		return canonical
	}

	return normalized
}
