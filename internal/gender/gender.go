// Package gender resolves the grammatical gender of French nouns.
//
// The classifier never answers "unknown". It works through four tiers of
// decreasing confidence (determiner context, morphological features,
// suffix patterns, and finally the masculine default) so that every
// noun gets a binary label. Both the agent path and the heuristic path
// call the same classifier; a word must receive the same gender no
// matter which path produced the exercise.
package gender

import (
	"strings"

	"github.com/abhisek/vocatinder/internal/annotate"
)

// Gender is one of exactly two values. There is no unknown.
type Gender string

const (
	Masculine Gender = "masculine"
	Feminine  Gender = "feminine"
)

// Article returns the definite article for the gender.
func (g Gender) Article() string {
	if g == Feminine {
		return "la"
	}
	return "le"
}

// contextWindow is how many tokens on each side of the noun are scanned
// for determiner evidence.
const contextWindow = 3

// Determiners and possessives whose form pins the gender. The contracted
// forms "de la" / "à la" resolve through their final "la".
var (
	masculineMarkers = map[string]bool{
		"le": true, "du": true, "au": true, "un": true,
		"ce": true, "cet": true, "mon": true, "ton": true, "son": true,
	}
	feminineMarkers = map[string]bool{
		"la": true, "une": true, "cette": true,
		"ma": true, "ta": true, "sa": true,
	}
)

// Suffix tables, strongest patterns only. Checked longest-match-first is
// unnecessary: no feminine suffix is a suffix of a masculine one.
var (
	feminineSuffixes  = []string{"tion", "sion", "ure", "ence", "ance", "ette", "elle", "esse"}
	masculineSuffixes = []string{"ment", "age", "isme", "eau", "ou"}
)

// Classify resolves the gender of the noun at idx within tokens.
//
// Tier 1 scans outward from the noun for determiner markers, nearest
// token first, so direct lexical evidence always wins. Tier 2 trusts the
// annotator's morphological feature. Tier 3 falls back to suffix
// patterns, and tier 4 defaults to masculine, the statistically more
// common gender in French.
func Classify(tokens []annotate.Token, idx int) Gender {
	if idx < 0 || idx >= len(tokens) {
		return Masculine
	}

	// Tier 1: determiner context, scanning outward.
	for dist := 1; dist <= contextWindow; dist++ {
		if g, ok := markerAt(tokens, idx-dist); ok {
			return g
		}
		if g, ok := markerAt(tokens, idx+dist); ok {
			return g
		}
	}

	// Tier 2: morphological feature from the annotator.
	if m := tokens[idx].MorphGender; m != "" {
		if strings.Contains(m, "Masc") {
			return Masculine
		}
		return Feminine
	}

	// Tier 3: suffix patterns.
	word := strings.ToLower(tokens[idx].Text)
	for _, s := range feminineSuffixes {
		if strings.HasSuffix(word, s) {
			return Feminine
		}
	}
	for _, s := range masculineSuffixes {
		if strings.HasSuffix(word, s) {
			return Masculine
		}
	}

	// Tier 4: masculine default.
	return Masculine
}

func markerAt(tokens []annotate.Token, i int) (Gender, bool) {
	if i < 0 || i >= len(tokens) {
		return "", false
	}
	w := strings.ToLower(tokens[i].Text)
	switch {
	case masculineMarkers[w]:
		return Masculine, true
	case feminineMarkers[w]:
		return Feminine, true
	}
	return "", false
}
