package exercise

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// longWordLen is the character threshold above which a word counts as
// "long" for complexity purposes.
const longWordLen = 8

// clauseMarkers introduce subordinate clauses; beginner headlines must
// have none.
var clauseMarkers = map[string]bool{
	"que": true, "qui": true, "dont": true, "où": true,
	"quand": true, "lorsque": true, "parce": true, "puisque": true,
}

// complexity captures the features the level bands filter on.
type complexity struct {
	words     int
	longWords int
	clauses   int
}

func measure(headline string) complexity {
	var c complexity
	for _, f := range strings.Fields(headline) {
		word := strings.TrimFunc(f, func(r rune) bool { return !unicode.IsLetter(r) })
		if word == "" {
			continue
		}
		c.words++
		if utf8.RuneCountInString(word) > longWordLen {
			c.longWords++
		}
		if clauseMarkers[strings.ToLower(word)] {
			c.clauses++
		}
	}
	return c
}

// fitsLevel reports whether a headline falls in the complexity band for
// the level.
//
// beginner: 3-10 words, at most 2 long words, no subordinate clauses.
// intermediate: 5-15 words, at most 4 long words.
// advanced: at least 6 words.
func fitsLevel(headline string, level Level) bool {
	c := measure(headline)
	switch level {
	case LevelIntermediate:
		return c.words >= 5 && c.words <= 15 && c.longWords <= 4
	case LevelAdvanced:
		return c.words >= 6
	default:
		return c.words >= 3 && c.words <= 10 && c.longWords <= 2 && c.clauses == 0
	}
}

// filterByLevel keeps the headlines in the level's complexity band,
// preserving order.
func filterByLevel(headlines []string, level Level) []string {
	out := make([]string, 0, len(headlines))
	for _, h := range headlines {
		if fitsLevel(h, level) {
			out = append(out, h)
		}
	}
	return out
}
