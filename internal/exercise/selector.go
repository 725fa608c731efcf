package exercise

import (
	"strings"
	"unicode/utf8"

	"github.com/abhisek/vocatinder/internal/annotate"
	"github.com/abhisek/vocatinder/internal/gender"
)

// minTargetLen filters out short function-adjacent nouns whose gender
// cues tend to be ambiguous.
const minTargetLen = 3

// scoreArticles are the determiners that make a noun an unambiguous
// teaching target when directly adjacent.
var scoreArticles = map[string]bool{"le": true, "la": true, "un": true, "une": true}

// articleWindow is how far back the selector looks for the noun's
// article context.
const articleWindow = 3

// contextDeterminers are the gender-bearing words recorded as article
// context on a candidate.
var contextDeterminers = map[string]bool{
	"le": true, "la": true, "un": true, "une": true, "du": true, "au": true,
}

// Candidates extracts every eligible noun from the token stream, with
// gender resolved and educational score assigned. Order follows the
// sentence left to right.
func Candidates(tokens []annotate.Token) []NounCandidate {
	var out []NounCandidate

	for i, tok := range tokens {
		if tok.POS != "NOUN" || utf8.RuneCountInString(tok.Text) < minTargetLen {
			continue
		}

		c := NounCandidate{
			Word:     tok.Text,
			Lemma:    tok.Lemma,
			Gender:   gender.Classify(tokens, i),
			Article:  articleContext(tokens, i),
			Dep:      tok.Dep,
			Position: tok.Index,
		}
		c.Score = score(tokens, i, c)
		out = append(out, c)
	}

	return out
}

// PickBest returns the highest-scoring candidate. Ties keep the first
// candidate in sentence order so selection stays deterministic.
func PickBest(candidates []NounCandidate) (NounCandidate, error) {
	if len(candidates) == 0 {
		return NounCandidate{}, ErrNoCandidateNouns
	}

	best := candidates[0]
	for _, c := range candidates[1:] {
		if c.Score > best.Score {
			best = c
		}
	}
	return best, nil
}

// score rates a candidate's educational value: +3 for a directly
// adjacent core article, +2 for subject or direct-object role, +1 for
// early sentence position.
func score(tokens []annotate.Token, i int, c NounCandidate) int {
	s := 0

	if i > 0 && scoreArticles[strings.ToLower(tokens[i-1].Text)] {
		s += 3
	}
	switch c.Dep {
	case "nsubj", "obj", "dobj":
		s += 2
	}
	if c.Position < 5 {
		s++
	}

	return s
}

// articleContext returns the nearest gender-bearing determiner within
// the window before the noun.
func articleContext(tokens []annotate.Token, i int) string {
	lo := i - articleWindow
	if lo < 0 {
		lo = 0
	}
	for j := i - 1; j >= lo; j-- {
		if contextDeterminers[strings.ToLower(tokens[j].Text)] {
			return tokens[j].Text
		}
	}
	return ""
}
