// Package exercise turns French news headlines into grammar challenges.
//
// A challenge pairs a headline with a possibly gender-corrupted display
// form and a ground-truth target noun. Generation runs through a tiered
// selection strategy (LLM agent overlay → heuristic scoring) and a
// corruption step that flips determiners on a coin toss.
package exercise

import (
	"errors"

	"github.com/abhisek/vocatinder/internal/gender"
)

// Level is the learner's proficiency band, used for headline complexity
// filtering.
type Level string

const (
	LevelBeginner     Level = "beginner"
	LevelIntermediate Level = "intermediate"
	LevelAdvanced     Level = "advanced"
)

// ParseLevel normalizes a level string, defaulting to beginner.
func ParseLevel(s string) Level {
	switch Level(s) {
	case LevelIntermediate:
		return LevelIntermediate
	case LevelAdvanced:
		return LevelAdvanced
	default:
		return LevelBeginner
	}
}

// NounCandidate is a noun the selector considered as a learning target.
// Candidates are scratch data: once a target is picked for a challenge
// the rest are discarded.
type NounCandidate struct {
	// Word is the surface form of the noun.
	Word string

	// Lemma is the dictionary form.
	Lemma string

	// Gender is the resolved grammatical gender, never unknown.
	Gender gender.Gender

	// Article is the nearest gender-bearing determiner preceding the
	// noun, empty when none was found in the window.
	Article string

	// Dep is the noun's dependency label.
	Dep string

	// Position is the noun's token index in the sentence.
	Position int

	// Score is the educational-value score assigned by the selector.
	Score int
}

// Challenge is one generated exercise. Immutable once created.
type Challenge struct {
	// Original is the untouched headline.
	Original string

	// Display is what the learner sees: either Original or its
	// corrupted variant.
	Display string

	// Target is the noun the word-check round asks about.
	Target NounCandidate

	// IsCorrect is true when Display has correct gender agreement.
	IsCorrect bool
}

// ErrNoCandidateNouns reports a sentence with no eligible noun. The
// pipeline skips such sentences; other callers fall back to static data.
var ErrNoCandidateNouns = errors.New("no candidate nouns in sentence")
