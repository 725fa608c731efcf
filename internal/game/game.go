// Package game runs the two-round-per-challenge quiz progression.
//
// Each challenge is played as a sentence-check round (is the grammar
// right?) followed by a word-check round (what is the noun's gender?).
// Sessions are ephemeral process-lifetime state held in an injected
// store; each session serializes its own mutations behind a mutex so
// concurrent submissions cannot lose score or index updates.
package game

import (
	"errors"
	"sync"

	"github.com/abhisek/vocatinder/internal/exercise"
)

// RoundType distinguishes the two question kinds derived from a challenge.
type RoundType string

const (
	RoundSentenceCheck RoundType = "sentence_check"
	RoundWordCheck     RoundType = "word_check"
)

// Swipe choices. The wire protocol is a binary swipe; what each side
// means comes from the round's Options map.
const (
	ChoiceLeft  = "left"
	ChoiceRight = "right"
)

// Option labels, fixed per round type. For sentence checks the right
// swipe accepts the grammar as correct; for word checks the right swipe
// answers masculine.
var (
	sentenceOptions = map[string]string{
		ChoiceLeft:  "Incorrect Grammar",
		ChoiceRight: "Correct Grammar",
	}
	wordOptions = map[string]string{
		ChoiceLeft:  "Feminine (LA)",
		ChoiceRight: "Masculine (LE)",
	}
)

// Round is the wire-level projection of one question. It is derived
// from a challenge on demand, never stored.
type Round struct {
	RoundID       string            `json:"round_id"`
	RoundType     RoundType         `json:"round_type"`
	DisplayText   string            `json:"display_text"`
	TargetWord    string            `json:"target_word"`
	CorrectAnswer bool              `json:"correct_answer"`
	Options       map[string]string `json:"options"`
}

// Feedback is the response to a submitted answer.
type Feedback struct {
	IsCorrect     bool   `json:"is_correct"`
	Explanation   string `json:"explanation"`
	CorrectAnswer string `json:"correct_answer"`
	Score         int    `json:"score"`
	Completed     bool   `json:"completed"`

	// NextRound is absent exactly when the session just completed.
	NextRound *Round `json:"next_round,omitempty"`
}

// Status is a read-only progress snapshot.
type Status struct {
	SessionID string  `json:"session_id"`
	Current   int     `json:"current"`
	Total     int     `json:"total"`
	Score     int     `json:"score"`
	Progress  float64 `json:"progress"`
}

// Session is one player's run through an ordered challenge list.
//
// Index only moves forward, one step at a time, and only after the
// word-check round of a challenge. Score only grows, by at most one per
// round. The session is completed exactly when Index reaches the
// challenge count.
type Session struct {
	mu sync.Mutex

	ID         string
	Challenges []exercise.Challenge
	Index      int
	Score      int

	// Phase is the round type the session expects next for the current
	// challenge. Submissions for any other round are rejected so a
	// replayed round can never score twice.
	Phase RoundType
}

// Completed reports whether every challenge has been played.
func (s *Session) Completed() bool {
	return s.Index >= len(s.Challenges)
}

// ErrSessionNotFound reports an unknown session or round id. Surfaced
// to the caller as a client error, never retried.
var ErrSessionNotFound = errors.New("session not found")

// ErrStaleRound reports a round id that does not match the session's
// current progress (a replayed or out-of-order submission).
var ErrStaleRound = errors.New("round does not match session progress")
