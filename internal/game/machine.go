package game

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/abhisek/vocatinder/internal/exercise"
	"github.com/abhisek/vocatinder/internal/gender"
)

// Explainer annotates feedback with short teaching explanations. The
// implementation must degrade internally: it always returns usable
// text, never an error.
type Explainer interface {
	ExplainGender(ctx context.Context, word string, g gender.Gender) string
	ExplainSentenceError(ctx context.Context, sentence, word string, g gender.Gender) string
}

// Machine owns session sequencing, round transitions, and scoring.
type Machine struct {
	sessions  Store
	explainer Explainer
}

// NewMachine creates a state machine over the given session store.
func NewMachine(sessions Store, explainer Explainer) *Machine {
	return &Machine{sessions: sessions, explainer: explainer}
}

// StartSession allocates a session for the challenge list and returns
// it with the first sentence-check round.
func (m *Machine) StartSession(challenges []exercise.Challenge) (*Session, Round, error) {
	if len(challenges) == 0 {
		return nil, Round{}, fmt.Errorf("cannot start a session with no challenges")
	}

	s := &Session{
		ID:         uuid.New().String(),
		Challenges: challenges,
		Phase:      RoundSentenceCheck,
	}
	if err := m.sessions.Save(s); err != nil {
		return nil, Round{}, fmt.Errorf("save session: %w", err)
	}

	log.Info().Str("session", s.ID).Int("challenges", len(challenges)).Msg("session started")
	return s, sentenceRound(s.ID, challenges[0], 0), nil
}

// SubmitAnswer evaluates a swipe for the round identified by roundID
// and advances the session.
//
// A sentence-check answer is scored, then the word-check round for the
// same challenge is always emitted next: grammar judgment and gender
// identification are tested independently. A word-check answer is
// scored, then the session advances to the next challenge's
// sentence-check round, or completes when none remain.
func (m *Machine) SubmitAnswer(ctx context.Context, roundID, choice string) (Feedback, error) {
	sessionID, roundType, index, err := DecodeRoundID(roundID)
	if err != nil {
		return Feedback{}, err
	}

	s, err := m.sessions.Get(sessionID)
	if err != nil {
		return Feedback{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.Completed() || index != s.Index || roundType != s.Phase {
		return Feedback{}, ErrStaleRound
	}

	ch := s.Challenges[index]
	if roundType == RoundSentenceCheck {
		return m.scoreSentence(ctx, s, ch, index, choice), nil
	}
	return m.scoreWord(ctx, s, ch, index, choice), nil
}

// scoreSentence evaluates a sentence-check swipe. Right accepts the
// displayed grammar as correct.
func (m *Machine) scoreSentence(ctx context.Context, s *Session, ch exercise.Challenge, index int, choice string) Feedback {
	accepted := choice == ChoiceRight
	correct := accepted == ch.IsCorrect
	if correct {
		s.Score++
	}

	fb := Feedback{
		IsCorrect: correct,
		Score:     s.Score,
	}

	if ch.IsCorrect {
		fb.CorrectAnswer = "Correct grammar"
	} else {
		fb.CorrectAnswer = "The sentence had incorrect gender agreement"
	}

	switch {
	case correct:
		fb.Explanation = "Correct! Now identify the gender of this word:"
	case ch.IsCorrect:
		fb.Explanation = fmt.Sprintf("This sentence was grammatically correct: %q agrees with its determiners.", ch.Target.Word)
	default:
		fb.Explanation = m.explainer.ExplainSentenceError(ctx, ch.Display, ch.Target.Word, ch.Target.Gender)
	}

	s.Phase = RoundWordCheck
	next := wordRound(s.ID, ch, index)
	fb.NextRound = &next
	return fb
}

// scoreWord evaluates a word-check swipe (right = masculine), then
// advances the session.
func (m *Machine) scoreWord(ctx context.Context, s *Session, ch exercise.Challenge, index int, choice string) Feedback {
	var answered gender.Gender
	if choice == ChoiceRight {
		answered = gender.Masculine
	} else {
		answered = gender.Feminine
	}

	correct := answered == ch.Target.Gender
	if correct {
		s.Score++
	}

	s.Index++
	s.Phase = RoundSentenceCheck

	fb := Feedback{
		IsCorrect:     correct,
		Score:         s.Score,
		CorrectAnswer: fmt.Sprintf("%s (%s)", ch.Target.Gender, ch.Target.Gender.Article()),
		Explanation:   m.explainer.ExplainGender(ctx, ch.Target.Word, ch.Target.Gender),
	}

	if s.Completed() {
		fb.Completed = true
		log.Info().Str("session", s.ID).Int("score", s.Score).Msg("session completed")
		return fb
	}

	next := sentenceRound(s.ID, s.Challenges[s.Index], s.Index)
	fb.NextRound = &next
	return fb
}

// GetStatus returns a progress snapshot without mutating state.
func (m *Machine) GetStatus(sessionID string) (Status, error) {
	s, err := m.sessions.Get(sessionID)
	if err != nil {
		return Status{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	total := len(s.Challenges)
	st := Status{
		SessionID: s.ID,
		Current:   s.Index,
		Total:     total,
		Score:     s.Score,
	}
	if total > 0 {
		st.Progress = float64(s.Index) / float64(total) * 100
	}
	return st, nil
}

func sentenceRound(sessionID string, ch exercise.Challenge, index int) Round {
	return Round{
		RoundID:       EncodeRoundID(sessionID, RoundSentenceCheck, index),
		RoundType:     RoundSentenceCheck,
		DisplayText:   ch.Display,
		TargetWord:    ch.Target.Word,
		CorrectAnswer: ch.IsCorrect,
		Options:       sentenceOptions,
	}
}

func wordRound(sessionID string, ch exercise.Challenge, index int) Round {
	return Round{
		RoundID:       EncodeRoundID(sessionID, RoundWordCheck, index),
		RoundType:     RoundWordCheck,
		DisplayText:   ch.Target.Word,
		TargetWord:    ch.Target.Word,
		CorrectAnswer: ch.Target.Gender == gender.Masculine,
		Options:       wordOptions,
	}
}
