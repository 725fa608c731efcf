package exercise

import (
	"testing"

	"github.com/abhisek/vocatinder/internal/annotate"
	"github.com/abhisek/vocatinder/internal/gender"
)

func tok(text, pos, dep string, idx int) annotate.Token {
	return annotate.Token{Text: text, Lemma: text, POS: pos, Dep: dep, Index: idx}
}

func TestCandidates_Eligibility(t *testing.T) {
	tokens := []annotate.Token{
		tok("Le", "DET", "det", 0),
		tok("chat", "NOUN", "nsubj", 1),
		tok("vu", "VERB", "", 2),
		tok("du", "DET", "det", 3),
		tok("toit", "NOUN", "obj", 4),
		tok("an", "NOUN", "", 5), // two letters: too short
	}

	cands := Candidates(tokens)
	if len(cands) != 2 {
		t.Fatalf("expected 2 candidates, got %d", len(cands))
	}
	if cands[0].Word != "chat" || cands[1].Word != "toit" {
		t.Errorf("unexpected candidates: %+v", cands)
	}
	if cands[0].Gender != gender.Masculine {
		t.Errorf("chat should be masculine via 'Le', got %q", cands[0].Gender)
	}
	if cands[0].Article != "Le" {
		t.Errorf("expected article context 'Le', got %q", cands[0].Article)
	}
}

func TestCandidates_Scoring(t *testing.T) {
	tokens := []annotate.Token{
		tok("Hier", "ADV", "", 0),
		tok("la", "DET", "det", 1),
		tok("maison", "NOUN", "nsubj", 2),
		tok("près", "ADP", "", 3),
		tok("de", "ADP", "", 4),
		tok("arbres", "NOUN", "", 5),
	}

	cands := Candidates(tokens)
	if len(cands) != 2 {
		t.Fatalf("expected 2 candidates, got %d", len(cands))
	}

	// maison: adjacent "la" (+3), nsubj (+2), position 2 < 5 (+1) = 6.
	if cands[0].Score != 6 {
		t.Errorf("maison score = %d, want 6", cands[0].Score)
	}
	// arbres: no adjacent article, no core dep, position 5 = 0.
	if cands[1].Score != 0 {
		t.Errorf("arbres score = %d, want 0", cands[1].Score)
	}
}

func TestPickBest_HighestScore(t *testing.T) {
	cands := []NounCandidate{
		{Word: "a", Score: 1},
		{Word: "b", Score: 4},
		{Word: "c", Score: 2},
	}
	best, err := PickBest(cands)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if best.Word != "b" {
		t.Errorf("picked %q, want b", best.Word)
	}
}

func TestPickBest_TiesKeepSentenceOrder(t *testing.T) {
	cands := []NounCandidate{
		{Word: "premier", Score: 3},
		{Word: "second", Score: 3},
	}
	best, err := PickBest(cands)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if best.Word != "premier" {
		t.Errorf("tie should keep the first candidate, got %q", best.Word)
	}
}

func TestPickBest_Empty(t *testing.T) {
	if _, err := PickBest(nil); err != ErrNoCandidateNouns {
		t.Errorf("expected ErrNoCandidateNouns, got %v", err)
	}
}
