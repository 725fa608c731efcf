package words

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/abhisek/vocatinder/internal/gender"
	"github.com/abhisek/vocatinder/internal/llm"
)

func deckJSON(t *testing.T, words []Word) json.RawMessage {
	t.Helper()
	raw, err := json.Marshal(map[string]any{"words": words})
	if err != nil {
		t.Fatalf("marshal deck: %v", err)
	}
	return raw
}

func sampleDeck(n int) []Word {
	deck := make([]Word, n)
	for i := range deck {
		g := gender.Masculine
		if i%2 == 1 {
			g = gender.Feminine
		}
		deck[i] = Word{Word: fmt.Sprintf("mot%d", i), Gender: g}
	}
	return deck
}

func TestGenerate_HappyPath(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: deckJSON(t, sampleDeck(40))},
	)
	g := NewGenerator(mock)

	deck, err := g.Generate(context.Background(), 30)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(deck) != 30 {
		t.Fatalf("expected 30 words, got %d", len(deck))
	}
	if mock.Calls[0].Schema == nil {
		t.Fatal("expected a structured-output schema on the request")
	}
	if !strings.Contains(mock.Calls[0].Messages[0].Content, "French nouns") {
		t.Errorf("unexpected prompt: %q", mock.Calls[0].Messages[0].Content)
	}
}

func TestGenerate_DeduplicatesCaseInsensitively(t *testing.T) {
	deck := sampleDeck(35)
	deck = append(deck,
		Word{Word: "Mot0", Gender: gender.Masculine}, // duplicate of mot0
		Word{Word: "mot1", Gender: gender.Feminine},  // duplicate of mot1
	)
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: deckJSON(t, deck)},
	)
	g := NewGenerator(mock)

	got, err := g.Generate(context.Background(), 35)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	seen := map[string]bool{}
	for _, w := range got {
		key := strings.ToLower(w.Word)
		if seen[key] {
			t.Fatalf("duplicate word in deck: %q", w.Word)
		}
		seen[key] = true
	}
}

func TestGenerate_DropsInvalidEntries(t *testing.T) {
	deck := sampleDeck(30)
	deck = append(deck,
		Word{Word: "", Gender: gender.Masculine},
		Word{Word: "truc", Gender: "neuter"},
	)
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: deckJSON(t, deck)},
	)
	g := NewGenerator(mock)

	got, err := g.Generate(context.Background(), 30)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, w := range got {
		if w.Word == "" || w.Word == "truc" {
			t.Fatalf("invalid entry survived: %+v", w)
		}
	}
}

func TestGenerate_TooFewWordsIsError(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: deckJSON(t, sampleDeck(10))},
	)
	g := NewGenerator(mock)

	_, err := g.Generate(context.Background(), 30)
	if err == nil {
		t.Fatal("expected error for short deck")
	}
}

func TestGenerate_ProviderErrorPropagates(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Err: errors.New("boom")},
	)
	g := NewGenerator(mock)

	_, err := g.Generate(context.Background(), 30)
	if err == nil {
		t.Fatal("expected error")
	}
}

func TestGenerate_NilProviderIsError(t *testing.T) {
	g := NewGenerator(nil)
	_, err := g.Generate(context.Background(), 30)
	if err == nil {
		t.Fatal("expected error with nil provider")
	}
}
