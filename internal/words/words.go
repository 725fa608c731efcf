// Package words generates the gendered noun deck used by the swipe
// frontend. The deck comes from the LLM as a structured noun list.
package words

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/abhisek/vocatinder/internal/gender"
	"github.com/abhisek/vocatinder/internal/llm"
)

const (
	// DefaultCount is the deck size handed to the frontend.
	DefaultCount = 30

	maxTokens   = 1000
	temperature = 0.7
)

// Word is a single deck entry.
type Word struct {
	Word   string        `json:"word"`
	Gender gender.Gender `json:"gender"`
}

// nounListSchema constrains the LLM output to a deduplicatable list.
func nounListSchema() *llm.Schema {
	return &llm.Schema{
		Name:        "french-noun-list",
		Description: "A list of common French nouns with their grammatical gender",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"words": map[string]any{
					"type": "array",
					"items": map[string]any{
						"type": "object",
						"properties": map[string]any{
							"word":   map[string]any{"type": "string"},
							"gender": map[string]any{"type": "string", "enum": []any{"masculine", "feminine"}},
						},
						"required": []any{"word", "gender"},
					},
				},
			},
			"required": []any{"words"},
		},
	}
}

const deckPrompt = `Generate exactly 100 common French nouns with their gender.

Rules:
- Only include common, everyday French nouns
- No proper nouns or names
- Words must span across daily life: home, work, school, groceries, transport, health, objects, technology, food, street, conversations, etc.
- Ensure diversity: include a mix of indoor/outdoor, physical/abstract, personal/public, and family/social concepts
- Do not include regional slang, archaic, or rare terms
- Make the selection unpredictable and balanced
- Do not repeat words in the same sample
- Gender must be exactly "masculine" or "feminine"
- Always a balanced mix of masculine and feminine nouns
- Words should be suitable for French learners to improve everyday vocabulary`

// Generator produces word decks from an LLM provider.
type Generator struct {
	provider llm.Provider
}

// NewGenerator creates a Generator. The provider must be non-nil; deck
// generation has no offline fallback.
func NewGenerator(provider llm.Provider) *Generator {
	return &Generator{provider: provider}
}

// Generate asks the LLM for a noun deck of at least count words,
// deduplicated case-insensitively. Fewer than count valid words is an
// error.
func (g *Generator) Generate(ctx context.Context, count int) ([]Word, error) {
	if g.provider == nil {
		return nil, fmt.Errorf("no LLM provider configured")
	}
	if count <= 0 {
		count = DefaultCount
	}

	ctx = llm.WithPurpose(ctx, "word-deck")
	resp, err := g.provider.Generate(ctx, llm.Request{
		Messages:    []llm.Message{{Role: llm.RoleUser, Content: deckPrompt}},
		MaxTokens:   maxTokens,
		Temperature: temperature,
		Schema:      nounListSchema(),
	})
	if err != nil {
		return nil, fmt.Errorf("generate word deck: %w", err)
	}

	var parsed struct {
		Words []Word `json:"words"`
	}
	if err := json.Unmarshal(resp.Content, &parsed); err != nil {
		return nil, fmt.Errorf("decode word deck: %w", err)
	}

	deck := dedupe(parsed.Words)
	if len(deck) < count {
		return nil, fmt.Errorf("not enough valid words generated: got %d, want %d", len(deck), count)
	}
	return deck[:count], nil
}

// dedupe keeps the first occurrence of each word and drops entries
// with an empty word or an unknown gender value.
func dedupe(words []Word) []Word {
	seen := make(map[string]bool, len(words))
	var out []Word
	for _, w := range words {
		w.Word = strings.TrimSpace(w.Word)
		if w.Word == "" {
			continue
		}
		if w.Gender != gender.Masculine && w.Gender != gender.Feminine {
			continue
		}
		key := strings.ToLower(w.Word)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, w)
	}
	return out
}
