// Package feedback produces short teaching explanations for quiz
// answers, backed by an LLM when one is configured.
package feedback

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/abhisek/vocatinder/internal/gender"
	"github.com/abhisek/vocatinder/internal/llm"
)

const (
	genderMaxTokens   = 100
	sentenceMaxTokens = 120
	temperature       = 0.3

	// requestTimeout bounds each explanation call. Feedback sits on
	// the answer path, so a slow provider must not stall the round.
	requestTimeout = 8 * time.Second
)

// Explainer explains gender rules and agreement errors. A nil provider
// is allowed: every call then returns the canned fallback text, so the
// quiz works without any LLM credential.
type Explainer struct {
	provider llm.Provider
}

// NewExplainer creates an Explainer over the given provider, which may
// be nil.
func NewExplainer(provider llm.Provider) *Explainer {
	return &Explainer{provider: provider}
}

// ExplainGender explains why a French word has the given gender.
// Always returns usable text.
func (e *Explainer) ExplainGender(ctx context.Context, word string, g gender.Gender) string {
	fallback := fmt.Sprintf("The word '%s' is %s.", word, g)
	if e.provider == nil {
		return fallback
	}

	prompt := fmt.Sprintf(`Explain in 1-2 sentences why the French word "%s" is %s.
Include any relevant grammar rules or patterns. Keep it concise and educational.
Respond in English for learning purposes.`, word, g)

	text, err := e.ask(llm.WithPurpose(ctx, "feedback-gender"), prompt, genderMaxTokens)
	if err != nil {
		log.Warn().Err(err).Str("word", word).Msg("gender explanation failed, using fallback")
		return fallback
	}
	return text
}

// ExplainSentenceError explains why a sentence has a gender agreement
// error on the given word. Always returns usable text.
func (e *Explainer) ExplainSentenceError(ctx context.Context, sentence, word string, g gender.Gender) string {
	fallback := fmt.Sprintf("Gender agreement error: '%s' should use %s articles.", word, g)
	if e.provider == nil {
		return fallback
	}

	prompt := fmt.Sprintf(`This French sentence has a gender agreement error: "%s"
The word "%s" should be %s.
Explain the error in 1-2 sentences. Keep it educational and concise.
Respond in English.`, sentence, word, g)

	text, err := e.ask(llm.WithPurpose(ctx, "feedback-sentence"), prompt, sentenceMaxTokens)
	if err != nil {
		log.Warn().Err(err).Str("word", word).Msg("sentence explanation failed, using fallback")
		return fallback
	}
	return text
}

func (e *Explainer) ask(ctx context.Context, prompt string, maxTokens int) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	resp, err := e.provider.Generate(ctx, llm.Request{
		Messages:    []llm.Message{{Role: llm.RoleUser, Content: prompt}},
		MaxTokens:   maxTokens,
		Temperature: temperature,
	})
	if err != nil {
		return "", err
	}

	text := strings.TrimSpace(string(resp.Content))
	if text == "" {
		return "", fmt.Errorf("empty explanation from provider")
	}
	return text, nil
}
