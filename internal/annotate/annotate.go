// Package annotate defines the linguistic annotation boundary.
//
// The service never parses French itself: it sends raw text to an
// annotation sidecar (a spaCy fr_core_news_sm model behind a small HTTP
// wrapper) and consumes the token stream it returns. The sidecar is a
// hard dependency: if it cannot be reached at startup the service
// refuses to start rather than degrade mid-pipeline.
package annotate

import "context"

// Token is a single annotated token as produced by the sidecar.
// Tokens are read-only to the rest of the system.
type Token struct {
	// Text is the surface form exactly as it appears in the sentence.
	Text string `json:"text"`

	// Lemma is the dictionary form, e.g. "chevaux" → "cheval".
	Lemma string `json:"lemma"`

	// POS is the universal part-of-speech tag: "NOUN", "DET", "VERB", ...
	POS string `json:"pos"`

	// Dep is the dependency relation to the token's head: "nsubj",
	// "obj", "det", ... Empty when the parser did not assign one.
	Dep string `json:"dep"`

	// Index is the token's position in the sentence, starting at 0.
	Index int `json:"index"`

	// MorphGender is the morphological gender feature when the model
	// attached one: "Masc", "Fem", or empty.
	MorphGender string `json:"morph_gender"`
}

// Annotator produces annotated tokens for raw text.
type Annotator interface {
	Annotate(ctx context.Context, text string) ([]Token, error)
}
