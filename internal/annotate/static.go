package annotate

import (
	"context"
	"strings"
	"unicode"
)

// functionWords maps closed-class French words to their POS tag. Anything
// not listed is treated as a noun, which is good enough for the offline
// preview tool and for tests. Real deployments use the sidecar Client.
var functionWords = map[string]string{
	"le": "DET", "la": "DET", "les": "DET", "un": "DET", "une": "DET",
	"des": "DET", "du": "DET", "au": "DET", "aux": "DET",
	"ce": "DET", "cet": "DET", "cette": "DET", "ces": "DET",
	"mon": "DET", "ton": "DET", "son": "DET", "ma": "DET", "ta": "DET", "sa": "DET",
	"de": "ADP", "à": "ADP", "en": "ADP", "dans": "ADP", "sur": "ADP",
	"pour": "ADP", "avec": "ADP", "par": "ADP", "devant": "ADP",
	"et": "CCONJ", "ou": "CCONJ", "mais": "CCONJ",
	"que": "SCONJ", "qui": "PRON", "ne": "ADV", "pas": "ADV", "plus": "ADV",
	"est": "VERB", "sont": "VERB", "a": "VERB", "ont": "VERB",
	"mange": "VERB", "donne": "VERB", "annonce": "VERB",
}

// Static is a deterministic, dependency-free Annotator.
type Static struct{}

// NewStatic returns a Static annotator.
func NewStatic() *Static { return &Static{} }

// Annotate tokenizes on whitespace, strips punctuation, and tags each
// token from the function-word table, defaulting to NOUN. The first noun
// is marked as the subject so candidate scoring has something to work
// with.
func (s *Static) Annotate(_ context.Context, text string) ([]Token, error) {
	fields := strings.Fields(text)
	tokens := make([]Token, 0, len(fields))

	sawNoun := false
	for _, f := range fields {
		word := strings.TrimFunc(f, func(r rune) bool {
			return !unicode.IsLetter(r) && !unicode.IsNumber(r) && r != '\''
		})
		if word == "" {
			continue
		}

		// Split elisions like "l'éducation" into the article and the noun.
		if i := strings.IndexRune(word, '\''); i >= 0 && i < len(word)-1 {
			word = word[i+1:]
		}

		pos, ok := functionWords[strings.ToLower(word)]
		if !ok {
			pos = "NOUN"
		}

		tok := Token{
			Text:  word,
			Lemma: strings.ToLower(word),
			POS:   pos,
			Index: len(tokens),
		}
		if pos == "NOUN" && !sawNoun {
			tok.Dep = "nsubj"
			sawNoun = true
		}
		tokens = append(tokens, tok)
	}

	return tokens, nil
}
