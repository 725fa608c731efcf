package gender

import (
	"testing"

	"github.com/abhisek/vocatinder/internal/annotate"
)

func toks(words ...string) []annotate.Token {
	out := make([]annotate.Token, len(words))
	for i, w := range words {
		out[i] = annotate.Token{Text: w, Index: i}
	}
	return out
}

func TestClassify_DeterminerContext(t *testing.T) {
	tests := []struct {
		name  string
		words []string
		idx   int
		want  Gender
	}{
		{"le before", []string{"le", "chat"}, 1, Masculine},
		{"la before", []string{"la", "maison"}, 1, Feminine},
		{"une before", []string{"une", "conférence"}, 1, Feminine},
		{"du two before", []string{"du", "grand", "chantier"}, 2, Masculine},
		{"cette before", []string{"cette", "réforme"}, 1, Feminine},
		{"possessive sa", []string{"sa", "victoire"}, 1, Feminine},
		{"contracted à la", []string{"il", "va", "à", "la", "plage"}, 4, Feminine},
		{"marker after noun", []string{"chat", "le", "soir"}, 0, Masculine},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(toks(tt.words...), tt.idx); got != tt.want {
				t.Errorf("Classify(%v, %d) = %q, want %q", tt.words, tt.idx, got, tt.want)
			}
		})
	}
}

func TestClassify_NearestMarkerWins(t *testing.T) {
	// "un" is adjacent, "la" is two away: the nearer masculine marker
	// must win even though a feminine marker is inside the window.
	tokens := toks("la", "un", "livre")
	if got := Classify(tokens, 2); got != Masculine {
		t.Errorf("got %q, want masculine (nearest marker)", got)
	}
}

func TestClassify_MorphFallback(t *testing.T) {
	tokens := []annotate.Token{
		{Text: "hier", Index: 0},
		{Text: "souris", Index: 1, MorphGender: "Fem"},
	}
	if got := Classify(tokens, 1); got != Feminine {
		t.Errorf("got %q, want feminine from morph feature", got)
	}

	tokens[1].MorphGender = "Masc"
	if got := Classify(tokens, 1); got != Masculine {
		t.Errorf("got %q, want masculine from morph feature", got)
	}
}

func TestClassify_ContextOutranksMorph(t *testing.T) {
	// Determiner evidence must win over a conflicting morph feature.
	tokens := []annotate.Token{
		{Text: "la", Index: 0},
		{Text: "ministre", Index: 1, MorphGender: "Masc"},
	}
	if got := Classify(tokens, 1); got != Feminine {
		t.Errorf("got %q, want feminine from determiner context", got)
	}
}

func TestClassify_SuffixHeuristic(t *testing.T) {
	tests := []struct {
		word string
		want Gender
	}{
		{"nation", Feminine},
		{"décision", Feminine},
		{"aventure", Feminine},
		{"patience", Feminine},
		{"baguette", Feminine},
		{"gouvernement", Masculine},
		{"fromage", Masculine},
		{"tourisme", Masculine},
		{"château", Masculine},
		{"bijou", Masculine},
	}

	for _, tt := range tests {
		if got := Classify(toks(tt.word), 0); got != tt.want {
			t.Errorf("Classify(%q) = %q, want %q", tt.word, got, tt.want)
		}
	}
}

func TestClassify_DefaultsMasculine(t *testing.T) {
	// No context, no morph, no matching suffix.
	if got := Classify(toks("ordinateur"), 0); got != Masculine {
		t.Errorf("got %q, want masculine default", got)
	}
}

func TestClassify_NeverEmpty(t *testing.T) {
	words := []string{"x", "chat", "fenêtre", "zzz", ""}
	for _, w := range words {
		got := Classify(toks(w), 0)
		if got != Masculine && got != Feminine {
			t.Errorf("Classify(%q) = %q, want a binary gender", w, got)
		}
	}
}

func TestArticle(t *testing.T) {
	if Masculine.Article() != "le" || Feminine.Article() != "la" {
		t.Error("article mapping is wrong")
	}
}
