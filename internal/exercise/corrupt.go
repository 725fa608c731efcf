package exercise

import (
	"math/rand/v2"
	"strings"

	"github.com/abhisek/vocatinder/internal/gender"
)

// Corruptor produces the "wrong grammar" variant of a sentence by
// flipping gender-bearing determiners.
//
// The substitution is deliberately whole-sentence: every occurrence of
// the gender-appropriate determiners is flipped, not just the one before
// the target noun. A headline with several unrelated "le"/"la" will have
// all of them flipped.
type Corruptor struct {
	rng *rand.Rand
}

// NewCorruptor creates a Corruptor drawing its coin flips from rng.
// Inject a seeded source in tests to force either branch.
func NewCorruptor(rng *rand.Rand) *Corruptor {
	return &Corruptor{rng: rng}
}

// masculineToFeminine rewrites masculine determiners to their feminine
// counterparts, case-preserved. feminineToMasculine is the mirror.
var (
	masculineToFeminine = strings.NewReplacer(
		" le ", " la ",
		" Le ", " La ",
		" un ", " une ",
		" Un ", " Une ",
	)
	feminineToMasculine = strings.NewReplacer(
		" la ", " le ",
		" La ", " Le ",
		" une ", " un ",
		" Une ", " Un ",
	)
)

// Corrupt flips a 50/50 coin. Heads leaves the sentence untouched and
// reports it as grammatically correct; tails applies the substitution
// table for the target's gender and reports it as incorrect.
//
// Not idempotent: each call draws fresh randomness.
func (c *Corruptor) Corrupt(sentence string, target NounCandidate) (string, bool) {
	if c.rng.IntN(2) == 0 {
		return sentence, true
	}
	return Flip(sentence, target.Gender), false
}

// Flip applies the determiner substitution for a sentence whose target
// noun has gender g. Deterministic; exposed for tests and for callers
// that already decided to corrupt.
func Flip(sentence string, g gender.Gender) string {
	if g == gender.Feminine {
		return feminineToMasculine.Replace(sentence)
	}
	return masculineToFeminine.Replace(sentence)
}
