package exercise

import "github.com/abhisek/vocatinder/internal/gender"

// fallbackSentences is the static challenge source used when live
// generation comes up short. Each entry already records whether its
// sentence is grammatically correct, so entries round-trip into
// challenges without another corruption pass (the third sentence is
// intentionally wrong).
var fallbackSentences = []Challenge{
	{
		Original:  "Le président français a donné une conférence de presse.",
		Display:   "Le président français a donné une conférence de presse.",
		Target:    NounCandidate{Word: "président", Lemma: "président", Gender: gender.Masculine, Article: "le"},
		IsCorrect: true,
	},
	{
		Original:  "La ministre de l'éducation a annoncé de nouvelles réformes.",
		Display:   "La ministre de l'éducation a annoncé de nouvelles réformes.",
		Target:    NounCandidate{Word: "ministre", Lemma: "ministre", Gender: gender.Feminine, Article: "la"},
		IsCorrect: true,
	},
	{
		Original:  "La voiture rouge est garée devant la maison.",
		Display:   "Le voiture rouge est garée devant la maison.",
		Target:    NounCandidate{Word: "voiture", Lemma: "voiture", Gender: gender.Feminine, Article: "la"},
		IsCorrect: false,
	},
	{
		Original:  "Le gouvernement prépare une nouvelle loi sur le climat.",
		Display:   "Le gouvernement prépare une nouvelle loi sur le climat.",
		Target:    NounCandidate{Word: "gouvernement", Lemma: "gouvernement", Gender: gender.Masculine, Article: "le"},
		IsCorrect: true,
	},
	{
		Original:  "Une tempête a traversé la région pendant la nuit.",
		Display:   "Un tempête a traversé le région pendant le nuit.",
		Target:    NounCandidate{Word: "tempête", Lemma: "tempête", Gender: gender.Feminine, Article: "une"},
		IsCorrect: false,
	},
	{
		Original:  "Le musée ouvre une exposition sur la peinture moderne.",
		Display:   "Le musée ouvre une exposition sur la peinture moderne.",
		Target:    NounCandidate{Word: "musée", Lemma: "musée", Gender: gender.Masculine, Article: "le"},
		IsCorrect: true,
	},
}

// FallbackChallenges returns exactly count challenges from the static
// set, cycling when count exceeds the set size.
func FallbackChallenges(count int) []Challenge {
	out := make([]Challenge, 0, count)
	for i := 0; i < count; i++ {
		out = append(out, fallbackSentences[i%len(fallbackSentences)])
	}
	return out
}

// TopUp extends challenges to exactly count entries using the static
// fallback set. Already-collected challenges are kept in order.
func TopUp(challenges []Challenge, count int) []Challenge {
	for i := 0; len(challenges) < count; i++ {
		challenges = append(challenges, fallbackSentences[i%len(fallbackSentences)])
	}
	return challenges[:count]
}
