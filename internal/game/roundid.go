package game

import (
	"fmt"
	"strconv"
	"strings"
)

// Round ids are structured as {sessionID}_{tag}_{challengeIndex} so a
// submission resolves back to its session, round type, and challenge
// without any lookup table beyond the session store. Session ids are
// UUIDs and never contain underscores.
const (
	sentenceTag = "sc"
	wordTag     = "wc"
)

// EncodeRoundID builds the opaque round identifier.
func EncodeRoundID(sessionID string, rt RoundType, index int) string {
	tag := sentenceTag
	if rt == RoundWordCheck {
		tag = wordTag
	}
	return fmt.Sprintf("%s_%s_%d", sessionID, tag, index)
}

// DecodeRoundID recovers (sessionID, roundType, challengeIndex) from a
// round id. Malformed ids decode to ErrSessionNotFound: from the
// caller's point of view they identify no known round.
func DecodeRoundID(roundID string) (string, RoundType, int, error) {
	parts := strings.Split(roundID, "_")
	if len(parts) < 3 {
		return "", "", 0, ErrSessionNotFound
	}

	index, err := strconv.Atoi(parts[len(parts)-1])
	if err != nil || index < 0 {
		return "", "", 0, ErrSessionNotFound
	}

	var rt RoundType
	switch parts[len(parts)-2] {
	case sentenceTag:
		rt = RoundSentenceCheck
	case wordTag:
		rt = RoundWordCheck
	default:
		return "", "", 0, ErrSessionNotFound
	}

	sessionID := strings.Join(parts[:len(parts)-2], "_")
	if sessionID == "" {
		return "", "", 0, ErrSessionNotFound
	}

	return sessionID, rt, index, nil
}
