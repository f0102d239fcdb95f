package cipher

import (
	"fmt"
	"strings"
)

// Verdict is the outcome of checking a decode attempt.
type Verdict struct {
	OK   bool
	Hint string // empty on success
}

// Validate compares a player's attempt with the original plaintext,
// ignoring case and surrounding whitespace in the attempt. It has no side
// effects; the hint it returns may reveal the answer for hex, so callers that
// must not leak it should show their own message.
func Validate(attempt, original string, kind Kind, key Key) Verdict {
	if strings.EqualFold(strings.TrimSpace(attempt), original) {
		return Verdict{OK: true}
	}
	switch kind {
	case Hex:
		return Verdict{Hint: "Incorrect. Correct HEX: " + encodeHex(original)}
	case Caesar:
		if key.HasShift {
			return Verdict{Hint: fmt.Sprintf("Incorrect. Try another text. The shift was: %d", key.Shift)}
		}
		return Verdict{Hint: "Incorrect. Try another text."}
	}
	return Verdict{Hint: "Incorrect decryption. Try again."}
}
