package cipher

import (
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Candidate is one brute-force decryption of a Caesar cipher text.
type Candidate struct {
	Shift      int
	Text       string
	Confidence float64 // 0.0–1.0
}

// BruteForceCaesar tries every shift MinShift..MaxShift and returns the
// plausible results ordered by descending confidence. Ties keep shift order.
// The ranking is a heuristic: the true plaintext is usually near the top, not
// always first.
func BruteForceCaesar(text string) []Candidate {
	var out []Candidate
	for shift := MinShift; shift <= MaxShift; shift++ {
		plain := shiftText(text, -shift)
		if !strings.ContainsFunc(plain, func(r rune) bool {
			return unicode.IsPrint(r) && unicode.IsLetter(r)
		}) {
			continue
		}
		out = append(out, Candidate{Shift: shift, Text: plain, Confidence: Confidence(plain)})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Confidence > out[j].Confidence
	})
	return out
}

// Confidence scores how much text looks like a real directory name. Signals
// are summed in tenths so the result is exact.
func Confidence(text string) float64 {
	tenths := 0
	if strings.ContainsFunc(text, unicode.IsLetter) {
		tenths += 3
	}
	if strings.Contains(text, " ") {
		tenths += 2
	}
	if first, _ := utf8.DecodeRuneInString(text); text != "" && unicode.IsUpper(first) {
		tenths += 2
	}
	if !strings.ContainsFunc(text, func(r rune) bool {
		return !unicode.IsPrint(r) && !unicode.IsSpace(r)
	}) {
		tenths += 3
	}
	return float64(min(tenths, 10)) / 10
}
