package cipher

import (
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Decode reverses Encode. key is only consulted for Caesar, where a missing
// shift is an API misuse reported as an InvalidParameterError; use
// BruteForceCaesar when the shift is unknown.
func Decode(text string, kind Kind, key Key) (string, error) {
	switch kind {
	case Hex:
		return decodeHex(text)
	case ASCII:
		return decodeASCII(text)
	case Binary:
		return decodeBinary(text)
	case Base64:
		return decodeBase64(text)
	case ROT13:
		return rot13(text), nil
	case Caesar:
		if !key.HasShift {
			return "", &InvalidParameterError{
				Param:   "shift",
				Message: "caesar decode needs a shift; use brute force when it is unknown",
				Err:     ErrShiftRequired,
			}
		}
		return shiftText(text, -key.Shift), nil
	default:
		return "", unknownKind(kind)
	}
}

// EncodeCaesar shifts text by a fixed amount. Engine.Encode draws the shift
// from its random stream and calls this.
func EncodeCaesar(text string, shift int) string {
	return shiftText(text, shift)
}

// encodeFixed handles every kind that needs no randomness.
func encodeFixed(text string, kind Kind) (string, error) {
	switch kind {
	case Hex:
		return encodeHex(text), nil
	case ASCII:
		return encodeASCII(text), nil
	case Binary:
		return encodeBinary(text)
	case Base64:
		return base64.StdEncoding.EncodeToString([]byte(text)), nil
	case ROT13:
		return rot13(text), nil
	default:
		return "", unknownKind(kind)
	}
}

// ─── hex ────────────────────────────────────────────────────────────────────

func encodeHex(text string) string {
	raw := strings.ToUpper(hex.EncodeToString([]byte(text)))
	pairs := make([]string, 0, len(raw)/2)
	for i := 0; i < len(raw); i += 2 {
		pairs = append(pairs, raw[i:i+2])
	}
	return strings.Join(pairs, " ")
}

func decodeHex(text string) (string, error) {
	clean := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) || r == ':' {
			return -1
		}
		return r
	}, text)
	if len(clean)%2 != 0 {
		return "", newDecodeError(Hex, text, "odd number of hex digits", nil)
	}
	data, err := hex.DecodeString(clean)
	if err != nil {
		return "", newDecodeError(Hex, text, "not a hex string", err)
	}
	if !utf8.Valid(data) {
		return "", newDecodeError(Hex, text, "bytes are not valid UTF-8", nil)
	}
	return string(data), nil
}

// ─── ascii ──────────────────────────────────────────────────────────────────

func encodeASCII(text string) string {
	codes := make([]string, 0, len(text))
	for _, r := range text {
		codes = append(codes, strconv.Itoa(int(r)))
	}
	return strings.Join(codes, " ")
}

func decodeASCII(text string) (string, error) {
	var b strings.Builder
	for _, tok := range strings.Fields(text) {
		n, err := strconv.Atoi(tok)
		if err != nil {
			return "", newDecodeError(ASCII, tok, "not a decimal code point", err)
		}
		if n < 0 || n > unicode.MaxRune || !utf8.ValidRune(rune(n)) {
			return "", newDecodeError(ASCII, tok, "code point out of range", nil)
		}
		b.WriteRune(rune(n))
	}
	return b.String(), nil
}

// ─── binary ─────────────────────────────────────────────────────────────────

func encodeBinary(text string) (string, error) {
	groups := make([]string, 0, len(text))
	for _, r := range text {
		if r > 0xFF {
			return "", &InvalidParameterError{
				Param:   "text",
				Value:   string(r),
				Message: fmt.Sprintf("binary cipher cannot encode %q (code point > 255)", r),
			}
		}
		groups = append(groups, fmt.Sprintf("%08b", r))
	}
	return strings.Join(groups, " "), nil
}

func decodeBinary(text string) (string, error) {
	var b strings.Builder
	for _, group := range strings.Fields(text) {
		if len(group) > 8 {
			return "", newDecodeError(Binary, group, "group longer than 8 bits", nil)
		}
		n, err := strconv.ParseUint(group, 2, 8)
		if err != nil {
			return "", newDecodeError(Binary, group, "not a binary group", err)
		}
		b.WriteRune(rune(n))
	}
	return b.String(), nil
}

// ─── base64 ─────────────────────────────────────────────────────────────────

func decodeBase64(text string) (string, error) {
	data, err := base64.StdEncoding.DecodeString(strings.TrimSpace(text))
	if err != nil {
		return "", newDecodeError(Base64, text, "not standard base64", err)
	}
	if !utf8.Valid(data) {
		return "", newDecodeError(Base64, text, "bytes are not valid UTF-8", nil)
	}
	return string(data), nil
}

// ─── letter shifts ──────────────────────────────────────────────────────────

func rot13(text string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z':
			return 'a' + (r-'a'+13)%26
		case r >= 'A' && r <= 'Z':
			return 'A' + (r-'A'+13)%26
		}
		return r
	}, text)
}

// shiftText rotates ASCII letters within their case and digits within 0-9.
// Negative shifts rotate backwards.
func shiftText(text string, shift int) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z':
			return 'a' + rotate(r-'a', shift, 26)
		case r >= 'A' && r <= 'Z':
			return 'A' + rotate(r-'A', shift, 26)
		case r >= '0' && r <= '9':
			return '0' + rotate(r-'0', shift, 10)
		}
		return r
	}, text)
}

func rotate(pos rune, shift, size int) rune {
	n := (int(pos) + shift) % size
	if n < 0 {
		n += size
	}
	return rune(n)
}
