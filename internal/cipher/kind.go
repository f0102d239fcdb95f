// Package cipher implements the six reversible text transforms used to hide
// directory names, weighted random cipher selection, and a brute-force
// decoder for the Caesar cipher.
package cipher

import "strings"

// Kind identifies one of the supported text transforms.
type Kind string

const (
	Hex    Kind = "hex"
	ASCII  Kind = "ascii"
	Binary Kind = "binary"
	Base64 Kind = "base64"
	ROT13  Kind = "rot13"
	Caesar Kind = "caesar"
)

// Kinds lists every cipher kind in canonical display order.
var Kinds = []Kind{Hex, ASCII, Binary, Base64, ROT13, Caesar}

// String returns the lower-case kind name.
func (k Kind) String() string { return string(k) }

// Valid reports whether k is one of the six known kinds.
func (k Kind) Valid() bool {
	for _, known := range Kinds {
		if k == known {
			return true
		}
	}
	return false
}

// ParseKind converts user input such as "HEX" or " Base64 " into a Kind.
func ParseKind(s string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(s)))
	if !k.Valid() {
		return "", &InvalidParameterError{
			Param:   "kind",
			Value:   s,
			Message: "unknown cipher kind",
			Err:     ErrUnknownKind,
		}
	}
	return k, nil
}

// Key carries the auxiliary key produced by Encode. Only Caesar uses it.
type Key struct {
	Shift    int
	HasShift bool
}

// ShiftKey returns a Key holding a known Caesar shift.
func ShiftKey(shift int) Key {
	return Key{Shift: shift, HasShift: true}
}

// NoKey is the zero Key, used by every kind except Caesar.
var NoKey = Key{}
