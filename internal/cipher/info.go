package cipher

// Info is static display metadata for a cipher kind.
type Info struct {
	Kind        Kind
	Name        string
	Description string
	Example     string
	Hint        string
}

var infos = map[Kind]Info{
	Hex: {
		Kind:        Hex,
		Name:        "HEX",
		Description: "Hexadecimal representation of the text",
		Example:     "48 65 6C 6C 6F → Hello",
		Hint:        "Every two hex digits are one byte (one ASCII character)",
	},
	ASCII: {
		Kind:        ASCII,
		Name:        "ASCII",
		Description: "Decimal character codes",
		Example:     "72 101 108 108 111 → Hello",
		Hint:        "Numbers are separated by spaces, each number is one character code",
	},
	Binary: {
		Kind:        Binary,
		Name:        "Binary",
		Description: "Binary representation of the text",
		Example:     "01001000 01100101 01101100 01101100 01101111 → Hello",
		Hint:        "Each block of 8 bits is one character",
	},
	Base64: {
		Kind:        Base64,
		Name:        "Base64",
		Description: "Base64 encoding",
		Example:     "SGVsbG8= → Hello",
		Hint:        "Uses A-Z, a-z, 0-9, + and / with = as padding",
	},
	ROT13: {
		Kind:        ROT13,
		Name:        "ROT13",
		Description: "Letters rotated by 13 positions",
		Example:     "Uryyb → Hello",
		Hint:        "A ↔ N, B ↔ O, C ↔ P and so on. Applying it twice restores the text",
	},
	Caesar: {
		Kind:        Caesar,
		Name:        "Caesar",
		Description: "Classic Caesar cipher with a random shift",
		Example:     "Random shift (1-25). With shift 3: Khoor → Hello",
		Hint:        "Every letter moves the same number of places along the alphabet",
	},
}

var unknownInfo = Info{
	Name:        "Unknown",
	Description: "Unknown cipher kind",
	Example:     "No example",
	Hint:        "No hint",
}

// Describe returns the display record for kind. Unknown kinds get a generic
// record rather than an error.
func Describe(kind Kind) Info {
	if info, ok := infos[kind]; ok {
		return info
	}
	info := unknownInfo
	info.Kind = kind
	return info
}

// All returns the records for every kind in canonical order.
func All() []Info {
	out := make([]Info, 0, len(Kinds))
	for _, k := range Kinds {
		out = append(out, infos[k])
	}
	return out
}
