package cipher

import (
	"errors"
	"math/rand"
	"testing"
)

func newTestEngine(t *testing.T, seed int64) *Engine {
	t.Helper()
	e, err := NewEngine(rand.New(rand.NewSource(seed)), DefaultConfig())
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	return e
}

var roundTripInputs = []string{
	"",
	"Hello",
	"System32",
	"Program Files",
	"DIR_V7",
	"MiXeD cAsE 0123456789",
	"punct: !@#$%^&*()-_=+[]{};'\",.<>/?`~|\\",
	"Secret42",
}

func TestRoundTripAllKinds(t *testing.T) {
	e := newTestEngine(t, 7)
	for _, kind := range Kinds {
		for _, in := range roundTripInputs {
			t.Run(string(kind)+"/"+in, func(t *testing.T) {
				enc, key, err := e.Encode(in, kind)
				if err != nil {
					t.Fatalf("Encode(%q, %s): %v", in, kind, err)
				}
				got, err := Decode(enc, kind, key)
				if err != nil {
					t.Fatalf("Decode(%q, %s): %v", enc, kind, err)
				}
				if got != in {
					t.Errorf("round trip %s: got %q, want %q", kind, got, in)
				}
			})
		}
	}
}

func TestCaesarKeyIsReturnedShift(t *testing.T) {
	e := newTestEngine(t, 99)
	for range 50 {
		enc, key, err := e.Encode("Archive", Caesar)
		if err != nil {
			t.Fatal(err)
		}
		if !key.HasShift || key.Shift < 1 || key.Shift > 25 {
			t.Fatalf("shift %+v outside 1..25", key)
		}
		if enc != EncodeCaesar("Archive", key.Shift) {
			t.Errorf("cipher text %q does not match shift %d", enc, key.Shift)
		}
	}
}

func TestHexExample(t *testing.T) {
	e := newTestEngine(t, 1)
	enc, _, err := e.Encode("Hello", Hex)
	if err != nil {
		t.Fatal(err)
	}
	if enc != "48 65 6C 6C 6F" {
		t.Errorf("hex(Hello) = %q, want %q", enc, "48 65 6C 6C 6F")
	}
	got, err := Decode("48 65 6C 6C 6F", Hex, NoKey)
	if err != nil || got != "Hello" {
		t.Errorf("Decode hex = %q, %v; want Hello", got, err)
	}
	// Colons and missing separators are accepted.
	got, err = Decode("48:65:6c6c:6F", Hex, NoKey)
	if err != nil || got != "Hello" {
		t.Errorf("Decode hex with colons = %q, %v; want Hello", got, err)
	}
}

func TestKnownEncodings(t *testing.T) {
	cases := []struct {
		kind Kind
		in   string
		want string
	}{
		{ASCII, "Hello", "72 101 108 108 111"},
		{Binary, "Hi", "01001000 01101001"},
		{Base64, "Hello", "SGVsbG8="},
		{ROT13, "Hello, World!", "Uryyb, Jbeyq!"},
	}
	e := newTestEngine(t, 1)
	for _, tc := range cases {
		t.Run(string(tc.kind), func(t *testing.T) {
			got, key, err := e.Encode(tc.in, tc.kind)
			if err != nil {
				t.Fatal(err)
			}
			if got != tc.want {
				t.Errorf("Encode(%q, %s) = %q, want %q", tc.in, tc.kind, got, tc.want)
			}
			if key != NoKey {
				t.Errorf("non-caesar kind returned key %+v", key)
			}
		})
	}
}

func TestROT13Involution(t *testing.T) {
	for _, in := range roundTripInputs {
		if got := rot13(rot13(in)); got != in {
			t.Errorf("rot13(rot13(%q)) = %q", in, got)
		}
	}
}

func TestCaesarShiftsDigitsAndKeepsPunctuation(t *testing.T) {
	if got := EncodeCaesar("Zz9-a", 3); got != "Cc2-d" {
		t.Errorf("EncodeCaesar = %q, want %q", got, "Cc2-d")
	}
	got, err := Decode("Cc2-d", Caesar, ShiftKey(3))
	if err != nil || got != "Zz9-a" {
		t.Errorf("Decode caesar = %q, %v", got, err)
	}
	// Shifts outside 0..25 wrap instead of failing.
	got, err = Decode(EncodeCaesar("Logs", 30), Caesar, ShiftKey(30))
	if err != nil || got != "Logs" {
		t.Errorf("wide shift round trip = %q, %v", got, err)
	}
}

func TestDecodeErrors(t *testing.T) {
	cases := []struct {
		name string
		kind Kind
		in   string
	}{
		{"hex odd length", Hex, "48 6"},
		{"hex bad digit", Hex, "4G 65"},
		{"hex invalid utf8", Hex, "FF FE"},
		{"ascii not numeric", ASCII, "72 abc"},
		{"ascii out of range", ASCII, "1114112"},
		{"ascii negative", ASCII, "-5"},
		{"ascii surrogate", ASCII, "55296"},
		{"binary bad digit", Binary, "01001002"},
		{"binary too long", Binary, "010010001"},
		{"base64 bad alphabet", Base64, "SGVs*G8="},
		{"base64 bad padding", Base64, "SGVsbG8"},
		{"base64 invalid utf8", Base64, "//79"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Decode(tc.in, tc.kind, NoKey)
			if err == nil {
				t.Fatalf("Decode(%q, %s) succeeded, want error", tc.in, tc.kind)
			}
			var de *DecodeError
			if !errors.As(err, &de) {
				t.Fatalf("error %v is not a *DecodeError", err)
			}
			if de.Kind != tc.kind {
				t.Errorf("DecodeError.Kind = %s, want %s", de.Kind, tc.kind)
			}
			if !errors.Is(err, ErrMalformed) {
				t.Errorf("errors.Is(err, ErrMalformed) = false for %v", err)
			}
		})
	}
}

func TestDecodeCaesarWithoutShift(t *testing.T) {
	_, err := Decode("Khoor", Caesar, NoKey)
	var ipe *InvalidParameterError
	if !errors.As(err, &ipe) {
		t.Fatalf("err = %v, want *InvalidParameterError", err)
	}
	if !errors.Is(err, ErrShiftRequired) {
		t.Errorf("errors.Is(err, ErrShiftRequired) = false")
	}
}

func TestUnknownKind(t *testing.T) {
	e := newTestEngine(t, 1)
	if _, _, err := e.Encode("x", Kind("morse")); !errors.Is(err, ErrUnknownKind) {
		t.Errorf("Encode unknown kind err = %v", err)
	}
	if _, err := Decode("x", Kind("morse"), NoKey); !errors.Is(err, ErrUnknownKind) {
		t.Errorf("Decode unknown kind err = %v", err)
	}
}

func TestBinaryRejectsWideRunes(t *testing.T) {
	e := newTestEngine(t, 1)
	_, _, err := e.Encode("héllo", Binary)
	if err != nil {
		t.Fatalf("Latin-1 rune should encode: %v", err)
	}
	_, _, err = e.Encode("日本", Binary)
	var ipe *InvalidParameterError
	if !errors.As(err, &ipe) {
		t.Errorf("err = %v, want *InvalidParameterError", err)
	}
}

func TestParseKind(t *testing.T) {
	cases := []struct {
		in   string
		want Kind
		ok   bool
	}{
		{"hex", Hex, true},
		{" HEX ", Hex, true},
		{"Base64", Base64, true},
		{"rot13", ROT13, true},
		{"CAESAR", Caesar, true},
		{"morse", "", false},
		{"", "", false},
	}
	for _, tc := range cases {
		got, err := ParseKind(tc.in)
		if (err == nil) != tc.ok {
			t.Errorf("ParseKind(%q) err = %v, want ok=%v", tc.in, err, tc.ok)
		}
		if got != tc.want {
			t.Errorf("ParseKind(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
