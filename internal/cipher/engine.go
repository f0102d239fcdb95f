package cipher

import (
	"fmt"
	"math/rand"
)

// Weight pairs a cipher kind with its relative selection weight.
type Weight struct {
	Kind   Kind
	Weight int
}

// Config holds the weight table and Caesar shift range used by an Engine.
type Config struct {
	Weights  []Weight
	ShiftMin int // inclusive
	ShiftMax int // inclusive
}

// Caesar shifts are limited to MinShift..MaxShift, the range BruteForceCaesar
// searches.
const (
	MinShift = 1
	MaxShift = 25
)

// DefaultWeights mirrors the classic distribution: hex is common, rot13 and
// caesar are rare.
var DefaultWeights = []Weight{
	{Hex, 30},
	{ASCII, 25},
	{Binary, 20},
	{Base64, 15},
	{ROT13, 5},
	{Caesar, 5},
}

// DefaultConfig returns the default weight table and a 1–25 shift range.
func DefaultConfig() Config {
	weights := make([]Weight, len(DefaultWeights))
	copy(weights, DefaultWeights)
	return Config{Weights: weights, ShiftMin: MinShift, ShiftMax: MaxShift}
}

// Validate checks the weight table and shift range.
func (c Config) Validate() error {
	total := 0
	for _, w := range c.Weights {
		if !w.Kind.Valid() {
			return unknownKind(w.Kind)
		}
		if w.Weight < 0 {
			return &InvalidParameterError{
				Param:   "weights",
				Value:   w.Weight,
				Message: fmt.Sprintf("negative weight for %s", w.Kind),
			}
		}
		total += w.Weight
	}
	if total <= 0 {
		return &InvalidParameterError{Param: "weights", Message: "weights must sum to a positive value"}
	}
	if c.ShiftMin > c.ShiftMax {
		return &InvalidParameterError{
			Param:   "shift",
			Value:   [2]int{c.ShiftMin, c.ShiftMax},
			Message: "shift range is inverted",
		}
	}
	if c.ShiftMin < MinShift || c.ShiftMax > MaxShift {
		return &InvalidParameterError{
			Param:   "shift",
			Value:   [2]int{c.ShiftMin, c.ShiftMax},
			Message: fmt.Sprintf("shift range must lie within %d..%d", MinShift, MaxShift),
		}
	}
	return nil
}

// Engine encodes text and picks cipher kinds using a caller-supplied random
// stream. It is not safe for concurrent use; give each goroutine its own.
type Engine struct {
	rng      *rand.Rand
	weights  []Weight
	total    int
	shiftMin int
	shiftMax int
}

// NewEngine validates cfg and binds it to rng.
func NewEngine(rng *rand.Rand, cfg Config) (*Engine, error) {
	if rng == nil {
		return nil, &InvalidParameterError{Param: "rng", Message: "random source cannot be nil"}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	e := &Engine{
		rng:      rng,
		weights:  make([]Weight, len(cfg.Weights)),
		shiftMin: cfg.ShiftMin,
		shiftMax: cfg.ShiftMax,
	}
	copy(e.weights, cfg.Weights)
	for _, w := range e.weights {
		e.total += w.Weight
	}
	return e, nil
}

// Choose draws one kind with probability weight/sum(weights).
func (e *Engine) Choose() Kind {
	n := e.rng.Intn(e.total)
	for _, w := range e.weights {
		if n < w.Weight {
			return w.Kind
		}
		n -= w.Weight
	}
	// Unreachable while total matches the table.
	return e.weights[len(e.weights)-1].Kind
}

// Encode transforms text with kind. For Caesar the shift is drawn from the
// engine's stream and returned in the Key; other kinds return NoKey.
func (e *Engine) Encode(text string, kind Kind) (string, Key, error) {
	if kind == Caesar {
		shift := e.shiftMin + e.rng.Intn(e.shiftMax-e.shiftMin+1)
		return EncodeCaesar(text, shift), ShiftKey(shift), nil
	}
	out, err := encodeFixed(text, kind)
	if err != nil {
		return "", NoKey, err
	}
	return out, NoKey, nil
}

// Practice encodes text with every kind in canonical order.
func (e *Engine) Practice(text string) []Sample {
	samples := make([]Sample, 0, len(Kinds))
	for _, kind := range Kinds {
		out, key, err := e.Encode(text, kind)
		samples = append(samples, Sample{Kind: kind, Text: out, Key: key, Err: err})
	}
	return samples
}

// Sample is one line of Practice output.
type Sample struct {
	Kind Kind
	Text string
	Key  Key
	Err  error
}
