package types

import (
	"math"

	"github.com/pkg/errors"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

var (
	// ErrInvalidWeight is returned for weights that cannot be totally ordered
	// (NaN), are infinite, or are negative.
	ErrInvalidWeight = errors.New("invalid validator weight")
	// ErrReservedValidator is returned when the genesis author is used as a
	// real validator.
	ErrReservedValidator = errors.New("validator 0 is reserved for the genesis block")
)

// Weight is the voting power of a validator.
type Weight float64

// IsValid reports whether w is finite and non-negative.
func (w Weight) IsValid() bool {
	f := float64(w)
	return !math.IsNaN(f) && !math.IsInf(f, 0) && f >= 0
}

// Weights maps each validator to its voting power. It is the sole authority
// on which validators count towards a score.
type Weights map[Validator]Weight

// Validate checks every entry of the table. It runs at the boundary of every
// estimate, so a bad table is rejected before any score is summed. A weight
// for the genesis sender is rejected too, even though genesis never lies on
// a message's estimate chain and such a weight would have no effect.
func (w Weights) Validate() error {
	for _, v := range w.Validators() {
		if v.IsGenesisSender() {
			return ErrReservedValidator
		}
		if !w[v].IsValid() {
			return errors.Wrapf(ErrInvalidWeight, "validator %d has weight %v", v, float64(w[v]))
		}
	}
	return nil
}

// Validators returns the validators of the table in ascending order.
func (w Weights) Validators() []Validator {
	vals := maps.Keys(w)
	slices.Sort(vals)
	return vals
}

// Total sums all weights in ascending validator order.
func (w Weights) Total() Weight {
	total := Weight(0)
	for _, v := range w.Validators() {
		total += w[v]
	}
	return total
}

// Copy returns an independent copy of the table.
func (w Weights) Copy() Weights {
	if w == nil {
		return nil
	}
	cpy := make(Weights, len(w))
	for k, v := range w {
		cpy[k] = v
	}
	return cpy
}
