package dispatchers

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArity is returned for a range with a negative minimum or max < min.
	ErrInvalidArity = errors.New("invalid arity range")

	// ErrIndexOutOfRange is returned when a numeric position is outside the arity window.
	ErrIndexOutOfRange = errors.New("numeric option index out of option range")
)

// Arity is the closed range [Min, Max] of argument tokens a flag consumes.
type Arity struct {
	Min int
	Max int
}

// Exactly returns a fixed arity of n tokens.
func Exactly(n int) Arity {
	return Arity{Min: n, Max: n}
}

// Between returns an arity accepting from min to max tokens.
func Between(min, max int) Arity {
	return Arity{Min: min, Max: max}
}

// Validate checks the range invariant.
func (a Arity) Validate() error {
	if a.Min < 0 || a.Max < a.Min {
		return fmt.Errorf("%w: [%d,%d]", ErrInvalidArity, a.Min, a.Max)
	}
	return nil
}

// Contains reports whether n tokens satisfy the range.
func (a Arity) Contains(n int) bool {
	return n >= a.Min && n <= a.Max
}

func (a Arity) String() string {
	if a.Min == a.Max {
		return fmt.Sprintf("%d", a.Min)
	}
	return fmt.Sprintf("%d..%d", a.Min, a.Max)
}

// NumericPositions is the set of argument positions that may hold a
// negative number even though the token starts with the flag prefix.
type NumericPositions struct {
	allowed []bool
}

// NewNumericPositions builds the set for the given arity.
// Every index must satisfy 0 <= index < arity.Max.
func NewNumericPositions(arity Arity, indices ...int) (NumericPositions, error) {
	allowed := make([]bool, arity.Max)
	for _, idx := range indices {
		if idx < 0 || idx >= arity.Max {
			return NumericPositions{}, fmt.Errorf("%w: %d not below %d", ErrIndexOutOfRange, idx, arity.Max)
		}
		allowed[idx] = true
	}
	return NumericPositions{allowed: allowed}, nil
}

// Contains reports whether position i accepts a numeric token.
func (p NumericPositions) Contains(i int) bool {
	return i >= 0 && i < len(p.allowed) && p.allowed[i]
}
