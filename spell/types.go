// File: types.go
// Role: Spell value type, construction options and sentinel errors.
// Determinism:
//   - Compare orders by onset, then terminus; censoring never participates.
// AI-HINT (file):
//   - Use Equal, not ==, when comparing spells: == also compares censoring flags.

package spell

import (
	"errors"
	"fmt"
	"math"
	"strconv"
)

// Time is a point on the network's time axis.
type Time = float64

// ErrInvalidInterval indicates a spell whose onset lies after its terminus
// (or whose bounds are not numbers).
var ErrInvalidInterval = errors.New("spell: onset must not exceed terminus")

// Spell is an immutable half-open activity interval [onset, terminus).
type Spell struct {
	onset    Time
	terminus Time

	onsetCensored    bool
	terminusCensored bool
}

// Option configures descriptive metadata of a Spell at construction time.
type Option func(s *Spell)

// WithOnsetCensored marks the onset as possibly not the true start of activity.
func WithOnsetCensored() Option {
	return func(s *Spell) { s.onsetCensored = true }
}

// WithTerminusCensored marks the terminus as possibly not the true end of activity.
func WithTerminusCensored() Option {
	return func(s *Spell) { s.terminusCensored = true }
}

// New constructs the spell [onset, terminus).
//
// Equal bounds are legal and denote a zero-duration spell: it never contains
// a point but may still overlap a surrounding interval.
//
// Errors:
//   - ErrInvalidInterval: onset > terminus or either bound is NaN.
//
// Complexity: O(len(opts)).
func New(onset, terminus Time, opts ...Option) (Spell, error) {
	if math.IsNaN(onset) || math.IsNaN(terminus) || onset > terminus {
		return Spell{}, fmt.Errorf("%w: [%v, %v)", ErrInvalidInterval, onset, terminus)
	}
	s := Spell{onset: onset, terminus: terminus}
	var opt Option
	for _, opt = range opts {
		opt(&s)
	}

	return s, nil
}

// MustNew is like New but panics on invalid bounds.
// Intended for literals in tests and examples.
func MustNew(onset, terminus Time, opts ...Option) Spell {
	s, err := New(onset, terminus, opts...)
	if err != nil {
		panic(err)
	}

	return s
}

// Onset returns the inclusive start of the spell.
func (s Spell) Onset() Time { return s.onset }

// Terminus returns the exclusive end of the spell.
func (s Spell) Terminus() Time { return s.terminus }

// OnsetCensored reports the onset censoring flag.
func (s Spell) OnsetCensored() bool { return s.onsetCensored }

// TerminusCensored reports the terminus censoring flag.
func (s Spell) TerminusCensored() bool { return s.terminusCensored }

// Duration returns terminus - onset.
func (s Spell) Duration() Time { return s.terminus - s.onset }

// Contains reports whether t lies inside the spell (onset ≤ t < terminus).
// A zero-duration spell contains no point.
func (s Spell) Contains(t Time) bool {
	return s.onset <= t && t < s.terminus
}

// ContainsInterval reports whether the interval [onset, terminus) lies
// entirely inside this spell.
func (s Spell) ContainsInterval(onset, terminus Time) bool {
	return s.onset <= onset && s.terminus >= terminus
}

// Overlaps reports whether a and b share a non-empty region.
// Touching spells (a.terminus == b.onset) do not overlap. Symmetric.
func Overlaps(a, b Spell) bool {
	return a.onset < b.terminus && b.onset < a.terminus
}

// Equal reports whether both bounds match. Censoring flags are ignored.
func (s Spell) Equal(o Spell) bool {
	return s.onset == o.onset && s.terminus == o.terminus
}

// Compare orders spells by onset, then terminus.
// It returns -1, 0 or +1 and is suitable for slices.SortFunc.
func Compare(a, b Spell) int {
	switch {
	case a.onset < b.onset:
		return -1
	case a.onset > b.onset:
		return 1
	case a.terminus < b.terminus:
		return -1
	case a.terminus > b.terminus:
		return 1
	default:
		return 0
	}
}

// String renders the spell as "[onset, terminus)".
func (s Spell) String() string {
	buf := make([]byte, 0, 32)
	buf = append(buf, '[')
	buf = strconv.AppendFloat(buf, s.onset, 'g', -1, 64)
	buf = append(buf, ", "...)
	buf = strconv.AppendFloat(buf, s.terminus, 'g', -1, 64)
	buf = append(buf, ')')

	return string(buf)
}
