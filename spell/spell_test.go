package spell_test

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dynamic/spell"
)

// TestNew_Validation checks that construction fails iff onset > terminus.
func TestNew_Validation(t *testing.T) {
	cases := []struct {
		name     string
		onset    spell.Time
		terminus spell.Time
		wantErr  bool
	}{
		{"ordered", 0, 10, false},
		{"zero duration", 5, 5, false},
		{"negative onset", -3, 2, false},
		{"reversed", 10, 0, true},
		{"barely reversed", 1.0000001, 1, true},
		{"nan onset", math.NaN(), 1, true},
		{"nan terminus", 0, math.NaN(), true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s, err := spell.New(tc.onset, tc.terminus)
			if tc.wantErr {
				require.Error(t, err)
				require.True(t, errors.Is(err, spell.ErrInvalidInterval))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.onset, s.Onset())
			assert.Equal(t, tc.terminus, s.Terminus())
		})
	}
}

// TestContains_HalfOpen verifies the strict terminus of point containment.
func TestContains_HalfOpen(t *testing.T) {
	s := spell.MustNew(0, 30)
	assert.True(t, s.Contains(0))
	assert.True(t, s.Contains(10))
	assert.True(t, s.Contains(29.999))
	assert.False(t, s.Contains(30))
	assert.False(t, s.Contains(-0.001))

	zero := spell.MustNew(5, 5)
	assert.False(t, zero.Contains(5), "zero-duration spell contains no point")
	assert.Equal(t, spell.Time(0), zero.Duration())
}

func TestContainsInterval(t *testing.T) {
	s := spell.MustNew(0, 30)
	assert.True(t, s.ContainsInterval(10, 25))
	assert.True(t, s.ContainsInterval(0, 30))
	assert.False(t, s.ContainsInterval(10, 35))
	assert.False(t, s.ContainsInterval(-1, 5))
}

// TestOverlaps covers touching, nested, disjoint and symmetric cases.
func TestOverlaps(t *testing.T) {
	pairs := []struct {
		a, b spell.Spell
		want bool
	}{
		{spell.MustNew(0, 10), spell.MustNew(10, 20), false},
		{spell.MustNew(0, 10), spell.MustNew(5, 15), true},
		{spell.MustNew(0, 100), spell.MustNew(40, 50), true},
		{spell.MustNew(0, 1), spell.MustNew(2, 3), false},
		{spell.MustNew(5, 5), spell.MustNew(0, 10), true},
		{spell.MustNew(10, 10), spell.MustNew(0, 10), false},
	}
	for _, p := range pairs {
		assert.Equal(t, p.want, spell.Overlaps(p.a, p.b), "%v ∩ %v", p.a, p.b)
		assert.Equal(t, spell.Overlaps(p.a, p.b), spell.Overlaps(p.b, p.a), "symmetry %v %v", p.a, p.b)
	}
}

// TestEqual_IgnoresCensoring pins that censoring is metadata only.
func TestEqual_IgnoresCensoring(t *testing.T) {
	a := spell.MustNew(0, 10, spell.WithOnsetCensored())
	b := spell.MustNew(0, 10, spell.WithTerminusCensored())
	require.True(t, a.OnsetCensored())
	require.False(t, a.TerminusCensored())
	assert.True(t, a.Equal(b))
	assert.True(t, cmp.Equal(a, b), "cmp uses the Equal method")
	assert.Equal(t, 0, spell.Compare(a, b))
	assert.False(t, a.Equal(spell.MustNew(0, 11)))
}

func TestCompare(t *testing.T) {
	assert.Equal(t, -1, spell.Compare(spell.MustNew(0, 5), spell.MustNew(1, 2)))
	assert.Equal(t, -1, spell.Compare(spell.MustNew(0, 5), spell.MustNew(0, 6)))
	assert.Equal(t, 1, spell.Compare(spell.MustNew(2, 3), spell.MustNew(1, 9)))
	assert.Equal(t, 1, spell.Compare(spell.MustNew(0, 7), spell.MustNew(0, 6)))
	assert.Equal(t, 0, spell.Compare(spell.MustNew(1, 2), spell.MustNew(1, 2)))
}

func TestString(t *testing.T) {
	assert.Equal(t, "[0, 10)", spell.MustNew(0, 10).String())
	assert.Equal(t, "[1.5, 2.25)", spell.MustNew(1.5, 2.25).String())
}

func TestMustNew_Panics(t *testing.T) {
	assert.Panics(t, func() { spell.MustNew(2, 1) })
}
