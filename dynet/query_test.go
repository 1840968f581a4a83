package dynet_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/dynamic/dynet"
	"github.com/katalvlaran/dynamic/spell"
)

// QuerySuite shares one network across the query tests:
//
//	vertex 1: [0, 30)
//	vertex 2: [0, 10) [10, 20)
//	vertex 3: [5, 5)
//	vertex 4: no spells
//	edge (1, 2): [0, 10)
//	edge (2, 3): [40, 60)
type QuerySuite struct {
	suite.Suite
	nw *dynet.Network
}

func (s *QuerySuite) SetupTest() {
	nw, err := dynet.New(4, 0, 100)
	s.Require().NoError(err)
	s.Require().NoError(nw.Activate(dynet.Vertex(1), 0, 30))
	s.Require().NoError(nw.Activate(dynet.Vertex(2), 10, 20))
	s.Require().NoError(nw.Activate(dynet.Vertex(2), 0, 10))
	s.Require().NoError(nw.Activate(dynet.Vertex(3), 5, 5))
	s.Require().NoError(nw.Activate(dynet.Edge(2, 1), 0, 10))
	s.Require().NoError(nw.Activate(dynet.Edge(2, 3), 40, 60))
	s.nw = nw
}

func (s *QuerySuite) activeAt(sel dynet.Selector, t spell.Time) bool {
	ok, err := s.nw.IsActiveAt(sel, t)
	s.Require().NoError(err)
	return ok
}

func (s *QuerySuite) activeOver(sel dynet.Selector, onset, terminus spell.Time, rule dynet.Rule) bool {
	ok, err := s.nw.IsActiveOver(sel, onset, terminus, rule)
	s.Require().NoError(err)
	return ok
}

func (s *QuerySuite) TestIsActiveAt_HalfOpen() {
	v := dynet.Vertex(1)
	s.True(s.activeAt(v, 0))
	s.True(s.activeAt(v, 10))
	s.True(s.activeAt(v, 29.999))
	s.False(s.activeAt(v, 30))
	s.False(s.activeAt(v, -1))
	s.False(s.activeAt(dynet.Vertex(4), 10), "no spells: inactive")
}

func (s *QuerySuite) TestIsActiveOver_Rules() {
	v := dynet.Vertex(1)
	s.True(s.activeOver(v, 10, 25, dynet.RuleAll))
	s.False(s.activeOver(v, 10, 35, dynet.RuleAll))
	s.True(s.activeOver(v, 10, 35, dynet.RuleAny))
	s.False(s.activeOver(v, 30, 40, dynet.RuleAny), "touching is not overlapping")
}

func (s *QuerySuite) TestIsActiveOver_AllNeedsOneSpell() {
	v := dynet.Vertex(2)
	s.False(s.activeOver(v, 5, 15, dynet.RuleAll), "adjacent spells never cover jointly")
	s.True(s.activeOver(v, 5, 15, dynet.RuleAny))
	s.True(s.activeOver(v, 10, 20, dynet.RuleAll))
}

func (s *QuerySuite) TestZeroDurationSpell() {
	v := dynet.Vertex(3)
	s.False(s.activeAt(v, 5))
	s.True(s.activeOver(v, 0, 10, dynet.RuleAny))
	s.False(s.activeOver(v, 0, 10, dynet.RuleAll))
}

func (s *QuerySuite) TestInvalidRule() {
	for _, rule := range []dynet.Rule{0, 9} {
		_, err := s.nw.IsActiveOver(dynet.Vertex(1), 0, 10, rule)
		s.ErrorIs(err, dynet.ErrInvalidRule)
		_, err = s.nw.ActiveVerticesOver(0, 10, rule)
		s.ErrorIs(err, dynet.ErrInvalidRule)
		_, err = s.nw.ActiveEdgesOver(0, 10, rule)
		s.ErrorIs(err, dynet.ErrInvalidRule)
	}
	_, err := s.nw.IsActiveOver(dynet.Vertex(1), 10, 0, dynet.RuleAny)
	s.ErrorIs(err, spell.ErrInvalidInterval)
}

func (s *QuerySuite) TestActiveSets() {
	s.Equal([]int{1, 2}, s.nw.ActiveVertices(0))
	s.Equal([]int{1, 2}, s.nw.ActiveVertices(15))
	s.Empty(s.nw.ActiveVertices(50))

	s.Equal([]dynet.EdgeKey{{From: 1, To: 2}}, s.nw.ActiveEdges(5))
	s.Equal([]dynet.EdgeKey{{From: 2, To: 3}}, s.nw.ActiveEdges(45))
	s.Empty(s.nw.ActiveEdges(30))

	vs, err := s.nw.ActiveVerticesOver(0, 100, dynet.RuleAny)
	s.Require().NoError(err)
	s.Equal([]int{1, 2, 3}, vs)

	vs, err = s.nw.ActiveVerticesOver(12, 18, dynet.RuleAll)
	s.Require().NoError(err)
	s.Equal([]int{1, 2}, vs)

	es, err := s.nw.ActiveEdgesOver(0, 100, dynet.RuleAny)
	s.Require().NoError(err)
	s.Equal([]dynet.EdgeKey{{From: 1, To: 2}, {From: 2, To: 3}}, es)

	es, err = s.nw.ActiveEdgesOver(0, 100, dynet.RuleAll)
	s.Require().NoError(err)
	s.Empty(es)
}

func (s *QuerySuite) TestActivityRange() {
	r, ok, err := s.nw.ActivityRange(dynet.Vertex(2))
	s.Require().NoError(err)
	s.True(ok)
	s.True(r.Equal(spell.MustNew(0, 20)))

	_, ok, err = s.nw.ActivityRange(dynet.Vertex(4))
	s.Require().NoError(err)
	s.False(ok, "no spells: no data")

	_, _, err = s.nw.ActivityRange(dynet.Selector{})
	s.ErrorIs(err, dynet.ErrMissingSelector)
}

func TestQuerySuite(t *testing.T) {
	suite.Run(t, new(QuerySuite))
}

func TestParseRule(t *testing.T) {
	cases := []struct {
		in      string
		want    dynet.Rule
		wantErr bool
	}{
		{"any", dynet.RuleAny, false},
		{"all", dynet.RuleAll, false},
		{"ALL", 0, true},
		{"", 0, true},
	}
	for _, tc := range cases {
		got, err := dynet.ParseRule(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Fatalf("ParseRule(%q): expected error", tc.in)
			}
			continue
		}
		if err != nil || got != tc.want {
			t.Fatalf("ParseRule(%q) = %v, %v; want %v", tc.in, got, err, tc.want)
		}
		if got.String() != tc.in {
			t.Fatalf("Rule.String() = %q; want %q", got.String(), tc.in)
		}
	}
	if dynet.Rule(0).String() != "invalid" {
		t.Fatalf("zero Rule must render as invalid")
	}
}
