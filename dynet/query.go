// File: query.go
// Role: Point and interval activity queries, active-set enumeration, activity ranges.
// Determinism:
//   - ActiveVertices* ascending by id; ActiveEdges* ascending by (From, To).
// AI-HINT (file):
//   - RuleAll is single-spell containment, never union coverage.
//   - A vertex without spells is inactive for queries (Reconcile treats it differently).

package dynet

import (
	"sort"

	"github.com/katalvlaran/dynamic/spell"
)

// activeAt reports whether any spell contains t.
func activeAt(list []spell.Spell, t spell.Time) bool {
	var s spell.Spell
	for _, s = range list {
		if s.Contains(t) {
			return true
		}
	}

	return false
}

// activeOver applies a validated rule to the query spell q.
func activeOver(list []spell.Spell, q spell.Spell, rule Rule) bool {
	var s spell.Spell
	for _, s = range list {
		if rule == RuleAll {
			if s.ContainsInterval(q.Onset(), q.Terminus()) {
				return true
			}
			continue
		}
		if spell.Overlaps(s, q) {
			return true
		}
	}

	return false
}

// queryInterval validates rule and builds the query spell.
func queryInterval(onset, terminus spell.Time, rule Rule) (spell.Spell, error) {
	if err := rule.validate(); err != nil {
		return spell.Spell{}, err
	}

	return spell.New(onset, terminus)
}

// IsActiveAt reports whether sel has a spell containing t.
//
// Errors:
//   - ErrMissingSelector, core.ErrVertexNotFound.
//
// Complexity: O(k).
func (nw *Network) IsActiveAt(sel Selector, t spell.Time) (bool, error) {
	key, err := nw.resolve(sel)
	if err != nil {
		return false, err
	}

	return activeAt(nw.spellsOf(key), t), nil
}

// IsActiveOver reports whether sel is active over [onset, terminus] under rule.
//
// Rules:
//   - RuleAny: some stored spell overlaps the interval.
//   - RuleAll: some single stored spell contains the interval. Two adjacent
//     spells that only jointly cover it do not count.
//
// Errors:
//   - ErrInvalidRule, spell.ErrInvalidInterval, ErrMissingSelector, core.ErrVertexNotFound.
//
// Complexity: O(k).
func (nw *Network) IsActiveOver(sel Selector, onset, terminus spell.Time, rule Rule) (bool, error) {
	q, err := queryInterval(onset, terminus, rule)
	if err != nil {
		return false, err
	}
	key, err := nw.resolve(sel)
	if err != nil {
		return false, err
	}

	return activeOver(nw.spellsOf(key), q, rule), nil
}

// ActiveVertices returns, ascending, every vertex active at t.
// Complexity: O(n + total vertex spells).
func (nw *Network) ActiveVertices(t spell.Time) []int {
	return nw.collectVertices(func(list []spell.Spell) bool { return activeAt(list, t) })
}

// ActiveEdges returns, ascending, the stored keys of every edge active at t.
// Complexity: O(E log E + total edge spells).
func (nw *Network) ActiveEdges(t spell.Time) []EdgeKey {
	return nw.collectEdges(func(list []spell.Spell) bool { return activeAt(list, t) })
}

// ActiveVerticesOver returns, ascending, every vertex active over
// [onset, terminus] under rule.
//
// Errors:
//   - ErrInvalidRule, spell.ErrInvalidInterval.
func (nw *Network) ActiveVerticesOver(onset, terminus spell.Time, rule Rule) ([]int, error) {
	q, err := queryInterval(onset, terminus, rule)
	if err != nil {
		return nil, err
	}

	return nw.collectVertices(func(list []spell.Spell) bool { return activeOver(list, q, rule) }), nil
}

// ActiveEdgesOver returns, ascending, every edge active over [onset, terminus]
// under rule.
//
// Errors:
//   - ErrInvalidRule, spell.ErrInvalidInterval.
func (nw *Network) ActiveEdgesOver(onset, terminus spell.Time, rule Rule) ([]EdgeKey, error) {
	q, err := queryInterval(onset, terminus, rule)
	if err != nil {
		return nil, err
	}

	return nw.collectEdges(func(list []spell.Spell) bool { return activeOver(list, q, rule) }), nil
}

// ActivityRange returns (min onset, max terminus) over the spells of sel.
// ok is false when sel has no spells.
//
// Errors:
//   - ErrMissingSelector, core.ErrVertexNotFound.
func (nw *Network) ActivityRange(sel Selector) (r spell.Spell, ok bool, err error) {
	key, err := nw.resolve(sel)
	if err != nil {
		return spell.Spell{}, false, err
	}
	r, ok = spell.Range(nw.spellsOf(key))

	return r, ok, nil
}

func (nw *Network) collectVertices(active func([]spell.Spell) bool) []int {
	n := nw.graph.VertexCount()
	out := make([]int, 0, n)
	for v := 1; v <= n; v++ {
		if active(nw.vertexSpells[v]) {
			out = append(out, v)
		}
	}

	return out
}

func (nw *Network) collectEdges(active func([]spell.Spell) bool) []EdgeKey {
	out := make([]EdgeKey, 0, len(nw.edgeSpells))
	var (
		key  EdgeKey
		list []spell.Spell
	)
	for key, list = range nw.edgeSpells {
		if active(list) {
			out = append(out, key)
		}
	}
	sortEdgeKeys(out)

	return out
}

// sortedEdgeKeys returns every edge key holding at least one spell, ascending.
func (nw *Network) sortedEdgeKeys() []EdgeKey {
	out := make([]EdgeKey, 0, len(nw.edgeSpells))
	var key EdgeKey
	for key = range nw.edgeSpells {
		out = append(out, key)
	}
	sortEdgeKeys(out)

	return out
}

func sortEdgeKeys(keys []EdgeKey) {
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].From != keys[j].From {
			return keys[i].From < keys[j].From
		}
		return keys[i].To < keys[j].To
	})
}
