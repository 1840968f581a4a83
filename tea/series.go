// File: series.go
// Role: Series (value, spell) step function and the keyed Store.
// Determinism:
//   - Series lookups are first-match in insertion order.
//   - Store.Names returns names sorted ascending.
// AI-HINT (file):
//   - Append never merges or checks overlap; callers own that policy.
//   - Entries/Series return copies; mutating them does not affect the store.

package tea

import (
	"sort"

	"github.com/katalvlaran/dynamic/spell"
)

// Entry is one (value, spell) pair of a Series.
type Entry struct {
	Value Value
	Spell spell.Spell
}

// Series is an insertion-ordered list of entries forming a step function.
// The zero Series is empty and ready to use.
type Series struct {
	entries []Entry
}

// Append adds (v, s) after all existing entries.
func (ts *Series) Append(v Value, s spell.Spell) {
	ts.entries = append(ts.entries, Entry{Value: v, Spell: s})
}

// At returns the value of the first entry whose spell contains t.
// ok is false when no entry matches.
//
// Complexity: O(len) in the worst case.
func (ts *Series) At(t spell.Time) (Value, bool) {
	var e Entry
	for _, e = range ts.entries {
		if e.Spell.Contains(t) {
			return e.Value, true
		}
	}

	return Value{}, false
}

// Len returns the number of entries.
func (ts *Series) Len() int { return len(ts.entries) }

// Entries returns a copy of the entries in insertion order.
func (ts *Series) Entries() []Entry {
	out := make([]Entry, len(ts.entries))
	copy(out, ts.entries)

	return out
}

// attrKey addresses one series inside a Store.
type attrKey[K comparable] struct {
	key  K
	name string
}

// Store maps (key, attribute name) pairs to series.
// The zero Store is not usable; construct with NewStore.
type Store[K comparable] struct {
	series map[attrKey[K]]*Series
}

// NewStore returns an empty Store.
func NewStore[K comparable]() *Store[K] {
	return &Store[K]{series: make(map[attrKey[K]]*Series)}
}

// Set appends (v, s) to the series of (key, name), creating it if absent.
func (st *Store[K]) Set(key K, name string, v Value, s spell.Spell) {
	ak := attrKey[K]{key: key, name: name}
	ts, ok := st.series[ak]
	if !ok {
		ts = &Series{}
		st.series[ak] = ts
	}
	ts.Append(v, s)
}

// Get returns the value of (key, name) at time t.
// ok is false when the series does not exist or no entry covers t.
func (st *Store[K]) Get(key K, name string, t spell.Time) (Value, bool) {
	ts, ok := st.series[attrKey[K]{key: key, name: name}]
	if !ok {
		return Value{}, false
	}

	return ts.At(t)
}

// Series returns a copy of the entries of (key, name).
// ok is false when the series does not exist.
func (st *Store[K]) Series(key K, name string) ([]Entry, bool) {
	ts, ok := st.series[attrKey[K]{key: key, name: name}]
	if !ok {
		return nil, false
	}

	return ts.Entries(), true
}

// Names returns the distinct attribute names across all keys, sorted ascending.
func (st *Store[K]) Names() []string {
	seen := make(map[string]struct{}, len(st.series))
	var ak attrKey[K]
	for ak = range st.series {
		seen[ak.name] = struct{}{}
	}
	out := make([]string, 0, len(seen))
	var name string
	for name = range seen {
		out = append(out, name)
	}
	sort.Strings(out)

	return out
}

// Len returns the number of (key, name) series held.
func (st *Store[K]) Len() int { return len(st.series) }
