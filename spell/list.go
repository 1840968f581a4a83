// File: list.go
// Role: Operations over spell lists: sort, merge, intersect, subtract, range.
// Determinism:
//   - Sort is stable; Merge output is sorted and pairwise non-touching.
// AI-HINT (file):
//   - Merge coalesces adjacent spells too ([0,10)+[10,20) → [0,20)), unlike Overlaps.
//   - None of these helpers mutate their input slices.

package spell

import "sort"

// Sort returns a sorted copy of spells (Compare order, stable).
// Complexity: O(k log k).
func Sort(spells []Spell) []Spell {
	out := make([]Spell, len(spells))
	copy(out, spells)
	sort.SliceStable(out, func(i, j int) bool { return Compare(out[i], out[j]) < 0 })

	return out
}

// Merge coalesces overlapping or exactly adjacent spells.
//
// Implementation:
//   - Stage 1: Sort a copy by onset (then terminus).
//   - Stage 2: Sweep with a running current spell; when next.onset ≤ current.terminus
//     extend current to max(current.terminus, next.terminus), otherwise flush it.
//   - Stage 3: Flush the final current spell.
//
// Behavior highlights:
//   - Idempotent: Merge(Merge(x)) equals Merge(x).
//   - Gaps are preserved: [0,10)+[15,25) stays two spells.
//   - The merged onset keeps the censoring flag of the earliest spell; the merged
//     terminus keeps the flag of the spell that supplied it.
//
// Complexity: O(k log k).
func Merge(spells []Spell) []Spell {
	if len(spells) == 0 {
		return nil
	}
	sorted := Sort(spells)

	out := make([]Spell, 0, len(sorted))
	cur := sorted[0]
	var next Spell
	for _, next = range sorted[1:] {
		if next.onset <= cur.terminus {
			switch {
			case next.terminus > cur.terminus:
				cur = Spell{
					onset:            cur.onset,
					terminus:         next.terminus,
					onsetCensored:    cur.onsetCensored,
					terminusCensored: next.terminusCensored,
				}
			case next.terminus == cur.terminus && next.terminusCensored && !cur.terminusCensored:
				cur = Spell{
					onset:            cur.onset,
					terminus:         cur.terminus,
					onsetCensored:    cur.onsetCensored,
					terminusCensored: true,
				}
			}

			continue
		}
		out = append(out, cur)
		cur = next
	}
	out = append(out, cur)

	return out
}

// Intersect returns [max(onsets), min(termini)) of the given spells.
// ok is false when no spell is given or the intersection has no positive
// duration; zero-duration intersections are treated as empty.
func Intersect(spells ...Spell) (Spell, bool) {
	if len(spells) == 0 {
		return Spell{}, false
	}
	start, stop := spells[0].onset, spells[0].terminus
	var s Spell
	for _, s = range spells[1:] {
		if s.onset > start {
			start = s.onset
		}
		if s.terminus < stop {
			stop = s.terminus
		}
	}
	if start >= stop {
		return Spell{}, false
	}

	return Spell{onset: start, terminus: stop}, true
}

// Subtract returns the parts of s that lie outside cut, in ascending order.
//
// Behavior highlights:
//   - No overlap (or a zero-duration cut): s is returned unchanged.
//   - cut strictly inside s: two pieces.
//   - cut covering s: no pieces.
//   - Surviving pieces keep the censoring flag of the boundary they retain.
func Subtract(s, cut Spell) []Spell {
	if cut.Duration() == 0 || !Overlaps(s, cut) {
		return []Spell{s}
	}
	out := make([]Spell, 0, 2)
	if s.onset < cut.onset {
		out = append(out, Spell{onset: s.onset, terminus: cut.onset, onsetCensored: s.onsetCensored})
	}
	if cut.terminus < s.terminus {
		out = append(out, Spell{onset: cut.terminus, terminus: s.terminus, terminusCensored: s.terminusCensored})
	}

	return out
}

// Range returns (min onset, max terminus) over spells.
// ok is false for an empty list ("no data", not an error).
func Range(spells []Spell) (Spell, bool) {
	if len(spells) == 0 {
		return Spell{}, false
	}
	lo, hi := spells[0].onset, spells[0].terminus
	var s Spell
	for _, s = range spells[1:] {
		if s.onset < lo {
			lo = s.onset
		}
		if s.terminus > hi {
			hi = s.terminus
		}
	}

	return Spell{onset: lo, terminus: hi}, true
}
