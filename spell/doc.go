// Package spell implements the activity-interval algebra used by dynamic
// networks.
//
// A Spell is a half-open interval [onset, terminus) on a real time axis.
// Vertices, edges and attribute values of a dynamic network are "active"
// exactly during their spells.
//
// What:
//
//   - Construction with validation (onset ≤ terminus, no NaN bounds).
//   - Point containment:    onset ≤ t < terminus.
//   - Interval containment: s.onset ≤ onset && s.terminus ≥ terminus.
//   - Overlap:              a.onset < b.terminus && b.onset < a.terminus.
//     Touching spells ([0,10) and [10,20)) do NOT overlap.
//   - List helpers: Sort, Merge (overlapping or adjacent spells coalesce),
//     Intersect, Subtract, Range.
//
// Censoring:
//
//	WithOnsetCensored / WithTerminusCensored mark a boundary as possibly not
//	the true start or end of activity. The flags are descriptive metadata:
//	they are excluded from Equal and never influence any algebra.
//
// Immutability:
//
//	Spell fields are unexported and every operation returns a new value;
//	a Spell can be shared freely between goroutines.
//
// Errors:
//
//   - ErrInvalidInterval: onset > terminus, or a NaN bound.
package spell
