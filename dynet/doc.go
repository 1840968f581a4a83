// Package dynet models dynamic networks: graphs whose vertices, edges and
// attributes are active only during specific time intervals (spells).
//
// 🚀 What is a dynamic network?
//
//	A Network wraps a static core.Graph holding the maximum ever-active
//	vertex set 1..n and edge set, plus an activity store:
//
//	  vertex id → sorted []spell.Spell
//	  EdgeKey   → sorted []spell.Spell
//
//	and two time-varying attribute stores (vertex and edge). An observation
//	period [start, end] documents the study window; it never clips spells.
//
// ✨ Key features:
//   - Spell mutation: AddSpell, Activate, RemoveSpell, MergeSpells, Deactivate
//   - Point queries (IsActiveAt) and interval queries (IsActiveOver) with
//     RuleAny (some spell overlaps) or RuleAll (ONE spell contains the interval)
//   - Snapshot extraction with dense re-indexing: ExtractAt, ExtractOver,
//     Slice, SliceContext; union view: Collapse
//   - Timing summaries (TimingInfo) and activity ranges (ActivityRange)
//   - Reconciliation of edge activity with endpoint activity (Reconcile)
//
// Selectors:
//
//	Vertex(v) and Edge(i, j) address one element. The zero Selector addresses
//	nothing and fails with ErrMissingSelector. Undirected networks normalise
//	Edge(j, i) to Edge(i, j) (smaller id first); directed ones keep the order.
//
// RuleAll semantics:
//
//	RuleAll is per-spell containment, NOT union coverage. With spells
//	[0,10) and [10,20) the interval [5,15] is not "all"-active because no
//	single spell contains it, even though their union does. Merge spells
//	first (MergeSpells) when union semantics are wanted.
//
// Concurrency:
//
//	A Network has a single writer and no internal locking. Queries and
//	extraction never mutate it, so they may run concurrently as long as no
//	mutation happens at the same time (SliceContext relies on this).
//
// Errors:
//
//   - spell.ErrInvalidInterval: onset > terminus.
//   - ErrInvalidRule: a Rule other than RuleAny / RuleAll.
//   - ErrMissingSelector: zero Selector.
//   - core.ErrVertexNotFound, core.ErrLoopNotAllowed: from the static graph.
//
//	"No data" results (no spells, no attribute value) are reported through
//	an ok flag, never through an error.
package dynet
