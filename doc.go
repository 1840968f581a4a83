// Package dynamic is an in-memory toolkit for networks whose vertices and
// edges come and go over time.
//
// 🚀 What is dynamic?
//
//	A small library that records WHEN each vertex and edge exists and turns
//	that record back into ordinary static graphs:
//		• Spells: half-open activity intervals [onset, terminus) with merge,
//		  intersect and subtract
//		• Time-varying attributes: (value, spell) step functions per vertex or edge
//		• Activity queries: at a point, or over an interval under "any" / "all"
//		• Extraction: point and interval snapshots, slice sequences, collapse
//		• Reconciliation: clip edge activity to the activity of its endpoints
//
// Under the hood, everything is organized under four subpackages:
//
//	core/  — static Graph with dense vertex ids, static attributes, subgraphs
//	spell/ — the Spell type and interval-list algebra
//	tea/   — tagged attribute values and (value, spell) series
//	dynet/ — the dynamic Network, queries, extraction and reconciliation
//
// Quick ASCII example (vertex activity over time):
//
//	  1 ████████████░░░░░░░░
//	  2 ░░░░████████████████
//	    0         10        20
//
//	edge (1, 2) can be active at most over [4, 12) once reconciled.
//
// Graph algorithms are not part of this module: run them on snapshots.
//
//	go get github.com/katalvlaran/dynamic
package dynamic
