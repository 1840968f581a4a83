// Package tea stores time-varying attributes (TEAs): attribute values that
// behave as step functions over time.
//
// A Series is an insertion-ordered list of (Value, spell.Spell) entries.
// Entries are neither sorted nor required to be disjoint. Lookup at time t
// returns the value of the FIRST entry, in insertion order, whose spell
// contains t; later overlapping entries never shadow earlier ones.
//
// Value is a tagged variant over the supported kinds (string, float64,
// int64, bool) so heterogeneous attributes can share one Store without
// resorting to interface{} values.
//
// Store[K] groups series by (key, attribute name), where K is the element
// key type of the owner (vertex ids, edge keys, ...).
//
// "No value" is reported through an ok flag and is never an error.
package tea
