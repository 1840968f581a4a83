// Package core_test contains test helpers for dynet/core.
//
// Purpose:
//   - Provide small, deterministic fixtures and assertion utilities for core.Graph.
//   - Keep method-contract tests stdlib-only; concurrency tests use testify.

package core_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/dynamic/core"
)

// Common vertex ids used across core tests.
const (
	Vertex1 = 1
	Vertex2 = 2
	Vertex3 = 3
	Vertex4 = 4

	VertexZero    = 0
	VertexMissing = 99
)

// Common sizes used across core tests (avoid magic numbers in test bodies).
const (
	NSmall = 4

	NConcurrentAdds = 200
	NReaders        = 50
	NCloners        = 20
)

// NewPath4 RETURNS an undirected path 1-2-3-4.
func NewPath4(t *testing.T, opts ...core.GraphOption) *core.Graph {
	t.Helper()

	g := core.NewGraph(NSmall, opts...)
	MustNoError(t, g.AddEdge(Vertex1, Vertex2), "AddEdge(1,2)")
	MustNoError(t, g.AddEdge(Vertex2, Vertex3), "AddEdge(2,3)")
	MustNoError(t, g.AddEdge(Vertex3, Vertex4), "AddEdge(3,4)")

	return g
}

// MustNoError FAILS the test if err != nil.
func MustNoError(t *testing.T, err error, op string) {
	t.Helper()

	if err == nil {
		return
	}

	t.Fatalf("%s: unexpected error: %v", op, err)
}

// MustErrorIs FAILS the test if !errors.Is(err, target).
func MustErrorIs(t *testing.T, err error, target error, op string) {
	t.Helper()

	if errors.Is(err, target) {
		return
	}

	t.Fatalf("%s: want errors.Is(err,%v)=true; got err=%v", op, target, err)
}

// MustEqualBool FAILS the test if got != want.
func MustEqualBool(t *testing.T, got, want bool, op string) {
	t.Helper()

	if got == want {
		return
	}

	t.Fatalf("%s: got %v; want %v", op, got, want)
}

// MustEqualInt FAILS the test if got != want.
func MustEqualInt(t *testing.T, got, want int, op string) {
	t.Helper()

	if got == want {
		return
	}

	t.Fatalf("%s: got %d; want %d", op, got, want)
}

// MustEqualInts FAILS the test if the slices differ in length or content.
func MustEqualInts(t *testing.T, got, want []int, op string) {
	t.Helper()

	if len(got) != len(want) {
		t.Fatalf("%s: got %v; want %v", op, got, want)
	}
	for i := range got {
		if got[i] != want[i] {
			t.Fatalf("%s: got %v; want %v", op, got, want)
		}
	}
}
