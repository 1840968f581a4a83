package dynet_test

import (
	"fmt"

	"github.com/katalvlaran/dynamic/dynet"
	"github.com/katalvlaran/dynamic/tea"
)

// ExampleNetwork builds a three-person contact network and queries it.
func ExampleNetwork() {
	// 1) Observation period [0, 100], three vertices:
	nw, err := dynet.New(3, 0, 100)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// 2) Everyone is present for the first half; vertex 3 stays longer:
	_ = nw.Activate(dynet.Vertex(1), 0, 50)
	_ = nw.Activate(dynet.Vertex(2), 0, 50)
	_ = nw.Activate(dynet.Vertex(3), 0, 100)

	// 3) Contacts; the first spell of an edge creates it:
	_ = nw.Activate(dynet.Edge(1, 2), 10, 20)
	_ = nw.Activate(dynet.Edge(3, 2), 30, 80)
	_ = nw.SetAttribute(dynet.Vertex(3), "mood", tea.String("happy"), 0, 60)

	// 4) Queries:
	fmt.Println(nw.ActiveVertices(60))
	fmt.Println(nw.ActiveEdges(15))
	mood, _, _ := nw.Attribute(dynet.Vertex(3), "mood", 42)
	fmt.Println(mood)

	// 5) Clip contacts to the presence of both people:
	nw.Reconcile()
	r, _, _ := nw.ActivityRange(dynet.Edge(2, 3))
	fmt.Println(r)

	// Output:
	// [3]
	// [(1, 2)]
	// happy
	// [30, 50)
}

// ExampleExtractAt re-indexes the active vertices of a snapshot.
func ExampleExtractAt() {
	nw, _ := dynet.New(4, 0, 10)
	_ = nw.Activate(dynet.Vertex(2), 0, 10)
	_ = nw.Activate(dynet.Vertex(4), 0, 10)
	_ = nw.Activate(dynet.Edge(2, 4), 0, 5)

	snap, _ := dynet.ExtractAt(nw, 1)
	fmt.Println(snap.Origin, snap.Graph.Edges())

	// Output:
	// [2 4] [{1 2}]
}
