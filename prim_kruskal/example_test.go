package prim_kruskal_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/hubnet/core"
	"github.com/katalvlaran/hubnet/prim_kruskal"
)

// ExampleKruskal demonstrates Kruskal’s algorithm on a 4-vertex "envelope".
// Edges: 1—2 (4), 1—3 (1), 3—2 (2), 2—4 (3), 3—4 (5), 4—1 (4).
// The MST is {1—3, 3—2, 2—4} with total weight 6.
func ExampleKruskal() {
	edges := []core.Edge{
		{From: 1, To: 2, Weight: 4},
		{From: 1, To: 3, Weight: 1},
		{From: 3, To: 2, Weight: 2},
		{From: 2, To: 4, Weight: 3},
		{From: 3, To: 4, Weight: 5},
		{From: 4, To: 1, Weight: 4},
	}

	res, err := prim_kruskal.Kruskal(4, edges)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Printf("Total: %d, Edges:", res.Total)
	for _, e := range res.Edges {
		fmt.Printf(" %d-%d", e.From, e.To)
	}
	fmt.Println()
	// Output: Total: 6, Edges: 1-3 3-2 2-4
}

// ExamplePrim demonstrates Prim’s algorithm on a pentagon rooted at vertex 1.
// Edges: 1—2 (1), 2—3 (2), 3—4 (3), 4—5 (5), 1—5 (12). MST weight = 11.
func ExamplePrim() {
	edges := []core.Edge{
		{From: 1, To: 2, Weight: 1},
		{From: 1, To: 5, Weight: 12},
		{From: 2, To: 3, Weight: 2},
		{From: 3, To: 4, Weight: 3},
		{From: 4, To: 5, Weight: 5},
	}

	res, err := prim_kruskal.Prim(5, edges, 1)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Printf("Total: %d, Edges:", res.Total)
	for _, e := range res.Edges {
		fmt.Printf(" %d-%d", e.From, e.To)
	}
	fmt.Println()
	// Output: Total: 11, Edges: 1-2 2-3 3-4 4-5
}

// ExampleKruskal_disconnected shows the error returned when no spanning tree exists.
func ExampleKruskal_disconnected() {
	_, err := prim_kruskal.Kruskal(3, []core.Edge{{From: 1, To: 2, Weight: 100}})
	fmt.Println(errors.Is(err, prim_kruskal.ErrDisconnected))
	// Output: true
}
