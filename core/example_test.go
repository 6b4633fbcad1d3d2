package core_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/hubnet/core"
)

// ExampleNewNetwork builds a tiny three-vertex network.
func ExampleNewNetwork() {
	n, err := core.NewNetwork(3)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	_ = n.AddEdge(1, 2, 4)
	_ = n.AddEdge(2, 3, 1)

	total, _ := core.TotalWeight(n.Edges())
	fmt.Println(n.Vertices(), n.Len(), total)
	// Output: 3 2 5
}

// ExampleNetwork_AddEdge shows the error class of a bad endpoint.
func ExampleNetwork_AddEdge() {
	n, _ := core.NewNetwork(2)
	err := n.AddEdge(1, 3, 1)

	fmt.Println(errors.Is(err, core.ErrVertexOutOfRange), errors.Is(err, core.ErrInvalidInput))
	// Output: true true
}
