// Package core defines the dense integer network model shared by every
// hubnet package: Edge, Network and the validation sentinels.
//
// Vertices are identified by integers 1..V. Index 0 is never a vertex so that
// per-vertex arrays can be indexed directly by id. Edges are undirected and
// carry a non-negative int64 weight (a cost).
//
// Input rules:
//
//   - V ≥ 1                         (else ErrTooFewVertices)
//   - 1 ≤ From, To ≤ V              (else ErrVertexOutOfRange)
//   - Weight ≥ 0                    (else ErrNegativeWeight)
//   - Parallel edges and self-loops are legal input.
//
// Every validation sentinel wraps ErrInvalidInput, so a caller that only needs
// the error class can test errors.Is(err, core.ErrInvalidInput).
//
// Quick example:
//
//	n, _ := core.NewNetwork(3)
//	_ = n.AddEdge(1, 2, 4)
//	_ = n.AddEdge(2, 3, 1)
//	fmt.Println(n.Vertices(), n.Len()) // 3 2
package core
