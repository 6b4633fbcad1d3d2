// Package prim_kruskal provides two algorithms for computing the Minimum Spanning Tree (MST)
// of an undirected, weighted graph over dense vertex ids 1..V: Kruskal’s algorithm and Prim’s algorithm.
//
// What & Why
//
//   - What is an MST?
//     Given an undirected, connected, weighted graph G = (V, E), an MST is a subset T ⊆ E such that
//     T connects all vertices in V and the sum of weights of edges in T is minimized.
//
//   - Why here: hubnet prices facility networks. Every feasible plan is a spanning tree of the
//     facility graph (optionally extended with a virtual hub vertex), and the cheapest plan is its MST.
//
// Algorithms Provided
//
//   - Kruskal(v int, edges []core.Edge) (Result, error)
//
//   - Strategy: sort edges by weight, scan from lightest to heaviest, and accept an edge iff its
//     endpoints sit in different dsu.DisjointSet components. Stop once v−1 edges are accepted.
//
//   - Complexity: O(E log E + α(V)·E) time, O(V + E) space.
//
//   - Determinism: stable sort, so equal weights keep input order.
//
//   - Prim(v int, edges []core.Edge, root int) (Result, error)
//
//   - Strategy: grow a single tree from root with a min-heap of frontier arcs.
//
//   - Complexity: O(E log E) time, O(V + E) space.
//
//   - Use-Case: an independent reference for Kruskal in tests and in the CLI (--method prim).
//
// Both algorithms return the same Total on every input; the chosen edges may
// differ under weight ties because all MSTs of a graph share one total weight.
//
// Error Conditions
//
//   - core.ErrTooFewVertices / core.ErrVertexOutOfRange / core.ErrNegativeWeight
//     Input validation; all satisfy errors.Is(err, core.ErrInvalidInput).
//
//   - ErrDisconnected
//     The edge queue ran out before v−1 edges were accepted. The algorithms never
//     loop waiting for more edges and never return a partial total.
//
//   - ErrRootOutOfRange (Prim only), ErrUnknownMethod (Compute only).
//
// Self-loops are ignored. Parallel edges are legal; only the lightest useful one is kept.
package prim_kruskal
