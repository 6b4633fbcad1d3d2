// Package dsu provides a fixed-capacity Disjoint-Set-Union (union-find)
// structure over dense vertex ids 1..n.
//
// What & Why
//
//   - A DisjointSet maintains a partition of vertices into components and
//     answers "same component?" and "merge components" quickly. Kruskal's MST
//     uses it to reject edges that would close a cycle.
//
// Strategy
//
//   - Storage: two flat slices, parent[] and rank[], indexed by vertex id.
//     Slot 0 is unused so callers never translate ids.
//   - Union by rank: the shallower root is attached under the deeper one;
//     ties bump the surviving root's rank. Height stays ≤ log2(size).
//   - Path compression (default on): Find re-points every vertex on the walk
//     at the root. Combined with union by rank the amortized cost per
//     operation is O(α(n)).
//
// Lifecycle
//
//	d := dsu.New(n)      // capacity for 1..n, no sets yet
//	_ = d.MakeSet(v)     // each vertex before use
//	merged, _ := d.Union(a, b)
//	r, _ := d.Find(v)
//
// NewFull(n) is New(n) followed by MakeSet for every vertex.
//
// Errors
//
//   - ErrOutOfRange : vertex id outside [1, n].
//   - ErrNotMade    : Find/Union/Connected on a vertex without MakeSet.
package dsu
