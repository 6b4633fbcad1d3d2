// Package prim_kruskal provides an implementation of Kruskal’s Minimum Spanning Tree algorithm.
// It works on a vertex count plus an arbitrary-order edge list and produces the MST edges.
package prim_kruskal

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/hubnet/core"
	"github.com/katalvlaran/hubnet/dsu"
)

// Kruskal computes the Minimum Spanning Tree (MST) of the undirected graph
// over vertices 1..v described by edges.
// It uses a dsu.DisjointSet with path compression and union by rank.
//
// Error Conditions:
//   - core.ErrTooFewVertices  : v < 1.
//   - core.ErrVertexOutOfRange: an endpoint outside [1, v].
//   - core.ErrNegativeWeight  : a weight below zero.
//   - core.ErrCostOverflow    : the tree weight exceeds math.MaxInt64.
//   - ErrDisconnected         : the edges cannot connect all v vertices.
//
// Steps:
//  1. Validate v and every edge.
//  2. If v == 1 → trivial MST (no edges, weight 0) regardless of edges.
//  3. Copy edges, skipping self-loops; the caller's slice is never reordered.
//  4. Sort by ascending Weight (stable, so equal weights keep input order).
//  5. Make one DSU singleton per vertex 1..v.
//  6. For each edge in order, accept it iff Union merges two components.
//  7. Stop as soon as v-1 edges are accepted. If the edges run out first → ErrDisconnected.
//
// Complexity: O(E log E + α(V)·E). Memory: O(E + V).
func Kruskal(v int, edges []core.Edge) (Result, error) {
	// 1. Validate inputs before touching any state.
	if err := core.Validate(v, edges); err != nil {
		return Result{}, fmt.Errorf("Kruskal: %w", err)
	}

	// 2. One vertex is already spanned.
	if v == 1 {
		return Result{Edges: []core.Edge{}}, nil
	}

	// 3. Collect candidate edges; self-loops can never merge two components.
	queue := make([]core.Edge, 0, len(edges))
	for _, e := range edges {
		if e.From == e.To {
			continue
		}
		queue = append(queue, e)
	}
	if len(queue) < v-1 {
		// Not enough edges to span; skip the sort entirely.
		return Result{}, fmt.Errorf("Kruskal: %d usable edges for %d vertices: %w", len(queue), v, ErrDisconnected)
	}

	// 4. Non-decreasing weight order.
	sort.SliceStable(queue, func(i, j int) bool {
		return queue[i].Weight < queue[j].Weight
	})

	// 5. Fresh partition of singletons.
	sets := dsu.NewFull(v)

	// 6. Greedy selection.
	var (
		mst   = make([]core.Edge, 0, v-1)
		total int64
	)
	for _, e := range queue {
		merged, err := sets.Union(e.From, e.To)
		if err != nil {
			// Unreachable after Validate; surfaced rather than swallowed.
			return Result{}, fmt.Errorf("Kruskal: %w", err)
		}
		if !merged {
			continue // would close a cycle
		}
		mst = append(mst, e)
		if total, err = core.AddCost(total, e.Weight); err != nil {
			return Result{}, fmt.Errorf("Kruskal: after %d edges: %w", len(mst), err)
		}
		// 7. Tree complete: leave the remaining queue untouched.
		if len(mst) == v-1 {
			return Result{Edges: mst, Total: total}, nil
		}
	}

	return Result{}, fmt.Errorf("Kruskal: accepted %d of %d edges: %w", len(mst), v-1, ErrDisconnected)
}
