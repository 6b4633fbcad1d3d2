// Package prim_kruskal provides an implementation of Prim’s Minimum Spanning Tree (MST) algorithm.
// It grows the MST from a root vertex using a min‐heap and serves as a reference for Kruskal.
package prim_kruskal

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/hubnet/core"
)

// Prim computes the Minimum Spanning Tree (MST) of the undirected graph over
// vertices 1..v by growing outwards from root using a min‐heap.
//
// Error Conditions:
//   - core.ErrTooFewVertices, core.ErrVertexOutOfRange, core.ErrNegativeWeight: as Kruskal.
//   - ErrRootOutOfRange : root outside [1, v] (0 selects vertex 1).
//   - core.ErrCostOverflow : the tree weight exceeds math.MaxInt64.
//   - ErrDisconnected   : the edges cannot connect all v vertices, including
//     the early case of fewer than v-1 non-loop edges.
//
// Steps:
//  1. Validate v, root and every edge.
//  2. Build an adjacency list; each undirected edge yields two arcs, self-loops none.
//  3. Mark root visited and push its arcs.
//  4. While the heap is non-empty and MST has < v-1 edges:
//     a. Pop the lightest arc (u→w).
//     b. Skip it if w is already visited.
//     c. Otherwise accept it, mark w, and push w's arcs to unvisited vertices.
//  5. If MST size < v-1 → ErrDisconnected.
//
// Complexity: O(E log E) time, O(V + E) memory.
func Prim(v int, edges []core.Edge, root int) (Result, error) {
	// 1. Validate.
	if err := core.Validate(v, edges); err != nil {
		return Result{}, fmt.Errorf("Prim: %w", err)
	}
	if root == 0 {
		root = 1
	}
	if root < 1 || root > v {
		return Result{}, fmt.Errorf("Prim: root %d not in [1,%d]: %w", root, v, ErrRootOutOfRange)
	}
	if v == 1 {
		return Result{Edges: []core.Edge{}}, nil
	}

	// Too few edges to span: fail before allocating O(v) state.
	usable := 0
	for _, e := range edges {
		if e.From != e.To {
			usable++
		}
	}
	if usable < v-1 {
		return Result{}, fmt.Errorf("Prim: %d usable edges for %d vertices: %w", usable, v, ErrDisconnected)
	}

	// 2. Adjacency list indexed by vertex id.
	adj := make([][]arc, v+1)
	for _, e := range edges {
		if e.From == e.To {
			continue
		}
		adj[e.From] = append(adj[e.From], arc{to: e.To, weight: e.Weight})
		adj[e.To] = append(adj[e.To], arc{to: e.From, weight: e.Weight})
	}

	// 3. Seed the frontier.
	visited := make([]bool, v+1)
	mst := make([]core.Edge, 0, v-1)
	var (
		total int64
		err   error
	)

	pq := &arcPQ{}
	heap.Init(pq)
	visited[root] = true
	for _, a := range adj[root] {
		heap.Push(pq, frontierArc{from: root, arc: a})
	}

	// 4. Grow.
	for pq.Len() > 0 && len(mst) < v-1 {
		fa := heap.Pop(pq).(frontierArc)
		w := fa.to
		if visited[w] {
			continue
		}
		visited[w] = true
		mst = append(mst, core.Edge{From: fa.from, To: w, Weight: fa.weight})
		if total, err = core.AddCost(total, fa.weight); err != nil {
			return Result{}, fmt.Errorf("Prim: after %d edges: %w", len(mst), err)
		}

		for _, a := range adj[w] {
			if !visited[a.to] {
				heap.Push(pq, frontierArc{from: w, arc: a})
			}
		}
	}

	// 5. Coverage check.
	if len(mst) < v-1 {
		return Result{}, fmt.Errorf("Prim: reached %d of %d vertices: %w", len(mst)+1, v, ErrDisconnected)
	}

	return Result{Edges: mst, Total: total}, nil
}

// arc is one direction of an undirected edge in the adjacency list.
type arc struct {
	to     int
	weight int64
}

// frontierArc is an arc leaving the current tree.
type frontierArc struct {
	from int
	arc
}

// arcPQ implements heap.Interface for a min‐heap of frontier arcs ordered by weight.
type arcPQ []frontierArc

func (pq arcPQ) Len() int { return len(pq) }

func (pq arcPQ) Less(i, j int) bool { return pq[i].weight < pq[j].weight }

func (pq arcPQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push appends a frontierArc; called by heap.Push.
func (pq *arcPQ) Push(x interface{}) { *pq = append(*pq, x.(frontierArc)) }

// Pop removes the last element after heap adjustment; called by heap.Pop.
func (pq *arcPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
