// SPDX-License-Identifier: MIT
//
// File: network.go
// Role: Network construction, edge insertion and whole-network validation.

package core

import (
	"fmt"
	"math"
)

// NewNetwork creates an empty Network over vertices 1..v.
//
// Self-loops are stored by default; pass WithoutLoops() to drop them on insert.
//
// Errors:
//   - ErrTooFewVertices if v < 1.
//
// Complexity: O(len(opts)).
func NewNetwork(v int, opts ...NetworkOption) (*Network, error) {
	if v < 1 {
		return nil, fmt.Errorf("NewNetwork: v=%d: %w", v, ErrTooFewVertices)
	}

	n := &Network{vertices: v, allowLoops: true}
	for _, opt := range opts {
		opt(n)
	}

	return n, nil
}

// FromEdges builds a Network over 1..v holding a copy of edges, validated.
// opts are applied after the capacity hint.
func FromEdges(v int, edges []Edge, opts ...NetworkOption) (*Network, error) {
	n, err := NewNetwork(v, append([]NetworkOption{WithCapacity(len(edges))}, opts...)...)
	if err != nil {
		return nil, err
	}
	for _, e := range edges {
		if err = n.AddEdge(e.From, e.To, e.Weight); err != nil {
			return nil, err
		}
	}

	return n, nil
}

// Vertices returns the vertex count V.
func (n *Network) Vertices() int { return n.vertices }

// Len returns the number of stored edges.
func (n *Network) Len() int { return len(n.edges) }

// AddEdge appends the undirected edge (from, to, weight).
//
// Errors:
//   - ErrVertexOutOfRange if either endpoint is outside [1, V].
//   - ErrNegativeWeight if weight < 0.
//
// Complexity: amortized O(1).
func (n *Network) AddEdge(from, to int, weight int64) error {
	if err := CheckEdge(n.vertices, Edge{From: from, To: to, Weight: weight}); err != nil {
		return err
	}
	if from == to && !n.allowLoops {
		return nil
	}
	n.edges = append(n.edges, Edge{From: from, To: to, Weight: weight})

	return nil
}

// Edges returns a copy of the stored edges in insertion order.
func (n *Network) Edges() []Edge {
	out := make([]Edge, len(n.edges))
	copy(out, n.edges)

	return out
}

// Extend returns a new Network over v+extra vertices holding the same edges,
// with room for spare more edges. The receiver is left untouched.
func (n *Network) Extend(extra, spare int) *Network {
	out := &Network{
		vertices:   n.vertices + extra,
		edges:      make([]Edge, len(n.edges), len(n.edges)+max(spare, 0)),
		allowLoops: n.allowLoops,
	}
	copy(out.edges, n.edges)

	return out
}

// AddCost returns total+w, or ErrCostOverflow if the sum exceeds math.MaxInt64.
// Both operands are expected to be non-negative.
func AddCost(total, w int64) (int64, error) {
	if w > 0 && total > math.MaxInt64-w {
		return 0, fmt.Errorf("%d + %d: %w", total, w, ErrCostOverflow)
	}

	return total + w, nil
}

// TotalWeight sums the weights of edges.
//
// Errors: ErrCostOverflow.
func TotalWeight(edges []Edge) (int64, error) {
	var (
		total int64
		err   error
	)
	for i, e := range edges {
		if total, err = AddCost(total, e.Weight); err != nil {
			return 0, fmt.Errorf("edges[%d]: %w", i, err)
		}
	}

	return total, nil
}

// CheckEdge validates e against a vertex range of [1, v].
func CheckEdge(v int, e Edge) error {
	if e.From < 1 || e.From > v || e.To < 1 || e.To > v {
		return fmt.Errorf("edge (%d,%d): vertices must lie in [1,%d]: %w", e.From, e.To, v, ErrVertexOutOfRange)
	}
	if e.Weight < 0 {
		return fmt.Errorf("edge (%d,%d): weight %d: %w", e.From, e.To, e.Weight, ErrNegativeWeight)
	}

	return nil
}

// Validate checks v and every edge, returning the first violation.
//
// Complexity: O(len(edges)).
func Validate(v int, edges []Edge) error {
	if v < 1 {
		return fmt.Errorf("v=%d: %w", v, ErrTooFewVertices)
	}
	for i, e := range edges {
		if err := CheckEdge(v, e); err != nil {
			return fmt.Errorf("edges[%d]: %w", i, err)
		}
	}

	return nil
}
