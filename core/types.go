// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Edge and Network types, construction options and sentinel errors.
// Policy:
//   - Vertices are dense integer ids in [1, V]; index 0 is never a vertex.
//   - Sentinels are defined once here; callers branch with errors.Is.
//   - Every validation error also satisfies errors.Is(err, ErrInvalidInput).

package core

import (
	"errors"
)

// Sentinel errors for core network operations.
var (
	// ErrInvalidInput is the umbrella class for malformed or out-of-range input.
	// All other validation sentinels in this package wrap it.
	ErrInvalidInput = errors.New("core: invalid input")

	// ErrVertexOutOfRange indicates an edge endpoint outside [1, V].
	ErrVertexOutOfRange = newInputError("core: vertex out of range")

	// ErrNegativeWeight indicates an edge or install cost below zero.
	ErrNegativeWeight = newInputError("core: negative weight")

	// ErrTooFewVertices indicates a network declared with fewer than one vertex.
	ErrTooFewVertices = newInputError("core: vertex count must be at least 1")

	// ErrCostOverflow indicates a cost sum that does not fit in int64.
	ErrCostOverflow = newInputError("core: total cost overflows int64")
)

// Edge is an undirected, weighted link between two vertices.
//
// From and To are 1-based vertex ids. Orientation carries no meaning;
// (a,b,w) and (b,a,w) describe the same link. From == To is a self-loop.
type Edge struct {
	// From is one endpoint.
	From int `json:"from"`

	// To is the other endpoint.
	To int `json:"to"`

	// Weight is the non-negative cost of the link.
	Weight int64 `json:"weight"`
}

// Network is a vertex count plus an arbitrary-order list of undirected edges.
//
// Parallel edges and self-loops are stored as given; algorithms decide
// how to treat them. A Network is not safe for concurrent mutation.
type Network struct {
	vertices   int
	edges      []Edge
	allowLoops bool
}

// NetworkOption configures a Network at construction time.
type NetworkOption func(n *Network)

// WithCapacity preallocates room for m edges.
func WithCapacity(m int) NetworkOption {
	return func(n *Network) {
		if m > 0 {
			n.edges = make([]Edge, 0, m)
		}
	}
}

// WithoutLoops makes AddEdge silently drop self-loops instead of storing them.
func WithoutLoops() NetworkOption {
	return func(n *Network) { n.allowLoops = false }
}

// invalidInputError ties a specific validation sentinel to ErrInvalidInput.
type invalidInputError struct {
	msg string
}

func (e *invalidInputError) Error() string { return e.msg }

// Unwrap exposes the umbrella class so errors.Is(err, ErrInvalidInput) holds.
func (e *invalidInputError) Unwrap() error { return ErrInvalidInput }

func newInputError(msg string) error { return &invalidInputError{msg: msg} }
