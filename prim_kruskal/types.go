// Package prim_kruskal holds the Result type, the run options and the
// sentinel errors shared by both spanning-tree algorithms.
package prim_kruskal

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/hubnet/core"
)

// ErrDisconnected indicates that the edge set cannot connect all vertices, so
// no spanning tree exists. It is detected when the edge queue is exhausted
// before |V|-1 edges have been accepted.
var ErrDisconnected = errors.New("prim_kruskal: graph is disconnected")

// ErrRootOutOfRange indicates that Prim's start vertex is outside [1, V].
var ErrRootOutOfRange = errors.New("prim_kruskal: root vertex out of range")

// ErrUnknownMethod indicates that MSTOptions.Method names no known algorithm.
var ErrUnknownMethod = errors.New("prim_kruskal: unknown MST method")

// MethodPrim grows the tree outward from Root with a binary heap of frontier edges.
const MethodPrim = "prim"

// MethodKruskal scans edges cheapest first and joins components through a DSU.
const MethodKruskal = "kruskal"

// Result is the outcome of a successful MST run.
//
// Edges holds exactly V-1 accepted edges in acceptance order; Total is the sum
// of their weights.
type Result struct {
	// Edges accepted into the spanning tree.
	Edges []core.Edge

	// Total weight of Edges.
	Total int64
}

// MSTOptions is the resolved run configuration consumed by Compute.
type MSTOptions struct {
	Method string // MethodKruskal or MethodPrim
	Root   int    // Prim start vertex; 0 means vertex 1
}

// Option configures MSTOptions.
type Option func(*MSTOptions)

// WithMethod picks the algorithm. Compute rejects other names with ErrUnknownMethod.
func WithMethod(m string) Option {
	return func(opts *MSTOptions) {
		opts.Method = m
	}
}

// WithRoot sets Prim's start vertex. Kruskal ignores it.
func WithRoot(root int) Option {
	return func(opts *MSTOptions) {
		opts.Root = root
	}
}

// DefaultOptions is Kruskal with no explicit root.
func DefaultOptions() MSTOptions {
	return MSTOptions{
		Method: MethodKruskal,
		Root:   0,
	}
}

// Compute selects and runs the MST algorithm on net based on the options.
//
//	– MethodKruskal: Kruskal(net.Vertices(), net.Edges()).
//	– MethodPrim:    Prim(net.Vertices(), net.Edges(), opts.Root).
//	– Otherwise:     ErrUnknownMethod.
func Compute(net *core.Network, opts ...Option) (Result, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if net == nil {
		return Result{}, fmt.Errorf("Compute: nil network: %w", core.ErrInvalidInput)
	}

	switch cfg.Method {
	case MethodKruskal:
		return Kruskal(net.Vertices(), net.Edges())
	case MethodPrim:
		return Prim(net.Vertices(), net.Edges(), cfg.Root)
	default:
		return Result{}, fmt.Errorf("Compute: method %q: %w", cfg.Method, ErrUnknownMethod)
	}
}
