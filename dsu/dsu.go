// SPDX-License-Identifier: MIT
//
// File: dsu.go
// Role: Disjoint-Set-Union over dense vertex ids 1..n.
// Policy:
//   - parent/rank are flat slices indexed by vertex id; slot 0 is unused.
//   - A vertex takes part in Find/Union only after MakeSet.
//   - Errors are sentinels wrapped with the method name; no runtime panics.

package dsu

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfRange indicates a vertex id outside [1, Len()].
	ErrOutOfRange = errors.New("dsu: vertex out of range")

	// ErrNotMade indicates Find/Union on a vertex that was never passed to MakeSet.
	ErrNotMade = errors.New("dsu: vertex has no set")
)

// notMade marks an allocated slot that MakeSet has not initialized yet.
const notMade = -1

// Option configures a DisjointSet at construction.
type Option func(*DisjointSet)

// WithPathCompression toggles path compression in Find. Enabled by default.
// With it disabled, union by rank alone keeps every tree O(log n) high.
func WithPathCompression(on bool) Option {
	return func(d *DisjointSet) { d.compress = on }
}

// DisjointSet tracks a partition of vertices 1..n into components.
//
// It is not safe for concurrent use.
type DisjointSet struct {
	parent   []int // parent[v] == v for roots, notMade for unmade slots
	rank     []int // upper bound on subtree height, meaningful for roots
	count    int   // number of components among made vertices
	compress bool
}

// New allocates a DisjointSet able to hold vertices 1..n. No vertex is a set
// yet; call MakeSet for each, or use NewFull.
//
// Complexity: O(n) time and memory.
func New(n int, opts ...Option) *DisjointSet {
	if n < 0 {
		n = 0
	}
	d := &DisjointSet{
		parent:   make([]int, n+1),
		rank:     make([]int, n+1),
		compress: true,
	}
	for i := range d.parent {
		d.parent[i] = notMade
	}
	for _, opt := range opts {
		opt(d)
	}

	return d
}

// NewFull allocates a DisjointSet and makes a singleton for every vertex 1..n.
func NewFull(n int, opts ...Option) *DisjointSet {
	d := New(n, opts...)
	for v := 1; v <= n; v++ {
		d.parent[v] = v
	}
	d.count = max(n, 0)

	return d
}

// Len returns the capacity n (highest valid vertex id).
func (d *DisjointSet) Len() int { return len(d.parent) - 1 }

// Count returns the number of disjoint components among made vertices.
func (d *DisjointSet) Count() int { return d.count }

// MakeSet initializes v as its own singleton component with rank 0.
// Calling it again on a vertex that already has a set is a no-op.
//
// Errors: ErrOutOfRange.
func (d *DisjointSet) MakeSet(v int) error {
	if v < 1 || v >= len(d.parent) {
		return fmt.Errorf("MakeSet(%d): %w", v, ErrOutOfRange)
	}
	if d.parent[v] != notMade {
		return nil
	}
	d.parent[v] = v
	d.rank[v] = 0
	d.count++

	return nil
}

// Find returns the representative of v's component.
//
// The walk is iterative. With path compression on, every visited vertex is
// re-pointed at the root on the way back (two-pass compression).
//
// Errors: ErrOutOfRange, ErrNotMade.
// Complexity: O(log n) worst case; near O(1) amortized with compression.
func (d *DisjointSet) Find(v int) (int, error) {
	if err := d.check("Find", v); err != nil {
		return 0, err
	}

	return d.root(v), nil
}

// Union merges the components containing a and b and reports whether a merge
// happened (false when they were already joined).
//
// Union by rank: the lower-rank root goes under the higher-rank root; on a
// tie b's root goes under a's root and that root's rank grows by one.
//
// Errors: ErrOutOfRange, ErrNotMade.
func (d *DisjointSet) Union(a, b int) (bool, error) {
	if err := d.check("Union", a); err != nil {
		return false, err
	}
	if err := d.check("Union", b); err != nil {
		return false, err
	}

	return d.link(d.root(a), d.root(b)), nil
}

// Connected reports whether a and b share a representative.
func (d *DisjointSet) Connected(a, b int) (bool, error) {
	if err := d.check("Connected", a); err != nil {
		return false, err
	}
	if err := d.check("Connected", b); err != nil {
		return false, err
	}

	return d.root(a) == d.root(b), nil
}

// Rank returns the rank stored at v. It is only an upper bound on height for
// roots; for inner vertices it is the value frozen at the time they were linked.
func (d *DisjointSet) Rank(v int) (int, error) {
	if err := d.check("Rank", v); err != nil {
		return 0, err
	}

	return d.rank[v], nil
}

func (d *DisjointSet) check(method string, v int) error {
	if v < 1 || v >= len(d.parent) {
		return fmt.Errorf("%s(%d): %w", method, v, ErrOutOfRange)
	}
	if d.parent[v] == notMade {
		return fmt.Errorf("%s(%d): %w", method, v, ErrNotMade)
	}

	return nil
}

// root assumes v is a made, in-range vertex.
func (d *DisjointSet) root(v int) int {
	r := v
	for d.parent[r] != r {
		r = d.parent[r]
	}
	if d.compress {
		for v != r {
			next := d.parent[v]
			d.parent[v] = r
			v = next
		}
	}

	return r
}

// link joins two roots by rank and reports whether they differed.
func (d *DisjointSet) link(ra, rb int) bool {
	if ra == rb {
		return false
	}
	switch {
	case d.rank[ra] < d.rank[rb]:
		d.parent[ra] = rb
	case d.rank[ra] > d.rank[rb]:
		d.parent[rb] = ra
	default:
		d.parent[rb] = ra
		d.rank[ra]++
	}
	d.count--

	return true
}
