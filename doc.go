// Package hubnet computes minimum-cost facility networks: every facility must
// be reachable from every other one through bidirectional tunnels, and any
// facility may instead install a hub, after which all hub facilities are
// linked to each other at no extra cost.
//
// The work is organized under these subpackages:
//
//	core/         - Edge, Network and the shared input-validation errors
//	dsu/          - disjoint-set union over dense vertex ids 1..n
//	prim_kruskal/ - minimum spanning tree / forest (Kruskal, Prim)
//	hub/          - hub reduction: a virtual vertex N+1 joined to every hub site
//	instance/     - plain-text instance reader and writer
//	builder/      - seeded random instances for tests and benchmarks
//	cmd/hubnet/   - command-line front end (solve, generate)
//
// Quick sketch:
//
//	1 ─10─ 2        3 ─10─ 4
//	│                      │
//	hub(5)            hub(5)
//
// Two islands joined through hubs at 1 and 4 cost 10 + 10 + 5 + 5 = 30.
//
//	go install github.com/katalvlaran/hubnet/cmd/hubnet@latest
package hubnet
