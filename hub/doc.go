// Package hub prices a facility network that may mix tunnels with hub
// installations.
//
// Problem
//
//	N facilities (1..N), M candidate tunnels (a, b, cost) and K hub sites
//	(facility, install cost). Any two facilities that both have a hub are
//	linked for free. Pick tunnels and hubs of minimum total cost so that every
//	facility reaches every other.
//
// Reduction
//
//	Add one virtual vertex H = N+1 and, for every site, an edge (facility, H)
//	weighted by the install cost. A spanning tree of the augmented graph that
//	touches H through k hub edges is exactly "install those k hubs", because
//	H links them all for free. A tree that never needs H is a plain tunnel
//	tree, but the augmented graph must still reach H, so that case is covered
//	by a separate tunnel-only MST over 1..N. The answer is the cheaper of the
//	two feasible runs:
//
//	    1   2        1   2
//	    |   |   →    |   |
//	    3   4        3   4
//	                  \ /
//	                   H   (hub edges 3—H, 4—H)
//
// Outcomes
//
//   - Both runs may independently fail with prim_kruskal.ErrDisconnected;
//     such a run is reported as Outcome{Feasible: false}.
//   - If both fail, Solve returns ErrInfeasible and never a numeric cost.
//   - Invalid input (bad ids, negative costs, N < 1) fails before any MST
//     with an error matching core.ErrInvalidInput.
//
// The two MST runs are independent but executed sequentially.
package hub
