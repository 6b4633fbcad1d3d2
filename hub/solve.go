// SPDX-License-Identifier: MIT
//
// File: solve.go
// Role: hub reduction. One virtual vertex (N+1) stands for "every facility
// with a hub"; each site becomes an edge from its facility to that vertex
// weighted by the install cost. The cheaper feasible MST of the plain and the
// augmented graph is the answer.

package hub

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/hubnet/core"
	"github.com/katalvlaran/hubnet/prim_kruskal"
)

// Solve returns the cheapest Plan connecting every facility of inst.
//
// Steps:
//  1. Validate inst.
//  2. MST over 1..N with tunnels only.
//  3. MST over 1..N+1 with tunnels plus one (facility, N+1, cost) edge per site.
//  4. Pick the cheaper feasible run; on equal cost the tunnel-only plan wins.
//
// A run that fails with prim_kruskal.ErrDisconnected is infeasible, not an
// error. A run whose weight exceeds math.MaxInt64 loses to any run that fits.
// When no run fits, core.ErrCostOverflow is returned if either run overflowed
// and ErrInfeasible otherwise. Any other failure is returned as is.
//
// Complexity: O((M+K) log (M+K)).
func Solve(inst Instance, opts ...SolveOption) (Plan, error) {
	cfg := defaultSolveConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	log := cfg.logger.With().
		Int("facilities", inst.Facilities).
		Int("sites", len(inst.Sites)).
		Int("tunnels", len(inst.Tunnels)).
		Str("method", cfg.method).
		Logger()

	if err := inst.Validate(); err != nil {
		return Plan{}, fmt.Errorf("Solve: %w", err)
	}

	// Tunnel-only run. Self-loops never join two components.
	plain, err := core.FromEdges(inst.Facilities, inst.Tunnels, core.WithoutLoops())
	if err != nil {
		return Plan{}, fmt.Errorf("Solve: %w", err)
	}
	tunnel, err := run(plain, cfg)
	if err != nil {
		return Plan{}, fmt.Errorf("Solve: tunnel-only run: %w", err)
	}
	log.Debug().Bool("feasible", tunnel.ok).Bool("overflow", tunnel.overflow != nil).
		Int64("cost", tunnel.res.Total).Msg("tunnel-only run")

	// With-hubs run on the augmented network.
	hubV := inst.HubVertex()
	augmented := plain.Extend(1, len(inst.Sites))
	for _, s := range inst.Sites {
		if err = augmented.AddEdge(s.Facility, hubV, s.Cost); err != nil {
			return Plan{}, fmt.Errorf("Solve: %w", err)
		}
	}
	withHubs, err := run(augmented, cfg)
	if err != nil {
		return Plan{}, fmt.Errorf("Solve: with-hubs run: %w", err)
	}
	log.Debug().Bool("feasible", withHubs.ok).Bool("overflow", withHubs.overflow != nil).
		Int64("cost", withHubs.res.Total).Msg("with-hubs run")

	plan := Plan{
		TunnelOnly: tunnel.outcome(),
		WithHubs:   withHubs.outcome(),
	}

	switch {
	case tunnel.ok && (!withHubs.ok || tunnel.res.Total <= withHubs.res.Total):
		plan.Cost = tunnel.res.Total
		plan.Tunnels = tunnel.res.Edges
		plan.HubSites = []Site{}
	case withHubs.ok:
		plan.Cost = withHubs.res.Total
		plan.UsesHubs = true
		plan.Tunnels, plan.HubSites = splitHubEdges(withHubs.res.Edges, hubV)
	case tunnel.overflow != nil:
		log.Debug().Msg("cheapest plan overflows")
		return plan, fmt.Errorf("Solve: tunnel-only run: %w", tunnel.overflow)
	case withHubs.overflow != nil:
		log.Debug().Msg("cheapest plan overflows")
		return plan, fmt.Errorf("Solve: with-hubs run: %w", withHubs.overflow)
	default:
		log.Debug().Msg("no feasible plan")
		return plan, fmt.Errorf("Solve: %w: %w", ErrInfeasible, prim_kruskal.ErrDisconnected)
	}

	// Parts of an MST total that fits, so neither sum can overflow.
	if plan.TunnelCost, err = core.TotalWeight(plan.Tunnels); err != nil {
		return Plan{}, fmt.Errorf("Solve: %w", err)
	}
	if plan.HubCost, err = siteCost(plan.HubSites); err != nil {
		return Plan{}, fmt.Errorf("Solve: %w", err)
	}
	log.Debug().Int64("cost", plan.Cost).Bool("uses_hubs", plan.UsesHubs).Msg("plan selected")

	return plan, nil
}

// MinCost is Solve reduced to the single number the batch tool prints.
func MinCost(n int, sites []Site, tunnels []core.Edge) (int64, error) {
	plan, err := Solve(Instance{Facilities: n, Sites: sites, Tunnels: tunnels})
	if err != nil {
		return 0, err
	}

	return plan.Cost, nil
}

// runResult is one MST run as seen by the selection step.
type runResult struct {
	res      prim_kruskal.Result
	ok       bool
	overflow error // non-nil when the weight did not fit in int64
}

func (r runResult) outcome() Outcome {
	return Outcome{Feasible: r.ok, Cost: r.res.Total, Overflow: r.overflow != nil}
}

// run computes the MST of net. ErrDisconnected and core.ErrCostOverflow
// make the run infeasible; anything else is an error.
func run(net *core.Network, cfg solveConfig) (runResult, error) {
	res, err := prim_kruskal.Compute(net,
		prim_kruskal.WithMethod(cfg.method),
		prim_kruskal.WithRoot(cfg.root),
	)
	switch {
	case err == nil:
		return runResult{res: res, ok: true}, nil
	case errors.Is(err, prim_kruskal.ErrDisconnected):
		return runResult{}, nil
	case errors.Is(err, core.ErrCostOverflow):
		return runResult{overflow: err}, nil
	default:
		return runResult{}, err
	}
}

// siteCost sums install costs.
func siteCost(sites []Site) (int64, error) {
	var (
		total int64
		err   error
	)
	for i, s := range sites {
		if total, err = core.AddCost(total, s.Cost); err != nil {
			return 0, fmt.Errorf("sites[%d]: %w", i, err)
		}
	}

	return total, nil
}

// splitHubEdges separates tunnels from edges incident to the virtual vertex.
func splitHubEdges(edges []core.Edge, hubV int) ([]core.Edge, []Site) {
	tunnels := make([]core.Edge, 0, len(edges))
	sites := make([]Site, 0)
	for _, e := range edges {
		switch hubV {
		case e.To:
			sites = append(sites, Site{Facility: e.From, Cost: e.Weight})
		case e.From:
			sites = append(sites, Site{Facility: e.To, Cost: e.Weight})
		default:
			tunnels = append(tunnels, e)
		}
	}

	return tunnels, sites
}
