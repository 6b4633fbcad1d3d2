// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Instance, Site, Plan and Outcome types plus the hub sentinels.

package hub

import (
	"errors"
	"fmt"
	"math"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/hubnet/core"
	"github.com/katalvlaran/hubnet/prim_kruskal"
)

// ErrInfeasible indicates that the facilities cannot all be connected, even
// with every tunnel and every hub site. Errors carrying it also match
// prim_kruskal.ErrDisconnected.
var ErrInfeasible = errors.New("hub: facilities cannot be connected")

// Site is one hub installation option: a hub can be built at Facility for Cost.
// Several Sites may name the same facility; each is an independent candidate.
type Site struct {
	Facility int   `json:"facility"`
	Cost     int64 `json:"cost"`
}

// Instance is a complete problem: Facilities vertices 1..N, the hub sites and
// the candidate tunnels.
type Instance struct {
	Facilities int
	Sites      []Site
	Tunnels    []core.Edge
}

// Validate checks 1 ≤ N < math.MaxInt (N+1 is the hub vertex), every site
// and every tunnel. All failures satisfy errors.Is(err, core.ErrInvalidInput).
func (inst Instance) Validate() error {
	if inst.Facilities == math.MaxInt {
		return fmt.Errorf("facilities=%d leaves no id for the hub vertex: %w", inst.Facilities, core.ErrVertexOutOfRange)
	}
	if err := core.Validate(inst.Facilities, inst.Tunnels); err != nil {
		return fmt.Errorf("tunnels: %w", err)
	}
	for i, s := range inst.Sites {
		if s.Facility < 1 || s.Facility > inst.Facilities {
			return fmt.Errorf("sites[%d]: facility %d not in [1,%d]: %w",
				i, s.Facility, inst.Facilities, core.ErrVertexOutOfRange)
		}
		if s.Cost < 0 {
			return fmt.Errorf("sites[%d]: cost %d: %w", i, s.Cost, core.ErrNegativeWeight)
		}
	}

	return nil
}

// HubVertex returns the id of the virtual hub vertex, N+1.
func (inst Instance) HubVertex() int { return inst.Facilities + 1 }

// Outcome summarizes one MST run.
type Outcome struct {
	// Feasible is false when the run ended with prim_kruskal.ErrDisconnected.
	Feasible bool `json:"feasible"`

	// Cost is the MST weight; zero when infeasible.
	Cost int64 `json:"cost"`

	// Overflow is set when the run's weight exceeded math.MaxInt64.
	Overflow bool `json:"overflow,omitempty"`
}

// Plan is the cheapest way to connect every facility.
type Plan struct {
	// Cost is the total of the chosen tunnels and hub installations.
	Cost int64 `json:"cost"`

	// UsesHubs reports whether the with-hubs run was chosen.
	UsesHubs bool `json:"uses_hubs"`

	// Tunnels are the tunnels to build.
	Tunnels []core.Edge `json:"tunnels"`

	// HubSites are the hubs to install; empty when UsesHubs is false.
	HubSites []Site `json:"hub_sites"`

	// TunnelCost and HubCost split Cost between Tunnels and HubSites.
	TunnelCost int64 `json:"tunnel_cost"`
	HubCost    int64 `json:"hub_cost"`

	// TunnelOnly and WithHubs report both sub-runs.
	TunnelOnly Outcome `json:"tunnel_only"`
	WithHubs   Outcome `json:"with_hubs"`
}

// SolveOption configures Solve.
type SolveOption func(*solveConfig)

type solveConfig struct {
	method string
	root   int
	logger zerolog.Logger
}

func defaultSolveConfig() solveConfig {
	return solveConfig{
		method: prim_kruskal.MethodKruskal,
		logger: zerolog.Nop(),
	}
}

// WithMethod selects the MST algorithm for both runs
// (prim_kruskal.MethodKruskal by default).
func WithMethod(method string) SolveOption {
	return func(c *solveConfig) { c.method = method }
}

// WithRoot sets Prim's start vertex for both runs; 0 means facility 1.
// It must lie in [1, N]. Kruskal ignores it.
func WithRoot(root int) SolveOption {
	return func(c *solveConfig) { c.root = root }
}

// WithLogger attaches a logger; each sub-run is reported at debug level.
func WithLogger(l zerolog.Logger) SolveOption {
	return func(c *solveConfig) { c.logger = l }
}
