// SPDX-License-Identifier: MIT
// Package: hubnet/builder
//
// random_instance.go - implementation of RandomInstance(n, tunnels, sites).
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - tunnels ≥ 0, sites ≥ 0 (else ErrBadSize).
//   - WithConnected requires tunnels ≥ n-1 (else ErrBadSize).
//   - cfg.rng must be non-nil whenever anything random is drawn (else ErrNeedRandSource).
//   - Tunnel endpoints are distinct; parallel tunnels may occur.
//
// Determinism:
//   - Draw order is fixed: chain costs, free tunnels (from, to, cost), then sites (facility, cost).

package builder

import (
	"fmt"

	"github.com/katalvlaran/hubnet/core"
	"github.com/katalvlaran/hubnet/hub"
)

const (
	methodRandomInstance = "RandomInstance"
	minFacilities        = 1
)

// RandomInstance returns a hub.Instance over n facilities with the requested
// number of tunnels and hub sites.
//
// Complexity: O(n + tunnels + sites).
func RandomInstance(n, tunnels, sites int, opts ...BuilderOption) (hub.Instance, error) {
	cfg := newBuilderConfig(opts...)

	if n < minFacilities {
		return hub.Instance{}, fmt.Errorf("%s: n=%d < min=%d: %w", methodRandomInstance, n, minFacilities, ErrTooFewVertices)
	}
	if tunnels < 0 || sites < 0 {
		return hub.Instance{}, fmt.Errorf("%s: tunnels=%d sites=%d: %w", methodRandomInstance, tunnels, sites, ErrBadSize)
	}
	if cfg.connected && tunnels < n-1 {
		return hub.Instance{}, fmt.Errorf("%s: connected needs ≥ %d tunnels, got %d: %w", methodRandomInstance, n-1, tunnels, ErrBadSize)
	}
	if cfg.rng == nil && (tunnels > 0 || sites > 0) {
		return hub.Instance{}, fmt.Errorf("%s: %w", methodRandomInstance, ErrNeedRandSource)
	}

	rng := cfg.rng
	inst := hub.Instance{
		Facilities: n,
		Sites:      make([]hub.Site, 0, sites),
		Tunnels:    make([]core.Edge, 0, tunnels),
	}

	// Spanning chain first when connectivity is requested.
	if cfg.connected {
		for v := 2; v <= n; v++ {
			inst.Tunnels = append(inst.Tunnels, core.Edge{From: v - 1, To: v, Weight: cfg.weightFn(rng)})
		}
	}

	// Free tunnels between distinct facilities. With n == 1 only self-loops exist.
	for len(inst.Tunnels) < tunnels {
		from := 1 + rng.Intn(n)
		to := from
		if n > 1 {
			// Draw from the n-1 other facilities without rejection.
			to = 1 + rng.Intn(n-1)
			if to >= from {
				to++
			}
		}
		inst.Tunnels = append(inst.Tunnels, core.Edge{From: from, To: to, Weight: cfg.weightFn(rng)})
	}

	for i := 0; i < sites; i++ {
		inst.Sites = append(inst.Sites, hub.Site{Facility: 1 + rng.Intn(n), Cost: cfg.siteCostFn(rng)})
	}

	return inst, nil
}
