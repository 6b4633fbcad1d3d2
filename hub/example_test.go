package hub_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/hubnet/core"
	"github.com/katalvlaran/hubnet/hub"
)

// ExampleSolve connects two tunnel islands through two hubs.
//
//	1 —10— 2     3 —10— 4
//	(hub 5)           (hub 5)
func ExampleSolve() {
	plan, err := hub.Solve(hub.Instance{
		Facilities: 4,
		Sites:      []hub.Site{{Facility: 1, Cost: 5}, {Facility: 4, Cost: 5}},
		Tunnels: []core.Edge{
			{From: 1, To: 2, Weight: 10},
			{From: 3, To: 4, Weight: 10},
		},
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(plan.Cost, plan.UsesHubs, plan.TunnelOnly.Feasible)
	// Output: 30 true false
}

// ExampleMinCost shows the infeasible case: facility 3 is unreachable.
func ExampleMinCost() {
	_, err := hub.MinCost(3,
		[]hub.Site{{Facility: 1, Cost: 1}},
		[]core.Edge{{From: 1, To: 2, Weight: 100}},
	)
	fmt.Println(errors.Is(err, hub.ErrInfeasible))
	// Output: true
}
