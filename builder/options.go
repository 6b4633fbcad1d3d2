// SPDX-License-Identifier: MIT
// Package: hubnet/builder
//
// options.go — functional options for the builder package.
//
// Contract:
//   • Option constructors validate and panic on meaningless inputs.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.
//   • No hidden globals; everything flows through builderConfig.

package builder

import (
	"math/rand"
)

// BuilderOption customizes a generator by mutating builderConfig before use.
type BuilderOption func(*builderConfig)

// builderConfig holds the resolved generator settings.
type builderConfig struct {
	rng        *rand.Rand // nil means "no randomness available"
	weightFn   WeightFn   // tunnel costs
	siteCostFn WeightFn   // hub install costs
	connected  bool       // lay a spanning chain first
}

const (
	defaultMaxTunnelCost = int64(100)
	defaultMaxSiteCost   = int64(100)
)

func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		weightFn:   UniformWeightFn(1, defaultMaxTunnelCost),
		siteCostFn: UniformWeightFn(1, defaultMaxSiteCost),
	}
	// Last option wins.
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithRand provides an explicit RNG. Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithWeightFn overrides the tunnel cost generator. Panics on nil.
func WithWeightFn(fn WeightFn) BuilderOption {
	if fn == nil {
		panic("builder: WithWeightFn(nil)")
	}
	return func(c *builderConfig) {
		c.weightFn = fn
	}
}

// WithSiteCostFn overrides the hub install cost generator. Panics on nil.
func WithSiteCostFn(fn WeightFn) BuilderOption {
	if fn == nil {
		panic("builder: WithSiteCostFn(nil)")
	}
	return func(c *builderConfig) {
		c.siteCostFn = fn
	}
}

// WithMaxCost draws both tunnel and site costs uniformly from [1, max].
// Panics if max < 1.
func WithMaxCost(max int64) BuilderOption {
	fn := UniformWeightFn(1, max)
	return func(c *builderConfig) {
		c.weightFn = fn
		c.siteCostFn = fn
	}
}

// WithConnected makes the first n-1 tunnels a chain 1—2—…—n, so the tunnel-only
// network is connected no matter what the remaining draws are.
func WithConnected(on bool) BuilderOption {
	return func(c *builderConfig) {
		c.connected = on
	}
}
