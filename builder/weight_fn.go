// Package builder provides cost distributions for generated tunnels and hub sites.
package builder

import (
	"fmt"
	"math/rand"
)

// DefaultEdgeWeight is returned by distributions that are handed a nil RNG.
const DefaultEdgeWeight int64 = 1

// WeightFn produces a non-negative cost from an optional *rand.Rand source.
// It must be deterministic for a given RNG state.
type WeightFn func(rng *rand.Rand) int64

// ConstantWeightFn returns a WeightFn that always yields value.
// Panics if value < 0.
func ConstantWeightFn(value int64) WeightFn {
	if value < 0 {
		panic(fmt.Sprintf("ConstantWeightFn: value must be ≥ 0, got %d", value))
	}

	return func(_ *rand.Rand) int64 {
		return value
	}
}

// UniformWeightFn returns a WeightFn sampling uniformly in [min, max] inclusive.
// Panics if min < 0 or max < min. With a nil rng it yields DefaultEdgeWeight
// clamped into [min, max].
func UniformWeightFn(min, max int64) WeightFn {
	if min < 0 || max < min {
		panic(fmt.Sprintf("UniformWeightFn: require 0 ≤ min ≤ max, got min=%d, max=%d", min, max))
	}

	return func(rng *rand.Rand) int64 {
		if rng == nil {
			return clamp(DefaultEdgeWeight, min, max)
		}
		if max == min {
			return min
		}

		return min + rng.Int63n(max-min+1)
	}
}

func clamp(v, lo, hi int64) int64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}

	return v
}
