// Package builder_test contains unit tests for the WeightFn implementations
// in the builder package, covering both correct behavior and panic conditions.
package builder_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/hubnet/builder"
)

// TestWeightFnConstructors verifies that WeightFn constructors panic
// on invalid parameters according to their documented contracts.
func TestWeightFnConstructors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		constructor func() builder.WeightFn
	}{
		{"ConstantWeightFn_negative", func() builder.WeightFn { return builder.ConstantWeightFn(-1) }},
		{"UniformWeightFn_minNegative", func() builder.WeightFn { return builder.UniformWeightFn(-1, 5) }},
		{"UniformWeightFn_maxLessThanMin", func() builder.WeightFn { return builder.UniformWeightFn(5, 4) }},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Panics(t, func() { tc.constructor() }, tc.name)
		})
	}
}

// TestUniformWeightFn_Range samples many values and checks the closed interval.
func TestUniformWeightFn_Range(t *testing.T) {
	fn := builder.UniformWeightFn(3, 7)
	r := rand.New(rand.NewSource(1))
	seen := map[int64]bool{}
	for i := 0; i < 1000; i++ {
		w := fn(r)
		assert.GreaterOrEqual(t, w, int64(3))
		assert.LessOrEqual(t, w, int64(7))
		seen[w] = true
	}
	assert.Len(t, seen, 5, "every value in [3,7] should appear")

	assert.Equal(t, int64(3), builder.UniformWeightFn(3, 7)(nil), "nil rng clamps the default into range")
	assert.Equal(t, int64(4), builder.UniformWeightFn(4, 4)(r))
	assert.Equal(t, int64(9), builder.ConstantWeightFn(9)(r))
}
