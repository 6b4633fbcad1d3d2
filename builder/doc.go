// Package builder generates reproducible hub problems for tests, benchmarks
// and the `hubnet generate` command.
//
// The package offers:
//
//   - RandomInstance(n, tunnels, sites, opts...): n facilities, a number of
//     random tunnels and random hub sites.
//   - Options (BuilderOption): WithSeed / WithRand for the RNG, WithWeightFn /
//     WithSiteCostFn for cost distributions, WithConnected to lay a spanning
//     chain of tunnels first so the tunnel-only graph is always connected.
//   - Cost distributions (WeightFn): ConstantWeightFn, UniformWeightFn.
//
// Guarantees:
//
//   - Determinism: the same seed and options always yield the same instance.
//   - Fast-fail on meaningless option values via panics in option constructors;
//     runtime parameters are reported as sentinel errors (ErrTooFewVertices,
//     ErrBadSize, ErrNeedRandSource).
//   - Every generated instance passes hub.Instance.Validate.
package builder
