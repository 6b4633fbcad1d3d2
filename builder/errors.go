// SPDX-License-Identifier: MIT
// Package: hubnet/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; branch with errors.Is.
//   • Context is attached with %w at the failure site, never baked into sentinels.
//   • Generators never panic at runtime; panics are confined to WithX constructors.

package builder

import (
	"errors"
)

// ErrTooFewVertices indicates n < 1 facilities were requested.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrBadSize indicates a negative tunnel or site count, or too few tunnels
// to honour WithConnected.
var ErrBadSize = errors.New("builder: invalid size/length")

// ErrNeedRandSource indicates that a generator needs an RNG (WithSeed or WithRand).
var ErrNeedRandSource = errors.New("builder: rng is required")
