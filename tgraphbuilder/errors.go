// SPDX-License-Identifier: MIT
// File: errors.go
// Role: sentinel errors for constructor parameter validation. Callers
//       branch with errors.Is; implementations attach context via %w.
package tgraphbuilder

import "errors"

// ErrTooFewNodes indicates a size parameter below the constructor's
// minimum (Path/Cycle/Star need at least 2, 3, 2 nodes respectively).
var ErrTooFewNodes = errors.New("tgraphbuilder: parameter too small")

// ErrInvalidProbability indicates an edge probability outside [0,1].
var ErrInvalidProbability = errors.New("tgraphbuilder: probability out of range")

// ErrNeedRandSource indicates a stochastic constructor was invoked without
// WithSeed or WithRand.
var ErrNeedRandSource = errors.New("tgraphbuilder: stochastic constructor needs WithSeed or WithRand")
