// SPDX-License-Identifier: MIT
// File: impl.go
// Role: topology constructors - Path, Cycle, Star, RandomSparse.
// Contract:
//   - Validate parameter domains early, return sentinel errors, never
//     panic at runtime.
//   - Emit nodes in ascending id order and edges in a stable order, so a
//     fixed config reproduces the identical graph.
package tgraphbuilder

import (
	"fmt"

	"github.com/katalvlaran/modit/tgraph"
)

// File-local parameter minima, named per constructor for error context.
const (
	methodPath   = "Path"
	methodCycle  = "Cycle"
	methodStar   = "Star"
	methodSparse = "RandomSparse"

	minPathNodes  = 2
	minCycleNodes = 3
	minStarNodes  = 2
)

// Path returns a constructor building the simple path 0-1-...-(n-1), one
// edge per consecutive pair in increasing order.
func Path(n int) Constructor {
	return func(g *tgraph.TemporalGraph, cfg builderConfig, next *counters) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewNodes)
		}
		ids, err := addNodes(g, cfg, next, n)
		if err != nil {
			return fmt.Errorf("%s: %w", methodPath, err)
		}
		for i := 1; i < n; i++ {
			if err := addEdge(g, cfg, next, ids[i-1], ids[i]); err != nil {
				return fmt.Errorf("%s: %w", methodPath, err)
			}
		}

		return nil
	}
}

// Cycle returns a constructor building the cycle 0-1-...-(n-1)-0.
func Cycle(n int) Constructor {
	return func(g *tgraph.TemporalGraph, cfg builderConfig, next *counters) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewNodes)
		}
		ids, err := addNodes(g, cfg, next, n)
		if err != nil {
			return fmt.Errorf("%s: %w", methodCycle, err)
		}
		for i := 0; i < n; i++ {
			if err := addEdge(g, cfg, next, ids[i], ids[(i+1)%n]); err != nil {
				return fmt.Errorf("%s: %w", methodCycle, err)
			}
		}

		return nil
	}
}

// Star returns a constructor building a star: hub 0 with n-1 spokes, edges
// emitted hub-outward in spoke order.
func Star(n int) Constructor {
	return func(g *tgraph.TemporalGraph, cfg builderConfig, next *counters) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewNodes)
		}
		ids, err := addNodes(g, cfg, next, n)
		if err != nil {
			return fmt.Errorf("%s: %w", methodStar, err)
		}
		for i := 1; i < n; i++ {
			if err := addEdge(g, cfg, next, ids[0], ids[i]); err != nil {
				return fmt.Errorf("%s: %w", methodStar, err)
			}
		}

		return nil
	}
}

// RandomSparse returns a stochastic constructor over n nodes: each ordered
// pair (i, j), i != j, receives an edge with probability p, drawn from the
// build's RNG in a fixed pair order. Requires WithSeed or WithRand.
func RandomSparse(n int, p float64) Constructor {
	return func(g *tgraph.TemporalGraph, cfg builderConfig, next *counters) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodSparse, n, minPathNodes, ErrTooFewNodes)
		}
		if p < 0 || p > 1 {
			return fmt.Errorf("%s: p=%v: %w", methodSparse, p, ErrInvalidProbability)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: %w", methodSparse, ErrNeedRandSource)
		}
		ids, err := addNodes(g, cfg, next, n)
		if err != nil {
			return fmt.Errorf("%s: %w", methodSparse, err)
		}
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if i == j {
					continue
				}
				if cfg.rng.Float64() >= p {
					continue
				}
				if err := addEdge(g, cfg, next, ids[i], ids[j]); err != nil {
					return fmt.Errorf("%s: %w", methodSparse, err)
				}
			}
		}

		return nil
	}
}
