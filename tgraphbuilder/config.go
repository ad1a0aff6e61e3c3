// SPDX-License-Identifier: MIT
// File: config.go
// Role: builderConfig and its functional options - the generator functions
//       every topology constructor draws node labels, edge labels, and
//       timestamps from.
// Contract:
//   - Options apply left-to-right; later options override earlier ones.
//   - Option constructors validate and panic on meaningless inputs (nil
//     functions); constructors themselves never panic at runtime.
//   - Determinism is explicit: stochastic builders require WithSeed or
//     WithRand, deterministic ones ignore the RNG entirely.
package tgraphbuilder

import "math/rand"

// LabelFn maps a node index to its label.
type LabelFn func(idx int) int

// EdgeLabelFn maps an edge emission index to its label.
type EdgeLabelFn func(idx int) int

// TimestampFn maps an edge emission index to its timestamp.
type TimestampFn func(idx int) int64

// Option customizes a build by mutating the builderConfig before
// construction begins.
type Option func(*builderConfig)

// builderConfig carries the resolved generator functions. Each Build call
// resolves its own config; nothing is shared between builds.
type builderConfig struct {
	rng     *rand.Rand // nil for deterministic constructors
	labelFn LabelFn
	edgeFn  EdgeLabelFn
	tsFn    TimestampFn
}

// Defaults: every node gets label 0, every edge gets label 0, and edge i
// fires at timestamp i. Sequential timestamps keep every default fixture
// fully temporal (distinct, ordered) without any configuration.
func newBuilderConfig(opts ...Option) builderConfig {
	cfg := builderConfig{
		labelFn: func(int) int { return 0 },
		edgeFn:  func(int) int { return 0 },
		tsFn:    func(i int) int64 { return int64(i) },
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithNodeLabels sets the node-label generator. Panics on nil.
func WithNodeLabels(fn LabelFn) Option {
	if fn == nil {
		panic("tgraphbuilder: WithNodeLabels(nil)")
	}

	return func(c *builderConfig) { c.labelFn = fn }
}

// WithEdgeLabels sets the edge-label generator. Panics on nil.
func WithEdgeLabels(fn EdgeLabelFn) Option {
	if fn == nil {
		panic("tgraphbuilder: WithEdgeLabels(nil)")
	}

	return func(c *builderConfig) { c.edgeFn = fn }
}

// WithTimestamps sets the timestamp generator. Panics on nil.
func WithTimestamps(fn TimestampFn) Option {
	if fn == nil {
		panic("tgraphbuilder: WithTimestamps(nil)")
	}

	return func(c *builderConfig) { c.tsFn = fn }
}

// WithRand provides an explicit RNG for stochastic constructors. Panics on
// nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("tgraphbuilder: WithRand(nil)")
	}

	return func(c *builderConfig) { c.rng = r }
}

// WithSeed equips the build with a seeded RNG, locking stochastic
// constructors to a reproducible outcome.
func WithSeed(seed int64) Option {
	return func(c *builderConfig) { c.rng = rand.New(rand.NewSource(seed)) }
}
