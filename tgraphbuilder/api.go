// SPDX-License-Identifier: MIT
// File: api.go
// Role: the Build orchestrator and the Constructor function type; topology
//       factories live in impl.go.
// Contract:
//   - One entry point: Build(directed, opts, cons...) creates the graph,
//     resolves the config, applies constructors in order.
//   - Constructors validate parameters early and return sentinel errors;
//     any failure is wrapped with "Build: %w" and returned immediately.
//   - Same inputs, options, and constructor order produce the identical
//     graph, dense edge ids included.
package tgraphbuilder

import (
	"fmt"

	"github.com/katalvlaran/modit/tgraph"
)

// Constructor applies one deterministic topology mutation to g using the
// resolved config. The emission counters it draws labels and timestamps
// from continue across constructors in one Build, so composed fixtures
// stay collision-free.
type Constructor func(g *tgraph.TemporalGraph, cfg builderConfig, next *counters) error

// counters tracks cross-constructor emission indices within one Build.
type counters struct {
	node int // next node id to assign
	edge int // next edge emission index (feeds edgeFn/tsFn)
}

// Build creates a TemporalGraph with the requested directedness, resolves
// opts into a builderConfig, and applies each constructor in order.
func Build(directed bool, opts []Option, cons ...Constructor) (*tgraph.TemporalGraph, error) {
	cfg := newBuilderConfig(opts...)
	g := tgraph.NewTemporalGraph(directed)

	next := &counters{}
	for _, c := range cons {
		if err := c(g, cfg, next); err != nil {
			return nil, fmt.Errorf("Build: %w", err)
		}
	}

	return g, nil
}

// addNodes registers count fresh nodes and returns their ids in order.
func addNodes(g *tgraph.TemporalGraph, cfg builderConfig, next *counters, count int) ([]int, error) {
	ids := make([]int, count)
	for i := 0; i < count; i++ {
		id := next.node
		next.node++
		if err := g.AddNode(id, cfg.labelFn(id)); err != nil {
			return nil, fmt.Errorf("AddNode(%d): %w", id, err)
		}
		ids[i] = id
	}

	return ids, nil
}

// addEdge emits one edge, drawing its label and timestamp from the config
// generators at the current emission index.
func addEdge(g *tgraph.TemporalGraph, cfg builderConfig, next *counters, src, dst int) error {
	idx := next.edge
	next.edge++
	if _, err := g.AddEdge(src, dst, cfg.tsFn(idx), cfg.edgeFn(idx)); err != nil {
		return fmt.Errorf("AddEdge(%d->%d): %w", src, dst, err)
	}

	return nil
}
