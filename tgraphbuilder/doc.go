// Package tgraphbuilder synthesizes small temporal graphs deterministically
// for tests, examples, and ad hoc exploration of the miner.
//
// The shape of the package is one orchestrator, Build(directed, bopts,
// cons...), which resolves a builderConfig from functional options and
// applies each Constructor in order to a fresh tgraph.TemporalGraph. Node
// labels, edge labels, and timestamps all flow through configurable
// generator functions, so one topology serves many labeled/temporal
// variants:
//
//	g, err := tgraphbuilder.Build(true, nil, tgraphbuilder.Path(4))
//	g, err := tgraphbuilder.Build(false,
//	    []tgraphbuilder.Option{tgraphbuilder.WithSeed(42)},
//	    tgraphbuilder.RandomSparse(10, 0.3))
//
// Determinism: the same options, seed, and constructor order always produce
// the identical graph, edge ids included.
package tgraphbuilder
