// Package modit mines frequent temporal motifs in a single labeled
// temporal network.
//
// Given a directed or undirected graph whose nodes and edges carry integer
// labels and whose edges carry integer timestamps, MODIT enumerates every
// connected subgraph occurrence within configurable node/edge bounds whose
// edge timestamps fit a sliding window of size delta, reduces each
// occurrence to a canonical form, and reports the distinct motif classes
// with their support.
//
// The pipeline is organized under focused subpackages:
//
//	tgraph/        - the time-indexed temporal graph representation
//	subgraph/      - one occurrence under construction (nodes, edges, identity)
//	canonical/     - deterministic canonical labeling of an occurrence
//	enumerator/    - the mining engine: seed, grow, deduplicate, count
//	ioformat/      - graph file parsing and motif-class rendering
//	config/        - run configuration (flags, YAML overrides)
//	tgraphbuilder/ - deterministic temporal graph fixtures for tests
//	cmd/modit/     - the command-line entry point
//
// Quick ASCII example - a temporal 2-path,
//
//	0 --(t=0)--> 1 --(t=1)--> 2
//
// yields two motif classes: the single edge (two occurrences) and the full
// path (one occurrence).
//
//	go get github.com/katalvlaran/modit
package modit
