// Package tgraph stores a single labeled, integer-indexed temporal network
// and answers time-windowed neighborhood queries over it.
//
// A TemporalGraph holds nodes (a stable integer id carrying one integer
// label) and edges (a dense integer id in [0, |E|) carrying a source,
// destination, timestamp and edge-label). Both are write-once: AddNode is
// idempotent, AddEdge always appends. Directed graphs maintain separate
// out- and in-adjacency; undirected graphs maintain one reciprocal
// adjacency where every edge is visible from both endpoints.
//
// Each adjacency is a two-level index: node -> (ordered by timestamp)
// mapping timestamp -> (unordered) mapping neighbor -> edge id. The outer
// level is a github.com/google/btree ordered tree so NeighborsInTimeWindow
// can range-scan [tLow, tHigh] in O(log n + k); the inner level is a plain
// Go map for O(1) expected neighbor membership. These two levels are kept
// separate on purpose (see adjacency.go) because the enumerator's hot loop
// depends on the outer ordering and would regress if the two were
// flattened into a single structure.
//
// tgraph is read-only once built: the enumerator never mutates a
// TemporalGraph while mining motifs (see the enumerator package), so no
// locking is needed here.
package tgraph
