// Package subgraph holds one occurrence under construction: a small set of
// node ids, the edges connecting them, and a sorted list of edge ids that
// serves as the occurrence's identity.
//
// The enumerator branches heavily, cloning a partial occurrence once per
// frontier edge, so Subgraph is built for cheap O(size) clones: the node
// set is an insertion-ordered small slice (occurrences rarely exceed a
// handful of nodes), the edge list a pre-sized slice, and the edge-id list
// a small sorted slice maintained by insertion.
//
// Two Subgraphs are the same occurrence iff their sorted edge-id lists are
// equal; the node set and edge records are derived data and never consulted
// for identity. Key() encodes that identity as a string for use in the
// enumerator's seen-set.
package subgraph
