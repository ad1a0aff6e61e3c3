// File: graph.go
// Role: construction (AddNode/AddEdge) and the read-side query surface
//       (NeighborsInTimeWindow, AreNeighbors) of TemporalGraph.
// Policy:
//   - Construction is load-time only; the enumerator treats the graph as
//     read-only afterwards, so no locking here.
//   - Every exported method documents complexity.
package tgraph

import "fmt"

// AddNode registers node id with the given label. The call is idempotent
// with first-write-wins semantics: a second AddNode for the same id keeps
// the original label and reports no error, whatever the new label says.
//
// Complexity: O(1) expected.
func (g *TemporalGraph) AddNode(id, label int) error {
	if id < 0 {
		return fmt.Errorf("AddNode(%d): %w", id, ErrInvalidNode)
	}
	if _, exists := g.labels[id]; exists {
		return nil // first write wins
	}
	g.labels[id] = label

	return nil
}

// AddEdge appends an edge src->dst at the given timestamp with the given
// edge label, assigns it the next dense id, and indexes it in the adjacency
// structures (out+in for directed graphs, the single reciprocal adjacency
// for undirected ones). Both endpoints must already be registered via
// AddNode; a dangling endpoint yields ErrUnknownNode and leaves the graph
// unchanged.
//
// A second edge with the same (src, dst, timestamp) overwrites the previous
// entry in the adjacency bucket but still occupies its own dense id slot in
// the edge catalog; only the newer edge is reachable through time-window
// scans. See the overwrite notes in adjacency.go.
//
// Complexity: O(log T) for T distinct timestamps at each endpoint.
func (g *TemporalGraph) AddEdge(src, dst int, timestamp int64, label int) (int, error) {
	if _, ok := g.labels[src]; !ok {
		return 0, fmt.Errorf("AddEdge(%d->%d): source: %w", src, dst, ErrUnknownNode)
	}
	if _, ok := g.labels[dst]; !ok {
		return 0, fmt.Errorf("AddEdge(%d->%d): destination: %w", src, dst, ErrUnknownNode)
	}

	id := len(g.edges)
	g.edges = append(g.edges, Edge{ID: id, Src: src, Dst: dst, Timestamp: timestamp, Label: label})

	if g.directed {
		g.out.insert(src, timestamp, dst, id)
		g.in.insert(dst, timestamp, src, id)
	} else {
		// Reciprocal adjacency: the edge is visible from both endpoints.
		// For a self-loop both inserts hit the same (node, ts, neighbor)
		// slot, which is harmless.
		g.out.insert(src, timestamp, dst, id)
		g.out.insert(dst, timestamp, src, id)
	}

	return id, nil
}

// NumNodes returns the number of registered nodes.
func (g *TemporalGraph) NumNodes() int { return len(g.labels) }

// NumEdges returns the number of edges in the dense catalog.
func (g *TemporalGraph) NumEdges() int { return len(g.edges) }

// NodeLabel returns the label of node id. The second result is false when
// the id was never registered.
func (g *TemporalGraph) NodeLabel(id int) (int, bool) {
	label, ok := g.labels[id]

	return label, ok
}

// EdgeByID returns the edge with the given dense id. It panics on an
// out-of-range id: edge ids only come from this graph's own scans, so a bad
// one is an internal invariant violation, not a recoverable input error.
func (g *TemporalGraph) EdgeByID(id int) Edge {
	if id < 0 || id >= len(g.edges) {
		panic(&InvariantError{Msg: fmt.Sprintf("edge id %d outside [0,%d)", id, len(g.edges))})
	}

	return g.edges[id]
}

// NeighborsInTimeWindow visits every (neighbor, timestamp, edgeID) entry
// recorded for node in the chosen direction whose timestamp lies in
// [tLow, tHigh], in ascending-timestamp order. This is the enumerator's
// hot loop: the outer btree gives the O(log n + k) range scan, and within
// one timestamp bucket neighbor order is unspecified.
//
// On an undirected graph both directions resolve to the single reciprocal
// adjacency, so Out and In are interchangeable.
//
// Complexity: O(log T + k) for T distinct timestamps and k visited entries.
func (g *TemporalGraph) NeighborsInTimeWindow(node int, tLow, tHigh int64, dir Direction, visit func(NeighborHit)) {
	index := g.out
	if dir == In && g.directed {
		index = g.in
	}
	index.rangeScan(node, tLow, tHigh, visit)
}

// AreNeighbors reports whether any edge exists between a and b, in any
// timestamp and any direction maintained for this graph.
//
// Complexity: O(T) worst case over a's timestamp buckets (plus b's for
// directed graphs).
func (g *TemporalGraph) AreNeighbors(a, b int) bool {
	if g.out.hasNeighbor(a, b) {
		return true
	}
	if g.directed {
		return g.out.hasNeighbor(b, a)
	}

	return false
}
