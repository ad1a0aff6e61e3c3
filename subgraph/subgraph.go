// File: subgraph.go
// Role: the mutable partial-occurrence record: node set, edge list, and
//       the sorted edge-id list, with the clone/equality primitives the
//       enumerator leans on.
package subgraph

import (
	"strconv"

	"github.com/katalvlaran/modit/tgraph"
)

// Subgraph is a connected edge-induced occurrence, partial or complete.
// The zero value is not usable; construct with New.
type Subgraph struct {
	nodes   []int         // insertion-ordered, no duplicates, small (<= nMax)
	edges   []tgraph.Edge // full edge records, insertion-ordered
	edgeIDs []int         // sorted ascending, parallel identity view of edges

	tMin, tMax int64 // running timestamp span; valid once len(edges) > 0
}

// New returns an empty Subgraph with capacity hints for the enumerator's
// bounds, so growth up to (nMax, eMax) never reallocates.
func New(nMax, eMax int) *Subgraph {
	return &Subgraph{
		nodes:   make([]int, 0, nMax),
		edges:   make([]tgraph.Edge, 0, eMax),
		edgeIDs: make([]int, 0, eMax),
	}
}

// AddNode records node id; a no-op if the node is already present.
func (s *Subgraph) AddNode(id int) {
	for _, n := range s.nodes {
		if n == id {
			return
		}
	}
	s.nodes = append(s.nodes, id)
}

// AddEdge appends e and its id. Endpoints are not added implicitly; the
// caller (the enumerator) registers nodes itself so it can enforce the
// node-count bound before committing. The edge-id list stays sorted by
// insertion into position, which for the small lists involved beats any
// re-sort.
func (s *Subgraph) AddEdge(e tgraph.Edge) {
	s.edges = append(s.edges, e)

	// Insertion into the sorted id list.
	pos := len(s.edgeIDs)
	for pos > 0 && s.edgeIDs[pos-1] > e.ID {
		pos--
	}
	s.edgeIDs = append(s.edgeIDs, 0)
	copy(s.edgeIDs[pos+1:], s.edgeIDs[pos:])
	s.edgeIDs[pos] = e.ID

	// Maintain the running span.
	if len(s.edges) == 1 {
		s.tMin, s.tMax = e.Timestamp, e.Timestamp
		return
	}
	if e.Timestamp < s.tMin {
		s.tMin = e.Timestamp
	}
	if e.Timestamp > s.tMax {
		s.tMax = e.Timestamp
	}
}

// ContainsNode reports whether node id belongs to the occurrence.
func (s *Subgraph) ContainsNode(id int) bool {
	for _, n := range s.nodes {
		if n == id {
			return true
		}
	}

	return false
}

// ContainsEdge reports whether edge id belongs to the occurrence, by binary
// search over the sorted id list.
func (s *Subgraph) ContainsEdge(id int) bool {
	lo, hi := 0, len(s.edgeIDs)
	for lo < hi {
		mid := (lo + hi) / 2
		if s.edgeIDs[mid] < id {
			lo = mid + 1
		} else {
			hi = mid
		}
	}

	return lo < len(s.edgeIDs) && s.edgeIDs[lo] == id
}

// Clone returns a deep copy. Each slice is copied into fresh backing arrays
// sized to the original's capacity, so the clone can keep growing to the
// same bounds without reallocation.
func (s *Subgraph) Clone() *Subgraph {
	c := &Subgraph{
		nodes:   make([]int, len(s.nodes), cap(s.nodes)),
		edges:   make([]tgraph.Edge, len(s.edges), cap(s.edges)),
		edgeIDs: make([]int, len(s.edgeIDs), cap(s.edgeIDs)),
		tMin:    s.tMin,
		tMax:    s.tMax,
	}
	copy(c.nodes, s.nodes)
	copy(c.edges, s.edges)
	copy(c.edgeIDs, s.edgeIDs)

	return c
}

// Equals reports occurrence identity: the sorted edge-id lists are equal.
// A fixed set of edges uniquely determines the occurrence, so nodes and
// edge records are not consulted.
func (s *Subgraph) Equals(other *Subgraph) bool {
	if len(s.edgeIDs) != len(other.edgeIDs) {
		return false
	}
	for i, id := range s.edgeIDs {
		if other.edgeIDs[i] != id {
			return false
		}
	}

	return true
}

// Key encodes the sorted edge-id list as a compact string, the occurrence's
// identity in the enumerator's seen-set. Keeping only this string (rather
// than the whole Subgraph) is what keeps that set lean under the
// combinatorial growth of deep enumerations.
func (s *Subgraph) Key() string {
	buf := make([]byte, 0, len(s.edgeIDs)*4)
	for i, id := range s.edgeIDs {
		if i > 0 {
			buf = append(buf, ',')
		}
		buf = strconv.AppendInt(buf, int64(id), 10)
	}

	return string(buf)
}

// NumNodes returns the node count.
func (s *Subgraph) NumNodes() int { return len(s.nodes) }

// NumEdges returns the edge count.
func (s *Subgraph) NumEdges() int { return len(s.edges) }

// Nodes returns the node ids in insertion order. The slice is shared with
// the Subgraph; callers must not mutate it.
func (s *Subgraph) Nodes() []int { return s.nodes }

// Edges returns the edge records in insertion order. The slice is shared
// with the Subgraph; callers must not mutate it.
func (s *Subgraph) Edges() []tgraph.Edge { return s.edges }

// TimeSpan returns (tMin, tMax) over the occurrence's edges. Only valid
// once the occurrence holds at least one edge.
func (s *Subgraph) TimeSpan() (int64, int64) { return s.tMin, s.tMax }
