// File: solver.go
// Role: the MODIT mining engine - seed every edge, grow partials under the
//       delta window and size bounds, suppress duplicate discoveries by
//       edge-id identity, count canonical forms.
// AI-HINT (file):
//   - The seen-set stores only the sorted edge-id key string, never the
//     Subgraph, to keep its memory footprint at the minimum the
//     combinatorial worst case allows.
//   - Duplicate suppression MUST use edge-id identity, not canonical
//     forms: distinct occurrences of one motif are separate data points.
package enumerator

import (
	"context"
	"fmt"
	"math"

	"github.com/katalvlaran/modit/canonical"
	"github.com/katalvlaran/modit/subgraph"
	"github.com/katalvlaran/modit/tgraph"
)

// Solver mines frequent temporal motifs from one TemporalGraph. The graph
// is read-only for the Solver's lifetime; the seen-set and result map live
// inside each FindMotifs call, so one Solver value can serve sequential
// runs with different deltas.
type Solver struct {
	g    *tgraph.TemporalGraph
	nMax int // max nodes per occurrence, >= 2
	eMax int // max edges per occurrence, >= 1
}

// NewSolver validates the bounds and returns a Solver over g.
func NewSolver(g *tgraph.TemporalGraph, nMax, eMax int) (*Solver, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if nMax < 2 {
		return nil, fmt.Errorf("n_max=%d: %w", nMax, ErrBadNodeBound)
	}
	if eMax < 1 {
		return nil, fmt.Errorf("e_max=%d: %w", eMax, ErrBadEdgeBound)
	}

	return &Solver{g: g, nMax: nMax, eMax: eMax}, nil
}

// run is the mutable state of one FindMotifs call.
type run struct {
	delta  int64
	seen   map[string]struct{} // sorted edge-id keys of counted occurrences
	result *Result
	queue  []*subgraph.Subgraph // partials still eligible for extension
}

// FindMotifs enumerates every connected occurrence of up to (nMax, eMax)
// size whose timestamp span stays within delta, and returns the motif
// classes with their support. delta = InfiniteDelta disables the window;
// delta = 0 restricts to simultaneous-edge motifs. ctx is consulted
// between outer seed iterations only, so cancellation lands on an
// occurrence boundary and the partial result is discarded.
//
// Complexity: output-sensitive; worst case combinatorial in the bounds and
// graph density (each distinct occurrence is materialized exactly once,
// rediscoveries cost one seen-set probe).
func (s *Solver) FindMotifs(ctx context.Context, delta int64) (*Result, error) {
	if delta < 0 {
		return nil, fmt.Errorf("delta=%d: %w", delta, ErrBadDelta)
	}

	r := &run{
		delta:  delta,
		seen:   make(map[string]struct{}),
		result: newResult(),
	}

	for eid := 0; eid < s.g.NumEdges(); eid++ {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("enumerator: aborted at seed %d: %w", eid, err)
		}

		// Seed: the occurrence holding exactly this edge and its
		// endpoint(s).
		e := s.g.EdgeByID(eid)
		occ := subgraph.New(s.nMax, s.eMax)
		occ.AddNode(e.Src)
		occ.AddNode(e.Dst) // no-op for self-loops
		occ.AddEdge(e)
		s.admit(r, occ)

		// Drain everything reachable from this seed before moving on, so
		// the queue never holds more than one seed's extension wave.
		for len(r.queue) > 0 {
			cur := r.queue[0]
			r.queue = r.queue[1:]
			s.extend(r, cur)
		}
	}

	return r.result, nil
}

// admit records one freshly built occurrence: duplicate-check by edge-id
// identity, canonicalize, count, and enqueue for further growth while the
// edge bound leaves room.
func (s *Solver) admit(r *run, occ *subgraph.Subgraph) {
	key := occ.Key()
	if _, dup := r.seen[key]; dup {
		return
	}
	r.seen[key] = struct{}{}

	r.result.add(canonical.Canonicalize(occ, s.g.Directed(), s.g))

	if occ.NumEdges() < s.eMax {
		r.queue = append(r.queue, occ)
	}
}

// extend pushes cur one edge outward: every edge incident to a node of
// cur, absent from cur, inside the delta window, and within the size
// bounds spawns one cloned child occurrence.
func (s *Solver) extend(r *run, cur *subgraph.Subgraph) {
	tMin, tMax := cur.TimeSpan()
	tLow, tHigh := window(tMin, tMax, r.delta)

	// Frontier edges, deduplicated across the scans: an edge between two
	// occurrence nodes is visible from both endpoints (and, directed,
	// from both the out- and in-adjacency), but must spawn one child.
	frontier := make(map[int]struct{})

	visit := func(h tgraph.NeighborHit) {
		if cur.ContainsEdge(h.EdgeID) {
			return
		}
		if _, dup := frontier[h.EdgeID]; dup {
			return
		}
		e := s.g.EdgeByID(h.EdgeID)
		if added := newEndpoints(cur, e); cur.NumNodes()+added > s.nMax {
			return
		}
		frontier[h.EdgeID] = struct{}{}

		child := cur.Clone()
		child.AddNode(e.Src)
		child.AddNode(e.Dst)
		child.AddEdge(e)
		s.admit(r, child)
	}

	for _, v := range cur.Nodes() {
		s.g.NeighborsInTimeWindow(v, tLow, tHigh, tgraph.Out, visit)
		if s.g.Directed() {
			s.g.NeighborsInTimeWindow(v, tLow, tHigh, tgraph.In, visit)
		}
	}
}

// newEndpoints counts how many of e's endpoints the occurrence is missing.
func newEndpoints(cur *subgraph.Subgraph, e tgraph.Edge) int {
	added := 0
	if !cur.ContainsNode(e.Src) {
		added++
	}
	if e.Dst != e.Src && !cur.ContainsNode(e.Dst) {
		added++
	}

	return added
}

// window computes the admissible timestamp range for the next edge of an
// occurrence spanning [tMin, tMax]: any t in [tMax-delta, tMin+delta]
// keeps the extended span within delta. The arithmetic saturates so that
// InfiniteDelta yields the full int64 range instead of wrapping.
func window(tMin, tMax, delta int64) (int64, int64) {
	low := tMax - delta
	if low > tMax { // wrapped below MinInt64
		low = math.MinInt64
	}
	high := tMin + delta
	if high < tMin { // wrapped above MaxInt64
		high = math.MaxInt64
	}

	return low, high
}
