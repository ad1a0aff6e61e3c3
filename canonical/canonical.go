// File: canonical.go
// Role: the canonicalization procedure - timestamp normalization, per-node
//       signatures, greedy vertex ordering, canonical edge list.
// AI-HINT (file):
//   - Signatures are sorted flattened integer triples compared with
//     slices.Compare, not concatenated strings: same total order, no
//     per-comparison allocation.
//   - The ranking tuple is compared component-by-component DESCENDING;
//     only the final node-id tiebreaker is ascending (smallest id wins).
//     Do not reorder the components - the tuple order defines the motif
//     classes and changing it changes counts.
package canonical

import (
	"fmt"
	"slices"
	"sort"

	"github.com/katalvlaran/modit/subgraph"
	"github.com/katalvlaran/modit/tgraph"
)

// LabelLookup resolves a node id to its label. *tgraph.TemporalGraph
// satisfies it.
type LabelLookup interface {
	NodeLabel(id int) (int, bool)
}

// halfEdge is one edge as seen from a fixed endpoint: normalized timestamp
// rank, edge label, the node at the other end.
type halfEdge struct {
	time  int
	label int
	other int
}

// nodeInfo caches everything the greedy ordering ranks a node by.
type nodeInfo struct {
	id     int
	label  int
	outDeg int
	inDeg  int
	outSig []int // sorted (time, edgeLabel, otherLabel) triples, flattened
	inSig  []int // directed only; nil for undirected occurrences
}

// Canonicalize reduces occurrence s to its canonical Form. directed selects
// the directed procedure (separate out/in views and in-signatures) or the
// undirected one (a single reciprocal view, no in-signatures). labels must
// know every node of s; a miss is an internal invariant violation and
// panics, per the error taxonomy.
//
// Complexity: O(E log E) for the sorts plus O(V^2 * E) worst case for the
// frontier rescans - negligible at motif sizes (V, E <= a handful).
func Canonicalize(s *subgraph.Subgraph, directed bool, labels LabelLookup) Form {
	nodes := s.Nodes()
	edges := s.Edges()

	labelOf := func(id int) int {
		label, ok := labels.NodeLabel(id)
		if !ok {
			panic(&tgraph.InvariantError{Msg: fmt.Sprintf("canonicalize: no label for node %d", id)})
		}

		return label
	}

	// (a) Timestamp normalization: distinct timestamps, sorted, rank map.
	rank := normalizeTimestamps(edges)

	// Build the occurrence-local adjacency views. For undirected
	// occurrences every edge contributes to out for both endpoints and
	// the in view stays empty; a self-loop contributes once.
	out := make(map[int][]halfEdge, len(nodes))
	in := make(map[int][]halfEdge, len(nodes))
	for _, e := range edges {
		he := halfEdge{time: rank[e.Timestamp], label: e.Label}
		if directed {
			he.other = e.Dst
			out[e.Src] = append(out[e.Src], he)
			he.other = e.Src
			in[e.Dst] = append(in[e.Dst], he)
			continue
		}
		he.other = e.Dst
		out[e.Src] = append(out[e.Src], he)
		if e.Src != e.Dst {
			he.other = e.Src
			out[e.Dst] = append(out[e.Dst], he)
		}
	}

	// (b) Per-node signatures and degrees.
	info := make(map[int]*nodeInfo, len(nodes))
	for _, id := range nodes {
		ni := &nodeInfo{
			id:     id,
			label:  labelOf(id),
			outDeg: len(out[id]),
			inDeg:  len(in[id]),
			outSig: signature(out[id], labelOf),
		}
		if directed {
			ni.inSig = signature(in[id], labelOf)
		}
		info[id] = ni
	}

	// (c) Greedy vertex ordering over the frontier.
	canonicalMap := orderVertices(nodes, out, in, info)

	// (d) Canonical edge list: remap each node's out view and sort.
	k := len(nodes)
	form := Form{Labels: make([]int, k), Edges: make([][]Edge, k)}
	for _, id := range nodes {
		idx := canonicalMap[id]
		form.Labels[idx] = info[id].label
		list := make([]Edge, 0, len(out[id]))
		for _, he := range out[id] {
			list = append(list, Edge{Dest: canonicalMap[he.other], Time: he.time, Label: he.label})
		}
		sort.Slice(list, func(i, j int) bool {
			a, b := list[i], list[j]
			if a.Dest != b.Dest {
				return a.Dest < b.Dest
			}
			if a.Time != b.Time {
				return a.Time < b.Time
			}

			return a.Label < b.Label
		})
		form.Edges[idx] = list
	}

	return form
}

// normalizeTimestamps maps each distinct timestamp of the occurrence to its
// 0-based rank in ascending order.
func normalizeTimestamps(edges []tgraph.Edge) map[int64]int {
	distinct := make([]int64, 0, len(edges))
	seen := make(map[int64]struct{}, len(edges))
	for _, e := range edges {
		if _, ok := seen[e.Timestamp]; !ok {
			seen[e.Timestamp] = struct{}{}
			distinct = append(distinct, e.Timestamp)
		}
	}
	slices.Sort(distinct)

	rank := make(map[int64]int, len(distinct))
	for i, ts := range distinct {
		rank[ts] = i
	}

	return rank
}

// signature encodes a node's half-edges as sorted (time, edgeLabel,
// otherLabel) triples flattened into one integer sequence. Lexicographic
// comparison of two signatures with slices.Compare preserves the order the
// triple sort establishes.
func signature(halves []halfEdge, labelOf func(int) int) []int {
	triples := make([][3]int, len(halves))
	for i, he := range halves {
		triples[i] = [3]int{he.time, he.label, labelOf(he.other)}
	}
	sort.Slice(triples, func(i, j int) bool {
		a, b := triples[i], triples[j]
		if a[0] != b[0] {
			return a[0] < b[0]
		}
		if a[1] != b[1] {
			return a[1] < b[1]
		}

		return a[2] < b[2]
	})

	sig := make([]int, 0, 3*len(triples))
	for _, t := range triples {
		sig = append(sig, t[0], t[1], t[2])
	}

	return sig
}

// rankHigher reports whether a outranks b under the greedy ordering: the
// (outDeg, inDeg, label, outSig, inSig) tuple compared descending
// component-by-component, then smallest original id as the deterministic
// final tiebreaker.
func rankHigher(a, b *nodeInfo) bool {
	if a.outDeg != b.outDeg {
		return a.outDeg > b.outDeg
	}
	if a.inDeg != b.inDeg {
		return a.inDeg > b.inDeg
	}
	if a.label != b.label {
		return a.label > b.label
	}
	if c := slices.Compare(a.outSig, b.outSig); c != 0 {
		return c > 0
	}
	if c := slices.Compare(a.inSig, b.inSig); c != 0 {
		return c > 0
	}

	return a.id < b.id
}

// orderVertices assigns canonical indices 0..k-1: repeatedly pick the
// maximum-ranked node from the frontier, then recompute the frontier as
// the unused nodes one edge away from any picked node (out and in views
// both count). An empty frontier with unused nodes remaining - a
// disconnected occurrence, which a correct enumerator never produces - is
// reseeded to all remaining nodes rather than rejected.
func orderVertices(nodes []int, out, in map[int][]halfEdge, info map[int]*nodeInfo) map[int]int {
	used := make(map[int]bool, len(nodes))
	canonicalMap := make(map[int]int, len(nodes))

	frontier := make([]int, len(nodes))
	copy(frontier, nodes)

	for next := 0; next < len(nodes); next++ {
		if len(frontier) == 0 {
			for _, id := range nodes {
				if !used[id] {
					frontier = append(frontier, id)
				}
			}
		}

		best := frontier[0]
		for _, id := range frontier[1:] {
			if rankHigher(info[id], info[best]) {
				best = id
			}
		}
		canonicalMap[best] = next
		used[best] = true

		// Recompute the frontier: unused nodes adjacent to any used node.
		frontier = frontier[:0]
		seen := make(map[int]bool, len(nodes))
		for _, id := range nodes {
			if !used[id] {
				continue
			}
			for _, he := range out[id] {
				if !used[he.other] && !seen[he.other] {
					seen[he.other] = true
					frontier = append(frontier, he.other)
				}
			}
			for _, he := range in[id] {
				if !used[he.other] && !seen[he.other] {
					seen[he.other] = true
					frontier = append(frontier, he.other)
				}
			}
		}
		// Keep the frontier order deterministic: map iteration above walks
		// nodes in their insertion-ordered slice, so appends already are.
	}

	return canonicalMap
}
