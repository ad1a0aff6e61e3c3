// File: adjacency.go
// Role: the two-level time-indexed adjacency index: node ->
//       (timestamp-ordered) btree of buckets -> (unordered) neighbor ->
//       edge id map.
// AI-HINT (file):
//   - Keep the outer level ordered (btree) and the inner level a plain
//     map; do not flatten them. NeighborsInTimeWindow's range scan
//     depends on the outer ordering, and per-timestamp neighbor lookups
//     depend on O(1) expected map access.
//   - insert silently overwrites an existing (neighbor, timestamp) entry;
//     multi-edges sharing the full (src, dst, ts) triple collapse.
package tgraph

import "github.com/google/btree"

// timeBucket groups every edge-id reachable from a node at one timestamp.
// It is the unit of ordering in the outer btree.
type timeBucket struct {
	ts        int64
	neighbors map[int]int // neighbor node id -> edge id
}

func timeBucketLess(a, b *timeBucket) bool { return a.ts < b.ts }

// adjacencyIndex is one direction's worth of per-node time-ordered
// adjacency: node id -> btree of timeBucket ordered by timestamp.
type adjacencyIndex struct {
	byNode map[int]*btree.BTreeG[*timeBucket]
}

func newAdjacencyIndex() *adjacencyIndex {
	return &adjacencyIndex{byNode: make(map[int]*btree.BTreeG[*timeBucket])}
}

// btreeDegree is the branching factor handed to google/btree. 32 is the
// library's own example default and performs well for the small-to-medium
// per-node degree typical of motif-mining inputs.
const btreeDegree = 32

// insert records that, at timestamp ts, node has an edge edgeID to
// neighbor. A second insert for the same (node, ts, neighbor) triple
// overwrites the edge id silently rather than surfacing a collision
// error.
func (a *adjacencyIndex) insert(node int, ts int64, neighbor, edgeID int) {
	tree, ok := a.byNode[node]
	if !ok {
		tree = btree.NewG(btreeDegree, timeBucketLess)
		a.byNode[node] = tree
	}

	probe := &timeBucket{ts: ts}
	if existing, found := tree.Get(probe); found {
		existing.neighbors[neighbor] = edgeID
		return
	}

	bucket := &timeBucket{ts: ts, neighbors: map[int]int{neighbor: edgeID}}
	tree.ReplaceOrInsert(bucket)
}

// rangeScan visits every (neighbor, timestamp, edgeID) triple recorded for
// node whose timestamp lies in [tLow, tHigh], in ascending-timestamp order.
// Within one timestamp bucket, neighbor iteration order is unspecified (a
// Go map) and must not be relied upon to affect results.
func (a *adjacencyIndex) rangeScan(node int, tLow, tHigh int64, visit func(NeighborHit)) {
	tree, ok := a.byNode[node]
	if !ok {
		return
	}

	pivot := &timeBucket{ts: tLow}
	tree.AscendGreaterOrEqual(pivot, func(bucket *timeBucket) bool {
		if bucket.ts > tHigh {
			return false // stop: buckets are visited in ascending order
		}
		for neighbor, edgeID := range bucket.neighbors {
			visit(NeighborHit{Neighbor: neighbor, Timestamp: bucket.ts, EdgeID: edgeID})
		}
		return true
	})
}

// hasNeighbor reports whether node has any recorded edge (any timestamp)
// to neighbor in this direction's index.
func (a *adjacencyIndex) hasNeighbor(node, neighbor int) bool {
	tree, ok := a.byNode[node]
	if !ok {
		return false
	}
	found := false
	tree.Ascend(func(bucket *timeBucket) bool {
		if _, ok := bucket.neighbors[neighbor]; ok {
			found = true
			return false
		}
		return true
	})

	return found
}
