package tgraph

// Direction selects which adjacency a time-window query walks.
type Direction int

const (
	// Out walks out-adjacency: edges where the queried node is the source.
	// For undirected graphs Out and In are equivalent (both resolve to the
	// single reciprocal adjacency).
	Out Direction = iota
	// In walks in-adjacency: edges where the queried node is the
	// destination. Meaningless (collapses to Out) on undirected graphs.
	In
)

// Node carries a single integer label. Once added via AddNode, a node's
// label never changes (AddNode is idempotent, first-write-wins).
type Node struct {
	ID    int
	Label int
}

// Edge is identified by a dense id in [0, |E|), assigned in insertion
// order. For undirected graphs, Src/Dst record the orientation the edge
// was read in; both endpoints observe the same Edge value.
type Edge struct {
	ID        int
	Src, Dst  int
	Timestamp int64
	Label     int
}

// NeighborHit is one entry of a time-window scan: the node reached, the
// timestamp of the connecting edge, and that edge's id.
type NeighborHit struct {
	Neighbor  int
	Timestamp int64
	EdgeID    int
}

// TemporalGraph is the time-indexed adjacency representation of one
// labeled temporal network. It is built once (via AddNode/AddEdge) and
// then treated as read-only by the enumerator; it carries no locks
// because mining never mutates it concurrently with reads.
type TemporalGraph struct {
	directed bool

	labels map[int]int // node id -> label; first-write-wins
	edges  []Edge      // dense edge catalog, indexed by Edge.ID

	// out holds, for directed graphs, edges keyed by source; for
	// undirected graphs it holds the single reciprocal adjacency (every
	// edge is inserted under both endpoints). in is nil for undirected
	// graphs.
	out *adjacencyIndex
	in  *adjacencyIndex
}

// NewTemporalGraph constructs an empty graph. directed selects whether
// AddEdge populates a second, in-adjacency index (directed=true) or a
// single symmetric one (directed=false).
func NewTemporalGraph(directed bool) *TemporalGraph {
	g := &TemporalGraph{
		directed: directed,
		labels:   make(map[int]int),
		out:      newAdjacencyIndex(),
	}
	if directed {
		g.in = newAdjacencyIndex()
	}

	return g
}

// Directed reports whether this graph was constructed as directed.
func (g *TemporalGraph) Directed() bool { return g.directed }
