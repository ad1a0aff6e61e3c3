package canonical_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/modit/canonical"
	"github.com/katalvlaran/modit/subgraph"
	"github.com/katalvlaran/modit/tgraph"
)

// buildOccurrence assembles a graph from (id, label) nodes and
// (src, dst, ts, label) edges and returns the occurrence spanning all of
// them, ready for canonicalization.
func buildOccurrence(t *testing.T, directed bool, nodes map[int]int, edges [][4]int) (*tgraph.TemporalGraph, *subgraph.Subgraph) {
	t.Helper()
	g := tgraph.NewTemporalGraph(directed)
	for id, label := range nodes {
		require.NoError(t, g.AddNode(id, label))
	}
	s := subgraph.New(len(nodes), len(edges))
	for _, e := range edges {
		id, err := g.AddEdge(e[0], e[1], int64(e[2]), e[3])
		require.NoError(t, err)
		s.AddNode(e[0])
		s.AddNode(e[1])
		s.AddEdge(g.EdgeByID(id))
	}

	return g, s
}

func TestSingleDirectedEdge(t *testing.T) {
	g, s := buildOccurrence(t, true,
		map[int]int{0: 1, 1: 2},
		[][4]int{{0, 1, 10, 7}})

	form := canonical.Canonicalize(s, true, g)

	require.Equal(t, 2, form.NumNodes())
	assert.Equal(t, []int{1, 2}, form.Labels, "source outranks sink on out-degree")
	require.Len(t, form.Edges[0], 1)
	assert.Equal(t, canonical.Edge{Dest: 1, Time: 0, Label: 7}, form.Edges[0][0])
	assert.Empty(t, form.Edges[1])
}

func TestTimestampNormalizationInvariance(t *testing.T) {
	// Same 2-path with translated and stretched timestamps: identical Form.
	g1, s1 := buildOccurrence(t, true,
		map[int]int{0: 1, 1: 1, 2: 1},
		[][4]int{{0, 1, 5, 0}, {1, 2, 9, 0}})

	g2, s2 := buildOccurrence(t, true,
		map[int]int{0: 1, 1: 1, 2: 1},
		[][4]int{{0, 1, 1000, 0}, {1, 2, 99999, 0}})

	f1 := canonical.Canonicalize(s1, true, g1)
	f2 := canonical.Canonicalize(s2, true, g2)

	assert.True(t, f1.Equal(f2))
	assert.Equal(t, f1.Key(), f2.Key())
}

func TestNodeIDPermutationInvariance(t *testing.T) {
	// The same labeled 2-path under two different node-id assignments must
	// collapse to one Form.
	g1, s1 := buildOccurrence(t, true,
		map[int]int{0: 4, 1: 5, 2: 6},
		[][4]int{{0, 1, 1, 2}, {1, 2, 2, 3}})

	g2, s2 := buildOccurrence(t, true,
		map[int]int{7: 6, 8: 4, 9: 5},
		[][4]int{{8, 9, 1, 2}, {9, 7, 2, 3}})

	f1 := canonical.Canonicalize(s1, true, g1)
	f2 := canonical.Canonicalize(s2, true, g2)

	assert.True(t, f1.Equal(f2))
	assert.Equal(t, f1.Key(), f2.Key())
}

func TestLabelSensitivity(t *testing.T) {
	// Identical topology, different node labels, distinct keys.
	g1, s1 := buildOccurrence(t, true,
		map[int]int{0: 1, 1: 2, 2: 3},
		[][4]int{{0, 1, 1, 0}, {1, 2, 2, 0}})

	g2, s2 := buildOccurrence(t, true,
		map[int]int{0: 1, 1: 2, 2: 1},
		[][4]int{{0, 1, 1, 0}, {1, 2, 2, 0}})

	f1 := canonical.Canonicalize(s1, true, g1)
	f2 := canonical.Canonicalize(s2, true, g2)

	assert.False(t, f1.Equal(f2))
	assert.NotEqual(t, f1.Key(), f2.Key())
}

func TestEdgeLabelSensitivity(t *testing.T) {
	g1, s1 := buildOccurrence(t, true,
		map[int]int{0: 1, 1: 1},
		[][4]int{{0, 1, 1, 5}})
	g2, s2 := buildOccurrence(t, true,
		map[int]int{0: 1, 1: 1},
		[][4]int{{0, 1, 1, 6}})

	f1 := canonical.Canonicalize(s1, true, g1)
	f2 := canonical.Canonicalize(s2, true, g2)
	assert.NotEqual(t, f1.Key(), f2.Key())
}

func TestTemporalOrderSensitivity(t *testing.T) {
	// A 2-path whose edges happen in order 0->1 then 1->2 differs from one
	// where the second hop happens first: normalization keeps relative
	// order.
	g1, s1 := buildOccurrence(t, true,
		map[int]int{0: 1, 1: 1, 2: 1},
		[][4]int{{0, 1, 1, 0}, {1, 2, 2, 0}})
	g2, s2 := buildOccurrence(t, true,
		map[int]int{0: 1, 1: 1, 2: 1},
		[][4]int{{0, 1, 2, 0}, {1, 2, 1, 0}})

	f1 := canonical.Canonicalize(s1, true, g1)
	f2 := canonical.Canonicalize(s2, true, g2)
	assert.NotEqual(t, f1.Key(), f2.Key())
}

func TestUndirectedEdgeBothEndpoints(t *testing.T) {
	g, s := buildOccurrence(t, false,
		map[int]int{0: 1, 1: 2},
		[][4]int{{0, 1, 3, 4}})

	form := canonical.Canonicalize(s, false, g)

	require.Equal(t, 2, form.NumNodes())
	// Both endpoints carry the reciprocal edge in their out view; the
	// higher label wins the first canonical slot (degrees tie at 1).
	assert.Equal(t, []int{2, 1}, form.Labels)
	require.Len(t, form.Edges[0], 1)
	require.Len(t, form.Edges[1], 1)
	assert.Equal(t, canonical.Edge{Dest: 1, Time: 0, Label: 4}, form.Edges[0][0])
	assert.Equal(t, canonical.Edge{Dest: 0, Time: 0, Label: 4}, form.Edges[1][0])
}

func TestUndirectedTriangle(t *testing.T) {
	g, s := buildOccurrence(t, false,
		map[int]int{0: 1, 1: 1, 2: 1},
		[][4]int{{0, 1, 0, 0}, {1, 2, 1, 0}, {0, 2, 2, 0}})

	form := canonical.Canonicalize(s, false, g)

	require.Equal(t, 3, form.NumNodes())
	for i := 0; i < 3; i++ {
		assert.Equal(t, 1, form.Labels[i])
		assert.Len(t, form.Edges[i], 2, "each triangle node sees two reciprocal edges")
	}
}

func TestSelfLoop(t *testing.T) {
	g, s := buildOccurrence(t, true,
		map[int]int{0: 9},
		[][4]int{{0, 0, 5, 1}})

	form := canonical.Canonicalize(s, true, g)

	require.Equal(t, 1, form.NumNodes())
	assert.Equal(t, []int{9}, form.Labels)
	require.Len(t, form.Edges[0], 1)
	assert.Equal(t, canonical.Edge{Dest: 0, Time: 0, Label: 1}, form.Edges[0][0])
}

// reconstruct builds the occurrence a Form describes, using canonical
// indices as node ids and normalized ranks as timestamps, then returns the
// result of canonicalizing it again.
func reconstruct(t *testing.T, form canonical.Form, directed bool) canonical.Form {
	t.Helper()
	g := tgraph.NewTemporalGraph(directed)
	for i, label := range form.Labels {
		require.NoError(t, g.AddNode(i, label))
	}
	s := subgraph.New(form.NumNodes(), 64)
	for i := range form.Labels {
		s.AddNode(i)
	}
	for i, list := range form.Edges {
		for _, e := range list {
			if !directed && e.Dest < i {
				continue // reciprocal twin: the Dest >= i copy materializes it
			}
			id, err := g.AddEdge(i, e.Dest, int64(e.Time), e.Label)
			require.NoError(t, err)
			s.AddEdge(g.EdgeByID(id))
		}
	}

	return canonical.Canonicalize(s, directed, g)
}

func TestRoundTrip(t *testing.T) {
	cases := []struct {
		name     string
		directed bool
		nodes    map[int]int
		edges    [][4]int
	}{
		{"directed 2-path", true, map[int]int{0: 1, 1: 2, 2: 3}, [][4]int{{0, 1, 1, 0}, {1, 2, 7, 0}}},
		{"directed fan-out", true, map[int]int{0: 1, 1: 2, 2: 2}, [][4]int{{0, 1, 1, 0}, {0, 2, 2, 5}}},
		{"directed self-loop", true, map[int]int{0: 3}, [][4]int{{0, 0, 4, 2}}},
		{"undirected triangle", false, map[int]int{0: 1, 1: 1, 2: 1}, [][4]int{{0, 1, 0, 0}, {1, 2, 1, 0}, {0, 2, 2, 0}}},
		{"undirected path", false, map[int]int{0: 5, 1: 6, 2: 7}, [][4]int{{0, 1, 3, 1}, {1, 2, 8, 2}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, s := buildOccurrence(t, tc.directed, tc.nodes, tc.edges)
			form := canonical.Canonicalize(s, tc.directed, g)
			again := reconstruct(t, form, tc.directed)
			assert.True(t, form.Equal(again), "canonicalize(reconstruct(C)) must equal C")
			assert.Equal(t, form.Key(), again.Key())
		})
	}
}

func TestKeyEncoding(t *testing.T) {
	g, s := buildOccurrence(t, true,
		map[int]int{0: 1, 1: 2},
		[][4]int{{0, 1, 10, 7}})
	form := canonical.Canonicalize(s, true, g)

	assert.Equal(t, "0:1(1,0,7);1:2", form.Key())
}
