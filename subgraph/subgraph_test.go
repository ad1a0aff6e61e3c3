package subgraph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/modit/subgraph"
	"github.com/katalvlaran/modit/tgraph"
)

func edge(id, src, dst int, ts int64) tgraph.Edge {
	return tgraph.Edge{ID: id, Src: src, Dst: dst, Timestamp: ts}
}

func TestAddNodeDeduplicates(t *testing.T) {
	s := subgraph.New(5, 5)
	s.AddNode(3)
	s.AddNode(1)
	s.AddNode(3)

	assert.Equal(t, []int{3, 1}, s.Nodes(), "insertion order, no duplicates")
	assert.True(t, s.ContainsNode(1))
	assert.False(t, s.ContainsNode(2))
}

func TestAddEdgeKeepsIDsSorted(t *testing.T) {
	s := subgraph.New(5, 5)
	s.AddNode(0)
	s.AddNode(1)
	s.AddNode(2)

	// Deliberately out of id order.
	s.AddEdge(edge(7, 0, 1, 10))
	s.AddEdge(edge(2, 1, 2, 30))
	s.AddEdge(edge(5, 0, 2, 20))

	assert.Equal(t, "2,5,7", s.Key())
	assert.True(t, s.ContainsEdge(5))
	assert.False(t, s.ContainsEdge(3))

	tMin, tMax := s.TimeSpan()
	assert.Equal(t, int64(10), tMin)
	assert.Equal(t, int64(30), tMax)
}

func TestCloneIsDeep(t *testing.T) {
	s := subgraph.New(5, 5)
	s.AddNode(0)
	s.AddNode(1)
	s.AddEdge(edge(0, 0, 1, 5))

	c := s.Clone()
	require.True(t, s.Equals(c))

	c.AddNode(2)
	c.AddEdge(edge(1, 1, 2, 9))

	assert.Equal(t, 1, s.NumEdges(), "mutating the clone must not touch the original")
	assert.Equal(t, 2, s.NumNodes())
	assert.False(t, s.Equals(c))

	_, tMax := s.TimeSpan()
	assert.Equal(t, int64(5), tMax)
}

func TestEqualsUsesEdgeIDsOnly(t *testing.T) {
	// Same edge-id set reached through different insertion orders: the two
	// occurrences are identical.
	a := subgraph.New(5, 5)
	a.AddNode(0)
	a.AddNode(1)
	a.AddNode(2)
	a.AddEdge(edge(0, 0, 1, 1))
	a.AddEdge(edge(1, 1, 2, 2))

	b := subgraph.New(5, 5)
	b.AddNode(1)
	b.AddNode(2)
	b.AddNode(0)
	b.AddEdge(edge(1, 1, 2, 2))
	b.AddEdge(edge(0, 0, 1, 1))

	assert.True(t, a.Equals(b))
	assert.Equal(t, a.Key(), b.Key())

	// Different edge sets differ, regardless of matching size.
	c := subgraph.New(5, 5)
	c.AddNode(0)
	c.AddNode(1)
	c.AddNode(2)
	c.AddEdge(edge(0, 0, 1, 1))
	c.AddEdge(edge(2, 1, 2, 2))

	assert.False(t, a.Equals(c))
	assert.NotEqual(t, a.Key(), c.Key())
}

func TestSingleEdgeSpan(t *testing.T) {
	s := subgraph.New(2, 1)
	s.AddNode(0)
	s.AddNode(1)
	s.AddEdge(edge(4, 0, 1, 42))

	tMin, tMax := s.TimeSpan()
	assert.Equal(t, int64(42), tMin)
	assert.Equal(t, int64(42), tMax)
}
