package core_test

import (
	"testing"

	"github.com/katalvlaran/valveflow/core"
	"github.com/stretchr/testify/require"
)

func TestAddVertex_Errors(t *testing.T) {
	g := core.NewGraph()
	require.ErrorIs(t, g.AddVertex("", 1), core.ErrEmptyVertexID)
	require.ErrorIs(t, g.AddVertex("AA", -1), core.ErrNegativeReward)
	require.Equal(t, 0, g.VertexCount())
}

func TestAddVertex_UpdateKeepsIndex(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddVertex("AA", 0))
	require.NoError(t, g.AddVertex("BB", 13))
	require.NoError(t, g.AddVertex("AA", 7))

	v, err := g.Vertex("AA")
	require.NoError(t, err)
	require.Equal(t, 0, v.Index)
	require.Equal(t, 7, v.Reward)
	require.Equal(t, 2, g.VertexCount())
}

func TestVertex_NotFound(t *testing.T) {
	g := core.NewGraph()
	_, err := g.Vertex("ZZ")
	require.ErrorIs(t, err, core.ErrVertexNotFound)
	_, err = g.Vertex("")
	require.ErrorIs(t, err, core.ErrEmptyVertexID)
	idx, err := g.Index("ZZ")
	require.ErrorIs(t, err, core.ErrVertexNotFound)
	require.Equal(t, -1, idx)
	require.False(t, g.HasVertex(""))
}

func TestAddTunnel(t *testing.T) {
	g := core.NewGraph()
	require.ErrorIs(t, g.AddTunnel("AA", ""), core.ErrEmptyVertexID)
	require.ErrorIs(t, g.AddTunnel("AA", "AA"), core.ErrLoopNotAllowed)

	// Endpoints are auto-created with zero reward.
	require.NoError(t, g.AddTunnel("AA", "BB"))
	require.NoError(t, g.AddTunnel("BB", "AA")) // duplicate collapses
	require.NoError(t, g.AddTunnel("BB", "CC"))

	require.Equal(t, 3, g.VertexCount())
	require.Equal(t, 2, g.TunnelCount())
	require.True(t, g.HasTunnel("AA", "BB"))
	require.True(t, g.HasTunnel("BB", "AA"))
	require.False(t, g.HasTunnel("AA", "CC"))
	require.False(t, g.HasTunnel("AA", "QQ"))

	v, err := g.Vertex("CC")
	require.NoError(t, err)
	require.Equal(t, 0, v.Reward)
}

func TestNeighbors_IndexOrder(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddVertex("AA", 0))
	require.NoError(t, g.AddVertex("BB", 0))
	require.NoError(t, g.AddVertex("CC", 0))
	require.NoError(t, g.AddTunnel("BB", "CC"))
	require.NoError(t, g.AddTunnel("BB", "AA"))

	nbs, err := g.Neighbors("BB")
	require.NoError(t, err)
	require.Equal(t, []string{"AA", "CC"}, nbs)

	_, err = g.Neighbors("QQ")
	require.ErrorIs(t, err, core.ErrVertexNotFound)
}

func TestSnapshot(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddVertex("AA", 0))
	require.NoError(t, g.AddVertex("BB", 13))
	require.NoError(t, g.AddVertex("CC", 2))
	require.NoError(t, g.AddTunnel("AA", "BB"))
	require.NoError(t, g.AddTunnel("BB", "CC"))

	s := g.Snapshot()
	require.Equal(t, []string{"AA", "BB", "CC"}, s.Names)
	require.Equal(t, []int{0, 13, 2}, s.Rewards)
	require.Equal(t, [][]int{{1}, {0, 2}, {1}}, s.Adjacency)
	require.Equal(t, 1, s.Index("BB"))
	require.Equal(t, -1, s.Index("ZZ"))

	// The snapshot is detached from later mutations.
	require.NoError(t, g.AddVertex("BB", 99))
	require.Equal(t, 13, s.Rewards[1])
}

func TestVertices_Copies(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddVertex("AA", 3))
	vs := g.Vertices()
	vs[0].Reward = 100

	v, err := g.Vertex("AA")
	require.NoError(t, err)
	require.Equal(t, 3, v.Reward)
}
