package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// branchTopology: a path 0-1-2-3-4-5-6 with a spur 2-7 and a triangle
// 4-5-8-4 for cycle coverage.
func branchTopology() Topology {
	topo := pathTopology(7)
	topo.Nodes = append(topo.Nodes, TopologyNode{ID: 7}, TopologyNode{ID: 8})
	topo.Edges = append(topo.Edges,
		TopologyEdge{ID: 6, Nodes: [2]int{2, 7}},
		TopologyEdge{ID: 7, Nodes: [2]int{5, 8}},
		TopologyEdge{ID: 8, Nodes: [2]int{8, 4}},
	)
	return topo
}

func TestLongestRoadSimplePath(t *testing.T) {
	b := mustBoard(t, pathTopology(8))

	for i := 0; i < 4; i++ {
		b.PlaceRoad(i, 1)
	}
	require.Equal(t, 4, b.LongestRoad(1))
	require.Zero(t, b.LongestRoad(2))

	b.PlaceRoad(4, 1)
	require.Equal(t, 5, b.LongestRoad(1))
}

func TestLongestRoadBranching(t *testing.T) {
	b := mustBoard(t, branchTopology())
	// Path 0..6 plus the spur at node 2: the spur forks off, only the
	// longer arm counts beyond the fork.
	for i := 0; i < 7; i++ {
		b.PlaceRoad(i, 1)
	}
	// Longest: 7-2 then 2-3-4-5-6 = 5 edges... or 0-1-2 joined with
	// 2-3-4-5-6 = 6 edges.
	require.Equal(t, 6, b.LongestRoad(1))
}

func TestLongestRoadCycle(t *testing.T) {
	b := mustBoard(t, branchTopology())
	// Edges 3-4, 4-5, 5-8, 8-4 form a triangle with a tail: each edge may
	// be used once, so the best walk is tail plus the full triangle.
	b.PlaceRoad(3, 1) // 3-4
	b.PlaceRoad(4, 1) // 4-5
	b.PlaceRoad(7, 1) // 5-8
	b.PlaceRoad(8, 1) // 8-4
	require.Equal(t, 4, b.LongestRoad(1))
}

func TestLongestRoadOpponentBlocking(t *testing.T) {
	t.Run("mid-path settlement splits the road", func(t *testing.T) {
		b := mustBoard(t, pathTopology(7))
		for i := 0; i < 6; i++ {
			b.PlaceRoad(i, 1)
		}
		require.Equal(t, 6, b.LongestRoad(1))

		b.PlaceSettlement(2, 2)
		require.Equal(t, 4, b.LongestRoad(1),
			"the longer surviving segment wins, not 0 and not 6")
	})

	t.Run("own structures never block", func(t *testing.T) {
		b := mustBoard(t, pathTopology(7))
		for i := 0; i < 6; i++ {
			b.PlaceRoad(i, 1)
		}
		b.PlaceSettlement(3, 1)
		require.Equal(t, 6, b.LongestRoad(1))
	})

	t.Run("edge blocked at one end counts from the open end", func(t *testing.T) {
		b := mustBoard(t, pathTopology(3))
		b.PlaceRoad(0, 1)
		b.PlaceRoad(1, 1)
		b.PlaceSettlement(2, 2)
		require.Equal(t, 2, b.LongestRoad(1),
			"walk may end at the blocked node but not pass through")
	})

	t.Run("edge blocked at both ends is unusable", func(t *testing.T) {
		b := mustBoard(t, pathTopology(4))
		b.PlaceRoad(1, 1)
		b.PlaceSettlement(1, 2)
		b.PlaceSettlement(2, 2)
		require.Zero(t, b.LongestRoad(1))
	})
}
