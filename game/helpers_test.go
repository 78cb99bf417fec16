package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func mustBoard(t *testing.T, topo Topology) *Board {
	t.Helper()
	b, err := NewBoard(topo)
	require.NoError(t, err)
	return b
}

// pathTopology builds a line of n nodes where edge i connects nodes i and
// i+1. No hexes and no ports unless the test attaches them.
func pathTopology(n int) Topology {
	topo := Topology{}
	for i := 0; i < n; i++ {
		topo.Nodes = append(topo.Nodes, TopologyNode{ID: i})
	}
	for i := 0; i < n-1; i++ {
		topo.Edges = append(topo.Edges, TopologyEdge{ID: i, Nodes: [2]int{i, i + 1}})
	}
	return topo
}

// giveResources credits a cost vector's worth of resources, n times over.
func giveResources(p *Player, cost map[Resource]int, n int) {
	for r, amount := range cost {
		p.AddResource(r, amount*n)
	}
}
