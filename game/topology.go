package game

import (
	"encoding/json"
	"fmt"
	"os"
)

// Topology is the static board description consumed at startup. Node edge
// and neighbor adjacency is derived from the edge list, so the description
// only carries what cannot be computed.
type Topology struct {
	Nodes []TopologyNode `json:"nodes"`
	Hexes []TopologyHex  `json:"hexes"`
	Edges []TopologyEdge `json:"edges"`
}

type TopologyNode struct {
	ID    int   `json:"id"`
	Hexes []int `json:"hexes"`
	Port  Port  `json:"port,omitempty"`
}

type TopologyHex struct {
	ID       int      `json:"id"`
	Resource Resource `json:"resource"`
	Number   int      `json:"number"`
}

type TopologyEdge struct {
	ID    int    `json:"id"`
	Nodes [2]int `json:"nodes"`
}

// LoadTopology reads a board description from a JSON file.
func LoadTopology(path string) (Topology, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Topology{}, fmt.Errorf("read topology: %w", err)
	}
	var t Topology
	if err := json.Unmarshal(data, &t); err != nil {
		return Topology{}, fmt.Errorf("decode topology: %w", err)
	}
	return t, nil
}

// NewBoard builds a playable board from a topology description. All nodes
// start empty and all edges unowned.
func NewBoard(t Topology) (*Board, error) {
	b := &Board{
		Nodes: make(map[int]*Node, len(t.Nodes)),
		Hexes: make(map[int]*HexTile, len(t.Hexes)),
		Edges: make(map[int]*Edge, len(t.Edges)),
	}

	for _, tn := range t.Nodes {
		if _, ok := b.Nodes[tn.ID]; ok {
			return nil, fmt.Errorf("duplicate node id %d", tn.ID)
		}
		hexes := make([]int, len(tn.Hexes))
		copy(hexes, tn.Hexes)
		b.Nodes[tn.ID] = &Node{ID: tn.ID, Hexes: hexes, Port: tn.Port}
	}

	for _, th := range t.Hexes {
		if _, ok := b.Hexes[th.ID]; ok {
			return nil, fmt.Errorf("duplicate hex id %d", th.ID)
		}
		if th.Resource != ResourceNone && !th.Resource.Valid() {
			return nil, fmt.Errorf("hex %d: invalid resource %d", th.ID, int(th.Resource))
		}
		b.Hexes[th.ID] = &HexTile{
			ID:          th.ID,
			Resource:    th.Resource,
			Number:      th.Number,
			Probability: DiceProbability(th.Number),
		}
	}

	for _, te := range t.Edges {
		if _, ok := b.Edges[te.ID]; ok {
			return nil, fmt.Errorf("duplicate edge id %d", te.ID)
		}
		for _, nodeID := range te.Nodes {
			if _, ok := b.Nodes[nodeID]; !ok {
				return nil, fmt.Errorf("edge %d: unknown node %d", te.ID, nodeID)
			}
		}
		if te.Nodes[0] == te.Nodes[1] {
			return nil, fmt.Errorf("edge %d: loops on node %d", te.ID, te.Nodes[0])
		}
		b.Edges[te.ID] = &Edge{ID: te.ID, Nodes: te.Nodes}
	}

	// Hex node membership comes from the node side of the description.
	for _, tn := range t.Nodes {
		for _, hexID := range tn.Hexes {
			hex, ok := b.Hexes[hexID]
			if !ok {
				return nil, fmt.Errorf("node %d: unknown hex %d", tn.ID, hexID)
			}
			hex.Nodes = append(hex.Nodes, tn.ID)
		}
	}

	b.rebuildOrders()

	// Derive per-node edge and neighbor adjacency in edge id order.
	for _, edgeID := range b.edgeOrder {
		edge := b.Edges[edgeID]
		a, c := b.Nodes[edge.Nodes[0]], b.Nodes[edge.Nodes[1]]
		a.Edges = append(a.Edges, edgeID)
		c.Edges = append(c.Edges, edgeID)
		a.Neighbors = append(a.Neighbors, c.ID)
		c.Neighbors = append(c.Neighbors, a.ID)
	}

	return b, nil
}

// DiceProbability is the theoretical probability of rolling a total on two
// six-sided dice. Totals outside [2,12] have probability 0.
func DiceProbability(total int) float64 {
	if total < 2 || total > 12 {
		return 0
	}
	combinations := 6 - abs(total-7)
	return float64(combinations) / 36
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
