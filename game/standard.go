package game

import "sort"

// The standard board is generated rather than shipped as data: 19 hexes in a
// radius-2 axial grid, 54 corner nodes, 72 edges, the fixed beginner layout
// of resources and number tokens, and nine harbors around the coast.

type axial struct{ q, r int }

// corner is a hex corner on an integer lattice: u counts sqrt(3)/2 units
// horizontally, v counts 1/2 units vertically. A pointy-top hex centered at
// axial (q,r) sits at (2q+r, 3r) with corners offset by cornerOffsets.
type corner struct{ u, v int }

var cornerOffsets = [6]corner{
	{0, -2}, {1, -1}, {1, 1}, {0, 2}, {-1, 1}, {-1, -1},
}

type standardHex struct {
	pos      axial
	resource Resource
	number   int
}

// Beginner layout from the base-game rulebook, rows top to bottom, each row
// left to right.
var standardHexes = []standardHex{
	{axial{0, -2}, Ore, 10}, {axial{1, -2}, Sheep, 2}, {axial{2, -2}, Wood, 9},
	{axial{-1, -1}, Wheat, 12}, {axial{0, -1}, Brick, 6}, {axial{1, -1}, Sheep, 4}, {axial{2, -1}, Brick, 10},
	{axial{-2, 0}, Wheat, 9}, {axial{-1, 0}, Wood, 11}, {axial{0, 0}, ResourceNone, 0}, {axial{1, 0}, Wood, 3}, {axial{2, 0}, Ore, 8},
	{axial{-2, 1}, Wood, 8}, {axial{-1, 1}, Ore, 3}, {axial{0, 1}, Wheat, 4}, {axial{1, 1}, Sheep, 5},
	{axial{-2, 2}, Brick, 5}, {axial{-1, 2}, Wheat, 6}, {axial{0, 2}, Sheep, 11},
}

// Harbor ring: positions are coastal-walk edge indices (30 boundary edges
// total), spaced like the rulebook frame pieces.
var standardPorts = []struct {
	walkPos int
	port    Port
}{
	{0, PortGeneric}, {3, PortSheep}, {7, PortGeneric},
	{10, PortOre}, {13, PortWheat}, {17, PortGeneric},
	{20, PortWood}, {23, PortBrick}, {27, PortGeneric},
}

// StandardTopology generates the standard board description. The result is
// deterministic: node ids run top to bottom then left to right, edge ids by
// ascending endpoint pair, hex ids in row order.
func StandardTopology() Topology {
	cornersByHex := make([][6]corner, len(standardHexes))
	seen := make(map[corner]bool)
	for i, h := range standardHexes {
		u0, v0 := 2*h.pos.q+h.pos.r, 3*h.pos.r
		for j, off := range cornerOffsets {
			c := corner{u0 + off.u, v0 + off.v}
			cornersByHex[i][j] = c
			seen[c] = true
		}
	}

	corners := make([]corner, 0, len(seen))
	for c := range seen {
		corners = append(corners, c)
	}
	sort.Slice(corners, func(i, j int) bool {
		if corners[i].v != corners[j].v {
			return corners[i].v < corners[j].v
		}
		return corners[i].u < corners[j].u
	})
	nodeID := make(map[corner]int, len(corners))
	for i, c := range corners {
		nodeID[c] = i
	}

	nodeHexes := make(map[int][]int)
	edgeUse := make(map[[2]int]int)
	for i, hexCorners := range cornersByHex {
		for j, c := range hexCorners {
			id := nodeID[c]
			nodeHexes[id] = append(nodeHexes[id], i)
			next := nodeID[hexCorners[(j+1)%6]]
			edgeUse[orderedPair(id, next)]++
		}
	}

	pairs := make([][2]int, 0, len(edgeUse))
	for pair := range edgeUse {
		pairs = append(pairs, pair)
	}
	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i][0] != pairs[j][0] {
			return pairs[i][0] < pairs[j][0]
		}
		return pairs[i][1] < pairs[j][1]
	})

	nodePorts := assignPorts(edgeUse)

	t := Topology{}
	for _, c := range corners {
		id := nodeID[c]
		t.Nodes = append(t.Nodes, TopologyNode{
			ID:    id,
			Hexes: nodeHexes[id],
			Port:  nodePorts[id],
		})
	}
	for i, h := range standardHexes {
		t.Hexes = append(t.Hexes, TopologyHex{ID: i, Resource: h.resource, Number: h.number})
	}
	for i, pair := range pairs {
		t.Edges = append(t.Edges, TopologyEdge{ID: i, Nodes: pair})
	}
	return t
}

// StandardBoard is a convenience wrapper building a fresh standard board.
func StandardBoard() *Board {
	b, err := NewBoard(StandardTopology())
	if err != nil {
		// The generated topology is fixed; failing to build it is a
		// programming error.
		panic(err)
	}
	return b
}

// assignPorts walks the coastal ring (boundary edges used by exactly one
// hex) and attaches harbors at the fixed walk positions, marking both
// endpoint nodes of each harbor edge.
func assignPorts(edgeUse map[[2]int]int) map[int]Port {
	coast := make(map[int][]int)
	for pair, uses := range edgeUse {
		if uses != 1 {
			continue
		}
		coast[pair[0]] = append(coast[pair[0]], pair[1])
		coast[pair[1]] = append(coast[pair[1]], pair[0])
	}

	start := -1
	for id := range coast {
		if start == -1 || id < start {
			start = id
		}
	}

	portAt := make(map[int]Port, len(standardPorts))
	for _, p := range standardPorts {
		portAt[p.walkPos] = p.port
	}

	nodePorts := make(map[int]Port)
	prev, current := -1, start
	for pos := 0; pos < len(coast); pos++ {
		next := coast[current][0]
		if next == prev {
			next = coast[current][1]
		} else if prev == -1 && coast[current][1] < next {
			next = coast[current][1]
		}
		if port, ok := portAt[pos]; ok {
			nodePorts[current] = port
			nodePorts[next] = port
		}
		prev, current = current, next
	}
	return nodePorts
}

func orderedPair(a, b int) [2]int {
	if a < b {
		return [2]int{a, b}
	}
	return [2]int{b, a}
}
