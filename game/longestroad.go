package game

// LongestRoad is the length of the player's longest simple path of owned
// roads. Traversal may not continue through a node occupied by the
// opponent, but an edge blocked at only one end still counts from its open
// end. Each edge is used at most once per path, keyed by its unordered
// endpoint pair.
func (b *Board) LongestRoad(player PlayerID) int {
	// Dense edge arena: canonical endpoint pair to visited-slice index.
	index := make(map[[2]int]int)
	adjacency := make(map[int][]int)

	blocked := func(nodeID int) bool {
		occ := b.Nodes[nodeID].Occupant
		return occ.Kind != OccupantEmpty && occ.Owner != player
	}

	for _, edgeID := range b.edgeOrder {
		edge := b.Edges[edgeID]
		if edge.Owner != player {
			continue
		}
		a, c := edge.Nodes[0], edge.Nodes[1]
		pair := orderedPair(a, c)
		if _, ok := index[pair]; !ok {
			index[pair] = len(index)
		}
		aBlocked, cBlocked := blocked(a), blocked(c)
		if aBlocked && cBlocked {
			continue
		}
		if !aBlocked {
			adjacency[a] = append(adjacency[a], c)
		}
		if !cBlocked {
			adjacency[c] = append(adjacency[c], a)
		}
	}

	if len(adjacency) == 0 {
		return 0
	}

	visited := make([]bool, len(index))
	var walk func(current int) int
	walk = func(current int) int {
		best := 0
		for _, next := range adjacency[current] {
			slot := index[orderedPair(current, next)]
			if visited[slot] {
				continue
			}
			visited[slot] = true
			if length := 1 + walk(next); length > best {
				best = length
			}
			visited[slot] = false
		}
		return best
	}

	longest := 0
	for node := range adjacency {
		if length := walk(node); length > longest {
			longest = length
		}
	}
	return longest
}
