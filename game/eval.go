package game

// Evaluate scores a game between -1 and 1 from one player's perspective,
// positive meaning favorable. Agents use these to rank candidate actions.
type Evaluate func(g *Game, perspective PlayerID) float64

// EvaluatePoints compares victory points only.
func EvaluatePoints(g *Game, perspective PlayerID) float64 {
	own := float64(g.VictoryPoints(perspective))
	other := float64(g.VictoryPoints(g.Opponent(perspective)))
	return normalize(own, other)
}

// EvaluateProduction compares expected production: the summed dice
// probability of every hex adjacent to an owned node, cities counted twice.
func EvaluateProduction(g *Game, perspective PlayerID) float64 {
	return normalize(g.expectedProduction(perspective), g.expectedProduction(g.Opponent(perspective)))
}

func (g *Game) expectedProduction(id PlayerID) float64 {
	total := 0.0
	for _, nodeID := range g.Board.nodeOrder {
		node := g.Board.Nodes[nodeID]
		occ := node.Occupant
		if occ.Owner != id || occ.Kind == OccupantEmpty {
			continue
		}
		weight := 1.0
		if occ.Kind == OccupantCity {
			weight = 2.0
		}
		for _, hexID := range node.Hexes {
			total += weight * g.Board.Hexes[hexID].Probability
		}
	}
	return total
}

// EvaluateResources compares total resources held.
func EvaluateResources(g *Game, perspective PlayerID) float64 {
	count := func(p *Player) float64 {
		total := 0
		for _, n := range p.Resources {
			total += n
		}
		return float64(total)
	}
	return normalize(count(g.Player(perspective)), count(g.Player(g.Opponent(perspective))))
}

// normalize maps two non-negative values to (a-b)/(a+b), or 0 when both are
// zero.
func normalize(value, otherValue float64) float64 {
	total := value + otherValue
	if total == 0 {
		return 0
	}
	return (value - otherValue) / total
}
