package game

// Snapshot is a read-only, JSON-serializable view of the game for UIs and
// agents. Legal-target lists and trade offers are computed for the acting
// player, honoring any free placement builds still open in the current slot.
type Snapshot struct {
	CurrentPlayer PlayerID   `json:"current_player"`
	TurnNumber    int        `json:"turn_number"`
	Phase         Phase      `json:"phase"`
	TurnState     TurnState  `json:"turn_state"`
	LastRolls     []DiceRoll `json:"last_rolls"`

	FreeSettlement bool `json:"free_settlement"`
	FreeRoad       bool `json:"free_road"`

	CurrentResources  map[Resource]int `json:"resources_current"`
	OpponentResources map[Resource]int `json:"resources_opponent"`

	AvailableSettlements []int `json:"available_settlements"`
	AvailableRoads       []int `json:"available_roads"`
	AvailableCities      []int `json:"available_cities"`

	TradeOffers map[Resource][]TradeOffer `json:"trade_offers"`

	LongestRoadOwner   PlayerID `json:"longest_road_owner"`
	LongestRoadLengths [2]int   `json:"longest_road_lengths"`
	Points             [2]int   `json:"points"`

	Finished bool     `json:"finished"`
	Winner   PlayerID `json:"winner"`
}

// Snapshot captures the current state. The returned value shares nothing
// mutable with the game.
func (g *Game) Snapshot() Snapshot {
	current := g.Player(g.CurrentPlayer)
	opponent := g.Player(g.Opponent(g.CurrentPlayer))

	rolls := make([]DiceRoll, len(g.LastRoll))
	copy(rolls, g.LastRoll)

	return Snapshot{
		CurrentPlayer:        g.CurrentPlayer,
		TurnNumber:           g.TurnNumber,
		Phase:                g.Phase,
		TurnState:            g.TurnState,
		LastRolls:            rolls,
		FreeSettlement:       g.FreeSettlement(),
		FreeRoad:             g.FreeRoad(),
		CurrentResources:     copyResources(current.Resources),
		OpponentResources:    copyResources(opponent.Resources),
		AvailableSettlements: current.AvailableSettlementSpots(g.Board, g.FreeSettlement()),
		AvailableRoads:       current.AvailableRoadSpots(g.Board, g.FreeRoad()),
		AvailableCities:      current.AvailableCitySpots(g.Board),
		TradeOffers:          current.TradeOffers(g.Board),
		LongestRoadOwner:     g.LongestRoadOwner,
		LongestRoadLengths:   g.LongestRoadLengths,
		Points:               [2]int{g.VictoryPoints(1), g.VictoryPoints(2)},
		Finished:             g.Finished,
		Winner:               g.Winner,
	}
}

func copyResources(resources map[Resource]int) map[Resource]int {
	out := make(map[Resource]int, len(resources))
	for r, n := range resources {
		out[r] = n
	}
	return out
}

// BoardView is the occupancy/ownership dump renderers iterate over.
type BoardView struct {
	Nodes []Node    `json:"nodes"`
	Edges []Edge    `json:"edges"`
	Hexes []HexTile `json:"hexes"`
}

// View copies the board's nodes, edges, and hexes in id order.
func (b *Board) View() BoardView {
	view := BoardView{
		Nodes: make([]Node, 0, len(b.Nodes)),
		Edges: make([]Edge, 0, len(b.Edges)),
		Hexes: make([]HexTile, 0, len(b.Hexes)),
	}
	for _, id := range b.nodeOrder {
		view.Nodes = append(view.Nodes, *b.Nodes[id])
	}
	for _, id := range b.edgeOrder {
		view.Edges = append(view.Edges, *b.Edges[id])
	}
	for _, id := range b.hexOrder {
		view.Hexes = append(view.Hexes, *b.Hexes[id])
	}
	return view
}
