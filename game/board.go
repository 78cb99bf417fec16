package game

import "sort"

// OccupantKind is the structure standing on a node.
type OccupantKind int

const (
	OccupantEmpty OccupantKind = iota
	OccupantSettlement
	OccupantCity
)

func (k OccupantKind) String() string {
	switch k {
	case OccupantEmpty:
		return "empty"
	case OccupantSettlement:
		return "settlement"
	case OccupantCity:
		return "city"
	}
	return "unknown"
}

// Occupant is the occupancy state of a node. Kind OccupantEmpty implies
// Owner NoPlayer.
type Occupant struct {
	Kind  OccupantKind `json:"kind"`
	Owner PlayerID     `json:"owner"`
}

// Node is a settlement/city position. The standard board has 54.
type Node struct {
	ID       int      `json:"id"`
	Hexes    []int    `json:"hexes"`
	Port     Port     `json:"port,omitempty"`
	Occupant Occupant `json:"occupant"`

	// Derived from the edge list at board construction.
	Edges     []int `json:"edges"`
	Neighbors []int `json:"neighbors"`
}

// Edge is a road slot connecting two nodes. Ownership is append-only: once
// set it never changes for the rest of the game.
type Edge struct {
	ID    int      `json:"id"`
	Nodes [2]int   `json:"nodes"`
	Owner PlayerID `json:"owner"`
}

// HexTile is a resource hex. Number is the dice total that triggers
// production; Probability is the fixed two-dice probability of that total.
type HexTile struct {
	ID          int      `json:"id"`
	Resource    Resource `json:"resource"`
	Number      int      `json:"number"`
	Probability float64  `json:"probability"`
	Nodes       []int    `json:"nodes"`
}

// Board holds the static topology plus the mutable occupancy state. It knows
// nothing about player inventories or turn order.
type Board struct {
	Nodes map[int]*Node
	Hexes map[int]*HexTile
	Edges map[int]*Edge

	// Sorted id slices for deterministic iteration.
	nodeOrder []int
	hexOrder  []int
	edgeOrder []int
}

// Production is a single resource emission from a dice roll.
type Production struct {
	Player   PlayerID
	Resource Resource
}

// SettlementLegal reports whether player may found a settlement at the node.
// During the placement phase any empty node qualifies; afterwards the node
// must also touch one of the player's roads.
func (b *Board) SettlementLegal(nodeID int, player PlayerID, placement bool) bool {
	node, ok := b.Nodes[nodeID]
	if !ok || node.Occupant.Kind != OccupantEmpty {
		return false
	}
	if placement {
		return true
	}
	for _, edgeID := range node.Edges {
		if b.Edges[edgeID].Owner == player {
			return true
		}
	}
	return false
}

// CityLegal reports whether player may upgrade the node to a city. Only that
// player's own settlement qualifies.
func (b *Board) CityLegal(nodeID int, player PlayerID) bool {
	node, ok := b.Nodes[nodeID]
	return ok && node.Occupant.Kind == OccupantSettlement && node.Occupant.Owner == player
}

// RoadLegal reports whether player may build a road on the edge: the edge is
// unowned and either endpoint carries the player's structure or another of
// the player's roads.
func (b *Board) RoadLegal(edgeID int, player PlayerID) bool {
	edge, ok := b.Edges[edgeID]
	if !ok || edge.Owner != NoPlayer {
		return false
	}
	for _, nodeID := range edge.Nodes {
		node := b.Nodes[nodeID]
		if node.Occupant.Kind != OccupantEmpty && node.Occupant.Owner == player {
			return true
		}
		for _, otherID := range node.Edges {
			if otherID != edgeID && b.Edges[otherID].Owner == player {
				return true
			}
		}
	}
	return false
}

// LegalSettlements scans every node for legal settlement spots.
func (b *Board) LegalSettlements(player PlayerID, placement bool) []int {
	var spots []int
	for _, id := range b.nodeOrder {
		if b.SettlementLegal(id, player, placement) {
			spots = append(spots, id)
		}
	}
	return spots
}

// LegalCities scans every node for legal city upgrades.
func (b *Board) LegalCities(player PlayerID) []int {
	var spots []int
	for _, id := range b.nodeOrder {
		if b.CityLegal(id, player) {
			spots = append(spots, id)
		}
	}
	return spots
}

// LegalRoads scans every edge for legal road spots.
func (b *Board) LegalRoads(player PlayerID) []int {
	var spots []int
	for _, id := range b.edgeOrder {
		if b.RoadLegal(id, player) {
			spots = append(spots, id)
		}
	}
	return spots
}

// PlaceSettlement sets the node's occupant. The caller must have validated
// legality; the Player build wrappers do.
func (b *Board) PlaceSettlement(nodeID int, player PlayerID) {
	b.Nodes[nodeID].Occupant = Occupant{Kind: OccupantSettlement, Owner: player}
}

// PlaceCity upgrades the node to a city, but only from that same player's
// settlement. Anything else is left untouched.
func (b *Board) PlaceCity(nodeID int, player PlayerID) {
	node := b.Nodes[nodeID]
	if node.Occupant.Kind != OccupantSettlement || node.Occupant.Owner != player {
		return
	}
	node.Occupant = Occupant{Kind: OccupantCity, Owner: player}
}

// PlaceRoad sets the edge's owner if it is still unowned.
func (b *Board) PlaceRoad(edgeID int, player PlayerID) {
	edge := b.Edges[edgeID]
	if edge.Owner != NoPlayer {
		return
	}
	edge.Owner = player
}

// ProductionForRoll emits one resource per settlement and two per city
// adjacent to every hex whose number matches the roll total. Emission order
// is hex id order then the hex's node list order, so results are
// reproducible.
func (b *Board) ProductionForRoll(total int) []Production {
	var events []Production
	for _, hexID := range b.hexOrder {
		hex := b.Hexes[hexID]
		if hex.Number != total || hex.Resource == ResourceNone {
			continue
		}
		for _, nodeID := range hex.Nodes {
			occ := b.Nodes[nodeID].Occupant
			switch occ.Kind {
			case OccupantSettlement:
				events = append(events, Production{Player: occ.Owner, Resource: hex.Resource})
			case OccupantCity:
				events = append(events,
					Production{Player: occ.Owner, Resource: hex.Resource},
					Production{Player: occ.Owner, Resource: hex.Resource})
			}
		}
	}
	return events
}

// OwnedSettlements lists the ids of nodes carrying the player's settlements.
func (b *Board) OwnedSettlements(player PlayerID) []int {
	return b.ownedNodes(player, OccupantSettlement)
}

// OwnedCities lists the ids of nodes carrying the player's cities.
func (b *Board) OwnedCities(player PlayerID) []int {
	return b.ownedNodes(player, OccupantCity)
}

func (b *Board) ownedNodes(player PlayerID, kind OccupantKind) []int {
	var ids []int
	for _, id := range b.nodeOrder {
		occ := b.Nodes[id].Occupant
		if occ.Kind == kind && occ.Owner == player {
			ids = append(ids, id)
		}
	}
	return ids
}

// OwnedRoads lists the ids of edges owned by the player.
func (b *Board) OwnedRoads(player PlayerID) []int {
	var ids []int
	for _, id := range b.edgeOrder {
		if b.Edges[id].Owner == player {
			ids = append(ids, id)
		}
	}
	return ids
}

// Ports lists the port kinds reachable from the player's settlements and
// cities.
func (b *Board) Ports(player PlayerID) map[Port]bool {
	ports := make(map[Port]bool)
	for _, id := range b.nodeOrder {
		node := b.Nodes[id]
		if node.Port == PortNone {
			continue
		}
		if node.Occupant.Kind != OccupantEmpty && node.Occupant.Owner == player {
			ports[node.Port] = true
		}
	}
	return ports
}

func (b *Board) rebuildOrders() {
	b.nodeOrder = sortedKeys(b.Nodes)
	b.hexOrder = sortedKeys(b.Hexes)
	b.edgeOrder = sortedKeys(b.Edges)
}

func sortedKeys[V any](m map[int]V) []int {
	keys := make([]int, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys
}
