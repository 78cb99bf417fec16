package game

// Build costs.
var (
	SettlementCost = map[Resource]int{Brick: 1, Wood: 1, Sheep: 1, Wheat: 1}
	CityCost       = map[Resource]int{Wheat: 2, Ore: 3}
	RoadCost       = map[Resource]int{Brick: 1, Wood: 1}
)

// Per-player structure caps.
const (
	MaxSettlements = 5
	MaxCities      = 4
	MaxRoads       = 15
)

// BuiltCount tracks how many of each structure a player has standing.
type BuiltCount struct {
	Settlements int `json:"settlements"`
	Cities      int `json:"cities"`
	Roads       int `json:"roads"`
}

// Player is the per-player ledger: resource holdings plus structure counts.
// It wraps the board's legality predicates with cap and affordability
// checks, and its build methods are the validated mutation path.
type Player struct {
	ID        PlayerID         `json:"id"`
	Resources map[Resource]int `json:"resources"`
	Built     BuiltCount       `json:"built"`
}

func NewPlayer(id PlayerID) *Player {
	resources := make(map[Resource]int, len(Resources))
	for _, r := range Resources {
		resources[r] = 0
	}
	return &Player{ID: id, Resources: resources}
}

func (p *Player) AddResource(r Resource, amount int) {
	p.Resources[r] += amount
}

func (p *Player) HasResources(cost map[Resource]int) bool {
	for r, amount := range cost {
		if p.Resources[r] < amount {
			return false
		}
	}
	return true
}

func (p *Player) deductResources(cost map[Resource]int) {
	for r, amount := range cost {
		p.Resources[r] -= amount
	}
}

// CanBuildSettlement checks cap, board legality, and affordability. A free
// build (placement phase) waives the cost and relaxes the adjacency rule.
func (p *Player) CanBuildSettlement(b *Board, nodeID int, free bool) bool {
	if p.Built.Settlements >= MaxSettlements {
		return false
	}
	if !b.SettlementLegal(nodeID, p.ID, free) {
		return false
	}
	return free || p.HasResources(SettlementCost)
}

func (p *Player) CanBuildCity(b *Board, nodeID int) bool {
	if p.Built.Cities >= MaxCities {
		return false
	}
	if !b.CityLegal(nodeID, p.ID) {
		return false
	}
	return p.HasResources(CityCost)
}

func (p *Player) CanBuildRoad(b *Board, edgeID int, free bool) bool {
	if p.Built.Roads >= MaxRoads {
		return false
	}
	if !b.RoadLegal(edgeID, p.ID) {
		return false
	}
	return free || p.HasResources(RoadCost)
}

// BuildSettlement validates, then deducts the cost (unless free), mutates
// the board, and bumps the structure count. On failure nothing changes.
func (p *Player) BuildSettlement(b *Board, nodeID int, free bool) bool {
	if !p.CanBuildSettlement(b, nodeID, free) {
		return false
	}
	if !free {
		p.deductResources(SettlementCost)
	}
	b.PlaceSettlement(nodeID, p.ID)
	p.Built.Settlements++
	return true
}

// BuildCity upgrades one of the player's settlements in place: the
// settlement count drops as the city count rises, atomically with the board
// flip.
func (p *Player) BuildCity(b *Board, nodeID int) bool {
	if !p.CanBuildCity(b, nodeID) {
		return false
	}
	p.deductResources(CityCost)
	b.PlaceCity(nodeID, p.ID)
	p.Built.Cities++
	p.Built.Settlements--
	return true
}

func (p *Player) BuildRoad(b *Board, edgeID int, free bool) bool {
	if !p.CanBuildRoad(b, edgeID, free) {
		return false
	}
	if !free {
		p.deductResources(RoadCost)
	}
	b.PlaceRoad(edgeID, p.ID)
	p.Built.Roads++
	return true
}

// AvailableSettlementSpots lists every node the player could build a
// settlement on right now. An unaffordable cost short-circuits to nil
// without scanning the board.
func (p *Player) AvailableSettlementSpots(b *Board, free bool) []int {
	if p.Built.Settlements >= MaxSettlements {
		return nil
	}
	if !free && !p.HasResources(SettlementCost) {
		return nil
	}
	return b.LegalSettlements(p.ID, free)
}

func (p *Player) AvailableCitySpots(b *Board) []int {
	if p.Built.Cities >= MaxCities {
		return nil
	}
	if !p.HasResources(CityCost) {
		return nil
	}
	return b.LegalCities(p.ID)
}

func (p *Player) AvailableRoadSpots(b *Board, free bool) []int {
	if p.Built.Roads >= MaxRoads {
		return nil
	}
	if !free && !p.HasResources(RoadCost) {
		return nil
	}
	return b.LegalRoads(p.ID)
}

// TradeRate is the bank rate for offering a resource: 4 by default, 3 with a
// generic port, 2 with that resource's own port.
func (p *Player) TradeRate(b *Board, offered Resource) int {
	ports := b.Ports(p.ID)
	if ports[PortFor(offered)] {
		return 2
	}
	if ports[PortGeneric] {
		return 3
	}
	return 4
}

// TradeOffer is one bank trade the player can afford: give Cost of Offered,
// receive one of the wanted resource.
type TradeOffer struct {
	Offered Resource `json:"offered"`
	Cost    int      `json:"cost"`
}

// TradeOffers maps each wanted resource to the trades currently affordable.
func (p *Player) TradeOffers(b *Board) map[Resource][]TradeOffer {
	offers := make(map[Resource][]TradeOffer)
	for _, wanted := range Resources {
		for _, offered := range Resources {
			if offered == wanted {
				continue
			}
			rate := p.TradeRate(b, offered)
			if p.Resources[offered] >= rate {
				offers[wanted] = append(offers[wanted], TradeOffer{Offered: offered, Cost: rate})
			}
		}
	}
	return offers
}
