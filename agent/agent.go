// Package agent holds decision policies that drive a game purely through
// its snapshot and action interfaces, the same surface a UI or a remote
// player would use.
package agent

import (
	"catan/game"

	"golang.org/x/exp/rand"
)

// Agent picks the next action for the acting player in a snapshot.
type Agent interface {
	NextAction(snap game.Snapshot) game.Action
}

// Random plays uniformly among the currently legal builds, occasionally
// ending the turn. Placement slots are always used: a wasted free build
// would starve the player for the whole game.
type Random struct {
	rng *rand.Rand
}

func NewRandom(seed uint64) *Random {
	return &Random{rng: rand.New(rand.NewSource(seed))}
}

func (a *Random) NextAction(snap game.Snapshot) game.Action {
	if snap.Phase == game.PlacementPhase {
		return placementAction(a.rng, snap)
	}
	if snap.TurnState == game.AwaitingRoll {
		return game.StartTurn()
	}

	candidates := buildCandidates(snap)
	candidates = append(candidates, game.EndTurn())
	return candidates[a.rng.Intn(len(candidates))]
}

// Greedy builds the most valuable structure it can afford every turn,
// trades surplus toward whatever blocks the next build, and only then ends
// the turn.
type Greedy struct{}

func NewGreedy() *Greedy { return &Greedy{} }

func (a *Greedy) NextAction(snap game.Snapshot) game.Action {
	if snap.Phase == game.PlacementPhase {
		return placementAction(nil, snap)
	}
	if snap.TurnState == game.AwaitingRoll {
		return game.StartTurn()
	}

	if len(snap.AvailableCities) > 0 {
		return game.BuildCity(snap.AvailableCities[0])
	}
	if len(snap.AvailableSettlements) > 0 {
		return game.BuildSettlement(snap.AvailableSettlements[0])
	}
	if len(snap.AvailableRoads) > 0 {
		return game.BuildRoad(snap.AvailableRoads[0])
	}
	if trade, ok := tradeTowardNextBuild(snap); ok {
		return trade
	}
	return game.EndTurn()
}

// placementAction spends the slot's free settlement, then its free road,
// then ends the slot. A nil rng picks the first legal target.
func placementAction(rng *rand.Rand, snap game.Snapshot) game.Action {
	if snap.FreeSettlement && len(snap.AvailableSettlements) > 0 {
		return game.BuildSettlement(pick(rng, snap.AvailableSettlements))
	}
	if snap.FreeRoad && len(snap.AvailableRoads) > 0 {
		return game.BuildRoad(pick(rng, snap.AvailableRoads))
	}
	return game.EndTurn()
}

func buildCandidates(snap game.Snapshot) []game.Action {
	var candidates []game.Action
	for _, id := range snap.AvailableCities {
		candidates = append(candidates, game.BuildCity(id))
	}
	for _, id := range snap.AvailableSettlements {
		candidates = append(candidates, game.BuildSettlement(id))
	}
	for _, id := range snap.AvailableRoads {
		candidates = append(candidates, game.BuildRoad(id))
	}
	return candidates
}

// tradeTowardNextBuild looks for a bank trade that buys a resource missing
// from the cheapest structure cost not yet covered.
func tradeTowardNextBuild(snap game.Snapshot) (game.Action, bool) {
	for _, cost := range []map[game.Resource]int{game.RoadCost, game.SettlementCost, game.CityCost} {
		for _, wanted := range game.Resources {
			need, ok := cost[wanted]
			if !ok || snap.CurrentResources[wanted] >= need {
				continue
			}
			offers := snap.TradeOffers[wanted]
			if len(offers) == 0 {
				continue
			}
			offer := offers[0]
			return game.TradeBank(offer.Offered, wanted, offer.Cost), true
		}
	}
	return game.Action{}, false
}

func pick(rng *rand.Rand, ids []int) int {
	if rng == nil {
		return ids[0]
	}
	return ids[rng.Intn(len(ids))]
}
