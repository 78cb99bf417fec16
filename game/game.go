package game

import (
	"fmt"

	"golang.org/x/exp/rand"
)

// Phase is the coarse game phase.
type Phase int

const (
	// PlacementPhase covers the four opening turn slots in snake order
	// (P1, P2, P2, P1), each granting one free settlement and one free
	// road. No dice are rolled.
	PlacementPhase Phase = iota
	// PlayPhase is normal alternating play.
	PlayPhase
)

func (p Phase) String() string {
	if p == PlacementPhase {
		return "placement"
	}
	return "play"
}

func (p Phase) MarshalText() ([]byte, error) { return []byte(p.String()), nil }

func (p *Phase) UnmarshalText(text []byte) error {
	switch string(text) {
	case "placement":
		*p = PlacementPhase
	case "play":
		*p = PlayPhase
	default:
		return fmt.Errorf("unknown phase %q", string(text))
	}
	return nil
}

// TurnState is the in-turn position during normal play.
type TurnState int

const (
	AwaitingRoll TurnState = iota
	AwaitingActions
)

func (s TurnState) String() string {
	if s == AwaitingRoll {
		return "awaiting_roll"
	}
	return "awaiting_actions"
}

func (s TurnState) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

func (s *TurnState) UnmarshalText(text []byte) error {
	switch string(text) {
	case "awaiting_roll":
		*s = AwaitingRoll
	case "awaiting_actions":
		*s = AwaitingActions
	default:
		return fmt.Errorf("unknown turn state %q", string(text))
	}
	return nil
}

// DiceRoll is one throw of two dice.
type DiceRoll [2]int

func (d DiceRoll) Total() int { return d[0] + d[1] }

// placementSlot tracks the current opening slot and which of its two free
// builds have been used.
type placementSlot struct {
	index          int
	settlementDone bool
	roadDone       bool
}

var placementOrder = [4]PlayerID{1, 2, 2, 1}

// LongestRoadMinimum is the shortest road that can claim the longest-road
// title.
const LongestRoadMinimum = 5

// LongestRoadBonus is the title's worth in victory points.
const LongestRoadBonus = 2

// Game orchestrates turn order, dice production, builds, bank trades,
// longest-road recomputation, and win detection over one board and two
// player ledgers. It processes exactly one action at a time and is not safe
// for concurrent use; network exposures must serialize actions per game.
type Game struct {
	Board   *Board
	Players [2]*Player

	CurrentPlayer PlayerID
	TurnNumber    int
	// LastRoll holds the most recent turn's dice throws. Every throw
	// summing 7 is rerolled but retained here for display; only the
	// final throw produces.
	LastRoll []DiceRoll

	Phase     Phase
	TurnState TurnState
	slot      placementSlot

	LongestRoadOwner   PlayerID
	LongestRoadLengths [2]int

	Finished bool
	Winner   PlayerID // NoPlayer records a tie

	rng  *rand.Rand
	roll func() (int, int)
}

// NewGame starts a fresh game on the given board. Player 1 opens the
// placement phase. The rand source drives the dice; inject a seeded source
// for reproducible games.
func NewGame(b *Board, rng *rand.Rand) *Game {
	g := &Game{
		Board:         b,
		Players:       [2]*Player{NewPlayer(1), NewPlayer(2)},
		CurrentPlayer: 1,
		Phase:         PlacementPhase,
		rng:           rng,
	}
	g.roll = func() (int, int) {
		return g.rng.Intn(6) + 1, g.rng.Intn(6) + 1
	}
	return g
}

// Player returns the ledger for a player id.
func (g *Game) Player(id PlayerID) *Player {
	return g.Players[id-1]
}

// Opponent returns the other player's id.
func (g *Game) Opponent(id PlayerID) PlayerID {
	if id == 1 {
		return 2
	}
	return 1
}

// FreeSettlement reports whether the current placement slot still grants a
// free settlement.
func (g *Game) FreeSettlement() bool {
	return g.Phase == PlacementPhase && !g.slot.settlementDone
}

// FreeRoad reports whether the current placement slot still grants a free
// road.
func (g *Game) FreeRoad() bool {
	return g.Phase == PlacementPhase && !g.slot.roadDone
}

// AdvanceOneAction is the single entry point consumers drive the game
// through. It applies exactly one action for the current player and reports
// success. Illegal targets, unknown verbs, and precondition violations all
// come back false with no state change; once the game is finished every
// action fails.
func (g *Game) AdvanceOneAction(action Action) bool {
	if g.Finished {
		return false
	}

	switch action.Type {
	case StartTurnAction:
		return g.startTurn()
	case BuildSettlementAction, BuildCityAction, BuildRoadAction:
		if g.Phase == PlayPhase && g.TurnState != AwaitingActions {
			return false
		}
		ok := g.performBuild(action)
		if ok && action.Type != BuildCityAction {
			g.updateLongestRoad()
		}
		if ok {
			g.checkWinCondition()
		}
		return ok
	case EndTurnAction:
		g.endTurn()
		return true
	case TradeBankAction:
		if g.Phase == PlayPhase && g.TurnState != AwaitingActions {
			return false
		}
		return g.tradeBank(action.Offered, action.Wanted, action.Cost)
	default:
		return false
	}
}

// startTurn rolls and distributes outside the placement phase. The roll
// itself cannot fail, but starting a turn that is already underway is a
// precondition violation.
func (g *Game) startTurn() bool {
	if g.Phase == PlayPhase {
		if g.TurnState != AwaitingRoll {
			return false
		}
		roll := g.rollDice()
		g.LastRoll = roll
		g.distributeResources(roll)
		g.TurnState = AwaitingActions
	}
	g.TurnNumber++
	return true
}

// rollDice throws two dice, rerolling on a total of 7 until a producing
// total appears. All throws are returned, intermediate 7s included.
func (g *Game) rollDice() []DiceRoll {
	var rolls []DiceRoll
	for {
		d1, d2 := g.roll()
		rolls = append(rolls, DiceRoll{d1, d2})
		if d1+d2 != 7 {
			return rolls
		}
	}
}

// distributeResources credits production for the final (non-7) throw.
func (g *Game) distributeResources(rolls []DiceRoll) {
	total := rolls[len(rolls)-1].Total()
	for _, event := range g.Board.ProductionForRoll(total) {
		g.Player(event.Player).AddResource(event.Resource, 1)
	}
}

func (g *Game) performBuild(action Action) bool {
	player := g.Player(g.CurrentPlayer)

	switch action.Type {
	case BuildSettlementAction:
		free := g.FreeSettlement()
		ok := player.BuildSettlement(g.Board, action.TargetID, free)
		if ok && free {
			g.slot.settlementDone = true
		}
		return ok
	case BuildCityAction:
		return player.BuildCity(g.Board, action.TargetID)
	case BuildRoadAction:
		free := g.FreeRoad()
		ok := player.BuildRoad(g.Board, action.TargetID, free)
		if ok && free {
			g.slot.roadDone = true
		}
		return ok
	}
	return false
}

// endTurn advances the turn pointer. The placement phase follows the snake
// order P1, P2, P2, P1 and hands normal play back to player 1; afterwards
// turns alternate strictly.
func (g *Game) endTurn() {
	if g.Phase == PlacementPhase {
		if g.slot.index == len(placementOrder)-1 {
			g.Phase = PlayPhase
			g.CurrentPlayer = 1
		} else {
			g.slot = placementSlot{index: g.slot.index + 1}
			g.CurrentPlayer = placementOrder[g.slot.index]
		}
	} else {
		g.CurrentPlayer = g.Opponent(g.CurrentPlayer)
	}
	g.TurnState = AwaitingRoll
}

// tradeBank exchanges cost units of the offered resource for one of the
// wanted resource. Unlike builds there is no board legality to check, but
// the trade is refused when it would drive holdings negative.
func (g *Game) tradeBank(offered, wanted Resource, cost int) bool {
	if !offered.Valid() || !wanted.Valid() || cost < 1 {
		return false
	}
	player := g.Player(g.CurrentPlayer)
	if player.Resources[offered] < cost {
		return false
	}
	player.Resources[offered] -= cost
	player.Resources[wanted]++
	return true
}

// VictoryPoints scores a player: one per settlement, two per city, plus the
// longest-road bonus.
func (g *Game) VictoryPoints(id PlayerID) int {
	player := g.Player(id)
	points := player.Built.Settlements + 2*player.Built.Cities
	if g.LongestRoadOwner == id {
		points += LongestRoadBonus
	}
	return points
}

// updateLongestRoad recomputes both players' longest roads and reassigns the
// title: it goes to whichever player meets the minimum and strictly beats
// the other; a tie or neither qualifying clears it.
func (g *Game) updateLongestRoad() {
	l1 := g.Board.LongestRoad(1)
	l2 := g.Board.LongestRoad(2)
	g.LongestRoadLengths = [2]int{l1, l2}

	switch {
	case l1 < LongestRoadMinimum && l2 < LongestRoadMinimum:
		g.LongestRoadOwner = NoPlayer
	case l1 == l2:
		g.LongestRoadOwner = NoPlayer
	case l1 > l2:
		g.LongestRoadOwner = 1
	default:
		g.LongestRoadOwner = 2
	}
}

// checkWinCondition ends the game the instant either player has exhausted
// all three structure caps, even mid-turn. The winner is whoever holds more
// points at that instant; equal points record a tie.
func (g *Game) checkWinCondition() {
	capped := func(p *Player) bool {
		return p.Built.Settlements >= MaxSettlements &&
			p.Built.Cities >= MaxCities &&
			p.Built.Roads >= MaxRoads
	}

	if !capped(g.Players[0]) && !capped(g.Players[1]) {
		return
	}

	g.Finished = true
	p1, p2 := g.VictoryPoints(1), g.VictoryPoints(2)
	switch {
	case p1 > p2:
		g.Winner = 1
	case p2 > p1:
		g.Winner = 2
	default:
		g.Winner = NoPlayer
	}
}
