package engine

import (
	"time"

	"github.com/rs/zerolog/log"

	"catan/agent"
	"catan/game"
)

// Local drives two agents against a single in-process game.
type Local struct {
	Game   *game.Game
	Agents map[game.PlayerID]agent.Agent
}

func NewLocal(g *game.Game, p1, p2 agent.Agent) *Local {
	return &Local{
		Game: g,
		Agents: map[game.PlayerID]agent.Agent{
			1: p1,
			2: p2,
		},
	}
}

// Run executes the game loop until there is a winner or the action
// budget runs out.
func (e *Local) Run() (Result, []ActionRecord) {
	start := time.Now()
	records := []ActionRecord{}

	log.Info().Msgf("player %d is starting", e.Game.CurrentPlayer)

	for step := 1; !e.Game.Finished && step <= MaxActions; step++ {
		current := e.Game.CurrentPlayer
		action := e.Agents[current].NextAction(e.Game.Snapshot())

		accepted := e.Game.AdvanceOneAction(action)
		if !accepted {
			log.Warn().Msgf("player %d submitted rejected action %s, forcing fallback", current, action.Type)
			action = fallbackAction(e.Game)
			accepted = e.Game.AdvanceOneAction(action)
		}
		records = append(records, ActionRecord{
			Step:     step,
			Player:   current,
			Action:   action,
			Accepted: accepted,
		})
		if !accepted {
			log.Error().Msgf("player %d cannot make progress, aborting game", current)
			break
		}
	}

	end := time.Now()
	result := Result{
		Winner:           e.Game.Winner,
		Turns:            e.Game.TurnNumber,
		Actions:          len(records),
		Points:           [2]int{e.Game.VictoryPoints(1), e.Game.VictoryPoints(2)},
		LongestRoadOwner: e.Game.LongestRoadOwner,
		StartTime:        start,
		EndTime:          end,
		Duration:         end.Sub(start),
	}

	if e.Game.Finished {
		log.Info().Msgf("game ended after %d turns with winner: player %d", result.Turns, result.Winner)
	} else {
		log.Info().Msgf("stopped after %d actions (no winner yet)", result.Actions)
	}

	return result, records
}

// fallbackAction picks the action that is always available in the
// current turn state, so a misbehaving agent forfeits initiative
// instead of wedging the game.
func fallbackAction(g *game.Game) game.Action {
	if g.Phase == game.PlayPhase && g.TurnState == game.AwaitingRoll {
		return game.StartTurn()
	}
	if g.Phase == game.PlacementPhase {
		snap := g.Snapshot()
		if snap.FreeSettlement && len(snap.AvailableSettlements) > 0 {
			return game.BuildSettlement(snap.AvailableSettlements[0])
		}
		if snap.FreeRoad && len(snap.AvailableRoads) > 0 {
			return game.BuildRoad(snap.AvailableRoads[0])
		}
	}
	return game.EndTurn()
}
