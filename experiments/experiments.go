// Package experiments runs batches of agent self-play games and
// stores their metrics as CSV for offline analysis.
package experiments

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"

	"catan/agent"
	"catan/engine"
	"catan/experiments/metrics"
	"catan/game"
)

const NumGames = 30 // Per match up

const (
	RandomKind = "random"
	GreedyKind = "greedy"
)

var matchupConfigs = []metrics.AgentConfig{
	{ID: 1, Kind: RandomKind, Seed: 101},
	{ID: 2, Kind: GreedyKind},
}

// RunMatchupExperiment plays every pairing of the configured agents,
// the mirror matches included, so win rates have a baseline.
func RunMatchupExperiment() {
	matchUps := [][]metrics.AgentConfig{}
	for i, config1 := range matchupConfigs {
		for _, config2 := range matchupConfigs[i:] {
			matchUps = append(matchUps, []metrics.AgentConfig{config1, config2})
		}
	}

	runExperiment("matchups", matchupConfigs, matchUps)
}

func runExperiment(name string, configs []metrics.AgentConfig, matchUps [][]metrics.AgentConfig) {
	count := 0
	gameRecords := []metrics.GameRecord{}
	actionRecords := []metrics.ActionRecord{}

	log.Info().Msgf("starting %s experiment...", name)

	for mi, matchup := range matchUps {
		config1 := matchup[0]
		config2 := matchup[1]

		log.Info().Msgf("starting matchup %d of %d between agent1=%+v and agent2=%+v...", mi+1, len(matchUps), config1, config2)

		for i := 0; i < NumGames; i++ {
			log.Info().Msgf("starting matchup %d of %d game %d of %d...", mi+1, len(matchUps), i+1, NumGames)

			count++
			gameMetric, records := runGame(config1, config2, uint64(count))
			gameRecords = append(gameRecords, metrics.GameRecord{
				ID:         count,
				Agent1:     config1.ID,
				Agent2:     config2.ID,
				GameMetric: gameMetric,
			})
			for _, r := range records {
				actionRecords = append(actionRecords, metrics.ActionRecord{
					Game:     count,
					Step:     r.Step,
					Player:   r.Player,
					Type:     r.Action.Type,
					Accepted: r.Accepted,
				})
			}

			log.Info().Msgf("completed matchup %d of %d game %d with winner: player %d", mi+1, len(matchUps), i+1, gameMetric.Winner)
		}
		log.Info().Msgf("completed matchup %d of %d", mi+1, len(matchUps))
	}

	log.Info().Msgf("completed %s experiment", name)

	storeRecords(name, configs, gameRecords, actionRecords)
}

// runGame executes a single game between two agent configs. The game
// seed salts the dice and the random agents so repeated games in a
// matchup differ.
func runGame(config1, config2 metrics.AgentConfig, gameSeed uint64) (metrics.GameMetric, []engine.ActionRecord) {
	g := game.NewGame(game.StandardBoard(), rand.New(rand.NewSource(gameSeed)))
	e := engine.NewLocal(g, newAgent(config1, gameSeed), newAgent(config2, gameSeed+1))

	result, records := e.Run()

	return metrics.GameMetric{
		StartingPlayer: 1,
		Winner:         result.Winner,
		P1Points:       result.Points[0],
		P2Points:       result.Points[1],
		StartTime:      result.StartTime,
		EndTime:        result.EndTime,
		Duration:       result.Duration,
		TotalTurns:     result.Turns,
		TotalActions:   result.Actions,
	}, records
}

func newAgent(config metrics.AgentConfig, salt uint64) agent.Agent {
	switch config.Kind {
	case GreedyKind:
		return agent.NewGreedy()
	default:
		return agent.NewRandom(config.Seed + salt)
	}
}

func storeRecords(name string, configs []metrics.AgentConfig, gameRecords []metrics.GameRecord, actionRecords []metrics.ActionRecord) {
	writer, err := metrics.NewWriter(name)
	if err != nil {
		panic(fmt.Sprintf("failed to create experiment writer: %v", err))
	}

	err = writer.WriteAgentConfigs(configs)
	if err != nil {
		panic(fmt.Sprintf("failed to store agent configs: %v", err))
	}
	log.Info().Msg("stored agent configs")

	err = writer.WriteGameRecords(gameRecords)
	if err != nil {
		panic(fmt.Sprintf("failed to write game records: %v", err))
	}
	log.Info().Msg("stored game records")

	err = writer.WriteActionRecords(actionRecords)
	if err != nil {
		panic(fmt.Sprintf("failed to write action records: %v", err))
	}
	log.Info().Msg("stored action records")
}
