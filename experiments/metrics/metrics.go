// Package metrics defines the records collected while running agent
// matchup experiments, plus a CSV writer for them.
package metrics

import (
	"time"

	"catan/game"
)

// AgentConfig identifies one agent flavor in an experiment.
type AgentConfig struct {
	ID   int
	Kind string // "random" or "greedy"
	Seed uint64 // Dice and policy seed for reproducibility
}

// GameMetric summarizes one finished game.
type GameMetric struct {
	StartingPlayer game.PlayerID
	Winner         game.PlayerID
	P1Points       int
	P2Points       int
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalTurns     int
	TotalActions   int
}

// GameRecord ties a game's metric to the configs that played it.
type GameRecord struct {
	ID     int
	Agent1 int // AgentConfig.ID
	Agent2 int // AgentConfig.ID
	GameMetric
}

// ActionRecord is one submitted action within a recorded game.
type ActionRecord struct {
	Game     int // GameRecord.ID
	Step     int
	Player   game.PlayerID
	Type     game.ActionType
	Accepted bool
}
