package engine

import (
	"time"

	"catan/game"
)

// MaxActions bounds a single game so that a pair of agents that keeps
// trading or refuses to end its turn cannot loop forever.
const MaxActions = 10000

// ActionRecord captures one submitted action and whether the game
// accepted it.
type ActionRecord struct {
	Step     int
	Player   game.PlayerID
	Action   game.Action
	Accepted bool
}

// Result summarizes a finished (or aborted) game.
type Result struct {
	Winner           game.PlayerID
	Turns            int
	Actions          int
	Points           [2]int
	LongestRoadOwner game.PlayerID
	StartTime        time.Time
	EndTime          time.Time
	Duration         time.Duration
}

// Engine runs a game until the win condition fires or a move budget is
// exhausted.
type Engine interface {
	Run() (Result, []ActionRecord)
}
