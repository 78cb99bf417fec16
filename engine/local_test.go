package engine

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"

	"catan/agent"
	"catan/game"
)

func newStandardGame(seed uint64) *game.Game {
	return game.NewGame(game.StandardBoard(), rand.New(rand.NewSource(seed)))
}

// stubborn always submits the same illegal action, exercising the
// engine's fallback path.
type stubborn struct{}

func (stubborn) NextAction(game.Snapshot) game.Action {
	return game.BuildCity(9999)
}

func TestLocalRunPreservesLedgerInvariants(t *testing.T) {
	g := newStandardGame(7)
	e := NewLocal(g, agent.NewRandom(11), agent.NewRandom(23))

	result, records := e.Run()

	require.NotEmpty(t, records, "a game produces at least the placement actions")
	require.LessOrEqual(t, result.Actions, MaxActions)
	require.Positive(t, result.Turns)

	for _, id := range []game.PlayerID{1, 2} {
		p := g.Player(id)
		for _, r := range game.Resources {
			require.GreaterOrEqual(t, p.Resources[r], 0, "player %d holds negative %s", id, r)
		}
		require.LessOrEqual(t, p.Built.Settlements, game.MaxSettlements)
		require.LessOrEqual(t, p.Built.Cities, game.MaxCities)
		require.LessOrEqual(t, p.Built.Roads, game.MaxRoads)
	}

	if !g.Finished {
		require.Equal(t, game.NoPlayer, result.Winner, "no winner before the game ends")
	}
	require.Equal(t, [2]int{g.VictoryPoints(1), g.VictoryPoints(2)}, result.Points)
}

func TestLocalRunIsDeterministicForSeeds(t *testing.T) {
	run := func() (Result, int) {
		g := newStandardGame(42)
		e := NewLocal(g, agent.NewRandom(1), agent.NewRandom(2))
		result, records := e.Run()
		return result, len(records)
	}

	first, firstCount := run()
	second, secondCount := run()

	require.Equal(t, first.Winner, second.Winner)
	require.Equal(t, first.Turns, second.Turns)
	require.Equal(t, first.Points, second.Points)
	require.Equal(t, firstCount, secondCount)
}

func TestLocalRunRecoversFromRejectedActions(t *testing.T) {
	g := newStandardGame(3)
	e := NewLocal(g, stubborn{}, stubborn{})

	result, records := e.Run()

	require.Equal(t, MaxActions, result.Actions, "two wedged agents burn the whole budget")
	require.Equal(t, game.NoPlayer, result.Winner)
	for _, rec := range records {
		require.True(t, rec.Accepted, "fallback action at step %d must be accepted", rec.Step)
	}
	// The fallback still walks both players through their placements.
	require.Equal(t, 2, g.Player(1).Built.Settlements)
	require.Equal(t, 2, g.Player(2).Built.Settlements)
}

func TestGreedyBeatsWedgedAgent(t *testing.T) {
	g := newStandardGame(19)
	e := NewLocal(g, agent.NewGreedy(), stubborn{})

	result, _ := e.Run()

	if g.Finished {
		require.Equal(t, game.PlayerID(1), result.Winner, "the only building player wins when the game ends")
	}
}
