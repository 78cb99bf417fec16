package game

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func TestSnapshotTracksActingPlayer(t *testing.T) {
	g := NewGame(StandardBoard(), rand.New(rand.NewSource(1)))

	snap := g.Snapshot()
	require.Equal(t, PlayerID(1), snap.CurrentPlayer)
	require.Equal(t, PlacementPhase, snap.Phase)
	require.True(t, snap.FreeSettlement)
	require.True(t, snap.FreeRoad)
	require.Len(t, snap.AvailableSettlements, 54, "every node is open in the first slot")
	require.Empty(t, snap.AvailableRoads, "no structure to attach a road to yet")

	placeFreely(t, g)

	snap = g.Snapshot()
	require.Equal(t, PlayerID(2), snap.CurrentPlayer)
	require.Len(t, snap.AvailableSettlements, 53, "player 2 sees the remaining nodes")
	require.Empty(t, snap.AvailableRoads, "legal targets belong to the acting player")
}

func TestSnapshotResourcesAreCopies(t *testing.T) {
	g := NewGame(StandardBoard(), rand.New(rand.NewSource(1)))
	g.Player(1).AddResource(Brick, 3)

	snap := g.Snapshot()
	require.Equal(t, 3, snap.CurrentResources[Brick])
	require.Zero(t, snap.OpponentResources[Brick])

	snap.CurrentResources[Brick] = 99
	require.Equal(t, 3, g.Player(1).Resources[Brick], "mutating the snapshot is harmless")
}

func TestSnapshotTradeOffers(t *testing.T) {
	g := NewGame(StandardBoard(), rand.New(rand.NewSource(1)))
	g.Player(1).AddResource(Sheep, 4)

	snap := g.Snapshot()
	require.Equal(t, []TradeOffer{{Offered: Sheep, Cost: 4}}, snap.TradeOffers[Brick])
	require.NotContains(t, snap.TradeOffers, Sheep)
}

func TestSnapshotSerializes(t *testing.T) {
	g := NewGame(StandardBoard(), rand.New(rand.NewSource(1)))
	g.Player(1).AddResource(Wheat, 2)

	data, err := json.Marshal(g.Snapshot())
	require.NoError(t, err)
	require.Contains(t, string(data), `"phase":"placement"`)
	require.Contains(t, string(data), `"turn_state":"awaiting_roll"`)
	require.Contains(t, string(data), `"wheat":2`)
}

func TestBoardView(t *testing.T) {
	b := StandardBoard()
	b.PlaceSettlement(0, 1)
	b.PlaceRoad(0, 2)

	view := b.View()
	require.Len(t, view.Nodes, 54)
	require.Len(t, view.Edges, 72)
	require.Len(t, view.Hexes, 19)
	require.Equal(t, Occupant{Kind: OccupantSettlement, Owner: 1}, view.Nodes[0].Occupant)
	require.Equal(t, PlayerID(2), view.Edges[0].Owner)

	view.Nodes[0].Occupant = Occupant{}
	require.Equal(t, OccupantSettlement, b.Nodes[0].Occupant.Kind, "the view is a copy")
}
