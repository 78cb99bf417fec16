package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuildSettlementCosts(t *testing.T) {
	t.Run("paid build deducts the full cost vector", func(t *testing.T) {
		b := mustBoard(t, pathTopology(4))
		p := NewPlayer(1)
		b.PlaceRoad(0, 1)
		giveResources(p, SettlementCost, 1)
		p.AddResource(Ore, 2)

		require.True(t, p.BuildSettlement(b, 1, false))
		for _, r := range []Resource{Brick, Wood, Sheep, Wheat} {
			require.Zero(t, p.Resources[r], "%s spent", r)
		}
		require.Equal(t, 2, p.Resources[Ore], "uninvolved resource untouched")
		require.Equal(t, 1, p.Built.Settlements)
	})

	t.Run("free build deducts nothing", func(t *testing.T) {
		b := mustBoard(t, pathTopology(4))
		p := NewPlayer(1)

		require.True(t, p.BuildSettlement(b, 1, true))
		for _, r := range Resources {
			require.Zero(t, p.Resources[r])
		}
		require.Equal(t, 1, p.Built.Settlements)
	})
}

func TestBuildRoadFailureLeavesStateUnchanged(t *testing.T) {
	b := mustBoard(t, pathTopology(4))
	p := NewPlayer(1)
	b.PlaceSettlement(1, 1)
	p.AddResource(Brick, 1) // missing wood

	require.False(t, p.BuildRoad(b, 1, false))
	require.Equal(t, NoPlayer, b.Edges[1].Owner, "edge owner unchanged")
	require.Equal(t, 1, p.Resources[Brick], "resources unchanged")
	require.Zero(t, p.Built.Roads)
}

func TestStructureCaps(t *testing.T) {
	t.Run("settlement cap blocks further builds", func(t *testing.T) {
		b := mustBoard(t, pathTopology(10))
		p := NewPlayer(1)
		for node := 0; node < MaxSettlements; node++ {
			require.True(t, p.BuildSettlement(b, node, true))
		}
		require.False(t, p.BuildSettlement(b, 7, true))
		require.Equal(t, MaxSettlements, p.Built.Settlements)
	})

	t.Run("road cap blocks further builds", func(t *testing.T) {
		b := mustBoard(t, pathTopology(MaxRoads+3))
		p := NewPlayer(1)
		b.PlaceSettlement(0, 1)
		for edge := 0; edge < MaxRoads; edge++ {
			require.True(t, p.BuildRoad(b, edge, true))
		}
		require.False(t, p.BuildRoad(b, MaxRoads, true))
		require.Equal(t, MaxRoads, p.Built.Roads)
	})
}

func TestBuildCityUpgradesAtomically(t *testing.T) {
	b := mustBoard(t, pathTopology(4))
	p := NewPlayer(1)
	require.True(t, p.BuildSettlement(b, 1, true))
	giveResources(p, CityCost, 1)

	require.True(t, p.BuildCity(b, 1))
	require.Equal(t, Occupant{Kind: OccupantCity, Owner: 1}, b.Nodes[1].Occupant)
	require.Equal(t, BuiltCount{Settlements: 0, Cities: 1, Roads: 0}, p.Built,
		"settlement count transfers to the city count")
	require.Zero(t, p.Resources[Wheat])
	require.Zero(t, p.Resources[Ore])
}

func TestBuildCityFailsWithoutOwnSettlement(t *testing.T) {
	b := mustBoard(t, pathTopology(4))
	p := NewPlayer(1)
	giveResources(p, CityCost, 1)

	require.False(t, p.BuildCity(b, 1), "empty node")

	b.PlaceSettlement(1, 2)
	require.False(t, p.BuildCity(b, 1), "opponent settlement")
	require.Equal(t, 2, p.Resources[Wheat], "nothing deducted on failure")
	require.Equal(t, 3, p.Resources[Ore])
}

func TestAvailableSpotsShortCircuit(t *testing.T) {
	b := mustBoard(t, pathTopology(4))
	p := NewPlayer(1)
	b.PlaceSettlement(1, 1)

	require.Nil(t, p.AvailableSettlementSpots(b, false), "no resources, no scan")
	require.Nil(t, p.AvailableRoadSpots(b, false))
	require.Nil(t, p.AvailableCitySpots(b))

	require.NotEmpty(t, p.AvailableSettlementSpots(b, true), "free placement ignores affordability")
	require.NotEmpty(t, p.AvailableRoadSpots(b, true))

	giveResources(p, CityCost, 1)
	require.Equal(t, []int{1}, p.AvailableCitySpots(b))
}

func TestTradeRate(t *testing.T) {
	topo := pathTopology(4)
	topo.Nodes[0].Port = PortGeneric
	topo.Nodes[2].Port = PortBrick
	b := mustBoard(t, topo)
	p := NewPlayer(1)

	require.Equal(t, 4, p.TradeRate(b, Brick), "no ports yet")

	b.PlaceSettlement(0, 1)
	require.Equal(t, 3, p.TradeRate(b, Brick), "generic port")
	require.Equal(t, 3, p.TradeRate(b, Ore))

	b.PlaceSettlement(2, 1)
	require.Equal(t, 2, p.TradeRate(b, Brick), "specific port beats generic")
	require.Equal(t, 3, p.TradeRate(b, Ore), "specific port only covers its resource")

	other := NewPlayer(2)
	require.Equal(t, 4, other.TradeRate(b, Brick), "opponent gains nothing")
}

func TestTradeOffers(t *testing.T) {
	b := mustBoard(t, pathTopology(4))
	p := NewPlayer(1)
	p.AddResource(Brick, 4)
	p.AddResource(Wood, 3)

	offers := p.TradeOffers(b)
	require.Equal(t, []TradeOffer{{Offered: Brick, Cost: 4}}, offers[Ore],
		"only brick reaches the 4:1 rate")
	require.NotContains(t, offers, Brick, "no self-trade: brick wanted only lists other resources")

	p.AddResource(Wood, 1)
	offers = p.TradeOffers(b)
	require.Equal(t, []TradeOffer{{Offered: Brick, Cost: 4}, {Offered: Wood, Cost: 4}}, offers[Ore])
}
