package mana_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/msg555/mtg/colorset"
	"github.com/msg555/mtg/mana"
)

func TestParseCost_GenericAndColored(t *testing.T) {
	cost, err := mana.ParseCost("{2}{W}{U/B}")
	require.NoError(t, err)
	require.Equal(t, 2, cost[colorset.All])
	require.Equal(t, 1, cost[colorset.White])
	require.Equal(t, 1, cost[colorset.Blue.Union(colorset.Black)])
}

func TestParseCost_X(t *testing.T) {
	cost, err := mana.ParseCost("{X}{X}{R}")
	require.NoError(t, err)
	require.Equal(t, 2, cost[0])
	require.Equal(t, 1, cost[colorset.Red])

	expanded, err := cost.ExpandX(3)
	require.NoError(t, err)
	require.Equal(t, 0, expanded[0])
	require.Equal(t, 6, expanded[colorset.All])
	require.Equal(t, 1, expanded[colorset.Red])
}

func TestParseCost_UnknownSymbol(t *testing.T) {
	_, err := mana.ParseCost("{Q}")
	require.ErrorIs(t, err, mana.ErrUnknownSymbol)
}

func TestParseCost_TextOutsideBracesRejected(t *testing.T) {
	_, err := mana.ParseCost("{W}junk{U}")
	require.ErrorIs(t, err, mana.ErrUnknownSymbol)
}

func TestParseCost_NoBracesRejected(t *testing.T) {
	_, err := mana.ParseCost("not-a-cost")
	require.ErrorIs(t, err, mana.ErrUnknownSymbol)
}

func TestExpandX_NegativeRejected(t *testing.T) {
	cost, err := mana.ParseCost("{X}")
	require.NoError(t, err)
	_, err = cost.ExpandX(-1)
	require.ErrorIs(t, err, mana.ErrNegativeX)
}

func TestParseCost_BolasDragonGod(t *testing.T) {
	cost, err := mana.ParseCost("{U}{B}{B}{R}")
	require.NoError(t, err)
	require.Equal(t, 1, cost[colorset.Blue])
	require.Equal(t, 2, cost[colorset.Black])
	require.Equal(t, 1, cost[colorset.Red])
}
