package cast_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/msg555/mtg/cast"
	"github.com/msg555/mtg/colorset"
	"github.com/msg555/mtg/land"
	"github.com/msg555/mtg/mana"
)

func mustCost(t *testing.T, s string) mana.Cost {
	t.Helper()
	c, err := mana.ParseCost(s)
	require.NoError(t, err)
	return c
}

func basicLand(name string, color colorset.Set) land.Land {
	return land.NewLand(name, land.Basic, color)
}

// TestCanCast_BeaconBolas mirrors original_source/tests/cast_test.py's
// test_beacon_bolas against Nicol Bolas, Dragon-God ({U}{B}{B}{R}),
// a Planeswalker so its Beacons must take the filtered two-color mode.
func TestCanCast_BeaconBolas(t *testing.T) {
	cost := mustCost(t, "{U}{B}{B}{R}")
	spell := cast.NewSpell("Nicol Bolas, Dragon-God", cost, []string{"Planeswalker"}, nil)

	beacon := func() land.Land { return land.NewLand("Interplanar Beacon", land.Beacon, 0) }

	// Scenario 1: three Beacons, a Mountain, two Islands -> yes.
	lands := []land.Land{
		beacon(), beacon(), beacon(),
		basicLand("Mountain", colorset.Red),
		basicLand("Island", colorset.Blue),
		basicLand("Island", colorset.Blue),
	}
	ok, err := cast.CanCast(spell, lands, 0)
	require.NoError(t, err)
	require.True(t, ok)

	// Scenario 2: drop one Island -> no (one colored pip short after surcharges).
	lands2 := []land.Land{
		beacon(), beacon(), beacon(),
		basicLand("Mountain", colorset.Red),
		basicLand("Island", colorset.Blue),
	}
	ok, err = cast.CanCast(spell, lands2, 0)
	require.NoError(t, err)
	require.False(t, ok)

	// Scenario 3: three Beacons, a colorless Blast Zone, a Swamp -> yes.
	lands3 := []land.Land{
		beacon(), beacon(), beacon(),
		land.NewLand("Blast Zone", land.Colorless, 0),
		basicLand("Swamp", colorset.Black),
	}
	ok, err = cast.CanCast(spell, lands3, 0)
	require.NoError(t, err)
	require.True(t, ok)
}

func TestCanCast_MonoRed(t *testing.T) {
	cost := mustCost(t, "{R}{R}{R}")
	spell := cast.NewSpell("Goblin Rabblemaster", cost, []string{"Creature"}, nil)

	ok, err := cast.CanCast(spell, []land.Land{
		basicLand("Mountain", colorset.Red),
		basicLand("Mountain", colorset.Red),
		basicLand("Mountain", colorset.Red),
	}, 0)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = cast.CanCast(spell, []land.Land{
		basicLand("Mountain", colorset.Red),
		basicLand("Mountain", colorset.Red),
		basicLand("Forest", colorset.Green),
	}, 0)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestCanCast_XSpell(t *testing.T) {
	cost := mustCost(t, "{X}{R}")
	spell := cast.NewSpell("Fiery Confluence Lite", cost, []string{"Sorcery"}, nil)

	lands := []land.Land{
		basicLand("Mountain", colorset.Red),
		basicLand("Mountain", colorset.Red),
		basicLand("Mountain", colorset.Red),
	}
	ok, err := cast.CanCast(spell, lands, 2)
	require.NoError(t, err)
	require.True(t, ok)

	lands2 := []land.Land{
		basicLand("Mountain", colorset.Red),
		basicLand("Mountain", colorset.Red),
	}
	ok, err = cast.CanCast(spell, lands2, 2)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestCanCast_NegativeXRejected(t *testing.T) {
	cost := mustCost(t, "{X}{R}")
	spell := cast.NewSpell("Fiery Confluence Lite", cost, nil, nil)
	_, err := cast.CanCast(spell, nil, -1)
	require.Error(t, err)
}

func TestCanCast_CommandTowerProducesAny(t *testing.T) {
	cost := mustCost(t, "{W}{U}{B}{R}{G}")
	spell := cast.NewSpell("Five-Color General", cost, []string{"Creature"}, nil)
	lands := []land.Land{
		land.NewLand("Command Tower", land.CommandTower, 0),
		land.NewLand("Command Tower", land.CommandTower, 0),
		land.NewLand("Command Tower", land.CommandTower, 0),
		land.NewLand("Command Tower", land.CommandTower, 0),
		land.NewLand("Command Tower", land.CommandTower, 0),
	}
	ok, err := cast.CanCast(spell, lands, 0)
	require.NoError(t, err)
	require.True(t, ok)
}

func TestCanCast_TournamentGroundsSubtypeGated(t *testing.T) {
	cost := mustCost(t, "{W}{B}{R}")
	withEquipment := cast.NewSpell("Bonesplitter", cost, []string{"Artifact"}, []string{"Equipment"})
	withoutSubtype := cast.NewSpell("Plain Vanilla", cost, []string{"Creature"}, nil)

	lands := []land.Land{
		land.NewLand("Tournament Grounds", land.TournamentGrounds, 0),
		land.NewLand("Tournament Grounds", land.TournamentGrounds, 0),
		land.NewLand("Tournament Grounds", land.TournamentGrounds, 0),
	}

	ok, err := cast.CanCast(withEquipment, lands, 0)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = cast.CanCast(withoutSubtype, lands, 0)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestCanCast_LotusFieldChoosesOneColor(t *testing.T) {
	cost := mustCost(t, "{G}{G}{G}")
	spell := cast.NewSpell("Triple Green", cost, []string{"Sorcery"}, nil)
	lands := []land.Land{land.NewLand("Lotus Field", land.Lotus, 0)}
	ok, err := cast.CanCast(spell, lands, 0)
	require.NoError(t, err)
	require.True(t, ok)
}

func TestCanCast_FilteringLandSurcharge(t *testing.T) {
	// {G}{G}: one Forest plus one Unknown Shores (filtering) paying the
	// surcharge from the Forest's own mana is not enough (surcharge must
	// be absorbed on top of the colored pips), but two Forests are.
	cost := mustCost(t, "{G}{G}")
	spell := cast.NewSpell("Double Green", cost, []string{"Sorcery"}, nil)

	ok, err := cast.CanCast(spell, []land.Land{
		basicLand("Forest", colorset.Green),
		land.NewLand("Unknown Shores", land.Filtering, 0),
	}, 0)
	require.NoError(t, err)
	require.False(t, ok)

	ok, err = cast.CanCast(spell, []land.Land{
		basicLand("Forest", colorset.Green),
		basicLand("Forest", colorset.Green),
		land.NewLand("Unknown Shores", land.Filtering, 0),
	}, 0)
	require.NoError(t, err)
	require.True(t, ok)
}
