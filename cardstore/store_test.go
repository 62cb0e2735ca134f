package cardstore_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/msg555/mtg/cardstore"
	"github.com/msg555/mtg/colorset"
	"github.com/msg555/mtg/land"
)

const setFixture = `{
  "cards": [
    {
      "name": "Mountain",
      "manaCost": "",
      "colorIdentity": ["R"],
      "supertypes": ["Basic"],
      "types": ["Land"],
      "subtypes": ["Mountain"],
      "text": ""
    },
    {
      "name": "Temple of Malice",
      "manaCost": "",
      "colorIdentity": ["B", "R"],
      "supertypes": [],
      "types": ["Land"],
      "subtypes": [],
      "text": "Temple of Malice enters the battlefield tapped. When it does, scry 1."
    },
    {
      "name": "Goblin Rabblemaster",
      "manaCost": "{2}{R}",
      "colorIdentity": ["R"],
      "supertypes": [],
      "types": ["Creature"],
      "subtypes": ["Goblin"],
      "text": ""
    }
  ]
}`

const formatFixture = `{
  "Nicol Bolas, Dragon-God": {
    "name": "Nicol Bolas, Dragon-God",
    "manaCost": "{U}{B}{B}{R}",
    "colorIdentity": ["U", "B", "R"],
    "supertypes": ["Legendary"],
    "types": ["Planeswalker"],
    "subtypes": ["Bolas"],
    "text": ""
  }
}`

func TestStore_LoadSetIngestsLandsAndSpells(t *testing.T) {
	s := cardstore.New()
	require.NoError(t, s.LoadSet(strings.NewReader(setFixture)))

	mountain, ok := s.Land("Mountain")
	require.True(t, ok)
	require.Equal(t, land.Basic, mountain.TypeTag)
	require.Equal(t, colorset.Red, mountain.ColorIdentity)

	temple, ok := s.Land("Temple of Malice")
	require.True(t, ok)
	require.Equal(t, land.Scry, temple.TypeTag)

	rabblemaster, ok := s.Spell("Goblin Rabblemaster")
	require.True(t, ok)
	require.Equal(t, 3, rabblemaster.Cost.Counts().Total())
}

func TestStore_LoadFormatOverlaysLoadSet(t *testing.T) {
	s := cardstore.New()
	require.NoError(t, s.LoadSet(strings.NewReader(setFixture)))
	require.NoError(t, s.LoadFormat(strings.NewReader(formatFixture)))

	bolas, ok := s.Spell("Nicol Bolas, Dragon-God")
	require.True(t, ok)
	require.Equal(t, []string{"Planeswalker"}, bolas.Types)
}

func TestStore_LookupDistinguishesLandFromSpell(t *testing.T) {
	s := cardstore.New()
	require.NoError(t, s.LoadSet(strings.NewReader(setFixture)))

	_, lnd, isLand, ok := s.Lookup("Mountain")
	require.True(t, ok)
	require.True(t, isLand)
	require.Equal(t, "Mountain", lnd.Name)

	spell, _, isLand, ok := s.Lookup("Goblin Rabblemaster")
	require.True(t, ok)
	require.False(t, isLand)
	require.Equal(t, "Goblin Rabblemaster", spell.Name)

	_, _, _, ok = s.Lookup("Nonexistent Card")
	require.False(t, ok)
}

func TestStore_UnknownLandNameErrors(t *testing.T) {
	s := cardstore.New()
	err := s.LoadSet(strings.NewReader(`{"cards": [{"name": "Totally Fake Land", "types": ["Land"], "supertypes": [], "text": ""}]}`))
	require.Error(t, err)
}
