package land

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/msg555/mtg/colorset"
)

// Type is a closed enumeration of the land archetypes the castability core
// understands.
type Type int

const (
	Basic Type = iota
	Shock
	Scry
	TapDual
	Adamant
	Castle
	Colorless
	FabledPassage
	Beacon
	TapTri
	Lotus
	EvolvingWilds
	GatewayPlaza
	Filtering
	CommandTower
	TournamentGrounds
	PlazaOfHarmony
	Guildgate
)

var typeNames = map[Type]string{
	Basic:             "Basic",
	Shock:             "Shock",
	Scry:              "Scry",
	TapDual:           "TapDual",
	Adamant:           "Adamant",
	Castle:            "Castle",
	Colorless:         "Colorless",
	FabledPassage:     "FabledPassage",
	Beacon:            "Beacon",
	TapTri:            "TapTri",
	Lotus:             "Lotus",
	EvolvingWilds:     "EvolvingWilds",
	GatewayPlaza:      "GatewayPlaza",
	Filtering:         "Filtering",
	CommandTower:      "CommandTower",
	TournamentGrounds: "TournamentGrounds",
	PlazaOfHarmony:    "PlazaOfHarmony",
	Guildgate:         "Guildgate",
}

func (t Type) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("Type(%d)", int(t))
}

// simpleTypes are the land types whose per-turn output is a single
// deterministic color choice from a fixed identity set.
var simpleTypes = map[Type]bool{
	Basic:     true,
	Adamant:   true,
	Castle:    true,
	Shock:     true,
	Scry:      true,
	TapDual:   true,
	Guildgate: true,
	TapTri:    true,
	Colorless: true,
}

// Simple reports whether t is one of simpleTypes, whose output is one mana
// of a color from the land's own color identity. It reports false both for
// the types resolved by search over a runtime color-mode pick (Beacon,
// Lotus, Filtering) and for the types the castability decider handles case
// by case (Command Tower, Gateway Plaza, Tournament Grounds, Plaza of
// Harmony, Fabled Passage, Evolving Wilds).
func (t Type) Simple() bool {
	return simpleTypes[t]
}

// Land is a read-only record describing one land card in a pool, carrying
// just the attributes the castability core needs: its type tag and the
// color identity it can tap for (when that's fixed).
type Land struct {
	ID            uuid.UUID
	Name          string
	TypeTag       Type
	ColorIdentity colorset.Set
}

// NewLand constructs a Land with a fresh identity.
func NewLand(name string, typeTag Type, colorIdentity colorset.Set) Land {
	return Land{
		ID:            uuid.New(),
		Name:          name,
		TypeTag:       typeTag,
		ColorIdentity: colorIdentity,
	}
}
