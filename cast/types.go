package cast

import (
	"github.com/google/uuid"

	"github.com/msg555/mtg/mana"
)

// Spell is a read-only record of the attributes the castability decider
// needs from a spell card: its cost multiset, and the type/subtype strings
// a handful of land types key off of (Planeswalker for Beacon, Knight or
// Equipment for Tournament Grounds).
type Spell struct {
	ID       uuid.UUID
	Name     string
	Cost     mana.Cost
	Types    []string
	Subtypes []string
}

// NewSpell constructs a Spell with a fresh identity.
func NewSpell(name string, cost mana.Cost, types, subtypes []string) Spell {
	return Spell{
		ID:       uuid.New(),
		Name:     name,
		Cost:     cost,
		Types:    types,
		Subtypes: subtypes,
	}
}

func hasAny(items []string, targets ...string) bool {
	for _, item := range items {
		for _, target := range targets {
			if item == target {
				return true
			}
		}
	}
	return false
}
