package cast

import (
	"sort"

	"github.com/msg555/mtg/colorset"
	"github.com/msg555/mtg/land"
)

// mardu is the {W,B,R} color set Tournament Grounds produces for
// Knight/Equipment spells.
var mardu = colorset.White.Union(colorset.Black).Union(colorset.Red)

// CanCast decides whether spell can be cast this turn from the given pool
// of lands, with X resolved to the nonnegative integer x. It returns an
// error only for a negative x; an unrecognized cost symbol is rejected
// earlier, when the cost string is parsed.
func CanCast(spell Spell, lands []land.Land, x int) (bool, error) {
	cost, err := spell.Cost.ExpandX(x)
	if err != nil {
		return false, err
	}
	costCounts := cost.Counts()

	simpleLands, otherLands, gateColors, plazaCount := partitionLands(spell, lands)
	if plazaCount > 0 {
		simpleLands.Add(gateColors, plazaCount)
	}

	if colorset.Feasible(costCounts, simpleLands, 0) {
		return true, nil
	}
	if len(otherLands) == 0 {
		return false, nil
	}

	if !feasibleOptimistic(costCounts, simpleLands, otherLands) {
		return false, nil
	}

	return search(costCounts, simpleLands, otherLands), nil
}

// partitionLands buckets lands into the simple pool (deterministic color
// output) and the other pool (Lotus, Filtering, and Beacon when the spell is
// a Planeswalker — choice-dependent). For any other spell a Beacon counts as
// a single generic producer in the simple pool.
func partitionLands(spell Spell, lands []land.Land) (simpleLands colorset.Counts, otherLands []land.Land, gateColors colorset.Set, plazaCount int) {
	for _, l := range lands {
		switch l.TypeTag {
		case land.FabledPassage, land.EvolvingWilds:
			continue
		case land.GatewayPlaza:
			gateColors = colorset.All
			simpleLands.Add(colorset.All, 1)
		case land.CommandTower:
			// Assumes the spell lies within the caller's color identity.
			simpleLands.Add(colorset.All, 1)
		case land.TournamentGrounds:
			if hasAny(spell.Subtypes, "Equipment", "Knight") {
				simpleLands.Add(mardu, 1)
			} else {
				simpleLands.Add(0, 1)
			}
		case land.PlazaOfHarmony:
			plazaCount++
		case land.Beacon:
			if hasAny(spell.Types, "Planeswalker") {
				otherLands = append(otherLands, l)
			} else {
				simpleLands.Add(0, 1)
			}
		default:
			if l.TypeTag.Simple() {
				if l.TypeTag == land.Guildgate {
					gateColors = gateColors.Union(l.ColorIdentity)
				}
				simpleLands.Add(l.ColorIdentity, 1)
			} else {
				// Lotus, Filtering.
				otherLands = append(otherLands, l)
			}
		}
	}
	sort.Slice(otherLands, func(i, j int) bool { return otherLands[i].Name < otherLands[j].Name })
	return simpleLands, otherLands, gateColors, plazaCount
}

// feasibleOptimistic runs the oracle against an upper-bound pool that
// credits every "other" land with the most mana it could possibly
// contribute. A rejection here proves the spell is uncastable without
// exploring the search space.
func feasibleOptimistic(cost, simpleLands colorset.Counts, otherLands []land.Land) bool {
	optimisticCost := cost
	optimisticLands := simpleLands
	for _, l := range otherLands {
		switch l.TypeTag {
		case land.Beacon:
			optimisticCost.Add(colorset.All, 1)
			optimisticLands.Add(colorset.All, 2)
		case land.Lotus:
			optimisticLands.Add(colorset.All, 3)
		case land.Filtering:
			optimisticLands.Add(colorset.All, 1)
		}
	}
	return colorset.Feasible(optimisticCost, optimisticLands, 0)
}
