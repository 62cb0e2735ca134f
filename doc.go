// Package mtg is a castability decision engine for Magic: The Gathering:
// given a spell's mana cost and a pool of lands, it decides whether the
// spell can be cast this turn.
//
// The engine is organized as a small set of focused packages:
//
//	heap/      — generic adjustable min-heap with opaque handles
//	colorset/  — 5-color bitset, Möbius-transform-accelerated Hall's
//	             theorem feasibility oracle
//	mana/      — mana-cost string parsing
//	land/      — land-type classification
//	cast/      — the castability decider, combining the oracle with a
//	             best-first search over lands with runtime-chosen output
//	flow/      — min-cost max-flow via successive shortest augmenting
//	             paths with Johnson potentials
//	cardstore/ — JSON card-corpus ingestion
//	deck/      — decklist text parsing
//	cmd/castability/ — a CLI built on the above
//
// heap and flow are general-purpose and have no dependency on the rest of
// the module; colorset, mana, land, and cast implement the castability
// domain model itself.
package mtg
