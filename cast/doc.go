// Package cast implements the castability decider: given a spell's cost
// and a pool of lands, decide whether the spell can be cast this turn.
//
// Overview:
//
//   - Lands are partitioned into "simple" lands, whose color output is
//     fixed before any decision, and "other" lands (Lotus, Filtering, and
//     Beacon when the spell is a Planeswalker), whose output depends on a
//     runtime choice.
//   - Two fast paths dispose of the easy cases: the colorset oracle run
//     directly against the simple pool (accept), and the oracle run
//     against an optimistic upper-bound pool (reject if even that fails).
//   - Otherwise a best-first search (backed by package heap) enumerates,
//     for each "other" land in a fixed order, which of its color modes is
//     taken, re-running the oracle at each state until one is feasible or
//     the reachable state space is exhausted.
//
// Grounded on original_source/mtg.py's can_cast and SearchState.
package cast
