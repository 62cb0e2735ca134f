// Package colorset implements the five-color bitset domain shared by the
// mana and cast packages, and the Möbius-accelerated Hall's-theorem
// feasibility oracle used to decide whether a pip cost is payable by a
// pool of colored-mana producers.
//
// Overview:
//
//   - A Set is a value in [0, 31]; bit i denotes color i in {W, U, B, R, G}
//     (that fixed order). All = 31. The empty set 0 denotes generic mana.
//   - Counts maps each of the 32 possible bitsets to a nonnegative count —
//     of cost pips payable by that bitset, or of lands that produce that
//     bitset's colors.
//   - Feasible decides, in O(1) (two 32-entry transforms plus a 32-entry
//     sweep), whether a Counts of cost can be paid from a Counts of lands.
//
// Why correct: Feasible evaluates Hall's marriage condition simultaneously
// over every subset s of colors — cost restricted to s must not exceed the
// number of lands capable of producing some color in s — via the lower
// Möbius transform (subset-sum) of both vectors. See mtg.py's
// can_cast_simple for the reference this is ported from.
package colorset
