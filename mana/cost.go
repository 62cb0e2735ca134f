package mana

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/msg555/mtg/colorset"
)

// ErrUnknownSymbol is returned when a cost string contains a brace-delimited
// symbol that is neither a digit, "X", nor a combination of W/U/B/R/G.
var ErrUnknownSymbol = fmt.Errorf("mana: unknown cost symbol")

// ErrNegativeX is returned when ExpandX is called with a negative X.
var ErrNegativeX = fmt.Errorf("mana: X must be non-negative")

// colorLetters maps a mana-color letter to its colorset.Set bit.
var colorLetters = map[byte]colorset.Set{
	'W': colorset.White,
	'U': colorset.Blue,
	'B': colorset.Black,
	'R': colorset.Red,
	'G': colorset.Green,
}

var braceRunPattern = regexp.MustCompile(`[{}]+`)

// Cost is a cost multiset: Cost[s] is the number of pips payable by any
// color in bitset s. Before ExpandX, Cost[0] holds the count of X symbols
// present in the original string rather than a generic-pip count.
type Cost colorset.Counts

// ParseCost parses a brace-delimited mana cost string such as "{2}{W}{U/B}"
// into a Cost. Digits contribute generic pips (bucket colorset.All); "X"
// contributes to bucket 0, pending ExpandX; letters in {W,U,B,R,G},
// optionally "/"-joined, contribute a hybrid pip over their bitset union.
// s is split on brace runs rather than scanned for brace-delimited spans,
// so any text outside (or between) braces surfaces as a symbol of its own
// and is parsed like a braced one: unrecognized text fails rather than
// being silently skipped, while bare text that is itself a valid symbol
// (such as "R" or "2") is accepted. An unrecognized symbol returns
// ErrUnknownSymbol.
func ParseCost(s string) (Cost, error) {
	var cost Cost
	for _, symbol := range braceRunPattern.Split(s, -1) {
		if symbol == "" {
			continue
		}
		if symbol == "X" {
			cost[0]++
			continue
		}
		if n, err := strconv.Atoi(symbol); err == nil {
			if n < 0 {
				return Cost{}, fmt.Errorf("%w: %q", ErrUnknownSymbol, symbol)
			}
			cost[colorset.All] += n
			continue
		}

		var colors colorset.Set
		for _, part := range strings.Split(symbol, "/") {
			if len(part) != 1 {
				return Cost{}, fmt.Errorf("%w: %q", ErrUnknownSymbol, symbol)
			}
			bit, ok := colorLetters[part[0]]
			if !ok {
				return Cost{}, fmt.Errorf("%w: %q", ErrUnknownSymbol, symbol)
			}
			colors = colors.Union(bit)
		}
		cost[colors]++
	}
	return cost, nil
}

// ExpandX resolves the pending X symbols recorded in Cost[0] against a
// caller-supplied nonnegative X, moving X * Cost[0] generic pips into the
// colorset.All bucket and zeroing bucket 0. Calling ExpandX a second time
// on an already-expanded Cost is a no-op since Cost[0] will be zero.
func (c Cost) ExpandX(x int) (Cost, error) {
	if x < 0 {
		return Cost{}, ErrNegativeX
	}
	result := c
	result[colorset.All] += result[0] * x
	result[0] = 0
	return result, nil
}

// Counts returns the cost as a colorset.Counts for use with colorset.Feasible.
func (c Cost) Counts() colorset.Counts {
	return colorset.Counts(c)
}
