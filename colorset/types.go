package colorset

// NumColors is the number of distinct colors in the domain: W, U, B, R, G.
const NumColors = 5

// NumSets is the number of distinct color bitsets, 2^NumColors.
const NumSets = 1 << NumColors

// Set is a bitset over the fixed color order {W, U, B, R, G}; bit i is
// color i. All denotes every color; 0 denotes generic/colorless.
type Set uint8

// All is the bitset containing every color.
const All Set = NumSets - 1

// Colors in fixed bit order: white, blue, black, red, green.
const (
	White Set = 1 << iota
	Blue
	Black
	Red
	Green
)

// Union returns the bitset containing every color present in s or t.
func (s Set) Union(t Set) Set {
	return s | t
}

// Has reports whether s includes color bit c (0-indexed into {W,U,B,R,G}).
func (s Set) Has(c int) bool {
	return s&(1<<uint(c)) != 0
}

// Counts maps every color bitset in [0, NumSets) to a nonnegative integer
// count — of cost pips payable by that bitset, or of lands producing that
// bitset's colors.
type Counts [NumSets]int

// Add records n occurrences of bitset s.
func (c *Counts) Add(s Set, n int) {
	c[s] += n
}

// Total returns the sum of all entries.
func (c Counts) Total() int {
	total := 0
	for _, n := range c {
		total += n
	}
	return total
}
