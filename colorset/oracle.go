package colorset

// lowerMobius computes the lower Möbius transform g(s) = Σ_{t ⊆ s} f(t) in
// place, via the standard O(N · 2^N) subset-sum DP: for each color bit c,
// add f(s) into f(s ∪ {c}) for every subset s excluding c.
func lowerMobius(f Counts) Counts {
	g := f
	for c := 0; c < NumColors; c++ {
		bit := Set(1 << uint(c))
		without := All ^ bit
		for s := without; ; {
			g[s|bit] += g[s]
			if s == 0 {
				break
			}
			s = Set(int(s-1)) & without
		}
	}
	return g
}

// Feasible decides, via Hall's marriage condition, whether cost can be paid
// from lands with the given slack offset applied uniformly to every color
// subset's demand.
//
// Equivalently: for every color subset s, the pips payable only within s
// (plus offset) must not exceed the number of lands capable of producing
// some color in s.
func Feasible(cost, lands Counts, offset int) bool {
	costG := lowerMobius(cost)
	landG := lowerMobius(lands)
	// Lands producing no color at all (bitset 0, i.e. colorless) can still
	// pay generic pips; zeroing landG[0] after the transform reclassifies
	// them so the complement pairing below counts them only for s == All,
	// the one subset whose demand includes the generic pips.
	landG[0] = 0
	total := landG[All]

	for s := Set(0); ; s++ {
		supply := total - landG[All^s]
		if costG[s]+offset > supply {
			return false
		}
		if s == All {
			break
		}
	}
	return true
}
