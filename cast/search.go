package cast

import (
	"fmt"

	"github.com/msg555/mtg/colorset"
	"github.com/msg555/mtg/heap"
	"github.com/msg555/mtg/land"
)

// searchState is a node in the best-first search over "other" land color
// choices. colors/filterColors are clamped at construction time against
// maxColors so that tallies past what the cost could ever use collapse
// onto the same state, keeping the visited set bounded.
type searchState struct {
	colors       [colorset.NumColors]int
	filterColors [colorset.NumColors]int
	total        int
	filterTotal  int
	filterCost   int
	landIndex    int
}

// searchConfig holds the quantities every state is clamped and scored
// against: they are invariant for the duration of one CanCast search.
type searchConfig struct {
	maxColors [colorset.NumColors]int
	totalCost int
}

func newSearchState(colors, filterColors [colorset.NumColors]int, total, filterTotal, filterCost, landIndex int, cfg searchConfig) searchState {
	var s searchState
	for c := 0; c < colorset.NumColors; c++ {
		s.filterColors[c] = min(filterColors[c], cfg.maxColors[c])
		s.colors[c] = min(colors[c], cfg.maxColors[c]-s.filterColors[c])
	}
	s.total = total
	s.filterTotal = min(filterTotal, cfg.totalCost)
	s.filterCost = filterCost
	s.landIndex = landIndex
	return s
}

// identity is the value-equality key used to dedup visited states so the
// search terminates: the clamped state space is finite, and a state
// already visited can never reach a feasible outcome unvisited states
// couldn't also reach.
type identity struct {
	landIndex, total, filterTotal, filterCost int
	colors, filterColors                      [colorset.NumColors]int
}

func (s searchState) identity() identity {
	return identity{
		landIndex:    s.landIndex,
		total:        s.total,
		filterTotal:  s.filterTotal,
		filterCost:   s.filterCost,
		colors:       s.colors,
		filterColors: s.filterColors,
	}
}

// heuristicKey computes a lexicographic triple (the larger of the color and
// total deficits plus the land index and filter cost, the color deficit,
// and the filtered-mana total)
// used as the heap's ordering key, so the search explores states closest
// to feasibility first. Components are encoded zero-padded into a
// single string so they sort lexicographically as the tuple would;
// real hands never approach the 9-digit-per-component bound.
func (s searchState) heuristicKey(cfg searchConfig) string {
	colorSum, filterColorSum, colorsSum := 0, 0, 0
	for c := 0; c < colorset.NumColors; c++ {
		colorSum += cfg.maxColors[c]
		filterColorSum += s.filterColors[c]
		colorsSum += s.colors[c]
	}
	colorDeficit := colorSum - filterColorSum - colorsSum
	totalDeficit := cfg.totalCost - s.filterTotal - s.total
	lead := max(colorDeficit, totalDeficit) + s.landIndex + s.filterCost
	return fmt.Sprintf("%09d%09d%09d", lead, colorDeficit, s.filterTotal)
}

// transition describes one land color-mode choice: colors/filterColors
// list the 0-indexed colors it produces (possibly with repeats), routed
// into the state's normal or filtered tallies respectively; colorless adds
// unconditionally to the normal total.
type transition struct {
	colors       []int
	filterColors []int
	colorless    int
	filterCost   int
}

func (s searchState) apply(t transition, cfg searchConfig) searchState {
	colors, filterColors := s.colors, s.filterColors
	for _, c := range t.colors {
		colors[c]++
	}
	for _, c := range t.filterColors {
		filterColors[c]++
	}
	total := s.total + len(t.colors) + t.colorless
	filterTotal := s.filterTotal + len(t.filterColors)
	filterCost := s.filterCost + t.filterCost
	return newSearchState(colors, filterColors, total, filterTotal, filterCost, s.landIndex+1, cfg)
}

// transitionsFor enumerates the color-mode choices available for the next
// "other" land to decide.
func transitionsFor(typeTag land.Type) []transition {
	switch typeTag {
	case land.Beacon:
		transitions := []transition{{colorless: 1}}
		for a := 0; a < colorset.NumColors; a++ {
			for b := 0; b < a; b++ {
				transitions = append(transitions, transition{filterColors: []int{a, b}, filterCost: 1})
			}
		}
		return transitions
	case land.Lotus:
		transitions := make([]transition, 0, colorset.NumColors)
		for c := 0; c < colorset.NumColors; c++ {
			transitions = append(transitions, transition{colors: []int{c, c, c}})
		}
		return transitions
	case land.Filtering:
		transitions := []transition{{colorless: 1}}
		for c := 0; c < colorset.NumColors; c++ {
			transitions = append(transitions, transition{colors: []int{c}, filterCost: 1})
		}
		return transitions
	default:
		return nil
	}
}

// feasibleAt runs the two-part feasibility test for one search state: the
// oracle against the full land pool implied by the state, and again
// against just the filter-cost-bearing lands with the remaining simple and
// chosen lands folded into the offset.
func feasibleAt(s searchState, cost, simpleLands colorset.Counts, simpleLandCount int) bool {
	stateLands := simpleLands
	var stateFilterLands colorset.Counts
	coloredMana, coloredFilterMana := 0, 0
	for c := 0; c < colorset.NumColors; c++ {
		bit := colorset.Set(1 << uint(c))
		cnt, filterCnt := s.colors[c], s.filterColors[c]
		stateLands.Add(bit, cnt+filterCnt)
		stateFilterLands.Add(bit, filterCnt)
		coloredMana += cnt + filterCnt
		coloredFilterMana += filterCnt
	}
	stateLands.Add(0, s.filterTotal+s.total-coloredMana)
	stateFilterLands.Add(0, s.filterTotal-coloredFilterMana)

	if !colorset.Feasible(cost, stateLands, 0) {
		return false
	}
	offset := s.filterCost - simpleLandCount - s.total
	return colorset.Feasible(cost, stateFilterLands, offset)
}

// search enumerates "other" land color assignments by best-first search.
// It returns true as soon as a feasible state is found, and false once the
// reachable state set is exhausted.
func search(cost, simpleLands colorset.Counts, otherLands []land.Land) bool {
	cfg := searchConfig{totalCost: cost.Total()}
	for c := 0; c < colorset.NumColors; c++ {
		bit := colorset.Set(1 << uint(c))
		total := 0
		for s := 0; s < colorset.NumSets; s++ {
			if colorset.Set(s) != colorset.All && colorset.Set(s)&bit != 0 {
				total += cost[s]
			}
		}
		cfg.maxColors[c] = total
	}

	simpleLandCount := simpleLands.Total()

	visited := map[identity]bool{}
	queue := heap.New(func(s searchState) string { return s.heuristicKey(cfg) })

	push := func(s searchState) {
		id := s.identity()
		if visited[id] {
			return
		}
		visited[id] = true
		queue.Push(s)
	}

	push(newSearchState([colorset.NumColors]int{}, [colorset.NumColors]int{}, 0, 0, 0, 0, cfg))

	for !queue.IsEmpty() {
		state := queue.Pop()

		if feasibleAt(state, cost, simpleLands, simpleLandCount) {
			return true
		}

		if state.landIndex == len(otherLands) {
			continue
		}
		for _, t := range transitionsFor(otherLands[state.landIndex].TypeTag) {
			push(state.apply(t, cfg))
		}
	}
	return false
}
