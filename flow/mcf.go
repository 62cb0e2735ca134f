package flow

import (
	"math"

	"github.com/msg555/mtg/heap"
)

// Graph is a min-cost-flow network over vertices of type T. The zero value
// is not usable; construct with New.
type Graph[T comparable] struct {
	adj       map[T][]*Edge[T]
	potential map[T]int64
}

// New constructs an empty flow network.
func New[T comparable]() *Graph[T] {
	return &Graph[T]{
		adj:       map[T][]*Edge[T]{},
		potential: map[T]int64{},
	}
}

// AddEdge adds an edge from u to v with the given capacity and cost,
// creating either endpoint if it has not been seen before. It returns
// EdgeError for a negative capacity.
func (g *Graph[T]) AddEdge(u, v T, capacity, cost int64) (*Edge[T], error) {
	if capacity < 0 {
		return nil, &EdgeError{Capacity: capacity}
	}
	e := &Edge[T]{U: u, V: v, Capacity: capacity, Cost: cost}
	g.touch(u)
	g.touch(v)
	g.adj[u] = append(g.adj[u], e)
	g.adj[v] = append(g.adj[v], e)
	return e, nil
}

// touch ensures vertex v is present in the adjacency map, even with no
// edges yet, so AddFlow can recognize it as a known vertex.
func (g *Graph[T]) touch(v T) {
	if _, ok := g.adj[v]; !ok {
		g.adj[v] = nil
	}
}

// Touch registers v as a known vertex with no edges, so a later AddFlow
// call involving it as source or sink does not fail with
// ErrSourceNotFound/ErrSinkNotFound. AddEdge already does this implicitly
// for both of its endpoints; Touch is for an isolated vertex that never
// appears in an AddEdge call.
func (g *Graph[T]) Touch(v T) {
	g.touch(v)
}

// frontier is the value pushed onto the search heap: a candidate shortest
// distance from src to vertex, along with the path's bottleneck capacity.
type frontier[T comparable] struct {
	vertex     T
	dist       int64
	bottleneck int64
}

// pathInfo tracks, per vertex reached during one Dijkstra pass, its live
// heap handle (until popped) and the predecessor edge on its shortest path.
type pathInfo[T comparable] struct {
	handle *heap.Handle[int64, frontier[T]]
	edge   *Edge[T]
}

const infiniteBottleneck = int64(math.MaxInt64)

// AddFlow pushes flow from src to snk by successive shortest augmenting
// paths under Johnson potentials, stopping when snk becomes unreachable in
// the residual graph or, if WithFlowMax is given, once that much flow has
// been pushed. It returns the total flow pushed and its total cost.
func (g *Graph[T]) AddFlow(src, snk T, opts ...Option) (int64, int64, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if _, ok := g.adj[src]; !ok {
		return 0, 0, ErrSourceNotFound
	}
	if _, ok := g.adj[snk]; !ok {
		return 0, 0, ErrSinkNotFound
	}

	var flow, cost int64
	for cfg.FlowMax == nil || flow < *cfg.FlowMax {
		remaining := infiniteBottleneck
		if cfg.FlowMax != nil {
			remaining = *cfg.FlowMax - flow
		}

		final, info := g.shortestPaths(src, remaining)

		sinkFinal, reached := final[snk]
		if !reached {
			break
		}

		// Actual per-unit path cost = reduced distance + the sink's
		// potential from before this round's update (Johnson reweighting),
		// since the source's potential is invariant at zero across rounds;
		// every unit of the round's bottleneck pays it.
		cost += (sinkFinal.dist + g.potential[snk]) * sinkFinal.bottleneck

		for v, fd := range final {
			g.potential[v] += fd.dist
		}

		flow += sinkFinal.bottleneck

		v := snk
		for {
			pi := info[v]
			if pi.edge == nil {
				break
			}
			e := pi.edge
			v, _, _ = e.residual(v)
			e.addFlow(v, sinkFinal.bottleneck)
		}
	}
	return flow, cost, nil
}

// shortestPaths runs one Dijkstra pass over reduced costs from src,
// exhausting the whole frontier (not stopping early at any particular
// vertex) so every reachable vertex's potential can be updated afterward.
// remaining caps the bottleneck capacity credited to src's own path.
func (g *Graph[T]) shortestPaths(src T, remaining int64) (map[T]frontier[T], map[T]*pathInfo[T]) {
	final := map[T]frontier[T]{}
	info := map[T]*pathInfo[T]{}

	q := heap.New(func(f frontier[T]) int64 { return f.dist })

	h := q.Push(frontier[T]{vertex: src, dist: 0, bottleneck: remaining})
	info[src] = &pathInfo[T]{handle: h}

	for !q.IsEmpty() {
		cur := q.Pop()
		final[cur.vertex] = cur

		for _, e := range g.adj[cur.vertex] {
			to, capacity, edgeCost := e.residual(cur.vertex)
			if capacity == 0 {
				continue
			}
			newDist := cur.dist + edgeCost + g.potential[cur.vertex] - g.potential[to]
			newBottleneck := capacity
			if cur.bottleneck < newBottleneck {
				newBottleneck = cur.bottleneck
			}

			if _, done := final[to]; done {
				continue
			}

			pi, seen := info[to]
			if !seen {
				nf := frontier[T]{vertex: to, dist: newDist, bottleneck: newBottleneck}
				info[to] = &pathInfo[T]{handle: q.Push(nf), edge: e}
				continue
			}
			if newDist < pi.handle.Value().dist {
				q.Adjust(pi.handle, frontier[T]{vertex: to, dist: newDist, bottleneck: newBottleneck})
				pi.edge = e
			}
		}
	}
	return final, info
}
