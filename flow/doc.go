// Package flow implements min-cost max-flow via successive shortest
// augmenting paths with Johnson vertex potentials.
//
// Overview:
//
//   - Graph[T] holds an undirected edge list indexed by vertex; each Edge
//     stores its endpoints, capacity, cost, and a signed flow.
//   - AddFlow repeatedly finds the shortest augmenting path (by reduced
//     cost, via Dijkstra over package heap) from source to sink and pushes
//     flow along it, until the sink is unreachable or an optional flow cap
//     is reached.
//   - Reduced costs cost + φ(u) − φ(v) stay nonnegative on every residual
//     edge with remaining capacity after each augmentation, which is what
//     lets Dijkstra (rather than Bellman-Ford) drive each iteration.
//
// When to use: this is a general-purpose min-cost max-flow solver,
// independent of the castability decider — it shares only package heap.
//
// Complexity: each iteration is one Dijkstra pass, O((V+E) log V); the
// number of iterations is bounded by the number of distinct augmenting
// paths needed to saturate the flow (at most min(flow_max, max flow)).
//
// Error handling: AddFlow returns ErrSourceNotFound/ErrSinkNotFound if
// either endpoint was never added via AddEdge. AddEdge returns EdgeError
// for a negative capacity. An unreachable sink during a search ends the
// procedure cleanly, returning the flow and cost accumulated so far — this
// is not an error, just exhaustion of the augmenting-path search.
//
// The algorithm assumes no negative-cost cycles in the initial residual
// graph, which holds whenever the graph starts at zero flow.
package flow
