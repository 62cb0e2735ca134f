// Package heap implements a generic binary min-heap whose elements carry a
// stable, opaque handle so that a caller may re-prioritize (Adjust) or
// delete (Remove) any element in O(log n) time.
//
// Overview:
//
//   - Heap[K, V] is a min-priority queue over values of type V, ordered by a
//     key of type K extracted from each value by a caller-supplied key
//     function.
//   - Push returns a *Handle that remains valid for the lifetime of the
//     element — until it is popped or removed — and may be passed back to
//     Adjust or Remove regardless of how many other mutations have happened
//     to the heap in the meantime.
//
// When to use:
//
//   - Dijkstra-style shortest-path search and successive-shortest-path
//     min-cost flow, where a frontier vertex's distance key must be
//     decreased in place rather than re-pushed.
//   - Best-first search over a state space where a previously queued state
//     is superseded by a better one and should be updated rather than
//     duplicated.
//
// Complexity:
//
//   - Push, Pop, Adjust, Remove: O(log n).
//   - Peek, Len, IsEmpty: O(1).
//
// Error handling:
//
//   - Pop and Peek on an empty heap panic: calling either is a programmer
//     error, not a recoverable condition.
//   - Adjust/Remove on a handle that has already been popped or removed is
//     also a programmer error and panics.
//
// Tie-breaking is unspecified: two elements with equal keys may be returned
// in either order. Callers that need a stable order should embed a sequence
// number in the key.
package heap
