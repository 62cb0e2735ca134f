package heap

import "cmp"

// Handle is an opaque reference to an element previously pushed onto a
// Heap. It remains valid until the element is popped or removed; passing a
// stale handle to Adjust or Remove panics.
type Handle[K cmp.Ordered, V any] struct {
	val   V
	key   K
	index int // current position in the heap's backing array; -1 once removed
}

// Value returns the element currently associated with the handle.
func (h *Handle[K, V]) Value() V {
	return h.val
}

// live reports whether the handle still refers to an element in the heap.
func (h *Handle[K, V]) live() bool {
	return h.index >= 0
}
