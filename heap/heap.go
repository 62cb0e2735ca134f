package heap

import "cmp"

// KeyFunc extracts the comparison key for a value held in the heap.
type KeyFunc[K cmp.Ordered, V any] func(V) K

// Heap is a generic binary min-heap parameterized by an element type V and
// an ordered key type K. See the package doc for semantics.
type Heap[K cmp.Ordered, V any] struct {
	items []*Handle[K, V]
	keyFn KeyFunc[K, V]
}

// New constructs an empty heap that orders elements by keyFn(v).
func New[K cmp.Ordered, V any](keyFn KeyFunc[K, V]) *Heap[K, V] {
	return &Heap[K, V]{keyFn: keyFn}
}

// NewOrdered constructs an empty heap over a type that is its own key,
// i.e. key_fn defaults to the identity function.
func NewOrdered[K cmp.Ordered]() *Heap[K, K] {
	return New(func(v K) K { return v })
}

// Len returns the number of elements currently in the heap.
func (h *Heap[K, V]) Len() int {
	return len(h.items)
}

// IsEmpty reports whether the heap holds no elements.
func (h *Heap[K, V]) IsEmpty() bool {
	return len(h.items) == 0
}

// Push inserts v into the heap and returns a handle that stays valid until
// v is popped or removed.
func (h *Heap[K, V]) Push(v V) *Handle[K, V] {
	handle := &Handle[K, V]{
		val:   v,
		key:   h.keyFn(v),
		index: len(h.items),
	}
	h.items = append(h.items, handle)
	h.fix(handle.index)
	return handle
}

// Peek returns the element with the minimum key without removing it. It
// panics if the heap is empty.
func (h *Heap[K, V]) Peek() V {
	if h.IsEmpty() {
		panic("heap: Peek on empty heap")
	}
	return h.items[0].val
}

// Pop removes and returns the element with the minimum key. It panics if
// the heap is empty.
func (h *Heap[K, V]) Pop() V {
	if h.IsEmpty() {
		panic("heap: Pop on empty heap")
	}
	min := h.items[0]
	last := len(h.items) - 1
	if last == 0 {
		h.items = h.items[:0]
	} else {
		tail := h.items[last]
		h.items = h.items[:last]
		h.items[0] = tail
		tail.index = 0
		h.fix(0)
	}
	min.index = -1
	return min.val
}

// Adjust replaces the value referenced by handle with v, recomputes its
// key, and restores the heap invariant. It panics if handle no longer
// refers to a live element.
func (h *Heap[K, V]) Adjust(handle *Handle[K, V], v V) {
	if !handle.live() {
		panic("heap: Adjust on stale handle")
	}
	handle.val = v
	handle.key = h.keyFn(v)
	h.fix(handle.index)
}

// Remove deletes the element referenced by handle from the heap. It
// panics if handle no longer refers to a live element.
func (h *Heap[K, V]) Remove(handle *Handle[K, V]) {
	if !handle.live() {
		panic("heap: Remove on stale handle")
	}
	last := len(h.items) - 1
	lastHandle := h.items[last]
	h.items = h.items[:last]
	if lastHandle != handle {
		h.items[handle.index] = lastHandle
		lastHandle.index = handle.index
		h.fix(lastHandle.index)
	}
	handle.index = -1
}

// fix restores the heap invariant around index by bubbling the element at
// that position up and then down, mirroring the adjustable-heap reference
// algorithm: a single adjust operation covers both key increases and
// decreases because only one of the two bubble passes does any work.
func (h *Heap[K, V]) fix(index int) {
	handle := h.items[index]

	for index > 0 {
		parent := (index - 1) / 2
		if !cmp.Less(handle.key, h.items[parent].key) {
			break
		}
		h.items[index] = h.items[parent]
		h.items[index].index = index
		index = parent
	}

	for {
		left := 2*index + 1
		if left >= len(h.items) {
			break
		}
		smallest := left
		if right := left + 1; right < len(h.items) && cmp.Less(h.items[right].key, h.items[left].key) {
			smallest = right
		}
		if !cmp.Less(h.items[smallest].key, handle.key) {
			break
		}
		h.items[index] = h.items[smallest]
		h.items[index].index = index
		index = smallest
	}

	h.items[index] = handle
	handle.index = index
}
