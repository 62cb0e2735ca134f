package heap_test

import (
	"math/rand"
	"strconv"
	"testing"

	"github.com/msg555/mtg/heap"
)

// BenchmarkHeap_PushPop measures amortized cost of a push/pop cycle across
// a range of heap sizes.
func BenchmarkHeap_PushPop(b *testing.B) {
	for _, n := range []int{100, 1000, 10000} {
		b.Run(strconv.Itoa(n), func(b *testing.B) {
			r := rand.New(rand.NewSource(1))
			h := heap.NewOrdered[int]()
			for i := 0; i < n; i++ {
				h.Push(r.Intn(1 << 30))
			}
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				h.Push(r.Intn(1 << 30))
				h.Pop()
			}
		})
	}
}

// BenchmarkHeap_Adjust measures the cost of repeatedly decreasing a live
// handle's key, the access pattern used by Dijkstra-style frontiers.
func BenchmarkHeap_Adjust(b *testing.B) {
	r := rand.New(rand.NewSource(2))
	h := heap.NewOrdered[int]()
	handles := make([]*heap.Handle[int, int], 0, 1000)
	for i := 0; i < 1000; i++ {
		handles = append(handles, h.Push(r.Intn(1<<30)))
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		handle := handles[i%len(handles)]
		h.Adjust(handle, r.Intn(1<<30))
	}
}
