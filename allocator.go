package chainy

import "github.com/mgnsk/chainy/internal/alloc"

// Allocator supplies and releases list nodes.
//
// Free must zero the node so that a released node holds no value.
type Allocator[V comparable] interface {
	Alloc() (*Node[V], error)
	Free(*Node[V])
}

// HeapAllocator returns an allocator that allocates every node from the heap.
func HeapAllocator[V comparable]() Allocator[V] {
	return alloc.Heap[Node[V]]{}
}

// PoolAllocator returns an allocator that recycles freed nodes.
func PoolAllocator[V comparable]() Allocator[V] {
	return &alloc.Pool[Node[V]]{}
}

// ArenaAllocator returns an allocator with room for capacity nodes.
// Alloc fails with ErrExhausted when all nodes are in use.
func ArenaAllocator[V comparable](capacity int) Allocator[V] {
	return alloc.NewArena[Node[V]](capacity)
}
