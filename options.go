package chainy

// Option is a list configuration option.
type Option[V comparable] interface {
	apply(*listOptions[V])
}

type listOptions[V comparable] struct {
	alloc Allocator[V]
}

func newDefaultListOptions[V comparable]() listOptions[V] {
	return listOptions[V]{
		alloc: HeapAllocator[V](),
	}
}

// WithAllocator option configures the list with a custom node allocator.
func WithAllocator[V comparable](a Allocator[V]) Option[V] {
	return funcOption[V](func(opts *listOptions[V]) {
		if a == nil {
			panic("chainy: nil allocator")
		}
		opts.alloc = a
	})
}

// WithCapacity option configures the list with room for at most capacity nodes.
//
// The zero value configures unbounded capacity.
func WithCapacity[V comparable](capacity int) Option[V] {
	return funcOption[V](func(opts *listOptions[V]) {
		switch {
		case capacity == 0:
			opts.alloc = HeapAllocator[V]()

		case capacity > 0:
			opts.alloc = ArenaAllocator[V](capacity)

		default:
			panic("chainy: invalid capacity")
		}
	})
}

// WithPool option configures the list to recycle removed nodes.
func WithPool[V comparable]() Option[V] {
	return funcOption[V](func(opts *listOptions[V]) {
		opts.alloc = PoolAllocator[V]()
	})
}

type funcOption[V comparable] func(*listOptions[V])

func (o funcOption[V]) apply(opts *listOptions[V]) {
	o(opts)
}
