/*
Package alloc implements fixed-size record allocators.
*/
package alloc

import (
	"errors"
	"sync"
)

// ErrExhausted is returned when an arena has no free records left.
var ErrExhausted = errors.New("arena exhausted")

// Heap allocates records from the garbage collected heap.
type Heap[T any] struct{}

// Alloc returns a new zero record.
func (Heap[T]) Alloc() (*T, error) {
	return new(T), nil
}

// Free zeroes the record.
func (Heap[T]) Free(p *T) {
	var zero T
	*p = zero
}

// Pool recycles released records.
type Pool[T any] struct {
	pool sync.Pool
}

// Alloc reserves a zero record.
func (p *Pool[T]) Alloc() (*T, error) {
	rec, ok := p.pool.Get().(*T)
	if !ok {
		rec = new(T)
	}

	return rec, nil
}

// Free zeroes the record and returns it to the pool.
func (p *Pool[T]) Free(rec *T) {
	var zero T
	*rec = zero
	p.pool.Put(rec)
}

// Arena allocates records from a single preallocated slab.
type Arena[T any] struct {
	slab []T
	free []*T
}

// NewArena creates an arena of capacity records.
func NewArena[T any](capacity int) *Arena[T] {
	if capacity <= 0 {
		panic("alloc: invalid arena capacity")
	}

	a := &Arena[T]{
		slab: make([]T, capacity),
		free: make([]*T, capacity),
	}

	// Hand out records in slab order.
	for i := range a.slab {
		a.free[capacity-1-i] = &a.slab[i]
	}

	return a
}

// Alloc takes a zero record from the free stack.
func (a *Arena[T]) Alloc() (*T, error) {
	n := len(a.free)
	if n == 0 {
		return nil, ErrExhausted
	}

	rec := a.free[n-1]
	a.free[n-1] = nil
	a.free = a.free[:n-1]

	return rec, nil
}

// Free zeroes the record and pushes it back on the free stack.
// The record must have been allocated from a and not freed since.
func (a *Arena[T]) Free(rec *T) {
	var zero T
	*rec = zero
	a.free = append(a.free, rec)
}

// Cap returns the number of records in the slab.
func (a *Arena[T]) Cap() int {
	return len(a.slab)
}

// Available returns the number of free records.
func (a *Arena[T]) Available() int {
	return len(a.free)
}
