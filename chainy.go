/*
Package chainy implements a singly linked list with a built-in cursor.

The cursor does not point at the current node. It references the slot that
links to it, which is either the list head or the next field of the
preceding node. Adding and removing at the cursor therefore needs no
pointer to a previous node.

A List is not safe for concurrent use.
*/
package chainy

import "iter"

// List is a singly linked list with a cursor.
//
// The zero value is a ready to use empty list. A List must not be copied
// after first use.
type List[V comparable] struct {
	head  *Node[V]
	link  **Node[V]
	alloc Allocator[V]
}

// New creates an empty list.
func New[V comparable](opts ...Option[V]) *List[V] {
	opt := newDefaultListOptions[V]()
	for _, o := range opts {
		o.apply(&opt)
	}

	return &List[V]{
		alloc: opt.alloc,
	}
}

// cursor returns the slot referenced by the cursor.
func (l *List[V]) cursor() **Node[V] {
	if l.link == nil {
		l.link = &l.head
	}
	return l.link
}

func (l *List[V]) allocator() Allocator[V] {
	if l.alloc == nil {
		l.alloc = HeapAllocator[V]()
	}
	return l.alloc
}

// Clear removes all nodes and moves the cursor to the head.
func (l *List[V]) Clear() {
	a := l.allocator()

	for n := l.head; n != nil; n = l.head {
		l.head = n.next
		a.Free(n)
	}

	l.link = &l.head
}

// Destroy clears the list and detaches its allocator.
// The list must not be used afterwards.
func (l *List[V]) Destroy() {
	l.Clear()
	l.alloc = nil
}

// Add inserts a value at the cursor. The new node becomes the current node.
//
// If the current node is the last node, the new node is linked after it.
// Otherwise the new node takes the place of the current node, which becomes
// its successor. On an empty list the new node becomes the head.
func (l *List[V]) Add(v V) error {
	n, err := l.allocator().Alloc()
	if err != nil {
		return err
	}

	n.Value = v

	slot := l.cursor()
	cur := *slot

	switch {
	case cur == nil:
		// Empty list or cursor past the last node.
		*slot = n

	case cur.next == nil:
		cur.next = n
		l.link = &cur.next

	default:
		n.next = cur
		*slot = n
	}

	return nil
}

// Remove removes every node holding v. It reports whether any node was removed.
//
// If the cursor referenced the next slot of a removed node, it is moved to
// the slot that linked to the removed node.
func (l *List[V]) Remove(v V) bool {
	a := l.allocator()
	link := l.cursor()
	prev := &l.head
	found := false

	for n := l.head; n != nil; n = *prev {
		if n.Value != v {
			prev = &n.next
			continue
		}

		if link == &n.next {
			link = prev
		}

		*prev = n.next
		a.Free(n)
		found = true
	}

	l.link = link

	return found
}

// Current returns the current node or nil.
func (l *List[V]) Current() *Node[V] {
	return *l.cursor()
}

// Data returns the value of the current node.
// It returns false if there is no current node.
func (l *List[V]) Data() (v V, ok bool) {
	n := l.Current()
	if n == nil {
		return v, false
	}
	return n.Value, true
}

// Next returns the node after the current node or nil.
func (l *List[V]) Next() *Node[V] {
	if n := l.Current(); n != nil {
		return n.next
	}
	return nil
}

// ToNext moves the cursor to the next node and returns it.
// At the last node the cursor stays and ToNext returns nil.
func (l *List[V]) ToNext() *Node[V] {
	cur := l.Current()
	if cur == nil || cur.next == nil {
		return nil
	}

	l.link = &cur.next

	return cur.next
}

// First returns the first node or nil.
func (l *List[V]) First() *Node[V] {
	return l.head
}

// ToFirst moves the cursor to the head and returns the first node or nil.
func (l *List[V]) ToFirst() *Node[V] {
	l.link = &l.head
	return l.head
}

// AtFirst reports whether the current node is the first node.
func (l *List[V]) AtFirst() bool {
	cur := l.Current()
	return cur != nil && cur == l.head
}

// Last returns the last node reachable from the cursor or nil.
func (l *List[V]) Last() *Node[V] {
	n := l.Current()
	if n == nil {
		return nil
	}

	for n.next != nil {
		n = n.next
	}

	return n
}

// ToLast advances the cursor to the last node and returns it.
//
// The cursor moves forward from its current position. If there is no
// current node the cursor stays and ToLast returns nil.
func (l *List[V]) ToLast() *Node[V] {
	link := l.cursor()
	n := *link
	if n == nil {
		return nil
	}

	for n.next != nil {
		link = &n.next
		n = n.next
	}

	l.link = link

	return n
}

// AtLast reports whether the current node is the last node.
func (l *List[V]) AtLast() bool {
	cur := l.Current()
	return cur != nil && cur.next == nil
}

// Head returns the link to the head slot.
func (l *List[V]) Head() Link[V] {
	return Link[V]{slot: &l.head}
}

// Cursor returns the link referenced by the cursor.
func (l *List[V]) Cursor() Link[V] {
	return Link[V]{slot: l.cursor()}
}

// SetLink moves the cursor to k. The zero Link moves the cursor to the head.
//
// k must belong to l and must not reference a removed node.
func (l *List[V]) SetLink(k Link[V]) {
	l.link = k.slot
}

// Find returns the link to the first node for which cmp(node.Value, v)
// returns 0. It returns false if there is no such node.
func (l *List[V]) Find(cmp func(a, b V) int, v V) (Link[V], bool) {
	prev := &l.head

	for n := l.head; n != nil; n = n.next {
		if cmp(n.Value, v) == 0 {
			return Link[V]{slot: prev}, true
		}
		prev = &n.next
	}

	return Link[V]{}, false
}

// Length returns the number of nodes in the list.
func (l *List[V]) Length() int {
	length := 0
	for n := l.head; n != nil; n = n.next {
		length++
	}
	return length
}

// IsEmpty reports whether the list has no nodes.
func (l *List[V]) IsEmpty() bool {
	return l.head == nil
}

// Do calls function f on each node of the list, in forward order.
// If f returns false, Do stops the iteration.
// f must not change l.
func (l *List[V]) Do(f func(n *Node[V]) bool) {
	for n := l.head; n != nil; n = n.next {
		if !f(n) {
			return
		}
	}
}

// All returns an iterator over the values of the list, in forward order.
func (l *List[V]) All() iter.Seq[V] {
	return func(yield func(V) bool) {
		k := l.Head()
		for v := range k.Values() {
			if !yield(v) {
				return
			}
		}
	}
}

// EachWith calls fn on each node of l, in forward order, passing env along.
// The cursor does not move.
func EachWith[V comparable, E any](l *List[V], fn func(n *Node[V], env E), env E) {
	l.Do(func(n *Node[V]) bool {
		fn(n, env)
		return true
	})
}
