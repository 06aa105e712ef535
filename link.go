package chainy

import "iter"

// Link references a slot holding the link to a node: either the head of a
// list or the next field of one of its nodes.
//
// The zero Link references no slot.
type Link[V comparable] struct {
	slot **Node[V]
}

// IsZero reports whether k references no slot.
func (k Link[V]) IsZero() bool {
	return k.slot == nil
}

// Node returns the node held in the slot or nil.
func (k Link[V]) Node() *Node[V] {
	if k.slot == nil {
		return nil
	}
	return *k.slot
}

// Advance returns the value of the node held in the slot and moves k to
// that node's next slot. It returns false once the slot holds no node.
func (k *Link[V]) Advance() (v V, ok bool) {
	n := k.Node()
	if n == nil {
		return v, false
	}

	k.slot = &n.next

	return n.Value, true
}

// Values returns an iterator over the values from k to the end of the list.
// Ranging over it advances k.
func (k *Link[V]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		for {
			v, ok := k.Advance()
			if !ok || !yield(v) {
				return
			}
		}
	}
}
