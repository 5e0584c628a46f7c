// Package ownedlist is a singly-linked stack whose nodes are owned by the
// list alone. Nodes are never exposed, so exactly one owner exists for each
// of them; removing a node from the chain destroys it.
//
// Releasing a list walks the chain in a loop, one node at a time, instead
// of recursing once per element.
//
// A List is not safe for concurrent use.
package ownedlist

import "iter"

type node[T any] struct {
	value T
	next  *node[T]
}

// List owns a chain of heap nodes. The zero value is an empty list.
type List[T any] struct {
	head    *node[T]
	size    int
	release func(T)
}

// Option configures a List.
type Option[T any] func(*List[T])

// WithReleaseHook registers fn to be called once for every node the list
// destroys, by Pop or by Clear, with the value the node held.
func WithReleaseHook[T any](fn func(T)) Option[T] {
	return func(l *List[T]) {
		l.release = fn
	}
}

// New returns an empty list.
func New[T any](opts ...Option[T]) *List[T] {
	l := &List[T]{}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// FromSlice returns a list holding values in order, values[0] at the head.
// The chain is built back to front so each node is linked exactly once.
func FromSlice[T any](values []T, opts ...Option[T]) *List[T] {
	l := New(opts...)
	for i := len(values) - 1; i >= 0; i-- {
		l.Push(values[i])
	}
	return l
}

// Push moves the current chain under a new head holding v.
func (l *List[T]) Push(v T) {
	l.head = &node[T]{value: v, next: l.head}
	l.size++
}

// Pop detaches the head, hands the rest of the chain back to the list and
// returns the head's value. The detached node is destroyed.
func (l *List[T]) Pop() (T, bool) {
	n := l.detachHead()
	if n == nil {
		var zero T
		return zero, false
	}
	v := n.value
	l.destroy(n)
	return v, true
}

// Peek returns the head value.
func (l *List[T]) Peek() (T, bool) {
	if l.head == nil {
		var zero T
		return zero, false
	}
	return l.head.value, true
}

// PeekMut returns a pointer to the head value, or nil when the list is
// empty. The pointer is valid until the head is popped.
func (l *List[T]) PeekMut() *T {
	if l.head == nil {
		return nil
	}
	return &l.head.value
}

// Len returns the number of nodes.
func (l *List[T]) Len() int {
	return l.size
}

// IsEmpty reports whether the list has no nodes.
func (l *List[T]) IsEmpty() bool {
	return l.head == nil
}

// Clear releases the whole chain, head first, in a loop.
func (l *List[T]) Clear() {
	for n := l.detachHead(); n != nil; n = l.detachHead() {
		l.destroy(n)
	}
}

// Append adds v after the last node. It walks the chain, so it is O(n).
func (l *List[T]) Append(v T) {
	n := &node[T]{value: v}
	if l.head == nil {
		l.head = n
	} else {
		l.tail().next = n
	}
	l.size++
}

// Concat moves other's chain onto the end of l. other is left empty and
// keeps its release hook. The moved nodes now belong to l: they are released
// through l's hook, not other's.
func (l *List[T]) Concat(other *List[T]) {
	if other == l || other.head == nil {
		return
	}
	if l.head == nil {
		l.head = other.head
	} else {
		l.tail().next = other.head
	}
	l.size += other.size
	other.head = nil
	other.size = 0
}

// ConcatCopy appends copies of other's values to l, leaving other as it was.
func (l *List[T]) ConcatCopy(other *List[T]) {
	if other.head == nil {
		return
	}
	var first, last *node[T]
	for cur := other.head; cur != nil; cur = cur.next {
		n := &node[T]{value: cur.value}
		if first == nil {
			first = n
		} else {
			last.next = n
		}
		last = n
	}
	if l.head == nil {
		l.head = first
	} else {
		l.tail().next = first
	}
	l.size += other.size
}

// ToSlice copies the values, head first.
func (l *List[T]) ToSlice() []T {
	out := make([]T, 0, l.size)
	for cur := l.head; cur != nil; cur = cur.next {
		out = append(out, cur.value)
	}
	return out
}

// All yields the values from head to tail.
func (l *List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for cur := l.head; cur != nil; cur = cur.next {
			if !yield(cur.value) {
				return
			}
		}
	}
}

// detachHead unlinks the head node from the list and from its successor.
func (l *List[T]) detachHead() *node[T] {
	n := l.head
	if n == nil {
		return nil
	}
	l.head = n.next
	n.next = nil
	l.size--
	return n
}

// destroy drops the last reference to a detached node.
func (l *List[T]) destroy(n *node[T]) {
	if l.release != nil {
		l.release(n.value)
	}
	var zero T
	n.value = zero
}

// tail returns the last node. The list must not be empty.
func (l *List[T]) tail() *node[T] {
	cur := l.head
	for cur.next != nil {
		cur = cur.next
	}
	return cur
}
