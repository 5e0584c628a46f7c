package celllist

import "iter"

// List is a head cell over caller-owned nodes. The zero value is an empty
// list.
type List[T any] struct {
	head Cell[*Node[T]]
}

// New returns an empty list.
func New[T any]() *List[T] {
	return &List[T]{}
}

// Push links node in front of the current head. The head is copied out into
// node's link cell, then node is written into the head cell. node must not
// already be part of the chain.
func (l *List[T]) Push(node *Node[T]) {
	node.next.Set(l.head.Get())
	l.head.Set(node)
}

// PopNode moves the head cell to the head's successor and returns the old
// head, or nil when empty. The popped node is not written to: its link
// still points into the chain, which other lists may share. Use
// Node.RemoveNext or SetNext(nil) to detach it.
func (l *List[T]) PopNode() *Node[T] {
	head := l.head.Get()
	if head == nil {
		return nil
	}
	l.head.Set(head.Next())
	return head
}

// Pop unlinks the head and returns its value.
func (l *List[T]) Pop() (T, bool) {
	head := l.PopNode()
	if head == nil {
		var zero T
		return zero, false
	}
	return head.value, true
}

// Peek returns the head value without unlinking it.
func (l *List[T]) Peek() (T, bool) {
	head := l.head.Get()
	if head == nil {
		var zero T
		return zero, false
	}
	return head.value, true
}

// Head returns the first node, or nil.
func (l *List[T]) Head() *Node[T] {
	return l.head.Get()
}

// IsEmpty reports whether the head cell is empty.
func (l *List[T]) IsEmpty() bool {
	return l.head.Get() == nil
}

// Len walks the chain. It does not return on a cyclic chain.
func (l *List[T]) Len() int {
	n := 0
	for cur := l.head.Get(); cur != nil; cur = cur.Next() {
		n++
	}
	return n
}

// All yields the values from head to tail. It does not end on a cyclic chain
// unless the consumer stops early.
func (l *List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for cur := l.head.Get(); cur != nil; cur = cur.Next() {
			if !yield(cur.value) {
				return
			}
		}
	}
}
