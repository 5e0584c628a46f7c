package celllist

import "iter"

// Node is a value plus a rewritable link. The value is fixed at creation;
// only the link changes.
type Node[T any] struct {
	value T
	next  Cell[*Node[T]]
}

// NewNode returns an unlinked node. The caller owns it and must keep it
// alive for as long as any list links to it.
func NewNode[T any](value T) *Node[T] {
	return &Node[T]{value: value}
}

// Value returns the node's element.
func (n *Node[T]) Value() T {
	return n.value
}

// Next returns the following node, or nil.
func (n *Node[T]) Next() *Node[T] {
	return n.next.Get()
}

// SetNext relinks n and returns the node it used to point at.
func (n *Node[T]) SetNext(next *Node[T]) *Node[T] {
	return n.next.Replace(next)
}

// Tail returns the last node of the chain starting at n.
func (n *Node[T]) Tail() *Node[T] {
	cur := n
	for next := cur.Next(); next != nil; next = cur.Next() {
		cur = next
	}
	return cur
}

// Insert splices the chain starting at item between n and its successor.
//
//	n -> a        item -> x -> y
//	n -> item -> x -> y -> a
//
// A nil item is a no-op.
func (n *Node[T]) Insert(item *Node[T]) {
	if item == nil {
		return
	}
	old := n.next.Replace(item)
	item.Tail().next.Set(old)
}

// Replace swaps n's successor for item and returns the detached node. When
// chain is true the rest of the old chain is moved to item's tail and the
// returned node comes back unlinked; otherwise the old chain stays attached
// to the returned node. A nil item with chain set links the rest straight
// to n, the same as RemoveNext.
func (n *Node[T]) Replace(item *Node[T], chain bool) *Node[T] {
	old := n.next.Replace(item)
	if chain {
		var rest *Node[T]
		if old != nil {
			rest = old.next.Take()
		}
		if item == nil {
			n.next.Set(rest)
		} else {
			item.Tail().next.Set(rest)
		}
	}
	return old
}

// Append links item after the last node of n's chain. A nil item is a no-op.
func (n *Node[T]) Append(item *Node[T]) {
	n.Tail().Insert(item)
}

// RemoveNext unlinks n's successor and returns it detached.
//
//	n -> b -> c   becomes   n -> c, returns b
func (n *Node[T]) RemoveNext() *Node[T] {
	removed := n.next.Take()
	if removed != nil {
		n.next.Set(removed.next.Take())
	}
	return removed
}

// All yields the values from n to the end of its chain.
func (n *Node[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for cur := n; cur != nil; cur = cur.Next() {
			if !yield(cur.value) {
				return
			}
		}
	}
}
