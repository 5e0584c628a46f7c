// Package valuelist builds singly-linked lists without any indirection: each
// node embeds the rest of the chain by value.
//
// Because a Go struct cannot contain itself, the element after a node must
// have a different type than the node, so the depth of a list is part of its
// type. Push returns a type one level deeper than its input and Pop returns
// a type one level shallower. A list whose length is only known at run time
// therefore cannot be expressed here. This is the point of the package; it
// does not fall back to pointers.
//
//	l := valuelist.Push(valuelist.Push(valuelist.Leaf(1), 2), 3)
//	v, rest := l.Pop() // v == 3, rest is a Depth2[int]
//
// Strictly these are not linked lists at all: nothing is linked, the
// elements are inlined one inside the other.
package valuelist
