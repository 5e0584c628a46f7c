// Package celllist links caller-owned nodes through copy cells, so links can
// be rewired through a shared *Node without any exclusive access to the list.
//
// Every write to a link replaces the whole cell; nothing ever hands out the
// address of the value inside a cell. That works only because the value is
// cheap to copy: a *Node is one word. The element held by a node is never
// copied through a cell and may be any type.
//
// Nothing stops a caller from linking a node back into its own chain. A
// cyclic chain is a precondition violation: Len, All and popping until empty
// never terminate on one. No cycle detection is performed.
//
// None of the types here are safe for concurrent use.
package celllist

// Cell is a single-slot container read by copy and written by replacement.
// V should be small and cheap to copy.
type Cell[V any] struct {
	v V
}

// NewCell returns a cell holding v.
func NewCell[V any](v V) Cell[V] {
	return Cell[V]{v: v}
}

// Get returns a copy of the contents.
func (c *Cell[V]) Get() V {
	return c.v
}

// Set overwrites the contents.
func (c *Cell[V]) Set(v V) {
	c.v = v
}

// Replace stores v and returns the previous contents.
func (c *Cell[V]) Replace(v V) V {
	old := c.v
	c.v = v
	return old
}

// Take returns the contents and leaves the zero value behind.
func (c *Cell[V]) Take() V {
	var zero V
	return c.Replace(zero)
}
