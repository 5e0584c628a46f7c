// Package borrowlist links nodes by borrowed references: the list never owns
// or allocates the storage of its nodes, the caller's scope does.
//
// Go cannot prove at compile time that a reference does not outlive the
// storage it points to, so storage lives in an Arena and references are
// generation-tagged handles. The lifetime rule is checked twice:
//
//   - at construction, Prepend refuses storage whose scope is not nested
//     inside the scope of the node it would point to (ErrOutlivesStorage);
//   - at use, any handle whose slot has been released since it was taken
//     is rejected (ErrDangling).
//
// This is weaker than a borrow checker: a bad program is caught when it
// runs, not when it builds.
package borrowlist

import "errors"

// Lifetime and storage errors.
var (
	ErrOutlivesStorage = errors.New("node would outlive the storage it references")
	ErrDangling        = errors.New("list references released storage")
	ErrStaleSlot       = errors.New("node slot has been released")
	ErrSlotInUse       = errors.New("node slot already holds a node")
	ErrScopeClosed     = errors.New("scope is closed")
	ErrForeignArena    = errors.New("node slot belongs to another arena")
)

// Ref is a generation-tagged handle to a slot. The zero Ref is the absent
// link.
type Ref struct {
	index uint32 // slot index + 1
	gen   uint32
}

// IsNil reports whether r is the absent link.
func (r Ref) IsNil() bool { return r.index == 0 }

type slotState uint8

const (
	slotFree slotState = iota
	slotReserved
	slotLinked
)

type slot[T any] struct {
	value T
	next  Ref
	gen   uint32
	state slotState
	scope *Scope[T]
}

// Arena holds node storage for every scope opened on it. It is not safe for
// concurrent use.
type Arena[T any] struct {
	slots []slot[T]
	free  []uint32
	root  *Scope[T]
}

// NewArena returns an arena with an open root scope.
func NewArena[T any]() *Arena[T] {
	a := &Arena[T]{}
	a.root = &Scope[T]{arena: a}
	return a
}

// Root returns the outermost scope. Storage reserved from it lives until the
// root is closed.
func (a *Arena[T]) Root() *Scope[T] {
	return a.root
}

// Live returns the number of slots currently reserved or linked.
func (a *Arena[T]) Live() int {
	return len(a.slots) - len(a.free)
}

func (a *Arena[T]) reserve(s *Scope[T]) Ref {
	var idx uint32
	if n := len(a.free); n > 0 {
		idx = a.free[n-1]
		a.free = a.free[:n-1]
	} else {
		a.slots = append(a.slots, slot[T]{})
		idx = uint32(len(a.slots) - 1)
	}
	sl := &a.slots[idx]
	sl.state = slotReserved
	sl.scope = s
	return Ref{index: idx + 1, gen: sl.gen}
}

func (a *Arena[T]) release(r Ref) {
	sl := &a.slots[r.index-1]
	var zero T
	sl.value = zero
	sl.next = Ref{}
	sl.state = slotFree
	sl.scope = nil
	sl.gen++
	a.free = append(a.free, r.index-1)
}

// lookup returns the slot behind r, or nil when r is stale.
func (a *Arena[T]) lookup(r Ref) *slot[T] {
	if r.IsNil() || int(r.index) > len(a.slots) {
		return nil
	}
	sl := &a.slots[r.index-1]
	if sl.gen != r.gen || sl.state == slotFree {
		return nil
	}
	return sl
}

// Scope owns the storage reserved through it. Scopes nest; a node may only
// reference nodes whose scope encloses its own.
type Scope[T any] struct {
	arena    *Arena[T]
	parent   *Scope[T]
	children []*Scope[T]
	owned    []Ref
	closed   bool
}

// Enter opens a scope nested inside s.
func (s *Scope[T]) Enter() (*Scope[T], error) {
	if s.closed {
		return nil, ErrScopeClosed
	}
	child := &Scope[T]{arena: s.arena, parent: s}
	s.children = append(s.children, child)
	return child, nil
}

// Slot reserves storage for one node, owned by s.
func (s *Scope[T]) Slot() (NodeSlot[T], error) {
	if s.closed {
		return NodeSlot[T]{}, ErrScopeClosed
	}
	r := s.arena.reserve(s)
	s.owned = append(s.owned, r)
	return NodeSlot[T]{arena: s.arena, ref: r}, nil
}

// Close ends the scope: open child scopes are closed first, then every slot
// s owns is released. Lists that still reference those slots report
// ErrDangling from then on. Closing twice is a no-op.
func (s *Scope[T]) Close() {
	if s.closed {
		return
	}
	for i := len(s.children) - 1; i >= 0; i-- {
		s.children[i].Close()
	}
	for _, r := range s.owned {
		s.arena.release(r)
	}
	s.children = nil
	s.owned = nil
	s.closed = true
}

// Closed reports whether Close has run.
func (s *Scope[T]) Closed() bool { return s.closed }

// encloses reports whether other is s or nested inside s.
func (s *Scope[T]) encloses(other *Scope[T]) bool {
	for cur := other; cur != nil; cur = cur.parent {
		if cur == s {
			return true
		}
	}
	return false
}

// NodeSlot is caller-provided backing storage for a single node.
type NodeSlot[T any] struct {
	arena *Arena[T]
	ref   Ref
}
