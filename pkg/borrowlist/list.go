package borrowlist

// List is a handle on a chain of borrowed nodes. It is a small value; copying
// it copies the handle, never the nodes.
type List[T any] struct {
	arena *Arena[T]
	head  Ref
	// bound is the shortest-lived scope among the nodes of the chain, which
	// is always the head's scope. Nil for an empty list.
	bound *Scope[T]
}

// New returns an empty list over arena.
func New[T any](arena *Arena[T]) List[T] {
	return List[T]{arena: arena}
}

// Prepend writes a node holding value into storage, linked to the current
// head, and returns a list headed by it. l itself is unchanged.
//
// The storage's scope must be nested inside (or equal to) every scope the
// chain already borrows from; otherwise the new node could outlive the
// node it references and ErrOutlivesStorage is returned.
func (l List[T]) Prepend(value T, storage NodeSlot[T]) (List[T], error) {
	if storage.arena != l.arena {
		return l, ErrForeignArena
	}
	sl := l.arena.lookup(storage.ref)
	if sl == nil {
		return l, ErrStaleSlot
	}
	if sl.state != slotReserved {
		return l, ErrSlotInUse
	}
	if !l.head.IsNil() && l.arena.lookup(l.head) == nil {
		return l, ErrDangling
	}
	if l.bound != nil && !l.bound.encloses(sl.scope) {
		return l, ErrOutlivesStorage
	}

	sl.value = value
	sl.next = l.head
	sl.state = slotLinked
	return List[T]{arena: l.arena, head: storage.ref, bound: sl.scope}, nil
}

// IsEmpty reports whether the list has no head. It does not check that the
// head is still valid.
func (l List[T]) IsEmpty() bool {
	return l.head.IsNil()
}

// Peek returns the head value, or ok == false for an empty list.
func (l List[T]) Peek() (value T, ok bool, err error) {
	if l.head.IsNil() {
		return value, false, nil
	}
	sl := l.arena.lookup(l.head)
	if sl == nil {
		return value, false, ErrDangling
	}
	return sl.value, true, nil
}

// Tail returns a handle on the rest of the chain. Nothing is released; the
// popped node stays in its scope's storage. The tail of an empty list is
// empty.
func (l List[T]) Tail() (List[T], error) {
	if l.head.IsNil() {
		return l, nil
	}
	sl := l.arena.lookup(l.head)
	if sl == nil {
		return l, ErrDangling
	}
	if sl.next.IsNil() {
		return New(l.arena), nil
	}
	next := l.arena.lookup(sl.next)
	if next == nil {
		return l, ErrDangling
	}
	return List[T]{arena: l.arena, head: sl.next, bound: next.scope}, nil
}

// Len walks the chain.
func (l List[T]) Len() (int, error) {
	n := 0
	err := l.walk(func(T) { n++ })
	return n, err
}

// Values copies the chain into a slice, head first.
func (l List[T]) Values() ([]T, error) {
	var out []T
	if err := l.walk(func(v T) { out = append(out, v) }); err != nil {
		return nil, err
	}
	return out, nil
}

func (l List[T]) walk(fn func(T)) error {
	for cur := l.head; !cur.IsNil(); {
		sl := l.arena.lookup(cur)
		if sl == nil {
			return ErrDangling
		}
		fn(sl.value)
		cur = sl.next
	}
	return nil
}
