package valuelist

// Chain is the constraint satisfied by End and every Node instantiation.
// It is sealed: only types from this package implement it.
type Chain[T any] interface {
	Len() int
	IsEmpty() bool
	Peek() (T, bool)
	appendValues(dst []T) []T
}

// End terminates a chain. Its zero value is the empty list.
type End[T any] struct{}

// Len is always 0.
func (End[T]) Len() int { return 0 }

// IsEmpty is always true.
func (End[T]) IsEmpty() bool { return true }

// Peek reports absence.
func (End[T]) Peek() (T, bool) {
	var zero T
	return zero, false
}

func (End[T]) appendValues(dst []T) []T { return dst }

// Node holds a value and the remainder of the chain inline.
type Node[T any, N Chain[T]] struct {
	value T
	next  N
}

// Fixed-depth list shapes. Anything deeper must be spelled out as a type.
type (
	Depth1[T any] = Node[T, End[T]]
	Depth2[T any] = Node[T, Depth1[T]]
	Depth3[T any] = Node[T, Depth2[T]]
	Depth4[T any] = Node[T, Depth3[T]]
	Depth5[T any] = Node[T, Depth4[T]]
	Depth6[T any] = Node[T, Depth5[T]]
	Depth7[T any] = Node[T, Depth6[T]]
	Depth8[T any] = Node[T, Depth7[T]]
)

// Leaf returns a one-element list.
func Leaf[T any](v T) Depth1[T] {
	return Depth1[T]{value: v}
}

// Push prepends v to chain. The result is one level deeper than chain, so
// the number of pushes a program performs is fixed when it is compiled.
func Push[T any, N Chain[T]](chain N, v T) Node[T, N] {
	return Node[T, N]{value: v, next: chain}
}

// Peek returns the head value. A Node is never empty.
func (n Node[T, N]) Peek() (T, bool) {
	return n.value, true
}

// Pop splits off the head. Only one level is removed per call because the
// remainder has a different type.
func (n Node[T, N]) Pop() (T, N) {
	return n.value, n.next
}

// Next returns a copy of the embedded remainder.
func (n Node[T, N]) Next() N {
	return n.next
}

// Len counts the values in the chain.
func (n Node[T, N]) Len() int {
	return 1 + n.next.Len()
}

// IsEmpty is always false.
func (n Node[T, N]) IsEmpty() bool { return false }

// Values copies the chain into a slice, head first.
func (n Node[T, N]) Values() []T {
	return n.appendValues(make([]T, 0, n.Len()))
}

func (n Node[T, N]) appendValues(dst []T) []T {
	return n.next.appendValues(append(dst, n.value))
}
