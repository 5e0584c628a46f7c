package celllist

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chain(values ...string) *Node[string] {
	var head *Node[string]
	for i := len(values) - 1; i >= 0; i-- {
		n := NewNode(values[i])
		n.SetNext(head)
		head = n
	}
	return head
}

func TestListEmpty(t *testing.T) {
	var l List[int]

	assert.True(t, l.IsEmpty())
	assert.Equal(t, 0, l.Len())
	_, ok := l.Peek()
	assert.False(t, ok)

	for range 2 {
		v, ok := l.Pop()
		assert.False(t, ok)
		assert.Zero(t, v)
		assert.True(t, l.IsEmpty())
	}
	assert.Nil(t, l.PopNode())
}

func TestListPushPopLIFO(t *testing.T) {
	l := New[int]()
	nodes := []*Node[int]{NewNode(1), NewNode(2), NewNode(3)}
	for i, n := range nodes {
		l.Push(n)
		assert.Equal(t, i+1, l.Len())
	}

	v, ok := l.Peek()
	require.True(t, ok)
	assert.Equal(t, 3, v)
	assert.Equal(t, []int{3, 2, 1}, slices.Collect(l.All()))

	var got []int
	for {
		v, ok := l.Pop()
		if !ok {
			break
		}
		got = append(got, v)
	}
	assert.Equal(t, []int{3, 2, 1}, got)
	assert.True(t, l.IsEmpty())
	assert.Equal(t, 0, l.Len())
}

func TestListLenAfterPops(t *testing.T) {
	l := New[int]()
	for i := range 5 {
		l.Push(NewNode(i))
	}
	for j := 1; j <= 3; j++ {
		_, ok := l.Pop()
		require.True(t, ok)
		assert.Equal(t, 5-j, l.Len())
	}
}

func TestListPeekIsPure(t *testing.T) {
	l := New[string]()
	l.Push(NewNode("a"))

	a, _ := l.Peek()
	b, _ := l.Peek()
	assert.Equal(t, "a", a)
	assert.Equal(t, a, b)
	assert.Equal(t, 1, l.Len())
}

func TestPopNodeLeavesNodeLinked(t *testing.T) {
	l := New[int]()
	first, second := NewNode(1), NewNode(2)
	l.Push(first)
	l.Push(second)

	popped := l.PopNode()
	assert.Same(t, second, popped)
	assert.Same(t, first, popped.Next(), "pop does not write to the node")
	assert.Same(t, first, l.Head())

	// Pushing the node again relinks it in front of the current head.
	l.Push(popped)
	assert.Equal(t, []int{2, 1}, slices.Collect(l.All()))
}

func TestPopDoesNotCutSharedChain(t *testing.T) {
	a, b := NewNode(1), NewNode(2)
	l1 := New[int]()
	l1.Push(b)
	l1.Push(a)
	l2 := New[int]()
	l2.head.Set(a)

	v, ok := l1.Pop()
	require.True(t, ok)
	assert.Equal(t, 1, v)

	assert.Equal(t, []int{2}, slices.Collect(l1.All()))
	assert.Equal(t, []int{1, 2}, slices.Collect(l2.All()))

	c := NewNode(0)
	c.SetNext(a)
	l3 := New[int]()
	l3.head.Set(c)
	_, ok = l2.Pop()
	require.True(t, ok)
	assert.Equal(t, []int{0, 1, 2}, slices.Collect(l3.All()))
}

func TestListSharesCallerNodes(t *testing.T) {
	l := New[int]()
	n := NewNode(5)
	l.Push(n)

	assert.Same(t, n, l.Head())
	other := NewNode(6)
	n.SetNext(other)
	assert.Equal(t, []int{5, 6}, slices.Collect(l.All()), "rewiring through the node is visible to the list")
}

func TestNodeTailAndAppend(t *testing.T) {
	head := chain("a", "b")
	assert.Equal(t, "b", head.Tail().Value())

	head.Append(chain("c", "d"))
	assert.Equal(t, []string{"a", "b", "c", "d"}, slices.Collect(head.All()))
	assert.Equal(t, "d", head.Tail().Value())
}

func TestNodeInsert(t *testing.T) {
	head := chain("a", "b")
	head.Insert(chain("x", "y"))

	assert.Equal(t, []string{"a", "x", "y", "b"}, slices.Collect(head.All()))
}

func TestNodeReplace(t *testing.T) {
	t.Run("chained", func(t *testing.T) {
		head := chain("a", "b", "c")
		old := head.Replace(NewNode("x"), true)

		require.NotNil(t, old)
		assert.Equal(t, "b", old.Value())
		assert.Nil(t, old.Next())
		assert.Equal(t, []string{"a", "x", "c"}, slices.Collect(head.All()))
	})

	t.Run("unchained", func(t *testing.T) {
		head := chain("a", "b", "c")
		old := head.Replace(NewNode("x"), false)

		assert.Equal(t, []string{"b", "c"}, slices.Collect(old.All()))
		assert.Equal(t, []string{"a", "x"}, slices.Collect(head.All()))
	})

	t.Run("no successor", func(t *testing.T) {
		head := NewNode("a")
		old := head.Replace(NewNode("x"), true)

		assert.Nil(t, old)
		assert.Equal(t, []string{"a", "x"}, slices.Collect(head.All()))
	})
}

func TestNodeNilItem(t *testing.T) {
	head := chain("a", "b", "c")

	head.Insert(nil)
	head.Append(nil)
	assert.Equal(t, []string{"a", "b", "c"}, slices.Collect(head.All()))

	detached := head.Replace(nil, false)
	assert.Equal(t, []string{"b", "c"}, slices.Collect(detached.All()))
	assert.Equal(t, []string{"a"}, slices.Collect(head.All()))

	head = chain("a", "b", "c")
	old := head.Replace(nil, true)
	require.NotNil(t, old)
	assert.Equal(t, "b", old.Value())
	assert.Nil(t, old.Next())
	assert.Equal(t, []string{"a", "c"}, slices.Collect(head.All()))
}

func TestNodeRemoveNext(t *testing.T) {
	head := chain("a", "b", "c")

	removed := head.RemoveNext()
	require.NotNil(t, removed)
	assert.Equal(t, "b", removed.Value())
	assert.Nil(t, removed.Next())
	assert.Equal(t, []string{"a", "c"}, slices.Collect(head.All()))

	head.RemoveNext()
	assert.Nil(t, head.RemoveNext())
	assert.Equal(t, []string{"a"}, slices.Collect(head.All()))
}

func TestAllStopsEarly(t *testing.T) {
	head := chain("a", "b", "c")
	var got []string
	for v := range head.All() {
		got = append(got, v)
		if v == "b" {
			break
		}
	}
	assert.Equal(t, []string{"a", "b"}, got)
}

// A two-node cycle is representable. Only operations that take a bounded
// number of steps are exercised; Len and pop-until-empty would not return.
func TestTwoCycleSingleSteps(t *testing.T) {
	a, b := NewNode(1), NewNode(2)
	l := New[int]()
	l.Push(b)
	l.Push(a)
	b.SetNext(a)

	v, ok := l.Peek()
	require.True(t, ok)
	assert.Equal(t, 1, v)
	assert.Same(t, a, b.Next())

	var seen []int
	for v := range l.All() {
		seen = append(seen, v)
		if len(seen) == 5 {
			break
		}
	}
	assert.Equal(t, []int{1, 2, 1, 2, 1}, seen)

	v, ok = l.Pop()
	require.True(t, ok)
	assert.Equal(t, 1, v)
	assert.Same(t, b, l.Head())
	assert.Same(t, b, a.Next(), "pop leaves the cycle intact")

	v, ok = l.Peek()
	require.True(t, ok)
	assert.Equal(t, 2, v)

	// Unlinking explicitly breaks the cycle: b -> a -> end.
	assert.Same(t, b, a.SetNext(nil))
	assert.Equal(t, 2, l.Len())
}
