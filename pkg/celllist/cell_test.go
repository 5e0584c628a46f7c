package celllist

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCell(t *testing.T) {
	a, b := NewNode(1), NewNode(2)
	c := NewCell(a)

	assert.Same(t, a, c.Get())
	assert.Same(t, a, c.Replace(b))
	assert.Same(t, b, c.Get())
	assert.Same(t, b, c.Take())
	assert.Nil(t, c.Get())

	c.Set(a)
	assert.Same(t, a, c.Get())
}

func TestCellGetCopies(t *testing.T) {
	c := NewCell([2]int{1, 2})
	v := c.Get()
	v[0] = 99
	assert.Equal(t, [2]int{1, 2}, c.Get(), "mutating the copy leaves the cell alone")
}
