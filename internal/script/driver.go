package script

import (
	"errors"
	"fmt"

	"github.com/mesh-intelligence/ownlists/pkg/borrowlist"
	"github.com/mesh-intelligence/ownlists/pkg/celllist"
	"github.com/mesh-intelligence/ownlists/pkg/ownedlist"
	"github.com/mesh-intelligence/ownlists/pkg/types"
	"github.com/mesh-intelligence/ownlists/pkg/valuelist"
)

// ErrDepthExceeded is returned by the value driver when a push would need a
// list type deeper than the one it was compiled with.
var ErrDepthExceeded = errors.New("value list depth is fixed at compile time")

// Driver adapts one list variant to the script runner. It exists only so the
// CLI can replay the same script on each variant; the list packages share no
// interface.
type Driver interface {
	Push(v int64) error
	Pop() (int64, bool, error)
	Peek() (int64, bool, error)
	Len() (int, error)
	IsEmpty() bool
}

// NewDriver returns a fresh, empty driver for the named variant.
func NewDriver(variant string) (Driver, error) {
	switch variant {
	case types.VariantValue:
		return &valueDriver{}, nil
	case types.VariantBorrowed:
		arena := borrowlist.NewArena[int64]()
		return &borrowedDriver{arena: arena, list: borrowlist.New(arena)}, nil
	case types.VariantCell:
		return &cellDriver{list: celllist.New[int64]()}, nil
	case types.VariantOwned:
		return &ownedDriver{list: ownedlist.New[int64]()}, nil
	default:
		return nil, fmt.Errorf("%q: %w", variant, types.ErrVariantUnknown)
	}
}

// valueDriver holds at most one element: a runtime-sized script cannot pick
// a deeper list type.
type valueDriver struct {
	one  valuelist.Depth1[int64]
	full bool
}

func (d *valueDriver) Push(v int64) error {
	if d.full {
		return ErrDepthExceeded
	}
	d.one = valuelist.Push(valuelist.End[int64]{}, v)
	d.full = true
	return nil
}

func (d *valueDriver) Pop() (int64, bool, error) {
	if !d.full {
		return 0, false, nil
	}
	v, _ := d.one.Pop()
	d.one = valuelist.Depth1[int64]{}
	d.full = false
	return v, true, nil
}

func (d *valueDriver) Peek() (int64, bool, error) {
	if !d.full {
		return 0, false, nil
	}
	v, ok := d.one.Peek()
	return v, ok, nil
}

func (d *valueDriver) Len() (int, error) {
	if !d.full {
		return 0, nil
	}
	return d.one.Len(), nil
}

func (d *valueDriver) IsEmpty() bool { return !d.full }

// borrowedDriver reserves every node from the arena's root scope, which
// outlives the driver.
type borrowedDriver struct {
	arena *borrowlist.Arena[int64]
	list  borrowlist.List[int64]
}

func (d *borrowedDriver) Push(v int64) error {
	slot, err := d.arena.Root().Slot()
	if err != nil {
		return err
	}
	l, err := d.list.Prepend(v, slot)
	if err != nil {
		return err
	}
	d.list = l
	return nil
}

func (d *borrowedDriver) Pop() (int64, bool, error) {
	v, ok, err := d.list.Peek()
	if err != nil || !ok {
		return v, ok, err
	}
	tail, err := d.list.Tail()
	if err != nil {
		return 0, false, err
	}
	d.list = tail
	return v, true, nil
}

func (d *borrowedDriver) Peek() (int64, bool, error) { return d.list.Peek() }
func (d *borrowedDriver) Len() (int, error)          { return d.list.Len() }
func (d *borrowedDriver) IsEmpty() bool              { return d.list.IsEmpty() }

// cellDriver allocates the node storage the cell list expects its caller to
// own.
type cellDriver struct {
	list *celllist.List[int64]
}

func (d *cellDriver) Push(v int64) error {
	d.list.Push(celllist.NewNode(v))
	return nil
}

func (d *cellDriver) Pop() (int64, bool, error) {
	v, ok := d.list.Pop()
	return v, ok, nil
}

func (d *cellDriver) Peek() (int64, bool, error) {
	v, ok := d.list.Peek()
	return v, ok, nil
}

func (d *cellDriver) Len() (int, error) { return d.list.Len(), nil }
func (d *cellDriver) IsEmpty() bool     { return d.list.IsEmpty() }

type ownedDriver struct {
	list *ownedlist.List[int64]
}

func (d *ownedDriver) Push(v int64) error {
	d.list.Push(v)
	return nil
}

func (d *ownedDriver) Pop() (int64, bool, error) {
	v, ok := d.list.Pop()
	return v, ok, nil
}

func (d *ownedDriver) Peek() (int64, bool, error) {
	v, ok := d.list.Peek()
	return v, ok, nil
}

func (d *ownedDriver) Len() (int, error) { return d.list.Len(), nil }
func (d *ownedDriver) IsEmpty() bool     { return d.list.IsEmpty() }
