package valuelist

import "unsafe"

// Probe reports the in-memory footprint of one list representation.
type Probe struct {
	Name     string  `json:"name"`
	Capacity int     `json:"capacity"` // values the representation can hold
	Bytes    uintptr `json:"bytes"`    // unsafe.Sizeof of the representation
}

// optional is a value plus a presence flag, the per-element cost of an
// array of optional slots.
type optional[T any] struct {
	value T
	ok    bool
}

// Probes measures fixed-depth int64 lists against an array of the same
// capacity, an array of optional slots, and a single pointer to a Depth8.
//
// Inlining costs one word per value plus the padding after the trailing
// End. Optional slots pay for a flag per element. A pointer costs one word
// regardless of what it points to, which is why every real linked list uses
// indirection.
func Probes() []Probe {
	return []Probe{
		{Name: "Depth1[int64]", Capacity: 1, Bytes: unsafe.Sizeof(Depth1[int64]{})},
		{Name: "Depth2[int64]", Capacity: 2, Bytes: unsafe.Sizeof(Depth2[int64]{})},
		{Name: "Depth4[int64]", Capacity: 4, Bytes: unsafe.Sizeof(Depth4[int64]{})},
		{Name: "Depth8[int64]", Capacity: 8, Bytes: unsafe.Sizeof(Depth8[int64]{})},
		{Name: "[8]int64", Capacity: 8, Bytes: unsafe.Sizeof([8]int64{})},
		{Name: "[8]optional[int64]", Capacity: 8, Bytes: unsafe.Sizeof([8]optional[int64]{})},
		{Name: "*Depth8[int64]", Capacity: 8, Bytes: unsafe.Sizeof((*Depth8[int64])(nil))},
	}
}
