package ast

import (
	"fmt"

	"fortio.org/safecast"
)

// Arena is a generic typed arena: a flat, append-only vector handing
// out stable 1-based indices instead of pointers. Everything it holds
// is released at once when the arena is dropped; there is no
// per-element Free.
type Arena[T any] struct {
	data []*T
}

// NewArena returns an empty arena with capHint pre-allocated slots.
func NewArena[T any](capHint uint) *Arena[T] {
	return &Arena[T]{data: make([]*T, 0, capHint)}
}

// Allocate appends value and returns its 1-based index. The returned
// index stays valid for the arena's lifetime even as later Allocate
// calls grow the backing slice, since each element lives behind its
// own pointer.
func (a *Arena[T]) Allocate(value T) uint32 {
	elem := new(T)
	*elem = value
	a.data = append(a.data, elem)
	return a.Len()
}

// Get returns a pointer to the element at the given 1-based index, or
// nil for index 0 ("no node").
func (a *Arena[T]) Get(index uint32) *T {
	if index == 0 {
		return nil
	}
	return a.data[index-1]
}

// Len returns the number of allocated elements.
func (a *Arena[T]) Len() uint32 {
	n, err := safecast.Conv[uint32](len(a.data))
	if err != nil {
		panic(fmt.Errorf("ast: arena length overflow: %w", err))
	}
	return n
}
