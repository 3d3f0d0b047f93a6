package hybridvec

import (
	"fmt"
	"slices"
)

// Vec is a growable sequence with an inline capacity fixed at construction.
// The zero value is an empty Vec with inline capacity 0, so its first Push
// spills.
type Vec[T any] struct {
	store    storage[T]
	capacity int
}

// New returns an empty inline Vec with room for capacity elements before it
// spills. It panics if capacity is negative.
func New[T any](capacity int) *Vec[T] {
	checkCapacity(capacity)
	return &Vec[T]{store: newInline[T](capacity), capacity: capacity}
}

// FromFixed returns a Vec holding a copy of items. It stays inline when
// len(items) <= capacity and starts spilled otherwise.
func FromFixed[T any](capacity int, items ...T) *Vec[T] {
	checkCapacity(capacity)
	if len(items) > capacity {
		return &Vec[T]{store: &spilled[T]{items: slices.Clone(items)}, capacity: capacity}
	}
	s := newInline[T](capacity)
	s.n = copy(s.buf, items)
	return &Vec[T]{store: s, capacity: capacity}
}

// FromSlice returns a spilled Vec that takes ownership of items, whatever
// its length. The caller must not use items afterwards.
func FromSlice[T any](capacity int, items []T) *Vec[T] {
	checkCapacity(capacity)
	return &Vec[T]{store: &spilled[T]{items: items}, capacity: capacity}
}

func checkCapacity(capacity int) {
	if capacity < 0 {
		panic(fmt.Sprintf("hybridvec: negative inline capacity %d", capacity))
	}
}

// storage returns the active representation for reading. A zero Vec gets a
// fresh empty view and is left untouched, so concurrent readers of a zero
// value do not write to it.
func (v *Vec[T]) storage() storage[T] {
	if v.store == nil {
		return &inline[T]{}
	}
	return v.store
}

// mutable returns the active representation, installing the inline buffer
// of a zero Vec first.
func (v *Vec[T]) mutable() storage[T] {
	if v.store == nil {
		v.store = newInline[T](v.capacity)
	}
	return v.store
}

// Len returns the number of live elements.
func (v *Vec[T]) Len() int {
	return v.storage().length()
}

// Cap returns the inline capacity the Vec was created with.
func (v *Vec[T]) Cap() int {
	return v.capacity
}

// Spilled reports whether the elements have moved to the heap.
func (v *Vec[T]) Spilled() bool {
	_, ok := v.storage().(*spilled[T])
	return ok
}

// AsSlice returns the live elements. The slice aliases the Vec and is valid
// until the next mutating call.
func (v *Vec[T]) AsSlice() []T {
	return v.storage().live()
}

// AsMutSlice returns the live elements for in-place modification. Writes
// through the slice are visible in the Vec; appends are not.
func (v *Vec[T]) AsMutSlice() []T {
	return v.storage().live()
}

// At returns the element at index. Like slice indexing it panics, with an
// *IndexError, when index is outside [0, Len()).
func (v *Vec[T]) At(index int) T {
	value, err := v.Get(index)
	if err != nil {
		panic(err)
	}
	return value
}

// Get returns the element at index or an *IndexError.
func (v *Vec[T]) Get(index int) (T, error) {
	live := v.AsSlice()
	if index < 0 || index >= len(live) {
		var zero T
		return zero, indexError("get", index, len(live))
	}
	return live[index], nil
}

// Range returns the live elements in [start, end).
func (v *Vec[T]) Range(start, end int) ([]T, error) {
	live := v.AsSlice()
	switch {
	case start < 0 || start > len(live):
		return nil, indexError("range", start, len(live))
	case end < start || end > len(live):
		return nil, indexError("range", end, len(live))
	}
	return live[start:end:end], nil
}

// To returns the live elements in [0, end).
func (v *Vec[T]) To(end int) ([]T, error) {
	return v.Range(0, end)
}

// From returns the live elements in [start, Len()).
func (v *Vec[T]) From(start int) ([]T, error) {
	return v.Range(start, v.Len())
}

// Push appends value. When the inline buffer is full the elements are first
// copied to the heap and the Vec stays spilled from then on.
func (v *Vec[T]) Push(value T) {
	switch s := v.mutable().(type) {
	case *inline[T]:
		if !s.full() {
			s.buf[s.n] = value
			s.n++
			return
		}
		h := spillFrom(s)
		h.items = append(h.items, value)
		v.store = h
	case *spilled[T]:
		s.items = append(s.items, value)
	}
}

// Extend pushes each of values in order.
func (v *Vec[T]) Extend(values ...T) {
	for _, value := range values {
		v.Push(value)
	}
}

// Pop removes and returns the last element. It reports false when the Vec
// is empty.
func (v *Vec[T]) Pop() (T, bool) {
	var zero T
	switch s := v.mutable().(type) {
	case *inline[T]:
		if s.n == 0 {
			return zero, false
		}
		s.n--
		value := s.buf[s.n]
		s.buf[s.n] = zero
		return value, true
	case *spilled[T]:
		last := len(s.items) - 1
		if last < 0 {
			return zero, false
		}
		value := s.items[last]
		s.items[last] = zero
		s.items = s.items[:last]
		return value, true
	}
	panic("hybridvec: unknown storage")
}

// Insert places value at index, shifting later elements toward the tail.
// index may equal Len(), which is the same as Push. Inserting into a full
// inline buffer spills first.
func (v *Vec[T]) Insert(index int, value T) error {
	if n := v.Len(); index < 0 || index > n {
		return indexError("insert", index, n)
	}
	switch s := v.mutable().(type) {
	case *inline[T]:
		if !s.full() {
			// copy has memmove semantics, so the overlapping shift moves the
			// tail before anything is overwritten.
			copy(s.buf[index+1:s.n+1], s.buf[index:s.n])
			s.buf[index] = value
			s.n++
			return nil
		}
		h := spillFrom(s)
		h.items = slices.Insert(h.items, index, value)
		v.store = h
	case *spilled[T]:
		s.items = slices.Insert(s.items, index, value)
	}
	return nil
}

// Remove deletes and returns the element at index, shifting later elements
// toward the head. A spilled Vec stays spilled.
func (v *Vec[T]) Remove(index int) (T, error) {
	var zero T
	if n := v.Len(); index < 0 || index >= n {
		return zero, indexError("remove", index, n)
	}
	switch s := v.mutable().(type) {
	case *inline[T]:
		value := s.buf[index]
		copy(s.buf[index:s.n-1], s.buf[index+1:s.n])
		s.n--
		s.buf[s.n] = zero
		return value, nil
	case *spilled[T]:
		value := s.items[index]
		s.items = slices.Delete(s.items, index, index+1)
		return value, nil
	}
	panic("hybridvec: unknown storage")
}

// Clear removes all elements without changing the storage variant. A
// spilled Vec keeps its heap capacity.
func (v *Vec[T]) Clear() {
	switch s := v.mutable().(type) {
	case *inline[T]:
		clear(s.buf[:s.n])
		s.n = 0
	case *spilled[T]:
		clear(s.items)
		s.items = s.items[:0]
	}
}

// Clone returns an independent copy in the same storage variant.
func (v *Vec[T]) Clone() *Vec[T] {
	switch s := v.storage().(type) {
	case *inline[T]:
		return &Vec[T]{store: &inline[T]{buf: slices.Clone(s.buf), n: s.n}, capacity: v.capacity}
	case *spilled[T]:
		return &Vec[T]{store: &spilled[T]{items: slices.Clone(s.items)}, capacity: v.capacity}
	}
	panic("hybridvec: unknown storage")
}

// String formats the live elements like a slice.
func (v *Vec[T]) String() string {
	return fmt.Sprint(v.AsSlice())
}
