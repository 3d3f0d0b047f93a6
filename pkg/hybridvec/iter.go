package hybridvec

import (
	"iter"
	"slices"
)

// All returns an iterator over index/value pairs of the live elements. Each
// call starts a fresh traversal and leaves the Vec untouched.
func (v *Vec[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, value := range v.AsSlice() {
			if !yield(i, value) {
				return
			}
		}
	}
}

// Values returns an iterator over the live elements in order.
func (v *Vec[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, value := range v.AsSlice() {
			if !yield(value) {
				return
			}
		}
	}
}

// Chunks returns consecutive read-only views of up to size elements. It
// panics if size is less than 1.
func (v *Vec[T]) Chunks(size int) iter.Seq[[]T] {
	return slices.Chunk(v.AsSlice(), size)
}

// ChunksMut is like Chunks, but writes through the yielded views land in
// the Vec.
func (v *Vec[T]) ChunksMut(size int) iter.Seq[[]T] {
	return slices.Chunk(v.AsMutSlice(), size)
}

// IntoIter hands the live elements to a one-shot iterator and leaves v empty
// in its current storage variant.
func (v *Vec[T]) IntoIter() *IntoIter[T] {
	items := v.AsSlice()
	switch v.storage().(type) {
	case *inline[T]:
		v.store = newInline[T](v.capacity)
	case *spilled[T]:
		v.store = &spilled[T]{}
	}
	return &IntoIter[T]{items: items}
}

// IntoIter yields the elements taken from a Vec by value, front to back.
type IntoIter[T any] struct {
	items []T
	pos   int
}

// Next returns the next element, or false once the iterator is exhausted.
func (it *IntoIter[T]) Next() (T, bool) {
	var zero T
	if it.pos >= len(it.items) {
		return zero, false
	}
	value := it.items[it.pos]
	it.items[it.pos] = zero
	it.pos++
	return value, true
}

// Len returns the number of elements not yet yielded.
func (it *IntoIter[T]) Len() int {
	return len(it.items) - it.pos
}

// Seq adapts the iterator for range-over-func. Elements consumed through the
// sequence are gone from the iterator.
func (it *IntoIter[T]) Seq() iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			value, ok := it.Next()
			if !ok || !yield(value) {
				return
			}
		}
	}
}
