package hybridvec

import (
	"slices"
	"sync"
)

// Synced guards a Vec with a read/write mutex. Views are never handed out;
// readers get copies from Snapshot. Create one with NewSynced.
type Synced[T any] struct {
	vec   *Vec[T]
	mutex sync.RWMutex
}

// NewSynced returns an empty Synced with the given inline capacity.
func NewSynced[T any](capacity int) *Synced[T] {
	return &Synced[T]{vec: New[T](capacity)}
}

// Push appends value.
func (s *Synced[T]) Push(value T) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.vec.Push(value)
}

// Pop removes and returns the last element.
func (s *Synced[T]) Pop() (T, bool) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	return s.vec.Pop()
}

// Insert places value at index.
func (s *Synced[T]) Insert(index int, value T) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	return s.vec.Insert(index, value)
}

// Remove deletes and returns the element at index.
func (s *Synced[T]) Remove(index int) (T, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	return s.vec.Remove(index)
}

// Clear removes all elements.
func (s *Synced[T]) Clear() {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.vec.Clear()
}

// Len returns the number of elements.
func (s *Synced[T]) Len() int {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return s.vec.Len()
}

// Spilled reports whether the underlying Vec has moved to the heap.
func (s *Synced[T]) Spilled() bool {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return s.vec.Spilled()
}

// Snapshot returns a copy of the elements.
func (s *Synced[T]) Snapshot() []T {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return slices.Clone(s.vec.AsSlice())
}
