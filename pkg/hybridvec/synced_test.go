package hybridvec

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSynced(t *testing.T) {
	s := NewSynced[int](4)
	for i := range 4 {
		s.Push(i)
	}
	assert.False(t, s.Spilled())

	require.NoError(t, s.Insert(0, 10))
	assert.True(t, s.Spilled())
	assert.Equal(t, []int{10, 0, 1, 2, 3}, s.Snapshot())

	value, err := s.Remove(0)
	require.NoError(t, err)
	assert.Equal(t, 10, value)

	_, err = s.Remove(10)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)

	last, ok := s.Pop()
	require.True(t, ok)
	assert.Equal(t, 3, last)

	s.Clear()
	assert.Equal(t, 0, s.Len())
	assert.True(t, s.Spilled())
}

func TestSyncedSnapshotIsCopy(t *testing.T) {
	s := NewSynced[int](4)
	s.Push(1)

	snap := s.Snapshot()
	snap[0] = 42

	assert.Equal(t, []int{1}, s.Snapshot())
}

func TestSyncedConcurrentPush(t *testing.T) {
	const (
		goroutines = 8
		perWorker  = 250
	)
	s := NewSynced[int](16)

	var wg sync.WaitGroup
	for g := range goroutines {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			for i := range perWorker {
				s.Push(id*perWorker + i)
				_ = s.Len()
			}
		}(g)
	}
	wg.Wait()

	assert.Equal(t, goroutines*perWorker, s.Len())
	assert.True(t, s.Spilled())

	seen := make(map[int]bool, goroutines*perWorker)
	for _, value := range s.Snapshot() {
		seen[value] = true
	}
	assert.Len(t, seen, goroutines*perWorker)
}
