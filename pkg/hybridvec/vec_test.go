package hybridvec

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func inlineBuf[T any](t *testing.T, v *Vec[T]) []T {
	t.Helper()
	s, ok := v.store.(*inline[T])
	require.True(t, ok, "expected inline storage")
	return s.buf
}

func seq(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}

func TestNew(t *testing.T) {
	v := New[int](10)

	assert.False(t, v.Spilled())
	assert.Equal(t, 0, v.Len())
	assert.Equal(t, 10, v.Cap())
	assert.Len(t, inlineBuf(t, v), 10)
	assert.Empty(t, v.AsSlice())
}

func TestNewNegativeCapacity(t *testing.T) {
	assert.Panics(t, func() { New[int](-1) })
	assert.Panics(t, func() { FromFixed(-1, 1, 2) })
}

func TestZeroValue(t *testing.T) {
	var v Vec[string]

	assert.Equal(t, 0, v.Len())
	assert.False(t, v.Spilled())

	v.Push("a")
	assert.True(t, v.Spilled())
	assert.Equal(t, []string{"a"}, v.AsSlice())
}

func TestZeroValueReadsDoNotWrite(t *testing.T) {
	var v Vec[int]

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = v.Len()
			_ = v.Spilled()
			_ = v.AsSlice()
			_, _ = v.Get(0)
			_ = v.String()
		}()
	}
	wg.Wait()

	assert.Nil(t, v.store)
	assert.Empty(t, v.Clone().AsSlice())

	_, ok := v.Pop()
	assert.False(t, ok)
	assert.NotNil(t, v.store)
	assert.False(t, v.Spilled())
}

func TestFromSlice(t *testing.T) {
	t.Run("shorter than capacity", func(t *testing.T) {
		v := FromSlice(10, []int{1, 2, 3})
		assert.True(t, v.Spilled())
		assert.Equal(t, []int{1, 2, 3}, v.AsSlice())
	})

	t.Run("longer than capacity", func(t *testing.T) {
		v := FromSlice(2, []int{1, 2, 3})
		assert.True(t, v.Spilled())
		assert.Equal(t, 3, v.Len())
	})

	t.Run("nil slice", func(t *testing.T) {
		v := FromSlice[int](4, nil)
		assert.True(t, v.Spilled())
		assert.Equal(t, 0, v.Len())
		v.Push(1)
		assert.Equal(t, []int{1}, v.AsSlice())
	})
}

func TestFromFixed(t *testing.T) {
	tests := []struct {
		name     string
		capacity int
		items    []int
		spilled  bool
	}{
		{name: "fits", capacity: 256, items: make([]int, 128), spilled: false},
		{name: "exact fit", capacity: 3, items: []int{0, 1, 2}, spilled: false},
		{name: "overflows", capacity: 32, items: make([]int, 128), spilled: true},
		{name: "empty", capacity: 0, items: nil, spilled: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := FromFixed(tt.capacity, tt.items...)
			assert.Equal(t, tt.spilled, v.Spilled())
			assert.Equal(t, len(tt.items), v.Len())
			assert.Len(t, v.AsSlice(), len(tt.items))
			assert.Len(t, v.AsMutSlice(), len(tt.items))
		})
	}
}

func TestFromFixedCopiesInput(t *testing.T) {
	items := []int{1, 2, 3}
	inlined := FromFixed(4, items...)
	heaped := FromFixed(2, items...)

	items[0] = 99

	assert.Equal(t, []int{1, 2, 3}, inlined.AsSlice())
	assert.Equal(t, []int{1, 2, 3}, heaped.AsSlice())
}

func TestPush(t *testing.T) {
	v := New[int](128)
	for value := range 128 {
		v.Push(value)
	}
	assert.False(t, v.Spilled())
	assert.Equal(t, 128, v.Len())

	for value := 128; value < 256; value++ {
		v.Push(value)
	}
	assert.True(t, v.Spilled())
	assert.Equal(t, 256, v.Len())
	assert.Equal(t, seq(256), v.AsSlice())
}

func TestPushSpillsOnFirstOverflow(t *testing.T) {
	v := FromFixed(3, 1, 2, 3)
	require.False(t, v.Spilled())

	v.Push(4)

	assert.True(t, v.Spilled())
	assert.Equal(t, []int{1, 2, 3, 4}, v.AsSlice())
}

func TestPop(t *testing.T) {
	t.Run("inline", func(t *testing.T) {
		v := FromFixed(128, make([]int, 128)...)
		for range 128 {
			value, ok := v.Pop()
			require.True(t, ok)
			assert.Equal(t, 0, value)
		}
		_, ok := v.Pop()
		assert.False(t, ok)
	})

	t.Run("spilled from fixed", func(t *testing.T) {
		v := FromFixed(128, make([]int, 256)...)
		for range 256 {
			value, ok := v.Pop()
			require.True(t, ok)
			assert.Equal(t, 0, value)
		}
		_, ok := v.Pop()
		assert.False(t, ok)
	})

	t.Run("spilled from slice", func(t *testing.T) {
		v := FromSlice(128, make([]int, 256))
		for range 256 {
			_, ok := v.Pop()
			require.True(t, ok)
		}
		_, ok := v.Pop()
		assert.False(t, ok)
		assert.True(t, v.Spilled())
	})

	t.Run("reverse order across spill", func(t *testing.T) {
		const capacity = 4
		v := New[int](capacity)
		for i := range capacity + 1 {
			v.Push(i)
		}
		for want := capacity; want >= 0; want-- {
			got, ok := v.Pop()
			require.True(t, ok)
			assert.Equal(t, want, got)
		}
		_, ok := v.Pop()
		assert.False(t, ok)
	})

	t.Run("vacated slot is reset", func(t *testing.T) {
		v := FromFixed(4, "a", "b")
		value, ok := v.Pop()
		require.True(t, ok)
		assert.Equal(t, "b", value)
		assert.Equal(t, []string{"a", "", "", ""}, inlineBuf(t, v))
	})
}

func TestInsert(t *testing.T) {
	t.Run("inline with room", func(t *testing.T) {
		v := FromFixed(4, 0, 1, 2)
		require.NoError(t, v.Insert(1, 3))
		assert.False(t, v.Spilled())
		assert.Equal(t, []int{0, 3, 1, 2}, inlineBuf(t, v))
		assert.Equal(t, 4, v.Len())
	})

	t.Run("inline full spills", func(t *testing.T) {
		v := FromFixed(4, 0, 1, 2, 3)
		require.NoError(t, v.Insert(1, 3))
		assert.True(t, v.Spilled())
		assert.Equal(t, []int{0, 3, 1, 2, 3}, v.AsSlice())
	})

	t.Run("already spilled", func(t *testing.T) {
		v := FromFixed(4, 0, 1, 2, 3, 4)
		require.NoError(t, v.Insert(1, 3))
		assert.True(t, v.Spilled())
		assert.Equal(t, []int{0, 3, 1, 2, 3, 4}, v.AsSlice())
	})

	t.Run("at head", func(t *testing.T) {
		v := FromFixed(4, 1, 2, 3)
		require.NoError(t, v.Insert(0, 9))
		assert.Equal(t, []int{9, 1, 2, 3}, v.AsSlice())
	})

	t.Run("at length matches push", func(t *testing.T) {
		inserted := FromFixed(4, 1, 2, 3)
		pushed := FromFixed(4, 1, 2, 3)
		require.NoError(t, inserted.Insert(inserted.Len(), 9))
		pushed.Push(9)
		assert.Equal(t, pushed.AsSlice(), inserted.AsSlice())
		assert.Equal(t, pushed.Spilled(), inserted.Spilled())
	})

	t.Run("into empty", func(t *testing.T) {
		v := New[int](2)
		require.NoError(t, v.Insert(0, 7))
		assert.Equal(t, []int{7}, v.AsSlice())
	})

	t.Run("out of range leaves vec unchanged", func(t *testing.T) {
		for _, index := range []int{-1, 4, 100} {
			v := FromFixed(4, 1, 2, 3)
			err := v.Insert(index, 9)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrIndexOutOfRange)
			assert.Equal(t, []int{1, 2, 3}, v.AsSlice())
			assert.False(t, v.Spilled())
		}
	})

	t.Run("out of range on full buffer does not spill", func(t *testing.T) {
		v := FromFixed(2, 1, 2)
		require.Error(t, v.Insert(5, 9))
		assert.False(t, v.Spilled())
	})
}

func TestRemove(t *testing.T) {
	t.Run("inline", func(t *testing.T) {
		v := FromFixed(4, 0, 1, 2)
		elem, err := v.Remove(1)
		require.NoError(t, err)
		assert.Equal(t, 1, elem)
		assert.False(t, v.Spilled())
		assert.Equal(t, 2, v.Len())
		assert.Equal(t, []int{0, 2}, inlineBuf(t, v)[:2])
	})

	t.Run("spilled", func(t *testing.T) {
		v := FromFixed(2, 0, 1, 2)
		elem, err := v.Remove(1)
		require.NoError(t, err)
		assert.Equal(t, 1, elem)
		assert.True(t, v.Spilled())
		assert.Equal(t, []int{0, 2}, v.AsSlice())
	})

	t.Run("head and tail", func(t *testing.T) {
		v := FromFixed(8, 1, 2, 3, 4)
		head, err := v.Remove(0)
		require.NoError(t, err)
		tail, err := v.Remove(v.Len() - 1)
		require.NoError(t, err)
		assert.Equal(t, 1, head)
		assert.Equal(t, 4, tail)
		assert.Equal(t, []int{2, 3}, v.AsSlice())
	})

	t.Run("out of range leaves vec unchanged", func(t *testing.T) {
		for _, v := range []*Vec[int]{FromFixed(4, 1, 2, 3), FromFixed(2, 1, 2, 3)} {
			spilled := v.Spilled()
			for _, index := range []int{-1, 3, 10} {
				_, err := v.Remove(index)
				var indexErr *IndexError
				require.True(t, errors.As(err, &indexErr))
				assert.Equal(t, "remove", indexErr.Op)
				assert.Equal(t, index, indexErr.Index)
				assert.Equal(t, 3, indexErr.Len)
				assert.Equal(t, []int{1, 2, 3}, v.AsSlice())
				assert.Equal(t, spilled, v.Spilled())
			}
		}
	})

	t.Run("never re-inlines", func(t *testing.T) {
		v := FromFixed(2, 1, 2, 3)
		for v.Len() > 0 {
			_, err := v.Remove(0)
			require.NoError(t, err)
			assert.True(t, v.Spilled())
		}
	})
}

func TestClear(t *testing.T) {
	t.Run("inline", func(t *testing.T) {
		v := FromFixed(10, 0, 1, 2, 3)
		require.False(t, v.Spilled())
		v.Clear()
		assert.Equal(t, 0, v.Len())
		assert.False(t, v.Spilled())
		assert.Equal(t, make([]int, 10), inlineBuf(t, v))
	})

	t.Run("spilled", func(t *testing.T) {
		v := FromFixed(3, 0, 1, 2, 3)
		require.True(t, v.Spilled())
		v.Clear()
		assert.Equal(t, 0, v.Len())
		assert.True(t, v.Spilled())
	})

	t.Run("spill survives repopulating below capacity", func(t *testing.T) {
		v := New[int](2)
		v.Extend(1, 2, 3)
		require.True(t, v.Spilled())

		v.Clear()
		v.Push(1)

		assert.True(t, v.Spilled())
		assert.Equal(t, []int{1}, v.AsSlice())
	})
}

func TestIndexing(t *testing.T) {
	v := FromFixed(10, 0, 1, 2, 3, 4, 5)

	assert.Equal(t, 1, v.At(1))

	head, err := v.To(2)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1}, head)

	tail, err := v.From(4)
	require.NoError(t, err)
	assert.Equal(t, []int{4, 5}, tail)

	mid, err := v.Range(1, 3)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, mid)

	empty, err := v.Range(6, 6)
	require.NoError(t, err)
	assert.Empty(t, empty)

	got, err := v.Get(5)
	require.NoError(t, err)
	assert.Equal(t, 5, got)
}

func TestIndexingOutOfRange(t *testing.T) {
	v := FromFixed(10, 0, 1, 2, 3, 4, 5)

	assert.PanicsWithError(t, "hybridvec: get: index 6 out of range for length 6", func() {
		v.At(6)
	})
	assert.Panics(t, func() { v.At(-1) })

	_, err := v.Get(6)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)

	for _, bounds := range [][2]int{{-1, 2}, {0, 7}, {4, 2}, {7, 7}} {
		_, err := v.Range(bounds[0], bounds[1])
		assert.ErrorIs(t, err, ErrIndexOutOfRange, "bounds %v", bounds)
	}

	_, err = v.To(7)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
	_, err = v.From(7)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
}

func TestStaleSlotsNotExposed(t *testing.T) {
	v := FromFixed(4, 1, 2, 3)
	_, ok := v.Pop()
	require.True(t, ok)

	_, err := v.To(3)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
	_, err = v.Get(2)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
	assert.Equal(t, []int{1, 2}, v.AsSlice())
}

func TestViewsAreClipped(t *testing.T) {
	v := FromFixed(4, 1, 2)

	grown := append(v.AsSlice(), 99)

	assert.Equal(t, []int{1, 2, 99}, grown)
	assert.Equal(t, []int{1, 2, 0, 0}, inlineBuf(t, v))

	head, err := v.To(1)
	require.NoError(t, err)
	_ = append(head, 42)
	assert.Equal(t, []int{1, 2}, v.AsSlice())
}

func TestAsMutSlice(t *testing.T) {
	for _, v := range []*Vec[int]{FromFixed(8, 1, 2, 3), FromSlice(8, []int{1, 2, 3})} {
		view := v.AsMutSlice()
		for i := range view {
			view[i] *= 10
		}
		assert.Equal(t, []int{10, 20, 30}, v.AsSlice())
	}
}

func TestClone(t *testing.T) {
	for _, v := range []*Vec[int]{FromFixed(4, 1, 2), FromFixed(1, 1, 2)} {
		c := v.Clone()
		assert.Equal(t, v.Spilled(), c.Spilled())
		assert.Equal(t, v.AsSlice(), c.AsSlice())

		c.AsMutSlice()[0] = 100
		c.Push(3)
		assert.Equal(t, []int{1, 2}, v.AsSlice())
	}
}

func TestString(t *testing.T) {
	assert.Equal(t, "[1 2 3]", FromFixed(4, 1, 2, 3).String())
	assert.Equal(t, "[]", New[int](4).String())
}
