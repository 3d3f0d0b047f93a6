package hybridvec

// storage is the active representation of a Vec. Exactly one of inline or
// spilled backs a Vec at any time.
type storage[T any] interface {
	// live returns the live elements, clipped so appends cannot reach
	// spare slots.
	live() []T
	length() int
}

// inline holds up to len(buf) elements. buf never grows; slots in
// [n, len(buf)) hold zero values.
type inline[T any] struct {
	buf []T
	n   int
}

func newInline[T any](capacity int) *inline[T] {
	return &inline[T]{buf: make([]T, capacity)}
}

func (s *inline[T]) live() []T   { return s.buf[:s.n:s.n] }
func (s *inline[T]) length() int { return s.n }
func (s *inline[T]) full() bool  { return s.n == len(s.buf) }

// spilled holds elements on the heap with no upper bound.
type spilled[T any] struct {
	items []T
}

func (s *spilled[T]) live() []T   { return s.items[:len(s.items):len(s.items)] }
func (s *spilled[T]) length() int { return len(s.items) }

// spillFrom copies the live inline elements into an exact-fit heap slice with
// room for one more element.
func spillFrom[T any](s *inline[T]) *spilled[T] {
	items := make([]T, s.n, s.n+1)
	copy(items, s.buf[:s.n])
	return &spilled[T]{items: items}
}
