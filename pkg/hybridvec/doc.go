// Package hybridvec provides Vec, a growable sequence that keeps its elements
// in a fixed-capacity inline buffer while small and moves them to a
// heap-backed slice once that capacity is exceeded.
//
// # Storage Variants
//
// A Vec is always in exactly one of two states:
//
//   - Inline: a buffer of exactly N slots, of which the first Len() are live.
//     Slots past Len() hold zero values and are never exposed.
//   - Spilled: an ordinary slice with no upper bound on length.
//
// The move from Inline to Spilled happens inside the Push or Insert call that
// would exceed N. It is one-way: Remove, Pop and Clear never bring a spilled
// Vec back inline, even when its length drops to N or below.
//
// # Usage
//
//	v := hybridvec.New[int](4)
//	for i := range 5 {
//		v.Push(i) // the fifth push spills
//	}
//	v.Spilled()  // true
//	v.AsSlice()  // [0 1 2 3 4]
//
// # Bounds
//
// Checked accessors (Get, Range, To, From, Insert, Remove) return an
// *IndexError wrapping ErrIndexOutOfRange and leave the Vec unchanged. At
// mirrors slice indexing and panics with the same *IndexError. Popping an
// empty Vec is not an error and reports false instead.
//
// # Concurrency
//
// A Vec is not safe for concurrent use. Views returned by AsSlice and
// AsMutSlice alias the Vec's storage and are invalidated by the next mutating
// call. Synced wraps a Vec with a read/write mutex for shared use.
package hybridvec
