package hybridvec

import (
	"errors"
	"fmt"
)

// ErrIndexOutOfRange is reported when an index or range bound falls outside
// the live elements of a Vec.
var ErrIndexOutOfRange = errors.New("hybridvec: index out of range")

// IndexError describes a rejected index together with the length it was
// checked against.
type IndexError struct {
	Op    string
	Index int
	Len   int
}

// Error implements the error interface.
func (e *IndexError) Error() string {
	return fmt.Sprintf("hybridvec: %s: index %d out of range for length %d", e.Op, e.Index, e.Len)
}

// Unwrap returns ErrIndexOutOfRange so callers can use errors.Is.
func (e *IndexError) Unwrap() error {
	return ErrIndexOutOfRange
}

func indexError(op string, index, length int) *IndexError {
	return &IndexError{Op: op, Index: index, Len: length}
}
