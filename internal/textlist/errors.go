package textlist

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument is returned for absent inputs and non-positive capacities.
	ErrInvalidArgument = errors.New("textlist: invalid argument")
	// ErrIndexOutOfBounds is matched by every *IndexError.
	ErrIndexOutOfBounds = errors.New("textlist: index out of bounds")
)

// IndexError reports an index outside the range an operation accepts.
// Valid indices are [0, Max); Max is Len for access and Len+1 for insertion.
type IndexError struct {
	Op    string
	Index int
	Len   int
	Max   int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("textlist: %s: index %d out of range [0,%d) with length %d", e.Op, e.Index, e.Max, e.Len)
}

func (e *IndexError) Is(target error) bool {
	return target == ErrIndexOutOfBounds
}

func (l *List) checkIndex(op string, i, max int) error {
	if i < 0 || i >= max {
		return &IndexError{Op: op, Index: i, Len: l.n, Max: max}
	}
	return nil
}
