package model

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidIndex is matched by every *IndexError.
	ErrInvalidIndex = errors.New("invalid index")
	// ErrNilItem is returned by List.Add for a nil item.
	ErrNilItem = errors.New("can only add todo items")
)

// IndexError reports a position that holds no item.
type IndexError struct {
	Index int
	Size  int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("invalid index: %d", e.Index)
}

// Unwrap returns ErrInvalidIndex.
func (e *IndexError) Unwrap() error {
	return ErrInvalidIndex
}
