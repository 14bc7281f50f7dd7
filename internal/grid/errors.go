package grid

import (
	"errors"
	"fmt"
)

// ErrBadLength is returned when a puzzle string or clue slice does not have
// exactly N^2 entries.
var ErrBadLength = errors.New("grid does not have the expected length")

// ContradictionError is returned when a clue or placement contradicts the
// values already on the grid.
type ContradictionError struct {
	Cell int
}

func (e *ContradictionError) Error() string {
	return fmt.Sprintf("the clue at position %d contradicts the others", e.Cell)
}
