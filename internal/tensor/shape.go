package tensor

import "fmt"

// Shape represents the dimensions of a 2-D tensor.
type Shape struct {
	Rows int
	Cols int
}

// NumElements returns the total number of elements.
func (s Shape) NumElements() int {
	return s.Rows * s.Cols
}

// Equal checks if two shapes are equal. No broadcasting is performed.
func (s Shape) Equal(other Shape) bool {
	return s.Rows == other.Rows && s.Cols == other.Cols
}

// IsSquare reports whether Rows == Cols.
func (s Shape) IsSquare() bool {
	return s.Rows == s.Cols
}

// String returns the shape as "(rows, cols)".
func (s Shape) String() string {
	return fmt.Sprintf("(%d, %d)", s.Rows, s.Cols)
}

// Sized is implemented by anything that exposes a row and column count.
// It lets SameSize compare tensors of different element types.
type Sized interface {
	Rows() int
	Cols() int
}
