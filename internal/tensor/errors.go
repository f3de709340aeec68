package tensor

import (
	"errors"
	"fmt"
)

// Common errors.
var (
	ErrShapeMismatch   = errors.New("shape mismatch")
	ErrNotSquare       = errors.New("not a square tensor")
	ErrOutOfRange      = errors.New("index out of range")
	ErrIO              = errors.New("cannot open source")
	ErrDataLength      = errors.New("data length does not match shape")
	ErrInvalidArgument = errors.New("invalid argument")
)

// ShapeMismatchError reports operands whose shapes are incompatible for Op.
type ShapeMismatchError struct {
	Op  string // Operation name (e.g., "add", "matmul")
	Lhs Shape
	Rhs Shape
}

// Error implements the error interface.
func (e *ShapeMismatchError) Error() string {
	return fmt.Sprintf("tensor %s: shape mismatch: %s vs %s", e.Op, e.Lhs, e.Rhs)
}

// Is makes errors.Is(err, ErrShapeMismatch) hold.
func (e *ShapeMismatchError) Is(target error) bool {
	return target == ErrShapeMismatch
}

// NotSquareError reports a square-only operation invoked on a non-square tensor.
type NotSquareError struct {
	Op    string
	Shape Shape
}

// Error implements the error interface.
func (e *NotSquareError) Error() string {
	return fmt.Sprintf("tensor %s: %s is not a square tensor", e.Op, e.Shape)
}

// Is makes errors.Is(err, ErrNotSquare) hold.
func (e *NotSquareError) Is(target error) bool {
	return target == ErrNotSquare
}

// OutOfRangeError reports an index outside the tensor's bounds.
// Row is -1 when only a column index was involved.
type OutOfRangeError struct {
	Op    string
	Row   int
	Col   int
	Shape Shape
}

// Error implements the error interface.
func (e *OutOfRangeError) Error() string {
	if e.Row < 0 {
		return fmt.Sprintf("tensor %s: column [%d] out of range for %s", e.Op, e.Col, e.Shape)
	}
	return fmt.Sprintf("tensor %s: position (%d, %d) out of range for %s", e.Op, e.Row, e.Col, e.Shape)
}

// Is makes errors.Is(err, ErrOutOfRange) hold.
func (e *OutOfRangeError) Is(target error) bool {
	return target == ErrOutOfRange
}

// IOError reports a CSV source that could not be opened.
type IOError struct {
	Path string
	Err  error
}

// Error implements the error interface.
func (e *IOError) Error() string {
	return fmt.Sprintf("tensor read csv: open %q: %v", e.Path, e.Err)
}

// Unwrap returns the underlying os error.
func (e *IOError) Unwrap() error {
	return e.Err
}

// Is makes errors.Is(err, ErrIO) hold.
func (e *IOError) Is(target error) bool {
	return target == ErrIO
}

// NumberFormatError reports a CSV field that is not a decimal number.
// Row and Col are zero-based.
type NumberFormatError struct {
	Row   int
	Col   int
	Field string
	Err   error
}

// Error implements the error interface.
func (e *NumberFormatError) Error() string {
	return fmt.Sprintf("tensor read csv: row %d, column %d: invalid number %q: %v", e.Row, e.Col, e.Field, e.Err)
}

// Unwrap returns the underlying strconv error.
func (e *NumberFormatError) Unwrap() error {
	return e.Err
}

func checkSameShape(op string, a, b Shape) error {
	if !a.Equal(b) {
		return &ShapeMismatchError{Op: op, Lhs: a, Rhs: b}
	}
	return nil
}

func checkIndex(op string, s Shape, i, j int) error {
	if i < 0 || j < 0 || i >= s.Rows || j >= s.Cols {
		return &OutOfRangeError{Op: op, Row: i, Col: j, Shape: s}
	}
	return nil
}
