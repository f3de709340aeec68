// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"io"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"

	"github.com/born-ml/matrix/internal/tensor"
)

// Number is the constraint satisfied by all Go integer and floating-point types.
type Number = tensor.Number

// Shape is the (rows, cols) extent of a tensor.
type Shape = tensor.Shape

// Sized is anything that reports a row and column count.
// SameSize accepts it so tensors of different element types can be compared.
type Sized = tensor.Sized

// Tensor is a dense row-major 2-D tensor with tracked extrema.
//
// Example:
//
//	x := tensor.Zeros[int](2, 3)
//	y := tensor.Full[int](2, 3, 4)
//	z, err := x.Add(y)
type Tensor[T Number] = tensor.Tensor[T]

// Rendering and ingestion defaults.
const (
	DefaultDisplayPrecision = tensor.DefaultDisplayPrecision
	DefaultCSVPrecision     = tensor.DefaultCSVPrecision
)

// Creation functions

// Zeros creates a rows×cols tensor of zeros.
//
// Example:
//
//	x := tensor.Zeros[float32](2, 3)
func Zeros[T Number](rows, cols int) *Tensor[T] {
	return tensor.Zeros[T](rows, cols)
}

// Full creates a rows×cols tensor with every element set to value.
//
// Example:
//
//	x := tensor.Full[int](3, 3, 7)
func Full[T Number](rows, cols int, value T) *Tensor[T] {
	return tensor.Full(rows, cols, value)
}

// FromSlice creates a tensor from a flat row-major slice.
// The slice is copied.
//
// Example:
//
//	x, err := tensor.FromSlice([]int{1, 2, 3, 4, 5, 6}, 2, 3)
func FromSlice[T Number](data []T, rows, cols int) (*Tensor[T], error) {
	return tensor.FromSlice(data, rows, cols)
}

// Rand creates a tensor of uniformly distributed values between lo and hi.
// Floating-point values fall in [lo, hi); integer values in [lo, hi].
//
// Example:
//
//	x := tensor.Rand[int](4, 4, -100, 100)
func Rand[T Number](rows, cols int, lo, hi T) *Tensor[T] {
	return tensor.Rand(rows, cols, lo, hi)
}

// RandWithSource is Rand drawing from src, for reproducible tensors.
//
// Example:
//
//	x := tensor.RandWithSource[float64](2, 2, 0, 1, rand.NewSource(1))
func RandWithSource[T Number](rows, cols int, lo, hi T, src rand.Source) *Tensor[T] {
	return tensor.RandWithSource(rows, cols, lo, hi, src)
}

// FromMatrix copies a gonum matrix into a new tensor, converting each
// element to T.
func FromMatrix[T Number](m mat.Matrix) *Tensor[T] {
	return tensor.FromMatrix[T](m)
}

// Ingestion functions

// ReadCSV loads up to rows×cols comma-separated values from the file at path.
// Each value is rounded to precision fractional digits. Missing cells are zero;
// extra lines and fields are ignored.
//
// Example:
//
//	x, err := tensor.ReadCSV[float64]("data.csv", 10, 10, tensor.DefaultCSVPrecision)
func ReadCSV[T Number](path string, rows, cols, precision int) (*Tensor[T], error) {
	return tensor.ReadCSV[T](path, rows, cols, precision)
}

// DecodeCSV is ReadCSV reading from r.
func DecodeCSV[T Number](r io.Reader, rows, cols, precision int) (*Tensor[T], error) {
	return tensor.DecodeCSV[T](r, rows, cols, precision)
}
