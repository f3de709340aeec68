// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import "github.com/born-ml/matrix/internal/tensor"

// Sentinel errors for errors.Is.
var (
	ErrShapeMismatch   = tensor.ErrShapeMismatch
	ErrNotSquare       = tensor.ErrNotSquare
	ErrOutOfRange      = tensor.ErrOutOfRange
	ErrIO              = tensor.ErrIO
	ErrDataLength      = tensor.ErrDataLength
	ErrInvalidArgument = tensor.ErrInvalidArgument
)

// ShapeMismatchError reports operands whose shapes are incompatible.
type ShapeMismatchError = tensor.ShapeMismatchError

// NotSquareError reports an operation that needs a square tensor.
type NotSquareError = tensor.NotSquareError

// OutOfRangeError reports an index outside the tensor.
type OutOfRangeError = tensor.OutOfRangeError

// IOError reports a file that could not be opened or read.
type IOError = tensor.IOError

// NumberFormatError reports a CSV field that is not a number.
type NumberFormatError = tensor.NumberFormatError
