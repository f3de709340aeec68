// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides generic dense 2-D tensors (matrices).
//
// # Overview
//
// A Tensor[T] stores rows×cols elements of a numeric type T in a flat
// row-major buffer and tracks the running minimum and maximum of its
// contents. The package provides:
//   - Element-wise arithmetic and the Hadamard product
//   - Matrix multiplication and scalar operations
//   - Transpose, sub-tensor, determinant and minor
//   - CSV ingestion with a fixed capacity and rounding precision
//   - A console renderer with optional value-based coloring
//
// # Basic Usage
//
//	import "github.com/born-ml/matrix/tensor"
//
//	func main() {
//	    a, _ := tensor.FromSlice([]float64{1, 2, 3, 4}, 2, 2)
//	    b := tensor.Full[float64](2, 2, 10)
//
//	    sum, err := a.Add(b)
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    sum.Display(2, true)
//
//	    det, _ := a.Det() // -2
//	}
//
// # Supported Data Types
//
// Any Go integer or floating-point type satisfies the Number constraint.
// Integer tensors use Go's integer arithmetic: division truncates toward
// zero, division by zero panics, and overflow wraps.
//
// # Errors
//
// Operations validate their inputs before computing and never return a
// partial result. Failures can be matched with errors.Is against
// ErrShapeMismatch, ErrNotSquare, ErrOutOfRange, ErrIO, ErrDataLength and
// ErrInvalidArgument, or inspected with errors.As for the typed errors
// that carry the offending shapes and positions.
//
// # Interoperability
//
// ToDense and FromMatrix convert to and from gonum's mat.Dense.
package tensor
