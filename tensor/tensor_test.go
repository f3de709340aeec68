// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor_test

import (
	"errors"
	"strings"
	"testing"

	"golang.org/x/exp/rand"

	"github.com/born-ml/matrix/tensor"
)

// TestSizedInterface verifies that tensors of any element type satisfy tensor.Sized.
func TestSizedInterface(_ *testing.T) {
	var _ tensor.Sized = (*tensor.Tensor[float32])(nil)
	var _ tensor.Sized = (*tensor.Tensor[uint8])(nil)
}

// TestPublicAPI exercises the facade end to end.
func TestPublicAPI(t *testing.T) {
	a, err := tensor.FromSlice([]float64{1, 2, 3, 4}, 2, 2)
	if err != nil {
		t.Fatalf("FromSlice failed: %v", err)
	}

	b := tensor.Full[float64](2, 2, 10)
	sum, err := a.Add(b)
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if sum.Min() != 11 || sum.Max() != 14 {
		t.Errorf("extrema = (%v, %v), want (11, 14)", sum.Min(), sum.Max())
	}

	det, err := a.Det()
	if err != nil {
		t.Fatalf("Det failed: %v", err)
	}
	if det != -2 {
		t.Errorf("Det() = %v, want -2", det)
	}

	if !a.T().Shape().Equal(tensor.Shape{Rows: 2, Cols: 2}) {
		t.Errorf("T().Shape() = %v, want (2, 2)", a.T().Shape())
	}
}

// TestErrorAliases verifies errors from the internal package match the public sentinels.
func TestErrorAliases(t *testing.T) {
	_, err := tensor.Zeros[int](2, 3).Add(tensor.Zeros[int](3, 2))
	if !errors.Is(err, tensor.ErrShapeMismatch) {
		t.Fatalf("Add error = %v, want ErrShapeMismatch", err)
	}
	var sm *tensor.ShapeMismatchError
	if !errors.As(err, &sm) || sm.Op != "add" {
		t.Errorf("errors.As(ShapeMismatchError) = %v", sm)
	}

	if _, err := tensor.Zeros[int](2, 3).Det(); !errors.Is(err, tensor.ErrNotSquare) {
		t.Errorf("Det error = %v, want ErrNotSquare", err)
	}

	if _, err := tensor.FromSlice([]int{1, 2, 3}, 2, 2); !errors.Is(err, tensor.ErrDataLength) {
		t.Errorf("FromSlice error = %v, want ErrDataLength", err)
	}

	_, err = tensor.DecodeCSV[float64](strings.NewReader("x\n"), 1, 1, 2)
	var nf *tensor.NumberFormatError
	if !errors.As(err, &nf) {
		t.Errorf("DecodeCSV error = %v, want NumberFormatError", err)
	}
}

// TestRandWithSource verifies seeded tensors are reproducible and in range.
func TestRandWithSource(t *testing.T) {
	x := tensor.RandWithSource[int](3, 3, -5, 5, rand.NewSource(42))
	y := tensor.RandWithSource[int](3, 3, -5, 5, rand.NewSource(42))
	if !x.Equal(y) {
		t.Error("same seed produced different tensors")
	}
	if x.Min() < -5 || x.Max() > 5 {
		t.Errorf("extrema (%d, %d) outside [-5, 5]", x.Min(), x.Max())
	}
}

// TestGonumRoundTrip verifies ToDense and FromMatrix are inverses.
func TestGonumRoundTrip(t *testing.T) {
	x := tensor.Rand[float64](3, 4, -1, 1)
	back := tensor.FromMatrix[float64](x.ToDense())
	if !back.Equal(x) {
		t.Error("FromMatrix(ToDense(x)) != x")
	}
}
