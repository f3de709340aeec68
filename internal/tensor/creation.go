package tensor

import (
	"fmt"
	"math"
	"time"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// Zeros creates a tensor filled with zeros. Its extrema are both 0.
// A zero-sized shape gives the degenerate/default tensor.
//
// Example:
//
//	t := tensor.Zeros[float32](3, 4)
func Zeros[T Number](rows, cols int) *Tensor[T] {
	return Full[T](rows, cols, 0)
}

// Full creates a tensor filled with a specific value.
//
// Example:
//
//	t := tensor.Full[float64](3, 3, 3.14)
func Full[T Number](rows, cols int, value T) *Tensor[T] {
	t := newTensor[T](rows, cols)
	if len(t.data) == 0 {
		value = 0
	}
	if value != 0 {
		for i := range t.data {
			t.data[i] = value
		}
	}
	t.min, t.max = value, value
	t.hasExtrema = true
	return t
}

// FromSlice creates a tensor from a flat row-major slice.
// The slice is copied into the tensor's memory.
//
// Example:
//
//	t, err := tensor.FromSlice([]int{1, 2, 3, 4, 5, 6}, 2, 3)
func FromSlice[T Number](data []T, rows, cols int) (*Tensor[T], error) {
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("tensor from slice: negative dimension (%d, %d): %w", rows, cols, ErrInvalidArgument)
	}
	if rows*cols != len(data) {
		return nil, fmt.Errorf("tensor from slice: shape %s requires %d elements, but got %d: %w",
			Shape{rows, cols}, rows*cols, len(data), ErrDataLength)
	}
	if len(data) == 0 {
		return Zeros[T](rows, cols), nil
	}

	t := newTensor[T](rows, cols)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			t.set(i, j, data[i*cols+j])
		}
	}
	return t, nil
}

// Rand creates a tensor with random values uniformly distributed between lo and hi.
// Floating types draw from [lo, hi); integer types from the inclusive range [lo, hi].
// The generator is seeded from the clock.
//
// Example:
//
//	w := tensor.Rand[float64](10, 784, -0.5, 0.5)
//	x := tensor.Rand[int](10, 10, -9, 9)
func Rand[T Number](rows, cols int, lo, hi T) *Tensor[T] {
	src := rand.NewSource(uint64(time.Now().UnixNano())) //nolint:gosec // G115: seed only
	return RandWithSource(rows, cols, lo, hi, src)
}

// RandWithSource is Rand with a caller-supplied source, for reproducible tensors.
// Bounds given in reverse order are swapped.
func RandWithSource[T Number](rows, cols int, lo, hi T, src rand.Source) *Tensor[T] {
	if hi < lo {
		lo, hi = hi, lo
	}
	t := newTensor[T](rows, cols)
	if t.NumElements() == 0 {
		return Zeros[T](rows, cols)
	}

	next := uniformSampler(lo, hi, src)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			t.set(i, j, next())
		}
	}
	return t
}

// uniformSampler returns a function drawing values of T between lo and hi.
func uniformSampler[T Number](lo, hi T, src rand.Source) func() T {
	if !isInteger[T]() {
		dist := distuv.Uniform{Min: float64(lo), Max: float64(hi), Src: src}
		return func() T { return T(dist.Rand()) }
	}

	// Unsigned difference is exact for every integer type, signed included.
	rng := rand.New(src)
	span := uint64(hi) - uint64(lo)
	return func() T {
		if span == math.MaxUint64 {
			return T(rng.Uint64())
		}
		return T(uint64(lo) + rng.Uint64n(span+1))
	}
}
