package tensor

import "math"

// Add performs element-wise addition. Shapes must match exactly.
//
// Example:
//
//	a := tensor.Full[float32](3, 5, 1)
//	b := tensor.Full[float32](3, 5, 2)
//	c, err := a.Add(b) // every cell 3
func (t *Tensor[T]) Add(other *Tensor[T]) (*Tensor[T], error) {
	return t.zipWith("add", other, func(a, b T) T { return a + b })
}

// Sub performs element-wise subtraction.
func (t *Tensor[T]) Sub(other *Tensor[T]) (*Tensor[T], error) {
	return t.zipWith("sub", other, func(a, b T) T { return a - b })
}

// Div performs element-wise division.
// Integer division by zero panics as Go integer division does.
func (t *Tensor[T]) Div(other *Tensor[T]) (*Tensor[T], error) {
	return t.zipWith("div", other, func(a, b T) T { return a / b })
}

// Multiply computes the Hadamard (element-wise) product.
// It differs from MatMul, which is the matrix product.
func (t *Tensor[T]) Multiply(other *Tensor[T]) (*Tensor[T], error) {
	return t.zipWith("multiply", other, func(a, b T) T { return a * b })
}

// zipWith validates shapes, then builds op(t[i][j], other[i][j]) for every cell.
// The result's extrema come from its own cells only.
func (t *Tensor[T]) zipWith(op string, other *Tensor[T], fn func(a, b T) T) (*Tensor[T], error) {
	if err := checkSameShape(op, t.Shape(), other.Shape()); err != nil {
		return nil, err
	}

	result := newTensor[T](t.rows, t.cols)
	for i := 0; i < t.rows; i++ {
		for j := 0; j < t.cols; j++ {
			k := i*t.cols + j
			result.set(i, j, fn(t.data[k], other.data[k]))
		}
	}
	return result, nil
}

// MatMul performs matrix multiplication.
//
// Requirements:
//   - (M, K) @ (K, N) → (M, N)
//
// Example:
//
//	a := tensor.Rand[float64](3, 4, -1, 1)
//	b := tensor.Rand[float64](4, 5, -1, 1)
//	c, err := a.MatMul(b) // Shape: (3, 5)
func (t *Tensor[T]) MatMul(other *Tensor[T]) (*Tensor[T], error) {
	if t.cols != other.rows {
		return nil, &ShapeMismatchError{Op: "matmul", Lhs: t.Shape(), Rhs: other.Shape()}
	}

	result := newTensor[T](t.rows, other.cols)
	for i := 0; i < t.rows; i++ {
		for j := 0; j < other.cols; j++ {
			var dot T
			for k := 0; k < t.cols; k++ {
				dot += t.data[i*t.cols+k] * other.data[k*other.cols+j]
			}
			result.set(i, j, dot)
		}
	}
	if result.NumElements() == 0 {
		return Zeros[T](result.rows, result.cols), nil
	}
	return result, nil
}

// AddScalar adds s to every element. Addition commutes, so this also
// serves the scalar-on-the-left form.
func (t *Tensor[T]) AddScalar(s T) *Tensor[T] {
	return t.applyScalar(s, func(x, s T) T { return x + s })
}

// SubScalar subtracts s from every element.
func (t *Tensor[T]) SubScalar(s T) *Tensor[T] {
	return t.applyScalar(s, func(x, s T) T { return x - s })
}

// ScalarSub computes s - x for every element x.
func (t *Tensor[T]) ScalarSub(s T) *Tensor[T] {
	return t.applyScalar(s, func(x, s T) T { return s - x })
}

// MulScalar multiplies every element by s.
func (t *Tensor[T]) MulScalar(s T) *Tensor[T] {
	return t.applyScalar(s, func(x, s T) T { return x * s })
}

// DivScalar divides every element by s.
func (t *Tensor[T]) DivScalar(s T) *Tensor[T] {
	return t.applyScalar(s, func(x, s T) T { return x / s })
}

// ScalarDiv computes s / x for every element x.
func (t *Tensor[T]) ScalarDiv(s T) *Tensor[T] {
	return t.applyScalar(s, func(x, s T) T { return s / x })
}

// PowScalar raises every element to the power s using real-valued math.Pow.
// For integer types the result is truncated back to T.
func (t *Tensor[T]) PowScalar(s T) *Tensor[T] {
	return t.applyScalar(s, func(x, s T) T {
		return T(math.Pow(float64(x), float64(s)))
	})
}

// Apply returns a tensor with fn applied to every element.
//
// Example:
//
//	relu := func(x float64) float64 { return max(x, 0) }
//	y := x.Apply(relu)
func (t *Tensor[T]) Apply(fn func(T) T) *Tensor[T] {
	return t.applyScalar(0, func(x, _ T) T { return fn(x) })
}

// applyScalar is the shared primitive behind the scalar operations and Apply.
func (t *Tensor[T]) applyScalar(s T, op func(x, s T) T) *Tensor[T] {
	if len(t.data) == 0 {
		return Zeros[T](t.rows, t.cols)
	}

	result := newTensor[T](t.rows, t.cols)
	for i := 0; i < t.rows; i++ {
		for j := 0; j < t.cols; j++ {
			result.set(i, j, op(t.data[i*t.cols+j], s))
		}
	}
	return result
}
