package tensor

// T returns the transpose: a cols×rows tensor with result[j][i] = t[i][j].
// The value set is unchanged, so extrema are copied rather than recomputed.
//
// Example:
//
//	t := tensor.Zeros[float32](3, 4)
//	tt := t.T() // Shape: (4, 3)
func (t *Tensor[T]) T() *Tensor[T] {
	result := newTensor[T](t.cols, t.rows)
	for i := 0; i < t.rows; i++ {
		for j := 0; j < t.cols; j++ {
			result.data[j*t.rows+i] = t.data[i*t.cols+j]
		}
	}
	result.min, result.max = t.min, t.max
	result.hasExtrema = true
	return result
}

// SubTensor returns a (rows-1)×(cols-1) tensor with row i and column j removed.
// Relative order of the remaining elements is preserved.
func (t *Tensor[T]) SubTensor(i, j int) (*Tensor[T], error) {
	if err := checkIndex("sub-tensor", t.Shape(), i, j); err != nil {
		return nil, err
	}
	return t.subTensor(i, j), nil
}

// subTensor is SubTensor without bounds checking.
func (t *Tensor[T]) subTensor(i, j int) *Tensor[T] {
	result := newTensor[T](t.rows-1, t.cols-1)
	if result.NumElements() == 0 {
		return Zeros[T](t.rows-1, t.cols-1)
	}

	r := 0
	for k := 0; k < t.rows; k++ {
		if k == i {
			continue
		}
		c := 0
		for l := 0; l < t.cols; l++ {
			if l == j {
				continue
			}
			result.set(r, c, t.data[k*t.cols+l])
			c++
		}
		r++
	}
	return result
}

// Det computes the determinant by cofactor expansion along the first row.
//
// A 0×0 tensor has determinant 1 (empty product) and a 1×1 tensor its single
// element. Cost is factorial in the size; it is meant for small matrices.
func (t *Tensor[T]) Det() (T, error) {
	if !t.Shape().IsSquare() {
		var zero T
		return zero, &NotSquareError{Op: "det", Shape: t.Shape()}
	}
	return t.det(), nil
}

func (t *Tensor[T]) det() T {
	d := t.data
	switch t.rows {
	case 0:
		return 1
	case 1:
		return d[0]
	case 2:
		return d[0]*d[3] - d[2]*d[1]
	}

	// Sign alternates by adding or subtracting, so unsigned types stay exact
	// modulo overflow.
	var result T
	for j := 0; j < t.cols; j++ {
		term := d[j] * t.subTensor(0, j).det()
		if j%2 == 0 {
			result += term
		} else {
			result -= term
		}
	}
	return result
}

// Minor returns the determinant of SubTensor(i, j).
func (t *Tensor[T]) Minor(i, j int) (T, error) {
	if err := checkIndex("minor", t.Shape(), i, j); err != nil {
		var zero T
		return zero, err
	}
	sub := t.subTensor(i, j)
	if !sub.Shape().IsSquare() {
		var zero T
		return zero, &NotSquareError{Op: "minor", Shape: sub.Shape()}
	}
	return sub.det(), nil
}

// SameSize reports whether other has exactly the same row and column counts.
// other may hold a different element type.
func (t *Tensor[T]) SameSize(other Sized) bool {
	return t.rows == other.Rows() && t.cols == other.Cols()
}
