package tensor

import "gonum.org/v1/gonum/mat"

// ToDense copies the tensor into a gonum float64 matrix.
// A tensor with a zero dimension yields nil, since gonum has no empty Dense.
func (t *Tensor[T]) ToDense() *mat.Dense {
	if len(t.data) == 0 {
		return nil
	}
	values := make([]float64, len(t.data))
	for i, v := range t.data {
		values[i] = float64(v)
	}
	return mat.NewDense(t.rows, t.cols, values)
}

// FromMatrix copies any gonum matrix into a new tensor, converting each
// element to T.
func FromMatrix[T Number](m mat.Matrix) *Tensor[T] {
	r, c := m.Dims()
	if r*c == 0 {
		return Zeros[T](r, c)
	}
	t := newTensor[T](r, c)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			t.set(i, j, T(m.At(i, j)))
		}
	}
	return t
}
