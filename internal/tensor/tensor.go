package tensor

import "fmt"

// Tensor is a dense row-major 2-D tensor with element type T.
//
// A Tensor exclusively owns its buffer. Every operation returns a new
// tensor with a freshly allocated buffer; only constructors write into
// an existing instance.
//
// The tensor caches the minimum and maximum element ever written, which
// the renderer uses to scale colors.
//
// Example:
//
//	a, _ := tensor.FromSlice([]float64{1, 2, 3, 4}, 2, 2)
//	b := tensor.Full[float64](2, 2, 1)
//	c, err := a.Add(b)
type Tensor[T Number] struct {
	rows, cols int
	data       []T
	min, max   T
	hasExtrema bool // false until the first element write
}

// newTensor allocates a rows×cols tensor with no extrema recorded.
// Callers must write every element through set.
func newTensor[T Number](rows, cols int) *Tensor[T] {
	if rows < 0 || cols < 0 {
		panic(fmt.Sprintf("tensor: negative dimension (%d, %d)", rows, cols))
	}
	return &Tensor[T]{
		rows: rows,
		cols: cols,
		data: make([]T, rows*cols),
	}
}

// Rows returns the number of rows.
func (t *Tensor[T]) Rows() int {
	return t.rows
}

// Cols returns the number of columns.
func (t *Tensor[T]) Cols() int {
	return t.cols
}

// Shape returns the tensor's shape.
func (t *Tensor[T]) Shape() Shape {
	return Shape{Rows: t.rows, Cols: t.cols}
}

// NumElements returns rows*cols.
func (t *Tensor[T]) NumElements() int {
	return len(t.data)
}

// Min returns the cached minimum element.
func (t *Tensor[T]) Min() T {
	return t.min
}

// Max returns the cached maximum element.
func (t *Tensor[T]) Max() T {
	return t.max
}

// Data returns a row-major copy of the tensor's elements.
// Modifying the returned slice does not affect the tensor.
func (t *Tensor[T]) Data() []T {
	out := make([]T, len(t.data))
	copy(out, t.data)
	return out
}

// Row returns a copy of row i, or nil if i is out of range.
func (t *Tensor[T]) Row(i int) []T {
	if i < 0 || i >= t.rows {
		return nil
	}
	out := make([]T, t.cols)
	copy(out, t.data[i*t.cols:(i+1)*t.cols])
	return out
}

// At returns the element at row i, column j.
//
// Example:
//
//	t := tensor.Zeros[float32](3, 4)
//	v, err := t.At(1, 2) // Row 1, column 2
func (t *Tensor[T]) At(i, j int) (T, error) {
	if err := checkIndex("at", t.Shape(), i, j); err != nil {
		var zero T
		return zero, err
	}
	return t.data[i*t.cols+j], nil
}

// Column returns column j as a new rows×1 tensor.
func (t *Tensor[T]) Column(j int) (*Tensor[T], error) {
	if j < 0 || j >= t.cols {
		return nil, &OutOfRangeError{Op: "column", Row: -1, Col: j, Shape: t.Shape()}
	}

	result := newTensor[T](t.rows, 1)
	for i := 0; i < t.rows; i++ {
		result.set(i, 0, t.data[i*t.cols+j])
	}
	return result, nil
}

// Clone creates a deep copy of the tensor, extrema included.
func (t *Tensor[T]) Clone() *Tensor[T] {
	c := *t
	c.data = make([]T, len(t.data))
	copy(c.data, t.data)
	return &c
}

// Equal reports whether both tensors have the same shape and elements.
func (t *Tensor[T]) Equal(other *Tensor[T]) bool {
	if other == nil || !t.Shape().Equal(other.Shape()) {
		return false
	}
	for i, v := range t.data {
		if other.data[i] != v {
			return false
		}
	}
	return true
}

// set writes v at (i, j) and widens the extrema. Indices are trusted.
func (t *Tensor[T]) set(i, j int, v T) {
	t.data[i*t.cols+j] = v
	t.updateExtrema(v)
}

// updateExtrema widens min/max to include value.
func (t *Tensor[T]) updateExtrema(value T) {
	if !t.hasExtrema {
		t.min, t.max = value, value
		t.hasExtrema = true
		return
	}
	if value < t.min {
		t.min = value
	}
	if value > t.max {
		t.max = value
	}
}
