package tensor

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func TestElementWiseOps(t *testing.T) {
	a := mustFromSlice(t, []float64{1, 2, 3, 4}, 2, 2)
	b := mustFromSlice(t, []float64{2, 4, 6, 8}, 2, 2)

	tests := []struct {
		name string
		op   func(x, y *Tensor[float64]) (*Tensor[float64], error)
		want []float64
	}{
		{"add", (*Tensor[float64]).Add, []float64{3, 6, 9, 12}},
		{"sub", (*Tensor[float64]).Sub, []float64{-1, -2, -3, -4}},
		{"div", (*Tensor[float64]).Div, []float64{0.5, 0.5, 0.5, 0.5}},
		{"multiply", (*Tensor[float64]).Multiply, []float64{2, 8, 18, 32}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.op(a, b)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.Data())
			assertExtremaExact(t, got)
		})
	}
}

func TestElementWiseOps_ShapeMismatch(t *testing.T) {
	a := Zeros[int](2, 3)
	b := Zeros[int](3, 2)

	ops := map[string]func(x, y *Tensor[int]) (*Tensor[int], error){
		"add":      (*Tensor[int]).Add,
		"sub":      (*Tensor[int]).Sub,
		"div":      (*Tensor[int]).Div,
		"multiply": (*Tensor[int]).Multiply,
	}

	for name, op := range ops {
		t.Run(name, func(t *testing.T) {
			got, err := op(a, b)
			assert.Nil(t, got, "no partial result on failure")
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrShapeMismatch))

			var sm *ShapeMismatchError
			require.ErrorAs(t, err, &sm)
			assert.Equal(t, name, sm.Op)
			assert.Equal(t, Shape{2, 3}, sm.Lhs)
			assert.Equal(t, Shape{3, 2}, sm.Rhs)
		})
	}
}

func TestAddSubRoundTrip(t *testing.T) {
	src := rand.NewSource(11)
	a := RandWithSource[float64](6, 7, -100, 100, src)
	b := RandWithSource[float64](6, 7, -100, 100, src)

	sum, err := a.Add(b)
	require.NoError(t, err)
	back, err := sum.Sub(b)
	require.NoError(t, err)

	assert.InDeltaSlice(t, a.Data(), back.Data(), 1e-9)

	ai := RandWithSource[int](4, 4, -50, 50, src)
	bi := RandWithSource[int](4, 4, -50, 50, src)
	si, err := ai.Add(bi)
	require.NoError(t, err)
	ri, err := si.Sub(bi)
	require.NoError(t, err)
	assert.True(t, ai.Equal(ri), "integer round trip is exact")
}

func TestMultiplyCommutes(t *testing.T) {
	src := rand.NewSource(12)
	a := RandWithSource[int32](5, 3, -20, 20, src)
	b := RandWithSource[int32](5, 3, -20, 20, src)

	ab, err := a.Multiply(b)
	require.NoError(t, err)
	ba, err := b.Multiply(a)
	require.NoError(t, err)
	assert.True(t, ab.Equal(ba))
}

func TestMatMul(t *testing.T) {
	a := mustFromSlice(t, []int{1, 2, 3, 4, 5, 6}, 2, 3)
	b := mustFromSlice(t, []int{7, 8, 9, 10, 11, 12}, 3, 2)

	c, err := a.MatMul(b)
	require.NoError(t, err)
	assert.Equal(t, Shape{2, 2}, c.Shape())
	assert.Equal(t, []int{58, 64, 139, 154}, c.Data())
	assert.Equal(t, 58, c.Min())
	assert.Equal(t, 154, c.Max())
}

func TestMatMul_ShapeMismatch(t *testing.T) {
	a := Zeros[float64](2, 3)
	b := Zeros[float64](2, 3)

	c, err := a.MatMul(b)
	assert.Nil(t, c)

	var sm *ShapeMismatchError
	require.ErrorAs(t, err, &sm)
	assert.Equal(t, "matmul", sm.Op)
	assert.Equal(t, Shape{2, 3}, sm.Lhs)
	assert.Equal(t, Shape{2, 3}, sm.Rhs)
}

func TestMatMul_EmptyInner(t *testing.T) {
	c, err := Zeros[float64](2, 0).MatMul(Zeros[float64](0, 3))
	require.NoError(t, err)
	assert.Equal(t, Shape{2, 3}, c.Shape())
	assert.Equal(t, make([]float64, 6), c.Data())
}

func TestScalarOps(t *testing.T) {
	x := mustFromSlice(t, []float64{1, 2, 4, 8}, 2, 2)

	tests := []struct {
		name string
		got  *Tensor[float64]
		want []float64
	}{
		{"AddScalar", x.AddScalar(1), []float64{2, 3, 5, 9}},
		{"SubScalar", x.SubScalar(1), []float64{0, 1, 3, 7}},
		{"ScalarSub", x.ScalarSub(10), []float64{9, 8, 6, 2}},
		{"MulScalar", x.MulScalar(0.5), []float64{0.5, 1, 2, 4}},
		{"DivScalar", x.DivScalar(2), []float64{0.5, 1, 2, 4}},
		{"ScalarDiv", x.ScalarDiv(8), []float64{8, 4, 2, 1}},
		{"PowScalar", x.PowScalar(2), []float64{1, 4, 16, 64}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.got.Data())
			assertExtremaExact(t, tt.got)
		})
	}

	assert.Equal(t, []float64{1, 2, 4, 8}, x.Data(), "scalar ops must not mutate the receiver")
}

func TestScalarOps_Integer(t *testing.T) {
	x := mustFromSlice(t, []int{1, 2, 3, 7}, 2, 2)

	assert.Equal(t, []int{0, 1, 1, 3}, x.DivScalar(2).Data(), "integer division truncates")
	assert.Equal(t, []int{1, 8, 27, 343}, x.PowScalar(3).Data())
	assert.Equal(t, []int{1, 1, 1, 1}, x.PowScalar(0).Data())
	assert.Equal(t, []int{-1, -2, -3, -7}, x.ScalarSub(0).Data())
}

func TestPowScalar_Fractional(t *testing.T) {
	x := mustFromSlice(t, []float64{4, 9, 16, 25}, 2, 2)
	got := x.PowScalar(0.5)
	assert.InDeltaSlice(t, []float64{2, 3, 4, 5}, got.Data(), 1e-12)
}

func TestApply(t *testing.T) {
	x := mustFromSlice(t, []float64{-2, -1, 0, 3}, 2, 2)
	relu := func(v float64) float64 { return math.Max(v, 0) }

	y := x.Apply(relu)
	assert.Equal(t, []float64{0, 0, 0, 3}, y.Data())
	assert.Equal(t, 0.0, y.Min())
	assert.Equal(t, 3.0, y.Max())
	assert.True(t, y.SameSize(x))
}

func TestApply_Empty(t *testing.T) {
	y := Zeros[float64](0, 4).Apply(func(v float64) float64 { return v + 1 })
	assert.Equal(t, Shape{0, 4}, y.Shape())
}
