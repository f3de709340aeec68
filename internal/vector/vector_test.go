package vector

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVectorArithmetic(t *testing.T) {
	a := New(1, 2)
	b := New(3, -4)

	assert.Equal(t, New(4, -2), a.Add(b))
	assert.Equal(t, New(-2, 6), a.Sub(b))
	assert.Equal(t, -5.0, a.Dot(b))
	assert.Equal(t, -10.0, a.Cross(b))
	assert.Equal(t, New(2, 3), a.AddScalar(1))
	assert.Equal(t, New(0, 1), a.SubScalar(1))
	assert.Equal(t, New(3, 6), a.Scale(3))
	assert.Equal(t, New(0.5, 1), a.DivScalar(2))
	assert.Equal(t, 5.0, b.Module())
}

func TestVectorAngle(t *testing.T) {
	x := New(1, 0)

	assert.InDelta(t, math.Pi/2, x.Angle(New(0, 3)), 1e-12)
	assert.InDelta(t, math.Pi, x.Angle(New(-2, 0)), 1e-12)
	assert.InDelta(t, 0, x.Angle(New(5, 0)), 1e-12)
	assert.InDelta(t, 45, x.AngleDegrees(New(1, 1)), 1e-12)
	assert.True(t, math.IsNaN(x.Angle(New(0, 0))))
}

func TestVectorOrthogonal(t *testing.T) {
	a := New(1, 1)

	assert.True(t, a.IsTrueOrthogonal(New(-1, 1)))
	assert.False(t, a.IsTrueOrthogonal(New(-1, 1.001)))
	assert.True(t, a.IsOrthogonal(New(-1, 1.001), DefaultTolerance))
	assert.False(t, a.IsOrthogonal(New(-1, 1.5), DefaultTolerance))
	assert.False(t, a.IsOrthogonal(New(-1, 1.001), ToleranceFromDigits(6)))
}

func TestVectorParallel(t *testing.T) {
	a := New(2, 4)

	assert.True(t, a.Parallel(New(1, 2), DefaultTolerance))
	assert.True(t, a.Parallel(New(-1, -2), DefaultTolerance), "opposite directions are parallel")
	assert.False(t, a.Parallel(New(2, 1), DefaultTolerance))
}

func TestVectorEqual(t *testing.T) {
	assert.True(t, New(1, 2).Equal(New(1.001, 1.999), DefaultTolerance))
	assert.False(t, New(1, 2).Equal(New(1.1, 2), DefaultTolerance))
}

func TestVectorString(t *testing.T) {
	assert.Equal(t, "(1.0000, -2.5000)", New(1, -2.5).String())
	assert.Equal(t, "(1.2, 3.0)", New(1.23, 3).Format(1))
}

func TestToleranceFromDigits(t *testing.T) {
	assert.InDelta(t, 1e-3, float64(ToleranceFromDigits(3)), 1e-18)
	assert.Equal(t, DefaultTolerance, ToleranceFromDigits(2))
}

func TestVectorToPolar(t *testing.T) {
	p := New(0, 2).ToPolar()
	assert.InDelta(t, 2, p.Radius(), 1e-12)
	assert.InDelta(t, math.Pi/2, p.Argument(), 1e-12)

	back := p.ToCartesian()
	assert.True(t, back.Equal(New(0, 2), ToleranceFromDigits(9)))

	z := New(0, 0).ToPolar()
	assert.Equal(t, 0.0, z.Radius())
	assert.Equal(t, 0.0, z.Argument())
}

func TestNewPolar(t *testing.T) {
	_, err := NewPolar(-1, 0)
	require.ErrorIs(t, err, ErrNegativeRadius)

	p, err := NewPolar(1, 5*math.Pi/2)
	require.NoError(t, err)
	assert.InDelta(t, math.Pi/2, p.Argument(), 1e-12)

	p, err = NewPolar(1, -math.Pi/2-2*math.Pi)
	require.NoError(t, err)
	assert.InDelta(t, -math.Pi/2, p.Argument(), 1e-12)
}

func TestPolarArithmetic(t *testing.T) {
	a, err := NewPolar(1, 0)
	require.NoError(t, err)
	b, err := NewPolar(1, math.Pi/2)
	require.NoError(t, err)

	sum := a.Add(b)
	assert.InDelta(t, math.Sqrt2, sum.Module(), 1e-12)
	assert.InDelta(t, math.Pi/4, sum.Argument(), 1e-12)

	diff := a.Sub(b)
	assert.InDelta(t, -math.Pi/4, diff.Argument(), 1e-12)

	assert.InDelta(t, 0, a.Dot(b), 1e-12)
	assert.InDelta(t, 1, a.Dot(a), 1e-12)

	shifted := a.AddScalar(1)
	assert.True(t, shifted.ToCartesian().Equal(New(2, 1), ToleranceFromDigits(9)))
	assert.True(t, shifted.SubScalar(1).ToCartesian().Equal(New(1, 0), ToleranceFromDigits(9)))
}

func TestPolarScale(t *testing.T) {
	p, err := NewPolar(2, math.Pi/4)
	require.NoError(t, err)

	s := p.Scale(3)
	assert.Equal(t, 6.0, s.Radius())
	assert.Equal(t, p.Argument(), s.Argument())

	n := p.Scale(-1)
	assert.Equal(t, 2.0, n.Radius(), "radius stays non-negative")
	assert.InDelta(t, -3*math.Pi/4, n.Argument(), 1e-12)

	assert.Equal(t, 1.0, p.DivScalar(2).Radius())
}

func TestPolarString(t *testing.T) {
	p, err := NewPolar(1.5, 0.25)
	require.NoError(t, err)
	assert.Equal(t, "1.50∠(0.25)", p.Format(2))
}
