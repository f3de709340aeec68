// Package vector implements 2-D Cartesian vectors and their polar form.
//
// Comparisons on transcendental results (angles, orthogonality, parallelism)
// take an explicit Tolerance instead of a hidden constant.
package vector

import (
	"errors"
	"math"
	"strconv"

	"gonum.org/v1/gonum/floats/scalar"
)

// DefaultPrecision is the number of fractional digits String prints.
const DefaultPrecision = 4

// Tolerance is the absolute slack allowed when comparing computed values.
type Tolerance float64

// DefaultTolerance matches two decimal places.
const DefaultTolerance Tolerance = 1e-2

// ToleranceFromDigits returns 10^-digits.
func ToleranceFromDigits(digits int) Tolerance {
	return Tolerance(math.Pow10(-digits))
}

// ErrNegativeRadius is returned when a polar coordinate would have radius < 0.
var ErrNegativeRadius = errors.New("vector: radius must be non-negative")

// Vector is a point or direction in the Cartesian plane.
type Vector struct {
	X, Y float64
}

// New returns the vector (x, y).
func New(x, y float64) Vector {
	return Vector{X: x, Y: y}
}

// Add returns v + o.
func (v Vector) Add(o Vector) Vector {
	return Vector{v.X + o.X, v.Y + o.Y}
}

// Sub returns v - o.
func (v Vector) Sub(o Vector) Vector {
	return Vector{v.X - o.X, v.Y - o.Y}
}

// Dot returns the scalar product.
func (v Vector) Dot(o Vector) float64 {
	return v.X*o.X + v.Y*o.Y
}

// Cross returns the z component of the 3-D cross product.
func (v Vector) Cross(o Vector) float64 {
	return v.X*o.Y - o.X*v.Y
}

// AddScalar adds s to both components.
func (v Vector) AddScalar(s float64) Vector {
	return Vector{v.X + s, v.Y + s}
}

// SubScalar subtracts s from both components.
func (v Vector) SubScalar(s float64) Vector {
	return Vector{v.X - s, v.Y - s}
}

// Scale multiplies both components by s.
func (v Vector) Scale(s float64) Vector {
	return Vector{v.X * s, v.Y * s}
}

// DivScalar divides both components by s.
func (v Vector) DivScalar(s float64) Vector {
	return Vector{v.X / s, v.Y / s}
}

// Module returns the Euclidean length.
func (v Vector) Module() float64 {
	return math.Hypot(v.X, v.Y)
}

// ToPolar converts v to polar form. The zero vector has argument 0.
func (v Vector) ToPolar() Polar {
	return Polar{radius: v.Module(), argument: normalizeArgument(math.Atan2(v.Y, v.X))}
}

// Angle returns the angle between v and o in radians, in [0, π].
// It is NaN when either vector has zero length.
func (v Vector) Angle(o Vector) float64 {
	n := v.Module() * o.Module()
	if n == 0 {
		return math.NaN()
	}
	cos := math.Max(-1, math.Min(1, v.Dot(o)/n))
	return math.Acos(cos)
}

// AngleDegrees is Angle in degrees.
func (v Vector) AngleDegrees(o Vector) float64 {
	return v.Angle(o) * 180 / math.Pi
}

// IsTrueOrthogonal reports whether the dot product is exactly zero.
func (v Vector) IsTrueOrthogonal(o Vector) bool {
	return v.Dot(o) == 0
}

// IsOrthogonal reports whether the angle between v and o is within tol of π/2.
func (v Vector) IsOrthogonal(o Vector, tol Tolerance) bool {
	return scalar.EqualWithinAbs(v.Angle(o), math.Pi/2, float64(tol))
}

// Parallel reports whether v and o are collinear within tol.
func (v Vector) Parallel(o Vector, tol Tolerance) bool {
	return scalar.EqualWithinAbs(v.Cross(o), 0, float64(tol))
}

// Equal reports whether both components agree within tol.
func (v Vector) Equal(o Vector, tol Tolerance) bool {
	return scalar.EqualWithinAbs(v.X, o.X, float64(tol)) && scalar.EqualWithinAbs(v.Y, o.Y, float64(tol))
}

// Format returns "(x, y)" with the given number of fractional digits.
func (v Vector) Format(precision int) string {
	b := []byte{'('}
	b = strconv.AppendFloat(b, v.X, 'f', precision, 64)
	b = append(b, ", "...)
	b = strconv.AppendFloat(b, v.Y, 'f', precision, 64)
	return string(append(b, ')'))
}

// String implements fmt.Stringer.
func (v Vector) String() string {
	return v.Format(DefaultPrecision)
}
