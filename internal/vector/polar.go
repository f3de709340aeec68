package vector

import (
	"math"
	"strconv"
)

// Polar is a polar coordinate. The radius is never negative and the
// argument is kept in (-π, π].
type Polar struct {
	radius   float64
	argument float64
}

// NewPolar returns the polar coordinate (r, a), normalizing a.
func NewPolar(r, a float64) (Polar, error) {
	if r < 0 {
		return Polar{}, ErrNegativeRadius
	}
	return Polar{radius: r, argument: normalizeArgument(a)}, nil
}

// normalizeArgument maps a into (-π, π].
func normalizeArgument(a float64) float64 {
	a = math.Mod(a, 2*math.Pi)
	if a < 0 {
		a += 2 * math.Pi
	}
	if a > math.Pi {
		a -= 2 * math.Pi
	}
	return a
}

// Radius returns the distance from the origin.
func (p Polar) Radius() float64 {
	return p.radius
}

// Argument returns the angle in radians.
func (p Polar) Argument() float64 {
	return p.argument
}

// Module returns the radius.
func (p Polar) Module() float64 {
	return p.radius
}

// ToCartesian converts p to a Vector.
func (p Polar) ToCartesian() Vector {
	return Vector{X: p.radius * math.Cos(p.argument), Y: p.radius * math.Sin(p.argument)}
}

// Add returns p + o, computed in Cartesian space.
func (p Polar) Add(o Polar) Polar {
	return p.ToCartesian().Add(o.ToCartesian()).ToPolar()
}

// Sub returns p - o, computed in Cartesian space.
func (p Polar) Sub(o Polar) Polar {
	return p.ToCartesian().Sub(o.ToCartesian()).ToPolar()
}

// Dot returns the scalar product.
func (p Polar) Dot(o Polar) float64 {
	return p.radius * o.radius * math.Cos(p.argument-o.argument)
}

// AddScalar adds s to both Cartesian components.
func (p Polar) AddScalar(s float64) Polar {
	return p.ToCartesian().AddScalar(s).ToPolar()
}

// SubScalar subtracts s from both Cartesian components.
func (p Polar) SubScalar(s float64) Polar {
	return p.ToCartesian().SubScalar(s).ToPolar()
}

// Scale multiplies the radius by s. A negative s points the other way.
func (p Polar) Scale(s float64) Polar {
	if s < 0 {
		return Polar{radius: -s * p.radius, argument: normalizeArgument(p.argument + math.Pi)}
	}
	return Polar{radius: s * p.radius, argument: p.argument}
}

// DivScalar divides the radius by s.
func (p Polar) DivScalar(s float64) Polar {
	return p.Scale(1 / s)
}

// Format returns "r∠(a)" with the given number of fractional digits.
func (p Polar) Format(precision int) string {
	b := strconv.AppendFloat(nil, p.radius, 'f', precision, 64)
	b = append(b, "∠("...)
	b = strconv.AppendFloat(b, p.argument, 'f', precision, 64)
	return string(append(b, ')'))
}

// String implements fmt.Stringer.
func (p Polar) String() string {
	return p.Format(DefaultPrecision)
}
