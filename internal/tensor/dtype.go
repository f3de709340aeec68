// Package tensor provides the dense 2-D tensor engine: storage, arithmetic,
// linear algebra, CSV ingestion and console rendering.
package tensor

import "golang.org/x/exp/constraints"

// Number is a constraint for supported element types.
// Integer and floating-point instantiations share one implementation.
type Number interface {
	constraints.Integer | constraints.Float
}

// isInteger reports whether T truncates division, i.e. is an integer type.
func isInteger[T Number]() bool {
	one, two := T(1), T(2)
	return one/two == 0
}

// abs returns |v| as a float64 so unsigned and signed types behave alike.
func abs[T Number](v T) float64 {
	f := float64(v)
	if f < 0 {
		return -f
	}
	return f
}
