// Package transform provides invertible scalar mappings.
//
// A Pair couples a forward function with its inverse. Pairs drive derived
// secondary axes: tick values are chosen in the transformed space and placed
// on the parent axis through the inverse. Both directions must be defined on
// the whole visible axis range, not just where data was plotted.
package transform

import "math"

// Func maps one scalar to another.
type Func func(x float64) float64

// Pair is an invertible scalar mapping.
//
// The zero value is treated as the identity mapping by OrIdentity; callers
// that accept a Pair should normalize through it before use.
type Pair struct {
	Forward Func
	Inverse Func
}

// Identity returns the identity mapping.
func Identity() Pair {
	id := func(x float64) float64 { return x }
	return Pair{Forward: id, Inverse: id}
}

// OrIdentity returns p with nil directions replaced by the identity.
func (p Pair) OrIdentity() Pair {
	id := func(x float64) float64 { return x }
	if p.Forward == nil {
		p.Forward = id
	}
	if p.Inverse == nil {
		p.Inverse = id
	}
	return p
}

// RoundTrip applies Forward then Inverse.
func (p Pair) RoundTrip(x float64) float64 {
	p = p.OrIdentity()
	return p.Inverse(p.Forward(x))
}

// Affine returns the mapping y = scale*x + offset.
//
// Panics if scale is zero: the mapping would not be invertible and a zero
// scale is always a programming error.
func Affine(scale, offset float64) Pair {
	if scale == 0 {
		panic("transform: affine scale must be non-zero")
	}
	return Pair{
		Forward: func(x float64) float64 { return scale*x + offset },
		Inverse: func(y float64) float64 { return (y - offset) / scale },
	}
}

// DegreesRadians maps degrees to radians.
func DegreesRadians() Pair {
	return Affine(math.Pi/180, 0)
}

// CelsiusFahrenheit maps degrees Celsius to degrees Fahrenheit.
func CelsiusFahrenheit() Pair {
	return Affine(1.8, 32)
}

// AnomalyAbout maps a value to its deviation from mean.
func AnomalyAbout(mean float64) Pair {
	return Affine(1, -mean)
}

// Reciprocal maps x to 1/x, with 0 mapped to +Inf.
//
// The mapping is its own inverse. Consumers that place ticks must skip
// non-finite results.
func Reciprocal() Pair {
	f := func(x float64) float64 {
		if x == 0 {
			return math.Inf(1)
		}
		return 1 / x
	}
	return Pair{Forward: f, Inverse: f}
}
