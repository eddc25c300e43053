package glm

import (
	stdmath "math"
)

// This file holds the scalar evaluation substrate. Every trigonometric,
// inverse-trigonometric and hyperbolic operation in the package funnels
// through one of these routines: the argument is widened to the canonical
// float64 evaluation width, evaluated once by the standard library, and the
// result narrowed back to T. Monomorphization gives each width its own
// specialized body with no conversion at float64.
//
// The conversions are total. Narrowing to float32 rounds; out-of-domain
// inputs produce whatever the float64 routine produces, NaN included, and
// that result is passed through untouched.

func sin64[T Floats](x T) T {
	return T(stdmath.Sin(float64(x)))
}

func cos64[T Floats](x T) T {
	return T(stdmath.Cos(float64(x)))
}

func tan64[T Floats](x T) T {
	return T(stdmath.Tan(float64(x)))
}

func sincos64[T Floats](x T) (sin, cos T) {
	s, c := stdmath.Sincos(float64(x))
	return T(s), T(c)
}

func asin64[T Floats](x T) T {
	return T(stdmath.Asin(float64(x)))
}

func acos64[T Floats](x T) T {
	return T(stdmath.Acos(float64(x)))
}

func atan64[T Floats](x T) T {
	return T(stdmath.Atan(float64(x)))
}

func atan264[T Floats](y, x T) T {
	return T(stdmath.Atan2(float64(y), float64(x)))
}

func sinh64[T Floats](x T) T {
	return T(stdmath.Sinh(float64(x)))
}

func cosh64[T Floats](x T) T {
	return T(stdmath.Cosh(float64(x)))
}

func tanh64[T Floats](x T) T {
	return T(stdmath.Tanh(float64(x)))
}

func radToDeg64[T Floats](x T) T {
	return T(float64(x) * (180 / stdmath.Pi))
}

func degToRad64[T Floats](x T) T {
	return T(float64(x) * (stdmath.Pi / 180))
}
