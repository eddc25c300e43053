package glm

// Hyp is the hyperbolic capability: plain numbers in, plain numbers out.
// Hyperbolic functions are not angle-indexed, so no Radians appear on
// either side. Implemented by Vec2/Vec3/Vec4[T] with R the same vector
// type; for scalars the operations are the package functions Sinh, Cosh
// and Tanh.
type Hyp[R any] interface {
	Sinh() R
	Cosh() R
	Tanh() R
}

// Sinh returns the hyperbolic sine of x.
//
// Special cases:
//   - Sinh(±0) = ±0
//   - Sinh(±Inf) = ±Inf
//   - Sinh(NaN) = NaN
func Sinh[T Floats](x T) T {
	return sinh64(x)
}

// Cosh returns the hyperbolic cosine of x.
//
// Special cases:
//   - Cosh(±0) = 1
//   - Cosh(±Inf) = +Inf
//   - Cosh(NaN) = NaN
func Cosh[T Floats](x T) T {
	return cosh64(x)
}

// Tanh returns the hyperbolic tangent of x.
//
// Special cases:
//   - Tanh(±0) = ±0
//   - Tanh(±Inf) = ±1
//   - Tanh(NaN) = NaN
func Tanh[T Floats](x T) T {
	return tanh64(x)
}
