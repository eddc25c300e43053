package glm

// Trig is the forward trigonometric capability: types whose values are
// angles and evaluate to a plain result R. It is implemented by Radians[T]
// with R = T and by RVec2/RVec3/RVec4[T] with R = Vec2/Vec3/Vec4[T].
type Trig[R any] interface {
	Sin() R
	Cos() R
	Tan() R
}

// Sin computes the sine of the angle, consuming it and returning a plain
// number.
//
// Special cases:
//   - Sin(±0) = ±0
//   - Sin(±Inf) = NaN
//   - Sin(NaN) = NaN
func (r Radians[T]) Sin() T {
	return sin64(r.rad)
}

// Cos computes the cosine of the angle.
//
// Special cases:
//   - Cos(±Inf) = NaN
//   - Cos(NaN) = NaN
func (r Radians[T]) Cos() T {
	return cos64(r.rad)
}

// Tan computes the tangent of the angle.
//
// Special cases:
//   - Tan(±0) = ±0
//   - Tan(±Inf) = NaN
//   - Tan(NaN) = NaN
func (r Radians[T]) Tan() T {
	return tan64(r.rad)
}

// SinCos computes the sine and cosine of the angle in one evaluation.
// It is equivalent to calling Sin and Cos separately but shares the
// widening and the range reduction of the underlying routine.
func (r Radians[T]) SinCos() (sin, cos T) {
	return sincos64(r.rad)
}

// Sin returns the sine of theta. The argument may be a radian scalar or a
// radian vector of any arity; the implementation is selected from the
// argument type at compile time.
func Sin[T Trig[R], R any](theta T) R {
	return theta.Sin()
}

// Cos returns the cosine of theta, scalar or vector.
func Cos[T Trig[R], R any](theta T) R {
	return theta.Cos()
}

// Tan returns the tangent of theta, scalar or vector.
func Tan[T Trig[R], R any](theta T) R {
	return theta.Tan()
}

// SinCos returns the sine and cosine of a radian scalar in one evaluation.
func SinCos[T Floats](theta Radians[T]) (sin, cos T) {
	return theta.SinCos()
}
