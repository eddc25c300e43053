package glm

// InvTrig is the inverse trigonometric capability: types whose values are
// plain numbers and evaluate to an angle-valued result R. It is implemented
// by Vec2/Vec3/Vec4[T] with R = RVec2/RVec3/RVec4[T]. For scalars the same
// operations are the package functions Asin, Acos and Atan, since Go's
// built-in float types cannot carry methods.
type InvTrig[R any] interface {
	Asin() R
	Acos() R
	Atan() R
}

// Asin returns the arcsine of x as an angle in [-π/2, π/2].
//
// Out-of-domain inputs are not validated: the NaN produced by the
// underlying routine is wrapped and returned like any other value.
//
// Special cases:
//   - Asin(±0) = ±0
//   - Asin(x) = NaN if x < -1 or x > 1
func Asin[T Floats](x T) Radians[T] {
	return Radians[T]{rad: asin64(x)}
}

// Acos returns the arccosine of x as an angle in [0, π].
//
// Special cases:
//   - Acos(x) = NaN if x < -1 or x > 1
func Acos[T Floats](x T) Radians[T] {
	return Radians[T]{rad: acos64(x)}
}

// Atan returns the arctangent of x as an angle in [-π/2, π/2].
//
// Special cases:
//   - Atan(±0) = ±0
//   - Atan(±Inf) = ±π/2
func Atan[T Floats](x T) Radians[T] {
	return Radians[T]{rad: atan64(x)}
}

// Atan2 returns the full-plane arctangent of y/x as an angle in [-π, π],
// using the signs of both arguments to pick the quadrant.
func Atan2[T Floats](y, x T) Radians[T] {
	return Radians[T]{rad: atan264(y, x)}
}
