package glm

// Floats is a constraint for the floating-point widths the package evaluates.
type Floats interface {
	~float32 | ~float64
}

// Vec2 is a two-component vector of plain numbers.
//
// Vectors are plain arrays: construct them with a composite literal and read
// components by index. Arity is part of the type and never changes.
type Vec2[T Floats] [2]T

// Vec3 is a three-component vector of plain numbers.
type Vec3[T Floats] [3]T

// Vec4 is a four-component vector of plain numbers.
type Vec4[T Floats] [4]T

// RVec2 is a two-component vector of radian angles. Its element type is
// Radians[T], so a plain-number vector cannot be passed where an angle
// vector is required.
type RVec2[T Floats] [2]Radians[T]

// RVec3 is a three-component vector of radian angles.
type RVec3[T Floats] [3]Radians[T]

// RVec4 is a four-component vector of radian angles.
type RVec4[T Floats] [4]Radians[T]
