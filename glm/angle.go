// Copyright 2025 go-glmath Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package glm

// Radians represents an angle measured in radians, stored at width T.
// It wraps a single number so that angles and dimensionless values are
// distinct types: an angle is produced only by explicit construction or by
// an inverse trigonometric function, and only Value or a forward
// trigonometric call reads it back out.
//
// Radians values are immutable and freely copyable.
type Radians[T Floats] struct {
	rad T
}

// Rad constructs an angle of v radians.
func Rad[T Floats](v T) Radians[T] {
	return Radians[T]{rad: v}
}

// Value returns the raw radian measurement.
func (r Radians[T]) Value() T {
	return r.rad
}

// Degrees converts the angle to its degree representation.
func (r Radians[T]) Degrees() Degrees[T] {
	return Degrees[T]{deg: radToDeg64(r.rad)}
}

// Degrees represents an angle measured in degrees, stored at width T.
// Degrees carry no trigonometric behavior of their own; convert to Radians
// first. The type exists so unit conversion is explicit and checked.
type Degrees[T Floats] struct {
	deg T
}

// Deg constructs an angle of v degrees.
func Deg[T Floats](v T) Degrees[T] {
	return Degrees[T]{deg: v}
}

// Value returns the raw degree measurement.
func (d Degrees[T]) Value() T {
	return d.deg
}

// Radians converts the angle to its radian representation.
func (d Degrees[T]) Radians() Radians[T] {
	return Radians[T]{rad: degToRad64(d.deg)}
}
