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

// Package glm provides typed angle and trigonometry functions over float32
// and float64 scalars and small fixed-arity vectors.
//
// Angles are a distinct type, not bare numbers. Radians[T] wraps one value
// measured in radians, so the type system rejects call sites that mix angles
// with dimensionless numbers. Forward trigonometric functions consume an
// angle and return a plain number; inverse trigonometric functions consume a
// plain number and return an angle; hyperbolic functions never touch angles.
//
// # Scalars
//
// Construct angles with Rad or Deg and evaluate with methods or the package
// functions:
//
//	theta := glm.Rad(float32(0.5))
//	s := theta.Sin()              // float32
//	phi := glm.Asin(s)            // glm.Radians[float32]
//	h := glm.Tanh(2.0)            // float64
//
// Every function evaluates once at float64 width and narrows the result, so
// a float32 call and a float64 call of the same function agree to float32
// precision.
//
// # Vectors
//
// Vec2, Vec3 and Vec4 hold plain components; RVec2, RVec3 and RVec4 hold
// radian components. The same operations apply componentwise and convert
// between the two families:
//
//	v := glm.Vec3[float64]{0.1, 0.2, 0.3}
//	angles := v.Asin()            // glm.RVec3[float64]
//	back := angles.Sin()          // glm.Vec3[float64]
//
// Vector methods build a fresh vector; no operation mutates its receiver.
//
// # Capabilities
//
// The Trig, InvTrig and Hyp interfaces name the three operation sets as
// typed contracts. The package functions Sin, Cos and Tan are generic over
// Trig, so one call site covers the radian scalar and every radian vector
// arity with the implementation fixed at compile time.
//
// # Domain violations
//
// Inputs outside a function's mathematical domain are not validated. Asin(2)
// returns a NaN-valued angle, exactly as the underlying float64 routine
// behaves; callers relying on NaN propagation see it unchanged.
package glm
