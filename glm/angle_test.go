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

import (
	stdmath "math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRad_Value(t *testing.T) {
	tests := []struct {
		name  string
		input float64
	}{
		{"zero", 0},
		{"pi", stdmath.Pi},
		{"negative", -2.5},
		{"small", 1e-9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.input, Rad(tt.input).Value())
		})
	}
}

func TestRad_Float32(t *testing.T) {
	r := Rad(float32(1.25))
	assert.Equal(t, float32(1.25), r.Value())
}

func TestDeg_Value(t *testing.T) {
	assert.Equal(t, 90.0, Deg(90.0).Value())
	assert.Equal(t, float32(-45), Deg(float32(-45)).Value())
}

func TestDegrees_Radians(t *testing.T) {
	tests := []struct {
		name string
		deg  float64
		rad  float64
	}{
		{"zero", 0, 0},
		{"quarter turn", 90, stdmath.Pi / 2},
		{"half turn", 180, stdmath.Pi},
		{"full turn", 360, 2 * stdmath.Pi},
		{"negative", -45, -stdmath.Pi / 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Deg(tt.deg).Radians()
			assert.InDelta(t, tt.rad, got.Value(), 1e-15)
		})
	}
}

func TestRadians_Degrees(t *testing.T) {
	tests := []struct {
		name string
		rad  float64
		deg  float64
	}{
		{"zero", 0, 0},
		{"pi/2", stdmath.Pi / 2, 90},
		{"pi", stdmath.Pi, 180},
		{"negative", -stdmath.Pi / 4, -45},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Rad(tt.rad).Degrees()
			assert.InDelta(t, tt.deg, got.Value(), 1e-12)
		})
	}
}

func TestAngleConversion_RoundTrip(t *testing.T) {
	for _, deg := range []float64{0, 30, 45, 90, 123.456, -270} {
		back := Deg(deg).Radians().Degrees()
		require.InDelta(t, deg, back.Value(), 1e-12, "degrees -> radians -> degrees")
	}

	for _, rad := range []float32{0, 0.5, 1.5, -2.25} {
		back := Rad(rad).Degrees().Radians()
		require.InDelta(t, rad, back.Value(), 1e-5, "radians -> degrees -> radians at float32")
	}
}
