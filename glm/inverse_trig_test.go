package glm

import (
	stdmath "math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAsin(t *testing.T) {
	tests := []struct {
		name  string
		input float64
	}{
		{"asin(0)", 0.0},
		{"asin(0.5)", 0.5},
		{"asin(1)", 1.0},
		{"asin(-1)", -1.0},
		{"asin(-0.25)", -0.25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Asin(tt.input)
			assert.Equal(t, stdmath.Asin(tt.input), got.Value())
		})
	}
}

func TestAcos(t *testing.T) {
	tests := []struct {
		name  string
		input float64
	}{
		{"acos(0)", 0.0},
		{"acos(0.5)", 0.5},
		{"acos(1)", 1.0},
		{"acos(-1)", -1.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Acos(tt.input)
			assert.Equal(t, stdmath.Acos(tt.input), got.Value())
		})
	}
}

func TestAtan(t *testing.T) {
	tests := []struct {
		name  string
		input float64
	}{
		{"atan(0)", 0.0},
		{"atan(1)", 1.0},
		{"atan(-1)", -1.0},
		{"atan(100)", 100.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Atan(tt.input)
			assert.Equal(t, stdmath.Atan(tt.input), got.Value())
		})
	}
}

func TestAtan2(t *testing.T) {
	tests := []struct {
		name string
		y, x float64
	}{
		{"first quadrant", 1, 1},
		{"second quadrant", 1, -1},
		{"third quadrant", -1, -1},
		{"fourth quadrant", -1, 1},
		{"positive x axis", 0, 1},
		{"positive y axis", 1, 0},
		{"negative x axis", 0, -1},
		{"origin", 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Atan2(tt.y, tt.x)
			assert.Equal(t, stdmath.Atan2(tt.y, tt.x), got.Value())
		})
	}
}

func TestInverseTrig_Float32(t *testing.T) {
	for _, x := range []float32{-1, -0.5, 0, 0.5, 1} {
		assert.Equal(t, float32(stdmath.Asin(float64(x))), Asin(x).Value(), "asin(%v)", x)
		assert.Equal(t, float32(stdmath.Acos(float64(x))), Acos(x).Value(), "acos(%v)", x)
		assert.Equal(t, float32(stdmath.Atan(float64(x))), Atan(x).Value(), "atan(%v)", x)
	}
	assert.Equal(t, float32(stdmath.Atan2(1, -1)), Atan2(float32(1), float32(-1)).Value())
}

func TestAsin_OutOfRange(t *testing.T) {
	// Inputs outside [-1, 1] surface NaN from the underlying evaluation,
	// no validation or clamping happens first.
	assert.True(t, stdmath.IsNaN(Asin(2.0).Value()), "asin(2) = NaN")
	assert.True(t, stdmath.IsNaN(Asin(-2.0).Value()), "asin(-2) = NaN")
	assert.True(t, stdmath.IsNaN(Acos(-3.0).Value()), "acos(-3) = NaN")
	assert.True(t, stdmath.IsNaN(float64(Asin(float32(2)).Value())), "asin(float32 2) = NaN")
}

func TestInverseTrig_RoundTrip(t *testing.T) {
	angles := []float64{0, 0.3, stdmath.Pi / 6, stdmath.Pi / 4, 1.2}

	for _, theta := range angles {
		back := Asin(Rad(theta).Sin())
		require.InDelta(t, theta, back.Value(), 1e-12, "asin(sin(%v))", theta)

		back = Acos(Rad(theta).Cos())
		require.InDelta(t, theta, back.Value(), 1e-12, "acos(cos(%v))", theta)

		back = Atan(Rad(theta).Tan())
		require.InDelta(t, theta, back.Value(), 1e-12, "atan(tan(%v))", theta)
	}

	for _, theta := range []float32{0, 0.5, 1.1} {
		back := Asin(Rad(theta).Sin())
		require.InDelta(t, theta, back.Value(), 1e-6, "float32 asin(sin(%v))", theta)
	}
}

// The vector types satisfy the inverse trig capability with angle-vector
// results. Scalars cannot: built-in floats carry no methods.
var (
	_ InvTrig[RVec2[float64]] = Vec2[float64]{}
	_ InvTrig[RVec3[float32]] = Vec3[float32]{}
	_ InvTrig[RVec4[float64]] = Vec4[float64]{}
)
