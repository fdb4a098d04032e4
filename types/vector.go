package types

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"golang.org/x/image/math/f64"
)

type Vec3 f64.Vec3

// Define a 3 component vector.
func XYZ(x, y, z float64) Vec3 {
	return Vec3{x, y, z}
}

// Add a vector.
func (v Vec3) Add(v2 Vec3) Vec3 {
	return Vec3{v[0] + v2[0], v[1] + v2[1], v[2] + v2[2]}
}

// Subtract a vector.
func (v Vec3) Sub(v2 Vec3) Vec3 {
	return Vec3{v[0] - v2[0], v[1] - v2[1], v[2] - v2[2]}
}

// Multiply a 3 component vector with a scalar.
func (v Vec3) Mul(s float64) Vec3 {
	return Vec3{v[0] * s, v[1] * s, v[2] * s}
}

// Get 3 component vector length.
func (v Vec3) Len() float64 {
	return math.Sqrt(v[0]*v[0] + v[1]*v[1] + v[2]*v[2])
}

// Returns true if no component is NaN or infinite.
func (v Vec3) IsFinite() bool {
	for _, c := range v {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return false
		}
	}
	return true
}

// Returns the smallest vector component.
func (v Vec3) MinComponent() float64 {
	return math.Min(v[0], math.Min(v[1], v[2]))
}

// Returns true if all components are within epsilon of v2.
func (v Vec3) ApproxEqual(v2 Vec3, epsilon float64) bool {
	for i := range v {
		if math.Abs(v[i]-v2[i]) > epsilon {
			return false
		}
	}
	return true
}

// Convert to a mathgl vector.
func (v Vec3) Mgl() mgl64.Vec3 {
	return mgl64.Vec3{v[0], v[1], v[2]}
}

// Convert a mathgl vector.
func FromMgl(v mgl64.Vec3) Vec3 {
	return Vec3{v[0], v[1], v[2]}
}
