package scene

import (
	"github.com/achilleasa/scenedesc/types"
	"github.com/go-gl/mathgl/mgl64"
)

// Transform places an entity in world space. Rotation is an axis-angle
// vector: its direction is the rotation axis and its length the angle in
// radians.
type Transform struct {
	Position types.Vec3
	Rotation types.Vec3
	Scale    float64
}

// Create a transform that only translates.
func Translation(position types.Vec3) Transform {
	return Transform{Position: position, Scale: 1}
}

// Get the rotation as a quaternion.
func (t Transform) Quat() mgl64.Quat {
	angle := t.Rotation.Len()
	if angle == 0 {
		return mgl64.QuatIdent()
	}
	return mgl64.QuatRotate(angle, t.Rotation.Mul(1/angle).Mgl())
}

// Apply the transform to a point: scale, then rotate, then translate.
func (t Transform) Apply(v types.Vec3) types.Vec3 {
	rotated := t.Quat().Rotate(v.Mul(t.Scale).Mgl())
	return types.FromMgl(rotated).Add(t.Position)
}

// Get the 4x4 world matrix for this transform.
func (t Transform) Matrix() mgl64.Mat4 {
	return mgl64.Translate3D(t.Position[0], t.Position[1], t.Position[2]).
		Mul4(t.Quat().Mat4()).
		Mul4(mgl64.Scale3D(t.Scale, t.Scale, t.Scale))
}
