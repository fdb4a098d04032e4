package scene

import "github.com/achilleasa/scenedesc/types"

// Shape is implemented by Ball and Cuboid.
type Shape interface {
	Kind() ShapeKind
	isShape()
}

// A sphere centered at the object origin.
type Ball struct {
	Radius float64
}

func (Ball) Kind() ShapeKind { return BallShape }
func (Ball) isShape()        {}

// A box centered at the object origin. Extents are half-lengths along each axis.
type Cuboid struct {
	Extents types.Vec3
}

func (Cuboid) Kind() ShapeKind { return CuboidShape }
func (Cuboid) isShape()        {}

// An Object is a shape placed in the scene with a material.
type Object struct {
	Name      string
	Shape     Shape
	Transform Transform

	// Name of the material in the materials collection.
	Material string
}

func (o Object) EntityName() string     { return o.Name }
func (o Object) Collection() Collection { return Objects }
