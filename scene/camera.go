package scene

// A Camera describes the film and projection used to observe the scene.
type Camera struct {
	Name      string
	Type      CameraType
	Transform Transform

	// Film dimensions in pixels.
	Width  uint32
	Height uint32

	// Vertical field of view in degrees.
	FOV float64

	// Clip plane distances.
	Near float64
	Far  float64
}

func (c Camera) EntityName() string     { return c.Name }
func (c Camera) Collection() Collection { return Cameras }

// Get the film aspect ratio.
func (c Camera) Aspect() float64 {
	return float64(c.Width) / float64(c.Height)
}
